package service

import (
	"context"
	"crypto/rsa"
	"strings"

	"orderdesk/internal/apierror"
	"orderdesk/internal/dto"
	"orderdesk/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Authenticate(ctx context.Context, req dto.AuthenticateRequest) (*dto.AuthenticateResponse, error)
}

type authService struct {
	repo       repository.UserRepository
	signingKey *rsa.PrivateKey
}

func NewAuthService(repo repository.UserRepository, signingKey *rsa.PrivateKey) AuthService {
	return &authService{repo: repo, signingKey: signingKey}
}

// Authenticate verifies the credentials and issues a signed RS256 token with
// the user id as subject. Unknown email and wrong password return the exact
// same error so account existence cannot be probed.
func (s *authService) Authenticate(ctx context.Context, req dto.AuthenticateRequest) (*dto.AuthenticateResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apierror.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("invalid credentials")
	}

	// Subject is the only claim. No expiry is set — tokens stay valid until
	// the key pair is rotated.
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject: user.ID.String(),
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return nil, err
	}

	return &dto.AuthenticateResponse{AccessToken: signed}, nil
}
