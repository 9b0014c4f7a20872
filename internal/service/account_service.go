package service

import (
	"context"
	"strings"

	"orderdesk/internal/apierror"
	"orderdesk/internal/dto"
	"orderdesk/internal/model"
	"orderdesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AccountService interface {
	Register(ctx context.Context, req dto.CreateAccountRequest) error
}

type accountService struct {
	repo repository.UserRepository
}

func NewAccountService(repo repository.UserRepository) AccountService {
	return &accountService{repo: repo}
}

func (s *accountService) Register(ctx context.Context, req dto.CreateAccountRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return apierror.Conflict("user with same e-mail address already exists", "")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return err
	}

	return s.repo.Create(ctx, &model.User{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		IsAdmin:      *req.IsAdmin,
	})
}
