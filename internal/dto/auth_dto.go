package dto

type AuthenticateRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

type AuthenticateResponse struct {
	AccessToken string `json:"access_token"`
}
