package dto

// CreateAccountRequest registers a new user. IsAdmin is a pointer so that an
// explicit false still passes the required check.
type CreateAccountRequest struct {
	Email    string `json:"email"    validate:"required,email,max=100"`
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	IsAdmin  *bool  `json:"isAdmin"  validate:"required"`
}
