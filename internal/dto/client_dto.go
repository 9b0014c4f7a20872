package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateClientRequest. Phone accepts digits, spaces, hyphens, plus signs and
// parentheses ("phonechars" is registered in the handler package) and is
// normalized to digits only before persisting.
type CreateClientRequest struct {
	Name        string  `json:"name"        validate:"required,min=3,max=100"`
	Email       string  `json:"email"       validate:"required,email,max=100"`
	Phone       *string `json:"phone"       validate:"omitempty,max=20,phonechars"`
	Address     *string `json:"address"     validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2200"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ClientFilter struct {
	Page  int `form:"page,default=1"   validate:"min=1"`
	Limit int `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClientResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	CreatedAt string  `json:"createdAt"`
}

type CreateClientResponse struct {
	Success bool           `json:"success"`
	Client  ClientResponse `json:"client"`
	Message string         `json:"message"`
}

type ClientListResponse struct {
	Data  []ClientResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
