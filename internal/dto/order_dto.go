package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OrderLineRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity"  validate:"required,min=1"`
}

// CreateOrderRequest. Discount is a percentage ≥ 0 with no upper bound — a
// discount above 100 produces a negative total and is accepted as-is.
type CreateOrderRequest struct {
	ClientID      string             `json:"clientId"      validate:"required,uuid"`
	Products      []OrderLineRequest `json:"products"      validate:"required,min=1,dive"`
	Description   string             `json:"description"`
	Discount      decimal.Decimal    `json:"discount"      validate:"min=0"`
	PaymentMethod string             `json:"paymentMethod" validate:"required,oneof=PIX DINHEIRO CARTAO_DEBITO CARTAO_CREDITO"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderItemResponse struct {
	ProductID string          `json:"productId"`
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	ClientID      string              `json:"clientId"`
	UserID        string              `json:"userId"`
	TotalValue    decimal.Decimal     `json:"totalValue"`
	Discount      decimal.Decimal     `json:"discount"`
	PaymentMethod string              `json:"paymentMethod"`
	Description   string              `json:"description"`
	Items         []OrderItemResponse `json:"products"`
	CreatedAt     string              `json:"createdAt"`
}

type CreateOrderResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
	Message string        `json:"message"`
}
