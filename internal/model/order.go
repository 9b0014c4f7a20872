package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment methods accepted at order creation.
const (
	PaymentPix        = "PIX"
	PaymentCash       = "DINHEIRO"
	PaymentDebitCard  = "CARTAO_DEBITO"
	PaymentCreditCard = "CARTAO_CREDITO"
)

// Order is the terminal record of a completed purchase. TotalValue is
// computed once at creation (server-side prices, discount applied) and never
// recomputed.
type Order struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	UserID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	TotalValue    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount      decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Description   string
	CreatedAt     time.Time

	Client *Client     `gorm:"foreignKey:ClientID"`
	User   *User       `gorm:"foreignKey:UserID"`
	Items  []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem links an order to a product with the quantity and the unit price
// frozen at purchase time.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
