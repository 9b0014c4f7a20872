package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/apierror"
	"orderdesk/internal/dto"
	"orderdesk/internal/model"
	"orderdesk/internal/repository"
	"orderdesk/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
}

type orderService struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	dispatcher  *worker.Dispatcher
}

func NewOrderService(
	repo repository.OrderRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	dispatcher *worker.Dispatcher,
) OrderService {
	return &orderService{
		repo:        repo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		dispatcher:  dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

var oneHundred = decimal.NewFromInt(100)

// ── Create ────────────────────────────────────────────────────────────────────
// Order creation:
//   1. Resolve the client and all requested products (single batch lookup)
//   2. Fail on missing products, naming every absent id
//   3. Fail on insufficient stock, naming every offending line
//   4. Total = Σ(server-side unit price × qty), minus discount percent.
//      The discount is not capped at 100: above that the total goes negative.
//   5. BEGIN TX: conditional stock decrements + order insert, all-or-nothing
//   6. (async) dispatch receipt email when the client has an email
//
// Steps 2–3 are optimistic pre-checks; the conditional decrement inside the
// transaction is what actually guarantees stock never goes negative under
// concurrent orders.

func (s *orderService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, apierror.Validation("clientId must be a valid UUID")
	}

	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, apierror.BadRequest("client not found", fmt.Sprintf("no client with id %s", req.ClientID))
	}

	// Lines referring to the same product are merged so the stock check sees
	// the aggregate demand per product.
	type line struct {
		productID uuid.UUID
		quantity  int
	}
	var lines []line
	index := make(map[uuid.UUID]int)
	for _, p := range req.Products {
		pid, err := uuid.Parse(p.ProductID)
		if err != nil {
			return nil, apierror.Validation(fmt.Sprintf("productId %q must be a valid UUID", p.ProductID))
		}
		if i, ok := index[pid]; ok {
			lines[i].quantity += p.Quantity
			continue
		}
		index[pid] = len(lines)
		lines = append(lines, line{productID: pid, quantity: p.Quantity})
	}

	ids := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		ids[i] = l.productID
	}

	// 1. Resolve products in a single batch lookup
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// 2. Existence check — before any stock or pricing computation
	var missing []string
	for _, l := range lines {
		if _, ok := byID[l.productID]; !ok {
			missing = append(missing, l.productID.String())
		}
	}
	if len(missing) > 0 {
		return nil, apierror.BadRequest("products not found",
			"no catalog record for: "+strings.Join(missing, ", "))
	}

	// 3. Stock check — collect every offending line, not just the first
	var shortages []string
	for _, l := range lines {
		p := byID[l.productID]
		if l.quantity > p.Quantity {
			shortages = append(shortages,
				fmt.Sprintf("%s (%s): requested %d, available %d", p.Name, p.ID, l.quantity, p.Quantity))
		}
	}
	if len(shortages) > 0 {
		return nil, apierror.BadRequest("insufficient stock", strings.Join(shortages, "; "))
	}

	// 4. Pricing — server-side prices only, never client-supplied
	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(lines))
	for _, l := range lines {
		p := byID[l.productID]
		subtotal := p.Value.Mul(decimal.NewFromInt(int64(l.quantity)))
		total = total.Add(subtotal)
		items = append(items, model.OrderItem{
			ProductID: l.productID,
			Quantity:  l.quantity,
			UnitPrice: p.Value,
			Subtotal:  subtotal,
		})
	}
	totalValue := total.Sub(total.Mul(req.Discount).Div(oneHundred))

	// 5. Atomic commit: conditional decrements + order insert
	order := model.Order{
		ClientID:      clientID,
		UserID:        userID,
		TotalValue:    totalValue,
		Discount:      req.Discount,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
		Items:         items,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, l := range lines {
			if err := s.productRepo.DecrementStockTx(tx, l.productID, l.quantity); err != nil {
				return fmt.Errorf("product %s: %w", byID[l.productID].Name, err)
			}
		}
		return s.repo.Create(ctx, tx, &order)
	})
	if txErr != nil {
		if errors.Is(txErr, repository.ErrInsufficientStock) {
			return nil, apierror.BadRequest("insufficient stock", txErr.Error())
		}
		return nil, txErr
	}

	// 6. Receipt email job — best-effort, fire & forget
	if s.dispatcher != nil && client.Email != "" {
		_ = s.dispatcher.EnqueueReceipt(ctx, worker.ReceiptJobPayload{
			OrderID:    order.ID.String(),
			ToEmail:    client.Email,
			ClientName: client.Name,
		})
	}

	resp := orderToResponse(&order)
	// Enrich items with product names from the resolved batch
	for i := range resp.Items {
		resp.Items[i].Product = byID[order.Items[i].ProductID].Name
	}
	return resp, nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("order not found")
	}
	return orderToResponse(order), nil
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID.String(),
			Product:   name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID.String(),
		ClientID:      o.ClientID.String(),
		UserID:        o.UserID.String(),
		TotalValue:    o.TotalValue,
		Discount:      o.Discount,
		PaymentMethod: o.PaymentMethod,
		Description:   o.Description,
		Items:         items,
		CreatedAt:     o.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
