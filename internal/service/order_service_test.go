package service_test

import (
	"context"
	"sync"
	"testing"

	"orderdesk/internal/apierror"
	"orderdesk/internal/dto"
	"orderdesk/internal/model"
	"orderdesk/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrderSvc() (service.OrderService, *stubOrderRepo, *stubProductRepo, *stubClientRepo) {
	orderRepo := newStubOrderRepo()
	productRepo := newStubProductRepo()
	clientRepo := newStubClientRepo()
	svc := service.NewOrderService(orderRepo, productRepo, clientRepo, nil)
	return svc, orderRepo, productRepo, clientRepo
}

func TestCreateOrder_TotalAndStockDecrement(t *testing.T) {
	svc, orderRepo, productRepo, clientRepo := buildOrderSvc()
	client := seedClient(clientRepo, "Acme Corp", "", nil)
	p1 := seedProduct(productRepo, "Widget", 10, 5)
	p2 := seedProduct(productRepo, "Gadget", 20, 2)

	// gross = 10×3 + 20×2 = 70; 10% discount → 63
	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		ClientID: client.ID.String(),
		Products: []dto.OrderLineRequest{
			{ProductID: p1.ID.String(), Quantity: 3},
			{ProductID: p2.ID.String(), Quantity: 2},
		},
		Discount:      decimal.NewFromInt(10),
		PaymentMethod: model.PaymentPix,
	})
	require.NoError(t, err)
	assert.Equal(t, "63", resp.TotalValue.String())
	assert.Len(t, resp.Items, 2)

	// Stock decremented: 5-3=2 and 2-2=0
	assert.Equal(t, 2, productRepo.products[p1.ID].Quantity)
	assert.Equal(t, 0, productRepo.products[p2.ID].Quantity)

	// Order persisted with frozen unit prices
	stored, err := orderRepo.FindByID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "10", stored.Items[0].UnitPrice.String())
	assert.Equal(t, "30", stored.Items[0].Subtotal.String())
}

func TestCreateOrder_MissingProductsListedBeforeMutation(t *testing.T) {
	svc, orderRepo, productRepo, clientRepo := buildOrderSvc()
	client := seedClient(clientRepo, "Acme Corp", "", nil)
	p := seedProduct(productRepo, "Widget", 10, 5)
	ghost1 := uuid.New()
	ghost2 := uuid.New()

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		ClientID: client.ID.String(),
		Products: []dto.OrderLineRequest{
			{ProductID: p.ID.String(), Quantity: 1},
			{ProductID: ghost1.String(), Quantity: 1},
			{ProductID: ghost2.String(), Quantity: 1},
		},
		PaymentMethod: model.PaymentCash,
	})
	require.Error(t, err)

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "products not found", apiErr.Message)
	// Every absent id is named, not just the first
	assert.Contains(t, apiErr.Details, ghost1.String())
	assert.Contains(t, apiErr.Details, ghost2.String())

	// Nothing was written or decremented
	assert.Empty(t, orderRepo.orders)
	assert.Equal(t, 5, productRepo.products[p.ID].Quantity)
}

func TestCreateOrder_InsufficientStockEnumeratesAllShortages(t *testing.T) {
	svc, orderRepo, productRepo, clientRepo := buildOrderSvc()
	client := seedClient(clientRepo, "Acme Corp", "", nil)
	p1 := seedProduct(productRepo, "Widget", 10, 1)
	p2 := seedProduct(productRepo, "Gadget", 20, 0)

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		ClientID: client.ID.String(),
		Products: []dto.OrderLineRequest{
			{ProductID: p1.ID.String(), Quantity: 3},
			{ProductID: p2.ID.String(), Quantity: 2},
		},
		PaymentMethod: model.PaymentPix,
	})
	require.Error(t, err)

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "insufficient stock", apiErr.Message)
	assert.Contains(t, apiErr.Details, "Widget")
	assert.Contains(t, apiErr.Details, "requested 3, available 1")
	assert.Contains(t, apiErr.Details, "Gadget")
	assert.Contains(t, apiErr.Details, "requested 2, available 0")

	// Stock untouched, no partial order
	assert.Equal(t, 1, productRepo.products[p1.ID].Quantity)
	assert.Equal(t, 0, productRepo.products[p2.ID].Quantity)
	assert.Empty(t, orderRepo.orders)
}

func TestCreateOrder_DiscountAbove100GoesNegative(t *testing.T) {
	svc, _, productRepo, clientRepo := buildOrderSvc()
	client := seedClient(clientRepo, "Acme Corp", "", nil)
	p := seedProduct(productRepo, "Widget", 10, 10)

	// gross = 100; 150% discount → -50
	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		ClientID:      client.ID.String(),
		Products:      []dto.OrderLineRequest{{ProductID: p.ID.String(), Quantity: 10}},
		Discount:      decimal.NewFromInt(150),
		PaymentMethod: model.PaymentCreditCard,
	})
	require.NoError(t, err)
	assert.Equal(t, "-50", resp.TotalValue.String())
	assert.Equal(t, 0, productRepo.products[p.ID].Quantity)
}

func TestCreateOrder_DuplicateLinesMerged(t *testing.T) {
	svc, orderRepo, productRepo, clientRepo := buildOrderSvc()
	client := seedClient(clientRepo, "Acme Corp", "", nil)
	p := seedProduct(productRepo, "Widget", 10, 5)

	// Two lines for the same product: aggregate demand 4 of 5 available
	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		ClientID: client.ID.String(),
		Products: []dto.OrderLineRequest{
			{ProductID: p.ID.String(), Quantity: 3},
			{ProductID: p.ID.String(), Quantity: 1},
		},
		PaymentMethod: model.PaymentDebitCard,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 4, resp.Items[0].Quantity)
	assert.Equal(t, "40", resp.TotalValue.String())
	assert.Equal(t, 1, productRepo.products[p.ID].Quantity)

	stored, _ := orderRepo.FindByID(context.Background(), uuid.MustParse(resp.ID))
	assert.Len(t, stored.Items, 1)
}

func TestCreateOrder_AggregateDemandExceedsStock(t *testing.T) {
	svc, _, productRepo, clientRepo := buildOrderSvc()
	client := seedClient(clientRepo, "Acme Corp", "", nil)
	p := seedProduct(productRepo, "Widget", 10, 5)

	// Each line fits on its own, but merged demand is 6 > 5
	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		ClientID: client.ID.String(),
		Products: []dto.OrderLineRequest{
			{ProductID: p.ID.String(), Quantity: 3},
			{ProductID: p.ID.String(), Quantity: 3},
		},
		PaymentMethod: model.PaymentPix,
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "insufficient stock", apiErr.Message)
	assert.Equal(t, 5, productRepo.products[p.ID].Quantity)
}

func TestCreateOrder_UnknownClient(t *testing.T) {
	svc, _, productRepo, _ := buildOrderSvc()
	p := seedProduct(productRepo, "Widget", 10, 5)

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		ClientID:      uuid.New().String(),
		Products:      []dto.OrderLineRequest{{ProductID: p.ID.String(), Quantity: 1}},
		PaymentMethod: model.PaymentPix,
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "client not found", apiErr.Message)
}

// Two concurrent orders both pass the optimistic pre-check, but the
// conditional decrement lets exactly one through.
func TestCreateOrder_ConcurrentOversell(t *testing.T) {
	svc, orderRepo, productRepo, clientRepo := buildOrderSvc()
	client := seedClient(clientRepo, "Acme Corp", "", nil)
	p := seedProduct(productRepo, "Widget", 10, 1)

	req := dto.CreateOrderRequest{
		ClientID:      client.ID.String(),
		Products:      []dto.OrderLineRequest{{ProductID: p.ID.String(), Quantity: 1}},
		PaymentMethod: model.PaymentPix,
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), uuid.New(), req)
		}(i)
	}
	wg.Wait()

	var failures int
	for _, err := range errs {
		if err != nil {
			var apiErr *apierror.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "insufficient stock", apiErr.Message)
			failures++
		}
	}
	// The pre-check may reject the loser before the decrement, or the
	// decrement itself may. Either way: one winner, stock at zero.
	assert.Equal(t, 1, failures)
	assert.Equal(t, 0, productRepo.products[p.ID].Quantity)
	assert.Len(t, orderRepo.orders, 1)
}

func TestGetOrder_NotFound(t *testing.T) {
	svc, _, _, _ := buildOrderSvc()

	_, err := svc.Get(context.Background(), uuid.New())
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}
