package service_test

import (
	"context"
	"testing"

	"orderdesk/internal/apierror"
	"orderdesk/internal/dto"
	"orderdesk/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_Success(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo, nil)

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "  Widget  ",
		Value:    decimal.NewFromFloat(19.90),
		Quantity: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", resp.Name)
	assert.Equal(t, "19.9", resp.Value.String())
	assert.Equal(t, 30, resp.Quantity)
}

func TestCreateProduct_DuplicateNameIs400(t *testing.T) {
	repo := newStubProductRepo()
	seedProduct(repo, "Widget", 19.90, 30)
	svc := service.NewProductService(repo, nil)

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Widget",
		Value:    decimal.NewFromFloat(25),
		Quantity: 10,
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	// Duplicate products report 400 on this endpoint, unlike clients (409)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "product with this name already exists", apiErr.Message)
}

func TestPriceCheck_FallsBackToRepoWithoutCache(t *testing.T) {
	repo := newStubProductRepo()
	p := seedProduct(repo, "Widget", 19.90, 30)
	svc := service.NewProductService(repo, nil)

	resp, err := svc.PriceCheck(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", resp.Name)
	assert.Equal(t, "19.9", resp.Value.String())
	assert.Equal(t, 30, resp.Quantity)
}

func TestPriceCheck_UnknownProduct(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo, nil)

	_, err := svc.PriceCheck(context.Background(), uuid.New())
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}
