package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"orderdesk/internal/apierror"
	"orderdesk/internal/dto"
	"orderdesk/internal/model"
	"orderdesk/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const priceCacheTTL = 60 * time.Second

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	// PriceCheck serves the public price endpoint through a Redis
	// read-through cache.
	PriceCheck(ctx context.Context, id uuid.UUID) (*dto.PriceCheckResponse, error)
}

type productService struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewProductService(repo repository.ProductRepository, rdb *redis.Client) ProductService {
	return &productService{repo: repo, rdb: rdb}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)

	// Duplicate names map to 400 on this endpoint, not 409.
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, apierror.BadRequest("product with this name already exists", name)
	}

	product := &model.Product{
		Name:     name,
		Value:    req.Value,
		Quantity: req.Quantity,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := productToResponse(product)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, productToResponse(&p))
	}
	return &dto.ProductListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productService) PriceCheck(ctx context.Context, id uuid.UUID) (*dto.PriceCheckResponse, error) {
	key := "price:" + id.String()

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var resp dto.PriceCheckResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("product not found")
	}
	resp := &dto.PriceCheckResponse{
		Name:     product.Name,
		Value:    product.Value,
		Quantity: product.Quantity,
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			// Best-effort cache fill
			s.rdb.Set(ctx, key, data, priceCacheTTL)
		}
	}
	return resp, nil
}

func productToResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Value:     p.Value,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
