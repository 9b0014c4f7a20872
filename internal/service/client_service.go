package service

import (
	"context"
	"strings"
	"sync"

	"orderdesk/internal/apierror"
	"orderdesk/internal/dto"
	"orderdesk/internal/model"
	"orderdesk/internal/repository"
)

type ClientService interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	List(ctx context.Context, filter dto.ClientFilter) (*dto.ClientListResponse, error)
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

// Create validates and normalizes the payload, then runs the email/name/phone
// uniqueness checks concurrently. All conflicts are collected and reported as
// a set — a request colliding on two fields names both.
func (s *clientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 3 || len(name) > 100 {
		return nil, apierror.Validation("name must be between 3 and 100 characters after trimming")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := normalizePhone(req.Phone)

	// Conflict flags are indexed, not appended, so the report order is stable.
	const (
		conflictEmail = iota
		conflictName
		conflictPhone
	)
	var conflicts [3]bool
	var wg sync.WaitGroup

	check := func(slot int, find func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := find(); err == nil {
				conflicts[slot] = true
			}
		}()
	}
	check(conflictEmail, func() error { _, err := s.repo.FindByEmail(ctx, email); return err })
	check(conflictName, func() error { _, err := s.repo.FindByName(ctx, name); return err })
	if phone != nil {
		check(conflictPhone, func() error { _, err := s.repo.FindByPhone(ctx, *phone); return err })
	}
	wg.Wait()

	var taken []string
	if conflicts[conflictEmail] {
		taken = append(taken, "email already registered")
	}
	if conflicts[conflictName] {
		taken = append(taken, "name already registered")
	}
	if conflicts[conflictPhone] {
		taken = append(taken, "phone already registered")
	}
	if len(taken) > 0 {
		return nil, apierror.Conflict("duplicate client", strings.Join(taken, "; "))
	}

	client := &model.Client{
		Name:        name,
		Email:       email,
		Phone:       phone,
		Address:     req.Address,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	resp := clientToResponse(client)
	return &resp, nil
}

func (s *clientService) List(ctx context.Context, filter dto.ClientFilter) (*dto.ClientListResponse, error) {
	clients, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, clientToResponse(&c))
	}
	return &dto.ClientListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// normalizePhone strips everything but digits. A phone that normalizes to the
// empty string is stored as nil.
func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	var b strings.Builder
	for _, r := range *phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	if normalized == "" {
		return nil
	}
	return &normalized
}

func clientToResponse(c *model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
