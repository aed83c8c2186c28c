package request

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/hanksha/condo-amenity-hub/session"
)

//go:generate mockgen -source=request_service.go -destination=mocks/request_service_mock.go -package=mock_request

type RequestRepository interface {
	ListRequests(ctx context.Context) ([]Request, error)
	ReplaceAllRequests(ctx context.Context, requests []Request) error
	NextID(ctx context.Context) (int, error)
	Persist(ctx context.Context) error
}

type Service struct {
	mu       sync.Mutex
	repo     RequestRepository
	logger   *slog.Logger
	requests []Request
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(repo RequestRepository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("component", "request")

	return s
}

func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests, err := s.repo.ListRequests(ctx)

	if err != nil {
		return fmt.Errorf("failed to load service requests: %w", err)
	}

	s.requests = slices.Clone(requests)
	s.logger.Info("loaded service requests", "count", len(s.requests))

	return nil
}

// ListRequests returns every request to admins and only their own to
// residents, newest first.
func (s *Service) ListRequests(ctx context.Context, user session.User) ([]Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests := []Request{}

	for _, r := range s.requests {
		if user.Admin || (len(user.Username) != 0 && r.CreatedBy == user.Username) {
			requests = append(requests, r)
		}
	}

	SortRequests(requests)

	return requests, nil
}

func (s *Service) SubmitRequest(ctx context.Context, fields Fields, user session.User) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !user.Admin {
		fields.Unit = user.Unit
	}

	req, err := NewRequest(0, fields, StatusSubmitted, user.Username)

	if err != nil {
		return Request{}, err
	}

	id, err := s.repo.NextID(ctx)

	if err != nil {
		return Request{}, fmt.Errorf("failed to allocate request id: %w", err)
	}

	req.ID = id

	if err := s.persist(ctx, append(slices.Clone(s.requests), req)); err != nil {
		return Request{}, err
	}

	s.logger.Info("request submitted", "id", req.ID, "unit", req.Unit, "type", req.Type, "user", user.Username)

	return req, nil
}

// EditRequest keeps the status and the creator. Residents cannot move a
// request to another unit.
func (s *Service) EditRequest(ctx context.Context, id int, fields Fields, user session.User) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)

	if idx < 0 {
		return Request{}, ErrRequestNotFound
	}

	existing := s.requests[idx]

	if !canModify(user, existing) {
		return Request{}, ErrNotAllowed
	}

	if !user.Admin || len(strings.TrimSpace(fields.Unit)) == 0 {
		fields.Unit = existing.Unit
	}

	updated, err := NewRequest(existing.ID, fields, existing.Status, existing.CreatedBy)

	if err != nil {
		return Request{}, err
	}

	next := slices.Clone(s.requests)
	next[idx] = updated

	if err := s.persist(ctx, next); err != nil {
		return Request{}, err
	}

	s.logger.Info("request modified", "id", id, "user", user.Username)

	return updated, nil
}

func (s *Service) DeleteRequest(ctx context.Context, id int, user session.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)

	if idx < 0 {
		return ErrRequestNotFound
	}

	if !canModify(user, s.requests[idx]) {
		return ErrNotAllowed
	}

	if err := s.persist(ctx, slices.Delete(slices.Clone(s.requests), idx, idx+1)); err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}

	s.logger.Info("request deleted", "id", id, "user", user.Username)

	return nil
}

func (s *Service) ChangeStatus(ctx context.Context, id int, rawStatus string, user session.User) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !user.Admin {
		return Request{}, ErrNotAllowed
	}

	idx := s.indexOf(id)

	if idx < 0 {
		return Request{}, ErrRequestNotFound
	}

	if len(strings.TrimSpace(rawStatus)) == 0 {
		return Request{}, fmt.Errorf("%w: status", ErrMissingField)
	}

	status, err := ParseStatus(rawStatus)

	if err != nil {
		return Request{}, err
	}

	next := slices.Clone(s.requests)
	next[idx].Status = status

	if err := s.persist(ctx, next); err != nil {
		return Request{}, fmt.Errorf("failed to change request status: %w", err)
	}

	s.logger.Info("request status changed", "id", id, "status", status, "user", user.Username)

	return next[idx], nil
}

// OpenCount is the number of requests not resolved yet.
func (s *Service) OpenCount(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	open := 0

	for _, r := range s.requests {
		if r.IsOpen() {
			open++
		}
	}

	return open
}

func canModify(user session.User, req Request) bool {
	return user.Admin || (len(user.Username) != 0 && req.CreatedBy == user.Username)
}

func (s *Service) persist(ctx context.Context, next []Request) error {
	if err := s.repo.ReplaceAllRequests(ctx, next); err != nil {
		return fmt.Errorf("failed to replace service requests: %w", err)
	}

	if err := s.repo.Persist(ctx); err != nil {
		return fmt.Errorf("failed to persist service requests: %w", err)
	}

	s.requests = next

	return nil
}

func (s *Service) indexOf(id int) int {
	return slices.IndexFunc(s.requests, func(r Request) bool { return r.ID == id })
}
