package parcel

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/hanksha/condo-amenity-hub/session"
)

//go:generate mockgen -source=parcel_service.go -destination=mocks/parcel_service_mock.go -package=mock_parcel

type ParcelRepository interface {
	ListParcels(ctx context.Context) ([]Parcel, error)
	ReplaceAllParcels(ctx context.Context, parcels []Parcel) error
	NextID(ctx context.Context) (int, error)
	Persist(ctx context.Context) error
}

// Service keeps the package log. Only admins record packages, residents
// see and pick up the ones for their unit.
type Service struct {
	mu      sync.Mutex
	repo    ParcelRepository
	logger  *slog.Logger
	parcels []Parcel
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(repo ParcelRepository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("component", "parcel")

	return s
}

func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parcels, err := s.repo.ListParcels(ctx)

	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	s.parcels = slices.Clone(parcels)
	s.logger.Info("loaded packages", "count", len(s.parcels))

	return nil
}

// ListParcels returns the packages visible to user, narrowed to units
// starting with unitPrefix when it is not empty.
func (s *Service) ListParcels(ctx context.Context, user session.User, unitPrefix string) ([]Parcel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unitPrefix = strings.TrimSpace(unitPrefix)
	parcels := []Parcel{}

	for _, p := range s.parcels {
		if !user.Admin && p.Unit != user.Unit {
			continue
		}

		if !strings.HasPrefix(p.Unit, unitPrefix) {
			continue
		}

		parcels = append(parcels, p)
	}

	SortParcels(parcels)

	return parcels, nil
}

func (s *Service) AddParcel(ctx context.Context, fields Fields, user session.User) (Parcel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !user.Admin {
		return Parcel{}, ErrNotAllowed
	}

	parcel, err := NewParcel(0, fields)

	if err != nil {
		return Parcel{}, err
	}

	id, err := s.repo.NextID(ctx)

	if err != nil {
		return Parcel{}, fmt.Errorf("failed to allocate package id: %w", err)
	}

	parcel.ID = id

	if err := s.persist(ctx, append(slices.Clone(s.parcels), parcel)); err != nil {
		return Parcel{}, err
	}

	s.logger.Info("package recorded", "id", parcel.ID, "unit", parcel.Unit, "carrier", parcel.Carrier, "user", user.Username)
	s.logger.Info("resident notified", "unit", parcel.Unit, "id", parcel.ID)

	return parcel, nil
}

func (s *Service) EditParcel(ctx context.Context, id int, fields Fields, user session.User) (Parcel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !user.Admin {
		return Parcel{}, ErrNotAllowed
	}

	idx := s.indexOf(id)

	if idx < 0 {
		return Parcel{}, ErrParcelNotFound
	}

	updated, err := NewParcel(id, fields)

	if err != nil {
		return Parcel{}, err
	}

	next := slices.Clone(s.parcels)
	next[idx] = updated

	if err := s.persist(ctx, next); err != nil {
		return Parcel{}, err
	}

	s.logger.Info("package modified", "id", id, "user", user.Username)
	s.logger.Info("resident notified", "unit", updated.Unit, "id", id)

	return updated, nil
}

func (s *Service) DeleteParcel(ctx context.Context, id int, user session.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !user.Admin {
		return ErrNotAllowed
	}

	idx := s.indexOf(id)

	if idx < 0 {
		return ErrParcelNotFound
	}

	if err := s.persist(ctx, slices.Delete(slices.Clone(s.parcels), idx, idx+1)); err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}

	s.logger.Info("package deleted", "id", id, "user", user.Username)

	return nil
}

// MarkPickedUp is open to admins and to residents of the package's unit.
func (s *Service) MarkPickedUp(ctx context.Context, id int, user session.User) (Parcel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)

	if idx < 0 {
		return Parcel{}, ErrParcelNotFound
	}

	if !user.Admin && s.parcels[idx].Unit != user.Unit {
		return Parcel{}, ErrNotAllowed
	}

	if s.parcels[idx].PickedUp {
		return s.parcels[idx], nil
	}

	next := slices.Clone(s.parcels)
	next[idx].PickedUp = true

	if err := s.persist(ctx, next); err != nil {
		return Parcel{}, fmt.Errorf("failed to mark package picked up: %w", err)
	}

	s.logger.Info("package picked up", "id", id, "unit", next[idx].Unit, "user", user.Username)

	return next[idx], nil
}

// WaitingCount is the number of packages not picked up yet.
func (s *Service) WaitingCount(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	waiting := 0

	for _, p := range s.parcels {
		if !p.PickedUp {
			waiting++
		}
	}

	return waiting
}

func (s *Service) persist(ctx context.Context, next []Parcel) error {
	if err := s.repo.ReplaceAllParcels(ctx, next); err != nil {
		return fmt.Errorf("failed to replace packages: %w", err)
	}

	if err := s.repo.Persist(ctx); err != nil {
		return fmt.Errorf("failed to persist packages: %w", err)
	}

	s.parcels = next

	return nil
}

func (s *Service) indexOf(id int) int {
	return slices.IndexFunc(s.parcels, func(p Parcel) bool { return p.ID == id })
}
