package booking

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hanksha/condo-amenity-hub/session"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/booking_service_mock.go -package=mock_booking

// BookingRepository is the durable record store. ReplaceAllBookings stages
// the whole collection, Persist makes it durable.
type BookingRepository interface {
	ListBookings(ctx context.Context) ([]Booking, error)
	ReplaceAllBookings(ctx context.Context, bookings []Booking) error
	NextID(ctx context.Context) (int, error)
	Persist(ctx context.Context) error
}

var DefaultFacilities = []string{"Meeting Room", "Swimming Pool Lane", "Party Room"}

// Service owns the in-memory booking collection for the session. The store
// is read once by Load and fully rewritten after every successful mutation.
type Service struct {
	mu         sync.Mutex
	repo       BookingRepository
	observers  Observers
	summary    *Summary
	policy     Policy
	minDate    time.Time
	facilities []string
	logger     *slog.Logger
	bookings   []Booking
}

type Option func(*Service)

func WithMinDate(minDate time.Time) Option {
	return func(s *Service) { s.minDate = minDate }
}

func WithFacilities(facilities []string) Option {
	return func(s *Service) {
		if len(facilities) != 0 {
			s.facilities = slices.Clone(facilities)
		}
	}
}

func WithPolicy(policy Policy) Option {
	return func(s *Service) { s.policy = policy }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(repo BookingRepository, observer ChangeObserver, opts ...Option) *Service {
	summary := NewSummary()

	s := &Service{
		repo:       repo,
		observers:  Observers{summary},
		summary:    summary,
		policy:     DefaultPolicy(),
		minDate:    DefaultMinBookingDate,
		facilities: slices.Clone(DefaultFacilities),
		logger:     slog.Default(),
	}

	if observer != nil {
		s.observers = append(s.observers, observer)
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("component", "booking")

	return s
}

// Load replaces the session's bookings with the store's content.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.repo.ListBookings(ctx)

	if err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}

	s.bookings = slices.Clone(bookings)
	s.logger.Info("loaded bookings", "count", len(s.bookings))
	s.notify(ctx, OpLoad, Booking{}, session.User{})

	return nil
}

func (s *Service) ListBookings(ctx context.Context) ([]Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sorted(), nil
}

func (s *Service) FindBookingByID(ctx context.Context, id int) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)

	if idx < 0 {
		return Booking{}, ErrBookingNotFound
	}

	return s.bookings[idx], nil
}

func (s *Service) FindBookingsPerUnit(ctx context.Context, unit string) ([]Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unit = strings.TrimSpace(unit)
	bookings := []Booking{}

	for _, b := range s.sorted() {
		if b.Unit == unit {
			bookings = append(bookings, b)
		}
	}

	return bookings, nil
}

func (s *Service) Facilities() []string {
	return slices.Clone(s.facilities)
}

func (s *Service) Summary(ctx context.Context) SummaryCounts {
	return s.summary.Counts()
}

func (s *Service) CreateBooking(ctx context.Context, fields Fields, user session.User) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Residents book for the unit they logged in with.
	if !user.Admin {
		fields.Unit = user.Unit
	}

	booking, err := NewBooking(0, fields, user.Username, s.minDate)

	if err != nil {
		return Booking{}, err
	}

	if err := s.checkFacility(booking.FacilityType); err != nil {
		return Booking{}, err
	}

	id, err := s.repo.NextID(ctx)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to allocate booking id: %w", err)
	}

	booking.ID = id

	if HasConflict(booking, s.bookings) {
		return Booking{}, ErrConflict
	}

	next := append(slices.Clone(s.bookings), booking)

	if err := s.persist(ctx, next); err != nil {
		return Booking{}, err
	}

	s.logger.Info("booking created", "id", booking.ID, "unit", booking.Unit, "facility", booking.FacilityType, "user", user.Username)
	s.notify(ctx, OpCreate, booking, user)

	return booking, nil
}

// EditBooking replaces the fields of a booking. The creator is kept, and an
// empty unit or status keeps the current value.
func (s *Service) EditBooking(ctx context.Context, id int, fields Fields, user session.User) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)

	if idx < 0 {
		return Booking{}, ErrBookingNotFound
	}

	existing := s.bookings[idx]

	if !s.policy.CanModify(user, existing, ActionEdit) {
		return Booking{}, ErrNotAllowed
	}

	if len(strings.TrimSpace(fields.Unit)) == 0 {
		fields.Unit = existing.Unit
	}

	if len(strings.TrimSpace(fields.Status)) == 0 {
		fields.Status = string(existing.Status)
	}

	updated, err := NewBooking(existing.ID, fields, existing.CreatedBy, s.minDate)

	if err != nil {
		return Booking{}, err
	}

	if err := s.checkFacility(updated.FacilityType); err != nil {
		return Booking{}, err
	}

	if HasConflict(updated, s.bookings) {
		return Booking{}, ErrConflict
	}

	next := slices.Clone(s.bookings)
	next[idx] = updated

	if err := s.persist(ctx, next); err != nil {
		return Booking{}, err
	}

	s.logger.Info("booking modified", "id", updated.ID, "user", user.Username)
	s.notify(ctx, OpEdit, updated, user)

	return updated, nil
}

func (s *Service) CancelBooking(ctx context.Context, id int, user session.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)

	if idx < 0 {
		return ErrBookingNotFound
	}

	if !s.policy.CanModify(user, s.bookings[idx], ActionCancel) {
		return ErrNotAllowed
	}

	if s.bookings[idx].IsCancelled() {
		return ErrAlreadyCancelled
	}

	next := slices.Clone(s.bookings)
	next[idx].Status = StatusCancelled

	if err := s.persist(ctx, next); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.logger.Info("booking canceled", "id", id, "user", user.Username)
	s.notify(ctx, OpCancel, next[idx], user)

	return nil
}

// DeleteBooking removes a booking. Deleting an unknown id is a no-op.
func (s *Service) DeleteBooking(ctx context.Context, id int, user session.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)

	if idx < 0 {
		return nil
	}

	deleted := s.bookings[idx]

	if !s.policy.CanModify(user, deleted, ActionDelete) {
		return ErrNotAllowed
	}

	next := slices.Delete(slices.Clone(s.bookings), idx, idx+1)

	if err := s.persist(ctx, next); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.logger.Info("booking deleted", "id", id, "user", user.Username)
	s.notify(ctx, OpDelete, deleted, user)

	return nil
}

// persist writes next to the store and only then adopts it, so a failed
// write leaves the session untouched.
func (s *Service) persist(ctx context.Context, next []Booking) error {
	if err := s.repo.ReplaceAllBookings(ctx, next); err != nil {
		return fmt.Errorf("failed to replace bookings: %w", err)
	}

	if err := s.repo.Persist(ctx); err != nil {
		return fmt.Errorf("failed to persist bookings: %w", err)
	}

	s.bookings = next

	return nil
}

func (s *Service) notify(ctx context.Context, op Op, booking Booking, user session.User) {
	s.observers.BookingsChanged(ctx, Change{
		Op:       op,
		Booking:  booking,
		Actor:    user,
		Bookings: s.sorted(),
	})
}

func (s *Service) checkFacility(facility string) error {
	if !slices.Contains(s.facilities, facility) {
		return fmt.Errorf("%w: %q", ErrUnknownFacility, facility)
	}
	return nil
}

func (s *Service) indexOf(id int) int {
	return slices.IndexFunc(s.bookings, func(b Booking) bool { return b.ID == id })
}

func (s *Service) sorted() []Booking {
	bookings := append([]Booking{}, s.bookings...)
	SortBookings(bookings)
	return bookings
}

// SortBookings orders bookings by date, start time, then id.
func SortBookings(bookings []Booking) {
	slices.SortFunc(bookings, func(a, b Booking) int {
		return cmp.Or(
			strings.Compare(a.Date, b.Date),
			strings.Compare(a.StartTime, b.StartTime),
			cmp.Compare(a.ID, b.ID),
		)
	})
}
