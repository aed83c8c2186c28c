package announcement

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/hanksha/condo-amenity-hub/session"
)

//go:generate mockgen -source=announcement_service.go -destination=mocks/announcement_service_mock.go -package=mock_announcement

type AnnouncementRepository interface {
	ListAnnouncements(ctx context.Context) ([]Announcement, error)
	ReplaceAllAnnouncements(ctx context.Context, announcements []Announcement) error
	NextID(ctx context.Context) (int, error)
	Persist(ctx context.Context) error
}

const DefaultTitle = "Today's Update"

const (
	defaultAdminContent    = "No condo updates yet. Use 'Manage' to post an announcement for residents."
	defaultResidentContent = "Today: partly cloudy with a light breeze. Remember to close balcony doors before you leave home."
)

// Service keeps the announcement board. Everyone reads it, only admins
// write to it.
type Service struct {
	mu            sync.Mutex
	repo          AnnouncementRepository
	logger        *slog.Logger
	now           func() time.Time
	announcements []Announcement
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo AnnouncementRepository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("component", "announcement")

	return s
}

func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	announcements, err := s.repo.ListAnnouncements(ctx)

	if err != nil {
		return fmt.Errorf("failed to load announcements: %w", err)
	}

	s.announcements = slices.Clone(announcements)
	SortAnnouncements(s.announcements)
	s.logger.Info("loaded announcements", "count", len(s.announcements))

	return nil
}

func (s *Service) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Announcement{}, s.announcements...), nil
}

// Latest returns the announcement with the highest id.
func (s *Service) Latest(ctx context.Context) (Announcement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.announcements) == 0 {
		return Announcement{}, false
	}

	return s.announcements[len(s.announcements)-1], true
}

// EnsureDefault posts a first "Today's Update" when the board is empty and
// returns the latest announcement. The wording depends on who opened the
// dashboard first.
func (s *Service) EnsureDefault(ctx context.Context, user session.User) (Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.announcements) != 0 {
		return s.announcements[len(s.announcements)-1], nil
	}

	content := defaultResidentContent

	if user.Admin {
		content = defaultAdminContent
	}

	id, err := s.repo.NextID(ctx)

	if err != nil {
		return Announcement{}, fmt.Errorf("failed to allocate announcement id: %w", err)
	}

	seeded, err := NewAnnouncement(id, Fields{Title: DefaultTitle, Content: content}, s.now())

	if err != nil {
		return Announcement{}, err
	}

	if err := s.persist(ctx, []Announcement{seeded}); err != nil {
		return Announcement{}, err
	}

	s.logger.Info("default announcement posted", "id", seeded.ID)

	return seeded, nil
}

func (s *Service) AddAnnouncement(ctx context.Context, fields Fields, user session.User) (Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !user.Admin {
		return Announcement{}, ErrNotAllowed
	}

	added, err := NewAnnouncement(0, fields, s.now())

	if err != nil {
		return Announcement{}, err
	}

	id, err := s.repo.NextID(ctx)

	if err != nil {
		return Announcement{}, fmt.Errorf("failed to allocate announcement id: %w", err)
	}

	added.ID = id
	next := append(slices.Clone(s.announcements), added)
	SortAnnouncements(next)

	if err := s.persist(ctx, next); err != nil {
		return Announcement{}, err
	}

	s.logger.Info("announcement posted", "id", added.ID, "title", added.Title, "user", user.Username)

	return added, nil
}

// EditAnnouncement keeps the posting time of the first version.
func (s *Service) EditAnnouncement(ctx context.Context, id int, fields Fields, user session.User) (Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !user.Admin {
		return Announcement{}, ErrNotAllowed
	}

	idx := s.indexOf(id)

	if idx < 0 {
		return Announcement{}, ErrAnnouncementNotFound
	}

	updated, err := build(id, fields, s.announcements[idx].CreatedAt)

	if err != nil {
		return Announcement{}, err
	}

	next := slices.Clone(s.announcements)
	next[idx] = updated

	if err := s.persist(ctx, next); err != nil {
		return Announcement{}, err
	}

	s.logger.Info("announcement modified", "id", id, "user", user.Username)

	return updated, nil
}

func (s *Service) DeleteAnnouncement(ctx context.Context, id int, user session.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !user.Admin {
		return ErrNotAllowed
	}

	idx := s.indexOf(id)

	if idx < 0 {
		return ErrAnnouncementNotFound
	}

	if err := s.persist(ctx, slices.Delete(slices.Clone(s.announcements), idx, idx+1)); err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	s.logger.Info("announcement deleted", "id", id, "user", user.Username)

	return nil
}

func (s *Service) persist(ctx context.Context, next []Announcement) error {
	if err := s.repo.ReplaceAllAnnouncements(ctx, next); err != nil {
		return fmt.Errorf("failed to replace announcements: %w", err)
	}

	if err := s.repo.Persist(ctx); err != nil {
		return fmt.Errorf("failed to persist announcements: %w", err)
	}

	s.announcements = next

	return nil
}

func (s *Service) indexOf(id int) int {
	return slices.IndexFunc(s.announcements, func(a Announcement) bool { return a.ID == id })
}
