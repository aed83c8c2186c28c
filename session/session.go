package session

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	RoleResident = "resident"
	RoleAdmin    = "admin"
)

// User is the acting user of a session. There is no authentication behind
// it: whatever was entered at login is trusted.
type User struct {
	Username string `json:"username"`
	Unit     string `json:"unit"`
	Admin    bool   `json:"admin"`
}

func (u User) Role() string {
	if u.Admin {
		return RoleAdmin
	}
	return RoleResident
}

type Store struct {
	ttl   time.Duration
	cache *cache.Cache
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:   ttl,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s *Store) Login(username, role, unit string) (string, User, error) {
	username = strings.TrimSpace(username)
	unit = strings.TrimSpace(unit)
	role = strings.ToLower(strings.TrimSpace(role))

	if role == "" {
		role = RoleResident
	}

	if len(username) == 0 {
		return "", User{}, ErrMissingUsername
	}

	if role != RoleResident && role != RoleAdmin {
		return "", User{}, ErrUnknownRole
	}

	if role == RoleResident && len(unit) == 0 {
		return "", User{}, ErrMissingUnit
	}

	user := User{
		Username: username,
		Unit:     unit,
		Admin:    role == RoleAdmin,
	}

	token := uuid.NewString()
	s.cache.Set(token, user, cache.DefaultExpiration)

	return token, user, nil
}

// Lookup resolves a token and slides its expiration forward.
func (s *Store) Lookup(token string) (User, bool) {
	cached, found := s.cache.Get(token)

	if !found {
		return User{}, false
	}

	user := cached.(User)

	// Replace fails once Logout has removed the token.
	if err := s.cache.Replace(token, user, cache.DefaultExpiration); err != nil {
		return User{}, false
	}

	return user, true
}

func (s *Store) Logout(token string) {
	s.cache.Delete(token)
}
