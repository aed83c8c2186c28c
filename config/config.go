package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	bk "github.com/hanksha/condo-amenity-hub/booking"
	"github.com/kelseyhightower/envconfig"
)

const (
	BackendPostgres = "postgres"
	BackendFile     = "file"
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is required for the postgres backend")

type Config struct {
	DatabaseURL    string        `envconfig:"DATABASE_URL"`
	StoreBackend   string        `envconfig:"STORE_BACKEND" default:"file"`
	DataFile       string        `envconfig:"DATA_FILE" default:"condo_data.json"`
	HTTPAddr       string        `envconfig:"HTTP_ADDR" default:":9090"`
	MinBookingDate string        `envconfig:"MIN_BOOKING_DATE" default:"2025-09-02"`
	Facilities     []string      `envconfig:"FACILITIES" default:"Meeting Room,Swimming Pool Lane,Party Room"`
	DeletePolicy   string        `envconfig:"DELETE_POLICY" default:"own-unit"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"12h"`

	minDate time.Time
	policy  bk.Policy
}

func Load() (Config, error) {
	var c Config

	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c *Config) validate() error {
	c.StoreBackend = strings.ToLower(strings.TrimSpace(c.StoreBackend))

	switch c.StoreBackend {
	case BackendFile:
	case BackendPostgres:
		if len(c.DatabaseURL) == 0 {
			return ErrMissingDatabaseURL
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	minDate, err := time.Parse(bk.DateFormat, strings.TrimSpace(c.MinBookingDate))

	if err != nil {
		return fmt.Errorf("invalid MIN_BOOKING_DATE %q: %w", c.MinBookingDate, err)
	}

	deletePolicy, err := bk.ParseDeletePolicy(c.DeletePolicy)

	if err != nil {
		return fmt.Errorf("invalid DELETE_POLICY: %w", err)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("invalid SESSION_TTL %v", c.SessionTTL)
	}

	facilities := []string{}

	for _, f := range c.Facilities {
		if f = strings.TrimSpace(f); len(f) != 0 {
			facilities = append(facilities, f)
		}
	}

	c.Facilities = facilities
	c.minDate = minDate
	c.policy = bk.Policy{Delete: deletePolicy}

	return nil
}

func (c Config) MinDate() time.Time {
	return c.minDate
}

func (c Config) Policy() bk.Policy {
	return c.policy
}
