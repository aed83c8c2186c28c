package booking

import (
	"context"
	"slices"
	"strings"
	"sync"
)

type FacilityBookingCount struct {
	Facility string `json:"facility"`
	Count    int    `json:"bookingCount"`
}

type SummaryCounts struct {
	Total       int                    `json:"total"`
	Booked      int                    `json:"booked"`
	Cancelled   int                    `json:"cancelled"`
	PerFacility []FacilityBookingCount `json:"perFacility"`
}

// Summary keeps the admin dashboard counts in step with the bookings.
type Summary struct {
	mu     sync.RWMutex
	counts SummaryCounts
}

func NewSummary() *Summary {
	return &Summary{counts: SummaryCounts{PerFacility: []FacilityBookingCount{}}}
}

func (s *Summary) BookingsChanged(_ context.Context, change Change) {
	counts := countBookings(change.Bookings)

	s.mu.Lock()
	s.counts = counts
	s.mu.Unlock()
}

func (s *Summary) Counts() SummaryCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := s.counts
	counts.PerFacility = slices.Clone(s.counts.PerFacility)

	return counts
}

// countBookings tallies bookings; per-facility counts exclude cancelled
// bookings and are ordered by count descending, then facility name.
func countBookings(bookings []Booking) SummaryCounts {
	counts := SummaryCounts{Total: len(bookings)}
	perFacility := map[string]int{}

	for _, b := range bookings {
		if b.IsCancelled() {
			counts.Cancelled++
			continue
		}

		counts.Booked++
		perFacility[b.FacilityType]++
	}

	counts.PerFacility = make([]FacilityBookingCount, 0, len(perFacility))

	for facility, count := range perFacility {
		counts.PerFacility = append(counts.PerFacility, FacilityBookingCount{Facility: facility, Count: count})
	}

	slices.SortFunc(counts.PerFacility, func(a, b FacilityBookingCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Facility, b.Facility)
	})

	return counts
}
