package request

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/hanksha/condo-amenity-hub/store"
)

type Status string

const (
	StatusSubmitted  Status = "Submitted"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

var Types = []string{"Service Request", "Architectural Change Request", "Suggestion", "Question"}

// Request is a service request, change request, suggestion or question
// submitted by a resident.
type Request struct {
	ID          int    `json:"id"`
	Unit        string `json:"unit"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	CreatedBy   string `json:"createdBy"`
}

type Fields struct {
	Unit        string `json:"unit"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func NewRequest(id int, fields Fields, status Status, createdBy string) (Request, error) {
	req, err := build(id, fields, string(status), createdBy)

	if err != nil {
		return Request{}, err
	}

	if !slices.Contains(Types, req.Type) {
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}

	return req, nil
}

func build(id int, fields Fields, rawStatus, createdBy string) (Request, error) {
	unit := strings.TrimSpace(fields.Unit)
	reqType := strings.TrimSpace(fields.Type)
	description := strings.TrimSpace(fields.Description)

	required := []struct{ name, value string }{
		{"unit", unit},
		{"req_type", reqType},
		{"description", description},
	}

	for _, field := range required {
		if len(field.value) == 0 {
			return Request{}, fmt.Errorf("%w: %v", ErrMissingField, field.name)
		}
	}

	status, err := ParseStatus(rawStatus)

	if err != nil {
		return Request{}, err
	}

	return Request{
		ID:          id,
		Unit:        unit,
		Type:        reqType,
		Description: description,
		Status:      status,
		CreatedBy:   strings.TrimSpace(createdBy),
	}, nil
}

// ParseStatus defaults an empty status to Submitted and ignores case.
func ParseStatus(raw string) (Status, error) {
	trimmed := strings.TrimSpace(raw)

	if len(trimmed) == 0 {
		return StatusSubmitted, nil
	}

	for _, status := range []Status{StatusSubmitted, StatusInProgress, StatusResolved} {
		if strings.EqualFold(trimmed, string(status)) {
			return status, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}

func (r Request) IsOpen() bool {
	return r.Status != StatusResolved
}

func (r Request) ToRecord() store.Record {
	return store.Record{
		"id":          r.ID,
		"unit":        r.Unit,
		"req_type":    r.Type,
		"description": r.Description,
		"status":      string(r.Status),
		"created_by":  r.CreatedBy,
	}
}

// FromRecord rebuilds a stored request. Types are not checked so requests
// of a retired type still load.
func FromRecord(rec store.Record) (Request, error) {
	id, err := store.Int(rec["id"])

	if err != nil {
		return Request{}, fmt.Errorf("request id: %w", err)
	}

	return build(id, Fields{
		Unit:        store.String(rec["unit"]),
		Type:        store.String(rec["req_type"]),
		Description: store.String(rec["description"]),
	}, store.String(rec["status"]), store.String(rec["created_by"]))
}

// SortRequests puts the newest requests first.
func SortRequests(requests []Request) {
	slices.SortFunc(requests, func(a, b Request) int { return cmp.Compare(b.ID, a.ID) })
}

func toRecords(requests []Request) []store.Record {
	records := make([]store.Record, 0, len(requests))

	for _, r := range requests {
		records = append(records, r.ToRecord())
	}

	return records
}

func fromRecords(records []store.Record) ([]Request, error) {
	requests := make([]Request, 0, len(records))

	for _, rec := range records {
		r, err := FromRecord(rec)

		if err != nil {
			return nil, err
		}

		requests = append(requests, r)
	}

	return requests, nil
}
