package model

import (
	"fmt"
	"strings"
)

// Kind names one of the two record tables.
type Kind string

const (
	KindBooking Kind = "booking"
	KindContact Kind = "contact"
)

// Kinds lists every record kind in board order.
var Kinds = []Kind{KindBooking, KindContact}

// ParseKind accepts the singular or plural kind name in any case.
func ParseKind(value string) (Kind, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(value)), "s") {
	case string(KindBooking):
		return KindBooking, nil
	case string(KindContact):
		return KindContact, nil
	}

	return "", fmt.Errorf("unknown record kind %q", value)
}

// Status is the lifecycle tag shared by bookings and contacts.
type Status string

const (
	StatusNew        Status = "New"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
	StatusArchived   Status = "Archived"
)

// Statuses holds the four statuses in board display order.
var Statuses = []Status{StatusNew, StatusInProgress, StatusDone, StatusArchived}

// labels from data files written by the earlier Swedish-language tool.
var legacyStatuses = map[string]Status{
	"ny":       StatusNew,
	"pågående": StatusInProgress,
	"klar":     StatusDone,
	"arkiv":    StatusArchived,
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusDone, StatusArchived:
		return true
	}

	return false
}

// ParseStatus resolves a status name case-insensitively, including legacy labels.
func ParseStatus(value string) (Status, bool) {
	trimmed := strings.TrimSpace(value)

	for _, status := range Statuses {
		if strings.EqualFold(trimmed, string(status)) {
			return status, true
		}
	}

	status, ok := legacyStatuses[strings.ToLower(trimmed)]

	return status, ok
}

// NormalizeStatus coerces absent or unrecognized values to StatusNew.
func NormalizeStatus(value string) Status {
	if status, ok := ParseStatus(value); ok {
		return status
	}

	return StatusNew
}

// Record is implemented by Booking and Contact. Methods are value receivers
// returning copies so stores can stay generic over T.
type Record[T any] interface {
	Kind() Kind
	Columns() []string
	Required() []string
	GetID() string
	GetStatus() Status
	Values() []string
	FromValues(values map[string]string) T
	WithIdentity(id, createdAt string) T
	WithStatus(status Status) T
}

// Blank returns the required columns of record whose values are empty after trimming,
// in column order.
func Blank[T Record[T]](record T) []string {
	values := ValueMap(record)

	var blank []string

	for _, column := range record.Required() {
		if strings.TrimSpace(values[column]) == "" {
			blank = append(blank, column)
		}
	}

	return blank
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeLineBreaks converts CRLF and lone CR to LF, the only line break
// the CSV codec round-trips.
func NormalizeLineBreaks(value string) string {
	return lineBreaks.Replace(value)
}

// ValueMap keys a record's values by column name.
func ValueMap[T Record[T]](record T) map[string]string {
	columns := record.Columns()
	values := record.Values()

	res := make(map[string]string, len(columns))
	for i, column := range columns {
		res[column] = values[i]
	}

	return res
}

// FindIndex returns the position of the record with id, or -1.
func FindIndex[T Record[T]](records []T, id string) int {
	for i, record := range records {
		if record.GetID() == id {
			return i
		}
	}

	return -1
}
