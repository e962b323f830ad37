package repository

import (
	"context"
	"desk/config"
	"desk/infras/otel"
	"desk/infras/postgres"
	"desk/internal/domains/record/csvio"
	"desk/internal/domains/record/model"
	"desk/shared/constant"
	"desk/shared/failure"
	"desk/shared/timezone"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store persists one record table. Every call re-reads the backing medium;
// nothing is cached between calls.
type Store[T model.Record[T]] interface {
	EnsureInitialized(ctx context.Context) error
	Load(ctx context.Context) ([]T, error)
	Append(ctx context.Context, record T) (T, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) (Change[T], error)
	ReplaceAll(ctx context.Context, records []T) error
	Import(ctx context.Context, r io.Reader) (int, error)
	Export(ctx context.Context, w io.Writer) error
	Location() string
}

// Change reports a status update. Previous equals the record's status when
// the update was a no-op.
type Change[T model.Record[T]] struct {
	Record   T
	Previous model.Status
}

func (c Change[T]) Changed() bool {
	return c.Record.GetStatus() != c.Previous
}

type (
	Booking Store[model.Booking]
	Contact Store[model.Contact]
)

func NewBooking(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Booking {
	return newStore[model.Booking](cfg, db, otel)
}

func NewContact(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Contact {
	return newStore[model.Contact](cfg, db, otel)
}

func newStore[T model.Record[T]](cfg *config.Config, db *postgres.Connection, otel otel.Otel) Store[T] {
	if cfg.Store.Driver == config.StoreDriverPostgres {
		if db != nil {
			return NewPostgres[T](cfg, db, otel)
		}

		log.Error().Msg("postgres store selected without a connection, every operation will fail")

		return newUnavailable[T]()
	}

	return NewCSV[T](cfg.Store.DataDir, otel)
}

// prepare validates a new record and fills identity and status defaults.
// Line breaks are normalized first so the stored value is the one returned.
func prepare[T model.Record[T]](record T) (T, error) {
	values := model.ValueMap(record)
	for column, value := range values {
		values[column] = model.NormalizeLineBreaks(value)
	}

	record = record.FromValues(values)

	if blank := model.Blank(record); len(blank) > 0 {
		return record, failure.Validation(blank) //nolint:wrapcheck
	}

	id := strings.TrimSpace(record.GetID())
	if id == constant.Empty {
		id = uuid.NewString()
	}

	createdAt := model.ValueMap(record)[model.FieldCreatedAt]
	if createdAt == constant.Empty {
		createdAt = timezone.Timestamp(time.Now())
	}

	return record.
		WithIdentity(id, createdAt).
		WithStatus(model.NormalizeStatus(string(record.GetStatus()))), nil
}

func checkStatus(status model.Status) error {
	if status.Valid() {
		return nil
	}

	return failure.Validation( //nolint:wrapcheck
		[]string{model.FieldStatus},
		fmt.Sprintf("status must be one of New, InProgress, Done, Archived (got %q)", status),
	)
}

func duplicateID(id string) error {
	return failure.Validation([]string{model.FieldID}, fmt.Sprintf("id %s already exists", id)) //nolint:wrapcheck
}

func notFound(kind model.Kind, id string) error {
	return failure.NotFound(fmt.Sprintf("%s %s not found", kind, id)) //nolint:wrapcheck
}

// decodeImport parses an import table; malformed input is a bad request,
// missing columns a schema failure, blank or repeated ids a validation failure.
func decodeImport[T model.Record[T]](r io.Reader) ([]T, error) {
	records, err := csvio.Decode[T](r, csvio.Strict)
	if errors.Is(err, failure.ErrSchema) {
		return nil, err
	}

	if err != nil {
		return nil, failure.BadRequest(err) //nolint:wrapcheck
	}

	seen := make(map[string]struct{}, len(records))

	for i, record := range records {
		id := strings.TrimSpace(record.GetID())
		if id == constant.Empty {
			return nil, failure.Validation([]string{model.FieldID}, fmt.Sprintf("row %d has no id", i+1)) //nolint:wrapcheck
		}

		if _, ok := seen[id]; ok {
			return nil, failure.Validation([]string{model.FieldID}, "duplicate id "+id) //nolint:wrapcheck
		}

		seen[id] = struct{}{}
	}

	return records, nil
}
