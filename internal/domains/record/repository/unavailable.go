package repository

import (
	"context"
	"desk/internal/domains/record/model"
	"desk/shared/failure"
	"errors"
	"io"
)

var ErrNoConnection = errors.New("postgres store has no database connection")

// unavailableStore stands in for the postgres store when the database could
// not be reached at startup. Reads fail with StorageRead and writes with
// StorageWrite, so no data lands anywhere else.
type unavailableStore[T model.Record[T]] struct {
	table string
}

func newUnavailable[T model.Record[T]]() Store[T] {
	var zero T

	return &unavailableStore[T]{table: tableNames[zero.Kind()]}
}

func (s *unavailableStore[T]) Location() string {
	return "postgres:" + s.table + " (unavailable)"
}

func (s *unavailableStore[T]) EnsureInitialized(context.Context) error {
	return failure.StorageWrite(ErrNoConnection) //nolint:wrapcheck
}

func (s *unavailableStore[T]) Load(context.Context) ([]T, error) {
	return nil, failure.StorageRead(ErrNoConnection) //nolint:wrapcheck
}

func (s *unavailableStore[T]) Append(_ context.Context, record T) (T, error) {
	return record, failure.StorageWrite(ErrNoConnection) //nolint:wrapcheck
}

func (s *unavailableStore[T]) UpdateStatus(context.Context, string, model.Status) (Change[T], error) {
	return Change[T]{}, failure.StorageWrite(ErrNoConnection) //nolint:wrapcheck
}

func (s *unavailableStore[T]) ReplaceAll(context.Context, []T) error {
	return failure.StorageWrite(ErrNoConnection) //nolint:wrapcheck
}

func (s *unavailableStore[T]) Import(context.Context, io.Reader) (int, error) {
	return 0, failure.StorageWrite(ErrNoConnection) //nolint:wrapcheck
}

func (s *unavailableStore[T]) Export(context.Context, io.Writer) error {
	return failure.StorageRead(ErrNoConnection) //nolint:wrapcheck
}
