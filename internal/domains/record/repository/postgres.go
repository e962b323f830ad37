package repository

import (
	"context"
	"database/sql"
	"desk/config"
	"desk/helper"
	"desk/infras/otel"
	"desk/infras/postgres"
	"desk/internal/domains/record/csvio"
	"desk/internal/domains/record/model"
	"desk/shared/constant"
	"desk/shared/failure"
	"desk/shared/logger"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Rows keep insertion order through the seq column.
const orderColumn = "seq"

type postgresStore[T model.Record[T]] struct {
	kind  model.Kind
	table string
	db    *postgres.Connection
	cfg   *config.Config
	otel  otel.Otel

	selectQuery string
	insertQuery string
}

// NewPostgres stores records of T in the table named after their kind.
func NewPostgres[T model.Record[T]](cfg *config.Config, db *postgres.Connection, otel otel.Otel) Store[T] {
	var zero T

	table := tableNames[zero.Kind()]
	columns := zero.Columns()

	quoted := make([]string, 0, len(columns))
	placeholders := make([]string, 0, len(columns))

	for _, column := range columns {
		quoted = append(quoted, pq.QuoteIdentifier(column))
		placeholders = append(placeholders, ":"+column)
	}

	return &postgresStore[T]{
		kind:  zero.Kind(),
		table: table,
		db:    db,
		cfg:   cfg,
		otel:  otel,
		selectQuery: fmt.Sprintf("SELECT %s FROM %s",
			strings.Join(quoted, ", "), pq.QuoteIdentifier(table)),
		insertQuery: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			pq.QuoteIdentifier(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", ")),
	}
}

func (s *postgresStore[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.postgres.%s.%s", constant.OtelRepositoryScopeName, s.kind, operation))
}

func (s *postgresStore[T]) Location() string {
	return "postgres:" + s.table
}

func (s *postgresStore[T]) EnsureInitialized(ctx context.Context) (err error) {
	_, scope := s.scope(ctx, "EnsureInitialized")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = helper.Up(s.cfg); err != nil {
		logger.ErrorWithStack(err)

		return failure.StorageWrite(err) //nolint:wrapcheck
	}

	return nil
}

func (s *postgresStore[T]) Load(ctx context.Context) (records []T, err error) {
	ctx, scope := s.scope(ctx, "Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := s.selectQuery + " ORDER BY " + orderColumn
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	records = []T{}
	if err = s.db.Read.SelectContext(ctx, &records, query); err != nil {
		logger.ErrorWithStack(err)

		return nil, failure.StorageRead(err) //nolint:wrapcheck
	}

	for i, record := range records {
		records[i] = record.WithStatus(model.NormalizeStatus(string(record.GetStatus())))
	}

	return records, nil
}

func (s *postgresStore[T]) Append(ctx context.Context, record T) (res T, err error) {
	ctx, scope := s.scope(ctx, "Append")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err = prepare(record)
	if err != nil {
		return res, err
	}

	exists := false

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", pq.QuoteIdentifier(s.table))
	if err = s.db.Read.GetContext(ctx, &exists, query, record.GetID()); err != nil {
		logger.ErrorWithStack(err)

		return res, failure.StorageRead(err) //nolint:wrapcheck
	}

	if exists {
		return res, duplicateID(record.GetID())
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, s.insertQuery)

	if _, err = s.db.Write.NamedExecContext(ctx, s.insertQuery, namedArgs(record)); err != nil {
		logger.ErrorWithStack(err)

		return res, failure.StorageWrite(err) //nolint:wrapcheck
	}

	log.Info().Str("kind", string(s.kind)).Str("id", record.GetID()).Msg("record appended")

	return record, nil
}

func (s *postgresStore[T]) UpdateStatus(ctx context.Context, id string, status model.Status) (res Change[T], err error) {
	ctx, scope := s.scope(ctx, "UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkStatus(status); err != nil {
		return res, err
	}

	err = s.withTx(ctx, func(tx *sqlx.Tx) error {
		var current T

		query := s.selectQuery + " WHERE id = $1 FOR UPDATE"
		if err := tx.GetContext(ctx, &current, query, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return notFound(s.kind, id)
			}

			return failure.StorageRead(err) //nolint:wrapcheck
		}

		current = current.WithStatus(model.NormalizeStatus(string(current.GetStatus())))
		res = Change[T]{Record: current.WithStatus(status), Previous: current.GetStatus()}

		if !res.Changed() {
			return nil
		}

		update := fmt.Sprintf("UPDATE %s SET status = $1 WHERE id = $2", pq.QuoteIdentifier(s.table))
		if _, err := tx.ExecContext(ctx, update, string(status), id); err != nil {
			return failure.StorageWrite(err) //nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		return Change[T]{}, err
	}

	return res, nil
}

func (s *postgresStore[T]) ReplaceAll(ctx context.Context, records []T) (err error) {
	ctx, scope := s.scope(ctx, "ReplaceAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+pq.QuoteIdentifier(s.table)); err != nil {
			return failure.StorageWrite(err) //nolint:wrapcheck
		}

		for _, record := range records {
			if _, err := tx.NamedExecContext(ctx, s.insertQuery, namedArgs(record)); err != nil {
				return failure.StorageWrite(err) //nolint:wrapcheck
			}
		}

		return nil
	})
}

func (s *postgresStore[T]) Import(ctx context.Context, r io.Reader) (count int, err error) {
	ctx, scope := s.scope(ctx, "Import")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := decodeImport[T](r)
	if err != nil {
		return 0, err
	}

	if err = s.ReplaceAll(ctx, records); err != nil {
		return 0, err
	}

	log.Info().Str("kind", string(s.kind)).Int("count", len(records)).Msg("records imported")

	return len(records), nil
}

func (s *postgresStore[T]) Export(ctx context.Context, w io.Writer) (err error) {
	ctx, scope := s.scope(ctx, "Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if err = csvio.Encode(w, records); err != nil {
		return failure.InternalError(fmt.Errorf("failed to export %s records: %w", s.kind, err)) //nolint:wrapcheck
	}

	return nil
}

func (s *postgresStore[T]) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return failure.StorageWrite(err) //nolint:wrapcheck
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Str("table", s.table).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return failure.StorageWrite(err) //nolint:wrapcheck
	}

	return nil
}

func namedArgs[T model.Record[T]](record T) map[string]any {
	values := model.ValueMap(record)

	args := make(map[string]any, len(values))
	for column, value := range values {
		args[column] = value
	}

	return args
}
