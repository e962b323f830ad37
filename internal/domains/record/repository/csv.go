package repository

import (
	"context"
	"desk/infras/otel"
	"desk/internal/domains/record/csvio"
	"desk/internal/domains/record/model"
	"desk/shared/constant"
	"desk/shared/failure"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var tableNames = map[model.Kind]string{
	model.KindBooking: model.BookingTableName,
	model.KindContact: model.ContactTableName,
}

// FileName is the data file holding records of kind inside the data directory.
func FileName(kind model.Kind) string {
	return tableNames[kind] + ".csv"
}

type csvStore[T model.Record[T]] struct {
	mu   sync.Mutex
	kind model.Kind
	path string
	otel otel.Otel
}

// NewCSV stores records of T in <dataDir>/<table>.csv.
func NewCSV[T model.Record[T]](dataDir string, otel otel.Otel) Store[T] {
	var zero T

	return &csvStore[T]{
		kind: zero.Kind(),
		path: filepath.Join(dataDir, FileName(zero.Kind())),
		otel: otel,
	}
}

func (s *csvStore[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.csv.%s.%s", constant.OtelRepositoryScopeName, s.kind, operation))
	scope.SetAttribute("file", s.path)

	return ctx, scope
}

func (s *csvStore[T]) Location() string {
	return s.path
}

func (s *csvStore[T]) EnsureInitialized(ctx context.Context) (err error) {
	_, scope := s.scope(ctx, "EnsureInitialized")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		log.Error().Err(err).Str("file", s.path).Msg("failed to create data directory")

		return failure.StorageWrite(err) //nolint:wrapcheck
	}

	_, err = os.Stat(s.path)
	if err == nil {
		return nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		log.Error().Err(err).Str("file", s.path).Msg("failed to stat data file")

		return failure.StorageRead(err) //nolint:wrapcheck
	}

	log.Info().Str("file", s.path).Msg("creating data file")

	return s.write(nil)
}

// Load never fails on malformed contents: a corrupt file is reported as a
// warning and read as an empty table.
func (s *csvStore[T]) Load(ctx context.Context) (records []T, err error) {
	_, scope := s.scope(ctx, "Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err = s.read()
	if errors.Is(err, errCorrupt) {
		log.Warn().Err(err).Str("file", s.path).Msg("data file is malformed, treating as empty")

		return []T{}, nil
	}

	return records, err
}

func (s *csvStore[T]) Append(ctx context.Context, record T) (res T, err error) {
	_, scope := s.scope(ctx, "Append")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err = prepare(record)
	if err != nil {
		return res, err
	}

	scope.SetAttribute("id", record.GetID())

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readForWrite()
	if err != nil {
		return res, err
	}

	if model.FindIndex(records, record.GetID()) >= 0 {
		return res, duplicateID(record.GetID())
	}

	if err = s.write(append(records, record)); err != nil {
		return res, err
	}

	log.Info().Str("kind", string(s.kind)).Str("id", record.GetID()).Msg("record appended")

	return record, nil
}

func (s *csvStore[T]) UpdateStatus(ctx context.Context, id string, status model.Status) (res Change[T], err error) {
	_, scope := s.scope(ctx, "UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"id": id, "status": string(status)})

	if err = checkStatus(status); err != nil {
		return res, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readForWrite()
	if err != nil {
		return res, err
	}

	index := model.FindIndex(records, id)
	if index < 0 {
		return res, notFound(s.kind, id)
	}

	res.Previous = records[index].GetStatus()
	if res.Previous == status {
		res.Record = records[index]

		return res, nil
	}

	records[index] = records[index].WithStatus(status)

	if err = s.write(records); err != nil {
		return Change[T]{}, err
	}

	log.Info().Str("kind", string(s.kind)).Str("id", id).Str("status", string(status)).Msg("record status updated")

	res.Record = records[index]

	return res, nil
}

func (s *csvStore[T]) ReplaceAll(ctx context.Context, records []T) (err error) {
	_, scope := s.scope(ctx, "ReplaceAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(records)
}

func (s *csvStore[T]) Import(ctx context.Context, r io.Reader) (count int, err error) {
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

func (s *csvStore[T]) Export(ctx context.Context, w io.Writer) (err error) {
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

var errCorrupt = errors.New("malformed data file")

// read returns an empty table for a missing file, errCorrupt for unparsable
// contents and a StorageRead failure when the file cannot be opened.
func (s *csvStore[T]) read() ([]T, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}

	if err != nil {
		log.Error().Err(err).Str("file", s.path).Msg("failed to open data file")

		return nil, failure.StorageRead(err) //nolint:wrapcheck
	}
	defer file.Close()

	records, err := csvio.Decode[T](file, csvio.Lenient)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errCorrupt, err)
	}

	return records, nil
}

// readForWrite refuses to rewrite a file it could not parse.
func (s *csvStore[T]) readForWrite() ([]T, error) {
	records, err := s.read()
	if errors.Is(err, errCorrupt) {
		log.Error().Err(err).Str("file", s.path).Msg("refusing to overwrite malformed data file")

		return nil, failure.StorageWrite(err) //nolint:wrapcheck
	}

	return records, err
}

// write replaces the file through a temp file in the same directory so
// readers never observe a partial table.
func (s *csvStore[T]) write(records []T) error {
	dir := filepath.Dir(s.path)

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return failure.StorageWrite(err) //nolint:wrapcheck
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		log.Error().Err(err).Str("file", s.path).Msg("failed to create temp file")

		return failure.StorageWrite(err) //nolint:wrapcheck
	}

	tmpPath := tmp.Name()

	if err = csvio.Encode(tmp, records); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return failure.StorageWrite(err) //nolint:wrapcheck
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmpPath)

		return failure.StorageWrite(err) //nolint:wrapcheck
	}

	if err = os.Chmod(tmpPath, filePerm); err != nil {
		os.Remove(tmpPath)

		return failure.StorageWrite(err) //nolint:wrapcheck
	}

	if err = os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		log.Error().Err(err).Str("file", s.path).Msg("failed to replace data file")

		return failure.StorageWrite(err) //nolint:wrapcheck
	}

	return nil
}
