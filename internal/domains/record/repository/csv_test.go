package repository_test

import (
	"bytes"
	"context"
	"desk/infras/otel/mocks"
	"desk/internal/domains/record/model"
	"desk/internal/domains/record/repository"
	"desk/shared/failure"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingStore(t *testing.T) (repository.Store[model.Booking], string) {
	t.Helper()

	dir := t.TempDir()
	store := repository.NewCSV[model.Booking](dir, mocks.NewOtel())
	require.NoError(t, store.EnsureInitialized(context.Background()))

	return store, filepath.Join(dir, "bookings.csv")
}

func acme() model.Booking {
	return model.Booking{
		Customer:     "Acme",
		Task:         "Workshop",
		Date:         "2025-06-01",
		Time:         "14:30",
		Location:     "Stockholm",
		Compensation: "4500 SEK",
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestCSV_EnsureInitialized(t *testing.T) {
	ctx := context.Background()
	store, path := newBookingStore(t)

	assert.Equal(t, "id,created_at,customer,task,date,time,location,compensation,status\n", readFile(t, path))

	_, err := store.Append(ctx, acme())
	require.NoError(t, err)

	before := readFile(t, path)
	require.NoError(t, store.EnsureInitialized(ctx))
	assert.Equal(t, before, readFile(t, path))
}

func TestCSV_AppendThenLoad(t *testing.T) {
	ctx := context.Background()
	store, _ := newBookingStore(t)

	first, err := store.Append(ctx, acme())
	require.NoError(t, err)

	second, err := store.Append(ctx, acme())
	require.NoError(t, err)

	records, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	got := records[0]
	assert.Equal(t, first, got)
	assert.NotEmpty(t, got.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, second.ID, records[1].ID)
	assert.Equal(t, model.StatusNew, got.Status)
	assert.Equal(t, "Acme", got.Customer)
	assert.Equal(t, "Workshop", got.Task)
	assert.Equal(t, "2025-06-01", got.Date)
	assert.Equal(t, "14:30", got.Time)
	assert.Equal(t, "Stockholm", got.Location)
	assert.Equal(t, "4500 SEK", got.Compensation)

	_, err = time.Parse("2006-01-02T15:04:05", got.CreatedAt)
	assert.NoError(t, err)
}

func TestCSV_AppendKeepsSuppliedIdentity(t *testing.T) {
	ctx := context.Background()
	store, _ := newBookingStore(t)

	booking := acme()
	booking.ID = "fixed-id"
	booking.CreatedAt = "2024-01-01T08:00:00"
	booking.Status = "Klar"

	saved, err := store.Append(ctx, booking)
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", saved.ID)
	assert.Equal(t, "2024-01-01T08:00:00", saved.CreatedAt)
	assert.Equal(t, model.StatusDone, saved.Status)

	_, err = store.Append(ctx, booking)
	assert.True(t, errors.Is(err, failure.ErrValidation))
}

func TestCSV_AppendValidation(t *testing.T) {
	ctx := context.Background()
	store, path := newBookingStore(t)

	_, err := store.Append(ctx, acme())
	require.NoError(t, err)

	before := readFile(t, path)

	_, err = store.Append(ctx, model.Booking{Customer: "  ", Task: "Gig", Date: "2025-06-01", Location: "\n"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ErrValidation))
	assert.Equal(t, []string{model.FieldCustomer, model.FieldTime, model.FieldLocation}, failure.GetFields(err))
	assert.Equal(t, before, readFile(t, path))
}

func TestCSV_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	store, path := newBookingStore(t)

	saved, err := store.Append(ctx, acme())
	require.NoError(t, err)

	other, err := store.Append(ctx, acme())
	require.NoError(t, err)

	before := readFile(t, path)

	change, err := store.UpdateStatus(ctx, saved.ID, model.StatusInProgress)
	require.NoError(t, err)
	assert.True(t, change.Changed())
	assert.Equal(t, model.StatusNew, change.Previous)
	assert.Equal(t, model.StatusInProgress, change.Record.Status)

	after := readFile(t, path)
	assert.Equal(t, strings.Replace(before, saved.ID+","+saved.CreatedAt+",Acme,Workshop,2025-06-01,14:30,Stockholm,4500 SEK,New",
		saved.ID+","+saved.CreatedAt+",Acme,Workshop,2025-06-01,14:30,Stockholm,4500 SEK,InProgress", 1), after)

	records, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.WithStatus(model.StatusInProgress), records[0])
	assert.Equal(t, other, records[1])
}

func TestCSV_UpdateStatusSameStatusSkipsWrite(t *testing.T) {
	ctx := context.Background()
	store, path := newBookingStore(t)

	saved, err := store.Append(ctx, acme())
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))

	before, err := os.Stat(path)
	require.NoError(t, err)

	res, err := store.UpdateStatus(ctx, saved.ID, model.StatusNew)
	require.NoError(t, err)
	assert.False(t, res.Changed())
	assert.Equal(t, saved, res.Record)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, before.ModTime().Equal(after.ModTime()))
}

func TestCSV_UpdateStatusUnknownID(t *testing.T) {
	ctx := context.Background()
	store, path := newBookingStore(t)

	_, err := store.Append(ctx, acme())
	require.NoError(t, err)

	before := readFile(t, path)

	_, err = store.UpdateStatus(ctx, "missing", model.StatusDone)

	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ErrNotFound))
	assert.Equal(t, before, readFile(t, path))
}

func TestCSV_UpdateStatusInvalid(t *testing.T) {
	ctx := context.Background()
	store, _ := newBookingStore(t)

	saved, err := store.Append(ctx, acme())
	require.NoError(t, err)

	_, err = store.UpdateStatus(ctx, saved.ID, model.Status("Someday"))
	assert.True(t, errors.Is(err, failure.ErrValidation))
}

func TestCSV_LoadMalformedFileIsEmpty(t *testing.T) {
	ctx := context.Background()
	store, path := newBookingStore(t)

	require.NoError(t, os.WriteFile(path, []byte("id,customer\n\"broken,row\n"), 0o644))

	records, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = store.Append(ctx, acme())
	assert.True(t, errors.Is(err, failure.ErrStorageWrite))
	assert.Equal(t, "id,customer\n\"broken,row\n", readFile(t, path))
}

func TestCSV_LoadNormalizesStatus(t *testing.T) {
	ctx := context.Background()
	store, path := newBookingStore(t)

	content := "id,created_at,customer,task,date,time,location,compensation,status\n" +
		"a,2025-01-01T10:00:00,A,T,2025-01-01,10:00,L,,Pågående\n" +
		"b,2025-01-01T10:00:00,B,T,2025-01-01,10:00,L,,\n" +
		"c,2025-01-01T10:00:00,C,T,2025-01-01,10:00,L,,bogus\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, model.StatusInProgress, records[0].Status)
	assert.Equal(t, model.StatusNew, records[1].Status)
	assert.Equal(t, model.StatusNew, records[2].Status)
}

func TestCSV_LoadUnreachableMedium(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	store := repository.NewCSV[model.Contact](blocker, mocks.NewOtel())

	_, err := store.Load(context.Background())
	assert.True(t, errors.Is(err, failure.ErrStorageRead))
}

func TestCSV_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, path := newBookingStore(t)

	saved, err := store.Append(ctx, acme())
	require.NoError(t, err)

	_, err = store.UpdateStatus(ctx, saved.ID, model.StatusDone)
	require.NoError(t, err)

	second := acme()
	second.Customer = "Bolaget, \"B\""
	second.Compensation = ""
	_, err = store.Append(ctx, second)
	require.NoError(t, err)

	before, err := store.Load(ctx)
	require.NoError(t, err)

	var exported bytes.Buffer
	require.NoError(t, store.Export(ctx, &exported))
	assert.Equal(t, readFile(t, path), exported.String())

	count, err := store.Import(ctx, bytes.NewReader(exported.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	after, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, exported.String(), readFile(t, path))
}

func TestCSV_ImportNormalizesColumnOrder(t *testing.T) {
	ctx := context.Background()
	store, path := newBookingStore(t)

	input := "Status,ID,Created_At,Customer,Task,Date,Time,Location,Compensation\n" +
		"Archived,x1,2025-01-01T10:00:00,Acme,Workshop,2025-13-45,9am,Stockholm,\n"

	count, err := store.Import(ctx, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, "id,created_at,customer,task,date,time,location,compensation,status\n"+
		"x1,2025-01-01T10:00:00,Acme,Workshop,2025-13-45,9am,Stockholm,,Archived\n", readFile(t, path))
}

func TestCSV_ImportSchemaError(t *testing.T) {
	ctx := context.Background()
	store, path := newBookingStore(t)

	_, err := store.Append(ctx, acme())
	require.NoError(t, err)

	before := readFile(t, path)

	_, err = store.Import(ctx, strings.NewReader("id,customer,task\n1,A,B\n"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ErrSchema))
	assert.Equal(t, []string{"created_at", "date", "time", "location", "compensation", "status"}, failure.GetFields(err))
	assert.Equal(t, before, readFile(t, path))
}

func TestCSV_ImportDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	store, _ := newBookingStore(t)

	input := "id,created_at,customer,task,date,time,location,compensation,status\n" +
		"dup,,A,T,2025-01-01,10:00,L,,New\n" +
		"dup,,B,T,2025-01-01,10:00,L,,New\n"

	_, err := store.Import(ctx, strings.NewReader(input))
	assert.True(t, errors.Is(err, failure.ErrValidation))
}

func TestCSV_ContactTable(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := repository.NewCSV[model.Contact](dir, mocks.NewOtel())
	require.NoError(t, store.EnsureInitialized(ctx))

	saved, err := store.Append(ctx, model.Contact{
		Name:    "Ada",
		Email:   "ada@example.com",
		Comment: "first line\nsecond line",
	})
	require.NoError(t, err)

	records, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, saved, records[0])
	assert.Equal(t, "first line\nsecond line", records[0].Comment)
	assert.Equal(t, filepath.Join(dir, "contacts.csv"), store.Location())
}

func TestCSV_AppendNormalizesLineBreaks(t *testing.T) {
	ctx := context.Background()
	store := repository.NewCSV[model.Contact](t.TempDir(), mocks.NewOtel())
	require.NoError(t, store.EnsureInitialized(ctx))

	saved, err := store.Append(ctx, model.Contact{
		Name:    "Ada",
		Email:   "ada@example.com",
		Comment: "line1\r\nline2\rline3",
	})
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\nline3", saved.Comment)

	records, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, saved, records[0])
}

func TestCSV_ImportBlankID(t *testing.T) {
	ctx := context.Background()
	store, path := newBookingStore(t)

	_, err := store.Append(ctx, acme())
	require.NoError(t, err)

	before := readFile(t, path)

	input := "id,created_at,customer,task,date,time,location,compensation,status\n" +
		"b-1,,A,T,2025-01-01,10:00,L,,New\n" +
		" ,,B,T,2025-01-01,10:00,L,,New\n"

	_, err = store.Import(ctx, strings.NewReader(input))
	assert.True(t, errors.Is(err, failure.ErrValidation))
	assert.Equal(t, []string{"id"}, failure.GetFields(err))
	assert.Contains(t, err.Error(), "row 2 has no id")
	assert.Equal(t, before, readFile(t, path))
}

type brokenWriter struct{ err error }

func (w brokenWriter) Write([]byte) (int, error) { return 0, w.err }

func TestCSV_ExportWriterFailure(t *testing.T) {
	ctx := context.Background()
	store, _ := newBookingStore(t)

	_, err := store.Append(ctx, acme())
	require.NoError(t, err)

	broken := errors.New("broken pipe")
	err = store.Export(ctx, brokenWriter{err: broken})

	assert.True(t, errors.Is(err, broken))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.ErrorContains(t, err, "failed to export booking records")
}
