package main

import (
	"bytes"
	"context"
	"desk/config"
	"desk/di"
	"desk/infras/kafka"
	kafkaMocks "desk/infras/kafka/mocks"
	"desk/infras/otel/mocks"
	"desk/infras/webhook"
	boardModel "desk/internal/domains/board/model"
	boardMocks "desk/internal/domains/board/mocks"
	notificationService "desk/internal/domains/notification/service"
	recordMocks "desk/internal/domains/record/mocks"
	"desk/internal/domains/record/model"
	"desk/internal/domains/record/model/dto"
	"io"
	"os"
	"path/filepath"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	records *recordMocks.MockRecord
	board   *boardMocks.MockBoard
	events  *kafkaMocks.MockClient
	app     *di.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		records: recordMocks.NewMockRecord(ctrl),
		board:   boardMocks.NewMockBoard(ctrl),
		events:  kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Kafka.Topic = "desk.records"

	f.app = &di.App{
		Config:  cfg,
		Otel:    mocks.NewOtel(),
		Events:  f.events,
		Records: f.records,
		Board:   f.board,
	}

	f.events.EXPECT().Close().Return(nil).AnyTimes()

	return f
}

func (f *fixture) run(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(func() *di.App { return f.app })
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func TestCLI_Init(t *testing.T) {
	f := newFixture(t)

	f.records.EXPECT().EnsureInitialized(gomock.Any()).Return(nil)

	out, err := f.run("init")

	require.NoError(t, err)
	assert.Equal(t, "stores ready\n", out)
}

func TestCLI_Export(t *testing.T) {
	f := newFixture(t)

	f.records.EXPECT().Export(gomock.Any(), model.KindContact, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Kind, w io.Writer) error {
			_, err := io.WriteString(w, "id,name\n")

			return err
		})

	out, err := f.run("export", "contacts")

	require.NoError(t, err)
	assert.Equal(t, "id,name\n", out)
}

func TestCLI_ExportUnknownKind(t *testing.T) {
	f := newFixture(t)

	_, err := f.run("export", "invoices")

	assert.Error(t, err)
}

func TestCLI_Import(t *testing.T) {
	f := newFixture(t)

	path := filepath.Join(t.TempDir(), "bookings.csv")
	require.NoError(t, os.WriteFile(path, []byte("id\n"), 0o600))

	f.records.EXPECT().Import(gomock.Any(), model.KindBooking, gomock.Any()).
		Return(dto.ImportResponse{Kind: model.KindBooking, Imported: 3}, nil)

	out, err := f.run("import", "booking", path)

	require.NoError(t, err)
	assert.Equal(t, "3 booking records imported\n", out)
}

func TestCLI_ImportMissingFile(t *testing.T) {
	f := newFixture(t)

	_, err := f.run("import", "booking", filepath.Join(t.TempDir(), "missing.csv"))

	assert.ErrorContains(t, err, "failed to open")
}

func TestCLI_Board(t *testing.T) {
	f := newFixture(t)

	f.board.EXPECT().Get(gomock.Any()).Return(boardModel.Board{
		Columns: []boardModel.Column{
			{Status: model.StatusNew, Cards: []boardModel.Card{{
				Kind:        model.KindBooking,
				ID:          "b-1",
				Title:       "Acme – Workshop",
				Description: "📅 2025-06-01 14:30\n📍 Stockholm",
				Status:      model.StatusNew,
			}}},
			{Status: model.StatusDone, Cards: []boardModel.Card{}},
		},
		Total: 1,
	}, nil)

	out, err := f.run("board")

	require.NoError(t, err)
	assert.Equal(t, "New (1)\n"+
		"  [booking b-1] Acme – Workshop\n"+
		"      📅 2025-06-01 14:30\n"+
		"      📍 Stockholm\n"+
		"Done (0)\n", out)
}

func TestCLI_Status(t *testing.T) {
	f := newFixture(t)

	f.records.EXPECT().UpdateStatus(gomock.Any(), model.KindContact, "c-1", model.StatusDone).
		Return(dto.StatusResponse{
			Kind:     model.KindContact,
			ID:       "c-1",
			Status:   model.StatusDone,
			Previous: model.StatusNew,
			Changed:  true,
			Webhook:  webhook.Skipped(webhook.MessageNoEndpoint),
		}, nil)

	out, err := f.run("status", "contact", "c-1", "done")

	require.NoError(t, err)
	assert.Equal(t, "contact c-1 moved from New to Done (no endpoint configured)\n", out)
}

func TestCLI_StatusUnchanged(t *testing.T) {
	f := newFixture(t)

	f.records.EXPECT().UpdateStatus(gomock.Any(), model.KindBooking, "b-1", model.StatusNew).
		Return(dto.StatusResponse{Kind: model.KindBooking, ID: "b-1", Status: model.StatusNew}, nil)

	out, err := f.run("status", "booking", "b-1", "New")

	require.NoError(t, err)
	assert.Equal(t, "booking b-1 already New\n", out)
}

func TestCLI_StatusUnknown(t *testing.T) {
	f := newFixture(t)

	_, err := f.run("status", "booking", "b-1", "Cancelled")

	assert.ErrorContains(t, err, `unknown status "Cancelled"`)
}

func TestCLI_EventsDisabled(t *testing.T) {
	f := newFixture(t)

	f.events.EXPECT().Enabled().Return(false)

	_, err := f.run("events")

	assert.ErrorIs(t, err, ErrEventsDisabled)
}

func TestCLI_Events(t *testing.T) {
	f := newFixture(t)

	message := kafka.Message{
		Key: "booking:b-1",
		Value: notificationService.Event{
			Type:    "booking_created",
			Kind:    model.KindBooking,
			ID:      "b-1",
			Webhook: webhook.Ok(200),
		},
	}
	encoded, err := message.ToKafkaMessage()
	require.NoError(t, err)

	f.events.EXPECT().Enabled().Return(true)
	f.events.EXPECT().Consume(gomock.Any(), "audit", "desk.records", gomock.Any()).
		Do(func(_ context.Context, _, _ string, handler func(kafkaGo.Message)) {
			handler(kafkaGo.Message{Value: []byte("not json")})
			handler(encoded)
		})

	out, err := f.run("events", "--group", "audit")

	require.NoError(t, err)
	assert.Contains(t, out, `"type":"booking_created"`)
	assert.Contains(t, out, `"id":"b-1"`)
	assert.NotContains(t, out, "not json")
}

func TestCLI_BoardSingleStatus(t *testing.T) {
	f := newFixture(t)

	f.board.EXPECT().Get(gomock.Any()).Return(boardModel.Board{
		Columns: []boardModel.Column{
			{Status: model.StatusNew, Cards: []boardModel.Card{{Kind: model.KindBooking, ID: "b-1", Title: "Acme – Workshop"}}},
			{Status: model.StatusDone, Cards: []boardModel.Card{{Kind: model.KindContact, ID: "c-1", Title: "Jane"}}},
		},
		Total: 2,
	}, nil)

	out, err := f.run("board", "--status", "done")

	require.NoError(t, err)
	assert.Equal(t, "Done (1)\n  [contact c-1] Jane\n      \n", out)
}

func TestCLI_BoardUnknownStatus(t *testing.T) {
	f := newFixture(t)

	f.board.EXPECT().Get(gomock.Any()).Return(boardModel.Board{}, nil)

	_, err := f.run("board", "-s", "Cancelled")

	assert.ErrorContains(t, err, `unknown status "Cancelled"`)
}
