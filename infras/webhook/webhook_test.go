package webhook_test

import (
	"context"
	"desk/infras/otel/mocks"
	"desk/infras/webhook"
	"desk/shared/failure"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDoer struct {
	calls int
}

func (d *countingDoer) Do(_ *http.Request) (*http.Response, error) {
	d.calls++

	return nil, errors.New("unexpected call")
}

func TestDispatch_EmptyEndpointSkipsNetwork(t *testing.T) {
	doer := &countingDoer{}
	dispatcher := webhook.NewWithClient(doer, mocks.NewOtel())

	outcome := dispatcher.Dispatch(context.Background(), "", map[string]string{"type": "booking_created"}, nil)

	assert.Equal(t, webhook.StateSkipped, outcome.State)
	assert.Equal(t, webhook.MessageNoEndpoint, outcome.Message)
	assert.Zero(t, doer.calls)
	assert.NoError(t, outcome.Err())
}

func TestDispatch_Success(t *testing.T) {
	var (
		gotMethod  string
		gotType    string
		gotAPIKey  string
		gotPayload map[string]any
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		gotAPIKey = r.Header.Get("X-API-Key")
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	dispatcher := webhook.New(mocks.NewOtel())
	outcome := dispatcher.Dispatch(context.Background(), server.URL, map[string]any{"type": "contact_created"}, map[string]string{"X-API-Key": "secret"})

	assert.True(t, outcome.OK())
	assert.Equal(t, http.StatusAccepted, outcome.Status)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "secret", gotAPIKey)
	assert.Equal(t, "contact_created", gotPayload["type"])
}

func TestDispatch_NonSuccessStatusTruncatesBody(t *testing.T) {
	body := strings.Repeat("å", 800)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, body)
	}))
	defer server.Close()

	outcome := webhook.New(mocks.NewOtel()).Dispatch(context.Background(), server.URL, struct{}{}, nil)

	assert.Equal(t, webhook.StateFailed, outcome.State)
	assert.Equal(t, http.StatusInternalServerError, outcome.Status)
	assert.True(t, strings.HasPrefix(outcome.Message, "webhook failed (status 500): "))

	excerpt := strings.TrimPrefix(outcome.Message, "webhook failed (status 500): ")
	assert.Equal(t, webhook.MaxBodyChars, len([]rune(excerpt)))

	err := outcome.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ErrDispatch))
}

func TestDispatch_TransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := server.URL
	server.Close()

	outcome := webhook.New(mocks.NewOtel()).Dispatch(context.Background(), url, struct{}{}, nil)

	assert.Equal(t, webhook.StateFailed, outcome.State)
	assert.Zero(t, outcome.Status)
	assert.True(t, strings.HasPrefix(outcome.Message, "webhook error: "))
}

func TestDispatch_UnmarshalablePayload(t *testing.T) {
	doer := &countingDoer{}

	outcome := webhook.NewWithClient(doer, mocks.NewOtel()).Dispatch(context.Background(), "http://example.invalid", make(chan int), nil)

	assert.Equal(t, webhook.StateFailed, outcome.State)
	assert.Zero(t, doer.calls)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", webhook.Truncate("abc", 5))
	assert.Equal(t, "ab", webhook.Truncate("abc", 2))
	assert.Equal(t, "åä", webhook.Truncate("åäö", 2))
}
