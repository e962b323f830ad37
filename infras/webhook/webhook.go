package webhook

//go:generate go run go.uber.org/mock/mockgen -source=./webhook.go -destination=./mocks/webhook_mock.go -package=mocks

import (
	"bytes"
	"context"
	"desk/infras/otel"
	"desk/shared/constant"
	"desk/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// Timeout bounds the single POST attempt.
	Timeout = 10 * time.Second
	// MaxBodyChars caps the response excerpt carried by a failed outcome.
	MaxBodyChars = 500

	MessageNoEndpoint = "no endpoint configured"

	otelAttrEndpoint = "webhook.endpoint"
	otelAttrStatus   = "webhook.status"
)

type State string

const (
	StateOK      State = "ok"
	StateSkipped State = "skipped"
	StateFailed  State = "failed"
)

// Outcome classifies one dispatch attempt. Status is zero when no HTTP
// response was received.
type Outcome struct {
	State   State  `json:"state"`
	Status  int    `json:"status,omitempty"`
	Message string `json:"message"`
}

func Ok(status int) Outcome {
	return Outcome{State: StateOK, Status: status, Message: fmt.Sprintf("webhook ok (status %d)", status)}
}

func Skipped(reason string) Outcome {
	return Outcome{State: StateSkipped, Message: reason}
}

func Failed(status int, message string) Outcome {
	return Outcome{State: StateFailed, Status: status, Message: message}
}

func (o Outcome) OK() bool {
	return o.State == StateOK
}

// Err returns a failure.Dispatch error for failed outcomes and nil otherwise.
func (o Outcome) Err() error {
	if o.State != StateFailed {
		return nil
	}

	return failure.Dispatch(o.Status, o.Message) //nolint:wrapcheck
}

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, endpoint string, payload any, headers map[string]string) Outcome
}

type dispatcherImpl struct {
	client Doer
	otel   otel.Otel
}

func New(otel otel.Otel) Dispatcher {
	return NewWithClient(&http.Client{Timeout: Timeout}, otel)
}

func NewWithClient(client Doer, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		client: client,
		otel:   otel,
	}
}

// Dispatch performs at most one POST of payload as JSON. It never returns an
// error; every fault is folded into the Outcome.
func (d *dispatcherImpl) Dispatch(ctx context.Context, endpoint string, payload any, headers map[string]string) (outcome Outcome) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".webhook.Dispatch")
	defer scope.End()
	defer func() {
		scope.SetAttribute(otelAttrStatus, outcome.Status)
		scope.TraceIfError(outcome.Err())
	}()

	if endpoint == constant.Empty {
		return Skipped(MessageNoEndpoint)
	}

	scope.SetAttribute(otelAttrEndpoint, endpoint)

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal webhook payload")

		return Failed(0, fmt.Sprintf("webhook payload error: %v", err))
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("failed to build webhook request")

		return Failed(0, fmt.Sprintf("webhook error: %v", err))
	}

	for name, value := range headers {
		if name == constant.Empty {
			continue
		}

		req.Header.Set(name, value)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := d.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("endpoint", endpoint).Msg("webhook request failed")

		return Failed(0, fmt.Sprintf("webhook error: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)

		log.Info().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("webhook delivered")

		return Ok(resp.StatusCode)
	}

	excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, MaxBodyChars*4))
	log.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("webhook rejected")

	return Failed(resp.StatusCode, fmt.Sprintf("webhook failed (status %d): %s", resp.StatusCode, Truncate(string(excerpt), MaxBodyChars)))
}

// Truncate keeps at most limit characters of text.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit])
}
