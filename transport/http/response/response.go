package response

import (
	"desk/shared/constant"
	"desk/shared/failure"
	"desk/shared/logger"
	"encoding/json"
	"fmt"
	"net/http"
)

type Data[T any] struct {
	Data    *T      `json:"data,omitempty"`
	Message *string `json:"message,omitempty"`
}

type Error struct {
	Error  *string  `json:"error,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithJSONMessage sends a JSON object together with a human readable message
func WithJSONMessage(writer http.ResponseWriter, code int, jsonPayload any, message string) {
	response(writer, code, Data[any]{Data: &jsonPayload, Message: &message})
}

// WithError sends a response with an error message; validation failures also list the offending fields
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg, Fields: failure.GetFields(err)})
}

// WithCSV streams a CSV attachment produced by write. Headers are only sent
// once write has succeeded, so a failing export still gets a JSON error.
func WithCSV(writer http.ResponseWriter, fileName string, write func(w http.ResponseWriter) error) {
	buffered := &bufferedWriter{header: writer.Header()}

	if err := write(buffered); err != nil {
		WithError(writer, err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeCSV)
	writer.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(buffered.body); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithNotFound sends a default response for unknown routes
func WithNotFound(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusNotFound, constant.ResponseErrorRouteNotFound)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}

type bufferedWriter struct {
	header http.Header
	body   []byte
}

func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.body = append(b.body, p...)

	return len(p), nil
}

func (b *bufferedWriter) WriteHeader(int) {}
