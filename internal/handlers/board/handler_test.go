package board_test

import (
	"desk/infras/otel/mocks"
	"desk/infras/webhook"
	boardMocks "desk/internal/domains/board/mocks"
	boardModel "desk/internal/domains/board/model"
	"desk/internal/domains/record/model"
	"desk/internal/domains/record/model/dto"
	"desk/internal/handlers/board"
	"desk/shared/failure"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*boardMocks.MockBoard, http.Handler) {
	t.Helper()

	svc := boardMocks.NewMockBoard(gomock.NewController(t))
	handler := board.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func do(router http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func TestHandler_GetBoard(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Get(gomock.Any()).Return(boardModel.Board{
		Columns: []boardModel.Column{{Status: model.StatusNew, Cards: []boardModel.Card{{ID: "b-1", Title: "Acme – Workshop"}}}},
		Total:   1,
	}, nil)

	rec, res := do(router, httptest.NewRequest(http.MethodGet, "/v1/board", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	data := res["data"].(map[string]any)
	assert.EqualValues(t, 1, data["total"])
	assert.Len(t, data["columns"], 1)
}

func TestHandler_UpdateStatus(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().RequestStatusChange(gomock.Any(), model.KindContact, "c-1", model.StatusInProgress).
		Return(dto.StatusResponse{
			Kind:     model.KindContact,
			ID:       "c-1",
			Status:   model.StatusInProgress,
			Previous: model.StatusNew,
			Changed:  true,
			Webhook:  webhook.Skipped("status change notifications disabled"),
		}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/board/contacts/c-1/status", strings.NewReader(`{"status":"pågående"}`))
	rec, res := do(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "contact c-1 moved to InProgress", res["message"])
}

func TestHandler_UpdateStatusUnchanged(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().RequestStatusChange(gomock.Any(), model.KindBooking, "b-1", model.StatusDone).
		Return(dto.StatusResponse{Kind: model.KindBooking, ID: "b-1", Status: model.StatusDone, Previous: model.StatusDone}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/board/booking/b-1/status", strings.NewReader(`{"status":"Done"}`))
	_, res := do(router, req)

	assert.Equal(t, "booking b-1 already Done", res["message"])
}

func TestHandler_UpdateStatusInvalid(t *testing.T) {
	_, router := setup(t)

	req := httptest.NewRequest(http.MethodPatch, "/v1/board/booking/b-1/status", strings.NewReader(`{"status":"Paused"}`))
	rec, res := do(router, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, []any{"status"}, res["fields"])
}

func TestHandler_UpdateStatusNotFound(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().RequestStatusChange(gomock.Any(), model.KindBooking, "missing", model.StatusDone).
		Return(dto.StatusResponse{}, failure.NotFound("booking missing not found"))

	req := httptest.NewRequest(http.MethodPatch, "/v1/board/booking/missing/status", strings.NewReader(`{"status":"Done"}`))
	rec, _ := do(router, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_UpdateStatusUnknownKind(t *testing.T) {
	_, router := setup(t)

	req := httptest.NewRequest(http.MethodPatch, "/v1/board/invoice/x/status", strings.NewReader(`{"status":"Done"}`))
	rec, _ := do(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
