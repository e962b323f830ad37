package record_test

import (
	"bytes"
	"context"
	"desk/infras/otel/mocks"
	"desk/infras/webhook"
	recordMocks "desk/internal/domains/record/mocks"
	"desk/internal/domains/record/model"
	"desk/internal/domains/record/model/dto"
	"desk/internal/handlers/record"
	"desk/shared/failure"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*recordMocks.MockRecord, http.Handler) {
	t.Helper()

	svc := recordMocks.NewMockRecord(gomock.NewController(t))
	handler := record.New(svc, mocks.NewOtel())

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

func TestHandler_CreateBooking(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		CreateBooking(gomock.Any(), dto.CreateBookingRequest{
			Customer: "Acme", Task: "Workshop", Date: "2025-06-01", Time: "14:30", Location: "Stockholm",
		}).
		Return(dto.BookingResponse{
			Booking: model.Booking{ID: "b-1", Customer: "Acme", Status: model.StatusNew},
			Webhook: webhook.Failed(500, "upstream down"),
		}, nil)

	body := `{"customer":" Acme ","task":"Workshop","date":"2025-06-01","time":"14:30","location":"Stockholm"}`
	rec, res := do(router, httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "booking saved, but webhook failed: upstream down", res["message"])

	data := res["data"].(map[string]any)
	assert.Equal(t, "b-1", data["booking"].(map[string]any)["id"])
	assert.Equal(t, "failed", data["webhook"].(map[string]any)["state"])
}

func TestHandler_CreateBookingValidation(t *testing.T) {
	_, router := setup(t)

	body := `{"customer":"","task":"Workshop","date":"2025-6-1","time":"14:30","location":""}`
	rec, res := do(router, httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.ElementsMatch(t, []any{"customer", "date", "location"}, res["fields"])
}

func TestHandler_CreateContactMalformedBody(t *testing.T) {
	_, router := setup(t)

	rec, _ := do(router, httptest.NewRequest(http.MethodPost, "/v1/contacts", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetBookingsNewest(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().ListBookings(gomock.Any(), "newest").Return(dto.GetBookingsResponse{Bookings: []model.Booking{}}, nil)

	rec, res := do(router, httptest.NewRequest(http.MethodGet, "/v1/bookings?sort=newest", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, res, "data")
}

func TestHandler_GetContactsStorageError(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().ListContacts(gomock.Any()).Return(dto.GetContactsResponse{}, failure.StorageRead(io.ErrUnexpectedEOF))

	rec, res := do(router, httptest.NewRequest(http.MethodGet, "/v1/contacts", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, res["error"], "storage read failed")
}

func TestHandler_Export(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Export(gomock.Any(), model.KindContact, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Kind, w io.Writer) error {
			_, err := io.WriteString(w, "id,created_at,name,phone,company,email,comment,status\n")

			return err
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/records/contacts/export", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="contacts.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "id,created_at,name,phone,company,email,comment,status\n", rec.Body.String())
}

func TestHandler_ExportUnknownKind(t *testing.T) {
	_, router := setup(t)

	rec, _ := do(router, httptest.NewRequest(http.MethodGet, "/v1/records/invoices/export", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ImportMultipart(t *testing.T) {
	svc, router := setup(t)

	csv := "id,created_at,customer,task,date,time,location,compensation,status\n"

	svc.EXPECT().Import(gomock.Any(), model.KindBooking, gomock.Any()).
		DoAndReturn(func(_ context.Context, kind model.Kind, r io.Reader) (dto.ImportResponse, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, csv, string(data))

			return dto.ImportResponse{Kind: kind, Imported: 0}, nil
		})

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "bookings.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/records/booking/import", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())

	rec, res := do(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0 booking records imported", res["message"])
}

func TestHandler_ImportSchemaError(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Import(gomock.Any(), model.KindBooking, gomock.Any()).
		Return(dto.ImportResponse{}, failure.Schema([]string{"status"}))

	req := httptest.NewRequest(http.MethodPost, "/v1/records/bookings/import", strings.NewReader("id\n"))
	req.Header.Set("Content-Type", "text/csv")

	rec, res := do(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{"status"}, res["fields"])
}

func TestHandler_Archive(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Archive(gomock.Any(), model.KindBooking).
		Return(dto.ArchiveResponse{Kind: model.KindBooking, URL: "https://files.example.com/exports/bookings.csv"}, nil)

	rec, res := do(router, httptest.NewRequest(http.MethodPost, "/v1/records/bookings/archive", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "https://files.example.com/exports/bookings.csv", res["data"].(map[string]any)["url"])
}

func TestHandler_GetSettings(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Settings(gomock.Any()).Return(dto.SettingsResponse{AppTitle: "Bookings"})

	rec, res := do(router, httptest.NewRequest(http.MethodGet, "/v1/settings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bookings", res["data"].(map[string]any)["app_title"])
}
