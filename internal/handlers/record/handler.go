package record

import (
	"desk/infras/otel"
	"desk/infras/webhook"
	"desk/internal/domains/record/model"
	"desk/internal/domains/record/model/dto"
	"desk/internal/domains/record/repository"
	"desk/internal/domains/record/service"
	"desk/shared/constant"
	"desk/shared/failure"
	"desk/shared/validator"
	"desk/transport/http/response"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Record
	otel    otel.Otel
}

func New(service service.Record, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
	})

	router.Route("/contacts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContact)
		routerGroup.Get("/", handler.GetContacts)
	})

	router.Route("/records/{kind}", func(routerGroup chi.Router) {
		routerGroup.Get("/export", handler.Export)
		routerGroup.Post("/import", handler.Import)
		routerGroup.Post("/archive", handler.Archive)
	})

	router.Get("/settings", handler.GetSettings)
}

// CreateBooking stores a new booking and forwards it to the webhook.
// @Summary Create a booking
// @Description Validate and store a booking, then notify the configured webhook. A failed notification is reported in the response and never undoes the save.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking saved"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid booking request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created " + res.Booking.ID)

	response.WithJSONMessage(w, http.StatusCreated, res, savedMessage(model.BookingEntityName, res.Webhook))
}

// GetBookings lists every stored booking.
// @Summary List bookings
// @Description List bookings in storage order, or newest first with sort=newest.
// @Tags Booking
// @Produce json
// @Param sort query string false "newest"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Bookings"
// @Failure 503 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	res, err := handler.service.ListBookings(ctx, r.URL.Query().Get(constant.RequestParamSort))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateContact stores a new contact inquiry and forwards it to the webhook.
// @Summary Create a contact inquiry
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Contact details"
// @Success 201 {object} response.Data[dto.ContactResponse] "Contact saved"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts [post]
func (handler *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	var req dto.CreateContactRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid contact request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateContact(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact created " + res.Contact.ID)

	response.WithJSONMessage(w, http.StatusCreated, res, savedMessage(model.ContactEntityName, res.Webhook))
}

// GetContacts lists every stored contact inquiry.
// @Summary List contacts
// @Tags Contact
// @Produce json
// @Success 200 {object} response.Data[dto.GetContactsResponse] "Contacts"
// @Failure 503 {object} response.Error
// @Router /v1/contacts [get]
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	res, err := handler.service.ListContacts(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list contacts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Export downloads a table in its storage format.
// @Summary Export records as CSV
// @Tags Record
// @Produce text/csv
// @Param kind path string true "bookings or contacts"
// @Success 200 {file} file "CSV export"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/records/{kind}/export [get]
func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	kind, err := kindParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithCSV(w, repository.FileName(kind), func(out http.ResponseWriter) error {
		return handler.service.Export(ctx, kind, out) //nolint:wrapcheck
	})
}

// Import replaces a table with an uploaded CSV file.
// @Summary Import records from CSV
// @Description Replace every record of a kind. Columns are matched case-insensitively; a file missing any column is rejected and nothing changes.
// @Tags Record
// @Accept multipart/form-data
// @Produce json
// @Param kind path string true "bookings or contacts"
// @Param file formData file true "CSV file"
// @Success 200 {object} response.Data[dto.ImportResponse] "Records imported"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/records/{kind}/import [post]
func (handler *Handler) Import(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Import")
	defer scope.End()

	kind, err := kindParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	body, closeBody, err := importBody(r)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to read import upload")

		response.WithError(w, err)

		return
	}
	defer closeBody()

	res, err := handler.service.Import(ctx, kind, body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to import records")

		response.WithError(w, err)

		return
	}

	response.WithJSONMessage(w, http.StatusOK, res, fmt.Sprintf("%d %s records imported", res.Imported, kind))
}

// Archive uploads a timestamped export to object storage.
// @Summary Archive an export to object storage
// @Tags Record
// @Produce json
// @Param kind path string true "bookings or contacts"
// @Success 201 {object} response.Data[dto.ArchiveResponse] "Export archived"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/records/{kind}/archive [post]
func (handler *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Archive")
	defer scope.End()

	kind, err := kindParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Archive(ctx, kind)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to archive export")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetSettings reports where records live and how notifications are sent.
// @Summary Show settings
// @Description The webhook header value is never included.
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Data[dto.SettingsResponse] "Settings"
// @Router /v1/settings [get]
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Settings(ctx))
}

func kindParam(r *http.Request) (model.Kind, error) {
	kind, err := model.ParseKind(chi.URLParam(r, constant.RequestParamKind))
	if err != nil {
		return kind, failure.BadRequest(err) //nolint:wrapcheck
	}

	return kind, nil
}

// importBody accepts a multipart upload in the "file" field or a raw CSV body.
func importBody(r *http.Request) (io.Reader, func(), error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constant.RequestHeaderContentType))
	if mediaType != constant.ContentTypeMultipartFormData {
		return r.Body, func() {}, nil
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return nil, nil, failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err)) //nolint:wrapcheck
	}

	file, _, err := r.FormFile(constant.FormFile)
	if err != nil {
		return nil, nil, failure.BadRequest(fmt.Errorf("missing %q upload: %w", constant.FormFile, err)) //nolint:wrapcheck
	}

	return file, func() { file.Close() }, nil
}

func savedMessage(entity string, outcome webhook.Outcome) string {
	message := entity + " saved"

	switch outcome.State {
	case webhook.StateOK:
		return message + "; " + outcome.Message
	case webhook.StateFailed:
		return message + ", but webhook failed: " + outcome.Message
	case webhook.StateSkipped:
		return message + "; webhook skipped: " + outcome.Message
	}

	return message
}
