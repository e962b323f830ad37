package board

import (
	"desk/infras/otel"
	"desk/internal/domains/board/service"
	"desk/internal/domains/record/model"
	"desk/internal/domains/record/model/dto"
	"desk/shared/constant"
	"desk/shared/failure"
	"desk/shared/validator"
	"desk/transport/http/response"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Board
	otel    otel.Otel
}

func New(service service.Board, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/board", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBoard)
		routerGroup.Patch("/{kind}/{id}/status", handler.UpdateStatus)
	})
}

// GetBoard groups every booking and contact by status.
// @Summary Show the status board
// @Tags Board
// @Produce json
// @Success 200 {object} response.Data[model.Board] "Board"
// @Failure 503 {object} response.Error
// @Router /v1/board [get]
func (handler *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoard")
	defer scope.End()

	board, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build board")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, board)
}

// UpdateStatus moves a card to another column.
// @Summary Change a record status
// @Tags Board
// @Accept json
// @Produce json
// @Param kind path string true "booking or contact"
// @Param id path string true "Record ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.StatusResponse] "Status updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/board/{kind}/{id}/status [patch]
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	kind, err := model.ParseKind(chi.URLParam(r, constant.RequestParamKind))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateStatusRequest
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid status request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RequestStatusChange(ctx, kind, id, req.ToModel())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Str("id", id).Msg("failed to change status")

		response.WithError(w, err)

		return
	}

	message := fmt.Sprintf("%s %s moved to %s", kind, id, res.Status)
	if !res.Changed {
		message = fmt.Sprintf("%s %s already %s", kind, id, res.Status)
	}

	response.WithJSONMessage(w, http.StatusOK, res, message)
}
