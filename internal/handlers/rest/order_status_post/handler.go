package order_status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/service/order"
	"dashboard/pkg/logger"

	"github.com/gorilla/mux"
)

var errEmptyStatus = errors.New("status is required")

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "order_status_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP answers every rejection with an Error body carrying its code.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var transitionDTO dto.OrderStatusTransition
	err := json.NewDecoder(r.Body).Decode(&transitionDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, dto.BadRequest, err)
		return
	}
	if transitionDTO.Status == "" {
		response.Error(w, h.log, http.StatusBadRequest, dto.BadRequest, errEmptyStatus)
		return
	}

	id := mux.Vars(r)["id"]
	target := entities.OrderStatusType(transitionDTO.Status)

	res, err := h.service.RequestTransition(r.Context(), id, target)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrIllegalTransition):
			response.Error(w, h.log, http.StatusUnprocessableEntity, dto.IllegalTransition, err)
		case errors.Is(err, order.ErrInvalidState):
			response.Error(w, h.log, http.StatusConflict, dto.InvalidState, err)
		case errors.Is(err, order.ErrConflict):
			response.Error(w, h.log, http.StatusConflict, dto.Conflict, err)
		case errors.Is(err, order.ErrOrderNotFound):
			response.Error(w, h.log, http.StatusNotFound, dto.NotFound, err)
		case errors.Is(err, order.ErrInvalidOrderID):
			response.Error(w, h.log, http.StatusBadRequest, dto.BadRequest, err)
		default:
			h.log.With(
				logger.NewField("order_id", id),
				logger.NewField("target", target.String()),
				logger.NewField("error", err),
			).Error("order status transition failed")
			response.Error(w, h.log, http.StatusInternalServerError, dto.Internal, errors.New("internal error"))
		}
		return
	}

	h.log.Info("order status changed",
		logger.NewField("order_id", res.ID),
		logger.NewField("status", res.Status.String()),
	)

	response.JSON(w, h.log, http.StatusOK, response.Order(res))
}
