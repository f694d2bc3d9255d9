package order_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/service/order"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var contactDTO dto.OrderContactUpdate
	err := json.NewDecoder(r.Body).Decode(&contactDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	orderModifyEntity := entities.OrderModify{
		ID:           &id,
		CustomerName: contactDTO.CustomerName,
		Email:        contactDTO.Email,
		Phone:        contactDTO.Phone,
		Address:      contactDTO.Address,
		Note:         contactDTO.Note,
	}

	res, err := h.service.UpdateOrderContact(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidCustomerName),
			errors.Is(err, order.ErrInvalidEmail),
			errors.Is(err, order.ErrInvalidPhone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Order(res))
}
