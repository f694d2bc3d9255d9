package orders_get

import (
	"errors"
	"net/http"
	"strconv"

	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/service/order"
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
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orders, err := h.service.GetOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidFilter):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	limit := filter.Limit
	if limit == 0 {
		limit = order.DefaultListLimit
	}

	res := dto.OrderList{
		Orders: make([]dto.Order, 0, len(orders)),
		Limit:  limit,
		Offset: filter.Offset,
	}
	for i := range orders {
		res.Orders = append(res.Orders, response.Order(&orders[i]))
	}

	response.JSON(w, h.log, http.StatusOK, res)
}

// parseFilter reads status, limit and offset. A missing limit stays zero and
// the service applies its default.
func parseFilter(r *http.Request) (entities.OrderFilter, error) {
	var filter entities.OrderFilter
	query := r.URL.Query()

	if status := query.Get("status"); status != "" {
		statusType := entities.OrderStatusType(status)
		filter.Status = &statusType
	}

	if limit := query.Get("limit"); limit != "" {
		value, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		filter.Limit = value
	}

	if offset := query.Get("offset"); offset != "" {
		value, err := strconv.ParseUint(offset, 10, 64)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		filter.Offset = value
	}

	return filter, nil
}
