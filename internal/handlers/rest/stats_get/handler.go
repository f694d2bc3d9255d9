package stats_get

import (
	"net/http"

	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/pkg/logger"
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
	salesStats, err := h.service.GetSalesStats(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get sales stats")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	byStatus := make(map[string]int64, len(salesStats.OrdersByStatus))
	for status, count := range salesStats.OrdersByStatus {
		byStatus[status.String()] = count
	}

	res := dto.SalesStats{
		TotalOrders:       salesStats.TotalOrders,
		OrdersByStatus:    byStatus,
		Revenue:           salesStats.Revenue,
		AverageOrderValue: salesStats.AverageOrderValue,
		GeneratedAt:       salesStats.GeneratedAt,
	}

	response.JSON(w, h.log, http.StatusOK, res)
}
