package vouchers_get

import (
	"net/http"

	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.service.GetVouchers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	res := make([]dto.Voucher, 0, len(vouchers))
	for i := range vouchers {
		res = append(res, response.Voucher(&vouchers[i]))
	}

	response.JSON(w, h.log, http.StatusOK, res)
}
