package voucher_get

import (
	"errors"
	"net/http"
	"strconv"

	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/service/voucher"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	voucherEntity, err := h.service.GetVoucher(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, voucher.ErrVoucherNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, voucher.ErrInvalidVoucherID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Voucher(voucherEntity))
}
