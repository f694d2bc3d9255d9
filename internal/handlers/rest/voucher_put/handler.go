package voucher_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/service/voucher"
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
	var voucherUpdateDTO dto.VoucherUpdate
	err := json.NewDecoder(r.Body).Decode(&voucherUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	voucherModifyEntity := entities.VoucherModify{
		ID:            &voucherUpdateDTO.Id,
		Code:          voucherUpdateDTO.Code,
		Value:         voucherUpdateDTO.Value,
		MinOrderValue: voucherUpdateDTO.MinOrderValue,
		Quantity:      voucherUpdateDTO.Quantity,
		StartsAt:      voucherUpdateDTO.StartsAt,
		ExpiresAt:     voucherUpdateDTO.ExpiresAt,
		Active:        voucherUpdateDTO.Active,
	}
	if voucherUpdateDTO.Type != nil {
		voucherType := entities.VoucherType(*voucherUpdateDTO.Type)
		voucherModifyEntity.Type = &voucherType
	}

	res, err := h.service.UpdateVoucher(r.Context(), voucherModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, voucher.ErrMissingRequiredFields),
			errors.Is(err, voucher.ErrInvalidVoucherID),
			errors.Is(err, voucher.ErrInvalidCode),
			errors.Is(err, voucher.ErrInvalidType),
			errors.Is(err, voucher.ErrInvalidValue),
			errors.Is(err, voucher.ErrInvalidQuantity),
			errors.Is(err, voucher.ErrInvalidPeriod):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, voucher.ErrVoucherNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, voucher.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Voucher(res))
}
