package voucher_post

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
	var voucherCreateDTO dto.VoucherCreate
	err := json.NewDecoder(r.Body).Decode(&voucherCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	voucherType := entities.VoucherType(voucherCreateDTO.Type)
	voucherModifyEntity := entities.VoucherModify{
		Code:          &voucherCreateDTO.Code,
		Type:          &voucherType,
		Value:         &voucherCreateDTO.Value,
		MinOrderValue: voucherCreateDTO.MinOrderValue,
		Quantity:      &voucherCreateDTO.Quantity,
		StartsAt:      &voucherCreateDTO.StartsAt,
		ExpiresAt:     &voucherCreateDTO.ExpiresAt,
		Active:        voucherCreateDTO.Active,
	}

	id, err := h.service.CreateVoucher(r.Context(), voucherModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, voucher.ErrMissingRequiredFields),
			errors.Is(err, voucher.ErrInvalidCode),
			errors.Is(err, voucher.ErrInvalidType),
			errors.Is(err, voucher.ErrInvalidValue),
			errors.Is(err, voucher.ErrInvalidQuantity),
			errors.Is(err, voucher.ErrInvalidPeriod):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, voucher.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.VoucherCreateResponse{Id: id})
}
