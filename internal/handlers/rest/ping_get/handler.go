package ping_get

import (
	"net/http"
	"time"

	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/pkg/logger"
)

type Handler struct {
	log handlerLogger
	now func() time.Time
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "ping_get"),
	)

	return &Handler{
		log: handlerLog,
		now: time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	now := h.now().UTC()
	res := dto.PingResponse{
		Message: &message,
		Time:    &now,
	}

	response.JSON(w, h.log, http.StatusOK, res)
}
