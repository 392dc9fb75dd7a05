package export_post

import (
	"encoding/json"
	"net/http"
	"time"

	"delayer/internal/entities"
	"delayer/internal/handlers/rest/dto"
	"delayer/pkg/logger"
)

const noDataMessage = "no data for the requested delivery week"

type Handler struct {
	log       handlerLogger
	service   Service
	dayOfWeek time.Weekday
}

func New(log handlerLogger, service Service, dayOfWeek time.Weekday) *Handler {
	handlerLog := log.With(logger.NewField("handler", "export_post"))

	return &Handler{
		log:       handlerLog,
		service:   service,
		dayOfWeek: dayOfWeek,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	week := entities.DeliveryWeek(time.Now(), h.dayOfWeek)
	if raw := r.URL.Query().Get("week"); raw != "" {
		parsed, err := entities.ParseDate(raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		week = parsed
	}

	res, err := h.service.ExportUsedCapacities(r.Context(), week)
	if err != nil {
		h.log.With(
			logger.NewField("week", entities.FormatDate(week)),
			logger.NewField("error", err),
		).Error("export used capacities")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.ExportResponse{
		Key:  res.Key,
		URL:  res.URL,
		Rows: res.Rows,
	}
	if res.URL == "" {
		response.Message = noDataMessage
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
