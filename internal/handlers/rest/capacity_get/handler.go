package capacity_get

import (
	"encoding/json"
	"net/http"
	"time"

	"delayer/internal/entities"
	"delayer/internal/handlers/rest/dto"
	"delayer/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	service   Service
	tenderID  string
	dayOfWeek time.Weekday
}

func New(log handlerLogger, service Service, tenderID string, dayOfWeek time.Weekday) *Handler {
	handlerLog := log.With(logger.NewField("handler", "capacity_get"))

	return &Handler{
		log:       handlerLog,
		service:   service,
		tenderID:  tenderID,
		dayOfWeek: dayOfWeek,
	}
}

// ServeHTTP GET /capacities?driver=&geoKey=&week=. Без week берется текущая неделя доставки.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	driverID := query.Get("driver")
	geoKey := query.Get("geoKey")
	if geoKey == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	week := entities.DeliveryWeek(time.Now(), h.dayOfWeek)
	if raw := query.Get("week"); raw != "" {
		parsed, err := entities.ParseDate(raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		week = parsed
	}

	scope := entities.Scope{DriverID: driverID, GeoKey: geoKey}
	capacity, err := h.service.Resolve(r.Context(), scope, h.tenderID, week)
	if err != nil {
		h.log.With(
			logger.NewField("scope", scope.Key()),
			logger.NewField("error", err),
		).Error("resolve capacity")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.Capacity{
		UnifiedDeliveryDriver: driverID,
		GeoKey:                geoKey,
		DeliveryWeek:          entities.FormatDate(week),
		Declared:              capacity.Declared,
		Used:                  capacity.Used,
		Residual:              capacity.Residual(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
