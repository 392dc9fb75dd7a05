package job_post

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"delayer/internal/entities"
	"delayer/internal/handlers/rest/dto"
	"delayer/internal/service/runner"
	"delayer/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "job_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP синхронно выполняет триггер POST /jobs/{stage}.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stage, err := entities.ParseStage(mux.Vars(r)["stage"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var body dto.JobTrigger
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	trigger := entities.Trigger{
		Stage:        stage,
		PartitionKey: body.PartitionKey,
		Cursor:       entities.Cursor(body.Cursor),
		TraceID:      body.TraceID,
	}
	if trigger.TraceID == "" {
		trigger.TraceID = uuid.NewString()
	}
	if body.BatchStartTs != nil {
		trigger.BatchStart = *body.BatchStartTs
	}
	if body.DeliveryWeek != "" {
		week, err := entities.ParseDate(body.DeliveryWeek)
		if err != nil {
			writeError(w, http.StatusBadRequest, "deliveryWeek must be YYYY-MM-DD")
			return
		}
		trigger.DeliveryWeek = week
	}

	report, err := h.service.Run(r.Context(), trigger)
	if err != nil {
		switch {
		case errors.Is(err, runner.ErrInvalidTrigger),
			errors.Is(err, runner.ErrInvalidPartitionKey),
			errors.Is(err, entities.ErrUnknownStage):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, context.DeadlineExceeded):
			w.WriteHeader(http.StatusGatewayTimeout)
		default:
			h.log.With(
				logger.NewField("trace_id", trigger.TraceID),
				logger.NewField("error", err),
			).Error("run job")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.JobReport{
		TraceID:  trigger.TraceID,
		Pages:    report.Pages,
		Advanced: report.Advanced,
		Deferred: report.Deferred,
		Residual: report.Residual,
		Excluded: report.Excluded,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Message: message})
}
