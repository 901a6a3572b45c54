package handler

import (
	"encoding/json"
	"errors"
	"fliprelay/internal/core"
	"fliprelay/internal/http/handler/middleware"
	"fliprelay/internal/http/payload"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

var (
	GetRelayStatus  = "GET /relay/status"
	GetFulfillments = "GET /relay/fulfillments/{requestId}"
)

type RelayHandler struct {
	logs  *zap.SugaredLogger
	relay RelayService
}

func NewRelayHandler(logger *zap.SugaredLogger, relayService RelayService) *RelayHandler {
	return &RelayHandler{
		logs:  logger,
		relay: relayService,
	}
}

func (h *RelayHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	status, err := h.relay.Status(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve relay status",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get relay status",
			"error", err,
			"handler", GetRelayStatus,
			"request_id", requestId)
		return
	}

	h.respond(w, status, http.StatusOK, requestId)
}

func (h *RelayHandler) HandleGetFulfillments(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	fulfillmentsRequest := payload.FulfillmentsRequest{
		RequestID: r.PathValue("requestId"),
	}
	if err := fulfillmentsRequest.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request",
			"error", err,
			"handler", GetFulfillments,
			"request_id", requestId)
		return
	}

	flipRequestID := fulfillmentsRequest.CanonicalRequestID()
	fulfillments, err := h.relay.Fulfillments(r.Context(), flipRequestID)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve fulfillments",
		}
		var httpCode int
		switch {
		case errors.Is(err, core.ErrFulfillmentNotFound):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		case errors.Is(err, core.ErrJournalDisabled):
			httpCode = http.StatusServiceUnavailable
			resp.Error = err.Error()
		default:
			httpCode = http.StatusInternalServerError
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get fulfillments",
			"error", err,
			"flip_request_id", flipRequestID,
			"handler", GetFulfillments,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.FulfillmentRecord{
		"fulfillments": fulfillments,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *RelayHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
