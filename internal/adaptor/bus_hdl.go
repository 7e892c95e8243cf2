package adaptor

import (
	"encoding/json"
	"net/http"

	"bus-reservation/internal/dto/request"
	"bus-reservation/internal/usecase"
	"bus-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BusHandler struct {
	service usecase.BusService
	log     *zap.Logger
}

func NewBusHandler(service usecase.BusService, log *zap.Logger) *BusHandler {
	return &BusHandler{
		service: service,
		log:     log.With(zap.String("handler", "bus")),
	}
}

// ListBuses handles GET /api/buses
func (h *BusHandler) ListBuses(w http.ResponseWriter, r *http.Request) {
	buses, err := h.service.ListBuses(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list buses")
		return
	}

	utils.ResponseSuccess(w, "success", buses)
}

// CreateBus handles POST /api/buses
func (h *BusHandler) CreateBus(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bus, err := h.service.CreateBus(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create bus")
		return
	}

	utils.ResponseCreated(w, "success", bus)
}

// GetBus handles GET /api/buses/{id}
func (h *BusHandler) GetBus(w http.ResponseWriter, r *http.Request) {
	busID := chi.URLParam(r, "id")
	if busID == "" {
		utils.ResponseBadRequest(w, "Bus ID is required", nil)
		return
	}

	bus, err := h.service.GetBus(r.Context(), busID)
	if err != nil {
		handleServiceError(w, h.log, err, "get bus")
		return
	}

	utils.ResponseSuccess(w, "success", bus)
}

// DeleteBus handles DELETE /api/buses/{id}
func (h *BusHandler) DeleteBus(w http.ResponseWriter, r *http.Request) {
	busID := chi.URLParam(r, "id")
	if busID == "" {
		utils.ResponseBadRequest(w, "Bus ID is required", nil)
		return
	}

	if err := h.service.DeleteBus(r.Context(), busID); err != nil {
		handleServiceError(w, h.log, err, "delete bus")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
