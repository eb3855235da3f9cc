package handler

import (
	"net/http"

	"hospital-directory/config"
	"hospital-directory/internal/delivery/dto"
	"hospital-directory/pkg/response"
)

type KioskHandler struct {
	config config.KioskConfig
}

func NewKioskHandler(cfg config.KioskConfig) *KioskHandler {
	return &KioskHandler{config: cfg}
}

func (h *KioskHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Kiosk settings retrieved successfully", dto.KioskResponse{
		Title:              h.config.Title,
		IdleTimeoutSeconds: int(h.config.IdleTimeout.Seconds()),
	})
}
