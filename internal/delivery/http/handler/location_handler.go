package handler

import (
	"net/http"

	"hospital-directory/internal/converter"
	"hospital-directory/internal/delivery/dto"
	"hospital-directory/internal/usecase"
	"hospital-directory/pkg/response"
	"hospital-directory/pkg/validator"

	"github.com/gorilla/mux"
)

type LocationHandler struct {
	locationUsecase usecase.LocationUsecase
	validator       *validator.CustomValidator
}

func NewLocationHandler(locationUsecase usecase.LocationUsecase, validator *validator.CustomValidator) *LocationHandler {
	return &LocationHandler{
		locationUsecase: locationUsecase,
		validator:       validator,
	}
}

func (h *LocationHandler) ListBuildings(w http.ResponseWriter, r *http.Request) {
	buildings, err := h.locationUsecase.ListBuildings(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get buildings")
		return
	}

	response.Success(w, http.StatusOK, "Buildings retrieved successfully", converter.BuildingsToResponse(buildings))
}

func (h *LocationHandler) ListFloors(w http.ResponseWriter, r *http.Request) {
	req := dto.CodeRequest{Code: mux.Vars(r)["code"]}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	floors, err := h.locationUsecase.ListFloors(r.Context(), req.Code)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get floors")
		return
	}

	response.Success(w, http.StatusOK, "Floors retrieved successfully", converter.FloorsToResponse(floors))
}
