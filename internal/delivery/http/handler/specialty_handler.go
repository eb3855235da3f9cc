package handler

import (
	"errors"
	"net/http"

	"hospital-directory/internal/converter"
	"hospital-directory/internal/delivery/dto"
	"hospital-directory/internal/usecase"
	"hospital-directory/pkg/response"
	"hospital-directory/pkg/validator"

	"github.com/gorilla/mux"
)

type SpecialtyHandler struct {
	specialtyUsecase usecase.SpecialtyUsecase
	doctorUsecase    usecase.DoctorUsecase
	validator        *validator.CustomValidator
}

func NewSpecialtyHandler(specialtyUsecase usecase.SpecialtyUsecase, doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *SpecialtyHandler {
	return &SpecialtyHandler{
		specialtyUsecase: specialtyUsecase,
		doctorUsecase:    doctorUsecase,
		validator:        validator,
	}
}

func (h *SpecialtyHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	req := dto.SearchRequest{Query: r.URL.Query().Get("q")}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialties, err := h.specialtyUsecase.ListSpecialties(r.Context(), req.Query)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get specialties")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Specialties retrieved successfully",
		converter.SpecialtiesToResponse(specialties), &response.Meta{Total: len(specialties)})
}

func (h *SpecialtyHandler) GetSpecialty(w http.ResponseWriter, r *http.Request) {
	req := dto.CodeRequest{Code: mux.Vars(r)["id"]}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialty, err := h.specialtyUsecase.GetSpecialty(r.Context(), req.Code)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty retrieved successfully", converter.SpecialtyToResponse(specialty))
}

func (h *SpecialtyHandler) GetSpecialtyDoctors(w http.ResponseWriter, r *http.Request) {
	req := dto.CodeRequest{Code: mux.Vars(r)["id"]}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.doctorUsecase.GetDoctorsBySpecialty(r.Context(), req.Code)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully",
		converter.DoctorsToResponse(doctors), &response.Meta{Total: len(doctors)})
}

// writeUsecaseError maps usecase sentinels to HTTP statuses.
func writeUsecaseError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		response.BadGateway(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
