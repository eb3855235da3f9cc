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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	req := dto.SearchRequest{Query: r.URL.Query().Get("q")}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.doctorUsecase.SearchDoctors(r.Context(), req.Query)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully",
		converter.DoctorsToResponse(doctors), &response.Meta{Total: len(doctors)})
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	req := dto.CodeRequest{Code: mux.Vars(r)["id"]}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), req.Code)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", converter.DoctorToResponse(doctor))
}
