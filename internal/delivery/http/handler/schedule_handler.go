package handler

import (
	"net/http"

	"hospital-directory/internal/delivery/dto"
	"hospital-directory/internal/usecase"
	"hospital-directory/pkg/response"
	"hospital-directory/pkg/validator"

	"github.com/gorilla/mux"
)

// ScheduleHandler serves the reconciled schedules. The result body is written
// as-is; a partial failure is reported with 502 and the same body.
type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleHandler) GetDoctorSchedule(w http.ResponseWriter, r *http.Request) {
	req := dto.CodeRequest{Code: mux.Vars(r)["code"]}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result := h.scheduleUsecase.GetDetailedScheduleForProvider(r.Context(), req.Code)
	response.JSON(w, statusFor(result.Success), result)
}

func (h *ScheduleHandler) GetWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	req := dto.CodeRequest{Code: mux.Vars(r)["code"]}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	weekly := h.scheduleUsecase.GetWeeklySchedule(r.Context(), req.Code)
	response.JSON(w, statusFor(weekly.Success), weekly)
}

func (h *ScheduleHandler) GetAgendaBoard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.AgendaBoardRequest{Building: query.Get("building"), Floor: query.Get("floor")}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result := h.scheduleUsecase.GetAgendaBoard(r.Context(), req.Building, req.Floor)
	response.JSON(w, statusFor(result.Success), result)
}

func statusFor(success bool) int {
	if success {
		return http.StatusOK
	}
	return http.StatusBadGateway
}
