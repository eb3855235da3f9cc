package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-directory/config"
	"hospital-directory/internal/delivery/http/handler"
	"hospital-directory/internal/delivery/http/middleware"
	"hospital-directory/internal/domain/entity"
	"hospital-directory/internal/infrastructure/metrics"
	"hospital-directory/internal/usecase"
	"hospital-directory/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSchedules struct {
	result *entity.ScheduleResult
	code   string
}

func (s *stubSchedules) GetDetailedScheduleForProvider(_ context.Context, code string) *entity.ScheduleResult {
	s.code = code
	return s.result
}

func (s *stubSchedules) GetWeeklySchedule(_ context.Context, code string) *entity.WeeklySchedule {
	return &entity.WeeklySchedule{ProviderCode: code, Success: s.result.Success, Message: s.result.Message}
}

func (s *stubSchedules) GetAgendaBoard(context.Context, string, string) *entity.ScheduleResult {
	return s.result
}

type stubDoctors struct {
	err error
}

func (s *stubDoctors) SearchDoctors(context.Context, string) ([]entity.Doctor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []entity.Doctor{{ID: "1", Name: "Ana Pérez", Specialties: []entity.SpecialtyRef{{ID: "7", Description: "Cardiología"}}}}, nil
}

func (s *stubDoctors) GetDoctor(_ context.Context, id string) (*entity.Doctor, error) {
	if id != "1" {
		return nil, usecase.ErrDoctorNotFound
	}
	return &entity.Doctor{ID: "1", Name: "Ana Pérez"}, nil
}

func (s *stubDoctors) GetDoctorsBySpecialty(context.Context, string) ([]entity.Doctor, error) {
	return []entity.Doctor{}, nil
}

type stubSpecialties struct{}

func (stubSpecialties) ListSpecialties(context.Context, string) ([]entity.Specialty, error) {
	return []entity.Specialty{{ID: "7", Description: "Cardiología Pediátrica"}}, nil
}

func (stubSpecialties) GetSpecialty(_ context.Context, id string) (*entity.Specialty, error) {
	return &entity.Specialty{ID: id, Description: "Especialidad " + id}, nil
}

type stubLocations struct{}

func (stubLocations) ListBuildings(context.Context) ([]entity.Building, error) {
	return []entity.Building{{Code: "1", Description: "Edificio Principal"}}, nil
}

func (stubLocations) ListFloors(context.Context, string) ([]entity.Floor, error) {
	return []entity.Floor{{Code: "1", Description: "Piso 1"}}, nil
}

func newTestRouter(t *testing.T, schedules *stubSchedules, doctors *stubDoctors) http.Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	v := validator.NewValidator()

	reg := prometheus.NewRegistry()
	metrics.NewDirectoryMetrics(reg).ObserveCache("memory", true)

	router := NewRouter(
		handler.NewSpecialtyHandler(stubSpecialties{}, doctors, v),
		handler.NewDoctorHandler(doctors, v),
		handler.NewScheduleHandler(schedules, v),
		handler.NewLocationHandler(stubLocations{}, v),
		handler.NewKioskHandler(config.KioskConfig{Title: "Directorio", IdleTimeout: 45 * time.Second}),
		middleware.NewCORSMiddleware(""),
		middleware.NewLoggingMiddleware(log),
		middleware.NewRateLimitMiddleware(0, 0),
		reg,
	)
	return router.Setup()
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestScheduleEndpointWritesResultTriple(t *testing.T) {
	schedules := &stubSchedules{result: &entity.ScheduleResult{
		Data:    []entity.ScheduleEntry{{ProviderCode: "P1", DayName: "Lunes"}},
		Success: true,
	}}
	h := newTestRouter(t, schedules, &stubDoctors{})

	rec := serve(h, http.MethodGet, "/api/v1/doctors/P1/schedule")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "P1", schedules.code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Lunes", data[0].(map[string]any)["dia_nombre"])
}

func TestScheduleEndpointPartialFailure(t *testing.T) {
	schedules := &stubSchedules{result: &entity.ScheduleResult{
		Data:    []entity.ScheduleEntry{},
		Message: "edificios: HTTP error 500",
	}}
	h := newTestRouter(t, schedules, &stubDoctors{})

	rec := serve(h, http.MethodGet, "/api/v1/doctors/P1/schedule")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"data":[],"success":false,"message":"edificios: HTTP error 500"}`, rec.Body.String())
}

func TestScheduleEndpointEmptyIsOK(t *testing.T) {
	schedules := &stubSchedules{result: &entity.ScheduleResult{Data: []entity.ScheduleEntry{}, Success: true}}
	h := newTestRouter(t, schedules, &stubDoctors{})

	rec := serve(h, http.MethodGet, "/api/v1/doctors/P1/schedule")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"success":true}`, rec.Body.String())
}

func TestEndpoints(t *testing.T) {
	h := newTestRouter(t, &stubSchedules{result: &entity.ScheduleResult{Success: true}}, &stubDoctors{})

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"health", "/api/v1/health", http.StatusOK},
		{"kiosk", "/api/v1/kiosk", http.StatusOK},
		{"specialties", "/api/v1/specialties?q=card", http.StatusOK},
		{"specialty", "/api/v1/specialties/7", http.StatusOK},
		{"specialty doctors", "/api/v1/specialties/7/doctors", http.StatusOK},
		{"doctors", "/api/v1/doctors", http.StatusOK},
		{"doctor", "/api/v1/doctors/1", http.StatusOK},
		{"unknown doctor", "/api/v1/doctors/2", http.StatusNotFound},
		{"invalid code", "/api/v1/doctors/a%20b", http.StatusBadRequest},
		{"weekly", "/api/v1/doctors/1/schedule/weekly", http.StatusOK},
		{"buildings", "/api/v1/buildings", http.StatusOK},
		{"floors", "/api/v1/buildings/1/floors", http.StatusOK},
		{"agendas", "/api/v1/agendas?building=1&floor=2", http.StatusOK},
		{"invalid agenda filter", "/api/v1/agendas?building=a%2Fb", http.StatusBadRequest},
		{"metrics", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, http.MethodGet, tt.target)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestSpecialtiesResponseEnvelope(t *testing.T) {
	h := newTestRouter(t, &stubSchedules{result: &entity.ScheduleResult{Success: true}}, &stubDoctors{})

	rec := serve(h, http.MethodGet, "/api/v1/specialties")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Specialties retrieved successfully",
		"data": [{"id": "7", "description": "Cardiología Pediátrica", "slug": "cardiologia-pediatrica"}],
		"meta": {"total": 1}
	}`, rec.Body.String())
}

func TestDoctorsUpstreamFailure(t *testing.T) {
	h := newTestRouter(t, &stubSchedules{result: &entity.ScheduleResult{Success: true}}, &stubDoctors{err: usecase.ErrUpstreamUnavailable})

	rec := serve(h, http.MethodGet, "/api/v1/doctors?q=ana")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestPreflight(t *testing.T) {
	h := newTestRouter(t, &stubSchedules{result: &entity.ScheduleResult{Success: true}}, &stubDoctors{})

	rec := serve(h, http.MethodOptions, "/api/v1/doctors")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
