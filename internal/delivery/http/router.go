package http

import (
	"net/http"

	"hospital-directory/internal/delivery/http/handler"
	"hospital-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router              *mux.Router
	specialtyHandler    *handler.SpecialtyHandler
	doctorHandler       *handler.DoctorHandler
	scheduleHandler     *handler.ScheduleHandler
	locationHandler     *handler.LocationHandler
	kioskHandler        *handler.KioskHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	gatherer            prometheus.Gatherer
}

func NewRouter(
	specialtyHandler *handler.SpecialtyHandler,
	doctorHandler *handler.DoctorHandler,
	scheduleHandler *handler.ScheduleHandler,
	locationHandler *handler.LocationHandler,
	kioskHandler *handler.KioskHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	gatherer prometheus.Gatherer,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		specialtyHandler:    specialtyHandler,
		doctorHandler:       doctorHandler,
		scheduleHandler:     scheduleHandler,
		locationHandler:     locationHandler,
		kioskHandler:        kioskHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		gatherer:            gatherer,
	}
}

func (r *Router) Setup() *mux.Router {
	// Metrics
	r.router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(r.rateLimitMiddleware.Handle)

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api.HandleFunc("/kiosk", r.kioskHandler.GetSettings).Methods(http.MethodGet)

	// Specialties
	api.HandleFunc("/specialties", r.specialtyHandler.ListSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{id}", r.specialtyHandler.GetSpecialty).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{id}/doctors", r.specialtyHandler.GetSpecialtyDoctors).Methods(http.MethodGet)

	// Doctors and schedules
	api.HandleFunc("/doctors", r.doctorHandler.SearchDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{code}/schedule", r.scheduleHandler.GetDoctorSchedule).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{code}/schedule/weekly", r.scheduleHandler.GetWeeklySchedule).Methods(http.MethodGet)

	// Locations
	api.HandleFunc("/buildings", r.locationHandler.ListBuildings).Methods(http.MethodGet)
	api.HandleFunc("/buildings/{code}/floors", r.locationHandler.ListFloors).Methods(http.MethodGet)
	api.HandleFunc("/agendas", r.scheduleHandler.GetAgendaBoard).Methods(http.MethodGet)

	// Preflight requests must match a route for the middleware chain to run
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
