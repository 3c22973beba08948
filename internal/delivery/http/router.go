package http

import (
	"net/http"

	"practice-manager/internal/delivery/http/handler"
	"practice-manager/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	financeHandler     *handler.FinanceHandler
	settingsHandler    *handler.SettingsHandler
	dashboardHandler   *handler.DashboardHandler
	metricsHandler     http.Handler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	financeHandler *handler.FinanceHandler,
	settingsHandler *handler.SettingsHandler,
	dashboardHandler *handler.DashboardHandler,
	metricsHandler http.Handler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		financeHandler:     financeHandler,
		settingsHandler:    settingsHandler,
		dashboardHandler:   dashboardHandler,
		metricsHandler:     metricsHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

// apiPrefix versions every API route. Routes are registered on the root
// router with the full path so that a known path with the wrong method
// answers 405 instead of 404.
const apiPrefix = "/api/v1"

// Setup registers every route and returns the router wrapped in CORS, so
// preflight requests are answered before route matching.
func (r *Router) Setup() http.Handler {
	// Prometheus scrape endpoint, outside the versioned API
	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	// Health check
	r.router.HandleFunc(apiPrefix+"/health", r.healthCheck).Methods(http.MethodGet)

	// Patients
	r.router.HandleFunc(apiPrefix+"/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	r.router.HandleFunc(apiPrefix+"/patients", r.patientHandler.AdmitPatient).Methods(http.MethodPost)
	r.router.HandleFunc(apiPrefix+"/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	r.router.HandleFunc(apiPrefix+"/patients/{id}/history", r.patientHandler.AppendHistoryEntry).Methods(http.MethodPost)
	r.router.HandleFunc(apiPrefix+"/patients/{id}/fields/{field}", r.patientHandler.UpdateDemographicField).Methods(http.MethodPatch)

	// Appointments
	r.router.HandleFunc(apiPrefix+"/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	r.router.HandleFunc(apiPrefix+"/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	r.router.HandleFunc(apiPrefix+"/appointments/{id}/toggle", r.appointmentHandler.ToggleStatus).Methods(http.MethodPatch)

	// Finances
	r.router.HandleFunc(apiPrefix+"/finances", r.financeHandler.ListRecords).Methods(http.MethodGet)
	r.router.HandleFunc(apiPrefix+"/finances", r.financeHandler.RecordTransaction).Methods(http.MethodPost)
	r.router.HandleFunc(apiPrefix+"/finances/summary", r.financeHandler.GetSummary).Methods(http.MethodGet)

	// Settings
	r.router.HandleFunc(apiPrefix+"/settings", r.settingsHandler.GetSettings).Methods(http.MethodGet)
	r.router.HandleFunc(apiPrefix+"/settings", r.settingsHandler.ReplaceSettings).Methods(http.MethodPut)
	r.router.HandleFunc(apiPrefix+"/settings/goal", r.settingsHandler.UpdateMonthlyGoal).Methods(http.MethodPatch)

	// Dashboard
	r.router.HandleFunc(apiPrefix+"/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
