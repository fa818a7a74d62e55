package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vittahub/internal/delivery/http/handler"
	"vittahub/internal/delivery/http/middleware"
)

type Router struct {
	router            *mux.Router
	clinicHandler     *handler.ClinicHandler
	procedureHandler  *handler.ProcedureHandler
	locationHandler   *handler.LocationHandler
	wizardHandler     *handler.WizardHandler
	sessionMiddleware *middleware.SessionMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	clinicHandler *handler.ClinicHandler,
	procedureHandler *handler.ProcedureHandler,
	locationHandler *handler.LocationHandler,
	wizardHandler *handler.WizardHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		clinicHandler:     clinicHandler,
		procedureHandler:  procedureHandler,
		locationHandler:   locationHandler,
		wizardHandler:     wizardHandler,
		sessionMiddleware: sessionMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(r.sessionMiddleware.Identify)

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Clinic discovery
	api.HandleFunc("/clinics", r.clinicHandler.GetAllClinics).Methods(http.MethodGet)
	api.HandleFunc("/clinics/search", r.clinicHandler.SearchClinics).Methods(http.MethodGet)
	api.HandleFunc("/clinics/nearby", r.clinicHandler.GetNearbyClinics).Methods(http.MethodGet)
	api.HandleFunc("/clinics/{id}", r.clinicHandler.GetClinic).Methods(http.MethodGet)
	api.HandleFunc("/clinics/{id}/professionals", r.clinicHandler.GetClinicProfessionals).Methods(http.MethodGet)

	// Procedure catalog
	api.HandleFunc("/procedures", r.procedureHandler.GetAllProcedures).Methods(http.MethodGet)

	// Session location context
	api.HandleFunc("/session/location", r.locationHandler.GetLocation).Methods(http.MethodGet)
	api.HandleFunc("/session/location", r.locationHandler.SaveLocation).Methods(http.MethodPut)
	api.HandleFunc("/session/location", r.locationHandler.ClearLocation).Methods(http.MethodDelete)
	api.HandleFunc("/geocode/reverse", r.locationHandler.ReverseGeocode).Methods(http.MethodPost)

	// Booking wizard
	api.HandleFunc("/clinics/{id}/wizard", r.wizardHandler.OpenWizard).Methods(http.MethodPost)
	api.HandleFunc("/wizard", r.wizardHandler.GetState).Methods(http.MethodGet)
	api.HandleFunc("/wizard", r.wizardHandler.CloseWizard).Methods(http.MethodDelete)
	api.HandleFunc("/wizard/professional", r.wizardHandler.SelectProfessional).Methods(http.MethodPost)
	api.HandleFunc("/wizard/procedure", r.wizardHandler.SelectProcedure).Methods(http.MethodPost)
	api.HandleFunc("/wizard/date", r.wizardHandler.SelectDate).Methods(http.MethodPost)
	api.HandleFunc("/wizard/time", r.wizardHandler.SelectTime).Methods(http.MethodPost)
	api.HandleFunc("/wizard/advance", r.wizardHandler.Advance).Methods(http.MethodPost)
	api.HandleFunc("/wizard/retreat", r.wizardHandler.Retreat).Methods(http.MethodPost)
	api.HandleFunc("/wizard/confirm", r.wizardHandler.Confirm).Methods(http.MethodPost)
	api.HandleFunc("/wizard/dates", r.wizardHandler.GetBookableDates).Methods(http.MethodGet)
	api.HandleFunc("/wizard/times", r.wizardHandler.GetAvailableTimes).Methods(http.MethodGet)
	api.HandleFunc("/wizard/professionals", r.wizardHandler.SearchProfessionals).Methods(http.MethodGet)
	api.HandleFunc("/wizard/procedures", r.wizardHandler.SearchProcedures).Methods(http.MethodGet)

	// Confirmed appointments for the session
	api.HandleFunc("/appointments", r.wizardHandler.GetAppointments).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
