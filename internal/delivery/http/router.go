package http

import (
	"net/http"

	"mos3ef-api/internal/delivery/http/handler"
	"mos3ef-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	serviceHandler    *handler.ServiceHandler
	hospitalHandler   *handler.HospitalHandler
	reviewHandler     *handler.ReviewHandler
	patientHandler    *handler.PatientHandler
	healthHandler     *handler.HealthHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	serviceHandler *handler.ServiceHandler,
	hospitalHandler *handler.HospitalHandler,
	reviewHandler *handler.ReviewHandler,
	patientHandler *handler.PatientHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		serviceHandler:    serviceHandler,
		hospitalHandler:   hospitalHandler,
		reviewHandler:     reviewHandler,
		patientHandler:    patientHandler,
		healthHandler:     healthHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Service discovery (public). Literal paths are registered before {id}.
	services := api.PathPrefix("/services").Subrouter()
	services.HandleFunc("", r.serviceHandler.GetServices).Methods(http.MethodGet)
	services.HandleFunc("/search", r.serviceHandler.SearchServices).Methods(http.MethodGet)
	services.HandleFunc("/filter", r.serviceHandler.FilterServices).Methods(http.MethodGet)
	services.HandleFunc("/compare", r.serviceHandler.CompareServices).Methods(http.MethodPost)
	services.HandleFunc("/{id:[0-9]+}", r.serviceHandler.GetService).Methods(http.MethodGet)
	services.HandleFunc("/{id:[0-9]+}/reviews", r.serviceHandler.GetServiceReviews).Methods(http.MethodGet)
	services.HandleFunc("/{id:[0-9]+}/hospital", r.serviceHandler.GetServiceHospital).Methods(http.MethodGet)

	// Hospitals (public)
	hospitals := api.PathPrefix("/hospitals").Subrouter()
	hospitals.HandleFunc("", r.hospitalHandler.ListHospitals).Methods(http.MethodGet)
	hospitals.HandleFunc("/{id:[0-9]+}", r.hospitalHandler.GetHospital).Methods(http.MethodGet)
	hospitals.HandleFunc("/{id:[0-9]+}/services", r.hospitalHandler.GetHospitalServices).Methods(http.MethodGet)

	// Hospital account routes (protected - hospital only)
	hospital := api.PathPrefix("/hospital").Subrouter()
	hospital.Use(r.authMiddleware.Authenticate)
	hospital.Use(middleware.RequireHospital)
	hospital.HandleFunc("/profile", r.hospitalHandler.GetProfile).Methods(http.MethodGet)
	hospital.HandleFunc("/profile", r.hospitalHandler.CreateProfile).Methods(http.MethodPost)
	hospital.HandleFunc("/profile", r.hospitalHandler.UpdateProfile).Methods(http.MethodPut)
	hospital.HandleFunc("/profile", r.hospitalHandler.DeleteProfile).Methods(http.MethodDelete)
	hospital.HandleFunc("/services", r.hospitalHandler.AddService).Methods(http.MethodPost)
	hospital.HandleFunc("/services/{id:[0-9]+}", r.hospitalHandler.UpdateService).Methods(http.MethodPut)
	hospital.HandleFunc("/services/{id:[0-9]+}", r.hospitalHandler.DeleteService).Methods(http.MethodDelete)
	hospital.HandleFunc("/dashboard", r.hospitalHandler.GetDashboard).Methods(http.MethodGet)
	hospital.HandleFunc("/reviews", r.hospitalHandler.GetReviews).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/profile", r.patientHandler.GetProfile).Methods(http.MethodGet)
	patient.HandleFunc("/profile", r.patientHandler.UpdateProfile).Methods(http.MethodPut)
	patient.HandleFunc("/saved-services", r.patientHandler.GetSavedServices).Methods(http.MethodGet)
	patient.HandleFunc("/saved-services/{serviceId:[0-9]+}", r.patientHandler.SaveService).Methods(http.MethodPost)
	patient.HandleFunc("/saved-services/{serviceId:[0-9]+}", r.patientHandler.RemoveSavedService).Methods(http.MethodDelete)

	// Reviews (protected - patient only)
	reviews := api.PathPrefix("/reviews").Subrouter()
	reviews.Use(r.authMiddleware.Authenticate)
	reviews.Use(middleware.RequirePatient)
	reviews.HandleFunc("", r.reviewHandler.AddReview).Methods(http.MethodPost)
	reviews.HandleFunc("/{id:[0-9]+}", r.reviewHandler.UpdateReview).Methods(http.MethodPut)
	reviews.HandleFunc("/{id:[0-9]+}", r.reviewHandler.DeleteReview).Methods(http.MethodDelete)

	// Add logging and CORS middleware
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
