package http

import (
	"net/http"

	"fleetrent-backend/internal/notify"
	"fleetrent-backend/internal/security"
	"fleetrent-backend/internal/service"
	"fleetrent-backend/internal/storage"

	"github.com/gorilla/mux"
)

// Services bundles everything the router needs.
type Services struct {
	Auth     service.AuthService
	Vehicle  service.VehicleService
	Customer service.CustomerService
	Rental   service.RentalService
	Request  service.RequestService
	Tokens   security.TokenManager
	Files    storage.Store
	Hub      *notify.Hub
}

// NewRouter builds the full API surface. Everything under /api/v1 is
// staff-only except the public intake endpoint and the auth endpoints
// that issue tokens.
func NewRouter(s Services) *mux.Router {
	root := mux.NewRouter()
	root.Use(LoggingMiddleware, CORSMiddleware)

	authHandler := NewAuthHandler(s.Auth)
	vehicleHandler := NewVehicleHandler(s.Vehicle)
	customerHandler := NewCustomerHandler(s.Customer)
	rentalHandler := NewRentalHandler(s.Rental, s.Files)
	wizardHandler := NewWizardHandler(s.Rental, s.Files)
	requestHandler := NewRequestHandler(s.Request, s.Files)
	fileHandler := NewFileHandler(s.Files)

	api := root.PathPrefix("/api/v1").Subrouter()

	// Unauthenticated surface.
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/public/requests", requestHandler.SubmitPublic).Methods(http.MethodPost)

	// Staff surface.
	staff := api.NewRoute().Subrouter()
	staff.Use(AuthMiddleware(s.Tokens))

	staff.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	staff.HandleFunc("/auth/session", authHandler.Session).Methods(http.MethodGet)

	staff.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/vehicles", vehicleHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/vehicles/available", vehicleHandler.Available).Methods(http.MethodGet)
	staff.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/quotes", vehicleHandler.Quote).Methods(http.MethodGet)

	staff.HandleFunc("/customers", customerHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/customers", customerHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Delete).Methods(http.MethodDelete)
	staff.HandleFunc("/rentals/{id:[0-9]+}/status", rentalHandler.UpdateStatus).Methods(http.MethodPatch)
	staff.HandleFunc("/rentals/{id:[0-9]+}/signatures", rentalHandler.AttachSignature).Methods(http.MethodPost)

	staff.HandleFunc("/wizard", wizardHandler.Start).Methods(http.MethodPost)
	staff.HandleFunc("/wizard/{id}", wizardHandler.State).Methods(http.MethodGet)
	staff.HandleFunc("/wizard/{id}/dates", wizardHandler.Dates).Methods(http.MethodPost)
	staff.HandleFunc("/wizard/{id}/vehicles", wizardHandler.Vehicles).Methods(http.MethodGet)
	staff.HandleFunc("/wizard/{id}/vehicle", wizardHandler.ChooseVehicle).Methods(http.MethodPost)
	staff.HandleFunc("/wizard/{id}/customer", wizardHandler.ChooseCustomer).Methods(http.MethodPost)
	staff.HandleFunc("/wizard/{id}/signature", wizardHandler.Signature).Methods(http.MethodPost)
	staff.HandleFunc("/wizard/{id}/draft", wizardHandler.Draft).Methods(http.MethodGet)
	staff.HandleFunc("/wizard/{id}/submit", wizardHandler.Submit).Methods(http.MethodPost)
	staff.HandleFunc("/wizard/{id}/back", wizardHandler.Back).Methods(http.MethodPost)

	staff.HandleFunc("/requests", requestHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/requests/{id:[0-9]+}", requestHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/requests/{id:[0-9]+}", requestHandler.Delete).Methods(http.MethodDelete)
	staff.HandleFunc("/requests/{id:[0-9]+}/approve", requestHandler.Approve).Methods(http.MethodPost)
	staff.HandleFunc("/requests/{id:[0-9]+}/reject", requestHandler.Reject).Methods(http.MethodPost)

	staff.HandleFunc("/files/{key:.+}", fileHandler.Download).Methods(http.MethodGet)

	// Change feed for live admin views, gated by the same token check
	// as the staff surface it mirrors.
	root.Handle("/ws", AuthMiddleware(s.Tokens)(http.HandlerFunc(s.Hub.ServeWS)))

	return root
}
