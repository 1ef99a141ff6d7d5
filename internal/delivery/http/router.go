package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Reading the event list is public; every mutating event route sits behind
// the organiser gate. The update/delete routes keep the original app's
// POST shapes so existing front-end calls continue to work.
func NewRouter(eventController *controllers.EventController, authController *controllers.AuthController, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	organiser := middleware.RequireOrganiser(verifier)

	// Events
	mux.HandleFunc("GET /api/events", eventController.List)
	mux.HandleFunc("POST /api/events", organiser(eventController.Create))
	mux.HandleFunc("POST /api/events/{eventID}", organiser(eventController.Update))
	mux.HandleFunc("POST /api/events/{eventID}/delete", organiser(eventController.Delete))

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
