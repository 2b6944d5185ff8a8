package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"newsletter/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(subscriptionController *controllers.SubscriptionController, healthController *controllers.HealthController) *http.ServeMux {
	mux := http.NewServeMux()

	// Subscriptions
	mux.HandleFunc("POST /subscriptions", subscriptionController.Subscribe)
	mux.HandleFunc("GET /subscriptions/confirm", subscriptionController.Confirm)

	mux.HandleFunc("GET /health", healthController.Check)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
