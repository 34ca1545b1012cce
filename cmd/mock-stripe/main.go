// mock-stripe stubs the three Stripe endpoints the service calls, for local
// development without an API key.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"

	"github.com/eshop-platform/payment-service/internal/logging"
)

func main() {
	logging.Init("mock-stripe", "info", os.Getenv("APP_ENV"))

	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/checkout/sessions", func(w http.ResponseWriter, r *http.Request) {
		id := fmt.Sprintf("cs_test_%08x", rand.Int63())
		respond(w, map[string]string{
			"id":     id,
			"url":    "https://checkout.stripe.test/c/pay/" + id,
			"status": "open",
		})
	})

	mux.HandleFunc("POST /v1/products", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		respond(w, map[string]string{
			"id":   r.PostFormValue("id"),
			"name": r.PostFormValue("name"),
		})
	})

	mux.HandleFunc("POST /v1/prices", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		respond(w, map[string]string{
			"id":          fmt.Sprintf("price_test_%08x", rand.Int63()),
			"product":     r.PostFormValue("product"),
			"currency":    r.PostFormValue("currency"),
			"unit_amount": r.PostFormValue("unit_amount"),
		})
	})

	addr := ":8082"
	slog.Info("mock stripe started", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
