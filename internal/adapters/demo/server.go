package demo

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"roastline/pkg/domain"
)

// NewHandler exposes a Backend over the PostgREST-style REST surface the
// supabase client consumes, plus prometheus metrics on /metrics.
func NewHandler(store *Backend, logger *slog.Logger) http.Handler {
	s := &server{store: store, logger: logger}

	r := chi.NewRouter()
	r.Route("/rest/v1", func(r chi.Router) {
		r.Get("/regions", s.listRegions)
		r.Get("/products", s.listProducts)
		r.Get("/saved_addresses", s.listAddresses)
		r.Post("/saved_addresses", s.createAddress)
		r.Delete("/saved_addresses", s.deleteAddress)
		r.Get("/orders", s.listOrders)
		r.Post("/orders", s.createOrder)
		r.Get("/subscriptions", s.listSubscriptions)
		r.Post("/subscriptions", s.createSubscription)
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

type server struct {
	store  *Backend
	logger *slog.Logger
}

// eqParam extracts a PostgREST "column=eq.value" filter value.
func eqParam(r *http.Request, name string) string {
	return strings.TrimPrefix(r.URL.Query().Get(name), "eq.")
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *server) listRegions(w http.ResponseWriter, r *http.Request) {
	regions, _ := s.store.ListRegions(r.Context())
	s.writeJSON(w, http.StatusOK, regions)
}

func (s *server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, _ := s.store.ListProducts(r.Context(), eqParam(r, "region_id"))
	s.writeJSON(w, http.StatusOK, products)
}

func (s *server) listAddresses(w http.ResponseWriter, r *http.Request) {
	addrs, _ := s.store.ListSavedAddresses(r.Context(), eqParam(r, "user_fingerprint"))
	if addrs == nil {
		addrs = []domain.SavedAddress{}
	}
	s.writeJSON(w, http.StatusOK, addrs)
}

func (s *server) createAddress(w http.ResponseWriter, r *http.Request) {
	var addr domain.SavedAddress
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, _ := s.store.CreateSavedAddress(r.Context(), addr)
	// PostgREST returns inserted rows as an array.
	s.writeJSON(w, http.StatusCreated, []domain.SavedAddress{created})
}

func (s *server) deleteAddress(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteSavedAddress(r.Context(), eqParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, _ := s.store.ListOrders(r.Context(), eqParam(r, "user_id"))
	if orders == nil {
		orders = []domain.Order{}
	}
	s.writeJSON(w, http.StatusOK, orders)
}

func (s *server) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, _ := s.store.CreateOrder(r.Context(), order)
	s.writeJSON(w, http.StatusCreated, []domain.Order{created})
}

func (s *server) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, _ := s.store.ListSubscriptions(r.Context(), eqParam(r, "user_id"))
	if subs == nil {
		subs = []domain.Subscription{}
	}
	s.writeJSON(w, http.StatusOK, subs)
}

func (s *server) createSubscription(w http.ResponseWriter, r *http.Request) {
	var sub domain.Subscription
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, _ := s.store.CreateSubscription(r.Context(), sub)
	s.writeJSON(w, http.StatusCreated, []domain.Subscription{created})
}
