package router

import (
	"net/http"

	"urban-bites/internal/handler"
	"urban-bites/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Handlers bundles every HTTP handler the router wires up.
type Handlers struct {
	Menu        *handler.MenuHandler
	Cart        *handler.CartHandler
	Order       *handler.OrderHandler
	Reservation *handler.ReservationHandler
	Blog        *handler.BlogHandler
	Site        *handler.SiteHandler
	Contact     *handler.ContactHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, logger zerolog.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	}).Methods(http.MethodGet)

	// Public surface
	r.HandleFunc("/api/site", h.Site.GetBusinessInfo).Methods(http.MethodGet)
	r.HandleFunc("/api/homepage", h.Site.GetHomepageConfig).Methods(http.MethodGet)
	r.HandleFunc("/api/testimonials", h.Site.GetTestimonials).Methods(http.MethodGet)

	r.HandleFunc("/api/menu", h.Menu.List).Methods(http.MethodGet)
	r.HandleFunc("/api/categories", h.Menu.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/api/menu/{id}", h.Menu.Get).Methods(http.MethodGet)

	r.HandleFunc("/api/blog", h.Blog.List).Methods(http.MethodGet)
	r.HandleFunc("/api/blog/{id}", h.Blog.Get).Methods(http.MethodGet)

	r.HandleFunc("/api/cart", h.Cart.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/cart", h.Cart.Clear).Methods(http.MethodDelete)
	r.HandleFunc("/api/cart/items", h.Cart.AddItem).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/items/{id}", h.Cart.UpdateQuantity).Methods(http.MethodPatch)
	r.HandleFunc("/api/cart/items/{id}", h.Cart.RemoveItem).Methods(http.MethodDelete)

	r.HandleFunc("/api/orders", h.Order.Place).Methods(http.MethodPost)
	r.HandleFunc("/api/orders", h.Order.List).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/{id}", h.Order.Get).Methods(http.MethodGet)

	r.HandleFunc("/api/reservations", h.Reservation.Create).Methods(http.MethodPost)

	r.HandleFunc("/api/contact", h.Contact.Contact).Methods(http.MethodPost)
	r.HandleFunc("/api/newsletter", h.Contact.Newsletter).Methods(http.MethodPost)

	// Admin back office
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.HandleFunc("/menu", h.Menu.Create).Methods(http.MethodPost)
	admin.HandleFunc("/menu/{id}", h.Menu.Update).Methods(http.MethodPut)
	admin.HandleFunc("/menu/{id}", h.Menu.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/reservations", h.Reservation.List).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/status", h.Reservation.UpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}", h.Reservation.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/blog", h.Blog.Create).Methods(http.MethodPost)
	admin.HandleFunc("/blog/{id}", h.Blog.Update).Methods(http.MethodPut)
	admin.HandleFunc("/blog/{id}", h.Blog.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/orders/{id}/status", h.Order.UpdateStatus).Methods(http.MethodPatch)

	admin.HandleFunc("/site", h.Site.UpdateBusinessInfo).Methods(http.MethodPut)
	admin.HandleFunc("/homepage", h.Site.UpdateHomepageConfig).Methods(http.MethodPut)
	admin.HandleFunc("/reset", h.Site.Reset).Methods(http.MethodPost)

	// Middleware chain: Recovery -> Logging -> CORS
	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})

	var chained http.Handler = r
	chained = c.Handler(chained)
	chained = middleware.Logging(logger)(chained)
	chained = middleware.Recovery(logger)(chained)

	return chained
}
