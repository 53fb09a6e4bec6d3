package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"kairo/backend/internal/config"
	authusecase "kairo/backend/internal/usecase/auth"
	customerusecase "kairo/backend/internal/usecase/customer"
	invoiceusecase "kairo/backend/internal/usecase/invoice"
	productusecase "kairo/backend/internal/usecase/product"
	stockusecase "kairo/backend/internal/usecase/stock"
)

// Server wraps the HTTP server lifecycle.
type Server struct {
	httpServer      *http.Server
	router          chi.Router
	authService     *authusecase.Service
	customerService *customerusecase.Service
	productService  *productusecase.Service
	stockService    *stockusecase.Service
	invoiceService  *invoiceusecase.Service
	session         sessionBinder
	addr            string
}

// NewServer constructs a new Server with configured dependencies.
func NewServer(
	cfg config.Config,
	authService *authusecase.Service,
	customerService *customerusecase.Service,
	productService *productusecase.Service,
	stockService *stockusecase.Service,
	invoiceService *invoiceusecase.Service,
) *Server {
	router := chi.NewRouter()
	addr := cfg.HTTPPort
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
			IdleTimeout:  time.Duration(cfg.IdleTimeoutSec) * time.Second,
		},
		router:          router,
		authService:     authService,
		customerService: customerService,
		productService:  productService,
		stockService:    stockService,
		invoiceService:  invoiceService,
		addr:            addr,
	}

	router.Use(withLogging)
	router.Use(withCORS(cfg.AllowedOrigins))
	srv.registerRoutes()
	return srv
}

func (s *Server) registerRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/users", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Get("/logout", s.handleLogout)
		r.Post("/verify-user", s.handleVerifyUser)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/me", s.handleMe)
			r.With(s.requireAdmin).Get("/", s.handleListUsers)
		})
	})

	s.router.Group(func(r chi.Router) {
		r.Use(s.requireSession)

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", s.handleListCustomers)
			r.Post("/", s.handleCreateCustomer)
			r.Get("/{id}", s.handleGetCustomer)
			r.Put("/{id}", s.handleUpdateCustomer)
			r.Delete("/{id}", s.handleDeleteCustomer)
			r.Get("/{id}/invoices", s.handleCustomerInvoices)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.handleListProducts)
			r.Post("/", s.handleCreateProduct)
			r.Get("/{id}", s.handleGetProduct)
			r.Put("/{id}", s.handleUpdateProduct)
			r.Delete("/{id}", s.handleDeleteProduct)
		})

		r.Route("/stock", func(r chi.Router) {
			r.Get("/", s.handleListStock)
			r.Get("/{productID}", s.handleGetStock)
			r.Put("/{productID}", s.handleSetStock)
			r.Patch("/{productID}", s.handleAdjustStock)
			r.Delete("/{productID}", s.handleDeleteStock)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Route("/issued", func(r chi.Router) {
				r.Get("/", s.handleListIssuedInvoices)
				r.Post("/", s.handleCreateIssuedInvoice)
				r.Get("/next-number", s.handleNextInvoiceNumber)
				r.Get("/{id}", s.handleGetIssuedInvoice)
				r.Put("/{id}", s.handleUpdateIssuedInvoice)
				r.Post("/{id}/pay", s.handlePayInvoice)
				r.Post("/{id}/cancel", s.handleCancelInvoice)
				r.Delete("/{id}", s.handleDeleteIssuedInvoice)
			})
			r.Route("/received", func(r chi.Router) {
				r.Get("/", s.handleListReceivedInvoices)
				r.Post("/", s.handleCreateReceivedInvoice)
				r.Get("/{id}", s.handleGetReceivedInvoice)
				r.Put("/{id}", s.handleUpdateReceivedInvoice)
				r.Delete("/{id}", s.handleDeleteReceivedInvoice)
			})
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Start bootstraps the HTTP server on the configured address.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured network address for the HTTP server.
func (s *Server) Addr() string {
	return s.addr
}
