package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/service"
	"github.com/venturebothq/venturebot/internal/portal/store"
	"github.com/venturebothq/venturebot/pkg/httpx"
	"github.com/venturebothq/venturebot/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion  string
	startTime     time.Time
	logger        *slog.Logger
	secureCookies bool
	sessionTTL    time.Duration

	store              store.Store
	AuthService        *service.AuthService
	TenantService      *service.TenantService
	DashboardService   *service.DashboardService
	LeadService        *service.LeadService
	CampaignService    *service.CampaignService
	AppointmentService *service.AppointmentService
	StaffService       *service.StaffService
	TransactionService *service.TransactionService
	MessagingService   *service.MessagingService
	PaymentService     *service.PaymentService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	secureCookies bool,
	sessionTTL time.Duration,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		logger:        logger,
		secureCookies: secureCookies,
		sessionTTL:    sessionTTL,
		store:         st,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTenant()
	r.registerDashboard()
	r.registerLeads()
	r.registerCampaigns()
	r.registerAppointments()
	r.registerStaff()
	r.registerTransactions()
	r.registerWhatsApp()
	r.registerPayments()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// session returns the middleware chain shared by every authenticated
// endpoint: session cookie auth plus a per-user rate limit.
func (r *Router) session(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.SessionMiddleware(r.AuthService),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:   r.AuthService,
		SecureCookies: r.secureCookies,
		SessionTTL:    r.sessionTTL,
	}

	// Credential endpoints get strict per-IP limits to slow brute force.
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /api/auth/logout", r.session(http.HandlerFunc(h.HandleLogout), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/auth/me", r.session(http.HandlerFunc(h.HandleMe), httpx.LenientLimit))
}

func (r *Router) registerTenant() {
	h := &TenantHandler{TenantService: r.TenantService}
	r.Mux.Handle("GET /api/tenant", r.session(h, httpx.LenientLimit))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{DashboardService: r.DashboardService}
	r.Mux.Handle("GET /api/dashboard/stats", r.session(http.HandlerFunc(h.HandleStats), httpx.LenientLimit))
	r.Mux.Handle("GET /api/dashboard/charts", r.session(http.HandlerFunc(h.HandleCharts), httpx.LenientLimit))
}

func (r *Router) registerLeads() {
	h := &LeadsHandler{LeadService: r.LeadService}
	r.Mux.Handle("GET /api/leads", r.session(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /api/leads", r.session(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PUT /api/leads/{id}", r.session(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/leads/{id}", r.session(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerCampaigns() {
	h := &CampaignsHandler{CampaignService: r.CampaignService}
	r.Mux.Handle("GET /api/campaigns", r.session(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /api/campaigns", r.session(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/campaigns/{id}", r.session(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
	r.Mux.Handle("POST /api/campaigns/{id}/submit-template", r.session(http.HandlerFunc(h.HandleSubmitTemplate), httpx.ModerateLimit))
}

func (r *Router) registerAppointments() {
	h := &AppointmentsHandler{AppointmentService: r.AppointmentService}
	r.Mux.Handle("GET /api/appointments", r.session(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /api/appointments", r.session(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
}

func (r *Router) registerStaff() {
	h := &StaffHandler{StaffService: r.StaffService}
	r.Mux.Handle("GET /api/staff", r.session(h, httpx.LenientLimit))
}

func (r *Router) registerTransactions() {
	h := &TransactionsHandler{TransactionService: r.TransactionService}
	r.Mux.Handle("GET /api/transactions", r.session(h, httpx.LenientLimit))
}

func (r *Router) registerWhatsApp() {
	h := &WhatsAppHandler{MessagingService: r.MessagingService}
	// Bulk sends go through this endpoint one message at a time, so the
	// profile has to sustain the dispatcher's cadence.
	r.Mux.Handle("POST /api/whatsapp/send-message", r.session(h, httpx.SendLimit))
}

func (r *Router) registerPayments() {
	h := &PaymentsHandler{PaymentService: r.PaymentService}
	r.Mux.Handle("POST /api/payments/create-order", r.session(http.HandlerFunc(h.HandleCreateOrder), httpx.ModerateLimit))
	r.Mux.Handle("POST /api/payments/create-subscription-order", r.session(http.HandlerFunc(h.HandleCreateSubscriptionOrder), httpx.ModerateLimit))
	r.Mux.Handle("POST /api/payments/verify-payment", r.session(http.HandlerFunc(h.HandleVerifyPayment), httpx.StrictLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
