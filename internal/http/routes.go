package httpx

import (
	"bytes"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	adminconsole "github.com/kampus/admin-console"
	domainauth "github.com/kampus/admin-console/internal/domain/auth"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthServiceInterface
	Customers CustomersService
	Codes     PartnershipCodesService
	Access    AccessService
	Reports   ReportsService
	// Cookie configuration
	CookieDomain  string
	SecureCookies bool
	SessionCookie string
	// TemplateFS overrides the embedded templates (tests).
	TemplateFS fs.FS
	IsDev      bool         // Development mode flag for template reloading
	Logger     *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Static assets at /static
	// Dev mode: serve from disk
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticHandler(services.IsDev))

	cfg := uiRouteConfig{
		Auth: services.Auth,
		Cookie: SessionCookie{
			Name:   services.SessionCookie,
			Domain: services.CookieDomain,
			Secure: services.SecureCookies,
		},
		CSRF: CSRFConfig{CookieDomain: services.CookieDomain, Secure: services.SecureCookies},
	}

	uiHandlers := setupUIHandlers(services, cfg.Cookie)
	if uiHandlers != nil {
		registerAuthRoutes(mux, &AuthHandlers{
			Svc:    services.Auth,
			Cookie: cfg.Cookie,
			T:      uiHandlers.T,
			Logger: services.Logger,
		}, cfg)
		registerUIRoutes(mux, uiHandlers, cfg)
	}

	// Wrap with NotFound handler and browser detection middleware
	handler := &notFoundHandler{
		mux:        mux,
		uiHandlers: uiHandlers,
		guard:      cfg.authWrap(),
	}
	return BrowserDetection()(handler)
}

// templateFS picks the template filesystem: explicit override, disk in dev mode, embedded otherwise.
func templateFS(services RouterServices) fs.FS {
	if services.TemplateFS != nil {
		return services.TemplateFS
	}
	if services.IsDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(adminconsole.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// setupUIHandlers creates UI handlers with the template renderer.
func setupUIHandlers(services RouterServices, cookie SessionCookie) *UIHandlers {
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS(services),
		DevMode:    services.IsDev,
		Logger:     services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	return &UIHandlers{
		T:         tr,
		Auth:      services.Auth,
		Customers: services.Customers,
		Codes:     services.Codes,
		Access:    services.Access,
		Reports:   services.Reports,
		Cookie:    cookie,
		IsDev:     services.IsDev,
		Logger:    services.Logger,
	}
}

// staticHandler serves /static/* assets.
func staticHandler(isDev bool) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), false)
	}
	staticSub, err := fs.Sub(adminconsole.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), false)
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))), true)
}

// staticWithCacheHeaders wraps a static file handler with cache headers.
// Embedded assets change only with a new build, so they may be revalidated hourly.
func staticWithCacheHeaders(handler http.Handler, cacheable bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cacheable {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
	guard      func(http.Handler) http.Handler
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter()
	h.mux.ServeHTTP(cw, r)

	if cw.status != http.StatusNotFound || strings.HasPrefix(r.URL.Path, "/static/") || h.uiHandlers == nil {
		cw.flushTo(w)
		return
	}
	// Unknown paths are only described to signed-in users.
	h.guard(http.HandlerFunc(h.uiHandlers.NotFound)).ServeHTTP(w, r)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}

// uiRouteConfig holds configuration for route registration.
type uiRouteConfig struct {
	Auth   AuthServiceInterface
	Cookie SessionCookie
	CSRF   CSRFConfig
}

// authWrap requires a session and CSRF protection.
func (cfg uiRouteConfig) authWrap() func(http.Handler) http.Handler {
	auth := RequireAuthBrowser(cfg.Auth, cfg.Cookie)
	csrf := CSRFProtection(cfg.CSRF)
	return func(h http.Handler) http.Handler {
		return auth(csrf(h))
	}
}

// permWrap additionally requires one permission flag.
func (cfg uiRouteConfig) permWrap(key domainauth.PermissionKey) func(http.Handler) http.Handler {
	base := cfg.authWrap()
	perm := RequirePermissionBrowser(key)
	return func(h http.Handler) http.Handler {
		return base(perm(h))
	}
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, cfg uiRouteConfig) {
	csrf := CSRFProtection(cfg.CSRF)
	mux.Handle("GET "+PathLogin, csrf(http.HandlerFunc(h.LoginPage)))
	mux.Handle("POST "+PathLogin, csrf(http.HandlerFunc(h.Login)))
	mux.Handle("POST "+PathLogout, cfg.authWrap()(http.HandlerFunc(h.Logout)))
	mux.HandleFunc("GET /auth/status", h.Status)
}

// registerUIRoutes delegates to per-section UI route registration functions.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /{$}", wrap(http.RedirectHandler(PathDashboard, http.StatusSeeOther)))
	mux.Handle("GET "+PathDashboard, wrap(http.HandlerFunc(h.Dashboard)))

	registerUICustomerRoutes(mux, h, cfg)
	registerUIPartnershipCodeRoutes(mux, h, cfg)
	registerUIAccessRoutes(mux, h, cfg)
	registerUIReportRoutes(mux, h, cfg)
}

func registerUICustomerRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.permWrap(domainauth.PermManageCustomers)
	mux.Handle("GET "+PathCustomers, wrap(http.HandlerFunc(h.CustomerList)))
	mux.Handle("GET "+PathCustomers+"/new", wrap(http.HandlerFunc(h.CustomerNew)))
	mux.Handle("POST "+PathCustomers, wrap(http.HandlerFunc(h.CustomerCreate)))
	mux.Handle("POST "+PathCustomers+"/camps", wrap(http.HandlerFunc(h.CustomerCamps)))
	mux.Handle("GET "+PathCustomers+"/{id}/delete", wrap(http.HandlerFunc(h.CustomerDeleteConfirm)))
	mux.Handle("POST "+PathCustomers+"/{id}/delete", wrap(http.HandlerFunc(h.CustomerDelete)))
}

func registerUIPartnershipCodeRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.permWrap(domainauth.PermManagePartnershipCodes)
	mux.Handle("GET "+PathPartnershipCodes, wrap(http.HandlerFunc(h.PartnershipCodes)))
	mux.Handle("GET "+PathPartnershipCodes+"/new", wrap(http.HandlerFunc(h.PartnershipCodeNew)))
	mux.Handle("POST "+PathPartnershipCodes, wrap(http.HandlerFunc(h.PartnershipCodeCreate)))
	mux.Handle("GET "+PathPartnershipCodes+"/{id}/delete", wrap(http.HandlerFunc(h.PartnershipCodeDeleteConfirm)))
	mux.Handle("POST "+PathPartnershipCodes+"/{id}/delete", wrap(http.HandlerFunc(h.PartnershipCodeDelete)))
}

func registerUIAccessRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.permWrap(domainauth.PermManageAccess)
	mux.Handle("GET "+PathAccess, wrap(http.HandlerFunc(h.AccessManagement)))
	mux.Handle("GET "+PathAccess+"/new", wrap(http.HandlerFunc(h.AccessNew)))
	mux.Handle("POST "+PathAccess, wrap(http.HandlerFunc(h.AccessCreate)))
	mux.Handle("GET "+PathAccess+"/{id}/edit", wrap(http.HandlerFunc(h.AccessEdit)))
	mux.Handle("POST "+PathAccess+"/{id}", wrap(http.HandlerFunc(h.AccessUpdate)))
	mux.Handle("GET "+PathAccess+"/{id}/delete", wrap(http.HandlerFunc(h.AccessDeleteConfirm)))
	mux.Handle("POST "+PathAccess+"/{id}/delete", wrap(http.HandlerFunc(h.AccessDelete)))
}

func registerUIReportRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	mux.Handle("GET "+PathFinancials, cfg.permWrap(domainauth.PermViewFinancials)(http.HandlerFunc(h.Financials)))
	mux.Handle("GET "+PathPartnershipStats, cfg.permWrap(domainauth.PermViewPartnershipStats)(http.HandlerFunc(h.PartnershipStats)))
}
