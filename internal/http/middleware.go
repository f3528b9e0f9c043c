package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			}
			if ww.ctx != nil {
				if s := GetSessionFromContext(ww.ctx); s != nil {
					attrs = append(attrs, slog.String("session_email", s.Email))
				}
			}
			logger.Info("http", attrs...)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
	// ctx is filled by the guard so the access log can name the caller.
	ctx context.Context
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *respWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *respWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// noteSession records the authenticated session on the access log writer, if present.
func noteSession(w http.ResponseWriter, ctx context.Context) {
	for {
		switch ww := w.(type) {
		case *respWriter:
			ww.ctx = ctx
			return
		case interface{ Unwrap() http.ResponseWriter }:
			w = ww.Unwrap()
		default:
			return
		}
	}
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// browserRequestKey is an unexported context key type for browser request detection.
type browserRequestKey struct{}

// BrowserDetection returns a middleware that records whether the caller wants
// HTML (browser, htmx) or JSON.
func BrowserDetection() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), browserRequestKey{}, isBrowserRequest(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsBrowserRequest returns true if the current request is from a browser.
func IsBrowserRequest(r *http.Request) bool {
	if isBrowser, ok := r.Context().Value(browserRequestKey{}).(bool); ok {
		return isBrowser
	}
	return isBrowserRequest(r)
}

// isBrowserRequest treats htmx requests, requests without an Accept header
// and requests accepting text/html as browser requests.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/static/") {
		return false
	}
	if IsHTMX(r) {
		return true
	}
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "text/html")
}

// SessionReader is the part of the auth service the guard needs.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

// RequireAuthBrowser returns a middleware that requires a live session.
// Browsers are redirected to the login page, htmx gets Hx-Redirect, JSON callers get 401.
// A cookie pointing at a missing or expired session is cleared.
func RequireAuthBrowser(authSvc SessionReader, cookie SessionCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessionFromRequest(r, authSvc, cookie)
			if session == nil {
				if cookie.Read(r) != "" {
					cookie.Clear(w, r)
				}
				denyUnauthenticated(w, r)
				return
			}

			ctx := SetSessionInContext(r.Context(), session)
			noteSession(w, ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermissionBrowser returns a middleware that lets the request through only
// when the session in context holds required. It must run after RequireAuthBrowser.
// Browsers without the flag land on the dashboard; JSON callers get 403.
func RequirePermissionBrowser(required domainauth.PermissionKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := GetSessionFromContext(r.Context())
			if session == nil {
				denyUnauthenticated(w, r)
				return
			}
			if !session.Can(required) {
				denyForbidden(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func sessionFromRequest(r *http.Request, authSvc SessionReader, cookie SessionCookie) *domainauth.Session {
	id := cookie.Read(r)
	if id == "" || authSvc == nil {
		return nil
	}
	session, err := authSvc.GetSession(r.Context(), id)
	if err != nil {
		return nil
	}
	return session
}

func denyUnauthenticated(w http.ResponseWriter, r *http.Request) {
	if IsBrowserRequest(r) {
		redirectToLogin(w, r)
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "authentication_required",
		Message: "authentication required",
	})
}

func denyForbidden(w http.ResponseWriter, r *http.Request) {
	switch {
	case IsHTMX(r):
		HTMX(w).Redirect(PathDashboard)
	case IsBrowserRequest(r):
		http.Redirect(w, r, PathDashboard, http.StatusSeeOther)
	default:
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "insufficient_permissions",
			Message: "insufficient permissions",
		})
	}
}

// redirectToLogin sends the browser to the login page, remembering where it was.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	loginURL := loginURLFor(redirectPathForRequest(r))
	if IsHTMX(r) {
		HTMX(w).Redirect(loginURL)
		return
	}
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

func loginURLFor(redirectPath string) string {
	if redirectPath == "" || redirectPath == "/" || redirectPath == PathLogin {
		return PathLogin
	}
	return PathLogin + "?redirect_uri=" + url.QueryEscape(redirectPath)
}

func redirectPathForRequest(r *http.Request) string {
	if IsHTMX(r) {
		if current := safeRedirectFromURL(r.Header.Get("Hx-Current-Url")); current != "" {
			return current
		}
		if referer := safeRedirectFromURL(r.Header.Get("Referer")); referer != "" {
			return referer
		}
	}
	if r.Method != http.MethodGet {
		// POST targets are not replayable; return to the section path.
		return safeRedirectPath(r.URL.Path)
	}
	return safeRedirectPath(r.URL.RequestURI())
}

func safeRedirectFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Host != "" && !u.IsAbs() {
		return ""
	}
	if u.IsAbs() {
		return safeRedirectPath(u.RequestURI())
	}
	return safeRedirectPath(raw)
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/". Returns "/" when invalid.
// Browsers read a backslash as "/", so "/\evil.example" is as offsite as "//evil.example".
func safeRedirectPath(candidate string) string {
	if candidate == "" || strings.ContainsRune(candidate, '\\') {
		return "/"
	}
	if len(candidate) > 1 && candidate[1] == '/' {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
