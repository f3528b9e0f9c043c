package httpx

import (
	"log/slog"
	"net/http"
	"strings"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	apperrors "github.com/kampus/admin-console/internal/errors"
)

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc    AuthServiceInterface
	Cookie SessionCookie
	T      *TemplateRenderer
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// loginRedirect resolves where to go after signing in.
func loginRedirect(candidate string) string {
	p := safeRedirectPath(candidate)
	if p == "/" || strings.HasPrefix(p, PathLogin) {
		return PathDashboard
	}
	return p
}

func (h *AuthHandlers) renderLogin(w http.ResponseWriter, r *http.Request, status int, data map[string]any) {
	data["Title"] = "Giriş · Kampüs Admin"
	data["CSRFToken"] = GetCSRFToken(r)
	if err := h.T.Render(w, tmplLogin, status, data); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// LoginPage renders the sign-in form.
// GET /login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	redirectURI := r.URL.Query().Get("redirect_uri")
	if id := h.Cookie.Read(r); id != "" {
		if _, err := h.Svc.GetSession(r.Context(), id); err == nil {
			http.Redirect(w, r, loginRedirect(redirectURI), http.StatusSeeOther)
			return
		}
	}
	h.renderLogin(w, r, http.StatusOK, map[string]any{"RedirectURI": redirectURI})
}

// Login exchanges the submitted credentials for a session.
// POST /login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, map[string]any{"ErrorMessage": MsgLoginFailed})
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	redirectURI := r.PostFormValue("redirect_uri")

	sess, err := h.Svc.Login(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		h.logger().InfoContext(r.Context(), "login failed", "error", err, "session_email", email)
		status := DetermineErrorStatus(err)
		if apperrors.GetCode(err) == apperrors.ErrCodeValidation {
			status = http.StatusUnauthorized
		}
		h.renderLogin(w, r, status, map[string]any{
			"Email":        email,
			"RedirectURI":  redirectURI,
			"ErrorMessage": apperrors.UserMessage(err, MsgLoginFailed),
		})
		return
	}

	h.Cookie.Set(w, r, sess)
	http.Redirect(w, r, loginRedirect(redirectURI), http.StatusSeeOther)
}

// Logout deletes the session, clears the cookie and returns to the login page.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if id := h.Cookie.Read(r); id != "" {
		if err := h.Svc.Logout(r.Context(), id); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
	}
	h.Cookie.Clear(w, r)

	switch {
	case IsHTMX(r):
		HTMX(w).Redirect(PathLogin)
	case strings.Contains(r.Header.Get("Accept"), "application/json"):
		WriteJSON(w, http.StatusOK, map[string]string{"status": "success", "redirect_to": PathLogin})
	default:
		http.Redirect(w, r, PathLogin, http.StatusSeeOther)
	}
}

// statusResponse is the body of GET /auth/status.
type statusResponse struct {
	Authenticated bool     `json:"authenticated"`
	Email         string   `json:"email,omitempty"`
	Permissions   []string `json:"permissions,omitempty"`
	ExpiresAt     string   `json:"expires_at,omitempty"`
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	id := h.Cookie.Read(r)
	if id == "" {
		WriteJSON(w, http.StatusOK, statusResponse{})
		return
	}
	sess, err := h.Svc.GetSession(r.Context(), id)
	if err != nil {
		h.Cookie.Clear(w, r)
		WriteJSON(w, http.StatusOK, statusResponse{})
		return
	}

	perms := make([]string, 0, len(domainauth.AllPermissions()))
	for _, k := range domainauth.AllPermissions() {
		if sess.Can(k) {
			perms = append(perms, string(k))
		}
	}
	WriteJSON(w, http.StatusOK, statusResponse{
		Authenticated: true,
		Email:         sess.Email,
		Permissions:   perms,
		ExpiresAt:     sess.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z"),
	})
}
