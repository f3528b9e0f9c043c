package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"strconv"

	apperrors "github.com/kampus/admin-console/internal/errors"
	"github.com/kampus/admin-console/internal/http/ui/viewmodel"
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T         *TemplateRenderer
	Auth      AuthServiceInterface
	Customers CustomersService
	Codes     PartnershipCodesService
	Access    AccessService
	Reports   ReportsService
	Cookie    SessionCookie
	IsDev     bool // Development mode flag for enhanced error reporting
	Logger    *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
	}
	if layout.Title == "" {
		layout.Title = meta.PageTitle + " · Kampüs Admin"
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		layout.User = &viewmodel.User{Email: session.Email}
		layout.IsAuthenticated = true
		layout.Menu = BuildMenu(session.Permissions, r.URL.Path)
	}
	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"Menu":            layout.Menu,
		"CSRFToken":       layout.CSRFToken,
	}
	if layout.User != nil {
		data["User"] = layout.User
	}
	return data
}

// renderPage writes the full layout, or for htmx requests the content fragment
// with out-of-band title, header and menu updates.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, status int, data map[string]any) {
	name := tmplLayout
	if WantsPartial(r) {
		name = tmplPartial
	}
	if err := h.T.Render(w, name, status, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, name)
	}
}

// render is renderPage with status 200.
func (h *UIHandlers) render(w http.ResponseWriter, r *http.Request, data map[string]any) {
	h.renderPage(w, r, http.StatusOK, data)
}

// handleAPIError signs the user out when the API rejected the bearer token.
// It returns true when the response has been written.
func (h *UIHandlers) handleAPIError(w http.ResponseWriter, r *http.Request, err error) bool {
	if !apperrors.IsUnauthorized(err) {
		return false
	}
	if sess := GetSessionFromContext(r.Context()); sess != nil {
		// The request context may already be canceled; the session must still go.
		ctx := context.WithoutCancel(r.Context())
		if logoutErr := h.Auth.Logout(ctx, sess.ID); logoutErr != nil {
			h.logger().WarnContext(ctx, "failed to delete rejected session", "error", logoutErr, "session_email", sess.Email)
		} else {
			h.logger().InfoContext(ctx, "api rejected token; session cleared", "session_email", sess.Email)
		}
	}
	h.Cookie.Clear(w, r)
	redirectToLogin(w, r)
	return true
}

// loadFailed renders a section in its failed state. Fetch errors never produce a 500.
func (h *UIHandlers) loadFailed(w http.ResponseWriter, r *http.Request, meta PageMeta, err error) {
	if h.handleAPIError(w, r, err) {
		return
	}
	h.logger().WarnContext(r.Context(), "view fetch failed", "error", err, "path", r.URL.Path)
	data := NewTemplateData(r, meta).
		With("LoadFailed", true).
		With("Retry", r.URL.Path).
		WithError(apperrors.UserMessage(err, MsgLoadFailed)).
		Build()
	h.render(w, r, data)
}

// pathID parses the {id} path segment. Non-positive or malformed ids yield false.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// listRenderer renders a section list with an optional banner.
type listRenderer func(w http.ResponseWriter, r *http.Request, flash *viewmodel.Flash)

// afterMutation refreshes the list after a successful create or delete.
// htmx gets the refetched list in place plus a toast; plain forms get a 303.
func (h *UIHandlers) afterMutation(w http.ResponseWriter, r *http.Request, listPath, message string, list listRenderer) {
	if !IsHTMX(r) {
		http.Redirect(w, r, listPath, http.StatusSeeOther)
		return
	}
	HTMX(w).PushURL(listPath).Toast(message, toastSuccess)
	list(w, r, nil)
}

// deleteSpec describes one section's delete flow.
type deleteSpec struct {
	ListPath       string
	Title          string
	ConfirmMessage string
	ConfirmLabel   string
	SuccessMessage string
	FailMessage    string
	Delete         func(ctx context.Context, token string, id int64) error
	List           listRenderer
}

// confirmDelete renders the blocking confirmation page.
func (h *UIHandlers) confirmDelete(w http.ResponseWriter, r *http.Request, spec deleteSpec) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	data := NewTemplateData(r, PageMeta{PageTitle: spec.Title, CurrentPage: PageConfirmDelete}).
		With("Message", spec.ConfirmMessage).
		With("ConfirmLabel", spec.ConfirmLabel).
		With("Action", spec.ListPath+"/"+strconv.FormatInt(id, 10)+"/delete").
		With("CancelPath", spec.ListPath).
		Build()
	h.render(w, r, data)
}

// isDeleteConfirmed reports whether the user answered the confirmation.
// Both the confirmation page and the hx-confirm buttons post confirm=yes.
func isDeleteConfirmed(r *http.Request) bool {
	return r.PostFormValue("confirm") == "yes"
}

// handleDelete runs the delete once confirmed. Nothing reaches the API before that.
func (h *UIHandlers) handleDelete(w http.ResponseWriter, r *http.Request, spec deleteSpec) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	if !isDeleteConfirmed(r) {
		h.confirmDelete(w, r, spec)
		return
	}

	err := spec.Delete(r.Context(), sessionToken(r.Context()), id)
	if err == nil {
		h.afterMutation(w, r, spec.ListPath, spec.SuccessMessage, spec.List)
		return
	}
	if h.handleAPIError(w, r, err) {
		return
	}

	msg := apperrors.UserMessage(err, spec.FailMessage)
	h.logger().WarnContext(r.Context(), "delete failed", "error", err, "path", r.URL.Path)
	if IsHTMX(r) {
		// Leave the list as it is; only the toast is shown.
		HTMX(w).Toast(msg, toastError)
		SetHXReswap(w, "none")
		w.WriteHeader(http.StatusOK)
		return
	}
	spec.List(w, r, &viewmodel.Flash{Kind: toastError, Message: msg})
}

// NotFound renders the 404 page inside the layout.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{PageTitle: "Sayfa Bulunamadı", CurrentPage: PageNotFound}).Build()
	h.renderPage(w, r, http.StatusNotFound, data)
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		if _, writeErr := w.Write([]byte(
			`<div class="template-error"><h2>Template Rendering Error</h2>` +
				`<p><strong>Context:</strong> ` + html.EscapeString(context) + `</p>` +
				`<p><strong>Path:</strong> ` + html.EscapeString(r.URL.Path) + `</p>` +
				`<pre>` + html.EscapeString(err.Error()) + `</pre></div>`,
		)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
