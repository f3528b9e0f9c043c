package httpx

import (
	"net/http"

	apperrors "github.com/kampus/admin-console/internal/errors"
)

const errMsgFixBelow = "Lütfen aşağıdaki hataları düzeltin."

// ErrorRenderer renders a page with the given status and template data.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, status int, data map[string]any)

// ErrorOpts contains everything needed to re-render a form after a failure.
type ErrorOpts struct {
	W http.ResponseWriter
	R *http.Request
	// Err is the failure; may be nil when only FieldErrors are set.
	Err error
	// FieldErrors contains field-level validation errors (field name → message).
	FieldErrors map[string]string
	// Fallback is shown when Err carries no user-facing message.
	Fallback string
	Renderer ErrorRenderer
	PageMeta PageMeta
	// Data preserves form values and options across the re-render.
	Data map[string]any
	// ShowToast also raises an error toast for htmx requests.
	ShowToast bool
}

// DetermineErrorStatus maps an error to the status a non-htmx form response should carry.
func DetermineErrorStatus(err error) int {
	switch apperrors.GetCode(err) {
	case "":
		if err == nil {
			return http.StatusOK
		}
		return http.StatusInternalServerError
	case apperrors.ErrCodeValidation:
		return http.StatusUnprocessableEntity
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeUnavailable:
		return http.StatusBadGateway
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// RenderError re-renders a page with the error message and any field errors.
// htmx requests always get 200 so the fragment is swapped in.
func RenderError(opts ErrorOpts) {
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	fieldErrors := opts.FieldErrors
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	general := ""
	if opts.Err != nil {
		general = apperrors.UserMessage(opts.Err, opts.Fallback)
		if field := apperrors.GetField(opts.Err); field != "" {
			fieldErrors[field] = general
		}
	} else if len(fieldErrors) > 0 {
		general = errMsgFixBelow
	}

	builder := NewTemplateData(opts.R, opts.PageMeta).WithFieldErrors(fieldErrors).WithError(general)
	for k, v := range opts.Data {
		builder.With(k, v)
	}

	if opts.ShowToast && general != "" && IsHTMX(opts.R) {
		triggerToast(opts.W, general, toastError)
	}

	status := http.StatusOK
	if !IsHTMX(opts.R) {
		if opts.Err != nil {
			status = DetermineErrorStatus(opts.Err)
		} else {
			status = http.StatusUnprocessableEntity
		}
	}
	opts.Renderer(opts.W, opts.R, status, builder.Build())
}
