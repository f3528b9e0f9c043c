package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/kampus/admin-console/internal/errors"
)

func TestDetermineErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{errors.New("x"), http.StatusInternalServerError},
		{apperrors.Validation("bad"), http.StatusUnprocessableEntity},
		{apperrors.NotFound("gone"), http.StatusNotFound},
		{apperrors.Forbidden("no"), http.StatusForbidden},
		{apperrors.Unauthorized("expired"), http.StatusUnauthorized},
		{apperrors.Wrap(errors.New("dial"), apperrors.ErrCodeUnavailable, "down"), http.StatusBadGateway},
		{apperrors.Wrap(errors.New("slow"), apperrors.ErrCodeTimeout, "slow"), http.StatusGatewayTimeout},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetermineErrorStatus(tt.err), "%v", tt.err)
	}
}

type capturedRender struct {
	status int
	data   map[string]any
}

func (c *capturedRender) render(_ http.ResponseWriter, _ *http.Request, status int, data map[string]any) {
	c.status = status
	c.data = data
}

func TestRenderError(t *testing.T) {
	t.Run("field errors only", func(t *testing.T) {
		var got capturedRender
		RenderError(ErrorOpts{
			W:           httptest.NewRecorder(),
			R:           httptest.NewRequest(http.MethodPost, PathCustomers, nil),
			FieldErrors: map[string]string{"email": "Geçerli bir e-posta girin"},
			Renderer:    got.render,
			Data:        map[string]any{"Form": "kept"},
		})
		assert.Equal(t, http.StatusUnprocessableEntity, got.status)
		assert.Equal(t, errMsgFixBelow, got.data["ErrorMessage"])
		assert.Equal(t, "kept", got.data["Form"])
		assert.Equal(t, map[string]string{"email": "Geçerli bir e-posta girin"}, got.data["Errors"])
	})

	t.Run("api error keeps its message", func(t *testing.T) {
		var got capturedRender
		RenderError(ErrorOpts{
			W:        httptest.NewRecorder(),
			R:        httptest.NewRequest(http.MethodPost, PathPartnershipCodes, nil),
			Err:      apperrors.Validation("Bu kod zaten mevcut"),
			Fallback: "Kod eklenemedi",
			Renderer: got.render,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, got.status)
		assert.Equal(t, "Bu kod zaten mevcut", got.data["ErrorMessage"])
	})

	t.Run("internal error uses fallback", func(t *testing.T) {
		var got capturedRender
		RenderError(ErrorOpts{
			W:        httptest.NewRecorder(),
			R:        httptest.NewRequest(http.MethodPost, PathPartnershipCodes, nil),
			Err:      errors.New("db exploded"),
			Fallback: "Kod eklenemedi",
			Renderer: got.render,
		})
		assert.Equal(t, http.StatusInternalServerError, got.status)
		assert.Equal(t, "Kod eklenemedi", got.data["ErrorMessage"])
	})

	t.Run("htmx gets 200 and a toast", func(t *testing.T) {
		var got capturedRender
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, PathAccess, nil)
		req.Header.Set("Hx-Request", "true")
		RenderError(ErrorOpts{
			W:         rec,
			R:         req,
			Err:       apperrors.ValidationField("password", "Şifre en az 6 karakter olmalıdır"),
			Renderer:  got.render,
			ShowToast: true,
		})
		assert.Equal(t, http.StatusOK, got.status)
		assert.Equal(t, "Şifre en az 6 karakter olmalıdır", got.data["Errors"].(map[string]string)["password"])
		assert.Contains(t, rec.Header().Get("Hx-Trigger"), "showToast")
	})

	t.Run("missing renderer", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RenderError(ErrorOpts{W: rec, R: httptest.NewRequest(http.MethodGet, "/", nil)})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
