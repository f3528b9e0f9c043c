package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	apperrors "github.com/kampus/admin-console/internal/errors"
	"github.com/kampus/admin-console/internal/testutil/fakeapi"
)

// mockAuthService is a test double for service.AuthService.
type mockAuthService struct {
	loginFunc      func(ctx context.Context, email, password string) (*domainauth.Session, error)
	getSessionFunc func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	logoutFunc     func(ctx context.Context, sessionID string) error
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return &domainauth.Session{
		ID:        "test-session-id",
		Email:     email,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (m *mockAuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, sessionID)
	}
	return nil, errors.New("not found")
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, sessionID)
	}
	return nil
}

func newAuthHandlers(t *testing.T, svc AuthServiceInterface) *AuthHandlers {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: os.DirFS(TemplatePathFromTest)})
	require.NoError(t, err)
	return &AuthHandlers{Svc: svc, T: tr}
}

func TestAuthHandlers_Login_Success(t *testing.T) {
	var gotEmail string
	h := newAuthHandlers(t, &mockAuthService{
		loginFunc: func(_ context.Context, email, _ string) (*domainauth.Session, error) {
			gotEmail = email
			return &domainauth.Session{ID: "sid-1", Email: email, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	})

	req := newFormRequest(http.MethodPost, PathLogin, url.Values{
		"email":        {" staff@kampus.com "},
		"password":     {"secret1"},
		"redirect_uri": {"/customers?page=2"},
	})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/customers?page=2", rec.Header().Get("Location"))
	assert.Equal(t, "staff@kampus.com", gotEmail)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, DefaultSessionCookieName, cookies[0].Name)
	assert.Equal(t, "sid-1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandlers_Login_RejectsOffsiteRedirect(t *testing.T) {
	h := newAuthHandlers(t, &mockAuthService{})
	for _, target := range []string{"https://evil.example/", "//evil.example", `/\evil.example`, `/\/evil.example`, "/login", ""} {
		req := newFormRequest(http.MethodPost, PathLogin, url.Values{
			"email": {"a@kampus.com"}, "password": {"x"}, "redirect_uri": {target},
		})
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		assert.Equal(t, PathDashboard, rec.Header().Get("Location"), "redirect_uri %q", target)
	}
}

func TestAuthHandlers_Login_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{"bad credentials", apperrors.Validation("E-posta veya şifre hatalı"), http.StatusUnauthorized, "E-posta veya şifre hatalı"},
		{"inactive", apperrors.Forbidden("Hesabınız devre dışı bırakılmış"), http.StatusForbidden, "Hesabınız devre dışı bırakılmış"},
		{"api down", apperrors.Wrap(errors.New("dial"), apperrors.ErrCodeUnavailable, "Sunucuya ulaşılamadı."), http.StatusBadGateway, "Sunucuya ulaşılamadı."},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, MsgLoginFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandlers(t, &mockAuthService{
				loginFunc: func(context.Context, string, string) (*domainauth.Session, error) { return nil, tt.err },
			})
			req := newFormRequest(http.MethodPost, PathLogin, url.Values{"email": {"a@kampus.com"}, "password": {"x"}})
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantText)
			assert.Contains(t, rec.Body.String(), `value="a@kampus.com"`)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestAuthHandlers_LoginPage_RedirectsLiveSession(t *testing.T) {
	h := newAuthHandlers(t, &mockAuthService{
		getSessionFunc: func(_ context.Context, id string) (*domainauth.Session, error) {
			return &domainauth.Session{ID: id}, nil
		},
	})
	req := httptest.NewRequest(http.MethodGet, PathLogin, nil)
	req.AddCookie(&http.Cookie{Name: DefaultSessionCookieName, Value: "sid"})
	rec := httptest.NewRecorder()
	h.LoginPage(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, PathDashboard, rec.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, PathLogin+"?redirect_uri=%2Ffinancials", nil)
	rec = httptest.NewRecorder()
	h.LoginPage(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="/financials"`)
}

func TestAuthHandlers_Status(t *testing.T) {
	h := newAuthHandlers(t, &mockAuthService{
		getSessionFunc: func(_ context.Context, id string) (*domainauth.Session, error) {
			return &domainauth.Session{
				ID:    id,
				Email: "fin@kampus.com",
				Permissions: domainauth.Permissions{
					domainauth.PermViewFinancials: true,
					domainauth.PermManageAccess:   false,
				},
				ExpiresAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.AddCookie(&http.Cookie{Name: DefaultSessionCookieName, Value: "sid"})
	rec := httptest.NewRecorder()
	h.Status(rec, req)

	var got statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Authenticated)
	assert.Equal(t, []string{"can_view_financials"}, got.Permissions)
	assert.Equal(t, "2025-06-01T12:00:00Z", got.ExpiresAt)

	rec = httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/auth/status", nil))
	assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
}

func TestLoginLogout_EndToEnd(t *testing.T) {
	env := newTestEnv(t)
	env.API.AddUser(fakeapi.User{
		Email: "staff@kampus.com", Password: "secret1", IsActive: true, CanManageCustomers: true,
	})
	env.API.AddUser(fakeapi.User{Email: "old@kampus.com", Password: "secret1", IsActive: false})

	rec := env.do(http.MethodPost, PathLogin, reqOpts{Form: url.Values{"email": {"staff@kampus.com"}, "password": {"wrong"}}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "E-posta veya şifre hatalı")

	rec = env.do(http.MethodPost, PathLogin, reqOpts{Form: url.Values{"email": {"old@kampus.com"}, "password": {"secret1"}}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hesabınız devre dışı bırakılmış")
	assert.Zero(t, env.Sessions.Len())

	rec = env.do(http.MethodPost, PathLogin, reqOpts{Form: url.Values{
		"email": {"staff@kampus.com"}, "password": {"secret1"}, "redirect_uri": {"/customers"},
	}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, PathCustomers, rec.Header().Get("Location"))
	require.Equal(t, 1, env.Sessions.Len())

	var sid string
	for _, c := range rec.Result().Cookies() {
		if c.Name == DefaultSessionCookieName {
			sid = c.Value
		}
	}
	require.NotEmpty(t, sid)

	rec = env.do(http.MethodGet, PathCustomers, reqOpts{Session: sid})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPost, PathLogout, reqOpts{Session: sid, HTMX: true, Form: url.Values{}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, PathLogin, rec.Header().Get("Hx-Redirect"))
	assert.Zero(t, env.Sessions.Len())
	assert.True(t, strings.Contains(strings.Join(rec.Header().Values("Set-Cookie"), "\n"), "Max-Age=0"))

	rec = env.do(http.MethodGet, PathCustomers, reqOpts{Session: sid})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
