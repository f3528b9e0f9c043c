package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/kampus/admin-console/internal/adapters/kampusapi"
	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	mockauth "github.com/kampus/admin-console/internal/mocks/auth"
	"github.com/kampus/admin-console/internal/service"
	"github.com/kampus/admin-console/internal/testutil/fakeapi"
)

const testCSRFToken = "test-csrf-token"

// testEnv is a router wired to real services talking to a fake API.
type testEnv struct {
	t        *testing.T
	API      *fakeapi.Server
	Sessions *mockauth.MemorySessionStore
	Handler  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fake := fakeapi.New(t)
	client, err := kampusapi.New(kampusapi.Config{BaseURL: fake.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := mockauth.NewMemorySessionStore()
	handler := NewRouter(RouterServices{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Authenticator: client,
			Sessions:      sessions,
			Config:        service.AuthConfig{TTL: time.Hour, Logger: logger},
		}),
		Customers: service.NewCustomerService(service.CustomerServiceOptions{Customers: client, Codes: client}),
		Codes:     service.NewPartnershipCodeService(client),
		Access: service.NewAccessService(service.AccessServiceOptions{
			Users:     client,
			Protected: service.DefaultProtectedAccounts,
			Logger:    logger,
		}),
		Reports:    service.NewReportService(client),
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Logger:     logger,
	})
	return &testEnv{t: t, API: fake, Sessions: sessions, Handler: handler}
}

// signIn seeds an API account holding perms and stores a session for it.
// It returns the session ID and the account's bearer token.
func (e *testEnv) signIn(email string, perms ...domainauth.PermissionKey) (string, string) {
	e.t.Helper()
	p := domainauth.Permissions{}
	for _, k := range perms {
		p[k] = true
	}
	u := e.API.AddUser(fakeapi.User{
		Email:                     email,
		Password:                  "secret1",
		CanManageCustomers:        p.Has(domainauth.PermManageCustomers),
		CanViewFinancials:         p.Has(domainauth.PermViewFinancials),
		CanManagePartnershipCodes: p.Has(domainauth.PermManagePartnershipCodes),
		CanViewPartnershipStats:   p.Has(domainauth.PermViewPartnershipStats),
		CanManageAccess:           p.Has(domainauth.PermManageAccess),
		IsActive:                  true,
	})
	token := e.API.IssueToken(email)
	now := time.Now()
	sess := domainauth.Session{
		ID:          uuid.NewString(),
		UserID:      strconv.FormatInt(u.ID, 10),
		Email:       email,
		Token:       token,
		Permissions: p,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Hour),
	}
	require.NoError(e.t, e.Sessions.Save(e.t.Context(), sess))
	return sess.ID, token
}

// reqOpts tweaks a test request.
type reqOpts struct {
	Session string
	Form    url.Values
	HTMX    bool
	Accept  string
}

// do sends a request through the router with a valid CSRF pair.
func (e *testEnv) do(method, target string, opts reqOpts) *httptest.ResponseRecorder {
	e.t.Helper()
	var body io.Reader
	if opts.Form != nil {
		body = strings.NewReader(opts.Form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if opts.Form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	accept := opts.Accept
	if accept == "" {
		accept = "text/html"
	}
	req.Header.Set("Accept", accept)
	if opts.HTMX {
		req.Header.Set("Hx-Request", "true")
	}
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	req.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	if opts.Session != "" {
		req.AddCookie(&http.Cookie{Name: DefaultSessionCookieName, Value: opts.Session})
	}

	rec := httptest.NewRecorder()
	e.Handler.ServeHTTP(rec, req)
	return rec
}

// menuPaths returns the hrefs of the sidebar menu in document order.
func menuPaths(t *testing.T, body string) []string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)

	menu := findByID(doc, "sidebar-menu")
	if menu == nil {
		return nil
	}
	var paths []string
	walk(menu, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			paths = append(paths, attr(n, "href"))
		}
	})
	return paths
}

// rowsWithAttr returns the value of attribute key for each <tr> carrying it,
// along with whether that row contains an element with data-action="delete".
func rowsWithAttr(t *testing.T, body, key string) map[string]bool {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)

	rows := map[string]bool{}
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "tr" {
			return
		}
		v := attr(n, key)
		if v == "" {
			return
		}
		hasDelete := false
		walk(n, func(c *html.Node) {
			if c.Type == html.ElementNode && attr(c, "data-action") == "delete" {
				hasDelete = true
			}
		})
		rows[v] = hasDelete
	})
	return rows
}

// inputValues returns the values of the <input> elements named name, in document order.
func inputValues(t *testing.T, body, name string) []string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)

	var values []string
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "input" && attr(n, "name") == name {
			values = append(values, attr(n, "value"))
		}
	})
	return values
}

func findByID(n *html.Node, id string) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) {
		if found == nil && c.Type == html.ElementNode && attr(c, "id") == id {
			found = c
		}
	})
	return found
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func newFormRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
