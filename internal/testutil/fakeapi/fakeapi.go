// Package fakeapi provides an in-memory Kampüs REST API for handler and
// end-to-end tests. It speaks the same JSON shapes as the real API and
// counts requests so tests can assert that nothing was sent.
package fakeapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// User is a staff account seeded into the fake.
type User struct {
	ID                        int64  `json:"id"`
	Email                     string `json:"email"`
	Password                  string `json:"-"`
	CanManageCustomers        bool   `json:"can_manage_customers"`
	CanViewFinancials         bool   `json:"can_view_financials"`
	CanManagePartnershipCodes bool   `json:"can_manage_partnership_codes"`
	CanViewPartnershipStats   bool   `json:"can_view_partnership_stats"`
	CanManageAccess           bool   `json:"can_manage_access"`
	IsActive                  bool   `json:"is_active"`
	IsProtected               bool   `json:"is_protected,omitempty"`
}

// Customer is the wire shape of a customer.
type Customer struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"full_name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	ClassLevel      *string   `json:"class_level"`
	Camps           []string  `json:"camps"`
	Prices          []float64 `json:"prices"`
	PartnershipCode *string   `json:"partnership_code"`
	PreviousYKSRank *int      `json:"previous_yks_rank"`
	City            *string   `json:"city"`
	IsPaid          bool      `json:"is_paid"`
	IsDeleted       bool      `json:"is_deleted"`
	CreatedAt       time.Time `json:"created_at"`
}

// Code is the wire shape of a partnership code.
type Code struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Stat is the wire shape of one partnership statistic.
type Stat struct {
	Code          string  `json:"code"`
	CustomerCount int     `json:"customer_count"`
	TotalAmount   float64 `json:"total_amount"`
}

// Financials is the wire shape of the financial report.
type Financials struct {
	Period struct {
		Daily   float64 `json:"daily"`
		Weekly  float64 `json:"weekly"`
		Monthly float64 `json:"monthly"`
		Yearly  float64 `json:"yearly"`
	} `json:"period"`
	Details []FinancialDetail `json:"details"`
	Total   float64           `json:"total"`
}

// FinancialDetail is one payment line of Financials.
type FinancialDetail struct {
	CustomerID      int64     `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	Amount          float64   `json:"amount"`
	TransactionDate time.Time `json:"transaction_date"`
}

// Server is the fake API. All fields are guarded by mu; use the helper methods.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	users      []User
	customers  []Customer
	codes      []Code
	stats      []Stat
	financials Financials
	tokens     map[string]int64
	revoked    map[string]bool
	nextID     int64
	requests   []string
	now        time.Time
}

// New starts a fake API and registers its shutdown with t.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		tokens:  map[string]int64{},
		revoked: map[string]bool{},
		nextID:  100,
		now:     time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
	}
	s.financials.Details = []FinancialDetail{}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", s.login)
	mux.HandleFunc("GET /customers", s.authed(s.listCustomers))
	mux.HandleFunc("POST /customers", s.authed(s.createCustomer))
	mux.HandleFunc("DELETE /customers/{id}", s.authed(s.deleteCustomer))
	mux.HandleFunc("GET /partnership-codes", s.authed(s.listCodes))
	mux.HandleFunc("POST /partnership-codes", s.authed(s.createCode))
	mux.HandleFunc("DELETE /partnership-codes/{id}", s.authed(s.deactivateCode))
	mux.HandleFunc("GET /users", s.authed(s.listUsers))
	mux.HandleFunc("POST /users", s.authed(s.createUser))
	mux.HandleFunc("PUT /users/{id}", s.authed(s.updateUser))
	mux.HandleFunc("DELETE /users/{id}", s.authed(s.deleteUser))
	mux.HandleFunc("GET /financials", s.authed(s.getFinancials))
	mux.HandleFunc("GET /partnership-stats", s.authed(s.getStats))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		s.mu.Unlock()
		mux.ServeHTTP(w, r)
	})
}

// AddUser seeds a staff account and returns it with its assigned ID.
func (s *Server) AddUser(u User) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	u.ID = s.nextID
	s.users = append(s.users, u)
	return u
}

// AddCustomer seeds a customer and returns its ID.
func (s *Server) AddCustomer(c Customer) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c.ID = s.nextID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now
	}
	s.customers = append(s.customers, c)
	return c.ID
}

// AddCode seeds a partnership code and returns its ID.
func (s *Server) AddCode(code string, active bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.codes = append(s.codes, Code{ID: s.nextID, Code: code, IsActive: active, CreatedAt: s.now})
	return s.nextID
}

// SetStats replaces the partnership statistics.
func (s *Server) SetStats(stats []Stat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
}

// SetFinancials replaces the financial report.
func (s *Server) SetFinancials(f Financials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.Details == nil {
		f.Details = []FinancialDetail{}
	}
	s.financials = f
}

// IssueToken returns a valid bearer token for the user with email.
func (s *Server) IssueToken(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return s.issueLocked(u.ID)
		}
	}
	return ""
}

// RevokeToken makes every later call with token fail with 401.
func (s *Server) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = true
}

// Requests returns the "METHOD /path" log of every request received.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// CountRequests counts received requests matching method and path exactly.
func (s *Server) CountRequests(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r == method+" "+path {
			n++
		}
	}
	return n
}

// Customers returns a snapshot of stored customers.
func (s *Server) Customers() []Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.customers)
}

// Codes returns a snapshot of stored partnership codes.
func (s *Server) Codes() []Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.codes)
}

// Users returns a snapshot of stored users.
func (s *Server) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.users)
}

func (s *Server) issueLocked(id int64) string {
	s.nextID++
	tok := "tok-" + strconv.FormatInt(s.nextID, 10)
	s.tokens[tok] = id
	return tok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func detail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		_, known := s.tokens[tok]
		bad := !ok || !known || s.revoked[tok]
		s.mu.Unlock()
		if bad {
			detail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		next(w, r)
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, in.Email) && u.Password == in.Password {
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": s.issueLocked(u.ID),
				"token_type":   "bearer",
				"user":         u,
			})
			return
		}
	}
	detail(w, http.StatusUnauthorized, "Incorrect email or password")
}

func (s *Server) listCustomers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if !c.IsDeleted {
			out = append(out, c)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	var c Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	if len(c.Camps) != len(c.Prices) {
		detail(w, http.StatusBadRequest, "camps and prices must have the same length")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.customers {
		if !existing.IsDeleted && strings.EqualFold(existing.Email, c.Email) {
			detail(w, http.StatusBadRequest, "Bu e-posta ile kayıtlı bir müşteri zaten var")
			return
		}
	}
	s.nextID++
	c.ID = s.nextID
	c.CreatedAt = s.now
	s.customers = append(s.customers, c)
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		detail(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.customers {
		if c.ID != id || c.IsDeleted {
			continue
		}
		if c.IsPaid {
			detail(w, http.StatusBadRequest, "Ödemesi alınmış müşteri silinemez")
			return
		}
		s.customers[i].IsDeleted = true
		w.WriteHeader(http.StatusNoContent)
		return
	}
	detail(w, http.StatusNotFound, "Customer not found")
}

func (s *Server) listCodes(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Code, 0, len(s.codes))
	for _, c := range s.codes {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createCode(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.Code) == "" {
		detail(w, http.StatusUnprocessableEntity, "code is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.codes {
		if strings.EqualFold(c.Code, in.Code) {
			detail(w, http.StatusBadRequest, "Bu kod zaten mevcut")
			return
		}
	}
	s.nextID++
	c := Code{ID: s.nextID, Code: in.Code, IsActive: true, CreatedAt: s.now}
	s.codes = append(s.codes, c)
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) deactivateCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		detail(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.codes {
		if c.ID == id {
			s.codes[i].IsActive = false
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	detail(w, http.StatusNotFound, "Code not found")
}

func (s *Server) listUsers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.users)
}

type userPayload struct {
	Email                     string `json:"email"`
	Password                  string `json:"password"`
	CanManageCustomers        bool   `json:"can_manage_customers"`
	CanViewFinancials         bool   `json:"can_view_financials"`
	CanManagePartnershipCodes bool   `json:"can_manage_partnership_codes"`
	CanViewPartnershipStats   bool   `json:"can_view_partnership_stats"`
	CanManageAccess           bool   `json:"can_manage_access"`
	IsActive                  *bool  `json:"is_active"`
}

func (p userPayload) apply(u *User) {
	u.CanManageCustomers = p.CanManageCustomers
	u.CanViewFinancials = p.CanViewFinancials
	u.CanManagePartnershipCodes = p.CanManagePartnershipCodes
	u.CanViewPartnershipStats = p.CanViewPartnershipStats
	u.CanManageAccess = p.CanManageAccess
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	if p.Password != "" {
		u.Password = p.Password
	}
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var in userPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, in.Email) {
			detail(w, http.StatusBadRequest, "Bu e-posta zaten kayıtlı")
			return
		}
	}
	s.nextID++
	u := User{ID: s.nextID, Email: in.Email, IsActive: true}
	in.apply(&u)
	s.users = append(s.users, u)
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		detail(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	var in userPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		detail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			in.apply(&s.users[i])
			writeJSON(w, http.StatusOK, s.users[i])
			return
		}
	}
	detail(w, http.StatusNotFound, "User not found")
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		detail(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID != id {
			continue
		}
		if u.IsProtected {
			detail(w, http.StatusForbidden, "Bu kullanıcı silinemez")
			return
		}
		s.users = slices.Delete(s.users, i, i+1)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	detail(w, http.StatusNotFound, "User not found")
}

func (s *Server) getFinancials(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.financials)
}

func (s *Server) getStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.stats
	if out == nil {
		out = []Stat{}
	}
	writeJSON(w, http.StatusOK, out)
}
