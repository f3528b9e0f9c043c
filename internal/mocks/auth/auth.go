package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"strings"
	"sync"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	"github.com/kampus/admin-console/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.Authenticator = (*MockAuthenticator)(nil)
	_ ports.SessionStore  = (*MemorySessionStore)(nil)
)

// ErrBadCredentials is returned by MockAuthenticator when no account matches.
var ErrBadCredentials = errors.New("bad credentials")

// MockAuthenticator simulates the API login endpoint with a fixed account table.
type MockAuthenticator struct {
	LoginFunc func(ctx context.Context, in ports.LoginInput) (domainauth.Identity, error)

	// Accounts maps lowercased email to the identity returned on success.
	Accounts map[string]domainauth.Identity
	// Passwords maps lowercased email to the accepted password.
	Passwords map[string]string

	mu    sync.Mutex
	calls int
}

// NewMockAuthenticator creates a MockAuthenticator with no accounts.
func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{
		Accounts:  map[string]domainauth.Identity{},
		Passwords: map[string]string{},
	}
}

// AddAccount registers an account that logs in with password.
func (m *MockAuthenticator) AddAccount(id domainauth.Identity, password string) {
	key := strings.ToLower(id.Email)
	m.Accounts[key] = id
	m.Passwords[key] = password
}

// Calls reports how many logins were attempted.
func (m *MockAuthenticator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockAuthenticator) Login(ctx context.Context, in ports.LoginInput) (domainauth.Identity, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, in)
	}

	key := strings.ToLower(strings.TrimSpace(in.Email))
	id, ok := m.Accounts[key]
	if !ok || m.Passwords[key] != in.Password {
		return domainauth.Identity{}, ErrBadCredentials
	}
	return id, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemorySessionStore) DeleteByEmail(_ context.Context, email string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if strings.EqualFold(s.Email, email) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len reports the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// ErrNotFound is returned by mocks when an entity is not present.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

var ErrNotFound error = notFoundError{}
