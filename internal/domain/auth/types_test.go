package auth

import (
	"testing"
	"time"
)

func TestPermissions_Allows(t *testing.T) {
	p := Permissions{PermViewFinancials: true, PermManageAccess: false}
	if !p.Allows("") {
		t.Fatalf("empty key must always be allowed")
	}
	if !p.Allows(PermViewFinancials) {
		t.Fatalf("expected financials to be allowed")
	}
	if p.Allows(PermManageAccess) {
		t.Fatalf("false flag must not be allowed")
	}
	if p.Allows(PermManageCustomers) {
		t.Fatalf("missing flag must not be allowed")
	}

	var nilPerms Permissions
	if nilPerms.Has(PermViewFinancials) {
		t.Fatalf("nil permissions grant nothing")
	}
}

func TestPermissionKey_Valid(t *testing.T) {
	for _, k := range AllPermissions() {
		if !k.Valid() {
			t.Fatalf("%s should be valid", k)
		}
	}
	if PermissionKey("can_fly").Valid() {
		t.Fatalf("unknown key reported valid")
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Minute)}
	if s.Expired(now) {
		t.Fatalf("did not expect expiry")
	}
	if !s.Expired(now.Add(2 * time.Minute)) {
		t.Fatalf("expected expiry")
	}
	var nilSess *Session
	if !nilSess.Expired(now) {
		t.Fatalf("nil session is always expired")
	}
	if nilSess.Can("") {
		t.Fatalf("nil session can do nothing")
	}
}
