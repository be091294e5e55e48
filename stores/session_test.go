package stores

import (
	"context"
	"testing"
	"time"

	"pharmacy-shop/models"
)

func TestSessionStore_SignInThenActive(t *testing.T) {
	s := NewSessionStore(nil)
	ctx := context.Background()

	if err := s.SignIn(ctx, 1, "token-a", time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Active(ctx, "token-a") {
		t.Error("expected token active after sign in")
	}
}

func TestSessionStore_UnknownTokenInactive(t *testing.T) {
	s := NewSessionStore(nil)

	if s.Active(context.Background(), "never-issued") {
		t.Error("expected unknown token to be inactive")
	}
}

func TestSessionStore_SignOutRevokes(t *testing.T) {
	s := NewSessionStore(nil)
	ctx := context.Background()

	s.SignIn(ctx, 1, "token-a", time.Hour)
	if err := s.SignOut(ctx, "token-a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Active(ctx, "token-a") {
		t.Error("expected token inactive after sign out")
	}
}

func TestSessionStore_SignOutIdempotent(t *testing.T) {
	s := NewSessionStore(nil)
	ctx := context.Background()

	if err := s.SignOut(ctx, "never-issued"); err != nil {
		t.Errorf("expected sign out of unknown token to be a no-op, got %v", err)
	}
}

func TestSessionStore_ExpiredTokenInactive(t *testing.T) {
	s := NewSessionStore(nil)
	ctx := context.Background()

	s.SignIn(ctx, 1, "token-a", -time.Minute)

	if s.Active(ctx, "token-a") {
		t.Error("expected expired token to be inactive")
	}
}

func TestSessionStore_CyclesBetweenStates(t *testing.T) {
	s := NewSessionStore(nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		s.SignIn(ctx, 1, "token-a", time.Hour)
		if !s.Active(ctx, "token-a") {
			t.Fatalf("cycle %d: expected active after sign in", i)
		}
		s.SignOut(ctx, "token-a")
		if s.Active(ctx, "token-a") {
			t.Fatalf("cycle %d: expected inactive after sign out", i)
		}
	}
}

func TestSession_AuthenticatedMatchesUserPresence(t *testing.T) {
	anon := models.Anonymous()
	if anon.Authenticated() {
		t.Error("anonymous session must not be authenticated")
	}
	if _, ok := anon.Role(); ok {
		t.Error("anonymous session must not carry a role")
	}

	auth := models.AuthenticatedSession(&models.User{ID: 1, Role: models.RoleBranch}, "tok")
	if !auth.Authenticated() {
		t.Error("session with user must be authenticated")
	}
	role, ok := auth.Role()
	if !ok || role != models.RoleBranch {
		t.Errorf("expected branch role, got %v", role)
	}
}
