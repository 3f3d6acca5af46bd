package auth

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestIssueParse(t *testing.T) {
	t.Run("round trip keeps subject and role", func(t *testing.T) {
		tok, err := Issue(secret, "admin-1", RoleAdmin, time.Hour)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		p, err := Parse(secret, tok)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if p.UserID != "admin-1" || !p.IsAdmin() {
			t.Fatalf("got %+v", p)
		}
	})

	t.Run("wrong secret -> ErrInvalidToken", func(t *testing.T) {
		tok, _ := Issue(secret, "u1", RoleCustomer, time.Hour)
		if _, err := Parse([]byte("other"), tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired -> ErrInvalidToken", func(t *testing.T) {
		tok, _ := Issue(secret, "u1", RoleCustomer, -time.Minute)
		if _, err := Parse(secret, tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("unknown role -> customer", func(t *testing.T) {
		tok, _ := Issue(secret, "u1", Role("root"), time.Hour)
		p, err := Parse(secret, tok)
		if err != nil || p.Role != RoleCustomer {
			t.Fatalf("got %+v, %v", p, err)
		}
	})
}

func TestFromRequest(t *testing.T) {
	t.Run("no header -> ErrMissingToken", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		if _, err := FromRequest(secret, r); !errors.Is(err, ErrMissingToken) {
			t.Fatalf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("bearer -> principal", func(t *testing.T) {
		tok, _ := Issue(secret, "u1", RoleCustomer, time.Hour)
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer "+tok)
		p, err := FromRequest(secret, r)
		if err != nil || p.UserID != "u1" {
			t.Fatalf("got %+v, %v", p, err)
		}
		ctx := WithPrincipal(context.Background(), p)
		if got, ok := PrincipalFrom(ctx); !ok || got != p {
			t.Fatalf("context round trip: %+v %v", got, ok)
		}
	})
}
