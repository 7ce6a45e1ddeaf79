package auth

import (
	"errors"
	"testing"
	"time"

	"fittrack/internal/domain"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)

	token, err := sessions.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := sessions.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Errorf("got user id %d, want 42", userID)
	}
}

func TestVerifyEmptyToken(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)
	if _, err := sessions.Verify(""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("got %v, want ErrUnauthenticated", err)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)
	token, err := sessions.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := sessions.Verify(tampered); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("got %v, want ErrUnauthenticated", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewSessions("secret-a", time.Hour).Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewSessions("secret-b", time.Hour).Verify(token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("got %v, want ErrUnauthenticated", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	sessions := NewSessions("test-secret", time.Millisecond)
	token, err := sessions.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := sessions.Verify(token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("got %v, want ErrUnauthenticated", err)
	}
}

func TestZeroTTLDefaults(t *testing.T) {
	sessions := NewSessions("test-secret", 0)
	if sessions.TTL() != 72*time.Hour {
		t.Errorf("got ttl %v, want 72h", sessions.TTL())
	}
}
