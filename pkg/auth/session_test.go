package auth

import (
	"strings"
	"testing"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	secret := SessionSecretBytes("test-secret")

	token := CreateSessionToken("user-123", secret)
	userID, err := VerifySessionToken(token, secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected user-123, got %q", userID)
	}
}

func TestSessionToken_TamperedSignatureRejected(t *testing.T) {
	secret := SessionSecretBytes("test-secret")

	token := CreateSessionToken("user-123", secret)
	tampered := token[:len(token)-1] + "0"
	if tampered == token {
		tampered = token[:len(token)-1] + "1"
	}

	if _, err := VerifySessionToken(tampered, secret); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestSessionToken_WrongSecretRejected(t *testing.T) {
	token := CreateSessionToken("user-123", SessionSecretBytes("secret-a"))
	if _, err := VerifySessionToken(token, SessionSecretBytes("secret-b")); err == nil {
		t.Error("expected token signed with a different secret to be rejected")
	}
}

func TestSessionToken_MalformedRejected(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	for _, token := range []string{"", "no-dot", "!!.deadbeef"} {
		if _, err := VerifySessionToken(token, secret); err == nil {
			t.Errorf("expected %q to be rejected", token)
		}
	}
}

func TestSessionSecretBytes_PadsShortSecrets(t *testing.T) {
	b := SessionSecretBytes("short")
	if len(b) != 32 {
		t.Errorf("expected 32 bytes, got %d", len(b))
	}
	if !strings.HasPrefix(string(b), "short") {
		t.Errorf("expected padded secret to keep its prefix")
	}
}
