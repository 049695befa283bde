package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	userID := uuid.New()

	token, err := issuer.Issue(userID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != userID {
		t.Errorf("verified user = %s, want %s", got, userID)
	}
}

func TestTokenVerify_Rejections(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	valid, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", mustIssue(t, NewTokenIssuer("other-secret", time.Hour))},
		{"expired", mustIssue(t, NewTokenIssuer("test-secret", -time.Minute))},
		{"tampered", valid + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := issuer.Verify(tt.token); err == nil {
				t.Error("expected verification to fail")
			}
		})
	}
}

func mustIssue(t *testing.T, issuer *TokenIssuer) string {
	t.Helper()
	token, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestPasswordHashing(t *testing.T) {
	hash, err := hashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("password stored in plain text")
	}
	if !checkPassword(hash, "correct horse battery staple") {
		t.Error("correct password rejected")
	}
	if checkPassword(hash, "wrong password") {
		t.Error("wrong password accepted")
	}
}
