package utils

import (
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("Expected matching password to verify")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("Did not expect wrong password to verify")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("65f000000000000000000001", "alice", "editor", "test-secret", 60)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.Subject != "65f000000000000000000001" {
		t.Errorf("Expected subject to carry the account id, got %q", claims.Subject)
	}
	if claims.UserID != "alice" {
		t.Errorf("Expected userId alice, got %q", claims.UserID)
	}
	if claims.Role != "editor" {
		t.Errorf("Expected role editor, got %q", claims.Role)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("id", "alice", "admin", "secret-a", 60)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ParseToken(token, "secret-b"); err == nil {
		t.Error("Expected token signed with a different secret to be rejected")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("id", "alice", "admin", "test-secret", -1)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ParseToken(token, "test-secret"); err != ErrTokenExpired {
		t.Errorf("Expected ErrTokenExpired, got %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("Bearer abc.def.ghi")
	if !ok || token != "abc.def.ghi" {
		t.Errorf("Expected token abc.def.ghi, got %q (ok=%v)", token, ok)
	}

	if _, ok := BearerToken("abc.def.ghi"); ok {
		t.Error("Expected missing Bearer prefix to be rejected")
	}
	if _, ok := BearerToken("Basic abc"); ok {
		t.Error("Expected non-Bearer scheme to be rejected")
	}
	if _, ok := BearerToken(""); ok {
		t.Error("Expected empty header to be rejected")
	}
}
