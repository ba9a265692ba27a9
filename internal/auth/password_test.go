package auth

import "testing"

func TestHashPassword_KnownDigest(t *testing.T) {
	// Hex SHA-256 of "password"; stored rows were written with exactly this
	// scheme, so the digest must never change.
	const want = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
	if got := HashPassword("password"); got != want {
		t.Fatalf("HashPassword(\"password\") = %s, want %s", got, want)
	}
}

func TestHashPassword_Deterministic(t *testing.T) {
	if HashPassword("pw1") != HashPassword("pw1") {
		t.Fatalf("same input hashed differently")
	}
	if HashPassword("pw1") == HashPassword("pw2") {
		t.Fatalf("different inputs produced the same digest")
	}
}

func TestVerifyPassword(t *testing.T) {
	stored := HashPassword("pw1")
	if !VerifyPassword("pw1", stored) {
		t.Fatalf("correct password rejected")
	}
	if VerifyPassword("pw2", stored) {
		t.Fatalf("wrong password accepted")
	}
	if VerifyPassword("", stored) {
		t.Fatalf("empty password accepted")
	}
}
