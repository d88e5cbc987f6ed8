package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals the plaintext password")
	}

	if !CheckPasswordHash("secret123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrongpass", hash) {
		t.Error("wrong password accepted")
	}
	if CheckPasswordHash("secret123", "not-a-bcrypt-hash") {
		t.Error("garbage hash accepted")
	}
}
