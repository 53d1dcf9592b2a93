package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if !CheckPassword("s3cret", hash) {
		t.Fatalf("correct password must verify")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestHashPassword_SaltsEveryCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !CheckPassword("same-password", h1) || !CheckPassword("same-password", h2) {
		t.Fatalf("both hashes must verify the original password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if CheckPassword("anything", bad) {
			t.Fatalf("malformed hash %q must not verify", bad)
		}
	}
}
