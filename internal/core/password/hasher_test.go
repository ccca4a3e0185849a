package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("senha123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "senha123" || strings.Contains(hash, "senha123") {
		t.Fatalf("plaintext leaked into hash: %s", hash)
	}

	if !h.Verify("senha123", hash) {
		t.Fatalf("expected correct password to verify")
	}
	if h.Verify("senha124", hash) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("first hash failed: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("second hash failed: %v", err)
	}

	if first == second {
		t.Fatalf("expected fresh salt per hash, got identical outputs")
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatalf("both hashes must verify the original password")
	}
}

func TestHasher_VerifyGarbageHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("expected garbage hash to fail verification, not panic or pass")
	}
	if h.Verify("anything", "") {
		t.Fatalf("expected empty hash to fail verification")
	}
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	h := NewHasher(99)

	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash with clamped cost failed: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost extraction failed: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost, got %d", cost)
	}
}
