package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// Burner equalizes the cost of login failures for unknown identifiers.
// Its throwaway hash carries the same cost factor as real credential
// hashes, so comparing against it takes as long as a real mismatch.
type Burner struct {
	hash []byte
}

// NewBurner builds a burner whose comparisons run at the given cost.
func NewBurner(cost int) *Burner {
	hash, err := bcrypt.GenerateFromPassword([]byte("burner-password"), cost)
	if err != nil {
		hash, _ = bcrypt.GenerateFromPassword([]byte("burner-password"), bcrypt.DefaultCost)
	}
	return &Burner{hash: hash}
}

// Compare performs a throwaway comparison, discarding the result.
func (b *Burner) Compare(plain string) {
	_ = bcrypt.CompareHashAndPassword(b.hash, []byte(plain))
}
