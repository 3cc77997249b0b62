// Package password isolates credential hashing so the algorithm can be
// swapped without touching the services layer.
package password

import "golang.org/x/crypto/bcrypt"

type Hasher struct{ Cost int }

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{Cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches digest. A malformed digest is treated
// as a mismatch, never an error.
func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
