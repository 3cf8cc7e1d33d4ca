package idgen

import (
	"crypto/rand"
	"encoding/hex"
)

const (
	PrefixBusiness = "biz"
	PrefixSession  = "sess"
	PrefixPayment  = "pay"

	randomBytes = 8
)

// Generator mints prefixed identifiers.
type Generator interface {
	New(prefix string) string
}

type Random struct{}

func NewRandom() Random { return Random{} }

func (Random) New(prefix string) string { return New(prefix) }

// New returns prefix + "_" + 16 hex chars read from crypto/rand.
// Uniqueness is not re-checked against any store.
func New(prefix string) string {
	b := make([]byte, randomBytes)
	if _, err := rand.Read(b); err != nil {
		panic("idgen: crypto/rand unavailable: " + err.Error())
	}
	return prefix + "_" + hex.EncodeToString(b)
}
