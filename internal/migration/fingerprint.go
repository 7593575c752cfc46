package migration

import (
	"encoding/hex"
	"hash/fnv"
)

// Fingerprint computes a deterministic, non-cryptographic 64-bit hash
// over (up, down), hashed in that order. Presence/absence is hashed
// explicitly before each field's bytes so that a nil field and a
// present-but-empty field never collide — this is the property
// spec.md requires of the fingerprint, independent of which hash
// function is chosen; see DESIGN.md for why FNV-1a was picked over
// trying to replicate an unspecified legacy hasher.
func Fingerprint(up, down *string) string {
	h := fnv.New64a()
	writeOptional(h, up)
	writeOptional(h, down)
	return hex.EncodeToString(h.Sum(nil))
}

func writeOptional(h interface{ Write([]byte) (int, error) }, s *string) {
	if s == nil {
		h.Write([]byte{0})
		return
	}
	h.Write([]byte{1})
	h.Write([]byte(*s))
}
