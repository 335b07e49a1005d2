// Package symbolid defines the 20-byte symbol identifier shared by every
// record in the corpus, and the deterministic derivation used for synthetic
// entities (overload sets, inherited member copies).
package symbolid

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
)

// Size is the width of a SymbolID in bytes. It matches the digest size of
// SHA-1, which both the extractor (USR hashing, external) and this package
// (synthetic-id derivation) use to produce identifiers.
const Size = 20

// ID is a 20-byte symbol identifier. It is comparable and usable as a map
// key, and totally ordered via Compare.
type ID [Size]byte

// Invalid is the sentinel identifier for "no symbol" (e.g. a reference that
// failed to resolve).
var Invalid ID

// Global is the distinguished identifier denoting the translation-unit root
// namespace, against which fully qualified lookups terminate.
var Global = ID{0x01}

// IsValid reports whether id is not the Invalid sentinel.
func (id ID) IsValid() bool {
	return id != Invalid
}

// IsGlobal reports whether id denotes the translation-unit root.
func (id ID) IsGlobal() bool {
	return id == Global
}

// String renders id as lowercase hex.
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// Compare returns -1, 0, or 1 comparing id to other, giving SymbolID a total
// order so ids can be sorted for deterministic iteration.
func (id ID) Compare(other ID) int {
	for i := range id {
		if id[i] != other[i] {
			if id[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// FromHex parses a hex-encoded SymbolID, as produced by String.
func FromHex(s string) (ID, error) {
	var id ID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, err
	}
	if len(b) != Size {
		return id, &lengthError{got: len(b)}
	}
	copy(id[:], b)
	return id, nil
}

type lengthError struct{ got int }

func (e *lengthError) Error() string {
	return "symbolid: hex-decoded length must be 20 bytes, got " + strconv.Itoa(e.got)
}

// Derive computes the deterministic id for a synthetic entity from its
// parent's id and the id of the source member it was derived from:
// hash(parent-id || source-id). The same scheme produces overload-set ids
// and rehomed inherited-member copies, so re-running the finalizer against
// an unchanged corpus reassigns the same synthetic ids.
func Derive(parent, source ID) ID {
	h := sha1.New()
	h.Write(parent[:])
	h.Write(source[:])
	sum := h.Sum(nil)
	var id ID
	copy(id[:], sum)
	return id
}
