// Package id generates opaque identifiers used outside the layout
// core: synthetic view/output handles for the scenario harness and
// tests. The core itself never generates handles — they originate from
// the windowing system — but something has to produce them when the
// windowing system is a fake.
package id

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewToken returns a 21-character nanoid using an alphanumeric alphabet.
func NewToken() string {
	tok, err := gonanoid.Generate("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", 21)
	if err != nil {
		panic(fmt.Sprintf("generate nanoid: %v", err))
	}
	return tok
}

// NewHandle returns a synthetic 64-bit opaque handle, suitable for
// standing in for a view or output handle in tests and the scenario
// harness. Two calls never collide in practice (nanoid has 62^21
// possible tokens; collisions are folded into a 64-bit hash, so the
// practical guarantee is "overwhelmingly unlikely", not "impossible").
func NewHandle() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(NewToken()))
	return binary.BigEndian.Uint64(h.Sum(nil))
}
