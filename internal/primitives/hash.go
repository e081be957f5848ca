package primitives

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Key identifies a selection or an action. Keys are 16 lowercase hex digits of a 64-bit
// xxhash over a canonical encoding; collisions are not detected.
type Key string

// Domain tags keep a selection and an action with the same fields from sharing a key.
const (
	selectionDomain = "sel"
	actionDomain    = "act"
)

// HashSelection returns the canonical key of a selection. Dimensions are written in sorted
// order, so two maps equal as key/value sets always produce the same key.
func HashSelection(s Selection) Key {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := xxhash.New()
	writeField(d, selectionDomain)
	for _, k := range keys {
		writeField(d, k)
		writeField(d, s[k])
	}
	return formatKey(d.Sum64())
}

// HashAction returns the canonical key of an action.
func HashAction(a Action) Key {
	d := xxhash.New()
	writeField(d, actionDomain)
	writeField(d, a.Dimension)
	writeField(d, a.Value)
	return formatKey(d.Sum64())
}

// writeField writes a length-prefixed string so that ("ab","c") and ("a","bc") differ.
func writeField(d *xxhash.Digest, s string) {
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(s)))
	_, _ = d.Write(lenBuf[:n])
	_, _ = d.WriteString(s)
}

func formatKey(h uint64) Key {
	return Key(fmt.Sprintf("%016x", h))
}
