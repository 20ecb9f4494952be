package expr

import "hash/fnv"

// Identifier is a unique-identifier for a variable: either name-backed or
// integer-backed, per spec.md §3's "string-backed or integer-backed" clause.
// Equality and hashing are content-based.
type Identifier interface {
	Equal(Identifier) bool
	Hash() uint64
	String() string
}

// StringIdent is a name-backed identifier.
type StringIdent string

func (s StringIdent) Equal(o Identifier) bool {
	other, ok := o.(StringIdent)
	return ok && s == other
}

func (s StringIdent) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("s:"))
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

func (s StringIdent) String() string { return string(s) }

// IntIdent is an opaque integer-backed identifier.
type IntIdent uint64

func (i IntIdent) Equal(o Identifier) bool {
	other, ok := o.(IntIdent)
	return ok && i == other
}

func (i IntIdent) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("i:"))
	var buf [8]byte
	for k := 0; k < 8; k++ {
		buf[k] = byte(i >> (8 * k))
	}
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

func (i IntIdent) String() string {
	const hex = "0123456789abcdef"
	if i == 0 {
		return "#0"
	}
	var buf [20]byte
	pos := len(buf)
	v := uint64(i)
	for v > 0 {
		pos--
		buf[pos] = hex[v&0xF]
		v >>= 4
	}
	return "#" + string(buf[pos:])
}
