// Package core: textual formatting, parsing and hashing of value types.
//
// Formatting uses the shortest round-trippable float representation
// (strconv 'g', precision -1), so Parse(String(v)) == v for all finite
// values. Hashing folds the IEEE-754 bit patterns through hash/maphash with
// a process-wide seed: equal values hash equal within a process, and +0/−0
// are normalized so numerically equal vectors collide as expected.

package core

import (
	"hash/maphash"
	"math"
	"strconv"
	"strings"
)

// hashSeed is the process-wide seed shared by all Hash64 calls, so hashes
// are comparable across values within one process.
var hashSeed = maphash.MakeSeed()

// formatComponent renders one float in shortest round-trippable form.
func formatComponent(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String renders v as "(x, y)".
func (v Vec2) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(formatComponent(v.X))
	b.WriteString(", ")
	b.WriteString(formatComponent(v.Y))
	b.WriteByte(')')

	return b.String()
}

// String renders v as "(x, y, z)".
func (v Vec3) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(formatComponent(v.X))
	b.WriteString(", ")
	b.WriteString(formatComponent(v.Y))
	b.WriteString(", ")
	b.WriteString(formatComponent(v.Z))
	b.WriteByte(')')

	return b.String()
}

// String renders m row by row: "[(a, b), (c, d)]".
func (m Mat2) String() string {
	return "[" + Vec2{m.M00, m.M01}.String() + ", " + Vec2{m.M10, m.M11}.String() + "]"
}

// String renders m row by row.
func (m Mat3) String() string {
	return "[" + m.Row(0).String() + ", " + m.Row(1).String() + ", " + m.Row(2).String() + "]"
}

// String renders q as its angle in radians, e.g. "rot(1.5707963267948966)".
func (q Rot2) String() string {
	return "rot(" + formatComponent(q.Angle()) + ")"
}

// parseComponents splits "(a, b, ...)" (parentheses optional) into exactly
// want floats. Returns ErrParse on any malformed input.
func parseComponents(s string, want int) ([]float64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	parts := strings.Split(s, ",")
	if len(parts) != want {
		return nil, ErrParse
	}
	out := make([]float64, want)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, ErrParse
		}
		out[i] = f
	}

	return out, nil
}

// ParseVec2 parses "(x, y)" or "x, y" into a Vec2.
//
// Errors:
//   - ErrParse on malformed input (wrong arity, non-numeric component).
func ParseVec2(s string) (Vec2, error) {
	c, err := parseComponents(s, 2)
	if err != nil {
		return Vec2{}, err
	}

	return Vec2{c[0], c[1]}, nil
}

// ParseVec3 parses "(x, y, z)" or "x, y, z" into a Vec3.
//
// Errors:
//   - ErrParse on malformed input.
func ParseVec3(s string) (Vec3, error) {
	c, err := parseComponents(s, 3)
	if err != nil {
		return Vec3{}, err
	}

	return Vec3{c[0], c[1], c[2]}, nil
}

// normalizeBits returns the IEEE-754 bits of f with -0 folded into +0, so
// that numerically equal values hash identically.
func normalizeBits(f float64) uint64 {
	if f == 0 {
		return 0
	}

	return math.Float64bits(f)
}

// writeBits appends the 8 bytes of bits to h in little-endian order.
func writeBits(h *maphash.Hash, bits uint64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(bits >> (8 * i))
	}
	_, _ = h.Write(buf[:])
}

// Hash64 returns a 64-bit hash of v, stable within a process.
func (v Vec2) Hash64() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	writeBits(&h, normalizeBits(v.X))
	writeBits(&h, normalizeBits(v.Y))

	return h.Sum64()
}

// Hash64 returns a 64-bit hash of v, stable within a process.
func (v Vec3) Hash64() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	writeBits(&h, normalizeBits(v.X))
	writeBits(&h, normalizeBits(v.Y))
	writeBits(&h, normalizeBits(v.Z))

	return h.Sum64()
}
