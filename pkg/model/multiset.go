package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TileMultiset maps each tile color to a non-negative count. A color absent
// from the map is equivalent to a zero count; this implementation never
// stores zero counts so the two representations never diverge internally.
type TileMultiset map[TileColor]int

// NewTileMultiset returns an empty multiset.
func NewTileMultiset() TileMultiset {
	return TileMultiset{}
}

// Count returns the count for color, or 0 if absent.
func (m TileMultiset) Count(color TileColor) int {
	return m[color]
}

// Add increases the count for color by n (n may be negative). A count that
// reaches zero is deleted so Total and MarshalJSON never see stale zero
// entries.
func (m TileMultiset) Add(color TileColor, n int) {
	m[color] += n
	if m[color] <= 0 {
		delete(m, color)
	}
}

// Total returns the sum of all counts.
func (m TileMultiset) Total() int {
	total := 0
	for _, c := range Colors {
		total += m[c]
	}
	return total
}

// Clone returns an independent copy.
func (m TileMultiset) Clone() TileMultiset {
	out := make(TileMultiset, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MarshalJSON renders the multiset as an object keyed by color name in
// canonical order, omitting zero counts.
func (m TileMultiset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, c := range Colors {
		n, ok := m[c]
		if !ok || n == 0 {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&buf, "%q:%d", string(c), n)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts an object keyed by color name to non-negative
// count. Zero counts are accepted on input and simply not stored.
func (m *TileMultiset) UnmarshalJSON(data []byte) error {
	raw := map[string]int{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("model: invalid tile multiset: %w", err)
	}
	out := TileMultiset{}
	for k, v := range raw {
		color := TileColor(k)
		if !color.IsValid() {
			return fmt.Errorf("model: invalid tile color %q", k)
		}
		if v < 0 {
			return fmt.Errorf("model: negative tile count for %q: %d", k, v)
		}
		if v > 0 {
			out[color] = v
		}
	}
	*m = out
	return nil
}
