// Package strview implements StringView, a non-owning sub-range over some
// source string.
//
// Go strings already carry their own length and are immutable, so a view is
// naturally represented as the backing string plus a [Start, End) byte
// range rather than a raw pointer and length.
package strview

// StringView is a non-owning window over Data[Start:End].
type StringView struct {
	Data       string
	Start, End int
}

// FromString builds a StringView spanning the whole of s.
func FromString(s string) StringView {
	return StringView{Data: s, Start: 0, End: len(s)}
}

// String returns the view's contents as a string.
func (sv StringView) String() string {
	return sv.Data[sv.Start:sv.End]
}

// Len returns the number of bytes in the view.
func (sv StringView) Len() int {
	return sv.End - sv.Start
}

// Slice returns the sub-range [start, end) of sv, clamped to sv's bounds and
// swapped if given in reverse order.
func (sv StringView) Slice(start, end int) StringView {
	if end < start {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end > sv.Len() {
		end = sv.Len()
	}
	if start > sv.Len() {
		return StringView{Data: sv.Data, Start: sv.Start, End: sv.Start}
	}
	return StringView{Data: sv.Data, Start: sv.Start + start, End: sv.Start + end}
}

// Eq reports whether a and b contain the same bytes.
func Eq(a, b StringView) bool {
	return a.String() == b.String()
}

// HasPrefix reports whether sv begins with prefix.
func (sv StringView) HasPrefix(prefix StringView) bool {
	if sv.Len() < prefix.Len() {
		return false
	}
	return sv.Slice(0, prefix.Len()).String() == prefix.String()
}

// HasSuffix reports whether sv ends with suffix.
func (sv StringView) HasSuffix(suffix StringView) bool {
	if sv.Len() < suffix.Len() {
		return false
	}
	return sv.Slice(sv.Len()-suffix.Len(), sv.Len()).String() == suffix.String()
}

// Find returns the byte offset of the occurrence-th (0-based) match of
// needle within sv, or -1 if there is no such match.
func (sv StringView) Find(needle StringView, occurrence int) int {
	s := sv.String()
	n := needle.String()
	if len(s) < len(n) {
		return -1
	}
	j := 0
	found := 0
	for i := 0; i < len(s); i++ {
		if s[i] == n[j] {
			j++
			if j >= len(n) {
				if found == occurrence {
					return i - j + 1
				}
				found++
				j = 0
			}
		} else if j > 0 {
			j = 0
		}
	}
	return -1
}

// ToInt parses sv as a decimal integer with optional leading minus,
// stopping at the first non-digit byte.
func (sv StringView) ToInt() int64 {
	s := sv.String()
	negative := false
	if len(s) > 0 && s[0] == '-' {
		negative = true
		s = s[1:]
	}
	var result int64
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		result = result*10 + int64(s[i]-'0')
	}
	if negative {
		result = -result
	}
	return result
}
