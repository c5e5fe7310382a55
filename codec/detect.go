package codec

import "unicode/utf8"

// Direction selects which way a transform runs.
type Direction int

const (
	Encode Direction = iota
	Decode
)

func (d Direction) String() string {
	if d == Decode {
		return "decode"
	}
	return "encode"
}

// Detect chooses Decode when input opens with a glyph, or with Caret
// followed by a glyph. Everything else encodes.
func Detect(input string) Direction {
	switch runeAt(input, 0) {
	case Dot, Dash:
		return Decode
	case Caret:
		if isGlyph(runeAt(input, 1)) {
			return Decode
		}
	}
	return Encode
}

func isGlyph(r rune) bool { return r == Dot || r == Dash }

// runeAt returns the i-th rune of s, or utf8.RuneError past the end.
func runeAt(s string, i int) rune {
	for ; i > 0; i-- {
		_, size := utf8.DecodeRuneInString(s)
		if size == 0 {
			return utf8.RuneError
		}
		s = s[size:]
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
