package codec

import (
	"strings"
	"unicode"
)

// Diagnostic prefixes reported when input cannot be fully mapped.
const (
	EncodeErrorPrefix = "Error: The following could not be encoded: "
	DecodeErrorPrefix = "Error: The following could not be decoded: "
)

// Result is the outcome of a single transform. Unmapped items never abort
// the operation; they are collected in encounter order for the caller to
// report.
type Result struct {
	Direction Direction
	Output    string
	Mapped    int      // characters (encode) or tokens (decode) translated
	Unmapped  []string // runes (encode) or raw tokens (decode) skipped
}

// Diagnostic returns the aggregated warning line, or "" when every
// character or token was mapped.
func (r Result) Diagnostic() string {
	if len(r.Unmapped) == 0 {
		return ""
	}
	if r.Direction == Decode {
		return DecodeErrorPrefix + strings.Join(r.Unmapped, " ")
	}
	return EncodeErrorPrefix + strings.Join(r.Unmapped, "")
}

// Transcoder converts text to and from Cunny Code.
type Transcoder struct {
	table *Table
}

// New returns a Transcoder backed by the shared default table.
func New() *Transcoder {
	return &Transcoder{table: Default()}
}

// NewWithTable returns a Transcoder backed by t.
func NewWithTable(t *Table) *Transcoder {
	return &Transcoder{table: t}
}

// Table exposes the alphabet the transcoder uses.
func (tc *Transcoder) Table() *Table { return tc.table }

// Transform detects the direction of input and applies it.
func (tc *Transcoder) Transform(input string) Result {
	if Detect(input) == Decode {
		return tc.Decode(input)
	}
	return tc.Encode(input)
}

// Encode renders input as space-separated symbolic codes. Newlines are
// kept, other whitespace collapses to one space per rune, and uppercase
// letters are prefixed with Caret.
func (tc *Transcoder) Encode(input string) Result {
	res := Result{Direction: Encode}

	var b strings.Builder
	b.Grow(len(input) * 5)

	for _, r := range input {
		switch {
		case r == '\n':
			b.WriteByte('\n')
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		default:
			code, ok := tc.table.Lookup(toUpperASCII(r))
			if !ok {
				res.Unmapped = append(res.Unmapped, string(r))
				continue
			}
			if isUpperASCII(r) {
				b.WriteRune(Caret)
			}
			b.WriteString(code)
			b.WriteByte(' ')
			res.Mapped++
		}
	}

	res.Output = trimRight(b.String())
	return res
}

// Decode translates space-separated symbolic codes back to text. Each
// empty token between separators becomes a literal space, so runs of
// spaces are kept rather than collapsed.
func (tc *Transcoder) Decode(input string) Result {
	res := Result{Direction: Decode}

	var b strings.Builder
	b.Grow(len(input))

	for _, line := range strings.Split(input, "\n") {
		for _, tok := range strings.Split(line, " ") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				b.WriteByte(' ')
				continue
			}

			code, upper := strings.CutPrefix(tok, string(Caret))
			r, ok := tc.table.Reverse(code)
			if !ok {
				res.Unmapped = append(res.Unmapped, tok)
				continue
			}
			if upper {
				b.WriteRune(toUpperASCII(r))
			} else {
				b.WriteRune(toLowerASCII(r))
			}
			res.Mapped++
		}
		b.WriteByte('\n')
	}

	res.Output = trimRight(b.String())
	return res
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func isUpperASCII(r rune) bool { return r >= 'A' && r <= 'Z' }

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLowerASCII(r rune) rune {
	if isUpperASCII(r) {
		return r + ('a' - 'A')
	}
	return r
}
