// Package codec implements the Cunny Code transcoder: a fixed bijective
// table between printable ASCII and two-glyph symbolic codes, plus the
// encode, decode and direction-detection operations built on it.
package codec

import (
	"strings"
	"sync"
)

// Glyphs making up the symbolic alphabet.
const (
	Dot   = '😭'
	Dash  = '💢'
	Caret = '^'
)

// Entry pairs a source character with its symbolic code.
type Entry struct {
	Char    rune
	Pattern string // dot/dash notation, e.g. ".-"
	Code    string // Pattern rendered with Dot and Dash
}

// alphabet is the literal source of truth for both lookup directions.
// Order is preserved by Table.Entries.
var alphabet = [...]struct {
	char    rune
	pattern string
}{
	{'A', ".-"},
	{'B', "-..."},
	{'C', "-.-."},
	{'D', "-.."},
	{'E', "."},
	{'F', "..-."},
	{'G', "--."},
	{'H', "...."},
	{'I', ".."},
	{'J', ".---"},
	{'K', "-.-"},
	{'L', ".-.."},
	{'M', "--"},
	{'N', "-."},
	{'O', "---"},
	{'P', ".--."},
	{'Q', "--.-"},
	{'R', ".-."},
	{'S', "..."},
	{'T', "-"},
	{'U', "..-"},
	{'V', "...-"},
	{'W', ".--"},
	{'X', "-..-"},
	{'Y', "-.--"},
	{'Z', "--.."},
	{'0', "-----"},
	{'1', ".----"},
	{'2', "..---"},
	{'3', "...--"},
	{'4', "....-"},
	{'5', "....."},
	{'6', "-...."},
	{'7', "--..."},
	{'8', "---.."},
	{'9', "----."},
	{'.', ".-.-.-"},
	{',', "--..--"},
	{'!', "-.-.--"},
	{'?', "..--.."},
	{'\'', ".----."},
	{'"', ".-..-."},
	{'/', "-..-."},
	{'(', "-.--."},
	{')', "-.--.-"},
	{':', "---..."},
	{';', "-.-.-."},
	{'=', "-...-"},
	{'+', ".-.-."},
	{'-', "-....-"},
	{'_', "..--.-"},
	{'@', ".--.-."},
	{'`', "..----"},
	{'~', "...---"},
	{'\\', "-..--"},
	{'|', "---.-"},
	{'#', "...-.-"},
	{'$', "...-..-"},
	{'%', "-..-.-"},
	{'^', "---.---"},
	{'*', ".-.--"},
	{'{', "---.-."},
	{'}', "---..-"},
	{'[', "-..-.."},
	{']', "-..--."},
	{'<', "....--"},
	{'>', "--...."},
}

var glyphs = strings.NewReplacer(".", string(Dot), "-", string(Dash))

// Table holds the encode and decode mappings. It is immutable after
// construction and safe to share between goroutines.
type Table struct {
	entries []Entry
	encode  map[rune]string
	decode  map[string]rune
}

// NewTable builds both lookup directions from the fixed alphabet.
func NewTable() *Table {
	t := &Table{
		entries: make([]Entry, 0, len(alphabet)),
		encode:  make(map[rune]string, len(alphabet)),
		decode:  make(map[string]rune, len(alphabet)),
	}
	for _, a := range alphabet {
		e := Entry{Char: a.char, Pattern: a.pattern, Code: glyphs.Replace(a.pattern)}
		t.entries = append(t.entries, e)
		t.encode[e.Char] = e.Code
		t.decode[e.Code] = e.Char
	}
	return t
}

// Default returns the process-wide table, built on first use.
var Default = sync.OnceValue(NewTable)

// Lookup returns the code for an (uppercase) source character.
func (t *Table) Lookup(r rune) (string, bool) {
	code, ok := t.encode[r]
	return code, ok
}

// Reverse returns the source character for a code.
func (t *Table) Reverse(code string) (rune, bool) {
	r, ok := t.decode[code]
	return r, ok
}

// Len reports the number of characters in the alphabet.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the alphabet in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
