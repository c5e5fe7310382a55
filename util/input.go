package util

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"cunnycode/internal/errors"
)

// Source identifies where resolved input came from.
type Source int

const (
	SourceArgs Source = iota
	SourceFile
	SourceStdin
)

func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceStdin:
		return "stdin"
	default:
		return "args"
	}
}

// Input is the fully read text to transform.
type Input struct {
	Text   string
	Source Source
	Path   string // set for SourceFile
}

// Resolver picks the input in priority order: a file named by the first
// argument, the arguments themselves, then piped stdin. Zero-value fields
// fall back to the process defaults.
type Resolver struct {
	Stdin      io.Reader
	Open       func(name string) (io.ReadCloser, error)
	IsTerminal func(r io.Reader) bool
}

// Resolve reads the input for args. It returns errors.ErrNoInput when
// there are no args and stdin is an interactive terminal. Read failures
// and non-UTF-8 content on an opened file or stdin come back as
// *errors.InputError.
func (r *Resolver) Resolve(args []string) (Input, error) {
	if len(args) > 0 {
		f, err := r.open(args[0])
		if err != nil {
			return Input{Text: strings.Join(args, " "), Source: SourceArgs}, nil
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err == nil && !utf8.Valid(data) {
			err = errors.ErrInvalidUTF8
		}
		if err != nil {
			return Input{}, errors.WrapFile(args[0], err)
		}
		return Input{Text: string(data), Source: SourceFile, Path: args[0]}, nil
	}

	stdin := r.stdin()
	if r.isTerminal(stdin) {
		return Input{}, errors.ErrNoInput
	}
	data, err := io.ReadAll(stdin)
	if err == nil && !utf8.Valid(data) {
		err = errors.ErrInvalidUTF8
	}
	if err != nil {
		return Input{}, errors.WrapStdin(err)
	}
	return Input{Text: string(data), Source: SourceStdin}, nil
}

func (r *Resolver) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r *Resolver) open(name string) (io.ReadCloser, error) {
	if r.Open != nil {
		return r.Open(name)
	}
	return os.Open(name)
}

func (r *Resolver) isTerminal(in io.Reader) bool {
	if r.IsTerminal != nil {
		return r.IsTerminal(in)
	}
	return IsTerminal(in)
}

// IsTerminal reports whether in is an interactive terminal. Readers
// without a file descriptor are never terminals.
func IsTerminal(in io.Reader) bool {
	f, ok := in.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}
