// Package input provides the code point streams the scanner reads from.
//
// A Source yields Unicode code points one at a time. Ill-formed input is
// never dropped: it is reported as BadChar so the scanner can raise a
// syntax error at the right line.
package input

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// BadChar stands in for ill-formed input such as an unpaired surrogate or
// an invalid UTF-8 byte. It is a private-use code point that never reaches
// a token: the scanner rejects it as "malformed unicode input".
const BadChar rune = 0x100000

// Source is a pull-based stream of code points. ReadRune returns io.EOF at
// the end of the stream.
type Source interface {
	io.RuneReader
	io.Closer

	// Name describes where the text came from, e.g. a file name.
	Name() string
	// FirstLine is the line number of the first character.
	FirstLine() int
}

// Option configures a Source.
type Option func(*meta)

// WithName sets the name reported in error locations.
func WithName(name string) Option {
	return func(m *meta) { m.name = name }
}

// WithFirstLine sets the number of the first line of the source.
func WithFirstLine(line int) Option {
	return func(m *meta) { m.line = line }
}

type meta struct {
	name string
	line int
}

func newMeta(name string, opts []Option) meta {
	m := meta{name: name, line: 1}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m *meta) Name() string   { return m.name }
func (m *meta) FirstLine() int { return m.line }

// NewString returns a source over a UTF-8 Go string.
func NewString(s string, opts ...Option) Source {
	return &runeSource{meta: newMeta("<string>", opts), r: strings.NewReader(s)}
}

// NewReader returns a source over a byte stream. A byte-order mark selects
// UTF-16LE, UTF-16BE or UTF-8; without one the bytes are read as UTF-8.
func NewReader(r io.Reader, opts ...Option) Source {
	dec := transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	src := &runeSource{meta: newMeta("<stdin>", opts), r: bufio.NewReader(dec)}
	if c, ok := r.(io.Closer); ok {
		src.c = c
	}
	return src
}

// Open returns a source reading the named file.
func Open(path string, opts ...Option) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewReader(f, append([]Option{WithName(path)}, opts...)...), nil
}

type runeSource struct {
	meta
	r io.RuneReader
	c io.Closer
}

func (s *runeSource) ReadRune() (rune, int, error) {
	r, size, err := s.r.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	if r == utf8.RuneError && size == 1 {
		return BadChar, size, nil
	}
	return r, size, nil
}

func (s *runeSource) Close() error {
	if s.c == nil {
		return nil
	}
	return s.c.Close()
}

// NewUTF16 returns a source over UTF-16 code units. Surrogate pairs are
// joined into one code point; an unpaired surrogate yields BadChar.
func NewUTF16(units []uint16, opts ...Option) Source {
	return &utf16Source{meta: newMeta("<string>", opts), units: units}
}

type utf16Source struct {
	meta
	units []uint16
	pos   int
}

func (s *utf16Source) ReadRune() (rune, int, error) {
	if s.pos >= len(s.units) {
		return 0, 0, io.EOF
	}
	c := rune(s.units[s.pos])
	s.pos++
	switch {
	case c >= 0xdc00 && c <= 0xdfff:
		return BadChar, 1, nil
	case c >= 0xd800 && c <= 0xdbff:
		if s.pos >= len(s.units) {
			return BadChar, 1, nil
		}
		c2 := rune(s.units[s.pos])
		if c2 < 0xdc00 || c2 > 0xdfff {
			return BadChar, 1, nil
		}
		s.pos++
		return utf16.DecodeRune(c, c2), 2, nil
	}
	return c, 1, nil
}

func (s *utf16Source) Close() error { return nil }
