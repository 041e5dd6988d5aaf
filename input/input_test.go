package input_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/t14raptor/es3/input"
)

func drain(t *testing.T, src input.Source) []rune {
	t.Helper()
	var out []rune
	for {
		r, _, err := src.ReadRune()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadRune: %v", err)
		}
		out = append(out, r)
	}
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestUTF16Source(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  []rune
	}{
		{"ascii", []uint16{'a', 'b'}, []rune{'a', 'b'}},
		{"pair", []uint16{0xd83d, 0xde00}, []rune{0x1f600}},
		{"lone high", []uint16{0xd83d, 'x'}, []rune{input.BadChar, 'x'}},
		{"high at end", []uint16{'x', 0xd83d}, []rune{'x', input.BadChar}},
		{"lone low", []uint16{0xde00}, []rune{input.BadChar}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drain(t, input.NewUTF16(tt.units))
			if !equalRunes(got, tt.want) {
				t.Errorf("got %U, want %U", got, tt.want)
			}
		})
	}
}

func TestStringSourceBadByte(t *testing.T) {
	got := drain(t, input.NewString("a\xffb"))
	want := []rune{'a', input.BadChar, 'b'}
	if !equalRunes(got, want) {
		t.Errorf("got %U, want %U", got, want)
	}
}

func TestReaderByteOrderMark(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"plain", []byte("hi"), "hi"},
		{"utf8 bom", []byte("\xef\xbb\xbfhi"), "hi"},
		{"utf16le bom", []byte{0xff, 0xfe, 'h', 0, 'i', 0}, "hi"},
		{"utf16be bom", []byte{0xfe, 0xff, 0, 'h', 0, 'i'}, "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(drain(t, input.NewReader(bytes.NewReader(tt.data))))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSourceOptions(t *testing.T) {
	src := input.NewString("", input.WithName("x.js"), input.WithFirstLine(7))
	if src.Name() != "x.js" || src.FirstLine() != 7 {
		t.Errorf("got %q:%d, want x.js:7", src.Name(), src.FirstLine())
	}
	if def := input.NewString(""); def.FirstLine() != 1 {
		t.Errorf("default first line = %d, want 1", def.FirstLine())
	}
}

func TestLookahead(t *testing.T) {
	la := input.NewLookahead(input.NewString("abc"), 4)
	buf := make([]rune, 8)
	if n := la.CopyLookahead(buf); n != 3 || string(buf[:n]) != "abc" {
		t.Fatalf("CopyLookahead = %d %q, want 3 \"abc\"", n, string(buf[:n]))
	}
	if la.Current() != 'a' {
		t.Fatalf("Current = %q, want 'a'", la.Current())
	}
	if got := la.Next(); got != 'a' {
		t.Fatalf("Next = %q, want 'a'", got)
	}
	small := make([]rune, 1)
	if n := la.CopyLookahead(small); n != 1 || small[0] != 'b' {
		t.Fatalf("CopyLookahead(1) = %d %q", n, small[0])
	}
	la.Next()
	la.Next()
	if !la.EOF() {
		t.Fatal("expected EOF after three characters")
	}
	if n := la.CopyLookahead(buf); n != 0 {
		t.Errorf("CopyLookahead at EOF = %d, want 0", n)
	}
	if la.Err() != nil {
		t.Errorf("Err = %v, want nil", la.Err())
	}
}

func TestLookaheadLongInput(t *testing.T) {
	la := input.NewLookahead(input.NewString("0123456789"), 3)
	buf := make([]rune, 4)
	var seen []rune
	for !la.EOF() {
		n := la.CopyLookahead(buf)
		if n == 0 || buf[0] != la.Current() {
			t.Fatalf("window %q does not start at current %q", string(buf[:n]), la.Current())
		}
		seen = append(seen, la.Next())
	}
	if string(seen) != "0123456789" {
		t.Errorf("got %q", string(seen))
	}
}
