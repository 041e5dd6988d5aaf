// Package regex compiles and runs the regular expressions of RegExp
// literals and the RegExp constructor.
//
// Matching is delegated to regexp2 in ECMAScript mode. Offsets are
// counted in code points.
package regex

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// MatchTimeout bounds a single match. Patterns with catastrophic
// backtracking fail to match rather than hang the interpreter.
var MatchTimeout = 5 * time.Second

// Regexp is a compiled pattern. It is safe for concurrent use.
type Regexp struct {
	source string
	flags  string
	re     *regexp2.Regexp

	global, ignoreCase, multiline bool
}

// Error reports an invalid pattern or flag string.
type Error struct {
	Source string
	Flags  string
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid regular expression /%s/%s: %s", e.Source, e.Flags, e.Msg)
}

// Compile validates flags, which may hold each of g, i and m at most once,
// and compiles pattern.
func Compile(pattern, flags string) (*Regexp, error) {
	r := &Regexp{source: pattern, flags: flags}
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	for _, f := range flags {
		var seen *bool
		switch f {
		case 'g':
			seen = &r.global
		case 'i':
			seen = &r.ignoreCase
			opts |= regexp2.IgnoreCase
		case 'm':
			seen = &r.multiline
			opts |= regexp2.Multiline
		default:
			return nil, &Error{Source: pattern, Flags: flags, Msg: fmt.Sprintf("unknown flag '%c'", f)}
		}
		if *seen {
			return nil, &Error{Source: pattern, Flags: flags, Msg: fmt.Sprintf("repeated flag '%c'", f)}
		}
		*seen = true
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		msg := err.Error()
		if _, after, ok := strings.Cut(msg, ": "); ok {
			msg = after
		}
		return nil, &Error{Source: pattern, Flags: flags, Msg: msg}
	}
	re.MatchTimeout = MatchTimeout
	r.re = re
	return r, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern, flags string) *Regexp {
	r, err := Compile(pattern, flags)
	if err != nil {
		panic(err)
	}
	return r
}

// Match runs the pattern against text from code point offset start. It
// returns 2*(NCaptures()+1) offsets, a start and end pair for the whole
// match followed by one per capture group, with -1 for groups that did
// not participate. It returns nil if there is no match.
func (r *Regexp) Match(text string, start int) []int {
	runes := []rune(text)
	if start < 0 || start > len(runes) {
		return nil
	}
	m, err := r.re.FindRunesMatchStartingAt(runes, start)
	if err != nil || m == nil {
		return nil
	}

	caps := make([]int, 2*(r.NCaptures()+1))
	for i := range caps {
		caps[i] = -1
	}
	for _, g := range m.Groups() {
		n := r.re.GroupNumberFromName(g.Name)
		if n < 0 || 2*n+1 >= len(caps) || len(g.Captures) == 0 {
			continue
		}
		caps[2*n] = g.Index
		caps[2*n+1] = g.Index + g.Length
	}
	return caps
}

// NCaptures returns the number of capturing groups in the pattern.
func (r *Regexp) NCaptures() int {
	return len(r.re.GetGroupNumbers()) - 1
}

// Source returns the pattern text as given to Compile.
func (r *Regexp) Source() string { return r.source }

// Flags returns the flag string as given to Compile.
func (r *Regexp) Flags() string { return r.flags }

func (r *Regexp) Global() bool     { return r.global }
func (r *Regexp) IgnoreCase() bool { return r.ignoreCase }
func (r *Regexp) Multiline() bool  { return r.multiline }

func (r *Regexp) String() string {
	return "/" + r.source + "/" + r.flags
}
