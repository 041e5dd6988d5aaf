package scanner

import "fmt"

// JSVersion selects a level of compatibility with Netscape JavaScript.
// The zero value is strict ECMA-262.
type JSVersion int

const (
	JSNone JSVersion = iota
	JS11
	JS12
	JS13
	JS14
	JS15
)

func (v JSVersion) String() string {
	if v == JSNone {
		return ""
	}
	return fmt.Sprintf("1.%d", int(v))
}

// ParseJSVersion parses "", "1.1" ... "1.5".
func ParseJSVersion(s string) (JSVersion, error) {
	for v := JSNone; v <= JS15; v++ {
		if v.String() == s {
			return v, nil
		}
	}
	return JSNone, fmt.Errorf("unknown JavaScript version %q", s)
}

// Compat holds the compatibility switches that change how source text is
// scanned and parsed.
type Compat struct {
	// SGMLComments makes "<!--" start a comment running to end of line.
	SGMLComments bool
	// JS enables JavaScript extensions up to the given version.
	JS JSVersion
}

// JSCompat reports whether any JavaScript compatibility is enabled.
func (c Compat) JSCompat() bool { return c.JS != JSNone }

// AtLeast reports whether compatibility with JavaScript v or later is on.
func (c Compat) AtLeast(v JSVersion) bool { return c.JS >= v && c.JS != JSNone }
