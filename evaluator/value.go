package evaluator

import (
	"math"
	"unicode/utf16"
)

// Kind is the type of a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindObject
	// KindReference values are produced by identifier and property
	// expressions and never escape the evaluator.
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindReference:
		return "reference"
	}
	return "invalid"
}

// Reference is an unresolved property access. A nil Base means the name
// could not be found on the scope chain.
type Reference struct {
	Base *Object
	Name string
}

// Value is the representation of an ECMAScript value.
type Value struct {
	value interface{}
	kind  Kind
}

var (
	undefinedValue = Value{kind: KindUndefined}
	nullValue      = Value{kind: KindNull}
	falseValue     = Value{kind: KindBoolean, value: false}
	trueValue      = Value{kind: KindBoolean, value: true}
)

var (
	nan              float64 = math.NaN()
	positiveInfinity float64 = math.Inf(+1)
	negativeInfinity float64 = math.Inf(-1)
	positiveZero     float64 = 0
	negativeZero     float64 = math.Float64frombits(0 | (1 << 63))
)

// Undefined returns the undefined value.
func Undefined() Value { return undefinedValue }

// Null returns the null value.
func Null() Value { return nullValue }

// Bool returns a boolean value.
func Bool(b bool) Value {
	if b {
		return trueValue
	}
	return falseValue
}

// Number returns a number value.
func Number(f float64) Value { return Value{kind: KindNumber, value: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, value: s} }

// ObjectValue returns a value referring to o, or null if o is nil.
func ObjectValue(o *Object) Value {
	if o == nil {
		return nullValue
	}
	return Value{kind: KindObject, value: o}
}

// NaNValue will return a value representing NaN.
func NaNValue() Value { return Number(nan) }

func referenceValue(base *Object, name string) Value {
	return Value{kind: KindReference, value: Reference{Base: base, Name: name}}
}

func (v Value) Kind() Kind { return v.kind }

// IsUndefined will return true if the value is undefined, and false otherwise.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNull will return true if the value is null, and false otherwise.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsBoolean will return true if value is a boolean (primitive).
func (v Value) IsBoolean() bool { return v.kind == KindBoolean }

// IsNumber will return true if value is a number (primitive).
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// IsString will return true if value is a string (primitive).
func (v Value) IsString() bool { return v.kind == KindString }

// IsObject will return true if value is an object.
func (v Value) IsObject() bool { return v.kind == KindObject }

// IsPrimitive reports whether v is neither an object nor a reference.
func (v Value) IsPrimitive() bool { return v.kind < KindObject }

// AsBool returns the boolean held by v, or false.
func (v Value) AsBool() bool {
	b, _ := v.value.(bool)
	return b
}

// AsNumber returns the number held by v, or NaN.
func (v Value) AsNumber() float64 {
	if f, ok := v.value.(float64); ok {
		return f
	}
	return nan
}

// AsString returns the string held by v, or "".
func (v Value) AsString() string {
	s, _ := v.value.(string)
	return s
}

// AsObject returns the object held by v, or nil.
func (v Value) AsObject() *Object {
	o, _ := v.value.(*Object)
	return o
}

func (v Value) reference() (Reference, bool) {
	r, ok := v.value.(Reference)
	return r, ok && v.kind == KindReference
}

// typeOf implements the typeof operator on a resolved value.
func (v Value) typeOf() string {
	switch v.kind {
	case KindNull:
		return "object"
	case KindObject:
		if v.AsObject().Callable() {
			return "function"
		}
		return "object"
	}
	return v.kind.String()
}

// ToBoolean converts v (ECMA 262: 9.2).
func ToBoolean(v Value) bool {
	switch v.kind {
	case KindBoolean:
		return v.AsBool()
	case KindNumber:
		f := v.AsNumber()
		return !(math.IsNaN(f) || f == 0)
	case KindString:
		return v.AsString() != ""
	case KindObject:
		return true
	}
	return false
}

// ECMA 262: 9.4.
func toInteger(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f == 0 || math.IsInf(f, 0):
		return f
	}
	return math.Trunc(f)
}

// ECMA 262: 9.6.
func toUint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return 0
	}
	f = math.Mod(math.Trunc(f), 1<<32)
	if f < 0 {
		f += 1 << 32
	}
	return uint32(f)
}

// ECMA 262: 9.5.
func toInt32(f float64) int32 {
	return int32(toUint32(f))
}

// ECMA 262: 9.7.
func toUint16(f float64) uint16 {
	return uint16(toUint32(f))
}

// arrayIndex reports whether name is the canonical form of an array
// index (15.4).
func arrayIndex(name string) (uint32, bool) {
	if name == "" || len(name) > 10 || (name[0] == '0' && len(name) > 1) {
		return 0, false
	}
	var n uint64
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint64(c-'0')
	}
	if n >= 1<<32-1 {
		return 0, false
	}
	return uint32(n), true
}

// Strings are stored as Go strings. Their length and indexing are
// measured in UTF-16 code units.

func stringLength(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func stringUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// compareStrings orders by UTF-16 code units (11.8.5 step 21).
func compareStrings(a, b string) int {
	ua, ub := stringUnits(a), stringUnits(b)
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			if ua[i] < ub[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ua) < len(ub):
		return -1
	case len(ua) > len(ub):
		return 1
	}
	return 0
}
