package evaluator

import (
	"math"

	"github.com/t14raptor/es3/parser/scanner"
)

// Hint is the preferred type passed to ToPrimitive.
type Hint int

const (
	HintNone Hint = iota
	HintNumber
	HintString
)

// primitiveString converts a primitive (ECMA 262: 9.8).
func primitiveString(v Value) string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case KindNumber:
		return scanner.FormatNumber(v.AsNumber())
	case KindString:
		return v.AsString()
	}
	return ""
}

// ToPrimitive converts v (ECMA 262: 9.1).
func (ip *Interpreter) ToPrimitive(v Value, hint Hint) (Value, error) {
	if !v.IsObject() {
		return v, nil
	}
	return ip.defaultValue(v.AsObject(), hint)
}

// defaultValue implements [[DefaultValue]] (8.6.2.6).
func (ip *Interpreter) defaultValue(o *Object, hint Hint) (Value, error) {
	order := [2]string{"valueOf", "toString"}
	if hint == HintString {
		order = [2]string{"toString", "valueOf"}
	}
	for _, name := range order {
		f := o.Get(name)
		if !f.IsObject() || !f.AsObject().Callable() {
			continue
		}
		r, err := ip.callFunction(ip.location, f.AsObject(), o, nil)
		if err != nil {
			return undefinedValue, err
		}
		if r.IsPrimitive() {
			return r, nil
		}
	}
	return undefinedValue, ip.typeError("no default value")
}

// ToNumber converts v (ECMA 262: 9.3).
func (ip *Interpreter) ToNumber(v Value) (float64, error) {
	switch v.kind {
	case KindUndefined:
		return nan, nil
	case KindNull:
		return 0, nil
	case KindBoolean:
		if v.AsBool() {
			return 1, nil
		}
		return 0, nil
	case KindNumber:
		return v.AsNumber(), nil
	case KindString:
		if f, ok := scanner.LexNumber(v.AsString(), ip.compat); ok {
			return f, nil
		}
		return nan, nil
	}
	p, err := ip.ToPrimitive(v, HintNumber)
	if err != nil {
		return nan, err
	}
	return ip.ToNumber(p)
}

// ToString converts v (ECMA 262: 9.8).
func (ip *Interpreter) ToString(v Value) (string, error) {
	if !v.IsObject() {
		return primitiveString(v), nil
	}
	p, err := ip.ToPrimitive(v, HintString)
	if err != nil {
		return "", err
	}
	return primitiveString(p), nil
}

// ToObject converts v (ECMA 262: 9.9).
func (ip *Interpreter) ToObject(v Value) (*Object, error) {
	var o *Object
	switch v.kind {
	case KindObject:
		return v.AsObject(), nil
	case KindBoolean:
		o = NewObject("Boolean", ip.BooleanPrototype)
	case KindNumber:
		o = NewObject("Number", ip.NumberPrototype)
	case KindString:
		o = NewObject("String", ip.StringPrototype)
		o.Define("length", Number(float64(stringLength(v.AsString()))), ReadOnly|DontEnum|DontDelete)
	default:
		return nil, ip.typeError("cannot convert %s to object", v.kind)
	}
	o.PrimitiveValue = v
	return o, nil
}

func (ip *Interpreter) toInteger(v Value) (float64, error) {
	f, err := ip.ToNumber(v)
	return toInteger(f), err
}

// ToInt32 converts v (ECMA 262: 9.5).
func (ip *Interpreter) ToInt32(v Value) (int32, error) {
	f, err := ip.ToNumber(v)
	return toInt32(f), err
}

// ToUint32 converts v (ECMA 262: 9.6).
func (ip *Interpreter) ToUint32(v Value) (uint32, error) {
	f, err := ip.ToNumber(v)
	return toUint32(f), err
}

// ToUint16 converts v (ECMA 262: 9.7).
func (ip *Interpreter) ToUint16(v Value) (uint16, error) {
	f, err := ip.ToNumber(v)
	return toUint16(f), err
}

// StrictEquals implements the === operator (ECMA 262: 11.9.6).
func StrictEquals(x, y Value) bool {
	if x.kind != y.kind {
		return false
	}
	switch x.kind {
	case KindUndefined, KindNull:
		return true
	case KindNumber:
		return x.AsNumber() == y.AsNumber()
	case KindString:
		return x.AsString() == y.AsString()
	case KindBoolean:
		return x.AsBool() == y.AsBool()
	case KindObject:
		return x.AsObject() == y.AsObject()
	}
	return false
}

// Equals implements the == operator (ECMA 262: 11.9.3).
func (ip *Interpreter) Equals(x, y Value) (bool, error) {
	if x.kind == y.kind {
		return StrictEquals(x, y), nil
	}
	switch {
	case (x.IsNull() || x.IsUndefined()) && (y.IsNull() || y.IsUndefined()):
		return true, nil
	case x.IsNull() || x.IsUndefined() || y.IsNull() || y.IsUndefined():
		return false, nil
	case x.IsNumber() && y.IsString():
		n, _ := ip.ToNumber(y)
		return x.AsNumber() == n, nil
	case x.IsString() && y.IsNumber():
		n, _ := ip.ToNumber(x)
		return n == y.AsNumber(), nil
	case x.IsBoolean():
		n, _ := ip.ToNumber(x)
		return ip.Equals(Number(n), y)
	case y.IsBoolean():
		n, _ := ip.ToNumber(y)
		return ip.Equals(x, Number(n))
	case (x.IsString() || x.IsNumber()) && y.IsObject():
		p, err := ip.ToPrimitive(y, HintNone)
		if err != nil {
			return false, err
		}
		return ip.Equals(x, p)
	case x.IsObject() && (y.IsString() || y.IsNumber()):
		p, err := ip.ToPrimitive(x, HintNone)
		if err != nil {
			return false, err
		}
		return ip.Equals(p, y)
	}
	return false, nil
}

// lessThan implements the abstract relational comparison x < y (ECMA 262:
// 11.8.5). undef is set when a NaN makes the result undefined.
func (ip *Interpreter) lessThan(x, y Value) (lt, undef bool, err error) {
	px, err := ip.ToPrimitive(x, HintNumber)
	if err != nil {
		return false, false, err
	}
	py, err := ip.ToPrimitive(y, HintNumber)
	if err != nil {
		return false, false, err
	}
	if px.IsString() && py.IsString() {
		return compareStrings(px.AsString(), py.AsString()) < 0, false, nil
	}
	nx, err := ip.ToNumber(px)
	if err != nil {
		return false, false, err
	}
	ny, err := ip.ToNumber(py)
	if err != nil {
		return false, false, err
	}
	if math.IsNaN(nx) || math.IsNaN(ny) {
		return false, true, nil
	}
	return nx < ny, false, nil
}

// Compare orders two values for sorting: 0 if x == y, -1 if x < y and 1
// otherwise, including when the values are unordered.
func (ip *Interpreter) Compare(x, y Value) (int, error) {
	eq, err := ip.Equals(x, y)
	if err != nil || eq {
		return 0, err
	}
	lt, undef, err := ip.lessThan(x, y)
	if err != nil {
		return 0, err
	}
	if lt && !undef {
		return -1, nil
	}
	return 1, nil
}
