package evaluator

import (
	"math"
	"strconv"
	"unicode/utf16"

	"github.com/t14raptor/es3/parser/scanner"
)

// thisPrimitive returns the [[Value]] of a wrapper of the given class.
func (ip *Interpreter) thisPrimitive(this *Object, class string) (Value, error) {
	if this == nil || this.Class != class {
		return undefinedValue, ip.typeError("%s.prototype method called on incompatible object", class)
	}
	return this.PrimitiveValue, nil
}

func (ip *Interpreter) initString() {
	proto := NewObject("String", ip.ObjectPrototype)
	proto.PrimitiveValue = String("")
	proto.Define("length", Number(0), ReadOnly|DontEnum|DontDelete)
	ip.StringPrototype = proto

	convert := func(ip *Interpreter, args []Value) (Value, error) {
		if len(args) == 0 {
			return String(""), nil
		}
		s, err := ip.ToString(args[0])
		return String(s), err
	}
	ctor := ip.NewConstructor("String", 1, proto,
		func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
			return convert(ip, args)
		},
		func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
			v, err := convert(ip, args)
			if err != nil {
				return undefinedValue, err
			}
			o, err := ip.ToObject(v)
			return ObjectValue(o), err
		})
	ip.Global.Define("String", ObjectValue(ctor), DontEnum)

	value := func(ip *Interpreter, this *Object, _ []Value) (Value, error) {
		return ip.thisPrimitive(this, "String")
	}
	proto.DefineFunc(ip, "toString", 0, value)
	proto.DefineFunc(ip, "valueOf", 0, value)
	proto.DefineFunc(ip, "charAt", 1, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		units, pos, err := ip.stringPosition(this, arg(args, 0))
		if err != nil || pos < 0 || pos >= float64(len(units)) {
			return String(""), err
		}
		return String(string(utf16.Decode(units[int(pos) : int(pos)+1]))), nil
	})
	proto.DefineFunc(ip, "charCodeAt", 1, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		units, pos, err := ip.stringPosition(this, arg(args, 0))
		if err != nil || pos < 0 || pos >= float64(len(units)) {
			return Number(nan), err
		}
		return Number(float64(units[int(pos)])), nil
	})
}

// stringPosition converts this and a position argument as charAt does.
func (ip *Interpreter) stringPosition(this *Object, pos Value) ([]uint16, float64, error) {
	s, err := ip.ToString(ObjectValue(this))
	if err != nil {
		return nil, 0, err
	}
	p, err := ip.toInteger(pos)
	if err != nil {
		return nil, 0, err
	}
	return stringUnits(s), p, nil
}

func (ip *Interpreter) initNumber() {
	proto := NewObject("Number", ip.ObjectPrototype)
	proto.PrimitiveValue = Number(0)
	ip.NumberPrototype = proto

	convert := func(ip *Interpreter, args []Value) (Value, error) {
		if len(args) == 0 {
			return Number(0), nil
		}
		n, err := ip.ToNumber(args[0])
		return Number(n), err
	}
	ctor := ip.NewConstructor("Number", 1, proto,
		func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
			return convert(ip, args)
		},
		func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
			v, err := convert(ip, args)
			if err != nil {
				return undefinedValue, err
			}
			o, err := ip.ToObject(v)
			return ObjectValue(o), err
		})
	ip.Global.Define("Number", ObjectValue(ctor), DontEnum)

	constant := ReadOnly | DontEnum | DontDelete
	ctor.Define("MAX_VALUE", Number(math.MaxFloat64), constant)
	ctor.Define("MIN_VALUE", Number(math.SmallestNonzeroFloat64), constant)
	ctor.Define("NaN", Number(nan), constant)
	ctor.Define("NEGATIVE_INFINITY", Number(negativeInfinity), constant)
	ctor.Define("POSITIVE_INFINITY", Number(positiveInfinity), constant)

	proto.DefineFunc(ip, "toString", 1, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		v, err := ip.thisPrimitive(this, "Number")
		if err != nil {
			return undefinedValue, err
		}
		radix := 10.0
		if r := arg(args, 0); !r.IsUndefined() {
			if radix, err = ip.toInteger(r); err != nil {
				return undefinedValue, err
			}
		}
		if radix < 2 || radix > 36 {
			return undefinedValue, ip.Throw("RangeError", "radix out of range")
		}
		n := v.AsNumber()
		if radix == 10 || n != math.Trunc(n) || math.Abs(n) >= 1<<53 {
			return String(scanner.FormatNumber(n)), nil
		}
		return String(strconv.FormatInt(int64(n), int(radix))), nil
	})
	proto.DefineFunc(ip, "valueOf", 0, func(ip *Interpreter, this *Object, _ []Value) (Value, error) {
		return ip.thisPrimitive(this, "Number")
	})
}

func (ip *Interpreter) initBoolean() {
	proto := NewObject("Boolean", ip.ObjectPrototype)
	proto.PrimitiveValue = falseValue
	ip.BooleanPrototype = proto

	ctor := ip.NewConstructor("Boolean", 1, proto,
		func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
			return Bool(ToBoolean(arg(args, 0))), nil
		},
		func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
			o, err := ip.ToObject(Bool(ToBoolean(arg(args, 0))))
			return ObjectValue(o), err
		})
	ip.Global.Define("Boolean", ObjectValue(ctor), DontEnum)

	proto.DefineFunc(ip, "toString", 0, func(ip *Interpreter, this *Object, _ []Value) (Value, error) {
		v, err := ip.thisPrimitive(this, "Boolean")
		return String(primitiveString(v)), err
	})
	proto.DefineFunc(ip, "valueOf", 0, func(ip *Interpreter, this *Object, _ []Value) (Value, error) {
		return ip.thisPrimitive(this, "Boolean")
	})
}
