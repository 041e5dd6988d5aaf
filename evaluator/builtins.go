package evaluator

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/t14raptor/es3/generator"
	"github.com/t14raptor/es3/input"
	"github.com/t14raptor/es3/parser"
)

// arg returns the i'th argument or undefined.
func arg(args []Value, i int) Value {
	if i < len(args) {
		return args[i]
	}
	return undefinedValue
}

func (ip *Interpreter) initGlobals() {
	ip.ObjectPrototype = NewObject("Object", nil)
	ip.FunctionPrototype = NewObject("Function", ip.ObjectPrototype)
	ip.FunctionPrototype.call = func(*Interpreter, *Object, []Value) (Value, error) {
		return undefinedValue, nil
	}
	ip.Global = NewObject("Global", ip.ObjectPrototype)

	ip.initObject()
	ip.initFunction()
	ip.initArray()
	ip.initString()
	ip.initNumber()
	ip.initBoolean()
	ip.initError()
	ip.initRegExp()

	g := ip.Global
	g.Define("NaN", Number(nan), DontEnum|DontDelete)
	g.Define("Infinity", Number(positiveInfinity), DontEnum|DontDelete)
	g.Define("undefined", undefinedValue, DontEnum|DontDelete)
	ip.evalFunc = g.DefineFunc(ip, "eval", 1, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		return ip.eval(ip.global, this, args)
	})
	g.DefineFunc(ip, "isNaN", 1, func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
		n, err := ip.ToNumber(arg(args, 0))
		return Bool(math.IsNaN(n)), err
	})
	g.DefineFunc(ip, "isFinite", 1, func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
		n, err := ip.ToNumber(arg(args, 0))
		return Bool(!math.IsNaN(n) && !math.IsInf(n, 0)), err
	})
	g.DefineFunc(ip, "parseFloat", 1, func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
		s, err := ip.ToString(arg(args, 0))
		if err != nil {
			return undefinedValue, err
		}
		return Number(parseFloatPrefix(s)), nil
	})
	g.DefineFunc(ip, "parseInt", 2, func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
		s, err := ip.ToString(arg(args, 0))
		if err != nil {
			return undefinedValue, err
		}
		radix, err := ip.ToInt32(arg(args, 1))
		if err != nil {
			return undefinedValue, err
		}
		return Number(parseIntPrefix(s, int(radix))), nil
	})
}

func (ip *Interpreter) initObject() {
	proto := ip.ObjectPrototype
	toObject := func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
		v := arg(args, 0)
		if v.IsNull() || v.IsUndefined() {
			return ObjectValue(NewObject("Object", ip.ObjectPrototype)), nil
		}
		o, err := ip.ToObject(v)
		return ObjectValue(o), err
	}
	ctor := ip.NewConstructor("Object", 1, proto, toObject, toObject)
	ip.Global.Define("Object", ObjectValue(ctor), DontEnum)

	proto.DefineFunc(ip, "toString", 0, func(ip *Interpreter, this *Object, _ []Value) (Value, error) {
		return String("[object " + this.Class + "]"), nil
	})
	proto.DefineFunc(ip, "toLocaleString", 0, func(ip *Interpreter, this *Object, _ []Value) (Value, error) {
		f := this.Get("toString")
		if !f.IsObject() || !f.AsObject().Callable() {
			return undefinedValue, ip.typeError("toString is not callable")
		}
		return ip.Call(f.AsObject(), this)
	})
	proto.DefineFunc(ip, "valueOf", 0, func(ip *Interpreter, this *Object, _ []Value) (Value, error) {
		return ObjectValue(this), nil
	})
	proto.DefineFunc(ip, "hasOwnProperty", 1, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		name, err := ip.ToString(arg(args, 0))
		return Bool(this.HasOwnProperty(name)), err
	})
	proto.DefineFunc(ip, "propertyIsEnumerable", 1, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		name, err := ip.ToString(arg(args, 0))
		attr, ok := this.Attributes(name)
		return Bool(ok && attr&DontEnum == 0), err
	})
	proto.DefineFunc(ip, "isPrototypeOf", 1, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		v := arg(args, 0)
		if !v.IsObject() {
			return falseValue, nil
		}
		for o := v.AsObject().Prototype; o != nil; o = o.Prototype {
			if o == this {
				return trueValue, nil
			}
		}
		return falseValue, nil
	})
}

func (ip *Interpreter) initFunction() {
	proto := ip.FunctionPrototype
	proto.Define("length", Number(0), ReadOnly|DontEnum|DontDelete)
	build := func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
		f, err := ip.buildFunction(args)
		return ObjectValue(f), err
	}
	ctor := ip.NewConstructor("Function", 1, proto, build, build)
	ip.Global.Define("Function", ObjectValue(ctor), DontEnum)

	proto.DefineFunc(ip, "toString", 0, func(ip *Interpreter, this *Object, _ []Value) (Value, error) {
		if !this.Callable() {
			return undefinedValue, ip.typeError("Function.prototype.toString called on incompatible object")
		}
		if fn := this.Function(); fn != nil {
			return String(generator.FunctionSource(fn)), nil
		}
		name := this.Get("name")
		return String("function " + primitiveString(name) + "() {\n    [native code]\n}"), nil
	})
	proto.DefineFunc(ip, "call", 1, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		if !this.Callable() {
			return undefinedValue, ip.typeError("not callable")
		}
		thisArg, err := ip.thisArgument(arg(args, 0))
		if err != nil {
			return undefinedValue, err
		}
		var rest []Value
		if len(args) > 1 {
			rest = args[1:]
		}
		return ip.callFunction(ip.location, this, thisArg, rest)
	})
	proto.DefineFunc(ip, "apply", 2, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		if !this.Callable() {
			return undefinedValue, ip.typeError("not callable")
		}
		thisArg, err := ip.thisArgument(arg(args, 0))
		if err != nil {
			return undefinedValue, err
		}
		list, err := ip.argumentList(arg(args, 1))
		if err != nil {
			return undefinedValue, err
		}
		return ip.callFunction(ip.location, this, thisArg, list)
	})
}

// thisArgument converts the first argument of call and apply. null and
// undefined select the global object.
func (ip *Interpreter) thisArgument(v Value) (*Object, error) {
	if v.IsNull() || v.IsUndefined() {
		return nil, nil
	}
	return ip.ToObject(v)
}

// argumentList reads the array or arguments object passed to apply.
func (ip *Interpreter) argumentList(v Value) ([]Value, error) {
	if v.IsNull() || v.IsUndefined() {
		return nil, nil
	}
	o := v.AsObject()
	if o == nil || (o.Class != "Array" && o.alias == nil) {
		return nil, ip.typeError("second argument to apply must be an array")
	}
	n, err := ip.ToUint32(o.Get("length"))
	if err != nil {
		return nil, err
	}
	list := make([]Value, n)
	for i := range list {
		list[i] = o.Get(strconv.Itoa(i))
	}
	return list, nil
}

// buildFunction implements the Function constructor (15.3.2.1).
func (ip *Interpreter) buildFunction(args []Value) (*Object, error) {
	var params []string
	body := ""
	for i, a := range args {
		s, err := ip.ToString(a)
		if err != nil {
			return nil, err
		}
		if i == len(args)-1 {
			body = s
		} else {
			params = append(params, s)
		}
	}
	name := input.WithName("<Function>")
	var ps input.Source
	if len(params) > 0 {
		ps = input.NewString(strings.Join(params, ","), name)
	}
	fn, err := parser.ParseFunction("anonymous", ps, input.NewString(body, name), ip.parseOptions()...)
	if err != nil {
		return nil, ip.Throw("SyntaxError", "%s", err.Error())
	}
	return ip.newFunction(fn, &Scope{Object: ip.Global}), nil
}

// parseFloatPrefix converts the longest prefix of s that is a decimal
// literal (15.1.2.3).
func parseFloatPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return negativeInfinity
		}
		return positiveInfinity
	}
	digits := func() int {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return i - start
	}
	n := digits()
	if i < len(s) && s[i] == '.' {
		i++
		n += digits()
	}
	if n == 0 {
		return nan
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if digits() > 0 {
			end = i
		}
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !math.IsInf(f, 0) {
		return nan
	}
	return f
}

// parseIntPrefix implements parseInt (15.1.2.2).
func parseIntPrefix(s string, radix int) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	switch {
	case radix == 0:
		radix = 10
		if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
			radix = 16
			s = s[2:]
		}
	case radix < 2 || radix > 36:
		return nan
	case radix == 16:
		if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
			s = s[2:]
		}
	}
	n, seen := 0.0, false
	for _, c := range s {
		d := digitValue(c)
		if d >= radix {
			break
		}
		n = n*float64(radix) + float64(d)
		seen = true
	}
	if !seen {
		return nan
	}
	return sign * n
}

func digitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}
