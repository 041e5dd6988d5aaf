package evaluator

import (
	"github.com/t14raptor/es3/regex"
)

func (ip *Interpreter) initRegExp() {
	proto := NewObject("Object", ip.ObjectPrototype)
	ip.RegExpPrototype = proto

	ctor := ip.NewConstructor("RegExp", 2, proto,
		func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
			if p := arg(args, 0); p.IsObject() && p.AsObject().regexp != nil && arg(args, 1).IsUndefined() {
				return p, nil
			}
			return ip.buildRegExp(args)
		},
		func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
			return ip.buildRegExp(args)
		})
	ip.Global.Define("RegExp", ObjectValue(ctor), DontEnum)

	proto.DefineFunc(ip, "exec", 1, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		return ip.exec(this, arg(args, 0))
	})
	proto.DefineFunc(ip, "test", 1, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		v, err := ip.exec(this, arg(args, 0))
		return Bool(err == nil && !v.IsNull()), err
	})
	proto.DefineFunc(ip, "toString", 0, func(ip *Interpreter, this *Object, _ []Value) (Value, error) {
		if this.regexp == nil {
			return undefinedValue, ip.typeError("RegExp.prototype.toString called on incompatible object")
		}
		return String(this.regexp.String()), nil
	})
}

// buildRegExp implements new RegExp(pattern, flags) (15.10.4.1).
func (ip *Interpreter) buildRegExp(args []Value) (Value, error) {
	p, f := arg(args, 0), arg(args, 1)
	var pattern, flags string
	if o := p.AsObject(); o != nil && o.regexp != nil {
		if !f.IsUndefined() {
			return undefinedValue, ip.typeError("cannot supply flags when constructing one RegExp from another")
		}
		pattern, flags = o.regexp.Source(), o.regexp.Flags()
	} else {
		var err error
		if !p.IsUndefined() {
			if pattern, err = ip.ToString(p); err != nil {
				return undefinedValue, err
			}
		}
		if !f.IsUndefined() {
			if flags, err = ip.ToString(f); err != nil {
				return undefinedValue, err
			}
		}
	}
	re, err := regex.Compile(pattern, flags)
	if err != nil {
		return undefinedValue, ip.Throw("SyntaxError", "%s", err.Error())
	}
	return ObjectValue(ip.newRegExp(re)), nil
}

func (ip *Interpreter) newRegExp(re *regex.Regexp) *Object {
	o := NewObject("RegExp", ip.RegExpPrototype)
	o.regexp = re
	constant := ReadOnly | DontEnum | DontDelete
	o.Define("source", String(re.Source()), constant)
	o.Define("global", Bool(re.Global()), constant)
	o.Define("ignoreCase", Bool(re.IgnoreCase()), constant)
	o.Define("multiline", Bool(re.Multiline()), constant)
	o.Define("lastIndex", Number(0), DontEnum|DontDelete)
	return o
}

// exec implements RegExp.prototype.exec (15.10.6.2). Indices seen by
// scripts count UTF-16 code units; the matcher counts code points.
func (ip *Interpreter) exec(this *Object, v Value) (Value, error) {
	if this.regexp == nil {
		return undefinedValue, ip.typeError("RegExp.prototype.exec called on incompatible object")
	}
	re := this.regexp
	s, err := ip.ToString(v)
	if err != nil {
		return undefinedValue, err
	}
	runes := []rune(s)
	offsets := unitOffsets(runes)

	start := 0.0
	if re.Global() {
		if start, err = ip.toInteger(this.Get("lastIndex")); err != nil {
			return undefinedValue, err
		}
	}
	if start < 0 || start > float64(offsets[len(runes)]) {
		this.Put("lastIndex", Number(0))
		return nullValue, nil
	}
	caps := re.Match(s, runeIndex(offsets, int(start)))
	if caps == nil {
		this.Put("lastIndex", Number(0))
		return nullValue, nil
	}
	if re.Global() {
		this.Put("lastIndex", Number(float64(offsets[caps[1]])))
	}

	elems := make([]Value, len(caps)/2)
	for i := range elems {
		if caps[2*i] < 0 {
			continue
		}
		elems[i] = String(string(runes[caps[2*i]:caps[2*i+1]]))
	}
	a := ip.NewArray(elems...)
	a.Put("index", Number(float64(offsets[caps[0]])))
	a.Put("input", String(s))
	return ObjectValue(a), nil
}

// unitOffsets maps each code point index of runes, and its length, to a
// UTF-16 offset.
func unitOffsets(runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	for i, r := range runes {
		n := 1
		if r >= 0x10000 {
			n = 2
		}
		offsets[i+1] = offsets[i] + n
	}
	return offsets
}

// runeIndex finds the first code point at or after a UTF-16 offset.
func runeIndex(offsets []int, unit int) int {
	for i, o := range offsets {
		if o >= unit {
			return i
		}
	}
	return len(offsets) - 1
}
