package evaluator

import (
	"strconv"
	"strings"
)

func (ip *Interpreter) initArray() {
	proto := NewObject("Array", ip.ObjectPrototype)
	proto.Define("length", Number(0), DontEnum|DontDelete)
	ip.ArrayPrototype = proto

	build := func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
		if len(args) == 1 && args[0].IsNumber() {
			n := args[0].AsNumber()
			if float64(toUint32(n)) != n {
				return undefinedValue, ip.Throw("RangeError", "invalid array length")
			}
			a := ip.NewArray()
			a.Put("length", args[0])
			return ObjectValue(a), nil
		}
		return ObjectValue(ip.NewArray(args...)), nil
	}
	ctor := ip.NewConstructor("Array", 1, proto, build, build)
	ip.Global.Define("Array", ObjectValue(ctor), DontEnum)

	proto.DefineFunc(ip, "toString", 0, func(ip *Interpreter, this *Object, _ []Value) (Value, error) {
		if this.Class != "Array" {
			return undefinedValue, ip.typeError("Array.prototype.toString called on incompatible object")
		}
		s, err := ip.join(this, ",")
		return String(s), err
	})
	proto.DefineFunc(ip, "join", 1, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		sep := ","
		if v := arg(args, 0); !v.IsUndefined() {
			var err error
			if sep, err = ip.ToString(v); err != nil {
				return undefinedValue, err
			}
		}
		s, err := ip.join(this, sep)
		return String(s), err
	})
	proto.DefineFunc(ip, "push", 1, func(ip *Interpreter, this *Object, args []Value) (Value, error) {
		n, err := ip.ToUint32(this.Get("length"))
		if err != nil {
			return undefinedValue, err
		}
		length := float64(n)
		for _, v := range args {
			this.Put(strconv.FormatFloat(length, 'f', -1, 64), v)
			length++
		}
		this.Put("length", Number(length))
		return Number(length), nil
	})
	proto.DefineFunc(ip, "pop", 0, func(ip *Interpreter, this *Object, _ []Value) (Value, error) {
		n, err := ip.ToUint32(this.Get("length"))
		if err != nil {
			return undefinedValue, err
		}
		if n == 0 {
			this.Put("length", Number(0))
			return undefinedValue, nil
		}
		name := strconv.FormatUint(uint64(n-1), 10)
		v := this.Get(name)
		this.Delete(name)
		this.Put("length", Number(float64(n-1)))
		return v, nil
	})
}

// join implements Array.prototype.join (15.4.4.5).
func (ip *Interpreter) join(o *Object, sep string) (string, error) {
	n, err := ip.ToUint32(o.Get("length"))
	if err != nil {
		return "", err
	}
	parts := make([]string, n)
	for i := range parts {
		v := o.Get(strconv.Itoa(i))
		if v.IsNull() || v.IsUndefined() {
			continue
		}
		if parts[i], err = ip.ToString(v); err != nil {
			return "", err
		}
	}
	return strings.Join(parts, sep), nil
}
