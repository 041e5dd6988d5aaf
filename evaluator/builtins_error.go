package evaluator

// nativeErrors are the error types of ECMA 262 15.11.6 that this
// interpreter throws.
var nativeErrors = []string{"EvalError", "RangeError", "ReferenceError", "SyntaxError", "TypeError"}

func (ip *Interpreter) initError() {
	ip.errorPrototypes = make(map[string]*Object)
	ip.ErrorPrototype = ip.defineError("Error", ip.ObjectPrototype)
	ip.ErrorPrototype.DefineFunc(ip, "toString", 0, func(ip *Interpreter, this *Object, _ []Value) (Value, error) {
		name, err := ip.ToString(this.Get("name"))
		if err != nil {
			return undefinedValue, err
		}
		msg, err := ip.ToString(this.Get("message"))
		if err != nil {
			return undefinedValue, err
		}
		if msg == "" {
			return String(name), nil
		}
		return String(name + ": " + msg), nil
	})
	for _, name := range nativeErrors {
		ip.defineError(name, ip.ErrorPrototype)
	}
}

// defineError installs an error constructor. Called as a function it
// behaves as if constructed.
func (ip *Interpreter) defineError(name string, parent *Object) *Object {
	proto := NewObject("Error", parent)
	proto.Define("name", String(name), DontEnum)
	proto.Define("message", String(""), DontEnum)
	ip.errorPrototypes[name] = proto

	build := func(ip *Interpreter, _ *Object, args []Value) (Value, error) {
		o := NewObject("Error", proto)
		if m := arg(args, 0); !m.IsUndefined() {
			s, err := ip.ToString(m)
			if err != nil {
				return undefinedValue, err
			}
			o.Define("message", String(s), DontEnum)
		}
		return ObjectValue(o), nil
	}
	ctor := ip.NewConstructor(name, 1, proto, build, build)
	ip.Global.Define(name, ObjectValue(ctor), DontEnum)
	return proto
}
