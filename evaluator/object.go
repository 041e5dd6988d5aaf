package evaluator

import (
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/regex"
)

// Attr is a set of property attributes (8.6.1).
type Attr uint8

const (
	ReadOnly Attr = 1 << iota
	DontEnum
	DontDelete
)

// NativeFunc implements [[Call]] or [[Construct]] for a host function.
// this is nil when the function is called as a constructor.
type NativeFunc func(ip *Interpreter, this *Object, args []Value) (Value, error)

type property struct {
	value Value
	attr  Attr
}

// Object is the default object model: an ordered property map with
// attributes, a prototype and optional internal behaviour.
type Object struct {
	// Class is the [[Class]] of the object, e.g. "Object" or "Array".
	Class     string
	Prototype *Object

	props map[string]*property
	keys  []string

	// PrimitiveValue is the [[Value]] of Boolean, Number and String
	// wrappers.
	PrimitiveValue Value

	call      NativeFunc
	construct NativeFunc

	// Script functions.
	function *ast.Function
	scope    *Scope

	regexp *regex.Regexp

	// activation marks a function's variable object. A method called
	// through it gets the global object as this.
	activation bool
	// alias maps the indices of an arguments object to the named
	// parameters held by the activation.
	alias *argumentAlias
}

type argumentAlias struct {
	activation *Object
	params     []string
}

// NewObject returns an empty object.
func NewObject(class string, proto *Object) *Object {
	return &Object{Class: class, Prototype: proto, props: make(map[string]*property)}
}

func (o *Object) aliased(name string) (string, bool) {
	if o.alias == nil {
		return "", false
	}
	i, ok := arrayIndex(name)
	if !ok || int(i) >= len(o.alias.params) {
		return "", false
	}
	if _, own := o.props[name]; !own {
		return "", false
	}
	return o.alias.params[i], true
}

// GetOwn returns an own property.
func (o *Object) GetOwn(name string) (Value, bool) {
	p, ok := o.props[name]
	if !ok {
		return undefinedValue, false
	}
	if param, ok := o.aliased(name); ok {
		return o.alias.activation.Get(param), true
	}
	return p.value, true
}

// Get implements [[Get]] (8.6.2.1).
func (o *Object) Get(name string) Value {
	for obj := o; obj != nil; obj = obj.Prototype {
		if v, ok := obj.GetOwn(name); ok {
			return v
		}
	}
	return undefinedValue
}

// CanPut implements [[CanPut]] (8.6.2.3).
func (o *Object) CanPut(name string) bool {
	for obj := o; obj != nil; obj = obj.Prototype {
		if p, ok := obj.props[name]; ok {
			return p.attr&ReadOnly == 0
		}
	}
	return true
}

// Put implements [[Put]] (8.6.2.2).
func (o *Object) Put(name string, v Value) {
	o.PutAttr(name, v, 0)
}

// PutAttr is Put with the attributes given to a newly created property.
func (o *Object) PutAttr(name string, v Value, attr Attr) {
	if !o.CanPut(name) {
		return
	}
	if o.Class == "Array" && name == "length" {
		o.setLength(toUint32(v.AsNumber()))
		return
	}
	if param, ok := o.aliased(name); ok {
		o.alias.activation.Put(param, v)
		return
	}
	if p, ok := o.props[name]; ok {
		p.value = v
	} else {
		o.props[name] = &property{value: v, attr: attr}
		o.keys = append(o.keys, name)
	}
	if o.Class == "Array" {
		if i, ok := arrayIndex(name); ok && float64(i) >= o.Get("length").AsNumber() {
			o.props["length"].value = Number(float64(i) + 1)
		}
	}
}

// Define creates or replaces an own property, ignoring ReadOnly.
func (o *Object) Define(name string, v Value, attr Attr) {
	if p, ok := o.props[name]; ok {
		p.value, p.attr = v, attr
		return
	}
	o.props[name] = &property{value: v, attr: attr}
	o.keys = append(o.keys, name)
}

// DefineFunc installs a native method with the given length.
func (o *Object) DefineFunc(ip *Interpreter, name string, length int, fn NativeFunc) *Object {
	f := ip.NewNativeFunction(name, length, fn)
	o.Define(name, ObjectValue(f), DontEnum)
	return f
}

// HasProperty implements [[HasProperty]] (8.6.2.4).
func (o *Object) HasProperty(name string) bool {
	for obj := o; obj != nil; obj = obj.Prototype {
		if _, ok := obj.props[name]; ok {
			return true
		}
	}
	return false
}

// HasOwnProperty reports whether name is an own property.
func (o *Object) HasOwnProperty(name string) bool {
	_, ok := o.props[name]
	return ok
}

// Attributes returns the attributes of an own property.
func (o *Object) Attributes(name string) (Attr, bool) {
	p, ok := o.props[name]
	if !ok {
		return 0, false
	}
	return p.attr, true
}

// Delete implements [[Delete]] (8.6.2.5).
func (o *Object) Delete(name string) bool {
	p, ok := o.props[name]
	if !ok {
		return true
	}
	if p.attr&DontDelete != 0 {
		return false
	}
	delete(o.props, name)
	if i := slices.Index(o.keys, name); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
	return true
}

// Keys returns the own property names in insertion order, including
// those marked DontEnum.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Enumerate lists the names a for-in statement visits: enumerable
// properties along the prototype chain, skipping shadowed names.
func (o *Object) Enumerate() []string {
	var names []string
	seen := make(map[string]bool)
	for obj := o; obj != nil; obj = obj.Prototype {
		for _, k := range obj.keys {
			if seen[k] {
				continue
			}
			seen[k] = true
			if obj.props[k].attr&DontEnum == 0 {
				names = append(names, k)
			}
		}
	}
	return names
}

// Callable reports whether o has a [[Call]] method.
func (o *Object) Callable() bool {
	return o.call != nil || o.function != nil
}

// Constructible reports whether o has a [[Construct]] method.
func (o *Object) Constructible() bool {
	return o.construct != nil || o.function != nil
}

// Function returns the descriptor of a script function, or nil.
func (o *Object) Function() *ast.Function {
	return o.function
}

func (o *Object) setLength(n uint32) {
	old := uint32(o.Get("length").AsNumber())
	if n < old {
		for _, k := range o.Keys() {
			if i, ok := arrayIndex(k); ok && i >= n {
				o.Delete(k)
			}
		}
	}
	o.props["length"].value = Number(float64(n))
}

// NewArray returns an array holding elems.
func (ip *Interpreter) NewArray(elems ...Value) *Object {
	a := NewObject("Array", ip.ArrayPrototype)
	a.Define("length", Number(0), DontEnum|DontDelete)
	for i, v := range elems {
		a.Put(strconv.Itoa(i), v)
	}
	return a
}

// NewNativeFunction returns a host function object.
func (ip *Interpreter) NewNativeFunction(name string, length int, fn NativeFunc) *Object {
	f := NewObject("Function", ip.FunctionPrototype)
	f.call = fn
	f.Define("length", Number(float64(length)), ReadOnly|DontEnum|DontDelete)
	if name != "" {
		f.Define("name", String(name), ReadOnly|DontEnum|DontDelete)
	}
	return f
}

// NewConstructor is NewNativeFunction with a [[Construct]] method and a
// prototype object linked back through its constructor property.
func (ip *Interpreter) NewConstructor(name string, length int, proto *Object, call, construct NativeFunc) *Object {
	f := ip.NewNativeFunction(name, length, call)
	f.construct = construct
	f.Define("prototype", ObjectValue(proto), ReadOnly|DontEnum|DontDelete)
	proto.Define("constructor", ObjectValue(f), DontEnum)
	return f
}
