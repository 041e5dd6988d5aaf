package evaluator

import (
	"fmt"
	"math"
	"strconv"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/regex"
	"github.com/t14raptor/es3/token"
)

// evaluate runs an expression. Identifier and property expressions yield a
// reference.
func (ip *Interpreter) evaluate(ctx *Context, n ast.Expr) (Value, error) {
	switch expr := n.(type) {
	case *ast.NullLiteral:
		return nullValue, nil
	case *ast.BooleanLiteral:
		return Bool(expr.Value), nil
	case *ast.NumberLiteral:
		return Number(expr.Value), nil
	case *ast.StringLiteral:
		return String(expr.Value), nil
	case *ast.RegExpLiteral:
		re, err := regex.Compile(expr.Pattern, expr.Flags)
		if err != nil {
			return undefinedValue, ip.Throw("SyntaxError", "%s", err.Error())
		}
		return ObjectValue(ip.newRegExp(re)), nil
	case *ast.ThisExpression:
		if ctx.This == nil {
			return ObjectValue(ip.Global), nil
		}
		return ObjectValue(ctx.This), nil
	case *ast.Identifier:
		return ctx.resolve(expr.Name), nil
	case *ast.ArrayLiteral:
		return ip.evaluateArray(ctx, expr)
	case *ast.ObjectLiteral:
		o := NewObject("Object", ip.ObjectPrototype)
		for _, prop := range expr.Properties {
			v, err := ip.evaluateValue(ctx, prop.Value)
			if err != nil {
				return undefinedValue, err
			}
			o.Put(prop.Key, v)
		}
		return ObjectValue(o), nil
	case *ast.DotExpression:
		left, err := ip.evaluateValue(ctx, expr.Left)
		if err != nil {
			return undefinedValue, err
		}
		base, err := ip.ToObject(left)
		if err != nil {
			return undefinedValue, err
		}
		return referenceValue(base, expr.Identifier), nil
	case *ast.BracketExpression:
		left, err := ip.evaluateValue(ctx, expr.Left)
		if err != nil {
			return undefinedValue, err
		}
		member, err := ip.evaluateValue(ctx, expr.Member)
		if err != nil {
			return undefinedValue, err
		}
		base, err := ip.ToObject(left)
		if err != nil {
			return undefinedValue, err
		}
		name, err := ip.ToString(member)
		if err != nil {
			return undefinedValue, err
		}
		return referenceValue(base, name), nil
	case *ast.CallExpression:
		return ip.evaluateCall(ctx, expr)
	case *ast.NewExpression:
		return ip.evaluateNew(ctx, expr)
	case *ast.UpdateExpression:
		return ip.evaluateUpdate(ctx, expr)
	case *ast.UnaryExpression:
		return ip.evaluateUnary(ctx, expr)
	case *ast.BinaryExpression:
		return ip.evaluateBinary(ctx, expr)
	case *ast.ConditionalExpression:
		test, err := ip.evaluateValue(ctx, expr.Test)
		if err != nil {
			return undefinedValue, err
		}
		if ToBoolean(test) {
			return ip.evaluateValue(ctx, expr.Consequent)
		}
		return ip.evaluateValue(ctx, expr.Alternate)
	case *ast.AssignExpression:
		return ip.evaluateAssign(ctx, expr)
	case *ast.SequenceExpression:
		if _, err := ip.evaluateValue(ctx, expr.Left); err != nil {
			return undefinedValue, err
		}
		return ip.evaluateValue(ctx, expr.Right)
	case *ast.FunctionLiteral:
		return ObjectValue(ip.functionExpression(ctx, expr.Function)), nil
	}
	return undefinedValue, ip.internalError(fmt.Sprintf("unexpected expression %T", n))
}

// evaluateValue runs an expression and resolves its result.
func (ip *Interpreter) evaluateValue(ctx *Context, n ast.Expr) (Value, error) {
	v, err := ip.evaluate(ctx, n)
	if err != nil {
		return undefinedValue, err
	}
	return ip.GetValue(v)
}

// GetValue resolves a reference (ECMA 262: 8.7.1). Other values are
// returned unchanged.
func (ip *Interpreter) GetValue(v Value) (Value, error) {
	ref, ok := v.reference()
	if !ok {
		return v, nil
	}
	if ref.Base == nil {
		return undefinedValue, ip.Throw("ReferenceError", "%s", ref.Name)
	}
	return ref.Base.Get(ref.Name), nil
}

// PutValue assigns through a reference (ECMA 262: 8.7.2).
func (ip *Interpreter) PutValue(v, w Value) error {
	ref, ok := v.reference()
	if !ok {
		return ip.Throw("ReferenceError", "invalid assignment target")
	}
	base := ref.Base
	if base == nil {
		base = ip.Global
	}
	if base.Class == "Array" && ref.Name == "length" {
		n, err := ip.ToNumber(w)
		if err != nil {
			return err
		}
		if float64(toUint32(n)) != n {
			return ip.Throw("RangeError", "invalid array length")
		}
		w = Number(n)
	}
	base.Put(ref.Name, w)
	return nil
}

func (ip *Interpreter) evaluateArray(ctx *Context, expr *ast.ArrayLiteral) (Value, error) {
	a := ip.NewArray()
	for i, el := range expr.Elements {
		if el == nil {
			continue
		}
		v, err := ip.evaluateValue(ctx, el)
		if err != nil {
			return undefinedValue, err
		}
		a.Put(strconv.Itoa(i), v)
	}
	a.Put("length", Number(float64(len(expr.Elements))))
	return ObjectValue(a), nil
}

func (ip *Interpreter) evaluateUpdate(ctx *Context, expr *ast.UpdateExpression) (Value, error) {
	ref, err := ip.evaluate(ctx, expr.Operand)
	if err != nil {
		return undefinedValue, err
	}
	old, err := ip.GetValue(ref)
	if err != nil {
		return undefinedValue, err
	}
	n, err := ip.ToNumber(old)
	if err != nil {
		return undefinedValue, err
	}
	m := n + 1
	if expr.Operator == token.Decrement {
		m = n - 1
	}
	if err := ip.PutValue(ref, Number(m)); err != nil {
		return undefinedValue, err
	}
	if expr.Postfix {
		return Number(n), nil
	}
	return Number(m), nil
}

func (ip *Interpreter) evaluateUnary(ctx *Context, expr *ast.UnaryExpression) (Value, error) {
	switch expr.Operator {
	case token.Delete:
		v, err := ip.evaluate(ctx, expr.Operand)
		if err != nil {
			return undefinedValue, err
		}
		ref, ok := v.reference()
		if !ok {
			return falseValue, nil
		}
		if ref.Base == nil {
			return trueValue, nil
		}
		return Bool(ref.Base.Delete(ref.Name)), nil
	case token.TypeOf:
		v, err := ip.evaluate(ctx, expr.Operand)
		if err != nil {
			return undefinedValue, err
		}
		if ref, ok := v.reference(); ok && ref.Base == nil {
			return String("undefined"), nil
		}
		if v, err = ip.GetValue(v); err != nil {
			return undefinedValue, err
		}
		return String(v.typeOf()), nil
	}

	v, err := ip.evaluateValue(ctx, expr.Operand)
	if err != nil {
		return undefinedValue, err
	}
	switch expr.Operator {
	case token.Void:
		return undefinedValue, nil
	case token.Plus:
		n, err := ip.ToNumber(v)
		return Number(n), err
	case token.Minus:
		n, err := ip.ToNumber(v)
		return Number(-n), err
	case token.BitwiseNot:
		n, err := ip.ToInt32(v)
		return Number(float64(^n)), err
	case token.Not:
		return Bool(!ToBoolean(v)), nil
	}
	return undefinedValue, ip.internalError("unexpected unary operator " + expr.Operator.String())
}

func (ip *Interpreter) evaluateBinary(ctx *Context, expr *ast.BinaryExpression) (Value, error) {
	left, err := ip.evaluateValue(ctx, expr.Left)
	if err != nil {
		return undefinedValue, err
	}
	switch expr.Operator {
	case token.LogicalAnd:
		if !ToBoolean(left) {
			return left, nil
		}
		return ip.evaluateValue(ctx, expr.Right)
	case token.LogicalOr:
		if ToBoolean(left) {
			return left, nil
		}
		return ip.evaluateValue(ctx, expr.Right)
	}
	right, err := ip.evaluateValue(ctx, expr.Right)
	if err != nil {
		return undefinedValue, err
	}
	return ip.calculateBinaryExpression(expr.Operator, left, right)
}

func (ip *Interpreter) evaluateAssign(ctx *Context, expr *ast.AssignExpression) (Value, error) {
	ref, err := ip.evaluate(ctx, expr.Left)
	if err != nil {
		return undefinedValue, err
	}
	var v Value
	if expr.Operator == token.Assign {
		if v, err = ip.evaluateValue(ctx, expr.Right); err != nil {
			return undefinedValue, err
		}
	} else {
		left, err := ip.GetValue(ref)
		if err != nil {
			return undefinedValue, err
		}
		right, err := ip.evaluateValue(ctx, expr.Right)
		if err != nil {
			return undefinedValue, err
		}
		if v, err = ip.calculateBinaryExpression(expr.Operator.BinaryOf(), left, right); err != nil {
			return undefinedValue, err
		}
	}
	if err := ip.PutValue(ref, v); err != nil {
		return undefinedValue, err
	}
	return v, nil
}

func evaluateDivide(left float64, right float64) Value {
	if math.IsNaN(left) || math.IsNaN(right) {
		return NaNValue()
	}
	if math.IsInf(left, 0) && math.IsInf(right, 0) {
		return NaNValue()
	}
	if left == 0 && right == 0 {
		return NaNValue()
	}
	if math.IsInf(left, 0) {
		if math.Signbit(left) == math.Signbit(right) {
			return Number(positiveInfinity)
		}
		return Number(negativeInfinity)
	}
	if math.IsInf(right, 0) {
		if math.Signbit(left) == math.Signbit(right) {
			return Number(positiveZero)
		}
		return Number(negativeZero)
	}
	if right == 0 {
		if math.Signbit(left) == math.Signbit(right) {
			return Number(positiveInfinity)
		}
		return Number(negativeInfinity)
	}
	return Number(left / right)
}

// calculateBinaryExpression applies a binary operator other than && and
// || to resolved operands.
func (ip *Interpreter) calculateBinaryExpression(operator token.Token, left Value, right Value) (Value, error) {
	switch operator {
	// Additive
	case token.Plus:
		lp, err := ip.ToPrimitive(left, HintNone)
		if err != nil {
			return undefinedValue, err
		}
		rp, err := ip.ToPrimitive(right, HintNone)
		if err != nil {
			return undefinedValue, err
		}
		if lp.IsString() || rp.IsString() {
			return String(primitiveString(lp) + primitiveString(rp)), nil
		}
		l, _ := ip.ToNumber(lp)
		r, _ := ip.ToNumber(rp)
		return Number(l + r), nil

	// Equality
	case token.Equal, token.NotEqual:
		eq, err := ip.Equals(left, right)
		return Bool(eq == (operator == token.Equal)), err
	case token.StrictEqual:
		return Bool(StrictEquals(left, right)), nil
	case token.StrictNotEqual:
		return Bool(!StrictEquals(left, right)), nil

	// Relational
	case token.Less:
		lt, undef, err := ip.lessThan(left, right)
		return Bool(lt && !undef), err
	case token.Greater:
		gt, undef, err := ip.lessThan(right, left)
		return Bool(gt && !undef), err
	case token.LessOrEqual:
		gt, undef, err := ip.lessThan(right, left)
		return Bool(!gt && !undef), err
	case token.GreaterOrEqual:
		lt, undef, err := ip.lessThan(left, right)
		return Bool(!lt && !undef), err
	case token.InstanceOf:
		return ip.instanceOf(left, right)
	case token.In:
		if !right.IsObject() {
			return undefinedValue, ip.typeError("'in' requires an object")
		}
		name, err := ip.ToString(left)
		if err != nil {
			return undefinedValue, err
		}
		return Bool(right.AsObject().HasProperty(name)), nil
	}

	switch operator {
	case token.ShiftLeft, token.ShiftRight, token.UnsignedShiftRight,
		token.And, token.Or, token.ExclusiveOr:
		return ip.calculateBitwise(operator, left, right)
	}

	l, err := ip.ToNumber(left)
	if err != nil {
		return undefinedValue, err
	}
	r, err := ip.ToNumber(right)
	if err != nil {
		return undefinedValue, err
	}
	switch operator {
	case token.Minus:
		return Number(l - r), nil

	// Multiplicative
	case token.Multiply:
		return Number(l * r), nil
	case token.Slash:
		return evaluateDivide(l, r), nil
	case token.Remainder:
		return Number(math.Mod(l, r)), nil
	}
	return undefinedValue, ip.internalError("unexpected binary operator " + operator.String())
}

func (ip *Interpreter) calculateBitwise(operator token.Token, left Value, right Value) (Value, error) {
	l, err := ip.ToNumber(left)
	if err != nil {
		return undefinedValue, err
	}
	r, err := ip.ToNumber(right)
	if err != nil {
		return undefinedValue, err
	}
	// Masking with 0x1f restricts the shift to at most 31 places.
	shift := toUint32(r) & 0x1f
	switch operator {
	case token.And:
		return Number(float64(toInt32(l) & toInt32(r))), nil
	case token.Or:
		return Number(float64(toInt32(l) | toInt32(r))), nil
	case token.ExclusiveOr:
		return Number(float64(toInt32(l) ^ toInt32(r))), nil
	case token.ShiftLeft:
		return Number(float64(toInt32(l) << shift)), nil
	case token.ShiftRight:
		return Number(float64(toInt32(l) >> shift)), nil
	}
	// Shifting an unsigned integer is a logical shift.
	return Number(float64(toUint32(l) >> shift)), nil
}

// instanceOf implements the instanceof operator with the [[HasInstance]]
// of script functions (15.3.5.3).
func (ip *Interpreter) instanceOf(v, f Value) (Value, error) {
	if !f.IsObject() {
		return undefinedValue, ip.typeError("'instanceof' requires an object")
	}
	fn := f.AsObject()
	if !fn.Callable() {
		return undefinedValue, ip.typeError("object has no [[HasInstance]]")
	}
	if !v.IsObject() {
		return falseValue, nil
	}
	proto := fn.Get("prototype")
	if !proto.IsObject() {
		return undefinedValue, ip.typeError("prototype is not an object")
	}
	for o := v.AsObject().Prototype; o != nil; o = o.Prototype {
		if o == proto.AsObject() {
			return trueValue, nil
		}
	}
	return falseValue, nil
}
