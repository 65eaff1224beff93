/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package values

import (
	"math"
	"strconv"
)

// Integer 64位整数
type Integer struct {
	Value int64
}

// NewInteger returns an Integer holding i.
func NewInteger(i int64) Integer {
	return Integer{Value: i}
}

func (i Integer) DataType() DataType { return IntType }
func (i Integer) Literal() string    { return strconv.FormatInt(i.Value, 10) }
func (i Integer) Clone() Value       { return i }

func (i Integer) Equals(other Value) bool {
	switch o := other.(type) {
	case Integer:
		return o.Value == i.Value
	case Float:
		return float64(i.Value) == o.Value
	}
	return false
}

func (i Integer) Compare(other Value) (Ordering, bool) {
	switch o := other.(type) {
	case Integer:
		return orderOf(compareInt(i.Value, o.Value)), true
	case Float:
		return compareFloat(float64(i.Value), o.Value)
	}
	return 0, false
}

func (i Integer) Arithmetic(op ArithmeticOperator, other Value) (Value, error) {
	switch o := other.(type) {
	case Integer:
		return intArithmetic(op, i.Value, o.Value)
	case Float:
		return floatArithmetic(op, float64(i.Value), o.Value)
	case Interval:
		// 整数 * 区间 与 区间 * 整数 等价, 整数 + 区间 按天数相加
		switch op {
		case OpStar:
			return o.scale(float64(i.Value))
		case OpPlus:
			return o.shiftDays(op, i.Value)
		}
	}
	return nil, typeMismatch(op.String(), i, other)
}

func (i Integer) Bitwise(op BitwiseOperator, other Value) (Value, error) {
	o, ok := other.(Integer)
	if !ok {
		return nil, typeMismatch(op.String(), i, other)
	}
	switch op {
	case OpBitOr:
		return Integer{Value: i.Value | o.Value}, nil
	case OpBitAnd:
		return Integer{Value: i.Value & o.Value}, nil
	case OpBitXor:
		return Integer{Value: i.Value ^ o.Value}, nil
	case OpShiftLeft, OpShiftRight:
		if o.Value < 0 || o.Value > 63 {
			return nil, NewError(ErrorInvalidOperation, "shift count %d is out of range", o.Value)
		}
		if op == OpShiftLeft {
			return Integer{Value: i.Value << uint(o.Value)}, nil
		}
		return Integer{Value: i.Value >> uint(o.Value)}, nil
	}
	return nil, unsupported(op.String(), i)
}

func (i Integer) Unary(op UnaryOperator) (Value, error) {
	switch op {
	case OpNegative:
		if i.Value == math.MinInt64 {
			return nil, NewError(ErrorInvalidOperation, "integer overflow in -(%d)", i.Value)
		}
		return Integer{Value: -i.Value}, nil
	case OpBang:
		return Integer{Value: ^i.Value}, nil
	}
	return nil, unsupported(op.String(), i)
}

func (i Integer) CastTo(target DataType) (Value, error) {
	return castScalar(i, i.Value, target)
}

// Float 64位浮点数
type Float struct {
	Value float64
}

// NewFloat returns a Float holding f.
func NewFloat(f float64) Float {
	return Float{Value: f}
}

func (f Float) DataType() DataType { return FloatType }
func (f Float) Literal() string    { return strconv.FormatFloat(f.Value, 'f', -1, 64) }
func (f Float) Clone() Value       { return f }

func (f Float) Equals(other Value) bool {
	switch o := other.(type) {
	case Float:
		return o.Value == f.Value || (math.IsNaN(o.Value) && math.IsNaN(f.Value))
	case Integer:
		return float64(o.Value) == f.Value
	}
	return false
}

func (f Float) Compare(other Value) (Ordering, bool) {
	switch o := other.(type) {
	case Float:
		return compareFloat(f.Value, o.Value)
	case Integer:
		return compareFloat(f.Value, float64(o.Value))
	}
	return 0, false
}

func (f Float) Arithmetic(op ArithmeticOperator, other Value) (Value, error) {
	switch o := other.(type) {
	case Float:
		return floatArithmetic(op, f.Value, o.Value)
	case Integer:
		return floatArithmetic(op, f.Value, float64(o.Value))
	case Interval:
		if op == OpStar {
			return o.scale(f.Value)
		}
	}
	return nil, typeMismatch(op.String(), f, other)
}

func (f Float) Unary(op UnaryOperator) (Value, error) {
	if op == OpNegative {
		return Float{Value: -f.Value}, nil
	}
	return nil, unsupported(op.String(), f)
}

func (f Float) CastTo(target DataType) (Value, error) {
	return castScalar(f, f.Value, target)
}

func intArithmetic(op ArithmeticOperator, a, b int64) (Value, error) {
	switch op {
	case OpPlus:
		s := a + b
		if (b > 0 && s < a) || (b < 0 && s > a) {
			return nil, overflow(op, a, b)
		}
		return Integer{Value: s}, nil
	case OpMinus:
		d := a - b
		if (b < 0 && d < a) || (b > 0 && d > a) {
			return nil, overflow(op, a, b)
		}
		return Integer{Value: d}, nil
	case OpStar:
		p, ok := mulInt(a, b)
		if !ok {
			return nil, overflow(op, a, b)
		}
		return Integer{Value: p}, nil
	case OpSlash:
		if b == 0 {
			return nil, NewError(ErrorDivisionByZero, "division by zero: %d / 0", a)
		}
		if a == math.MinInt64 && b == -1 {
			return nil, overflow(op, a, b)
		}
		return Integer{Value: a / b}, nil
	case OpModulus:
		if b == 0 {
			return nil, NewError(ErrorDivisionByZero, "modulo by zero: %d %% 0", a)
		}
		return Integer{Value: a % b}, nil
	case OpExponent:
		if b < 0 {
			return Float{Value: math.Pow(float64(a), float64(b))}, nil
		}
		return powInt(a, b)
	}
	return nil, NewError(ErrorInvalidOperation, "unknown arithmetic operator %d", op)
}

func floatArithmetic(op ArithmeticOperator, a, b float64) (Value, error) {
	switch op {
	case OpPlus:
		return Float{Value: a + b}, nil
	case OpMinus:
		return Float{Value: a - b}, nil
	case OpStar:
		return Float{Value: a * b}, nil
	case OpSlash:
		if b == 0 {
			return nil, NewError(ErrorDivisionByZero, "division by zero: %v / 0", a)
		}
		return Float{Value: a / b}, nil
	case OpModulus:
		if b == 0 {
			return nil, NewError(ErrorDivisionByZero, "modulo by zero: %v %% 0", a)
		}
		return Float{Value: math.Mod(a, b)}, nil
	case OpExponent:
		return Float{Value: math.Pow(a, b)}, nil
	}
	return nil, NewError(ErrorInvalidOperation, "unknown arithmetic operator %d", op)
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return c, false
	}
	return c, true
}

func powInt(base, exp int64) (Value, error) {
	result := int64(1)
	b := base
	for e := exp; e > 0; e >>= 1 {
		var ok bool
		if e&1 == 1 {
			if result, ok = mulInt(result, b); !ok {
				return nil, overflow(OpExponent, base, exp)
			}
		}
		if e > 1 {
			if b, ok = mulInt(b, b); !ok {
				return nil, overflow(OpExponent, base, exp)
			}
		}
	}
	return Integer{Value: result}, nil
}

func overflow(op ArithmeticOperator, a, b int64) *EvalError {
	return NewError(ErrorInvalidOperation, "integer overflow in %d %s %d", a, op, b)
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareFloat treats NaN as incomparable.
func compareFloat(a, b float64) (Ordering, bool) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, false
	}
	switch {
	case a < b:
		return Less, true
	case a > b:
		return Greater, true
	}
	return Equal, true
}

func orderOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	}
	return Equal
}
