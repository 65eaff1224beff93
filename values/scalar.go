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
	"strconv"
)

// Null is the SQL NULL value.
type Null struct{}

func (Null) DataType() DataType { return NullType }
func (Null) Literal() string    { return "NULL" }
func (Null) Clone() Value       { return Null{} }

func (Null) Equals(other Value) bool {
	return IsNull(other)
}

func (Null) Compare(other Value) (Ordering, bool) {
	if IsNull(other) {
		return Equal, true
	}
	return 0, false
}

func (n Null) Logical(op LogicalOperator, other Value) (Value, error) {
	return threeValued(op, n, other)
}

func (Null) Unary(UnaryOperator) (Value, error) {
	return Null{}, nil
}

func (Null) CastTo(DataType) (Value, error) {
	return Null{}, nil
}

// Boolean 布尔值
type Boolean struct {
	Value bool
}

// NewBoolean returns a Boolean holding b.
func NewBoolean(b bool) Boolean {
	return Boolean{Value: b}
}

func (b Boolean) DataType() DataType { return BoolType }
func (b Boolean) Literal() string    { return strconv.FormatBool(b.Value) }
func (b Boolean) Clone() Value       { return b }

func (b Boolean) Equals(other Value) bool {
	o, ok := other.(Boolean)
	return ok && o.Value == b.Value
}

// Compare orders false before true.
func (b Boolean) Compare(other Value) (Ordering, bool) {
	o, ok := other.(Boolean)
	if !ok {
		return 0, false
	}
	switch {
	case b.Value == o.Value:
		return Equal, true
	case !b.Value:
		return Less, true
	default:
		return Greater, true
	}
}

func (b Boolean) Logical(op LogicalOperator, other Value) (Value, error) {
	return threeValued(op, b, other)
}

func (b Boolean) Unary(op UnaryOperator) (Value, error) {
	switch op {
	case OpNot, OpBang:
		return Boolean{Value: !b.Value}, nil
	}
	return nil, unsupported(op.String(), b)
}

func (b Boolean) CastTo(target DataType) (Value, error) {
	return castScalar(b, b.Value, target)
}

// threeValued implements SQL three-valued logic over Boolean and Null.
//
//	AND: false wins, then NULL, then true
//	OR:  true wins, then NULL, then false
//	XOR: NULL if any side is NULL
func threeValued(op LogicalOperator, left, right Value) (Value, error) {
	l, lok := truthOf(left)
	r, rok := truthOf(right)
	if !lok || !rok {
		return nil, typeMismatch(op.String(), left, right)
	}
	switch op {
	case OpAnd:
		if l == truthFalse || r == truthFalse {
			return Boolean{Value: false}, nil
		}
		if l == truthUnknown || r == truthUnknown {
			return Null{}, nil
		}
		return Boolean{Value: true}, nil
	case OpOr:
		if l == truthTrue || r == truthTrue {
			return Boolean{Value: true}, nil
		}
		if l == truthUnknown || r == truthUnknown {
			return Null{}, nil
		}
		return Boolean{Value: false}, nil
	case OpXor:
		if l == truthUnknown || r == truthUnknown {
			return Null{}, nil
		}
		return Boolean{Value: l != r}, nil
	}
	return nil, unsupported(op.String(), left)
}

type truth int

const (
	truthFalse truth = iota
	truthTrue
	truthUnknown
)

func truthOf(v Value) (truth, bool) {
	switch t := v.(type) {
	case Boolean:
		if t.Value {
			return truthTrue, true
		}
		return truthFalse, true
	case Null:
		return truthUnknown, true
	case nil:
		return truthUnknown, true
	}
	return 0, false
}

// IsTrue reports whether v is Boolean true. Null and every other value are not true.
func IsTrue(v Value) bool {
	b, ok := v.(Boolean)
	return ok && b.Value
}
