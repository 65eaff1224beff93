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

// Arithmetic applies op. A Null operand yields Null as long as the other
// operand supports arithmetic.
func Arithmetic(op ArithmeticOperator, left, right Value) (Value, error) {
	if IsNull(left) || IsNull(right) {
		other := left
		if IsNull(left) {
			other = right
		}
		if IsNull(other) {
			return Null{}, nil
		}
		if _, ok := other.(Arithmeticer); ok {
			return Null{}, nil
		}
		return nil, typeMismatch(op.String(), orNull(left), orNull(right))
	}
	a, ok := left.(Arithmeticer)
	if !ok {
		if _, rok := right.(Arithmeticer); rok {
			return nil, typeMismatch(op.String(), left, right)
		}
		return nil, unsupported(op.String(), left)
	}
	return a.Arithmetic(op, right)
}

// Compare applies a comparison operator with SQL null semantics: any Null
// operand gives Null, except for <=> which treats two Nulls as equal.
func Compare(op ComparisonOperator, left, right Value) (Value, error) {
	leftNull, rightNull := IsNull(left), IsNull(right)
	if op == OpNullSafeEqual {
		if leftNull || rightNull {
			return Boolean{Value: leftNull && rightNull}, nil
		}
		eq, err := equality(left, right)
		if err != nil {
			return nil, err
		}
		return Boolean{Value: eq}, nil
	}
	if leftNull || rightNull {
		return Null{}, nil
	}

	switch op {
	case OpEqual, OpNotEqual:
		eq, err := equality(left, right)
		if err != nil {
			return nil, err
		}
		return Boolean{Value: eq == (op == OpEqual)}, nil
	}

	ord, err := Order(left, right)
	if err != nil {
		return nil, err
	}
	switch op {
	case OpGreater:
		return Boolean{Value: ord == Greater}, nil
	case OpGreaterEqual:
		return Boolean{Value: ord != Less}, nil
	case OpLess:
		return Boolean{Value: ord == Less}, nil
	case OpLessEqual:
		return Boolean{Value: ord != Greater}, nil
	}
	return nil, NewError(ErrorInvalidOperation, "unknown comparison operator %d", op)
}

// Order is Compare on the partial order, failing with NotComparable when
// the operands cannot be ordered.
func Order(left, right Value) (Ordering, error) {
	left, right = orNull(left), orNull(right)
	ord, ok := left.Compare(right)
	if !ok {
		return 0, notComparable(left, right)
	}
	return ord, nil
}

// equality falls back to Equals for same typed values without an order
// (composites, NaN).
func equality(left, right Value) (bool, error) {
	if ord, ok := left.Compare(right); ok {
		return ord == Equal, nil
	}
	if left.DataType().Kind() == right.DataType().Kind() {
		return left.Equals(right), nil
	}
	return false, notComparable(left, right)
}

// GroupCompare compares left with every element of the right collection and
// reduces the results with OR (ANY) or AND (ALL) in three-valued logic.
// Every element is compared, there is no early exit.
func GroupCompare(op ComparisonOperator, group GroupOperator, left, right Value) (Value, error) {
	c, ok := right.(Collection)
	if !ok {
		return nil, NewError(ErrorTypeMismatch, "%s %s expects a collection on the right, got %s", op, group, orNull(right).DataType())
	}
	reducer := OpOr
	var acc Value = Boolean{Value: false}
	if group == GroupAll {
		reducer = OpAnd
		acc = Boolean{Value: true}
	}
	for _, element := range c.Elements() {
		result, err := Compare(op, left, element)
		if err != nil {
			return nil, err
		}
		if acc, err = threeValued(reducer, acc, result); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Logical applies AND, OR or XOR.
func Logical(op LogicalOperator, left, right Value) (Value, error) {
	left, right = orNull(left), orNull(right)
	l, ok := left.(LogicalValue)
	if !ok {
		return nil, typeMismatch(op.String(), left, right)
	}
	return l.Logical(op, right)
}

// Bitwise applies a bitwise operator. Null operands yield Null.
func Bitwise(op BitwiseOperator, left, right Value) (Value, error) {
	if IsNull(left) || IsNull(right) {
		return Null{}, nil
	}
	b, ok := left.(BitwiseValue)
	if !ok {
		return nil, typeMismatch(op.String(), left, right)
	}
	return b.Bitwise(op, right)
}

// Match applies LIKE, REGEXP or GLOB. Null operands yield Null.
func Match(kind PatternKind, input, pattern Value) (Value, error) {
	if IsNull(input) || IsNull(pattern) {
		return Null{}, nil
	}
	m, ok := input.(Matcher)
	if !ok {
		return nil, typeMismatch(kind.String(), input, pattern)
	}
	return m.Match(kind, pattern)
}

// Contains tests membership of item in container using Equals.
func Contains(container, item Value) (Value, error) {
	container, item = orNull(container), orNull(item)
	c, ok := container.(Container)
	if !ok {
		return nil, unsupported("@>", container)
	}
	return c.Contains(item)
}

// Index returns collection[index]. A Null collection yields Null.
func Index(collection, index Value) (Value, error) {
	if IsNull(collection) {
		return Null{}, nil
	}
	ix, ok := collection.(Indexable)
	if !ok {
		return nil, unsupported("[]", collection)
	}
	return ix.Index(orNull(index))
}

// Slice returns collection[start:end]; nil bounds are open.
func Slice(collection, start, end Value) (Value, error) {
	if IsNull(collection) {
		return Null{}, nil
	}
	ix, ok := collection.(Indexable)
	if !ok {
		return nil, unsupported("[:]", collection)
	}
	return ix.Slice(start, end)
}

// UnaryOp applies a prefix operator.
func UnaryOp(op UnaryOperator, v Value) (Value, error) {
	v = orNull(v)
	u, ok := v.(Unary)
	if !ok {
		return nil, unsupported(op.String(), v)
	}
	return u.Unary(op)
}

func orNull(v Value) Value {
	if v == nil {
		return Null{}
	}
	return v
}
