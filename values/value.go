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

// Package values implements the runtime value model of the query engine.
//
// A Value is immutable: every operator returns a new Value and never touches
// its operands. Each variant implements the base Value interface and the
// subset of capability interfaces (Arithmeticer, LogicalValue, BitwiseValue, Matcher,
// Container, Indexable, Castable, Unary) that make sense for it. The package
// level operator functions dispatch on those capabilities and report a typed
// *EvalError when a variant lacks one.
package values

// Ordering is the result of a successful comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Value is a runtime value.
type Value interface {
	DataType() DataType
	// Literal renders the value the way it would be printed in a result set.
	Literal() string
	// Equals is a total equality relation, used by IN and CASE style matching.
	Equals(other Value) bool
	// Compare is a partial order. ok is false when the two values cannot be
	// ordered, for example Text against Integer.
	Compare(other Value) (ord Ordering, ok bool)
	// Clone returns an independent deep copy.
	Clone() Value
}

// ArithmeticOperator 算术运算符
type ArithmeticOperator int

const (
	OpPlus ArithmeticOperator = iota
	OpMinus
	OpStar
	OpSlash
	OpModulus
	OpExponent
)

func (op ArithmeticOperator) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpStar:
		return "*"
	case OpSlash:
		return "/"
	case OpModulus:
		return "%"
	case OpExponent:
		return "^"
	}
	return "?"
}

// ComparisonOperator 比较运算符
type ComparisonOperator int

const (
	OpGreater ComparisonOperator = iota
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpEqual
	OpNotEqual
	OpNullSafeEqual
)

func (op ComparisonOperator) String() string {
	switch op {
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpNullSafeEqual:
		return "<=>"
	}
	return "?"
}

// GroupOperator reduces a group comparison.
type GroupOperator int

const (
	GroupAny GroupOperator = iota
	GroupAll
)

func (op GroupOperator) String() string {
	if op == GroupAll {
		return "ALL"
	}
	return "ANY"
}

// LogicalOperator 逻辑运算符
type LogicalOperator int

const (
	OpAnd LogicalOperator = iota
	OpOr
	OpXor
)

func (op LogicalOperator) String() string {
	switch op {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpXor:
		return "XOR"
	}
	return "?"
}

// BitwiseOperator 位运算符
type BitwiseOperator int

const (
	OpBitOr BitwiseOperator = iota
	OpBitAnd
	OpBitXor
	OpShiftLeft
	OpShiftRight
)

func (op BitwiseOperator) String() string {
	switch op {
	case OpBitOr:
		return "|"
	case OpBitAnd:
		return "&"
	case OpBitXor:
		return "#"
	case OpShiftLeft:
		return "<<"
	case OpShiftRight:
		return ">>"
	}
	return "?"
}

// UnaryOperator 一元运算符
type UnaryOperator int

const (
	OpNegative UnaryOperator = iota
	OpNot
	OpBang
)

func (op UnaryOperator) String() string {
	switch op {
	case OpNegative:
		return "-"
	case OpNot:
		return "NOT"
	case OpBang:
		return "!"
	}
	return "?"
}

// PatternKind selects the matching dialect of a Matcher.
type PatternKind int

const (
	PatternLike PatternKind = iota
	PatternRegexp
	PatternGlob
)

func (k PatternKind) String() string {
	switch k {
	case PatternLike:
		return "LIKE"
	case PatternRegexp:
		return "REGEXP"
	case PatternGlob:
		return "GLOB"
	}
	return "?"
}

// Arithmeticer is implemented by values supporting + - * / % ^.
type Arithmeticer interface {
	Arithmetic(op ArithmeticOperator, other Value) (Value, error)
}

// LogicalValue is implemented by values taking part in three-valued logic.
type LogicalValue interface {
	Logical(op LogicalOperator, other Value) (Value, error)
}

// BitwiseValue is implemented by integral values.
type BitwiseValue interface {
	Bitwise(op BitwiseOperator, other Value) (Value, error)
}

// Matcher is implemented by values that can be matched against a pattern.
type Matcher interface {
	Match(kind PatternKind, pattern Value) (Value, error)
}

// Container is implemented by collection-like values.
type Container interface {
	Contains(item Value) (Value, error)
}

// Collection exposes the elements of Array and Row values.
type Collection interface {
	Elements() []Value
}

// Indexable is implemented by values supporting v[i] and v[start:end].
type Indexable interface {
	Index(index Value) (Value, error)
	// Slice takes nil for an open bound.
	Slice(start, end Value) (Value, error)
}

// Castable is implemented by values that can be converted to another type.
type Castable interface {
	CastTo(target DataType) (Value, error)
}

// Unary is implemented by values supporting prefix operators.
type Unary interface {
	Unary(op UnaryOperator) (Value, error)
}

// IsNull reports whether v is the Null variant. A nil Value counts as Null.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}
