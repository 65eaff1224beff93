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

// Package ast defines the expression tree consumed by the evaluator.
//
// The node set is closed: every node implements Expr through an unexported
// marker method, and Kind reports a discriminant that mirrors the concrete
// type. Trees are built by a parser outside this module and are treated as
// immutable while they are evaluated.
package ast

import (
	"bytes"

	"github.com/rulego/gitsql/values"
)

// ExprKind 表达式节点类型
type ExprKind int

const (
	KindAssignment ExprKind = iota
	KindString
	KindSymbol
	KindColumn
	KindArray
	KindGlobalVariable
	KindNumber
	KindBoolean
	KindInterval
	KindNull
	KindPrefixUnary
	KindIndex
	KindSlice
	KindArithmetic
	KindComparison
	KindGroupComparison
	KindContains
	KindContainedBy
	KindLike
	KindRegex
	KindGlob
	KindLogical
	KindBitwise
	KindCall
	KindBenchmarkCall
	KindBetween
	KindCase
	KindIn
	KindIsNull
	KindCast
	KindRow
	KindMemberAccess
)

var kindNames = [...]string{
	KindAssignment:      "Assignment",
	KindString:          "String",
	KindSymbol:          "Symbol",
	KindColumn:          "Column",
	KindArray:           "Array",
	KindGlobalVariable:  "GlobalVariable",
	KindNumber:          "Number",
	KindBoolean:         "Boolean",
	KindInterval:        "Interval",
	KindNull:            "Null",
	KindPrefixUnary:     "PrefixUnary",
	KindIndex:           "Index",
	KindSlice:           "Slice",
	KindArithmetic:      "Arithmetic",
	KindComparison:      "Comparison",
	KindGroupComparison: "GroupComparison",
	KindContains:        "Contains",
	KindContainedBy:     "ContainedBy",
	KindLike:            "Like",
	KindRegex:           "Regex",
	KindGlob:            "Glob",
	KindLogical:         "Logical",
	KindBitwise:         "Bitwise",
	KindCall:            "Call",
	KindBenchmarkCall:   "BenchmarkCall",
	KindBetween:         "Between",
	KindCase:            "Case",
	KindIn:              "In",
	KindIsNull:          "IsNull",
	KindCast:            "Cast",
	KindRow:             "Row",
	KindMemberAccess:    "MemberAccess",
}

func (k ExprKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Expr 是所有表达式节点的基础接口
type Expr interface {
	Kind() ExprKind
	// Format 将节点格式化为 SQL 文本
	Format(buf *bytes.Buffer)
	exprNode()
}

// Assignment stores the value of Value into the global variable Symbol and
// yields that value.
type Assignment struct {
	Symbol string
	Value  Expr
}

// String 字符串字面量
type String struct {
	Value string
}

// Symbol references a column of the current row by title.
type Symbol struct {
	Name string
}

// Column wraps an expression that produces a derived column.
type Column struct {
	Expr Expr
}

// Array 数组构造表达式
type Array struct {
	Values      []Expr
	ElementType values.DataType
}

// GlobalVariable reads @Name from the environment.
type GlobalVariable struct {
	Name string
}

// Number is an Integer literal, or a Float literal when IsFloat is set.
type Number struct {
	Int     int64
	Float   float64
	IsFloat bool
}

// Boolean 布尔字面量
type Boolean struct {
	IsTrue bool
}

// Interval 区间字面量
type Interval struct {
	Interval values.Interval
}

// Null 空值字面量
type Null struct{}

// PrefixUnary 前缀一元表达式
type PrefixUnary struct {
	Operator values.UnaryOperator
	Right    Expr
}

// Index is Collection[Index].
type Index struct {
	Collection Expr
	Index      Expr
}

// Slice is Collection[Start:End]. A nil bound is open.
type Slice struct {
	Collection Expr
	Start      Expr
	End        Expr
}

// Arithmetic 算术表达式
type Arithmetic struct {
	Left     Expr
	Operator values.ArithmeticOperator
	Right    Expr
}

// Comparison 比较表达式
type Comparison struct {
	Left     Expr
	Operator values.ComparisonOperator
	Right    Expr
}

// GroupComparison compares Left with every element of Right and reduces
// the results with ANY or ALL.
type GroupComparison struct {
	Left       Expr
	Comparison values.ComparisonOperator
	Group      values.GroupOperator
	Right      Expr
}

// Contains is Left @> Right.
type Contains struct {
	Left  Expr
	Right Expr
}

// ContainedBy is Left <@ Right, Contains with the operands swapped.
type ContainedBy struct {
	Left  Expr
	Right Expr
}

// Like 表达式
type Like struct {
	Input   Expr
	Pattern Expr
}

// Regex 表达式
type Regex struct {
	Input   Expr
	Pattern Expr
}

// Glob 表达式
type Glob struct {
	Input   Expr
	Pattern Expr
}

// Logical 逻辑表达式，两侧总是都会被求值
type Logical struct {
	Left     Expr
	Operator values.LogicalOperator
	Right    Expr
}

// Bitwise 位运算表达式
type Bitwise struct {
	Left     Expr
	Operator values.BitwiseOperator
	Right    Expr
}

// Call 函数调用
type Call struct {
	FunctionName string
	Arguments    []Expr
}

// BenchmarkCall evaluates Expression Count times and yields zero.
type BenchmarkCall struct {
	Count      Expr
	Expression Expr
}

// BetweenKind 区分 SYMMETRIC 与 ASYMMETRIC
type BetweenKind int

const (
	Asymmetric BetweenKind = iota
	Symmetric
)

// Between 范围表达式
type Between struct {
	Value      Expr
	RangeStart Expr
	RangeEnd   Expr
	Mode       BetweenKind
}

// Case holds parallel Conditions and Values. DefaultValue may be nil.
type Case struct {
	Conditions   []Expr
	Values       []Expr
	DefaultValue Expr
}

// In 表达式
type In struct {
	Argument      Expr
	Values        []Expr
	HasNotKeyword bool
}

// IsNull 表达式
type IsNull struct {
	Argument Expr
	HasNot   bool
}

// Cast 类型转换
type Cast struct {
	Value      Expr
	ResultType values.DataType
}

// Row 行构造表达式
type Row struct {
	Exprs   []Expr
	RowType values.RowType
}

// MemberAccess reads MemberName from a composite value.
type MemberAccess struct {
	Composite  Expr
	MemberName string
}

func (*Assignment) Kind() ExprKind      { return KindAssignment }
func (*String) Kind() ExprKind          { return KindString }
func (*Symbol) Kind() ExprKind          { return KindSymbol }
func (*Column) Kind() ExprKind          { return KindColumn }
func (*Array) Kind() ExprKind           { return KindArray }
func (*GlobalVariable) Kind() ExprKind  { return KindGlobalVariable }
func (*Number) Kind() ExprKind          { return KindNumber }
func (*Boolean) Kind() ExprKind         { return KindBoolean }
func (*Interval) Kind() ExprKind        { return KindInterval }
func (*Null) Kind() ExprKind            { return KindNull }
func (*PrefixUnary) Kind() ExprKind     { return KindPrefixUnary }
func (*Index) Kind() ExprKind           { return KindIndex }
func (*Slice) Kind() ExprKind           { return KindSlice }
func (*Arithmetic) Kind() ExprKind      { return KindArithmetic }
func (*Comparison) Kind() ExprKind      { return KindComparison }
func (*GroupComparison) Kind() ExprKind { return KindGroupComparison }
func (*Contains) Kind() ExprKind        { return KindContains }
func (*ContainedBy) Kind() ExprKind     { return KindContainedBy }
func (*Like) Kind() ExprKind            { return KindLike }
func (*Regex) Kind() ExprKind           { return KindRegex }
func (*Glob) Kind() ExprKind            { return KindGlob }
func (*Logical) Kind() ExprKind         { return KindLogical }
func (*Bitwise) Kind() ExprKind         { return KindBitwise }
func (*Call) Kind() ExprKind            { return KindCall }
func (*BenchmarkCall) Kind() ExprKind   { return KindBenchmarkCall }
func (*Between) Kind() ExprKind         { return KindBetween }
func (*Case) Kind() ExprKind            { return KindCase }
func (*In) Kind() ExprKind              { return KindIn }
func (*IsNull) Kind() ExprKind          { return KindIsNull }
func (*Cast) Kind() ExprKind            { return KindCast }
func (*Row) Kind() ExprKind             { return KindRow }
func (*MemberAccess) Kind() ExprKind    { return KindMemberAccess }

func (*Assignment) exprNode()      {}
func (*String) exprNode()          {}
func (*Symbol) exprNode()          {}
func (*Column) exprNode()          {}
func (*Array) exprNode()           {}
func (*GlobalVariable) exprNode()  {}
func (*Number) exprNode()          {}
func (*Boolean) exprNode()         {}
func (*Interval) exprNode()        {}
func (*Null) exprNode()            {}
func (*PrefixUnary) exprNode()     {}
func (*Index) exprNode()           {}
func (*Slice) exprNode()           {}
func (*Arithmetic) exprNode()      {}
func (*Comparison) exprNode()      {}
func (*GroupComparison) exprNode() {}
func (*Contains) exprNode()        {}
func (*ContainedBy) exprNode()     {}
func (*Like) exprNode()            {}
func (*Regex) exprNode()           {}
func (*Glob) exprNode()            {}
func (*Logical) exprNode()         {}
func (*Bitwise) exprNode()         {}
func (*Call) exprNode()            {}
func (*BenchmarkCall) exprNode()   {}
func (*Between) exprNode()         {}
func (*Case) exprNode()            {}
func (*In) exprNode()              {}
func (*IsNull) exprNode()          {}
func (*Cast) exprNode()            {}
func (*Row) exprNode()             {}
func (*MemberAccess) exprNode()    {}

// Int returns an Integer number literal.
func Int(i int64) *Number { return &Number{Int: i} }

// Float returns a Float number literal.
func Float(f float64) *Number { return &Number{Float: f, IsFloat: true} }

// Value returns the literal as a runtime value.
func (n *Number) Value() values.Value {
	if n.IsFloat {
		return values.NewFloat(n.Float)
	}
	return values.NewInteger(n.Int)
}
