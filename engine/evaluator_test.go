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

package engine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rulego/gitsql/ast"
	"github.com/rulego/gitsql/environment"
	"github.com/rulego/gitsql/functions"
	"github.com/rulego/gitsql/logger"
	"github.com/rulego/gitsql/types"
	"github.com/rulego/gitsql/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnv(opts ...environment.Option) *environment.Environment {
	opts = append([]environment.Option{environment.WithLogger(logger.NewDiscardLogger())}, opts...)
	return environment.New(functions.NewStandardRegistry(), opts...)
}

func sym(name string) ast.Expr    { return &ast.Symbol{Name: name} }
func str(s string) ast.Expr       { return &ast.String{Value: s} }
func boolean(b bool) ast.Expr     { return &ast.Boolean{IsTrue: b} }
func global(name string) ast.Expr { return &ast.GlobalVariable{Name: name} }
func assign(name string, v ast.Expr) ast.Expr {
	return &ast.Assignment{Symbol: name, Value: v}
}

func intArray(items ...int64) ast.Expr {
	exprs := make([]ast.Expr, len(items))
	for i, item := range items {
		exprs[i] = ast.Int(item)
	}
	return &ast.Array{Values: exprs, ElementType: values.IntType}
}

func TestEvaluateScenarios(t *testing.T) {
	titles := []string{"a", "b", "name", "point", "empty"}
	row := []values.Value{
		values.NewInteger(3),
		values.NewInteger(4),
		values.NewText("gitsql"),
		values.NewComposite("point", map[string]values.Value{
			"x": values.NewInteger(1),
			"y": values.NewInteger(2),
		}),
		nil,
	}

	tests := []struct {
		name     string
		expr     ast.Expr
		expected values.Value
		errKind  values.ErrorKind
		wantErr  bool
	}{
		{
			name: "precedence from tree shape",
			expr: &ast.Arithmetic{Left: sym("a"), Operator: values.OpPlus,
				Right: &ast.Arithmetic{Left: sym("b"), Operator: values.OpStar, Right: ast.Int(2)}},
			expected: values.NewInteger(11),
		},
		{name: "column wrapper", expr: &ast.Column{Expr: sym("b")}, expected: values.NewInteger(4)},
		{name: "nil cell is null", expr: sym("empty"), expected: values.Null{}},
		{name: "unknown column", expr: sym("c"), wantErr: true, errKind: values.ErrorUnknownColumn},
		{name: "undefined global", expr: global("nope"), wantErr: true, errKind: values.ErrorUndefinedVariable},
		{name: "string literal", expr: str("x"), expected: values.NewText("x")},
		{name: "float literal", expr: ast.Float(1.5), expected: values.NewFloat(1.5)},
		{name: "null literal", expr: &ast.Null{}, expected: values.Null{}},
		{
			name:     "interval literal",
			expr:     &ast.Interval{Interval: values.Interval{Days: 2}},
			expected: values.Interval{Days: 2},
		},
		{
			name:     "cast text to integer",
			expr:     &ast.Cast{Value: str("42"), ResultType: values.IntType},
			expected: values.NewInteger(42),
		},
		{
			name:    "cast failure",
			expr:    &ast.Cast{Value: str("abc"), ResultType: values.IntType},
			wantErr: true, errKind: values.ErrorInvalidCast,
		},
		{
			name:     "slice open end",
			expr:     &ast.Slice{Collection: intArray(1, 2, 3), Start: ast.Int(1)},
			expected: values.NewArray(values.IntType, values.NewInteger(2), values.NewInteger(3)),
		},
		{
			name:     "index",
			expr:     &ast.Index{Collection: intArray(1, 2, 3), Index: ast.Int(2)},
			expected: values.NewInteger(3),
		},
		{
			name:    "index out of range",
			expr:    &ast.Index{Collection: intArray(1), Index: ast.Int(5)},
			wantErr: true, errKind: values.ErrorIndexOutOfRange,
		},
		{
			name:     "member access",
			expr:     &ast.MemberAccess{Composite: sym("point"), MemberName: "x"},
			expected: values.NewInteger(1),
		},
		{
			name:    "unknown member",
			expr:    &ast.MemberAccess{Composite: sym("point"), MemberName: "z"},
			wantErr: true, errKind: values.ErrorUnknownMember,
		},
		{
			name:    "member of scalar",
			expr:    &ast.MemberAccess{Composite: sym("a"), MemberName: "x"},
			wantErr: true, errKind: values.ErrorNotAComposite,
		},
		{
			name:     "negation",
			expr:     &ast.PrefixUnary{Operator: values.OpNegative, Right: sym("a")},
			expected: values.NewInteger(-3),
		},
		{
			name:     "comparison",
			expr:     &ast.Comparison{Left: sym("a"), Operator: values.OpLess, Right: sym("b")},
			expected: values.NewBoolean(true),
		},
		{
			name:    "incomparable comparison",
			expr:    &ast.Comparison{Left: sym("a"), Operator: values.OpLess, Right: sym("name")},
			wantErr: true, errKind: values.ErrorNotComparable,
		},
		{
			name: "group comparison any",
			expr: &ast.GroupComparison{Left: ast.Int(2), Comparison: values.OpGreater,
				Group: values.GroupAny, Right: intArray(1, 5)},
			expected: values.NewBoolean(true),
		},
		{
			name: "group comparison all",
			expr: &ast.GroupComparison{Left: ast.Int(2), Comparison: values.OpGreater,
				Group: values.GroupAll, Right: intArray(1, 5)},
			expected: values.NewBoolean(false),
		},
		{
			name: "group comparison needs a collection",
			expr: &ast.GroupComparison{Left: ast.Int(2), Comparison: values.OpGreater,
				Group: values.GroupAll, Right: ast.Int(1)},
			wantErr: true, errKind: values.ErrorTypeMismatch,
		},
		{
			name:     "bitwise",
			expr:     &ast.Bitwise{Left: ast.Int(6), Operator: values.OpBitAnd, Right: ast.Int(3)},
			expected: values.NewInteger(2),
		},
		{
			name:     "contains",
			expr:     &ast.Contains{Left: intArray(1, 2), Right: ast.Int(2)},
			expected: values.NewBoolean(true),
		},
		{
			name:     "contained by",
			expr:     &ast.ContainedBy{Left: ast.Int(3), Right: intArray(1, 2)},
			expected: values.NewBoolean(false),
		},
		{
			name:     "like",
			expr:     &ast.Like{Input: sym("name"), Pattern: str("GIT%")},
			expected: values.NewBoolean(true),
		},
		{
			name:     "regexp",
			expr:     &ast.Regex{Input: sym("name"), Pattern: str("^g.t")},
			expected: values.NewBoolean(true),
		},
		{
			name:     "glob",
			expr:     &ast.Glob{Input: sym("name"), Pattern: str("*sql")},
			expected: values.NewBoolean(true),
		},
		{
			name:    "invalid regexp",
			expr:    &ast.Regex{Input: sym("name"), Pattern: str("(")},
			wantErr: true, errKind: values.ErrorInvalidPattern,
		},
		{
			name:     "is null",
			expr:     &ast.IsNull{Argument: sym("empty")},
			expected: values.NewBoolean(true),
		},
		{
			name:     "is not null",
			expr:     &ast.IsNull{Argument: sym("point"), HasNot: true},
			expected: values.NewBoolean(true),
		},
		{
			name:     "function call",
			expr:     &ast.Call{FunctionName: "UPPER", Arguments: []ast.Expr{sym("name")}},
			expected: values.NewText("GITSQL"),
		},
		{
			name:     "function call with null argument",
			expr:     &ast.Call{FunctionName: "upper", Arguments: []ast.Expr{&ast.Null{}}},
			expected: values.Null{},
		},
		{
			name:    "unknown function",
			expr:    &ast.Call{FunctionName: "no_such_fn"},
			wantErr: true, errKind: values.ErrorUnknownFunction,
		},
		{
			name:     "row construction",
			expr:     &ast.Row{Exprs: []ast.Expr{sym("a"), sym("name")}},
			expected: values.NewRow(nil, values.NewInteger(3), values.NewText("gitsql")),
		},
		{
			name:    "division by zero",
			expr:    &ast.Arithmetic{Left: sym("a"), Operator: values.OpSlash, Right: ast.Int(0)},
			wantErr: true,
			errKind: values.ErrorDivisionByZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Evaluate(newEnv(), tt.expr, titles, row)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, values.IsKind(err, tt.errKind), "got %v", err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equals(result), "expected %s, got %s", tt.expected.Literal(), result.Literal())
			assert.Equal(t, tt.expected.DataType().String(), result.DataType().String())
		})
	}
}

func TestLogicalDoesNotShortCircuit(t *testing.T) {
	env := newEnv()

	expr := &ast.Logical{Left: assign("x", boolean(true)), Operator: values.OpOr, Right: assign("x", boolean(false))}
	result, err := Evaluate(env, expr, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, values.NewBoolean(true), result)
	x, ok := env.Global("x")
	require.True(t, ok)
	assert.Equal(t, values.NewBoolean(false), x)

	expr = &ast.Logical{Left: boolean(false), Operator: values.OpAnd, Right: assign("y", boolean(true))}
	result, err = Evaluate(env, expr, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, values.NewBoolean(false), result)
	y, ok := env.Global("y")
	require.True(t, ok)
	assert.Equal(t, values.NewBoolean(true), y)
}

func TestAssignmentVisibleLaterInTree(t *testing.T) {
	env := newEnv()
	expr := &ast.Arithmetic{Left: assign("n", ast.Int(20)), Operator: values.OpPlus, Right: global("n")}
	result, err := Evaluate(env, expr, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, values.NewInteger(40), result)

	// 后续行可见
	result, err = Evaluate(env, global("n"), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, values.NewInteger(20), result)
}

func TestCase(t *testing.T) {
	env := newEnv()

	shortCircuit := &ast.Case{
		Conditions: []ast.Expr{boolean(true), assign("z", boolean(true))},
		Values:     []ast.Expr{ast.Int(1), ast.Int(2)},
	}
	result, err := Evaluate(env, shortCircuit, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, values.NewInteger(1), result)
	_, ok := env.Global("z")
	assert.False(t, ok, "second condition must not run")

	nullCondition := &ast.Case{
		Conditions:   []ast.Expr{&ast.Null{}},
		Values:       []ast.Expr{ast.Int(1)},
		DefaultValue: str("default"),
	}
	result, err = Evaluate(env, nullCondition, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, values.NewText("default"), result)

	noDefault := &ast.Case{Conditions: []ast.Expr{boolean(false)}, Values: []ast.Expr{ast.Int(1)}}
	_, err = Evaluate(env, noDefault, nil, nil)
	assert.True(t, values.IsKind(err, values.ErrorMissingDefault))
	assert.True(t, errors.Is(err, values.ErrMissingDefault))

	// 非布尔条件视为未命中
	notBoolean := &ast.Case{
		Conditions:   []ast.Expr{ast.Int(1)},
		Values:       []ast.Expr{ast.Int(1)},
		DefaultValue: str("default"),
	}
	result, err = Evaluate(env, notBoolean, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, values.NewText("default"), result)

	notBooleanNoDefault := &ast.Case{Conditions: []ast.Expr{str("yes")}, Values: []ast.Expr{ast.Int(1)}}
	_, err = Evaluate(env, notBooleanNoDefault, nil, nil)
	assert.True(t, values.IsKind(err, values.ErrorMissingDefault))
}

func TestBetween(t *testing.T) {
	env := newEnv()
	between := func(v, start, end ast.Expr, kind ast.BetweenKind) (values.Value, error) {
		return Evaluate(env, &ast.Between{Value: v, RangeStart: start, RangeEnd: end, Mode: kind}, nil, nil)
	}

	result, err := between(ast.Int(5), ast.Int(10), ast.Int(1), ast.Asymmetric)
	require.NoError(t, err)
	assert.Equal(t, values.NewBoolean(false), result)

	result, err = between(ast.Int(5), ast.Int(10), ast.Int(1), ast.Symmetric)
	require.NoError(t, err)
	assert.Equal(t, values.NewBoolean(true), result)

	// 对称模式与边界顺序无关
	points := []int64{-1, 0, 1, 2, 3, 5}
	for _, v := range points {
		for _, x := range points {
			for _, y := range points {
				forward, err := between(ast.Int(v), ast.Int(x), ast.Int(y), ast.Symmetric)
				require.NoError(t, err)
				backward, err := between(ast.Int(v), ast.Int(y), ast.Int(x), ast.Symmetric)
				require.NoError(t, err)
				assert.Equal(t, forward, backward, "v=%d x=%d y=%d", v, x, y)
			}
		}
	}

	result, err = between(&ast.Null{}, ast.Int(1), ast.Int(2), ast.Asymmetric)
	require.NoError(t, err)
	assert.Equal(t, values.Null{}, result)

	// Null 先于可比性检查
	result, err = between(&ast.Null{}, str("a"), ast.Int(2), ast.Asymmetric)
	require.NoError(t, err)
	assert.Equal(t, values.Null{}, result)

	_, err = between(str("a"), ast.Int(1), ast.Int(2), ast.Asymmetric)
	assert.True(t, values.IsKind(err, values.ErrorNotComparable))

	_, err = between(ast.Int(1), str("a"), ast.Int(2), ast.Symmetric)
	assert.True(t, values.IsKind(err, values.ErrorNotComparable))
}

func TestInIsComplementary(t *testing.T) {
	env := newEnv()
	candidates := []ast.Expr{ast.Int(1), str("two"), ast.Float(3.5), &ast.Null{}}
	args := []ast.Expr{ast.Int(1), str("two"), str("TWO"), ast.Float(3.5), ast.Int(4), &ast.Null{}}

	for _, arg := range args {
		in, err := Evaluate(env, &ast.In{Argument: arg, Values: candidates}, nil, nil)
		require.NoError(t, err)
		notIn, err := Evaluate(env, &ast.In{Argument: arg, Values: candidates, HasNotKeyword: true}, nil, nil)
		require.NoError(t, err)
		assert.NotEqual(t, values.IsTrue(in), values.IsTrue(notIn), ast.Sprint(arg))
	}

	result, err := Evaluate(env, &ast.In{Argument: ast.Int(4), Values: candidates}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, values.NewBoolean(false), result)
}

func TestInStopsAtFirstMatch(t *testing.T) {
	env := newEnv()
	expr := &ast.In{Argument: ast.Int(1), Values: []ast.Expr{ast.Int(1), assign("later", ast.Int(2))}}
	result, err := Evaluate(env, expr, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, values.NewBoolean(true), result)
	_, ok := env.Global("later")
	assert.False(t, ok)
}

func TestBenchmark(t *testing.T) {
	env := newEnv()
	env.SetGlobal("n", values.NewInteger(0))
	counter := assign("n", &ast.Arithmetic{Left: global("n"), Operator: values.OpPlus, Right: ast.Int(1)})

	result, err := Evaluate(env, &ast.BenchmarkCall{Count: ast.Int(3), Expression: counter}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, values.NewInteger(0), result)
	n, _ := env.Global("n")
	assert.Equal(t, values.NewInteger(3), n)

	result, err = Evaluate(env, &ast.BenchmarkCall{Count: ast.Int(-2), Expression: counter}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, values.NewInteger(0), result)
	n, _ = env.Global("n")
	assert.Equal(t, values.NewInteger(3), n)

	_, err = Evaluate(env, &ast.BenchmarkCall{Count: str("3"), Expression: counter}, nil, nil)
	assert.True(t, values.IsKind(err, values.ErrorTypeMismatch))

	failing := &ast.BenchmarkCall{Count: ast.Int(2), Expression: sym("missing")}
	_, err = Evaluate(env, failing, nil, nil)
	assert.True(t, values.IsKind(err, values.ErrorUnknownColumn))
}

func TestBenchmarkLimit(t *testing.T) {
	env := newEnv(environment.WithConfig(types.StrictConfig()))
	expr := &ast.BenchmarkCall{Count: ast.Int(types.StrictConfig().MaxBenchmarkCount + 1), Expression: &ast.Null{}}
	_, err := Evaluate(env, expr, nil, nil)
	assert.True(t, values.IsKind(err, values.ErrorInvalidOperation))
}

func TestFunctionErrors(t *testing.T) {
	registry := functions.NewFunctionRegistry()
	require.NoError(t, registry.RegisterCustom("fail", functions.TypeCustom, "test", "always fails", 0, 0,
		func(ctx *functions.FunctionContext, args []values.Value) (values.Value, error) {
			return nil, errors.New("boom")
		}))
	require.NoError(t, registry.RegisterCustom("first_title", functions.TypeCustom, "test", "first title", 0, 0,
		func(ctx *functions.FunctionContext, args []values.Value) (values.Value, error) {
			return values.NewText(ctx.Titles[0]), nil
		}))
	env := environment.New(registry, environment.WithLogger(logger.NewDiscardLogger()))

	_, err := Evaluate(env, &ast.Call{FunctionName: "fail"}, nil, nil)
	require.Error(t, err)
	assert.True(t, values.IsKind(err, values.ErrorInvalidOperation))
	assert.Contains(t, err.Error(), "boom")

	_, err = Evaluate(env, &ast.Call{FunctionName: "fail", Arguments: []ast.Expr{ast.Int(1)}}, nil, nil)
	assert.True(t, values.IsKind(err, values.ErrorInvalidOperation))

	result, err := Evaluate(env, &ast.Call{FunctionName: "first_title"}, []string{"commit"}, []values.Value{values.Null{}})
	require.NoError(t, err)
	assert.Equal(t, values.NewText("commit"), result)

	_, err = Evaluate(env, &ast.Call{FunctionName: "upper"}, nil, nil)
	assert.True(t, values.IsKind(err, values.ErrorUnknownFunction))
}

func TestArgumentsEvaluatedBeforeLookup(t *testing.T) {
	env := newEnv()
	expr := &ast.Call{FunctionName: "missing_fn", Arguments: []ast.Expr{assign("arg", ast.Int(1))}}
	_, err := Evaluate(env, expr, nil, nil)
	assert.True(t, values.IsKind(err, values.ErrorUnknownFunction))
	_, ok := env.Global("arg")
	assert.True(t, ok)
}

func TestEvaluateDoesNotMutateRow(t *testing.T) {
	arr := values.NewArray(values.IntType, values.NewInteger(1), values.NewInteger(2))
	row := []values.Value{arr}
	env := newEnv()

	_, err := Evaluate(env, assign("copy", sym("arr")), []string{"arr"}, row)
	require.NoError(t, err)
	stored, _ := env.Global("copy")
	stored.(values.Array).Values[0] = values.NewInteger(9)
	assert.Equal(t, "[1, 2]", row[0].Literal())
}

func TestFailuresAreLogged(t *testing.T) {
	var buf bytes.Buffer
	env := environment.New(nil, environment.WithLogger(logger.NewLogger(logger.DEBUG, &buf)))
	_, err := Evaluate(env, sym("ghost"), nil, nil)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "evaluate ghost")

	_, err = Evaluate(nil, sym("ghost"), nil, nil)
	assert.True(t, values.IsKind(err, values.ErrorInvalidOperation))

	_, err = Evaluate(env, nil, nil, nil)
	assert.True(t, values.IsKind(err, values.ErrorInvalidOperation))
}
