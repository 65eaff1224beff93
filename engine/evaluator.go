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
	"errors"
	"fmt"

	"github.com/rulego/gitsql/ast"
	"github.com/rulego/gitsql/environment"
	"github.com/rulego/gitsql/functions"
	"github.com/rulego/gitsql/values"
)

// Evaluate evaluates expr against one row. titles and row are parallel:
// row[i] is the value of column titles[i].
func Evaluate(env *environment.Environment, expr ast.Expr, titles []string, row []values.Value) (values.Value, error) {
	if env == nil {
		return nil, values.NewError(values.ErrorInvalidOperation, "nil environment")
	}
	ev := &evaluator{env: env, titles: titles, row: row}
	result, err := ev.eval(expr)
	if err != nil {
		env.Logger().Debug("evaluate %s: %v", ast.Sprint(expr), err)
		return nil, err
	}
	return result, nil
}

// evaluator carries the per-call inputs through the recursion.
type evaluator struct {
	env    *environment.Environment
	titles []string
	row    []values.Value
	fnCtx  *functions.FunctionContext
}

func (ev *evaluator) eval(expr ast.Expr) (values.Value, error) {
	switch e := expr.(type) {
	case nil:
		return nil, values.NewError(values.ErrorInvalidOperation, "missing expression")

	// 字面量
	case *ast.String:
		return values.NewText(e.Value), nil
	case *ast.Number:
		return e.Value(), nil
	case *ast.Boolean:
		return values.NewBoolean(e.IsTrue), nil
	case *ast.Interval:
		return e.Interval, nil
	case *ast.Null:
		return values.Null{}, nil

	case *ast.Symbol:
		return ev.symbol(e.Name)
	case *ast.Column:
		return ev.eval(e.Expr)
	case *ast.GlobalVariable:
		v, ok := ev.env.Global(e.Name)
		if !ok {
			return nil, values.NewError(values.ErrorUndefinedVariable, "global variable @%s is not defined", e.Name)
		}
		return v, nil
	case *ast.Assignment:
		v, err := ev.eval(e.Value)
		if err != nil {
			return nil, err
		}
		ev.env.SetGlobal(e.Symbol, v)
		return v, nil

	case *ast.Array:
		elems, err := ev.evalAll(e.Values)
		if err != nil {
			return nil, err
		}
		return values.NewArray(e.ElementType, elems...), nil
	case *ast.Row:
		elems, err := ev.evalAll(e.Exprs)
		if err != nil {
			return nil, err
		}
		if len(e.RowType.Columns) != len(elems) {
			return values.NewRow(nil, elems...), nil
		}
		rowType := e.RowType
		return values.NewRow(&rowType, elems...), nil

	case *ast.PrefixUnary:
		v, err := ev.eval(e.Right)
		if err != nil {
			return nil, err
		}
		return values.UnaryOp(e.Operator, v)
	case *ast.Arithmetic:
		return ev.binary(e.Left, e.Right, func(l, r values.Value) (values.Value, error) {
			return values.Arithmetic(e.Operator, l, r)
		})
	case *ast.Comparison:
		return ev.binary(e.Left, e.Right, func(l, r values.Value) (values.Value, error) {
			return values.Compare(e.Operator, l, r)
		})
	case *ast.GroupComparison:
		return ev.binary(e.Left, e.Right, func(l, r values.Value) (values.Value, error) {
			return values.GroupCompare(e.Comparison, e.Group, l, r)
		})
	case *ast.Logical:
		// 两侧都求值，不短路
		return ev.binary(e.Left, e.Right, func(l, r values.Value) (values.Value, error) {
			return values.Logical(e.Operator, l, r)
		})
	case *ast.Bitwise:
		return ev.binary(e.Left, e.Right, func(l, r values.Value) (values.Value, error) {
			return values.Bitwise(e.Operator, l, r)
		})
	case *ast.Contains:
		return ev.binary(e.Left, e.Right, values.Contains)
	case *ast.ContainedBy:
		return ev.binary(e.Left, e.Right, func(l, r values.Value) (values.Value, error) {
			return values.Contains(r, l)
		})
	case *ast.Like:
		return ev.match(values.PatternLike, e.Input, e.Pattern)
	case *ast.Regex:
		return ev.match(values.PatternRegexp, e.Input, e.Pattern)
	case *ast.Glob:
		return ev.match(values.PatternGlob, e.Input, e.Pattern)

	case *ast.Index:
		return ev.binary(e.Collection, e.Index, values.Index)
	case *ast.Slice:
		return ev.slice(e)

	case *ast.Call:
		return ev.call(e)
	case *ast.BenchmarkCall:
		return ev.benchmark(e)
	case *ast.Between:
		return ev.between(e)
	case *ast.Case:
		return ev.caseWhen(e)
	case *ast.In:
		return ev.in(e)
	case *ast.IsNull:
		v, err := ev.eval(e.Argument)
		if err != nil {
			return nil, err
		}
		return values.NewBoolean(values.IsNull(v) != e.HasNot), nil
	case *ast.Cast:
		v, err := ev.eval(e.Value)
		if err != nil {
			return nil, err
		}
		return values.Cast(v, e.ResultType)
	case *ast.MemberAccess:
		return ev.member(e)
	}
	return nil, values.NewError(values.ErrorInvalidOperation, "unsupported expression %T", expr)
}

func (ev *evaluator) evalAll(exprs []ast.Expr) ([]values.Value, error) {
	out := make([]values.Value, len(exprs))
	for i, expr := range exprs {
		v, err := ev.eval(expr)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// binary evaluates left then right and combines them with apply.
func (ev *evaluator) binary(left, right ast.Expr, apply func(l, r values.Value) (values.Value, error)) (values.Value, error) {
	l, err := ev.eval(left)
	if err != nil {
		return nil, err
	}
	r, err := ev.eval(right)
	if err != nil {
		return nil, err
	}
	return apply(l, r)
}

func (ev *evaluator) match(kind values.PatternKind, input, pattern ast.Expr) (values.Value, error) {
	return ev.binary(input, pattern, func(l, r values.Value) (values.Value, error) {
		return values.Match(kind, l, r)
	})
}

func (ev *evaluator) symbol(name string) (values.Value, error) {
	for i, title := range ev.titles {
		if title != name {
			continue
		}
		if i >= len(ev.row) {
			break
		}
		if ev.row[i] == nil {
			return values.Null{}, nil
		}
		return ev.row[i].Clone(), nil
	}
	return nil, values.NewError(values.ErrorUnknownColumn, "unknown column %q", name)
}

func (ev *evaluator) slice(e *ast.Slice) (values.Value, error) {
	collection, err := ev.eval(e.Collection)
	if err != nil {
		return nil, err
	}
	var start, end values.Value
	if e.Start != nil {
		if start, err = ev.eval(e.Start); err != nil {
			return nil, err
		}
	}
	if e.End != nil {
		if end, err = ev.eval(e.End); err != nil {
			return nil, err
		}
	}
	return values.Slice(collection, start, end)
}

func (ev *evaluator) functionContext() *functions.FunctionContext {
	if ev.fnCtx == nil {
		ev.fnCtx = ev.env.FunctionContext(ev.titles, ev.row)
	}
	return ev.fnCtx
}

func (ev *evaluator) call(e *ast.Call) (values.Value, error) {
	args, err := ev.evalAll(e.Arguments)
	if err != nil {
		return nil, err
	}
	fn, ok := ev.env.Function(e.FunctionName)
	if !ok {
		return nil, values.NewError(values.ErrorUnknownFunction, "unknown function %s", e.FunctionName)
	}
	result, err := functions.Invoke(fn, ev.functionContext(), args)
	if err != nil {
		var evalErr *values.EvalError
		if errors.As(err, &evalErr) {
			return nil, err
		}
		return nil, values.WrapError(values.ErrorInvalidOperation, err, "%s", e.FunctionName)
	}
	if result == nil {
		return values.Null{}, nil
	}
	return result, nil
}

func (ev *evaluator) benchmark(e *ast.BenchmarkCall) (values.Value, error) {
	countValue, err := ev.eval(e.Count)
	if err != nil {
		return nil, err
	}
	count, ok := countValue.(values.Integer)
	if !ok {
		return nil, values.NewError(values.ErrorTypeMismatch,
			"BENCHMARK count must be %s, got %s", values.IntType, countValue.DataType())
	}
	if limit := ev.env.Config().MaxBenchmarkCount; limit > 0 && count.Value > limit {
		return nil, values.NewError(values.ErrorInvalidOperation,
			"BENCHMARK count %d exceeds the limit %d", count.Value, limit)
	}
	for i := int64(0); i < count.Value; i++ {
		if _, err := ev.eval(e.Expression); err != nil {
			return nil, err
		}
	}
	return values.NewInteger(0), nil
}

func (ev *evaluator) between(e *ast.Between) (values.Value, error) {
	v, err := ev.eval(e.Value)
	if err != nil {
		return nil, err
	}
	start, err := ev.eval(e.RangeStart)
	if err != nil {
		return nil, err
	}
	end, err := ev.eval(e.RangeEnd)
	if err != nil {
		return nil, err
	}
	if values.IsNull(v) || values.IsNull(start) || values.IsNull(end) {
		return values.Null{}, nil
	}

	if e.Mode == ast.Symmetric {
		if ord, ok := start.Compare(end); ok && ord == values.Greater {
			start, end = end, start
		}
	}
	lower, err := values.Order(v, start)
	if err != nil {
		return nil, err
	}
	upper, err := values.Order(v, end)
	if err != nil {
		return nil, err
	}
	return values.NewBoolean(lower != values.Less && upper != values.Greater), nil
}

func (ev *evaluator) caseWhen(e *ast.Case) (values.Value, error) {
	if len(e.Conditions) != len(e.Values) {
		return nil, values.NewError(values.ErrorInvalidOperation,
			"CASE has %d conditions but %d values", len(e.Conditions), len(e.Values))
	}
	for i, condition := range e.Conditions {
		c, err := ev.eval(condition)
		if err != nil {
			return nil, err
		}
		// 只有 Boolean true 命中, Null 和非布尔值都跳过
		if b, ok := c.(values.Boolean); ok && b.Value {
			return ev.eval(e.Values[i])
		}
	}
	if e.DefaultValue == nil {
		return nil, values.NewError(values.ErrorMissingDefault, "no CASE condition matched and there is no ELSE")
	}
	return ev.eval(e.DefaultValue)
}

// in evaluates candidates lazily and stops at the first equal one.
func (ev *evaluator) in(e *ast.In) (values.Value, error) {
	argument, err := ev.eval(e.Argument)
	if err != nil {
		return nil, err
	}
	for _, candidate := range e.Values {
		v, err := ev.eval(candidate)
		if err != nil {
			return nil, err
		}
		if argument.Equals(v) {
			return values.NewBoolean(!e.HasNotKeyword), nil
		}
	}
	return values.NewBoolean(e.HasNotKeyword), nil
}

func (ev *evaluator) member(e *ast.MemberAccess) (values.Value, error) {
	v, err := ev.eval(e.Composite)
	if err != nil {
		return nil, err
	}
	composite, ok := v.(values.Composite)
	if !ok {
		return nil, values.NewError(values.ErrorNotAComposite,
			"cannot access member %s of %s", e.MemberName, v.DataType())
	}
	m, ok := composite.Member(e.MemberName)
	if !ok {
		return nil, values.NewError(values.ErrorUnknownMember,
			"%s has no member %s", describe(composite), e.MemberName)
	}
	return m.Clone(), nil
}

func describe(c values.Composite) string {
	if c.TypeName == "" {
		return "composite"
	}
	return fmt.Sprintf("composite %s", c.TypeName)
}
