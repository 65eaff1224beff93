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

package condition

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rulego/gitsql/values"
)

// Condition is a boolean predicate over one row.
type Condition interface {
	Evaluate(titles []string, row []values.Value) bool
}

// ExprCondition is a Condition compiled with expr-lang.
type ExprCondition struct {
	source  string
	program *vm.Program
}

// NewExprCondition compiles expression. Columns are referenced by title;
// unknown names evaluate to nil.
func NewExprCondition(expression string) (*ExprCondition, error) {
	options := []expr.Option{
		expr.Function("like_match", patternFunction("like_match", values.MatchLike)),
		expr.Function("regexp_match", patternFunction("regexp_match", values.MatchRegexp)),
		expr.Function("glob_match", patternFunction("glob_match", values.MatchGlob)),
		expr.Function("is_null", func(params ...any) (any, error) {
			if len(params) != 1 {
				return false, fmt.Errorf("is_null function requires 1 parameter")
			}
			return params[0] == nil, nil
		}),
		expr.Function("is_not_null", func(params ...any) (any, error) {
			if len(params) != 1 {
				return false, fmt.Errorf("is_not_null function requires 1 parameter")
			}
			return params[0] != nil, nil
		}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, fmt.Errorf("compile condition %q: %w", expression, err)
	}
	return &ExprCondition{source: expression, program: program}, nil
}

// patternFunction adapts a values matcher to an expr-lang function. A nil
// operand never matches.
func patternFunction(name string, match func(text, pattern string) (bool, error)) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		if len(params) != 2 {
			return false, fmt.Errorf("%s function requires 2 parameters", name)
		}
		if params[0] == nil || params[1] == nil {
			return false, nil
		}
		text, ok1 := params[0].(string)
		pattern, ok2 := params[1].(string)
		if !ok1 || !ok2 {
			return false, fmt.Errorf("%s function requires string parameters", name)
		}
		return match(text, pattern)
	}
}

// String returns the source expression.
func (ec *ExprCondition) String() string { return ec.source }

// Evaluate reports whether the row satisfies the condition. Runtime errors
// count as false.
func (ec *ExprCondition) Evaluate(titles []string, row []values.Value) bool {
	ok, err := ec.Run(RowEnv(titles, row))
	return err == nil && ok
}

// Run evaluates the program against a prepared environment.
func (ec *ExprCondition) Run(env map[string]interface{}) (bool, error) {
	result, err := expr.Run(ec.program, env)
	if err != nil {
		return false, err
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("condition %q returned %T", ec.source, result)
	}
	return b, nil
}

// RowEnv projects a row into the map the expr-lang program reads. Later
// duplicate titles shadow earlier ones.
func RowEnv(titles []string, row []values.Value) map[string]interface{} {
	env := make(map[string]interface{}, len(titles))
	for i, title := range titles {
		if i < len(row) {
			env[title] = values.Native(row[i])
		} else {
			env[title] = nil
		}
	}
	return env
}
