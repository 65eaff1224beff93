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

package functions

import (
	"github.com/rulego/gitsql/values"
)

// CoalesceFunction 返回第一个非NULL参数
type CoalesceFunction struct {
	*BaseFunction
}

func NewCoalesceFunction() *CoalesceFunction {
	return &CoalesceFunction{
		BaseFunction: NewBaseFunction("coalesce", TypeConditional, "条件函数", "返回第一个非NULL值", 1, -1),
	}
}

func (f *CoalesceFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	for _, arg := range args {
		if !values.IsNull(arg) {
			return arg, nil
		}
	}
	return values.Null{}, nil
}

// NullIfFunction 两个值相等时返回NULL，否则返回第一个值
type NullIfFunction struct {
	*BaseFunction
}

func NewNullIfFunction() *NullIfFunction {
	return &NullIfFunction{
		BaseFunction: NewBaseFunction("nullif", TypeConditional, "条件函数", "两个值相等时返回NULL", 2, 2),
	}
}

func (f *NullIfFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	if !values.IsNull(args[0]) && args[0].Equals(args[1]) {
		return values.Null{}, nil
	}
	return args[0], nil
}

// IsNullFunction 检查值是否为NULL
type IsNullFunction struct {
	*BaseFunction
}

func NewIsNullFunction() *IsNullFunction {
	return &IsNullFunction{
		BaseFunction: NewBaseFunction("isnull", TypeConditional, "条件函数", "检查值是否为NULL", 1, 1),
	}
}

func (f *IsNullFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	return values.NewBoolean(values.IsNull(args[0])), nil
}

// extremumFunction implements greatest and least. NULL arguments are
// ignored; the result is NULL only when every argument is NULL.
type extremumFunction struct {
	*BaseFunction
	want values.Ordering
}

func NewGreatestFunction() Function {
	return &extremumFunction{
		BaseFunction: NewBaseFunction("greatest", TypeConditional, "条件函数", "返回最大值", 1, -1),
		want:         values.Greater,
	}
}

func NewLeastFunction() Function {
	return &extremumFunction{
		BaseFunction: NewBaseFunction("least", TypeConditional, "条件函数", "返回最小值", 1, -1),
		want:         values.Less,
	}
}

func (f *extremumFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	var best values.Value
	for _, arg := range args {
		if values.IsNull(arg) {
			continue
		}
		if best == nil {
			best = arg
			continue
		}
		ord, err := values.Order(arg, best)
		if err != nil {
			return nil, err
		}
		if ord == f.want {
			best = arg
		}
	}
	if best == nil {
		return values.Null{}, nil
	}
	return best, nil
}

// IfFunction is if(condition, then, else). A NULL condition selects else.
type IfFunction struct {
	*BaseFunction
}

func NewIfFunction() *IfFunction {
	return &IfFunction{
		BaseFunction: NewBaseFunction("if", TypeConditional, "条件函数", "条件为真返回第二个参数，否则返回第三个参数", 3, 3),
	}
}

func (f *IfFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	switch cond := args[0].(type) {
	case values.Boolean:
		if cond.Value {
			return args[1], nil
		}
		return args[2], nil
	case values.Null:
		return args[2], nil
	}
	return nil, argError(f.name, 0, "Boolean", args[0])
}
