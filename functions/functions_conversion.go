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
	"strings"

	"github.com/rulego/gitsql/values"
	"github.com/spf13/cast"
)

// TypeOfFunction 返回值的类型名称
type TypeOfFunction struct {
	*BaseFunction
}

func NewTypeOfFunction() *TypeOfFunction {
	return &TypeOfFunction{
		BaseFunction: NewBaseFunction("typeof", TypeConversion, "转换函数", "返回值的类型名称", 1, 1),
	}
}

func (f *TypeOfFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	if args[0] == nil {
		return values.NewText(values.NullType.String()), nil
	}
	return values.NewText(args[0].DataType().String()), nil
}

// castFunction is the function form of CAST for a fixed target type.
type castFunction struct {
	*BaseFunction
	target values.DataType
}

func NewToTextFunction() Function {
	return &castFunction{
		BaseFunction: NewBaseFunction("to_text", TypeConversion, "转换函数", "转换为文本", 1, 1).NullPropagating(),
		target:       values.TextType,
	}
}

func NewToIntFunction() Function {
	return &castFunction{
		BaseFunction: NewBaseFunction("to_int", TypeConversion, "转换函数", "转换为整数", 1, 1).NullPropagating(),
		target:       values.IntType,
	}
}

func NewToFloatFunction() Function {
	return &castFunction{
		BaseFunction: NewBaseFunction("to_float", TypeConversion, "转换函数", "转换为浮点数", 1, 1).NullPropagating(),
		target:       values.FloatType,
	}
}

func (f *castFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	if f.target.Kind() == values.KindText {
		// 任意值都可以用其字面量表示
		if _, ok := args[0].(values.Castable); !ok {
			return values.NewText(args[0].Literal()), nil
		}
	}
	return values.Cast(args[0], f.target)
}

// IsNumericFunction reports whether the argument is a number or a text that
// parses as one.
type IsNumericFunction struct {
	*BaseFunction
}

func NewIsNumericFunction() *IsNumericFunction {
	return &IsNumericFunction{
		BaseFunction: NewBaseFunction("is_numeric", TypeConversion, "转换函数", "检查是否为数值", 1, 1),
	}
}

func (f *IsNumericFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	switch v := args[0].(type) {
	case values.Integer, values.Float:
		return values.NewBoolean(true), nil
	case values.Text:
		s := strings.TrimSpace(v.Value)
		if s == "" {
			return values.NewBoolean(false), nil
		}
		_, err := cast.ToFloat64E(s)
		return values.NewBoolean(err == nil), nil
	}
	return values.NewBoolean(false), nil
}
