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

// BaseFunction 基础函数实现，提供名称、分类与参数个数校验
type BaseFunction struct {
	name          string
	fnType        FunctionType
	category      string
	description   string
	minArgs       int
	maxArgs       int // -1 表示不限
	propagateNull bool
}

// NewBaseFunction 创建基础函数
func NewBaseFunction(name string, fnType FunctionType, category, description string, minArgs, maxArgs int) *BaseFunction {
	return &BaseFunction{
		name:        name,
		fnType:      fnType,
		category:    category,
		description: description,
		minArgs:     minArgs,
		maxArgs:     maxArgs,
	}
}

// NullPropagating marks the function as returning NULL for any NULL argument.
func (bf *BaseFunction) NullPropagating() *BaseFunction {
	bf.propagateNull = true
	return bf
}

func (bf *BaseFunction) GetName() string        { return bf.name }
func (bf *BaseFunction) GetType() FunctionType  { return bf.fnType }
func (bf *BaseFunction) GetCategory() string    { return bf.category }
func (bf *BaseFunction) GetDescription() string { return bf.description }
func (bf *BaseFunction) PropagatesNull() bool   { return bf.propagateNull }

// Validate 默认只校验参数个数
func (bf *BaseFunction) Validate(args []values.Value) error {
	return bf.ValidateArgCount(args)
}

// ValidateArgCount 验证参数数量
func (bf *BaseFunction) ValidateArgCount(args []values.Value) error {
	argCount := len(args)
	if argCount < bf.minArgs {
		return values.NewError(values.ErrorInvalidOperation, "function %s requires at least %d arguments, got %d", bf.name, bf.minArgs, argCount)
	}
	if bf.maxArgs != -1 && argCount > bf.maxArgs {
		return values.NewError(values.ErrorInvalidOperation, "function %s accepts at most %d arguments, got %d", bf.name, bf.maxArgs, argCount)
	}
	return nil
}

func anyNull(args []values.Value) bool {
	for _, arg := range args {
		if values.IsNull(arg) {
			return true
		}
	}
	return false
}

func argError(fn string, index int, want string, got values.Value) error {
	return values.NewError(values.ErrorTypeMismatch, "%s: argument %d must be %s, got %s", fn, index+1, want, got.DataType())
}

// textArg reads a Text argument.
func textArg(fn string, args []values.Value, index int) (string, error) {
	t, ok := args[index].(values.Text)
	if !ok {
		return "", argError(fn, index, "Text", args[index])
	}
	return t.Value, nil
}

// intArg reads an Integer argument.
func intArg(fn string, args []values.Value, index int) (int64, error) {
	i, ok := args[index].(values.Integer)
	if !ok {
		return 0, argError(fn, index, "Integer", args[index])
	}
	return i.Value, nil
}

// floatArg reads an Integer or Float argument as float64.
func floatArg(fn string, args []values.Value, index int) (float64, error) {
	switch v := args[index].(type) {
	case values.Integer:
		return float64(v.Value), nil
	case values.Float:
		return v.Value, nil
	}
	return 0, argError(fn, index, "a number", args[index])
}

// arrayArg reads an Array argument.
func arrayArg(fn string, args []values.Value, index int) (values.Array, error) {
	a, ok := args[index].(values.Array)
	if !ok {
		return values.Array{}, argError(fn, index, "Array", args[index])
	}
	if a.ElementType == nil {
		a.ElementType = values.AnyType
	}
	return a, nil
}

// dateTimeArg reads a DateTime argument, casting Text and Integer inputs.
func dateTimeArg(fn string, args []values.Value, index int) (values.DateTime, error) {
	switch v := args[index].(type) {
	case values.DateTime:
		return v, nil
	case values.Text, values.Integer:
		converted, err := values.Cast(v, values.DateTimeType)
		if err != nil {
			return values.DateTime{}, err
		}
		return converted.(values.DateTime), nil
	}
	return values.DateTime{}, argError(fn, index, "DateTime", args[index])
}
