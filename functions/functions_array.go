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

// ArrayLengthFunction 数组长度
type ArrayLengthFunction struct {
	*BaseFunction
}

func NewArrayLengthFunction() *ArrayLengthFunction {
	return &ArrayLengthFunction{
		BaseFunction: NewBaseFunction("array_length", TypeArray, "数组函数", "返回数组长度", 1, 1).NullPropagating(),
	}
}

func (f *ArrayLengthFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	arr, err := arrayArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	return values.NewInteger(int64(len(arr.Values))), nil
}

// ArrayContainsFunction 检查数组是否包含指定值
type ArrayContainsFunction struct {
	*BaseFunction
}

func NewArrayContainsFunction() *ArrayContainsFunction {
	return &ArrayContainsFunction{
		BaseFunction: NewBaseFunction("array_contains", TypeArray, "数组函数", "检查数组是否包含指定值", 2, 2),
	}
}

func (f *ArrayContainsFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	if values.IsNull(args[0]) {
		return values.Null{}, nil
	}
	arr, err := arrayArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	return arr.Contains(args[1])
}

// ArrayAppendFunction 追加元素
type ArrayAppendFunction struct {
	*BaseFunction
}

func NewArrayAppendFunction() *ArrayAppendFunction {
	return &ArrayAppendFunction{
		BaseFunction: NewBaseFunction("array_append", TypeArray, "数组函数", "在数组末尾追加元素", 2, 2),
	}
}

func (f *ArrayAppendFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	if values.IsNull(args[0]) {
		return values.Null{}, nil
	}
	arr, err := arrayArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	elementType := arr.ElementType
	if !values.IsNull(args[1]) && !args[1].DataType().Equals(elementType) {
		elementType = values.AnyType
	}
	out := make([]values.Value, 0, len(arr.Values)+1)
	for _, v := range arr.Values {
		out = append(out, v.Clone())
	}
	return values.NewArray(elementType, append(out, args[1].Clone())...), nil
}

// ArrayCatFunction 连接两个数组
type ArrayCatFunction struct {
	*BaseFunction
}

func NewArrayCatFunction() *ArrayCatFunction {
	return &ArrayCatFunction{
		BaseFunction: NewBaseFunction("array_cat", TypeArray, "数组函数", "连接两个数组", 2, 2).NullPropagating(),
	}
}

func (f *ArrayCatFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	left, err := arrayArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	right, err := arrayArg(f.name, args, 1)
	if err != nil {
		return nil, err
	}
	elementType := left.ElementType
	if !elementType.Equals(right.ElementType) {
		elementType = values.AnyType
	}
	out := make([]values.Value, 0, len(left.Values)+len(right.Values))
	for _, v := range left.Values {
		out = append(out, v.Clone())
	}
	for _, v := range right.Values {
		out = append(out, v.Clone())
	}
	return values.NewArray(elementType, out...), nil
}

// ArrayPositionFunction returns the 1-based position of the first element
// equal to the value, or NULL when there is none.
type ArrayPositionFunction struct {
	*BaseFunction
}

func NewArrayPositionFunction() *ArrayPositionFunction {
	return &ArrayPositionFunction{
		BaseFunction: NewBaseFunction("array_position", TypeArray, "数组函数", "返回值在数组中第一次出现的位置", 2, 2),
	}
}

func (f *ArrayPositionFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	if values.IsNull(args[0]) {
		return values.Null{}, nil
	}
	arr, err := arrayArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	for i, v := range arr.Values {
		if v.Equals(args[1]) {
			return values.NewInteger(int64(i + 1)), nil
		}
	}
	return values.Null{}, nil
}
