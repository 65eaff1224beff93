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

// typeCheckFunction reports whether its argument has one of kinds.
// NULL is never of any kind.
type typeCheckFunction struct {
	*BaseFunction
	kinds []values.Kind
}

func newTypeCheckFunction(name, description string, kinds ...values.Kind) *typeCheckFunction {
	return &typeCheckFunction{
		BaseFunction: NewBaseFunction(name, TypeConversion, "类型检查函数", description, 1, 1),
		kinds:        kinds,
	}
}

func (f *typeCheckFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	if values.IsNull(args[0]) {
		return values.NewBoolean(false), nil
	}
	kind := args[0].DataType().Kind()
	for _, k := range f.kinds {
		if k == kind {
			return values.NewBoolean(true), nil
		}
	}
	return values.NewBoolean(false), nil
}

func NewIsStringFunction() Function {
	return newTypeCheckFunction("is_string", "检查是否为文本类型", values.KindText)
}

func NewIsBoolFunction() Function {
	return newTypeCheckFunction("is_bool", "检查是否为布尔类型", values.KindBool)
}

func NewIsIntegerFunction() Function {
	return newTypeCheckFunction("is_integer", "检查是否为整数类型", values.KindInt)
}

func NewIsFloatFunction() Function {
	return newTypeCheckFunction("is_float", "检查是否为浮点类型", values.KindFloat)
}

func NewIsArrayFunction() Function {
	return newTypeCheckFunction("is_array", "检查是否为数组类型", values.KindArray)
}

func NewIsObjectFunction() Function {
	return newTypeCheckFunction("is_object", "检查是否为复合类型", values.KindComposite, values.KindRow)
}
