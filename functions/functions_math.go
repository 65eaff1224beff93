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
	"math"
	"math/rand"

	"github.com/rulego/gitsql/values"
)

// AbsFunction 绝对值函数
type AbsFunction struct {
	*BaseFunction
}

func NewAbsFunction() *AbsFunction {
	return &AbsFunction{
		BaseFunction: NewBaseFunction("abs", TypeMath, "数学函数", "计算绝对值", 1, 1).NullPropagating(),
	}
}

func (f *AbsFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	switch v := args[0].(type) {
	case values.Integer:
		if v.Value < 0 {
			return values.UnaryOp(values.OpNegative, v)
		}
		return v, nil
	case values.Float:
		return values.NewFloat(math.Abs(v.Value)), nil
	}
	return nil, argError(f.name, 0, "a number", args[0])
}

// roundingFunction covers ceil and floor. Integers are returned unchanged.
type roundingFunction struct {
	*BaseFunction
	round func(float64) float64
}

func NewCeilFunction() Function {
	return &roundingFunction{
		BaseFunction: NewBaseFunction("ceil", TypeMath, "数学函数", "向上取整", 1, 1).NullPropagating(),
		round:        math.Ceil,
	}
}

func NewFloorFunction() Function {
	return &roundingFunction{
		BaseFunction: NewBaseFunction("floor", TypeMath, "数学函数", "向下取整", 1, 1).NullPropagating(),
		round:        math.Floor,
	}
}

func (f *roundingFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	switch v := args[0].(type) {
	case values.Integer:
		return v, nil
	case values.Float:
		return values.NewFloat(f.round(v.Value)), nil
	}
	return nil, argError(f.name, 0, "a number", args[0])
}

// RoundFunction rounds half away from zero to an optional number of decimals.
type RoundFunction struct {
	*BaseFunction
}

func NewRoundFunction() *RoundFunction {
	return &RoundFunction{
		BaseFunction: NewBaseFunction("round", TypeMath, "数学函数", "四舍五入到指定小数位", 1, 2).NullPropagating(),
	}
}

func (f *RoundFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	var decimals int64
	if len(args) == 2 {
		d, err := intArg(f.name, args, 1)
		if err != nil {
			return nil, err
		}
		decimals = d
	}
	switch v := args[0].(type) {
	case values.Integer:
		return v, nil
	case values.Float:
		scale := math.Pow(10, float64(decimals))
		return values.NewFloat(math.Round(v.Value*scale) / scale), nil
	}
	return nil, argError(f.name, 0, "a number", args[0])
}

// SqrtFunction 平方根函数
type SqrtFunction struct {
	*BaseFunction
}

func NewSqrtFunction() *SqrtFunction {
	return &SqrtFunction{
		BaseFunction: NewBaseFunction("sqrt", TypeMath, "数学函数", "计算平方根", 1, 1).NullPropagating(),
	}
}

func (f *SqrtFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	x, err := floatArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	if x < 0 {
		return nil, values.NewError(values.ErrorInvalidOperation, "sqrt of negative number %v", x)
	}
	return values.NewFloat(math.Sqrt(x)), nil
}

// PowerFunction 幂函数，结果总是浮点数
type PowerFunction struct {
	*BaseFunction
}

func NewPowerFunction() *PowerFunction {
	return &PowerFunction{
		BaseFunction: NewBaseFunction("power", TypeMath, "数学函数", "计算x的y次幂", 2, 2).NullPropagating(),
	}
}

func (f *PowerFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	x, err := floatArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	y, err := floatArg(f.name, args, 1)
	if err != nil {
		return nil, err
	}
	return values.NewFloat(math.Pow(x, y)), nil
}

// SignFunction 符号函数
type SignFunction struct {
	*BaseFunction
}

func NewSignFunction() *SignFunction {
	return &SignFunction{
		BaseFunction: NewBaseFunction("sign", TypeMath, "数学函数", "返回数值的符号", 1, 1).NullPropagating(),
	}
}

func (f *SignFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	x, err := floatArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	switch {
	case x > 0:
		return values.NewInteger(1), nil
	case x < 0:
		return values.NewInteger(-1), nil
	}
	return values.NewInteger(0), nil
}

// ModFunction is the function form of the % operator.
type ModFunction struct {
	*BaseFunction
}

func NewModFunction() *ModFunction {
	return &ModFunction{
		BaseFunction: NewBaseFunction("mod", TypeMath, "数学函数", "取模运算", 2, 2).NullPropagating(),
	}
}

func (f *ModFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	return values.Arithmetic(values.OpModulus, args[0], args[1])
}

// PiFunction 圆周率
type PiFunction struct {
	*BaseFunction
}

func NewPiFunction() *PiFunction {
	return &PiFunction{
		BaseFunction: NewBaseFunction("pi", TypeMath, "数学函数", "返回圆周率", 0, 0),
	}
}

func (f *PiFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	return values.NewFloat(math.Pi), nil
}

// RandFunction returns a Float in [0, 1). With an Integer seed the result
// is reproducible.
type RandFunction struct {
	*BaseFunction
}

func NewRandFunction() *RandFunction {
	return &RandFunction{
		BaseFunction: NewBaseFunction("rand", TypeMath, "数学函数", "返回[0,1)之间的随机数", 0, 1),
	}
}

func (f *RandFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	if len(args) == 0 || values.IsNull(args[0]) {
		return values.NewFloat(rand.Float64()), nil
	}
	seed, err := intArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	return values.NewFloat(rand.New(rand.NewSource(seed)).Float64()), nil
}
