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
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rulego/gitsql/values"
)

// FunctionType 函数类型
type FunctionType string

const (
	// 字符串函数
	TypeString FunctionType = "string"
	// 数学函数
	TypeMath FunctionType = "math"
	// 条件函数
	TypeConditional FunctionType = "conditional"
	// 转换函数
	TypeConversion FunctionType = "conversion"
	// 数组函数
	TypeArray FunctionType = "array"
	// 时间日期函数
	TypeDateTime FunctionType = "datetime"
	// 哈希函数
	TypeHash FunctionType = "hash"
	// JSON函数
	TypeJSON FunctionType = "json"
	// 用户自定义函数
	TypeCustom FunctionType = "custom"
)

// FunctionContext 函数执行上下文
type FunctionContext struct {
	// Titles and Row describe the row being evaluated. Both are read-only.
	Titles []string
	Row    []values.Value
	// Now is the statement timestamp returned by now(). A zero value means
	// the wall clock is read on every call.
	Now time.Time
}

// CurrentTime returns ctx.Now, falling back to the wall clock.
func (ctx *FunctionContext) CurrentTime() time.Time {
	if ctx == nil || ctx.Now.IsZero() {
		return time.Now().UTC()
	}
	return ctx.Now
}

// Function 函数接口定义
type Function interface {
	// GetName 获取函数名称
	GetName() string
	// GetType 获取函数类型
	GetType() FunctionType
	// GetCategory 获取函数分类
	GetCategory() string
	// GetDescription 获取函数描述
	GetDescription() string
	// Validate 验证参数
	Validate(args []values.Value) error
	// Execute 执行函数
	Execute(ctx *FunctionContext, args []values.Value) (values.Value, error)
}

// FunctionRegistry 函数注册器
type FunctionRegistry struct {
	mu         sync.RWMutex
	functions  map[string]Function
	categories map[FunctionType][]Function
}

// NewFunctionRegistry 创建空的函数注册器
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		functions:  make(map[string]Function),
		categories: make(map[FunctionType][]Function),
	}
}

// Register 注册函数，名称不区分大小写
func (r *FunctionRegistry) Register(fn Function) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(fn.GetName())
	if _, exists := r.functions[name]; exists {
		return fmt.Errorf("function %s already registered", name)
	}
	r.functions[name] = fn
	r.categories[fn.GetType()] = append(r.categories[fn.GetType()], fn)
	return nil
}

// Get 获取函数
func (r *FunctionRegistry) Get(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.functions[strings.ToLower(name)]
	return fn, exists
}

// GetByType 按类型获取函数列表
func (r *FunctionRegistry) GetByType(fnType FunctionType) []Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Function(nil), r.categories[fnType]...)
}

// ListAll 列出所有注册的函数
func (r *FunctionRegistry) ListAll() map[string]Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]Function, len(r.functions))
	for name, fn := range r.functions {
		result[name] = fn
	}
	return result
}

// Names returns the sorted registered names.
func (r *FunctionRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister 注销函数
func (r *FunctionRegistry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.ToLower(name)
	fn, exists := r.functions[name]
	if !exists {
		return false
	}
	delete(r.functions, name)

	fnType := fn.GetType()
	funcs := r.categories[fnType]
	for i, f := range funcs {
		if strings.ToLower(f.GetName()) == name {
			r.categories[fnType] = append(funcs[:i:i], funcs[i+1:]...)
			break
		}
	}
	return true
}

// Clone returns an independent registry holding the same functions, so a
// session can add its own functions without touching the shared one.
func (r *FunctionRegistry) Clone() *FunctionRegistry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := NewFunctionRegistry()
	for name, fn := range r.functions {
		c.functions[name] = fn
	}
	for fnType, funcs := range r.categories {
		c.categories[fnType] = append([]Function(nil), funcs...)
	}
	return c
}

// RegisterCustom 注册自定义函数
func (r *FunctionRegistry) RegisterCustom(name string, fnType FunctionType, category, description string,
	minArgs, maxArgs int, executor func(ctx *FunctionContext, args []values.Value) (values.Value, error)) error {

	return r.Register(&CustomFunction{
		BaseFunction: NewBaseFunction(name, fnType, category, description, minArgs, maxArgs),
		executor:     executor,
	})
}

// Execute validates args and invokes the named function.
func (r *FunctionRegistry) Execute(name string, ctx *FunctionContext, args []values.Value) (values.Value, error) {
	fn, exists := r.Get(name)
	if !exists {
		return nil, values.NewError(values.ErrorUnknownFunction, "function %s not found", name)
	}
	return Invoke(fn, ctx, args)
}

// Invoke validates args and runs fn. Functions built with NullPropagating
// return NULL as soon as one argument is NULL.
func Invoke(fn Function, ctx *FunctionContext, args []values.Value) (values.Value, error) {
	if err := fn.Validate(args); err != nil {
		return nil, err
	}
	if np, ok := fn.(interface{ PropagatesNull() bool }); ok && np.PropagatesNull() && anyNull(args) {
		return values.Null{}, nil
	}
	return fn.Execute(ctx, args)
}

// CustomFunction 自定义函数实现
type CustomFunction struct {
	*BaseFunction
	executor func(ctx *FunctionContext, args []values.Value) (values.Value, error)
}

func (f *CustomFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	return f.executor(ctx, args)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *FunctionRegistry
)

// Default returns the process wide standard registry.
func Default() *FunctionRegistry {
	defaultOnce.Do(func() {
		defaultRegistry = NewStandardRegistry()
	})
	return defaultRegistry
}

// RegisterCustomFunction 向默认注册器注册自定义函数
func RegisterCustomFunction(name string, fnType FunctionType, category, description string,
	minArgs, maxArgs int, executor func(ctx *FunctionContext, args []values.Value) (values.Value, error)) error {
	return Default().RegisterCustom(name, fnType, category, description, minArgs, maxArgs, executor)
}

// NewStandardRegistry 创建包含全部内置函数的注册器
func NewStandardRegistry() *FunctionRegistry {
	r := NewFunctionRegistry()
	builtins := []Function{
		// 字符串函数
		NewLowerFunction(),
		NewUpperFunction(),
		NewReverseFunction(),
		NewTrimFunction(),
		NewLtrimFunction(),
		NewRtrimFunction(),
		NewLenFunction(),
		NewReplaceFunction(),
		NewSubstringFunction(),
		NewConcatFunction(),
		NewConcatWsFunction(),
		NewLeftFunction(),
		NewRightFunction(),
		NewStartsWithFunction(),
		NewEndsWithFunction(),
		NewReplicateFunction(),

		// 数学函数
		NewAbsFunction(),
		NewCeilFunction(),
		NewFloorFunction(),
		NewRoundFunction(),
		NewSqrtFunction(),
		NewPowerFunction(),
		NewSignFunction(),
		NewModFunction(),
		NewPiFunction(),
		NewRandFunction(),

		// 条件函数
		NewCoalesceFunction(),
		NewNullIfFunction(),
		NewIsNullFunction(),
		NewGreatestFunction(),
		NewLeastFunction(),
		NewIfFunction(),

		// 转换函数
		NewTypeOfFunction(),
		NewToTextFunction(),
		NewToIntFunction(),
		NewToFloatFunction(),
		NewIsNumericFunction(),
		NewIsStringFunction(),
		NewIsBoolFunction(),
		NewIsIntegerFunction(),
		NewIsFloatFunction(),
		NewIsArrayFunction(),
		NewIsObjectFunction(),

		// 数组函数
		NewArrayLengthFunction(),
		NewArrayContainsFunction(),
		NewArrayAppendFunction(),
		NewArrayCatFunction(),
		NewArrayPositionFunction(),

		// 时间日期函数
		NewNowFunction(),
		NewYearFunction(),
		NewMonthFunction(),
		NewDayFunction(),
		NewUnixTimestampFunction(),
		NewFromUnixtimeFunction(),

		// 哈希函数
		NewMd5Function(),
		NewSha1Function(),
		NewSha256Function(),

		// JSON函数
		NewToJsonFunction(),
		NewFromJsonFunction(),
		NewJsonExtractFunction(),
		NewJsonValidFunction(),
		NewJsonTypeFunction(),
		NewJsonLengthFunction(),
	}
	for _, fn := range builtins {
		if err := r.Register(fn); err != nil {
			panic(err)
		}
	}
	return r
}
