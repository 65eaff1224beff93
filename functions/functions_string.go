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
	"unicode"

	"github.com/rulego/gitsql/values"
)

// textFunction applies a Text -> Text transformation.
type textFunction struct {
	*BaseFunction
	transform func(string) string
}

func newTextFunction(name, description string, transform func(string) string) *textFunction {
	return &textFunction{
		BaseFunction: NewBaseFunction(name, TypeString, "字符串函数", description, 1, 1).NullPropagating(),
		transform:    transform,
	}
}

func (f *textFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	s, err := textArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	return values.NewText(f.transform(s)), nil
}

func NewLowerFunction() Function {
	return newTextFunction("lower", "转换为小写", strings.ToLower)
}

func NewUpperFunction() Function {
	return newTextFunction("upper", "转换为大写", strings.ToUpper)
}

func NewTrimFunction() Function {
	return newTextFunction("trim", "去除字符串首尾空白", strings.TrimSpace)
}

func NewLtrimFunction() Function {
	return newTextFunction("ltrim", "去除字符串开头空白", func(s string) string {
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	})
}

func NewRtrimFunction() Function {
	return newTextFunction("rtrim", "去除字符串结尾空白", func(s string) string {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	})
}

func NewReverseFunction() Function {
	return newTextFunction("reverse", "反转字符串", func(s string) string {
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes)
	})
}

// LenFunction 字符串长度函数，按字符计数
type LenFunction struct {
	*BaseFunction
}

func NewLenFunction() *LenFunction {
	return &LenFunction{
		BaseFunction: NewBaseFunction("len", TypeString, "字符串函数", "获取字符串长度", 1, 1).NullPropagating(),
	}
}

func (f *LenFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	s, err := textArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	return values.NewInteger(int64(len([]rune(s)))), nil
}

// ReplaceFunction 替换函数
type ReplaceFunction struct {
	*BaseFunction
}

func NewReplaceFunction() *ReplaceFunction {
	return &ReplaceFunction{
		BaseFunction: NewBaseFunction("replace", TypeString, "字符串函数", "替换字符串中所有匹配的子串", 3, 3).NullPropagating(),
	}
}

func (f *ReplaceFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	texts, err := textArgs(f.name, args)
	if err != nil {
		return nil, err
	}
	return values.NewText(strings.ReplaceAll(texts[0], texts[1], texts[2])), nil
}

// SubstringFunction returns length characters starting at the 1-based
// position start. Without length it runs to the end of the text.
type SubstringFunction struct {
	*BaseFunction
}

func NewSubstringFunction() *SubstringFunction {
	return &SubstringFunction{
		BaseFunction: NewBaseFunction("substring", TypeString, "字符串函数", "截取子字符串", 2, 3).NullPropagating(),
	}
}

func (f *SubstringFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	s, err := textArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	start, err := intArg(f.name, args, 1)
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	end := int64(len(runes)) + 1
	if len(args) == 3 {
		length, err := intArg(f.name, args, 2)
		if err != nil {
			return nil, err
		}
		if length < 0 {
			return nil, values.NewError(values.ErrorInvalidOperation, "substring: negative length %d", length)
		}
		end = start + length
	}
	// 起始位置小于1时与SQL一样从第一个字符开始计算
	from, to := clamp(start-1, len(runes)), clamp(end-1, len(runes))
	if from >= to {
		return values.NewText(""), nil
	}
	return values.NewText(string(runes[from:to])), nil
}

func clamp(i int64, n int) int {
	switch {
	case i < 0:
		return 0
	case i > int64(n):
		return n
	}
	return int(i)
}

// ConcatFunction 连接多个值的文本形式
type ConcatFunction struct {
	*BaseFunction
}

func NewConcatFunction() *ConcatFunction {
	return &ConcatFunction{
		BaseFunction: NewBaseFunction("concat", TypeString, "字符串函数", "连接多个值", 1, -1).NullPropagating(),
	}
}

func (f *ConcatFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	var result strings.Builder
	for _, arg := range args {
		result.WriteString(arg.Literal())
	}
	return values.NewText(result.String()), nil
}

// ConcatWsFunction joins its arguments with a separator, skipping NULLs.
type ConcatWsFunction struct {
	*BaseFunction
}

func NewConcatWsFunction() *ConcatWsFunction {
	return &ConcatWsFunction{
		BaseFunction: NewBaseFunction("concat_ws", TypeString, "字符串函数", "使用分隔符连接多个值", 2, -1),
	}
}

func (f *ConcatWsFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	if values.IsNull(args[0]) {
		return values.Null{}, nil
	}
	sep, err := textArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	parts := make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		if values.IsNull(arg) {
			continue
		}
		parts = append(parts, arg.Literal())
	}
	return values.NewText(strings.Join(parts, sep)), nil
}

// LeftFunction 返回左侧n个字符
type LeftFunction struct {
	*BaseFunction
}

func NewLeftFunction() *LeftFunction {
	return &LeftFunction{
		BaseFunction: NewBaseFunction("left", TypeString, "字符串函数", "返回字符串左侧的n个字符", 2, 2).NullPropagating(),
	}
}

func (f *LeftFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	runes, n, err := textAndCount(f.name, args)
	if err != nil {
		return nil, err
	}
	return values.NewText(string(runes[:clamp(n, len(runes))])), nil
}

// RightFunction 返回右侧n个字符
type RightFunction struct {
	*BaseFunction
}

func NewRightFunction() *RightFunction {
	return &RightFunction{
		BaseFunction: NewBaseFunction("right", TypeString, "字符串函数", "返回字符串右侧的n个字符", 2, 2).NullPropagating(),
	}
}

func (f *RightFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	runes, n, err := textAndCount(f.name, args)
	if err != nil {
		return nil, err
	}
	return values.NewText(string(runes[len(runes)-clamp(n, len(runes)):])), nil
}

// StartsWithFunction 检查前缀
type StartsWithFunction struct {
	*BaseFunction
}

func NewStartsWithFunction() *StartsWithFunction {
	return &StartsWithFunction{
		BaseFunction: NewBaseFunction("starts_with", TypeString, "字符串函数", "检查字符串是否以指定前缀开头", 2, 2).NullPropagating(),
	}
}

func (f *StartsWithFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	texts, err := textArgs(f.name, args)
	if err != nil {
		return nil, err
	}
	return values.NewBoolean(strings.HasPrefix(texts[0], texts[1])), nil
}

// EndsWithFunction 检查后缀
type EndsWithFunction struct {
	*BaseFunction
}

func NewEndsWithFunction() *EndsWithFunction {
	return &EndsWithFunction{
		BaseFunction: NewBaseFunction("ends_with", TypeString, "字符串函数", "检查字符串是否以指定后缀结尾", 2, 2).NullPropagating(),
	}
}

func (f *EndsWithFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	texts, err := textArgs(f.name, args)
	if err != nil {
		return nil, err
	}
	return values.NewBoolean(strings.HasSuffix(texts[0], texts[1])), nil
}

// ReplicateFunction 重复字符串n次
type ReplicateFunction struct {
	*BaseFunction
}

func NewReplicateFunction() *ReplicateFunction {
	return &ReplicateFunction{
		BaseFunction: NewBaseFunction("replicate", TypeString, "字符串函数", "将字符串重复n次", 2, 2).NullPropagating(),
	}
}

// maxReplicateLength 限制结果大小
const maxReplicateLength = 1 << 20

func (f *ReplicateFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	s, err := textArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	n, err := intArg(f.name, args, 1)
	if err != nil {
		return nil, err
	}
	if n <= 0 || s == "" {
		return values.NewText(""), nil
	}
	if n > maxReplicateLength/int64(len(s)) {
		return nil, values.NewError(values.ErrorInvalidOperation, "replicate: result longer than %d bytes", maxReplicateLength)
	}
	return values.NewText(strings.Repeat(s, int(n))), nil
}

func textArgs(fn string, args []values.Value) ([]string, error) {
	texts := make([]string, len(args))
	for i := range args {
		s, err := textArg(fn, args, i)
		if err != nil {
			return nil, err
		}
		texts[i] = s
	}
	return texts, nil
}

func textAndCount(fn string, args []values.Value) ([]rune, int64, error) {
	s, err := textArg(fn, args, 0)
	if err != nil {
		return nil, 0, err
	}
	n, err := intArg(fn, args, 1)
	if err != nil {
		return nil, 0, err
	}
	return []rune(s), n, nil
}
