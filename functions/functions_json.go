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
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/rulego/gitsql/values"
)

// ToJsonFunction converts value to JSON string
type ToJsonFunction struct {
	*BaseFunction
}

func NewToJsonFunction() *ToJsonFunction {
	return &ToJsonFunction{
		BaseFunction: NewBaseFunction("to_json", TypeJSON, "JSON函数", "将值序列化为JSON文本", 1, 1),
	}
}

func (f *ToJsonFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	data, err := json.Marshal(values.Native(args[0]))
	if err != nil {
		return nil, values.WrapError(values.ErrorInvalidOperation, err, "to_json")
	}
	return values.NewText(string(data)), nil
}

// FromJsonFunction parses JSON text into a value. Objects become
// composites named "object".
type FromJsonFunction struct {
	*BaseFunction
}

func NewFromJsonFunction() *FromJsonFunction {
	return &FromJsonFunction{
		BaseFunction: NewBaseFunction("from_json", TypeJSON, "JSON函数", "解析JSON文本", 1, 1).NullPropagating(),
	}
}

func (f *FromJsonFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	text, err := textArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	return decodeJSON(f.name, text)
}

// JsonExtractFunction extracts JSON field value
type JsonExtractFunction struct {
	*BaseFunction
}

func NewJsonExtractFunction() *JsonExtractFunction {
	return &JsonExtractFunction{
		BaseFunction: NewBaseFunction("json_extract", TypeJSON, "JSON函数", "按路径提取JSON字段，如 $.a.b[0]", 2, 2).NullPropagating(),
	}
}

func (f *JsonExtractFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	var doc values.Value
	switch v := args[0].(type) {
	case values.Text:
		parsed, err := decodeJSON(f.name, v.Value)
		if err != nil {
			return nil, err
		}
		doc = parsed
	case values.Composite, values.Array, values.Row:
		doc = v
	default:
		return nil, argError(f.name, 0, "Text, Array or Composite", args[0])
	}

	path, err := textArg(f.name, args, 1)
	if err != nil {
		return nil, err
	}
	steps, err := parseJSONPath(path)
	if err != nil {
		return nil, err
	}
	for _, step := range steps {
		next, ok := step.apply(doc)
		if !ok {
			// 路径不存在
			return values.Null{}, nil
		}
		doc = next
	}
	return doc.Clone(), nil
}

// JsonValidFunction 验证JSON格式是否有效
type JsonValidFunction struct {
	*BaseFunction
}

func NewJsonValidFunction() *JsonValidFunction {
	return &JsonValidFunction{
		BaseFunction: NewBaseFunction("json_valid", TypeJSON, "JSON函数", "验证JSON格式是否有效", 1, 1),
	}
}

func (f *JsonValidFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	t, ok := args[0].(values.Text)
	if !ok {
		return values.NewBoolean(false), nil
	}
	return values.NewBoolean(json.Valid([]byte(t.Value))), nil
}

// JsonTypeFunction 返回JSON值的类型
type JsonTypeFunction struct {
	*BaseFunction
}

func NewJsonTypeFunction() *JsonTypeFunction {
	return &JsonTypeFunction{
		BaseFunction: NewBaseFunction("json_type", TypeJSON, "JSON函数", "返回JSON值的类型", 1, 1).NullPropagating(),
	}
}

func (f *JsonTypeFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	text, err := textArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	doc, err := decodeJSON(f.name, text)
	if err != nil {
		return values.NewText("invalid"), nil
	}
	switch doc.(type) {
	case values.Null:
		return values.NewText("null"), nil
	case values.Boolean:
		return values.NewText("boolean"), nil
	case values.Integer, values.Float:
		return values.NewText("number"), nil
	case values.Text:
		return values.NewText("string"), nil
	case values.Array:
		return values.NewText("array"), nil
	case values.Composite:
		return values.NewText("object"), nil
	}
	return values.NewText("unknown"), nil
}

// JsonLengthFunction 返回JSON数组或对象的长度
type JsonLengthFunction struct {
	*BaseFunction
}

func NewJsonLengthFunction() *JsonLengthFunction {
	return &JsonLengthFunction{
		BaseFunction: NewBaseFunction("json_length", TypeJSON, "JSON函数", "返回JSON数组或对象的长度", 1, 1).NullPropagating(),
	}
}

func (f *JsonLengthFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	text, err := textArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	doc, err := decodeJSON(f.name, text)
	if err != nil {
		return nil, err
	}
	switch v := doc.(type) {
	case values.Array:
		return values.NewInteger(int64(len(v.Values))), nil
	case values.Composite:
		return values.NewInteger(int64(len(v.Members))), nil
	}
	return nil, values.NewError(values.ErrorInvalidOperation, "%s: JSON value is not an array or object", f.name)
}

// decodeJSON parses text keeping integral numbers as Integer.
func decodeJSON(fn, text string) (values.Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var data interface{}
	if err := dec.Decode(&data); err != nil {
		return nil, values.WrapError(values.ErrorInvalidOperation, err, "%s: failed to parse JSON", fn)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, values.NewError(values.ErrorInvalidOperation, "%s: trailing data after JSON value", fn)
	}
	return values.FromNative(normalizeNumbers(data))
}

func normalizeNumbers(x interface{}) interface{} {
	switch t := x.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case []interface{}:
		for i := range t {
			t[i] = normalizeNumbers(t[i])
		}
	case map[string]interface{}:
		for k, v := range t {
			t[k] = normalizeNumbers(v)
		}
	}
	return x
}

// jsonStep is one segment of a path: a member name or an array index.
type jsonStep struct {
	member string
	index  int
	isIdx  bool
}

func (s jsonStep) apply(v values.Value) (values.Value, bool) {
	if s.isIdx {
		c, ok := v.(values.Collection)
		if !ok {
			return nil, false
		}
		elems := c.Elements()
		i := s.index
		if i < 0 {
			i += len(elems)
		}
		if i < 0 || i >= len(elems) {
			return nil, false
		}
		return elems[i], true
	}
	c, ok := v.(values.Composite)
	if !ok {
		return nil, false
	}
	return c.Member(s.member)
}

// parseJSONPath accepts "$", "$.a.b", "a.b[0]" and "$[1].name".
func parseJSONPath(path string) ([]jsonStep, error) {
	p := strings.TrimPrefix(strings.TrimSpace(path), "$")
	var steps []jsonStep
	var name bytes.Buffer
	flush := func() {
		if name.Len() > 0 {
			steps = append(steps, jsonStep{member: name.String()})
			name.Reset()
		}
	}
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '.':
			flush()
		case '[':
			flush()
			end := strings.IndexByte(p[i:], ']')
			if end < 0 {
				return nil, values.NewError(values.ErrorInvalidOperation, "json path %q: missing ]", path)
			}
			n, err := strconv.Atoi(strings.TrimSpace(p[i+1 : i+end]))
			if err != nil {
				return nil, values.WrapError(values.ErrorInvalidOperation, err, "json path %q: bad index", path)
			}
			steps = append(steps, jsonStep{index: n, isIdx: true})
			i += end
		default:
			name.WriteByte(p[i])
		}
	}
	flush()
	return steps, nil
}
