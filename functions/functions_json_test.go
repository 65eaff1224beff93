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
	"testing"

	"github.com/rulego/gitsql/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commitJSON = `{"sha": "a1b2", "stats": {"additions": 12, "ratio": 0.5}, "parents": ["p0", "p1"], "merge": null}`

func TestJSONFunctions(t *testing.T) {
	r := NewStandardRegistry()
	ctx := &FunctionContext{}

	tests := []struct {
		name     string
		funcName string
		args     []V
		expected V
		kind     values.ErrorKind
		wantErr  bool
	}{
		{"提取字符串", "json_extract", []V{text(commitJSON), text("$.sha")}, text("a1b2"), 0, false},
		{"提取嵌套整数", "json_extract", []V{text(commitJSON), text("$.stats.additions")}, integer(12), 0, false},
		{"提取嵌套浮点", "json_extract", []V{text(commitJSON), text("stats.ratio")}, float(0.5), 0, false},
		{"提取数组元素", "json_extract", []V{text(commitJSON), text("$.parents[1]")}, text("p1"), 0, false},
		{"提取负下标", "json_extract", []V{text(commitJSON), text("$.parents[-1]")}, text("p1"), 0, false},
		{"路径不存在", "json_extract", []V{text(commitJSON), text("$.author")}, null, 0, false},
		{"下标越界", "json_extract", []V{text(commitJSON), text("$.parents[5]")}, null, 0, false},
		{"JSON null", "json_extract", []V{text(commitJSON), text("$.merge")}, null, 0, false},
		{"根路径数组", "json_extract", []V{text(`[1, 2]`), text("$[0]")}, integer(1), 0, false},
		{"坏路径", "json_extract", []V{text(commitJSON), text("$.parents[x]")}, nil, values.ErrorInvalidOperation, true},
		{"坏JSON", "json_extract", []V{text("{"), text("$.a")}, nil, values.ErrorInvalidOperation, true},
		{"非文本输入", "json_extract", []V{integer(1), text("$.a")}, nil, values.ErrorTypeMismatch, true},
		{"NULL输入", "json_extract", []V{null, text("$.a")}, null, 0, false},
		{"json_valid", "json_valid", []V{text(commitJSON)}, boolean(true), 0, false},
		{"json_valid无效", "json_valid", []V{text("{a:1}")}, boolean(false), 0, false},
		{"json_valid非文本", "json_valid", []V{integer(1)}, boolean(false), 0, false},
		{"json_type对象", "json_type", []V{text(commitJSON)}, text("object"), 0, false},
		{"json_type数字", "json_type", []V{text("3.5")}, text("number"), 0, false},
		{"json_type null", "json_type", []V{text("null")}, text("null"), 0, false},
		{"json_type无效", "json_type", []V{text("[1,")}, text("invalid"), 0, false},
		{"json_type尾随数据", "json_type", []V{text("1 2")}, text("invalid"), 0, false},
		{"json_length数组", "json_length", []V{text("[1, 2, 3]")}, integer(3), 0, false},
		{"json_length对象", "json_length", []V{text(commitJSON)}, integer(4), 0, false},
		{"json_length标量", "json_length", []V{text("1")}, nil, values.ErrorInvalidOperation, true},
		{"to_json数组", "to_json", []V{ints(1, 2)}, text("[1,2]"), 0, false},
		{"to_json文本", "to_json", []V{text(`a"b`)}, text(`"a\"b"`), 0, false},
		{"to_json NULL", "to_json", []V{null}, text("null"), 0, false},
		{"from_json整数", "from_json", []V{text("42")}, integer(42), 0, false},
		{"from_json数组", "from_json", []V{text("[1, 2]")}, ints(1, 2), 0, false},

		// 类型检查
		{"is_string", "is_string", []V{text("a")}, boolean(true), 0, false},
		{"is_string NULL", "is_string", []V{null}, boolean(false), 0, false},
		{"is_bool", "is_bool", []V{boolean(false)}, boolean(true), 0, false},
		{"is_integer", "is_integer", []V{float(1)}, boolean(false), 0, false},
		{"is_float", "is_float", []V{float(1)}, boolean(true), 0, false},
		{"is_array", "is_array", []V{ints(1)}, boolean(true), 0, false},
		{"is_object行", "is_object", []V{values.NewRow(nil, integer(1))}, boolean(true), 0, false},
		{"is_object文本", "is_object", []V{text("{}")}, boolean(false), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Execute(tt.funcName, ctx, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, values.IsKind(err, tt.kind), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equals(result), "expected %s, got %s", tt.expected.Literal(), result.Literal())
		})
	}
}

func TestFromJSONObject(t *testing.T) {
	r := NewStandardRegistry()
	result, err := r.Execute("from_json", &FunctionContext{}, []V{text(commitJSON)})
	require.NoError(t, err)

	obj, ok := result.(values.Composite)
	require.True(t, ok)
	assert.Equal(t, "object", obj.TypeName)
	stats, ok := obj.Member("stats")
	require.True(t, ok)
	additions, _ := stats.(values.Composite).Member("additions")
	assert.Equal(t, values.NewInteger(12), additions)

	// 复合值可直接作为提取源
	sha, err := r.Execute("json_extract", &FunctionContext{}, []V{obj, text("$.sha")})
	require.NoError(t, err)
	assert.Equal(t, text("a1b2"), sha)
}
