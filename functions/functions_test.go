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
	"testing"
	"time"

	"github.com/rulego/gitsql/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type V = values.Value

func text(s string) V   { return values.NewText(s) }
func integer(i int64) V { return values.NewInteger(i) }
func float(f float64) V { return values.NewFloat(f) }
func boolean(b bool) V  { return values.NewBoolean(b) }
func ints(is ...int64) V {
	vals := make([]V, len(is))
	for i, n := range is {
		vals[i] = values.NewInteger(n)
	}
	return values.NewArray(values.IntType, vals...)
}

var null V = values.Null{}

func TestBuiltinFunctions(t *testing.T) {
	when := time.Date(2024, 2, 29, 13, 14, 15, 0, time.UTC)
	ctx := &FunctionContext{Now: when}
	r := NewStandardRegistry()

	tests := []struct {
		name     string
		funcName string
		args     []V
		expected V
		kind     values.ErrorKind
		wantErr  bool
	}{
		// 字符串函数
		{"lower", "lower", []V{text("GitQL")}, text("gitql"), 0, false},
		{"upper", "upper", []V{text("GitQL")}, text("GITQL"), 0, false},
		{"reverse", "reverse", []V{text("héllo")}, text("olléh"), 0, false},
		{"trim", "trim", []V{text("  a b  ")}, text("a b"), 0, false},
		{"ltrim", "ltrim", []V{text("\t a ")}, text("a "), 0, false},
		{"rtrim", "rtrim", []V{text(" a \n")}, text(" a"), 0, false},
		{"len按字符", "len", []V{text("数据库")}, integer(3), 0, false},
		{"replace", "replace", []V{text("a-b-c"), text("-"), text("+")}, text("a+b+c"), 0, false},
		{"substring", "substring", []V{text("hello world"), integer(7)}, text("world"), 0, false},
		{"substring带长度", "substring", []V{text("hello world"), integer(1), integer(5)}, text("hello"), 0, false},
		{"substring越界", "substring", []V{text("hello"), integer(10)}, text(""), 0, false},
		{"substring从0开始", "substring", []V{text("hello"), integer(0), integer(2)}, text("h"), 0, false},
		{"substring负长度", "substring", []V{text("hello"), integer(1), integer(-1)}, nil, values.ErrorInvalidOperation, true},
		{"concat", "concat", []V{text("a"), integer(1), boolean(true)}, text("a1true"), 0, false},
		{"concat遇NULL", "concat", []V{text("a"), null}, null, 0, false},
		{"concat_ws跳过NULL", "concat_ws", []V{text(","), text("a"), null, integer(2)}, text("a,2"), 0, false},
		{"concat_ws分隔符为NULL", "concat_ws", []V{null, text("a")}, null, 0, false},
		{"left", "left", []V{text("hello"), integer(2)}, text("he"), 0, false},
		{"left超长", "left", []V{text("hi"), integer(5)}, text("hi"), 0, false},
		{"right", "right", []V{text("hello"), integer(3)}, text("llo"), 0, false},
		{"right负数", "right", []V{text("hello"), integer(-1)}, text(""), 0, false},
		{"starts_with", "starts_with", []V{text("refs/heads/main"), text("refs/")}, boolean(true), 0, false},
		{"ends_with", "ends_with", []V{text("main.go"), text(".rs")}, boolean(false), 0, false},
		{"replicate", "replicate", []V{text("ab"), integer(3)}, text("ababab"), 0, false},
		{"replicate零次", "replicate", []V{text("ab"), integer(0)}, text(""), 0, false},
		{"replicate过大", "replicate", []V{text("ab"), integer(math.MaxInt64)}, nil, values.ErrorInvalidOperation, true},
		{"upper NULL传播", "upper", []V{null}, null, 0, false},
		{"upper类型错误", "upper", []V{integer(1)}, nil, values.ErrorTypeMismatch, true},

		// 数学函数
		{"abs整数", "abs", []V{integer(-3)}, integer(3), 0, false},
		{"abs浮点", "abs", []V{float(-1.5)}, float(1.5), 0, false},
		{"abs溢出", "abs", []V{integer(math.MinInt64)}, nil, values.ErrorInvalidOperation, true},
		{"ceil", "ceil", []V{float(1.2)}, float(2), 0, false},
		{"ceil整数", "ceil", []V{integer(4)}, integer(4), 0, false},
		{"floor", "floor", []V{float(-1.2)}, float(-2), 0, false},
		{"round", "round", []V{float(2.5)}, float(3), 0, false},
		{"round小数位", "round", []V{float(3.14159), integer(2)}, float(3.14), 0, false},
		{"sqrt", "sqrt", []V{integer(16)}, float(4), 0, false},
		{"sqrt负数", "sqrt", []V{integer(-1)}, nil, values.ErrorInvalidOperation, true},
		{"power", "power", []V{integer(2), integer(10)}, float(1024), 0, false},
		{"sign", "sign", []V{float(-0.5)}, integer(-1), 0, false},
		{"sign零", "sign", []V{integer(0)}, integer(0), 0, false},
		{"mod", "mod", []V{integer(10), integer(3)}, integer(1), 0, false},
		{"mod除零", "mod", []V{integer(10), integer(0)}, nil, values.ErrorDivisionByZero, true},
		{"pi", "pi", nil, float(math.Pi), 0, false},
		{"abs文本", "abs", []V{text("1")}, nil, values.ErrorTypeMismatch, true},

		// 条件函数
		{"coalesce", "coalesce", []V{null, null, integer(3), integer(4)}, integer(3), 0, false},
		{"coalesce全NULL", "coalesce", []V{null, null}, null, 0, false},
		{"nullif相等", "nullif", []V{integer(1), integer(1)}, null, 0, false},
		{"nullif不等", "nullif", []V{integer(1), integer(2)}, integer(1), 0, false},
		{"isnull", "isnull", []V{null}, boolean(true), 0, false},
		{"isnull非空", "isnull", []V{integer(0)}, boolean(false), 0, false},
		{"greatest", "greatest", []V{integer(1), float(2.5), null, integer(2)}, float(2.5), 0, false},
		{"least", "least", []V{text("b"), text("a"), text("c")}, text("a"), 0, false},
		{"greatest全NULL", "greatest", []V{null}, null, 0, false},
		{"greatest不可比较", "greatest", []V{integer(1), text("a")}, nil, values.ErrorNotComparable, true},
		{"if真", "if", []V{boolean(true), integer(1), integer(2)}, integer(1), 0, false},
		{"if假", "if", []V{boolean(false), integer(1), integer(2)}, integer(2), 0, false},
		{"if NULL", "if", []V{null, integer(1), integer(2)}, integer(2), 0, false},
		{"if非布尔", "if", []V{integer(1), integer(1), integer(2)}, nil, values.ErrorTypeMismatch, true},

		// 转换函数
		{"typeof", "typeof", []V{integer(1)}, text("Integer"), 0, false},
		{"typeof NULL", "typeof", []V{null}, text("Null"), 0, false},
		{"typeof数组", "typeof", []V{ints(1)}, text("Array(Integer)"), 0, false},
		{"to_text", "to_text", []V{float(1.5)}, text("1.5"), 0, false},
		{"to_text复合值", "to_text", []V{values.NewComposite("p", map[string]V{"x": integer(1)})}, text("{x: 1}"), 0, false},
		{"to_int", "to_int", []V{text("010")}, integer(10), 0, false},
		{"to_int失败", "to_int", []V{text("abc")}, nil, values.ErrorInvalidCast, true},
		{"to_float", "to_float", []V{integer(2)}, float(2), 0, false},
		{"is_numeric", "is_numeric", []V{text(" 1.5e3 ")}, boolean(true), 0, false},
		{"is_numeric否", "is_numeric", []V{text("1.5x")}, boolean(false), 0, false},
		{"is_numeric空串", "is_numeric", []V{text("")}, boolean(false), 0, false},
		{"is_numeric布尔", "is_numeric", []V{boolean(true)}, boolean(false), 0, false},

		// 数组函数
		{"array_length", "array_length", []V{ints(1, 2, 3)}, integer(3), 0, false},
		{"array_length非数组", "array_length", []V{text("abc")}, nil, values.ErrorTypeMismatch, true},
		{"array_contains", "array_contains", []V{ints(1, 2), integer(2)}, boolean(true), 0, false},
		{"array_contains否", "array_contains", []V{ints(1, 2), integer(5)}, boolean(false), 0, false},
		{"array_append", "array_append", []V{ints(1), integer(2)}, ints(1, 2), 0, false},
		{"array_cat", "array_cat", []V{ints(1), ints(2, 3)}, ints(1, 2, 3), 0, false},
		{"array_position", "array_position", []V{ints(5, 6, 7), integer(6)}, integer(2), 0, false},
		{"array_position不存在", "array_position", []V{ints(5), integer(6)}, null, 0, false},

		// 时间日期函数
		{"now", "now", nil, values.NewDateTime(when), 0, false},
		{"year", "year", []V{values.NewDateTime(when)}, integer(2024), 0, false},
		{"month文本", "month", []V{text("2024-02-29 13:14:15")}, integer(2), 0, false},
		{"day", "day", []V{values.NewDateTime(when)}, integer(29), 0, false},
		{"year类型错误", "year", []V{boolean(true)}, nil, values.ErrorTypeMismatch, true},
		{"unix_timestamp", "unix_timestamp", []V{values.NewDateTime(when)}, integer(when.Unix()), 0, false},
		{"unix_timestamp无参", "unix_timestamp", nil, integer(when.Unix()), 0, false},
		{"from_unixtime", "from_unixtime", []V{integer(when.Unix())}, values.NewDateTime(when), 0, false},

		// 哈希函数
		{"md5", "md5", []V{text("hello")}, text("5d41402abc4b2a76b9719d911017c592"), 0, false},
		{"sha1", "sha1", []V{text("hello")}, text("aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"), 0, false},
		{"sha256", "sha256", []V{text("hello")}, text("2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"), 0, false},
		{"md5 NULL", "md5", []V{null}, null, 0, false},
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
			assert.Equal(t, tt.expected.DataType().Kind(), result.DataType().Kind())
		})
	}
}

func TestRand(t *testing.T) {
	r := NewStandardRegistry()
	for i := 0; i < 20; i++ {
		v, err := r.Execute("rand", nil, nil)
		require.NoError(t, err)
		f := v.(values.Float).Value
		assert.True(t, f >= 0 && f < 1)
	}

	a, err := r.Execute("rand", nil, []V{integer(7)})
	require.NoError(t, err)
	b, err := r.Execute("rand", nil, []V{integer(7)})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNowWithoutStatementTime(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	v, err := NewStandardRegistry().Execute("now", &FunctionContext{}, nil)
	require.NoError(t, err)
	assert.True(t, v.(values.DateTime).Value.After(before))
}

func TestArrayAppendMixedType(t *testing.T) {
	v, err := NewStandardRegistry().Execute("array_append", nil, []V{ints(1), text("x")})
	require.NoError(t, err)
	assert.Equal(t, values.AnyType.Kind(), v.(values.Array).ElementType.Kind())
	assert.Equal(t, "[1, x]", v.Literal())
}
