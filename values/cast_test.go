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

package values

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCast(t *testing.T) {
	when := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		input    Value
		target   DataType
		expected Value
		wantErr  bool
	}{
		{"文本转整数", NewText("42"), IntType, NewInteger(42), false},
		{"前导零", NewText("010"), IntType, NewInteger(10), false},
		{"负数前导零", NewText("-007"), IntType, NewInteger(-7), false},
		{"空白", NewText(" 7 "), IntType, NewInteger(7), false},
		{"非数字文本", NewText("abc"), IntType, nil, true},
		{"小数文本转整数", NewText("1.5"), IntType, nil, true},
		{"文本转浮点", NewText("3.5"), FloatType, NewFloat(3.5), false},
		{"文本转布尔", NewText("true"), BoolType, NewBoolean(true), false},
		{"无效布尔", NewText("yes"), BoolType, nil, true},
		{"文本转区间", NewText("1 day"), IntervalType, Interval{Days: 1}, false},
		{"文本转日期", NewText("2024-05-01 10:00:00"), DateTimeType, NewDateTime(when), false},
		{"整数转布尔", NewInteger(1), BoolType, NewBoolean(true), false},
		{"零转布尔", NewInteger(0), BoolType, NewBoolean(false), false},
		{"整数转文本", NewInteger(5), TextType, NewText("5"), false},
		{"整数转日期", NewInteger(when.Unix()), DateTimeType, NewDateTime(when), false},
		{"浮点截断", NewFloat(3.9), IntType, NewInteger(3), false},
		{"浮点转文本", NewFloat(1.5), TextType, NewText("1.5"), false},
		{"NaN转整数", NewFloat(math.NaN()), IntType, nil, true},
		{"超范围浮点", NewFloat(1e30), IntType, nil, true},
		{"布尔转整数", NewBoolean(true), IntType, NewInteger(1), false},
		{"布尔转日期", NewBoolean(true), DateTimeType, nil, true},
		{"区间转文本", Interval{Days: 2}, TextType, NewText("2 days"), false},
		{"区间转整数", Interval{Days: 2}, IntType, nil, true},
		{"日期转整数", NewDateTime(when), IntType, NewInteger(when.Unix()), false},
		{"日期转文本", NewDateTime(when), TextType, NewText("2024-05-01 10:00:00"), false},
		{"NULL", Null{}, IntType, Null{}, false},
		{"任意类型", NewInteger(1), AnyType, NewInteger(1), false},
		{"数组元素转换", NewArray(IntType, NewInteger(1), NewInteger(2)), ArrayType{Element: TextType}, NewArray(TextType, NewText("1"), NewText("2")), false},
		{"数组转整数", NewArray(IntType), IntType, nil, true},
		{"复合值", NewComposite("p", nil), IntType, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Cast(tt.input, tt.target)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCast)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equals(result), "expected %s, got %s", tt.expected.Literal(), result.Literal())
			assert.True(t, tt.expected.DataType().Equals(result.DataType()))
		})
	}

	_, err := Cast(NewInteger(1), nil)
	assert.ErrorIs(t, err, ErrInvalidCast)
}

func TestParseTypeName(t *testing.T) {
	for name, expected := range map[string]DataType{
		"int":      IntType,
		"BIGINT":   IntType,
		"float":    FloatType,
		"text":     TextType,
		"boolean":  BoolType,
		"datetime": DateTimeType,
		"interval": IntervalType,
	} {
		dt, ok := ParseTypeName(name)
		require.True(t, ok, name)
		assert.True(t, expected.Equals(dt), name)
	}
	_, ok := ParseTypeName("blob")
	assert.False(t, ok)
}

func TestErrorKinds(t *testing.T) {
	err := NewError(ErrorDivisionByZero, "division by zero")
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.NotErrorIs(t, err, ErrTypeMismatch)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrorDivisionByZero, kind)
	assert.Equal(t, "DIVISION_BY_ZERO", kind.String())

	_, castErr := Cast(NewText("x"), BoolType)
	assert.True(t, IsKind(castErr, ErrorInvalidCast))
}
