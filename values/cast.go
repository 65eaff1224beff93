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
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

var decimalInteger = regexp.MustCompile(`^[+-]?[0-9]+$`)

// Cast converts v to target. Null casts to Null for every target.
func Cast(v Value, target DataType) (Value, error) {
	if target == nil {
		return nil, NewError(ErrorInvalidCast, "missing cast target type")
	}
	if IsNull(v) {
		return Null{}, nil
	}
	c, ok := v.(Castable)
	if !ok {
		if v.DataType().Equals(target) {
			return v.Clone(), nil
		}
		return nil, invalidCast(v, target)
	}
	return c.CastTo(target)
}

func invalidCast(v Value, target DataType) *EvalError {
	return NewError(ErrorInvalidCast, "cannot cast %s '%s' to %s", v.DataType(), v.Literal(), target)
}

// castScalar converts the Boolean, Integer and Float variants. raw is the
// Go payload of src.
func castScalar(src Value, raw interface{}, target DataType) (Value, error) {
	if target.Kind() == KindAny || target.Kind() == src.DataType().Kind() {
		return src, nil
	}
	if f, ok := raw.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) && target.Kind() != KindText {
		return nil, invalidCast(src, target)
	}
	switch target.Kind() {
	case KindInt:
		if f, ok := raw.(float64); ok && (f >= math.MaxInt64 || f < math.MinInt64) {
			return nil, invalidCast(src, target)
		}
		i, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, WrapError(ErrorInvalidCast, err, "cannot cast %s to %s", src.DataType(), target)
		}
		return Integer{Value: i}, nil
	case KindFloat:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, WrapError(ErrorInvalidCast, err, "cannot cast %s to %s", src.DataType(), target)
		}
		return Float{Value: f}, nil
	case KindText:
		if f, ok := raw.(float64); ok {
			return Text{Value: Float{Value: f}.Literal()}, nil
		}
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, WrapError(ErrorInvalidCast, err, "cannot cast %s to %s", src.DataType(), target)
		}
		return Text{Value: s}, nil
	case KindBool:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, WrapError(ErrorInvalidCast, err, "cannot cast %s to %s", src.DataType(), target)
		}
		return Boolean{Value: b}, nil
	case KindDateTime:
		if _, ok := raw.(bool); ok {
			return nil, invalidCast(src, target)
		}
		t, err := cast.ToTimeE(raw)
		if err != nil {
			return nil, WrapError(ErrorInvalidCast, err, "cannot cast %s to %s", src.DataType(), target)
		}
		return DateTime{Value: t.UTC()}, nil
	}
	return nil, invalidCast(src, target)
}

func castText(t Text, target DataType) (Value, error) {
	s := strings.TrimSpace(t.Value)
	switch target.Kind() {
	case KindText, KindAny:
		return t, nil
	case KindInt:
		if !decimalInteger.MatchString(s) {
			return nil, invalidCast(t, target)
		}
		// 去掉前导零，避免被当作八进制解析
		i, err := cast.ToInt64E(trimLeadingZeros(s))
		if err != nil {
			return nil, WrapError(ErrorInvalidCast, err, "cannot cast Text '%s' to %s", t.Value, target)
		}
		return Integer{Value: i}, nil
	case KindFloat:
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return nil, WrapError(ErrorInvalidCast, err, "cannot cast Text '%s' to %s", t.Value, target)
		}
		return Float{Value: f}, nil
	case KindBool:
		b, err := cast.ToBoolE(s)
		if err != nil {
			return nil, WrapError(ErrorInvalidCast, err, "cannot cast Text '%s' to %s", t.Value, target)
		}
		return Boolean{Value: b}, nil
	case KindInterval:
		iv, err := ParseInterval(s)
		if err != nil {
			return nil, WrapError(ErrorInvalidCast, err, "cannot cast Text '%s' to %s", t.Value, target)
		}
		return iv, nil
	case KindDateTime:
		tm, err := cast.ToTimeE(s)
		if err != nil {
			return nil, WrapError(ErrorInvalidCast, err, "cannot cast Text '%s' to %s", t.Value, target)
		}
		return DateTime{Value: tm}, nil
	}
	return nil, invalidCast(t, target)
}

func trimLeadingZeros(s string) string {
	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	if sign == "-" {
		return sign + s
	}
	return s
}
