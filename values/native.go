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
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// Native converts v into plain Go data: nil, bool, int64, float64, string,
// time.Time, time.Duration, []interface{} or map[string]interface{}.
func Native(v Value) interface{} {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Boolean:
		return t.Value
	case Integer:
		return t.Value
	case Float:
		return t.Value
	case Text:
		return t.Value
	case Interval:
		days, nanos := t.normalized()
		return time.Duration(days*nanosPerDay + nanos)
	case DateTime:
		return t.Value
	case Array:
		return nativeAll(t.Values)
	case Row:
		return nativeAll(t.Values)
	case Composite:
		m := make(map[string]interface{}, len(t.Members))
		for name, member := range t.Members {
			m[name] = Native(member)
		}
		return m
	}
	return v.Literal()
}

func nativeAll(vals []Value) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = Native(v)
	}
	return out
}

// FromNative converts plain Go data into a Value. Slices become Arrays of
// the first element's type (Any when empty or mixed) and maps become
// Composites named typeName "object".
func FromNative(x interface{}) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return t, nil
	case bool:
		return Boolean{Value: t}, nil
	case string:
		return Text{Value: t}, nil
	case []byte:
		return Text{Value: string(t)}, nil
	case float32:
		return Float{Value: float64(t)}, nil
	case float64:
		return Float{Value: t}, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		i, err := cast.ToInt64E(t)
		if err != nil {
			return nil, WrapError(ErrorInvalidCast, err, "cannot convert %T", x)
		}
		return Integer{Value: i}, nil
	case time.Time:
		return DateTime{Value: t}, nil
	case time.Duration:
		return Interval{Nanos: int64(t)}, nil
	case []interface{}:
		vals := make([]Value, len(t))
		for i, item := range t {
			v, err := FromNative(item)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return NewArray(commonType(vals), vals...), nil
	case []string:
		vals := make([]Value, len(t))
		for i, s := range t {
			vals[i] = Text{Value: s}
		}
		return NewArray(TextType, vals...), nil
	case map[string]interface{}:
		members := make(map[string]Value, len(t))
		for k, item := range t {
			v, err := FromNative(item)
			if err != nil {
				return nil, err
			}
			members[k] = v
		}
		return Composite{TypeName: "object", Members: members}, nil
	}
	return nil, NewError(ErrorInvalidCast, "unsupported native type %s", fmt.Sprintf("%T", x))
}

func commonType(vals []Value) DataType {
	if len(vals) == 0 {
		return AnyType
	}
	first := vals[0].DataType()
	for _, v := range vals[1:] {
		if !v.DataType().Equals(first) {
			return AnyType
		}
	}
	return first
}
