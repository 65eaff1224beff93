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
	"strings"
)

// Kind is the discriminant of a DataType.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindInterval
	KindDateTime
	KindArray
	KindRow
	KindComposite
	KindAny
)

// DataType describes the static type of a value.
type DataType interface {
	Kind() Kind
	String() string
	// Equals reports structural equality. AnyType equals every type.
	Equals(other DataType) bool
}

type scalarType struct {
	kind Kind
	name string
}

func (t scalarType) Kind() Kind     { return t.kind }
func (t scalarType) String() string { return t.name }

func (t scalarType) Equals(other DataType) bool {
	if other == nil {
		return false
	}
	if t.kind == KindAny || other.Kind() == KindAny {
		return true
	}
	return t.kind == other.Kind()
}

// 标量类型
var (
	NullType     DataType = scalarType{kind: KindNull, name: "Null"}
	BoolType     DataType = scalarType{kind: KindBool, name: "Boolean"}
	IntType      DataType = scalarType{kind: KindInt, name: "Integer"}
	FloatType    DataType = scalarType{kind: KindFloat, name: "Float"}
	TextType     DataType = scalarType{kind: KindText, name: "Text"}
	IntervalType DataType = scalarType{kind: KindInterval, name: "Interval"}
	DateTimeType DataType = scalarType{kind: KindDateTime, name: "DateTime"}
	AnyType      DataType = scalarType{kind: KindAny, name: "Any"}
)

// ArrayType is a homogeneous array of Element.
type ArrayType struct {
	Element DataType
}

func (t ArrayType) Kind() Kind { return KindArray }

func (t ArrayType) String() string {
	if t.Element == nil {
		return "Array(Any)"
	}
	return "Array(" + t.Element.String() + ")"
}

func (t ArrayType) Equals(other DataType) bool {
	if other == nil {
		return false
	}
	if other.Kind() == KindAny {
		return true
	}
	o, ok := other.(ArrayType)
	if !ok {
		return false
	}
	return elementOrAny(t.Element).Equals(elementOrAny(o.Element))
}

// RowType is a positional tuple type.
type RowType struct {
	Columns []DataType
}

func (t RowType) Kind() Kind { return KindRow }

func (t RowType) String() string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.String()
	}
	return "Row(" + strings.Join(names, ", ") + ")"
}

func (t RowType) Equals(other DataType) bool {
	if other == nil {
		return false
	}
	if other.Kind() == KindAny {
		return true
	}
	o, ok := other.(RowType)
	if !ok || len(o.Columns) != len(t.Columns) {
		return false
	}
	for i := range t.Columns {
		if !t.Columns[i].Equals(o.Columns[i]) {
			return false
		}
	}
	return true
}

// Member is a named member of a composite type.
type Member struct {
	Name string
	Type DataType
}

// CompositeType is a user defined struct-like type.
type CompositeType struct {
	Name    string
	Members []Member
}

func (t CompositeType) Kind() Kind     { return KindComposite }
func (t CompositeType) String() string { return t.Name }

func (t CompositeType) Equals(other DataType) bool {
	if other == nil {
		return false
	}
	if other.Kind() == KindAny {
		return true
	}
	o, ok := other.(CompositeType)
	if !ok || o.Name != t.Name || len(o.Members) != len(t.Members) {
		return false
	}
	for i := range t.Members {
		if t.Members[i].Name != o.Members[i].Name || !t.Members[i].Type.Equals(o.Members[i].Type) {
			return false
		}
	}
	return true
}

// Member returns the declared type of a member.
func (t CompositeType) Member(name string) (DataType, bool) {
	for _, m := range t.Members {
		if m.Name == name {
			return m.Type, true
		}
	}
	return nil, false
}

func elementOrAny(t DataType) DataType {
	if t == nil {
		return AnyType
	}
	return t
}

// IsNumeric reports whether t is Integer or Float.
func IsNumeric(t DataType) bool {
	return t != nil && (t.Kind() == KindInt || t.Kind() == KindFloat)
}

// ParseTypeName maps SQL type names used by CAST to a scalar DataType.
func ParseTypeName(name string) (DataType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int", "integer", "bigint", "int64":
		return IntType, true
	case "float", "real", "double", "float64":
		return FloatType, true
	case "text", "string", "varchar":
		return TextType, true
	case "bool", "boolean":
		return BoolType, true
	case "interval":
		return IntervalType, true
	case "datetime", "timestamp", "date":
		return DateTimeType, true
	case "any":
		return AnyType, true
	case "null":
		return NullType, true
	}
	return nil, false
}
