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
	"sort"
	"strings"
)

// Array is a homogeneous list. The producer guarantees that every element
// fits ElementType; it is not re-validated here.
type Array struct {
	ElementType DataType
	Values      []Value
}

// NewArray returns an Array of elementType holding vals.
func NewArray(elementType DataType, vals ...Value) Array {
	if elementType == nil {
		elementType = AnyType
	}
	return Array{ElementType: elementType, Values: vals}
}

func (a Array) DataType() DataType { return ArrayType{Element: elementOrAny(a.ElementType)} }
func (a Array) Literal() string    { return "[" + joinLiterals(a.Values) + "]" }
func (a Array) Elements() []Value  { return a.Values }

func (a Array) Equals(other Value) bool {
	o, ok := other.(Array)
	return ok && equalSlices(a.Values, o.Values)
}

func (a Array) Compare(other Value) (Ordering, bool) {
	o, ok := other.(Array)
	if !ok {
		return 0, false
	}
	return compareSeq(a.Values, o.Values)
}

func (a Array) Clone() Value {
	return Array{ElementType: a.ElementType, Values: cloneAll(a.Values)}
}

func (a Array) Contains(item Value) (Value, error) {
	return Boolean{Value: containsValue(a.Values, item)}, nil
}

func (a Array) Index(index Value) (Value, error) {
	i, err := normalizeIndex(index, len(a.Values))
	if err != nil {
		return nil, err
	}
	return a.Values[i].Clone(), nil
}

func (a Array) Slice(start, end Value) (Value, error) {
	from, to, err := sliceBounds(start, end, len(a.Values))
	if err != nil {
		return nil, err
	}
	return Array{ElementType: a.ElementType, Values: cloneAll(a.Values[from:to])}, nil
}

func (a Array) CastTo(target DataType) (Value, error) {
	switch t := target.(type) {
	case ArrayType:
		element := elementOrAny(t.Element)
		out := make([]Value, len(a.Values))
		for i, v := range a.Values {
			c, err := Cast(v, element)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return Array{ElementType: element, Values: out}, nil
	}
	switch target.Kind() {
	case KindAny:
		return a.Clone(), nil
	case KindText:
		return Text{Value: a.Literal()}, nil
	}
	return nil, invalidCast(a, target)
}

// Row is an anonymous positional tuple.
type Row struct {
	Type   RowType
	Values []Value
}

// NewRow returns a Row; when rowType is nil it is derived from vals.
func NewRow(rowType *RowType, vals ...Value) Row {
	if rowType != nil {
		return Row{Type: *rowType, Values: vals}
	}
	columns := make([]DataType, len(vals))
	for i, v := range vals {
		columns[i] = v.DataType()
	}
	return Row{Type: RowType{Columns: columns}, Values: vals}
}

func (r Row) DataType() DataType { return r.Type }
func (r Row) Literal() string    { return "(" + joinLiterals(r.Values) + ")" }
func (r Row) Elements() []Value  { return r.Values }

func (r Row) Equals(other Value) bool {
	o, ok := other.(Row)
	return ok && equalSlices(r.Values, o.Values)
}

func (r Row) Compare(other Value) (Ordering, bool) {
	o, ok := other.(Row)
	if !ok {
		return 0, false
	}
	return compareSeq(r.Values, o.Values)
}

func (r Row) Clone() Value {
	columns := make([]DataType, len(r.Type.Columns))
	copy(columns, r.Type.Columns)
	return Row{Type: RowType{Columns: columns}, Values: cloneAll(r.Values)}
}

func (r Row) Contains(item Value) (Value, error) {
	return Boolean{Value: containsValue(r.Values, item)}, nil
}

// Composite is a struct-like value with uniquely named members.
type Composite struct {
	TypeName string
	Members  map[string]Value
}

// NewComposite returns a Composite named typeName. members is copied.
func NewComposite(typeName string, members map[string]Value) Composite {
	m := make(map[string]Value, len(members))
	for k, v := range members {
		m[k] = v
	}
	return Composite{TypeName: typeName, Members: m}
}

// Member looks up a member value by name.
func (c Composite) Member(name string) (Value, bool) {
	v, ok := c.Members[name]
	return v, ok
}

func (c Composite) memberNames() []string {
	names := make([]string, 0, len(c.Members))
	for name := range c.Members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c Composite) DataType() DataType {
	names := c.memberNames()
	members := make([]Member, len(names))
	for i, name := range names {
		members[i] = Member{Name: name, Type: c.Members[name].DataType()}
	}
	return CompositeType{Name: c.TypeName, Members: members}
}

func (c Composite) Literal() string {
	names := c.memberNames()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + c.Members[name].Literal()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (c Composite) Equals(other Value) bool {
	o, ok := other.(Composite)
	if !ok || o.TypeName != c.TypeName || len(o.Members) != len(c.Members) {
		return false
	}
	for name, v := range c.Members {
		ov, ok := o.Members[name]
		if !ok || !v.Equals(ov) {
			return false
		}
	}
	return true
}

// Compare: composites have no ordering.
func (c Composite) Compare(Value) (Ordering, bool) {
	return 0, false
}

func (c Composite) Clone() Value {
	m := make(map[string]Value, len(c.Members))
	for k, v := range c.Members {
		m[k] = v.Clone()
	}
	return Composite{TypeName: c.TypeName, Members: m}
}

func joinLiterals(vals []Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.Literal()
	}
	return strings.Join(parts, ", ")
}

func cloneAll(vals []Value) []Value {
	out := make([]Value, len(vals))
	for i, v := range vals {
		out[i] = v.Clone()
	}
	return out
}

func containsValue(vals []Value, item Value) bool {
	for _, v := range vals {
		if v.Equals(item) {
			return true
		}
	}
	return false
}

func equalSlices(left, right []Value) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !left[i].Equals(right[i]) {
			return false
		}
	}
	return true
}

func compareSeq(left, right []Value) (Ordering, bool) {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		ord, ok := left[i].Compare(right[i])
		if !ok {
			return 0, false
		}
		if ord != Equal {
			return ord, true
		}
	}
	return orderOf(compareInt(int64(len(left)), int64(len(right)))), true
}
