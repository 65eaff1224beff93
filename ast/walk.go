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

package ast

import "strings"

// Children returns the direct sub-expressions of e in evaluation order.
// Open slice bounds and a missing CASE default are skipped.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *Assignment:
		return []Expr{n.Value}
	case *Column:
		return []Expr{n.Expr}
	case *Array:
		return n.Values
	case *PrefixUnary:
		return []Expr{n.Right}
	case *Index:
		return []Expr{n.Collection, n.Index}
	case *Slice:
		return nonNil(n.Collection, n.Start, n.End)
	case *Arithmetic:
		return []Expr{n.Left, n.Right}
	case *Comparison:
		return []Expr{n.Left, n.Right}
	case *GroupComparison:
		return []Expr{n.Left, n.Right}
	case *Contains:
		return []Expr{n.Left, n.Right}
	case *ContainedBy:
		return []Expr{n.Left, n.Right}
	case *Like:
		return []Expr{n.Input, n.Pattern}
	case *Regex:
		return []Expr{n.Input, n.Pattern}
	case *Glob:
		return []Expr{n.Input, n.Pattern}
	case *Logical:
		return []Expr{n.Left, n.Right}
	case *Bitwise:
		return []Expr{n.Left, n.Right}
	case *Call:
		return n.Arguments
	case *BenchmarkCall:
		return []Expr{n.Count, n.Expression}
	case *Between:
		return []Expr{n.Value, n.RangeStart, n.RangeEnd}
	case *Case:
		children := make([]Expr, 0, len(n.Conditions)*2+1)
		for i := range n.Conditions {
			children = append(children, n.Conditions[i], n.Values[i])
		}
		return nonNil(append(children, n.DefaultValue)...)
	case *In:
		return append([]Expr{n.Argument}, n.Values...)
	case *IsNull:
		return []Expr{n.Argument}
	case *Cast:
		return []Expr{n.Value}
	case *Row:
		return n.Exprs
	case *MemberAccess:
		return []Expr{n.Composite}
	}
	return nil
}

func nonNil(exprs ...Expr) []Expr {
	out := exprs[:0]
	for _, e := range exprs {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Walk visits e and its descendants depth first. Returning false from fn
// skips the children of the node just visited.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, child := range Children(e) {
		Walk(child, fn)
	}
}

// ReferencedColumns lists the column titles e reads, in first-use order.
func ReferencedColumns(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	Walk(e, func(n Expr) bool {
		if s, ok := n.(*Symbol); ok && !seen[s.Name] {
			seen[s.Name] = true
			names = append(names, s.Name)
		}
		return true
	})
	return names
}

// ReferencedFunctions lists the lower-cased names of every function called
// in e, in first-use order. A planner uses it to reject unknown functions
// before evaluation starts.
func ReferencedFunctions(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	Walk(e, func(n Expr) bool {
		if c, ok := n.(*Call); ok {
			name := strings.ToLower(c.FunctionName)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		return true
	})
	return names
}

// HasSideEffects reports whether evaluating e may assign a global variable.
func HasSideEffects(e Expr) bool {
	found := false
	Walk(e, func(n Expr) bool {
		if _, ok := n.(*Assignment); ok {
			found = true
		}
		return !found
	})
	return found
}
