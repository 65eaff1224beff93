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

// format.go 将表达式树格式化为 SQL 文本，主要用于日志与错误信息

package ast

import (
	"bytes"
	"strconv"
	"strings"
)

// Sprint formats e as SQL text.
func Sprint(e Expr) string {
	if e == nil {
		return ""
	}
	var buf bytes.Buffer
	e.Format(&buf)
	return buf.String()
}

func formatList(buf *bytes.Buffer, exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			buf.WriteString(", ")
		}
		e.Format(buf)
	}
}

func formatBinary(buf *bytes.Buffer, left Expr, op string, right Expr) {
	buf.WriteString("(")
	left.Format(buf)
	buf.WriteString(" " + op + " ")
	right.Format(buf)
	buf.WriteString(")")
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (a *Assignment) Format(buf *bytes.Buffer) {
	buf.WriteString("@" + a.Symbol + " := ")
	a.Value.Format(buf)
}

func (s *String) Format(buf *bytes.Buffer)         { buf.WriteString(quote(s.Value)) }
func (s *Symbol) Format(buf *bytes.Buffer)         { buf.WriteString(s.Name) }
func (c *Column) Format(buf *bytes.Buffer)         { c.Expr.Format(buf) }
func (g *GlobalVariable) Format(buf *bytes.Buffer) { buf.WriteString("@" + g.Name) }
func (*Null) Format(buf *bytes.Buffer)             { buf.WriteString("NULL") }

func (a *Array) Format(buf *bytes.Buffer) {
	buf.WriteString("[")
	formatList(buf, a.Values)
	buf.WriteString("]")
}

func (n *Number) Format(buf *bytes.Buffer) {
	if n.IsFloat {
		buf.WriteString(strconv.FormatFloat(n.Float, 'g', -1, 64))
		return
	}
	buf.WriteString(strconv.FormatInt(n.Int, 10))
}

func (b *Boolean) Format(buf *bytes.Buffer) {
	if b.IsTrue {
		buf.WriteString("TRUE")
	} else {
		buf.WriteString("FALSE")
	}
}

func (i *Interval) Format(buf *bytes.Buffer) {
	buf.WriteString("INTERVAL " + quote(i.Interval.Literal()))
}

func (p *PrefixUnary) Format(buf *bytes.Buffer) {
	buf.WriteString(p.Operator.String())
	if len(p.Operator.String()) > 1 {
		buf.WriteString(" ")
	}
	p.Right.Format(buf)
}

func (i *Index) Format(buf *bytes.Buffer) {
	i.Collection.Format(buf)
	buf.WriteString("[")
	i.Index.Format(buf)
	buf.WriteString("]")
}

func (s *Slice) Format(buf *bytes.Buffer) {
	s.Collection.Format(buf)
	buf.WriteString("[")
	if s.Start != nil {
		s.Start.Format(buf)
	}
	buf.WriteString(":")
	if s.End != nil {
		s.End.Format(buf)
	}
	buf.WriteString("]")
}

func (a *Arithmetic) Format(buf *bytes.Buffer) {
	formatBinary(buf, a.Left, a.Operator.String(), a.Right)
}

func (c *Comparison) Format(buf *bytes.Buffer) {
	formatBinary(buf, c.Left, c.Operator.String(), c.Right)
}

func (g *GroupComparison) Format(buf *bytes.Buffer) {
	buf.WriteString("(")
	g.Left.Format(buf)
	buf.WriteString(" " + g.Comparison.String() + " " + g.Group.String() + " (")
	g.Right.Format(buf)
	buf.WriteString("))")
}

func (c *Contains) Format(buf *bytes.Buffer)    { formatBinary(buf, c.Left, "@>", c.Right) }
func (c *ContainedBy) Format(buf *bytes.Buffer) { formatBinary(buf, c.Left, "<@", c.Right) }
func (l *Like) Format(buf *bytes.Buffer)        { formatBinary(buf, l.Input, "LIKE", l.Pattern) }
func (r *Regex) Format(buf *bytes.Buffer)       { formatBinary(buf, r.Input, "REGEXP", r.Pattern) }
func (g *Glob) Format(buf *bytes.Buffer)        { formatBinary(buf, g.Input, "GLOB", g.Pattern) }

func (l *Logical) Format(buf *bytes.Buffer) {
	formatBinary(buf, l.Left, l.Operator.String(), l.Right)
}

func (b *Bitwise) Format(buf *bytes.Buffer) {
	formatBinary(buf, b.Left, b.Operator.String(), b.Right)
}

func (c *Call) Format(buf *bytes.Buffer) {
	buf.WriteString(c.FunctionName + "(")
	formatList(buf, c.Arguments)
	buf.WriteString(")")
}

func (b *BenchmarkCall) Format(buf *bytes.Buffer) {
	buf.WriteString("BENCHMARK(")
	b.Count.Format(buf)
	buf.WriteString(", ")
	b.Expression.Format(buf)
	buf.WriteString(")")
}

func (b *Between) Format(buf *bytes.Buffer) {
	b.Value.Format(buf)
	buf.WriteString(" BETWEEN ")
	if b.Mode == Symmetric {
		buf.WriteString("SYMMETRIC ")
	}
	b.RangeStart.Format(buf)
	buf.WriteString(" AND ")
	b.RangeEnd.Format(buf)
}

func (c *Case) Format(buf *bytes.Buffer) {
	buf.WriteString("CASE")
	for i, cond := range c.Conditions {
		buf.WriteString(" WHEN ")
		cond.Format(buf)
		buf.WriteString(" THEN ")
		c.Values[i].Format(buf)
	}
	if c.DefaultValue != nil {
		buf.WriteString(" ELSE ")
		c.DefaultValue.Format(buf)
	}
	buf.WriteString(" END")
}

func (in *In) Format(buf *bytes.Buffer) {
	in.Argument.Format(buf)
	if in.HasNotKeyword {
		buf.WriteString(" NOT")
	}
	buf.WriteString(" IN (")
	formatList(buf, in.Values)
	buf.WriteString(")")
}

func (n *IsNull) Format(buf *bytes.Buffer) {
	n.Argument.Format(buf)
	if n.HasNot {
		buf.WriteString(" IS NOT NULL")
	} else {
		buf.WriteString(" IS NULL")
	}
}

func (c *Cast) Format(buf *bytes.Buffer) {
	buf.WriteString("CAST(")
	c.Value.Format(buf)
	buf.WriteString(" AS ")
	if c.ResultType != nil {
		buf.WriteString(c.ResultType.String())
	}
	buf.WriteString(")")
}

func (r *Row) Format(buf *bytes.Buffer) {
	buf.WriteString("ROW(")
	formatList(buf, r.Exprs)
	buf.WriteString(")")
}

func (m *MemberAccess) Format(buf *bytes.Buffer) {
	buf.WriteString("(")
	m.Composite.Format(buf)
	buf.WriteString(")." + m.MemberName)
}
