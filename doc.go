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

/*
Package gitsql 是面向仓库元数据查询的SQL表达式求值核心。

解析器（外部协作方）产出表达式树，gitsql 对单行数据（列标题 + 按位置排列的值）
求值，得到一个带类型的结果或一个结构化错误。

# 核心特性

• 类型化值模型 - Null, Boolean, Integer, Float, Text, Interval, DateTime, Array, Row, Composite
• 完整运算符集 - 算术、比较、ANY/ALL分组比较、三值逻辑、位运算、LIKE/REGEXP/GLOB
• 集合操作 - 下标、切片、包含、成员访问
• 结构化错误 - 每种失败对应一个 values.ErrorKind，单行失败不影响整体
• 全局变量 - @name := expr 在同一次运行内对后续行可见
• 可扩展函数库 - 内置字符串、数学、条件、转换、数组、日期、哈希函数，支持自定义注册

# 入门示例

	s := gitsql.New(gitsql.WithDiscardLog())

	// a + b * 2
	expr := &ast.Arithmetic{
		Left:     &ast.Symbol{Name: "a"},
		Operator: values.OpPlus,
		Right: &ast.Arithmetic{
			Left:     &ast.Symbol{Name: "b"},
			Operator: values.OpStar,
			Right:    ast.Int(2),
		},
	}
	v, err := s.Evaluate(expr, []string{"a", "b"}, []values.Value{values.NewInteger(3), values.NewInteger(4)})
	// v == Integer(11)

# 求值语义

AND/OR/XOR 的两侧总是都会求值，不做短路：

	@x := TRUE OR @x := FALSE   -- 结果为 TRUE，@x 为 FALSE

CASE 按顺序测试条件，命中第一个后停止；没有命中且没有 ELSE 时返回 MissingDefault。

# 批量处理

ProjectRows 对每一行计算多列，WithRowFilter 可在投影前用 expr-lang 表达式过滤行：

	s := gitsql.New(gitsql.WithRowFilter("like_match(message, 'fix%')"), gitsql.WithNullOnError())
	out, err := s.ProjectRows([]gitsql.Column{
		{Name: "author", Expr: &ast.Call{FunctionName: "upper", Arguments: []ast.Expr{&ast.Symbol{Name: "author"}}}},
	}, titles, rows)

出错时返回 *RowError，包含行号与列名；启用 WithNullOnError 后出错单元格为 NULL 并记录警告。

# 自定义函数

	functions.RegisterCustomFunction("double", functions.TypeCustom, "custom", "x*2", 1, 1,
		func(ctx *functions.FunctionContext, args []values.Value) (values.Value, error) {
			return values.Arithmetic(values.OpStar, args[0], values.NewInteger(2))
		})
*/
package gitsql
