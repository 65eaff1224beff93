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

package gitsql

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rulego/gitsql/ast"
	"github.com/rulego/gitsql/condition"
	"github.com/rulego/gitsql/engine"
	"github.com/rulego/gitsql/environment"
	"github.com/rulego/gitsql/functions"
	"github.com/rulego/gitsql/logger"
	"github.com/rulego/gitsql/types"
	"github.com/rulego/gitsql/values"
)

// Session 是表达式求值的入口。
// 一个Session对应一次查询运行，持有该次运行共享的Environment（全局变量、函数注册表）。
//
// 使用示例:
//
//	s := gitsql.New(gitsql.WithNullOnError())
//	v, err := s.Evaluate(expr, []string{"a", "b"}, []values.Value{values.NewInteger(3), values.NewInteger(4)})
type Session struct {
	mu  sync.RWMutex
	env *environment.Environment

	config   types.Config
	registry *functions.FunctionRegistry
	log      logger.Logger
	levelSet bool
	filter   *condition.ExprCondition

	// initErr 记录选项应用过程中的错误，在首次使用时返回
	initErr error
}

// Column is one projected output column.
type Column struct {
	Name string
	Expr ast.Expr
}

// RowError locates a failure inside a batch.
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d, column %s: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// New 创建一个新的Session。
//
// 示例:
//
//	// 默认配置
//	s := gitsql.New()
//
//	// 出错单元格返回NULL，并限制BENCHMARK次数
//	s := gitsql.New(gitsql.WithNullOnError(), gitsql.WithMaxBenchmarkCount(1000))
func New(options ...Option) *Session {
	s := &Session{config: types.NewConfig()}
	for _, option := range options {
		option(s)
	}

	if s.log == nil {
		s.log = logger.NewLogger(s.config.Level(), os.Stdout)
	} else if s.levelSet {
		s.log.SetLevel(s.config.Level())
	}
	if s.registry == nil {
		s.registry = functions.Default()
	}

	if err := s.config.Validate(); err != nil {
		s.fail(err)
	}
	if s.config.PatternCacheSize > 0 {
		values.SetPatternCacheSize(s.config.PatternCacheSize)
	}
	if s.config.RowFilter != "" {
		filter, err := condition.NewExprCondition(s.config.RowFilter)
		if err != nil {
			s.fail(err)
		} else {
			s.filter = filter
		}
	}

	s.env = s.newEnvironment()
	return s
}

func (s *Session) fail(err error) {
	if s.initErr == nil {
		s.initErr = err
	}
	if s.log != nil {
		s.log.Error("gitsql session: %v", err)
	}
}

func (s *Session) newEnvironment() *environment.Environment {
	env := environment.New(s.registry,
		environment.WithLogger(s.log),
		environment.WithConfig(s.config),
	)
	s.log.Debug("run %s started", env.ID())
	return env
}

// Err returns the first configuration error, if any.
func (s *Session) Err() error { return s.initErr }

// Config returns the effective configuration.
func (s *Session) Config() types.Config { return s.config }

// Logger returns the session logger.
func (s *Session) Logger() logger.Logger { return s.log }

// Environment returns the environment of the current run.
func (s *Session) Environment() *environment.Environment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.env
}

// Reset starts a new run: globals are dropped and a new run ID is assigned.
func (s *Session) Reset() {
	env := s.newEnvironment()
	s.mu.Lock()
	s.env = env
	s.mu.Unlock()
}

// Check verifies that every function expr calls is registered and, when
// titles is not nil, that every column it references exists.
func (s *Session) Check(expr ast.Expr, titles []string) error {
	var problems []string
	for _, name := range ast.ReferencedFunctions(expr) {
		if _, ok := s.registry.Get(name); !ok {
			problems = append(problems, "unknown function "+name)
		}
	}
	if titles != nil {
		known := make(map[string]struct{}, len(titles))
		for _, title := range titles {
			known[title] = struct{}{}
		}
		for _, name := range ast.ReferencedColumns(expr) {
			if _, ok := known[name]; !ok {
				problems = append(problems, "unknown column "+name)
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("check %s: %s", ast.Sprint(expr), strings.Join(problems, "; "))
	}
	return nil
}

// Evaluate evaluates expr against a single row in the current run.
func (s *Session) Evaluate(expr ast.Expr, titles []string, row []values.Value) (values.Value, error) {
	if s.initErr != nil {
		return nil, s.initErr
	}
	return s.evaluateCell(s.Environment(), expr, titles, row)
}

func (s *Session) evaluateCell(env *environment.Environment, expr ast.Expr, titles []string, row []values.Value) (values.Value, error) {
	v, err := engine.Evaluate(env, expr, titles, row)
	if err != nil {
		if s.config.NullOnError {
			s.log.Warn("%s evaluated to NULL: %v", ast.Sprint(expr), err)
			return values.Null{}, nil
		}
		return nil, err
	}
	return v, nil
}

// EvaluateRows evaluates expr against every row in order. Rows share the
// run's globals, so an assignment in one row is visible in the next.
func (s *Session) EvaluateRows(expr ast.Expr, titles []string, rows [][]values.Value) ([]values.Value, error) {
	if s.initErr != nil {
		return nil, s.initErr
	}
	env := s.Environment()
	results := make([]values.Value, len(rows))
	for i, row := range rows {
		v, err := s.evaluateCell(env, expr, titles, row)
		if err != nil {
			return nil, &RowError{Row: i, Err: err}
		}
		results[i] = v
	}
	return results, nil
}

// ProjectRows evaluates columns against every row kept by the row filter
// and returns one output row per kept input row.
func (s *Session) ProjectRows(columns []Column, titles []string, rows [][]values.Value) ([][]values.Value, error) {
	if s.initErr != nil {
		return nil, s.initErr
	}
	env := s.Environment()
	out := make([][]values.Value, 0, len(rows))
	for i, row := range rows {
		if s.filter != nil && !s.filter.Evaluate(titles, row) {
			continue
		}
		projected := make([]values.Value, len(columns))
		for j, column := range columns {
			v, err := s.evaluateCell(env, column.Expr, titles, row)
			if err != nil {
				return nil, &RowError{Row: i, Column: column.Name, Err: err}
			}
			projected[j] = v
		}
		out = append(out, projected)
	}
	return out, nil
}

// Titles returns the column names of columns.
func Titles(columns []Column) []string {
	titles := make([]string, len(columns))
	for i, column := range columns {
		titles[i] = column.Name
	}
	return titles
}
