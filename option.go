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
	"io"

	"github.com/rulego/gitsql/functions"
	"github.com/rulego/gitsql/logger"
	"github.com/rulego/gitsql/types"
)

// Option 表示对Session默认行为的修改配置。
type Option func(*Session)

// WithLogger 设置自定义日志记录器。
//
// 示例:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	s := gitsql.New(gitsql.WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithLogLevel 设置日志级别。
//
// 示例:
//
//	s := gitsql.New(gitsql.WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(s *Session) {
		s.config.LogLevel = level.String()
		s.levelSet = true
	}
}

// WithLogOutput 设置日志输出目标和级别。
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(s *Session) {
		s.log = logger.NewLogger(level, output)
		s.config.LogLevel = level.String()
	}
}

// WithDiscardLog 禁用所有日志输出。
func WithDiscardLog() Option {
	return func(s *Session) {
		s.log = logger.NewDiscardLogger()
		s.config.LogLevel = logger.OFF.String()
	}
}

// WithNullOnError 出错的单元格返回NULL并记录警告，而不是返回错误。
func WithNullOnError() Option {
	return func(s *Session) {
		s.config.NullOnError = true
	}
}

// WithMaxBenchmarkCount 限制BENCHMARK的最大执行次数，0表示不限制。
func WithMaxBenchmarkCount(max int64) Option {
	return func(s *Session) {
		s.config.MaxBenchmarkCount = max
	}
}

// WithPatternCacheSize 设置REGEXP/GLOB编译缓存大小。该缓存为进程级共享。
func WithPatternCacheSize(size int) Option {
	return func(s *Session) {
		s.config.PatternCacheSize = size
	}
}

// WithRegistry 使用自定义函数注册表替代标准函数集。
//
// 示例:
//
//	registry := functions.NewStandardRegistry()
//	_ = registry.RegisterCustom("double", functions.TypeCustom, "custom", "x*2", 1, 1, doubleFn)
//	s := gitsql.New(gitsql.WithRegistry(registry))
func WithRegistry(registry *functions.FunctionRegistry) Option {
	return func(s *Session) {
		s.registry = registry
	}
}

// WithRowFilter 设置行过滤条件（expr-lang语法），仅作用于ProjectRows。
//
// 示例:
//
//	s := gitsql.New(gitsql.WithRowFilter("is_not_null(author) && lines > 10"))
func WithRowFilter(expression string) Option {
	return func(s *Session) {
		s.config.RowFilter = expression
	}
}

// WithConfig 整体替换会话配置，后续选项仍可覆盖其中字段。
//
// 示例:
//
//	s := gitsql.New(gitsql.WithConfig(types.LenientConfig()))
func WithConfig(config types.Config) Option {
	return func(s *Session) {
		s.config = config
		s.levelSet = true
	}
}
