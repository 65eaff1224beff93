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

package types

import (
	"encoding/json"
	"fmt"

	"github.com/rulego/gitsql/logger"
)

// Config 会话配置
type Config struct {
	// 日志
	LogLevel string `json:"logLevel"`

	// 错误处理
	// NullOnError replaces a failing cell with NULL and logs a warning
	// instead of returning the error to the caller.
	NullOnError bool `json:"nullOnError"`

	// 资源限制
	// MaxBenchmarkCount caps the repeat count of BENCHMARK. 0 means no limit.
	MaxBenchmarkCount int64 `json:"maxBenchmarkCount"`
	// PatternCacheSize is the number of compiled REGEXP and GLOB patterns kept.
	// The cache is shared by the whole process; the most recently built Session sets it.
	PatternCacheSize int `json:"patternCacheSize"`

	// 行过滤
	// RowFilter is an expr-lang boolean expression evaluated against each
	// row before projection. Empty means every row is kept.
	RowFilter string `json:"rowFilter"`
}

// DefaultPatternCacheSize 默认模式缓存大小
const DefaultPatternCacheSize = 256

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{
		LogLevel:         logger.INFO.String(),
		PatternCacheSize: DefaultPatternCacheSize,
	}
}

// LenientConfig 宽松配置预设：单元格出错时返回NULL
func LenientConfig() Config {
	config := NewConfig()
	config.NullOnError = true
	config.LogLevel = logger.WARN.String()
	return config
}

// StrictConfig 严格配置预设：限制BENCHMARK次数，错误直接返回
func StrictConfig() Config {
	config := NewConfig()
	config.MaxBenchmarkCount = 1_000_000
	return config
}

// ParseConfig decodes a JSON document on top of the defaults and validates it.
func ParseConfig(data []byte) (Config, error) {
	config := NewConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Level returns the parsed log level.
func (c Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.INFO
	}
	return level
}

// Validate 校验配置
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.MaxBenchmarkCount < 0 {
		return fmt.Errorf("invalid config: maxBenchmarkCount must not be negative, got %d", c.MaxBenchmarkCount)
	}
	if c.PatternCacheSize < 0 {
		return fmt.Errorf("invalid config: patternCacheSize must not be negative, got %d", c.PatternCacheSize)
	}
	return nil
}
