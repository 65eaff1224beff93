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

// Package environment holds the state shared by every evaluation of one
// query run: global variables, the function registry, the logger and the
// session configuration.
//
// Global variables are the only mutable part. Reads and writes are guarded
// so rows may be evaluated concurrently; values are cloned on the way in and
// out so no caller can mutate a stored value in place.
package environment

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rulego/gitsql/functions"
	"github.com/rulego/gitsql/logger"
	"github.com/rulego/gitsql/types"
	"github.com/rulego/gitsql/values"
)

// Environment 查询运行环境
type Environment struct {
	id        uuid.UUID
	startedAt time.Time
	registry  *functions.FunctionRegistry
	log       logger.Logger
	config    types.Config

	mu      sync.RWMutex
	globals map[string]values.Value
}

// Option configures an Environment.
type Option func(*Environment)

// WithLogger sets the logger. The run ID is added as prefix.
func WithLogger(l logger.Logger) Option {
	return func(e *Environment) {
		if l != nil {
			e.log = l
		}
	}
}

// WithConfig sets the session configuration.
func WithConfig(c types.Config) Option {
	return func(e *Environment) {
		e.config = c
	}
}

// WithStartTime fixes the statement timestamp returned by now().
func WithStartTime(t time.Time) Option {
	return func(e *Environment) {
		e.startedAt = t
	}
}

// New creates an environment for one run. A nil registry selects the
// standard functions.
func New(registry *functions.FunctionRegistry, opts ...Option) *Environment {
	if registry == nil {
		registry = functions.Default()
	}
	e := &Environment{
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		registry:  registry,
		log:       logger.GetDefault(),
		config:    types.NewConfig(),
		globals:   make(map[string]values.Value),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithPrefix("run=" + e.id.String())
	return e
}

// ID returns the run ID.
func (e *Environment) ID() uuid.UUID { return e.id }

// StartedAt returns the statement timestamp.
func (e *Environment) StartedAt() time.Time { return e.startedAt }

// Logger returns the run scoped logger.
func (e *Environment) Logger() logger.Logger { return e.log }

// Config returns the session configuration.
func (e *Environment) Config() types.Config { return e.config }

// Registry returns the function registry.
func (e *Environment) Registry() *functions.FunctionRegistry { return e.registry }

// Function looks up a function by name, ignoring case.
func (e *Environment) Function(name string) (functions.Function, bool) {
	return e.registry.Get(name)
}

// Global returns a copy of the global variable name.
func (e *Environment) Global(name string) (values.Value, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.globals[name]
	if !ok {
		return nil, false
	}
	return v.Clone(), true
}

// SetGlobal stores a copy of v under name, replacing any previous value.
func (e *Environment) SetGlobal(name string, v values.Value) {
	if v == nil {
		v = values.Null{}
	}
	stored := v.Clone()

	e.mu.Lock()
	e.globals[name] = stored
	e.mu.Unlock()

	e.log.Debug("set @%s = %s", name, stored.Literal())
}

// Globals returns a snapshot of every global variable.
func (e *Environment) Globals() map[string]values.Value {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snapshot := make(map[string]values.Value, len(e.globals))
	for name, v := range e.globals {
		snapshot[name] = v.Clone()
	}
	return snapshot
}

// GlobalNames returns the sorted names of the defined globals.
func (e *Environment) GlobalNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.globals))
	for name := range e.globals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FunctionContext builds the context passed to functions for one row.
func (e *Environment) FunctionContext(titles []string, row []values.Value) *functions.FunctionContext {
	return &functions.FunctionContext{Titles: titles, Row: row, Now: e.startedAt}
}
