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
	"errors"
	"fmt"
)

// ErrorKind 定义求值错误类型
type ErrorKind int

const (
	ErrorTypeMismatch ErrorKind = iota
	ErrorNotComparable
	ErrorDivisionByZero
	ErrorInvalidCast
	ErrorInvalidPattern
	ErrorIndexOutOfRange
	ErrorInvalidSlice
	ErrorUnknownColumn
	ErrorUndefinedVariable
	ErrorUnknownFunction
	ErrorUnknownMember
	ErrorNotAComposite
	ErrorMissingDefault
	ErrorInvalidOperation
)

// String returns the upper snake case name of the kind
func (k ErrorKind) String() string {
	switch k {
	case ErrorTypeMismatch:
		return "TYPE_MISMATCH"
	case ErrorNotComparable:
		return "NOT_COMPARABLE"
	case ErrorDivisionByZero:
		return "DIVISION_BY_ZERO"
	case ErrorInvalidCast:
		return "INVALID_CAST"
	case ErrorInvalidPattern:
		return "INVALID_PATTERN"
	case ErrorIndexOutOfRange:
		return "INDEX_OUT_OF_RANGE"
	case ErrorInvalidSlice:
		return "INVALID_SLICE"
	case ErrorUnknownColumn:
		return "UNKNOWN_COLUMN"
	case ErrorUndefinedVariable:
		return "UNDEFINED_VARIABLE"
	case ErrorUnknownFunction:
		return "UNKNOWN_FUNCTION"
	case ErrorUnknownMember:
		return "UNKNOWN_MEMBER"
	case ErrorNotAComposite:
		return "NOT_A_COMPOSITE"
	case ErrorMissingDefault:
		return "MISSING_DEFAULT"
	case ErrorInvalidOperation:
		return "INVALID_OPERATION"
	default:
		return "UNKNOWN_ERROR"
	}
}

// EvalError is the single error type produced while evaluating values and
// expressions. It carries the error kind and a human readable detail.
type EvalError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewError 创建求值错误
func NewError(kind ErrorKind, format string, args ...interface{}) *EvalError {
	return &EvalError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError creates an error of the given kind that keeps cause in its chain.
func WrapError(kind ErrorKind, cause error, format string, args ...interface{}) *EvalError {
	return &EvalError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// Error 实现 error 接口
func (e *EvalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *EvalError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *EvalError of the same kind. This lets
// callers match against the sentinel errors below with errors.Is.
func (e *EvalError) Is(target error) bool {
	var other *EvalError
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrTypeMismatch      = &EvalError{Kind: ErrorTypeMismatch}
	ErrNotComparable     = &EvalError{Kind: ErrorNotComparable}
	ErrDivisionByZero    = &EvalError{Kind: ErrorDivisionByZero}
	ErrInvalidCast       = &EvalError{Kind: ErrorInvalidCast}
	ErrInvalidPattern    = &EvalError{Kind: ErrorInvalidPattern}
	ErrIndexOutOfRange   = &EvalError{Kind: ErrorIndexOutOfRange}
	ErrInvalidSlice      = &EvalError{Kind: ErrorInvalidSlice}
	ErrUnknownColumn     = &EvalError{Kind: ErrorUnknownColumn}
	ErrUndefinedVariable = &EvalError{Kind: ErrorUndefinedVariable}
	ErrUnknownFunction   = &EvalError{Kind: ErrorUnknownFunction}
	ErrUnknownMember     = &EvalError{Kind: ErrorUnknownMember}
	ErrNotAComposite     = &EvalError{Kind: ErrorNotAComposite}
	ErrMissingDefault    = &EvalError{Kind: ErrorMissingDefault}
	ErrInvalidOperation  = &EvalError{Kind: ErrorInvalidOperation}
)

// IsKind 检查错误链中是否包含指定类型的求值错误
func IsKind(err error, kind ErrorKind) bool {
	var evalErr *EvalError
	if !errors.As(err, &evalErr) {
		return false
	}
	return evalErr.Kind == kind
}

// KindOf returns the kind of the first *EvalError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var evalErr *EvalError
	if !errors.As(err, &evalErr) {
		return 0, false
	}
	return evalErr.Kind, true
}

func typeMismatch(op string, left, right Value) *EvalError {
	return NewError(ErrorTypeMismatch, "operator %s is not defined for %s and %s", op, left.DataType(), right.DataType())
}

func notComparable(left, right Value) *EvalError {
	return NewError(ErrorNotComparable, "cannot compare %s with %s", left.DataType(), right.DataType())
}

func unsupported(op string, v Value) *EvalError {
	return NewError(ErrorInvalidOperation, "operator %s is not supported by %s", op, v.DataType())
}
