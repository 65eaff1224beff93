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

// Text 文本值
type Text struct {
	Value string
}

// NewText returns a Text holding s.
func NewText(s string) Text {
	return Text{Value: s}
}

func (t Text) DataType() DataType { return TextType }
func (t Text) Literal() string    { return t.Value }
func (t Text) Clone() Value       { return t }

func (t Text) Equals(other Value) bool {
	o, ok := other.(Text)
	return ok && o.Value == t.Value
}

func (t Text) Compare(other Value) (Ordering, bool) {
	o, ok := other.(Text)
	if !ok {
		return 0, false
	}
	return orderOf(strings.Compare(t.Value, o.Value)), true
}

func (t Text) Match(kind PatternKind, pattern Value) (Value, error) {
	switch p := pattern.(type) {
	case Text:
		matched, err := matchText(kind, t.Value, p.Value)
		if err != nil {
			return nil, err
		}
		return Boolean{Value: matched}, nil
	case Null:
		return Null{}, nil
	}
	return nil, typeMismatch(kind.String(), t, pattern)
}

// Index returns the character at index as a one character Text.
func (t Text) Index(index Value) (Value, error) {
	runes := []rune(t.Value)
	i, err := normalizeIndex(index, len(runes))
	if err != nil {
		return nil, err
	}
	return Text{Value: string(runes[i])}, nil
}

func (t Text) Slice(start, end Value) (Value, error) {
	runes := []rune(t.Value)
	from, to, err := sliceBounds(start, end, len(runes))
	if err != nil {
		return nil, err
	}
	return Text{Value: string(runes[from:to])}, nil
}

func (t Text) CastTo(target DataType) (Value, error) {
	return castText(t, target)
}

// normalizeIndex resolves a Python style index against length.
func normalizeIndex(index Value, length int) (int, error) {
	idx, ok := index.(Integer)
	if !ok {
		return 0, NewError(ErrorTypeMismatch, "index must be Integer, got %s", index.DataType())
	}
	i := idx.Value
	if i < 0 {
		i += int64(length)
	}
	if i < 0 || i >= int64(length) {
		return 0, NewError(ErrorIndexOutOfRange, "index %d is out of range for length %d", idx.Value, length)
	}
	return int(i), nil
}

// sliceBounds resolves optional slice bounds. Negative bounds count from the
// end, bounds past either end are clamped, and the result must satisfy start <= end.
func sliceBounds(start, end Value, length int) (int, int, error) {
	from, err := sliceBound(start, 0, length)
	if err != nil {
		return 0, 0, err
	}
	to, err := sliceBound(end, length, length)
	if err != nil {
		return 0, 0, err
	}
	if from > to {
		return 0, 0, NewError(ErrorInvalidSlice, "slice start %d is greater than end %d", from, to)
	}
	return from, to, nil
}

func sliceBound(bound Value, open, length int) (int, error) {
	if bound == nil {
		return open, nil
	}
	b, ok := bound.(Integer)
	if !ok {
		return 0, NewError(ErrorTypeMismatch, "slice bound must be Integer, got %s", bound.DataType())
	}
	i := b.Value
	if i < 0 {
		i += int64(length)
	}
	switch {
	case i < 0:
		return 0, nil
	case i > int64(length):
		return length, nil
	}
	return int(i), nil
}
