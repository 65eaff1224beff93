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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchLike(t *testing.T) {
	tests := []struct {
		text    string
		pattern string
		matched bool
	}{
		{"hello", "h%", true},
		{"hello", "H_LLO", true},
		{"hello", "%ll%", true},
		{"hello", "h_o", false},
		{"hello", "hello_", false},
		{"a%b", `a\%b`, true},
		{"axb", `a\%b`, false},
		{"a_b", `a\_b`, true},
		{"", "%", true},
		{"", "_", false},
		{"abc", "a%%c", true},
		{"mississippi", "%iss%pi", true},
		{"mississippi", "m%iss%ppi", true},
		{"mississippi", "m%x%", false},
		{"数据库", "数_库", true},
	}
	for _, tt := range tests {
		t.Run(tt.text+" LIKE "+tt.pattern, func(t *testing.T) {
			matched, err := MatchLike(tt.text, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, matched)
		})
	}

	_, err := MatchLike("abc", `abc\`)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestMatchRegexp(t *testing.T) {
	matched, err := MatchRegexp("hello world", "wor")
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = MatchRegexp("abc", "^b")
	require.NoError(t, err)
	assert.False(t, matched)

	matched, err = MatchRegexp("v1.2.3", `^v\d+\.\d+\.\d+$`)
	require.NoError(t, err)
	assert.True(t, matched)

	_, err = MatchRegexp("abc", "(")
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		text    string
		pattern string
		matched bool
	}{
		{"main.go", "*.go", true},
		{"main.go", "*.rs", false},
		{"main.go", "ma?n.*", true},
		{"readme.md", "{readme,license}.md", true},
		{"a1", "a[0-9]", true},
		{"ab", "a[0-9]", false},
	}
	for _, tt := range tests {
		matched, err := MatchGlob(tt.text, tt.pattern)
		require.NoError(t, err)
		assert.Equal(t, tt.matched, matched, "%s GLOB %s", tt.text, tt.pattern)
	}

	_, err := MatchGlob("a", "[")
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestMatchDispatch(t *testing.T) {
	result, err := Match(PatternLike, NewText("Gitql"), NewText("git%"))
	require.NoError(t, err)
	assert.Equal(t, NewBoolean(true), result)

	result, err = Match(PatternRegexp, Null{}, NewText("a"))
	require.NoError(t, err)
	assert.Equal(t, Null{}, result)

	result, err = Match(PatternGlob, NewText("a"), Null{})
	require.NoError(t, err)
	assert.Equal(t, Null{}, result)

	_, err = Match(PatternLike, NewInteger(1), NewText("1"))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Match(PatternLike, NewText("1"), NewInteger(1))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestPatternCacheResize(t *testing.T) {
	SetPatternCacheSize(2)
	defer SetPatternCacheSize(DefaultPatternCacheSize)

	for _, p := range []string{"a", "b", "c", "a"} {
		matched, err := MatchRegexp("abc", p)
		require.NoError(t, err)
		assert.True(t, matched)
	}
	assert.LessOrEqual(t, regexpCache.Len(), 2)
	assert.Equal(t, 2, PatternCacheSize())

	SetPatternCacheSize(0)
	assert.Equal(t, 2, PatternCacheSize())
}
