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
	"regexp"
	"sync/atomic"
	"unicode"

	"github.com/gobwas/glob"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultPatternCacheSize is the number of compiled REGEXP and GLOB patterns kept per dialect.
const DefaultPatternCacheSize = 256

// 编译缓存为进程级共享, 所有 Session 共用同一份
var (
	regexpCache, _ = lru.New[string, *regexp.Regexp](DefaultPatternCacheSize)
	globCache, _   = lru.New[string, glob.Glob](DefaultPatternCacheSize)
	cacheSize      atomic.Int64
)

func init() { cacheSize.Store(DefaultPatternCacheSize) }

// SetPatternCacheSize resizes the process-wide compiled pattern caches.
// The last call wins for every caller in the process. Values <= 0 are ignored.
func SetPatternCacheSize(size int) {
	if size <= 0 {
		return
	}
	regexpCache.Resize(size)
	globCache.Resize(size)
	cacheSize.Store(int64(size))
}

// PatternCacheSize returns the current capacity of the process-wide pattern caches.
func PatternCacheSize() int { return int(cacheSize.Load()) }

// MatchLike reports whether text matches the SQL LIKE pattern.
// % matches any sequence, _ matches exactly one character and a backslash
// escapes the next character. Matching ignores case.
func MatchLike(text, pattern string) (bool, error) {
	tokens, err := compileLike(pattern)
	if err != nil {
		return false, err
	}
	return likeMatch([]rune(text), tokens), nil
}

// MatchRegexp reports whether text contains a match of the RE2 pattern.
func MatchRegexp(text, pattern string) (bool, error) {
	re, ok := regexpCache.Get(pattern)
	if !ok {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			return false, WrapError(ErrorInvalidPattern, err, "invalid regular expression %q", pattern)
		}
		regexpCache.Add(pattern, re)
	}
	return re.MatchString(text), nil
}

// MatchGlob reports whether text matches the shell glob pattern as a whole.
func MatchGlob(text, pattern string) (bool, error) {
	g, ok := globCache.Get(pattern)
	if !ok {
		var err error
		g, err = glob.Compile(pattern)
		if err != nil {
			return false, WrapError(ErrorInvalidPattern, err, "invalid glob pattern %q", pattern)
		}
		globCache.Add(pattern, g)
	}
	return g.Match(text), nil
}

type likeTokenKind int

const (
	likeLiteral likeTokenKind = iota
	likeAnyOne
	likeAnyMany
)

type likeToken struct {
	kind likeTokenKind
	r    rune
}

func compileLike(pattern string) ([]likeToken, error) {
	runes := []rune(pattern)
	tokens := make([]likeToken, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '%':
			// 连续的%等价于一个
			if n := len(tokens); n > 0 && tokens[n-1].kind == likeAnyMany {
				continue
			}
			tokens = append(tokens, likeToken{kind: likeAnyMany})
		case '_':
			tokens = append(tokens, likeToken{kind: likeAnyOne})
		case '\\':
			if i+1 >= len(runes) {
				return nil, NewError(ErrorInvalidPattern, "LIKE pattern %q ends with an escape character", pattern)
			}
			i++
			tokens = append(tokens, likeToken{kind: likeLiteral, r: unicode.ToLower(runes[i])})
		default:
			tokens = append(tokens, likeToken{kind: likeLiteral, r: unicode.ToLower(runes[i])})
		}
	}
	return tokens, nil
}

// likeMatch is the usual wildcard matcher with a single backtrack point at
// the most recent %.
func likeMatch(text []rune, tokens []likeToken) bool {
	ti, pi := 0, 0
	starPi, starTi := -1, 0
	for ti < len(text) {
		if pi < len(tokens) {
			tok := tokens[pi]
			switch {
			case tok.kind == likeAnyMany:
				starPi, starTi = pi, ti
				pi++
				continue
			case tok.kind == likeAnyOne || tok.r == unicode.ToLower(text[ti]):
				ti++
				pi++
				continue
			}
		}
		if starPi < 0 {
			return false
		}
		// 回溯：让上一个%多匹配一个字符
		starTi++
		ti = starTi
		pi = starPi + 1
	}
	for pi < len(tokens) && tokens[pi].kind == likeAnyMany {
		pi++
	}
	return pi == len(tokens)
}

func matchText(kind PatternKind, text, pattern string) (bool, error) {
	switch kind {
	case PatternLike:
		return MatchLike(text, pattern)
	case PatternRegexp:
		return MatchRegexp(text, pattern)
	case PatternGlob:
		return MatchGlob(text, pattern)
	}
	return false, NewError(ErrorInvalidOperation, "unknown pattern kind %d", kind)
}
