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
Package condition compiles row pre-filters with expr-lang.

A filter is a boolean expr-lang program evaluated against a row projected to
plain Go data: each column title becomes a variable holding values.Native of
the cell. Null cells are nil, composites are maps and arrays are slices.

# Custom Functions

	like_match(text, pattern)    SQL LIKE, case-insensitive, % and _ wildcards
	regexp_match(text, pattern)  regular expression search
	glob_match(text, pattern)    shell style glob
	is_null(value)               value is nil
	is_not_null(value)           value is not nil

The pattern functions share the compiled pattern caches of the values package.

# Usage

	cond, err := condition.NewExprCondition("is_not_null(author) && like_match(title, 'fix%')")
	if err != nil {
		return err
	}
	if cond.Evaluate(titles, row) {
		// keep the row
	}
*/
package condition
