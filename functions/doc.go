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
Package functions provides the function registry and the standard functions
available to gitsql expressions.

Every function implements Function and works on values.Value arguments.
Lookup is case-insensitive. A registry is safe for concurrent use; the
evaluator only reads from it.

# Function Types

	TypeString      - lower, upper, reverse, trim, ltrim, rtrim, len, replace, substring,
	                  concat, concat_ws, left, right, starts_with, ends_with, replicate
	TypeMath        - abs, ceil, floor, round, sqrt, power, sign, mod, pi, rand
	TypeConditional - coalesce, nullif, isnull, greatest, least, if
	TypeConversion  - typeof, to_text, to_int, to_float, is_numeric,
	                  is_string, is_bool, is_integer, is_float, is_array, is_object
	TypeArray       - array_length, array_contains, array_append, array_cat, array_position
	TypeDateTime    - now, year, month, day, unix_timestamp, from_unixtime
	TypeHash        - md5, sha1, sha256
	TypeJSON        - to_json, from_json, json_extract, json_valid, json_type, json_length
	TypeCustom      - user registered functions

# NULL Handling

Functions built with BaseFunction.NullPropagating return NULL as soon as one
argument is NULL; Invoke checks this before Execute runs. The conditional
functions inspect NULL themselves.

# Custom Functions

	registry := functions.NewStandardRegistry()
	err := registry.RegisterCustom("double", functions.TypeCustom, "math", "doubles a number", 1, 1,
		func(ctx *functions.FunctionContext, args []values.Value) (values.Value, error) {
			return values.Arithmetic(values.OpStar, args[0], values.NewInteger(2))
		})

RegisterCustomFunction registers into the process wide Default registry.
*/
package functions
