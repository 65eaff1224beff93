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
Package engine evaluates expression trees against a single row.

Evaluate walks the tree with a plain recursive descent. Every operand of an
operator is evaluated before the operator is applied, including both sides
of AND, OR and XOR, so an assignment nested in either side always runs:

	@x := 1 OR @x := 2   -- @x is 2 afterwards

CASE is the one construct that stops early: conditions are tested in order
and the first true one selects its value.

Failures are returned as *values.EvalError and never abort the process. The
caller decides whether a failed row is fatal.
*/
package engine
