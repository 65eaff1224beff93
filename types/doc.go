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
Package types holds the session configuration shared by the gitsql packages.

Config is plain data with JSON tags so it can be loaded from a file with
ParseConfig, or built in code from one of the presets:

	config := types.LenientConfig()
	config.MaxBenchmarkCount = 1000
	session := gitsql.New(gitsql.WithConfig(config))

# Presets

	NewConfig()     // defaults: INFO logging, errors returned to the caller
	LenientConfig() // failing cells become NULL, WARN logging
	StrictConfig()  // BENCHMARK limited to one million iterations
*/
package types
