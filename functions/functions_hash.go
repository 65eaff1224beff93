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

package functions

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/rulego/gitsql/values"
)

// hashFunction returns the lower-case hex digest of a Text argument.
type hashFunction struct {
	*BaseFunction
	newHash func() hash.Hash
}

func NewMd5Function() Function {
	return &hashFunction{
		BaseFunction: NewBaseFunction("md5", TypeHash, "hash", "Calculate MD5 hash value", 1, 1).NullPropagating(),
		newHash:      md5.New,
	}
}

func NewSha1Function() Function {
	return &hashFunction{
		BaseFunction: NewBaseFunction("sha1", TypeHash, "hash", "Calculate SHA1 hash value", 1, 1).NullPropagating(),
		newHash:      sha1.New,
	}
}

func NewSha256Function() Function {
	return &hashFunction{
		BaseFunction: NewBaseFunction("sha256", TypeHash, "hash", "Calculate SHA256 hash value", 1, 1).NullPropagating(),
		newHash:      sha256.New,
	}
}

func (f *hashFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	s, err := textArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	h := f.newHash()
	h.Write([]byte(s))
	return values.NewText(hex.EncodeToString(h.Sum(nil))), nil
}
