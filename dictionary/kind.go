// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dictionary

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind selects the data structure backing a dictionary.
type Kind uint8

const (
	AVL Kind = iota
	RBTree
	ChainingHash
	OpenAddressingHash
)

// Kinds lists every supported structure in declaration order.
var Kinds = []Kind{AVL, RBTree, ChainingHash, OpenAddressingHash}

var kindAliases = map[string]Kind{
	"avl":                  AVL,
	"avltree":              AVL,
	"rbt":                  RBTree,
	"rbtree":               RBTree,
	"chash":                ChainingHash,
	"hashtable":            ChainingHash,
	"chaining_hash":        ChainingHash,
	"ohash":                OpenAddressingHash,
	"openhashtable":        OpenAddressingHash,
	"open_addressing_hash": OpenAddressingHash,
}

func (k Kind) String() string {
	switch k {
	case AVL:
		return "AVL"
	case RBTree:
		return "RBTREE"
	case ChainingHash:
		return "CHAINING_HASH"
	case OpenAddressingHash:
		return "OPEN_ADDRESSING_HASH"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether k names a supported structure.
func (k Kind) Valid() bool {
	return k <= OpenAddressingHash
}

// Aliases returns the command-line names accepted by ParseKind for k.
func (k Kind) Aliases() []string {
	var out []string
	for _, name := range []string{"avl", "avltree", "rbt", "rbtree", "chash", "hashtable",
		"chaining_hash", "ohash", "openhashtable", "open_addressing_hash"} {
		if kindAliases[name] == k {
			out = append(out, name)
		}
	}
	return out
}

// ParseKind maps a structure name such as "avl" or "ohash" to its Kind.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown structure type %q", s)
}
