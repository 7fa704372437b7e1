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

package main

import (
	"fmt"
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/cybrota/wordcount/dictionary"
)

func getHelpMessage() string {
	var structures strings.Builder
	for _, k := range dictionary.Kinds {
		fmt.Fprintf(&structures, "* **%s**: %s\n", k, strings.Join(k.Aliases(), ", "))
	}

	message := fmt.Sprintf(`

 **Wordcount %s**

Count word frequencies in text files with four interchangeable dictionaries and compare how hard each one works.

Built with Go %s

# 1. Features
* Count words with an AVL tree, a red-black tree, a chained hash table or an open-addressing hash table
* Run every structure at once and compare comparisons, rotations and collisions side by side
* Top-N report, copy to clipboard and Prometheus textfile export
* Interactive shell to poke at a single dictionary

# 2. Structures
%s
# 3. Examples
* wordcount count --structure rbtree book.txt
* wordcount count --all --top 10 --out reports book.txt
* wordcount shell --structure ohash

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed
* Words are lowercased; tokens with digits or stray symbols are skipped

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), structures.String())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
