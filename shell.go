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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cybrota/wordcount/dictionary"
	"github.com/mattn/go-shellwords"
)

const shellHelp = `commands:
  insert <key> <value>   add a key (no-op if present)
  update <key> <value>   replace the value of an existing key
  set <key> <value>      insert or overwrite through the index operator
  remove <key>           delete a key
  at <key> | get <key>   show the value of a key
  contains <key>         report whether a key is present
  size                   number of entries
  print                  list entries in iteration order
  tree                   draw the tree (tree structures only)
  stats                  comparisons, rotations and collisions
  snapshot | restore     save a deep copy, or bring it back
  use <structure>        move every entry into another structure
  clear                  remove every entry
  help                   this text
  exit | quit            leave the shell
`

var errUsage = errors.New("usage")

// shell is an interactive interpreter over a single dictionary.
type shell struct {
	dict     *dictionary.Dynamic[string, string]
	snapshot dictionary.Dictionary[string, string]
	opts     []dictionary.Option[string]
	out      io.Writer
}

func newShell(kind dictionary.Kind, out io.Writer, opts ...dictionary.Option[string]) (*shell, error) {
	d, err := dictionary.NewDynamic[string, string](kind, nil, opts...)
	if err != nil {
		return nil, err
	}
	return &shell{dict: d, opts: opts, out: out}, nil
}

// run reads commands from in until EOF or exit. Command errors are printed
// and do not stop the loop.
func (s *shell) run(in io.Reader, interactive bool) error {
	scanner := bufio.NewScanner(in)
	prompt := StylePrompt().Render(fmt.Sprintf("%s> ", strings.ToLower(s.dict.Kind().String())))
	for {
		if interactive {
			fmt.Fprint(s.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		quit, err := s.exec(scanner.Text())
		if err != nil {
			fmt.Fprintln(s.out, StyleError().Render("error: "+err.Error()))
		}
		if quit {
			return nil
		}
		prompt = StylePrompt().Render(fmt.Sprintf("%s> ", strings.ToLower(s.dict.Kind().String())))
	}
	return scanner.Err()
}

func requireArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return errors.Wrapf(errUsage, "%s", usage)
	}
	return nil
}

// exec runs one command line and reports whether the shell should exit.
func (s *shell) exec(line string) (bool, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return false, errors.Wrap(err, "parsing command")
	}
	if len(args) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(args[0]), args[1:]
	log.WithField("command", cmd).Debugf("shell args %q", args)

	switch cmd {
	case "exit", "quit":
		return true, nil
	case "help":
		fmt.Fprint(s.out, shellHelp)
	case "insert":
		if err := requireArgs(args, 2, "insert <key> <value>"); err != nil {
			return false, err
		}
		if s.dict.Contains(args[0]) {
			fmt.Fprintf(s.out, "%q already present, kept existing value\n", args[0])
			return false, nil
		}
		return false, s.dict.Insert(dictionary.E(args[0], args[1]))
	case "update":
		if err := requireArgs(args, 2, "update <key> <value>"); err != nil {
			return false, err
		}
		return false, s.dict.Update(dictionary.E(args[0], args[1]))
	case "set":
		if err := requireArgs(args, 2, "set <key> <value>"); err != nil {
			return false, err
		}
		p, err := s.dict.Index(args[0])
		if err != nil {
			return false, err
		}
		*p = args[1]
	case "remove":
		if err := requireArgs(args, 1, "remove <key>"); err != nil {
			return false, err
		}
		s.dict.Remove(args[0])
	case "at", "get":
		if err := requireArgs(args, 1, cmd+" <key>"); err != nil {
			return false, err
		}
		v, err := s.dict.At(args[0])
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, v)
	case "contains":
		if err := requireArgs(args, 1, "contains <key>"); err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, s.dict.Contains(args[0]))
	case "size":
		fmt.Fprintln(s.out, s.dict.Len())
	case "print":
		if s.dict.Empty() {
			fmt.Fprintln(s.out, StyleTextMuted().Render("(empty)"))
			return false, nil
		}
		s.dict.Print(s.out)
	case "tree":
		if !s.dict.Render(s.out) {
			return false, errors.Newf("%s is not a tree", s.dict.Kind())
		}
	case "stats":
		st := s.dict.Stats()
		fmt.Fprintf(s.out, "structure: %s\ncomparisons: %d\nrotations: %d\ncollisions: %d\n",
			s.dict.Kind(), st.Comparisons, st.Rotations, st.Collisions)
	case "snapshot":
		s.snapshot = s.dict.Clone()
		fmt.Fprintf(s.out, "saved %d entries\n", s.snapshot.Len())
	case "restore":
		if s.snapshot == nil {
			return false, errors.New("no snapshot saved")
		}
		d, ok := s.snapshot.Clone().(*dictionary.Dynamic[string, string])
		if !ok {
			return false, errors.AssertionFailedf("snapshot is %T", s.snapshot)
		}
		s.dict = d
		fmt.Fprintf(s.out, "restored %d entries\n", s.dict.Len())
	case "use":
		if err := requireArgs(args, 1, "use <structure>"); err != nil {
			return false, err
		}
		kind, err := dictionary.ParseKind(args[0])
		if err != nil {
			return false, err
		}
		entries := make([]dictionary.Entry[string, string], 0, s.dict.Len())
		for k, v := range s.dict.All() {
			entries = append(entries, dictionary.E(k, v))
		}
		d, err := dictionary.NewDynamic(kind, entries, s.opts...)
		if err != nil {
			return false, err
		}
		s.dict = d
		fmt.Fprintf(s.out, "now using %s\n", kind)
	case "clear":
		s.dict.Clear()
	default:
		return false, errors.Newf("unknown command %q, try 'help'", cmd)
	}
	return false, nil
}
