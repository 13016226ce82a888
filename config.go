// Copyright 2022 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
	"zombiezen.com/go/ini"
	"zombiezen.com/go/log"
)

type configuration struct {
	jobs    int
	scripts []*script
}

// script is the list of operations to replay against one deque.
type script struct {
	name     string
	capacity *int // nil for deque.DefaultCapacity
	ops      []*op
	expect   *string
}

// loadScripts reads every file in paths.
// Files ending in .yaml or .yml are YAML; everything else is INI.
// Each INI file is parsed on its own so that a deque defined
// in two files is reported instead of merged.
func (cfg *configuration) loadScripts(paths []string) error {
	for _, path := range paths {
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := cfg.fillYAML(path, data); err != nil {
				return err
			}
		default:
			iniFile, err := ini.ParseFiles(nil, path)
			if err != nil {
				return err
			}
			if err := cfg.fill(iniFile); err != nil {
				return err
			}
		}
	}
	return nil
}

func (cfg *configuration) fill(source configer) error {
	for _, name := range slices.Sorted(maps.Keys(source.Sections())) {
		const prefix = "deque "
		if !strings.HasPrefix(name, prefix) {
			if name != "" {
				log.Warnf(context.TODO(), "Unknown config section %q", name)
			}
			continue
		}
		s := &script{name: strings.TrimSpace(name[len(prefix):])}
		if s.name == "" {
			log.Warnf(context.TODO(), "Unknown config section %q", name)
			continue
		}
		if v := source.Value(name, "capacity"); v != nil {
			c, err := strconv.Atoi(v.Value)
			if err != nil {
				return fmt.Errorf("read config: %s:%d: deque %s: invalid capacity %q", v.Filename, v.Line, s.name, v.Value)
			}
			s.capacity = &c
		}
		if v := source.Value(name, "expect"); v != nil {
			expect := v.Value
			s.expect = &expect
		}
		for i, line := range source.Find(name, "op") {
			o, err := parseOp(line)
			if err != nil {
				return fmt.Errorf("read config: deque %s: op %d: %v", s.name, i+1, err)
			}
			s.ops = append(s.ops, o)
		}
		if err := cfg.add(s); err != nil {
			return err
		}
	}
	return nil
}

type yamlScripts struct {
	Deques map[string]yamlScript `yaml:"deques"`
}

type yamlScript struct {
	Capacity *int     `yaml:"capacity,omitempty"`
	Ops      []string `yaml:"ops"`
	Expect   *string  `yaml:"expect,omitempty"`
}

func (cfg *configuration) fillYAML(filename string, data []byte) error {
	var doc yamlScripts
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("read config: %s: %w", filename, err)
	}
	for _, name := range slices.Sorted(maps.Keys(doc.Deques)) {
		ys := doc.Deques[name]
		s := &script{
			name:     name,
			capacity: ys.Capacity,
			expect:   ys.Expect,
		}
		for i, line := range ys.Ops {
			o, err := parseOp(line)
			if err != nil {
				return fmt.Errorf("read config: %s: deque %s: op %d: %v", filename, name, i+1, err)
			}
			s.ops = append(s.ops, o)
		}
		if err := cfg.add(s); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *configuration) add(s *script) error {
	for _, other := range cfg.scripts {
		if other.name == s.name {
			return fmt.Errorf("read config: conflicting definition of deque %s", s.name)
		}
	}
	cfg.scripts = append(cfg.scripts, s)
	return nil
}

// op is a single parsed deque operation.
type op struct {
	text     string
	name     string
	values   []string
	n        int
	wantFail bool
}

// opArgs lists the operations and their arguments:
// values come first, then at most one integer.
// values == -1 means any number of values.
var opArgs = map[string]struct {
	values   int
	ints     int
	optional bool
}{
	"add":           {values: 1},
	"add-first":     {values: 1},
	"add-all":       {values: -1},
	"add-all-first": {values: -1},
	"insert":        {values: 1, ints: 1},
	"set":           {values: 1, ints: 1},
	"remove-at":     {ints: 1},
	"at":            {ints: 1},
	"from-back":     {ints: 1},
	"skip":          {ints: 1, optional: true},
	"skip-last":     {ints: 1, optional: true},
	"clear":         {},
	"pop":           {},
	"pop-last":      {},
	"peek":          {},
	"peek-last":     {},
}

// parseOp parses an operation line like "insert x 3".
// A leading "fail" word marks an operation that must return an error.
func parseOp(s string) (*op, error) {
	o := &op{text: strings.TrimSpace(s)}
	rest := o.text
	const failPrefix = "fail"
	if len(rest) >= len(failPrefix)+1 && rest[:len(failPrefix)] == failPrefix {
		if c, _ := utf8.DecodeRuneInString(rest[len(failPrefix):]); unicode.IsSpace(c) {
			o.wantFail = true
			rest = rest[len(failPrefix):]
		}
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return nil, fmt.Errorf("parse op %q: empty", s)
	}
	o.name = fields[0]
	args := fields[1:]
	arity, ok := opArgs[o.name]
	if !ok {
		return nil, fmt.Errorf("parse op %q: unknown operation %q", s, o.name)
	}

	if arity.values < 0 {
		o.values = args
		return o, nil
	}
	o.n = 1
	switch want := arity.values + arity.ints; {
	case len(args) == want:
	case arity.optional && len(args) == want-1:
		return o, nil
	default:
		return nil, fmt.Errorf("parse op %q: %s takes %d arguments (got %d)", s, o.name, want, len(args))
	}
	o.values = args[:arity.values]
	if arity.ints > 0 {
		n, err := strconv.Atoi(args[arity.values])
		if err != nil {
			return nil, fmt.Errorf("parse op %q: invalid integer %q", s, args[arity.values])
		}
		o.n = n
	}
	return o, nil
}

func (o *op) String() string {
	return o.text
}

type configer interface {
	Value(section, key string) *ini.Value
	Find(section, key string) []string
	Sections() map[string]struct{}
}
