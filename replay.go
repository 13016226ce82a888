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
	"errors"
	"fmt"

	"zombiezen.com/go/log"
	"zombiezen.com/go/vectordeque/deque"
)

// runScript replays s against a new deque
// and checks the final contents against s.expect.
// It returns the deque as it was after the last operation.
func runScript(ctx context.Context, s *script) (*deque.Deque[string], error) {
	var d *deque.Deque[string]
	if s.capacity == nil {
		d = deque.New[string]()
	} else {
		var err error
		d, err = deque.NewWithCapacity[string](*s.capacity)
		if err != nil {
			return nil, fmt.Errorf("script %s: %w", s.name, err)
		}
	}
	for i, o := range s.ops {
		if err := ctx.Err(); err != nil {
			return d, fmt.Errorf("script %s: %w", s.name, err)
		}
		err := o.apply(ctx, s.name, d)
		switch {
		case !o.wantFail && err != nil:
			return d, fmt.Errorf("script %s: op %d (%v): %w", s.name, i+1, o, err)
		case o.wantFail && err == nil:
			return d, fmt.Errorf("script %s: op %d (%v): succeeded but should have failed", s.name, i+1, o)
		case o.wantFail && !errors.Is(err, deque.ErrOutOfRange) && !errors.Is(err, deque.ErrInvalidArgument):
			return d, fmt.Errorf("script %s: op %d (%v): %w", s.name, i+1, o, err)
		case o.wantFail:
			log.Debugf(ctx, "%s: %v failed as expected: %v", s.name, o, err)
		}
		if log.IsEnabled(log.Debug) {
			l := d.Diagnostics()
			log.Debugf(ctx, "%s: after %v: %v (len=%d cap=%d origin=%d)", s.name, o, d, l.Len, l.Capacity, l.Origin)
		}
	}
	if s.expect != nil {
		if got := d.String(); got != *s.expect {
			return d, fmt.Errorf("script %s: contents = %s; want %s", s.name, got, *s.expect)
		}
	}
	log.Infof(ctx, "Script %s passed with %d elements", s.name, d.Len())
	return d, nil
}

func (o *op) apply(ctx context.Context, name string, d *deque.Deque[string]) error {
	report := func(x string, err error) error {
		if err != nil {
			return err
		}
		log.Debugf(ctx, "%s: %v = %q", name, o, x)
		return nil
	}
	switch o.name {
	case "add":
		d.Add(o.values[0])
	case "add-first":
		d.AddFirst(o.values[0])
	case "add-all":
		d.AddAll(o.values...)
	case "add-all-first":
		d.AddAllFirst(o.values...)
	case "insert":
		return d.Insert(o.values[0], o.n)
	case "set":
		return d.Set(o.n, o.values[0])
	case "remove-at":
		return report(d.RemoveAt(o.n))
	case "at":
		return report(d.At(o.n))
	case "from-back":
		return report(d.FromBack(o.n))
	case "skip":
		return d.Skip(o.n)
	case "skip-last":
		return d.SkipLast(o.n)
	case "clear":
		d.Clear()
	case "pop":
		return report(d.Pop())
	case "pop-last":
		return report(d.PopLast())
	case "peek":
		return report(d.Peek())
	case "peek-last":
		return report(d.PeekLast())
	default:
		return fmt.Errorf("unknown operation %q", o.name)
	}
	return nil
}
