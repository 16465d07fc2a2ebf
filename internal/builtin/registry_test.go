// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"slices"
	"testing"
)

func nopBuiltin(status Status) Func {
	return func(context.Context, *Env, []string) Status { return status }
}

func TestDefault_Names(t *testing.T) {
	t.Parallel()

	got := Default().Names()
	want := []string{"cd", "exit", "help"}
	if !slices.Equal(got, want) {
		t.Errorf("Default().Names() = %q, want %q", got, want)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := Default()

	tests := []struct {
		name  string
		found bool
	}{
		{name: "cd", found: true},
		{name: "exit", found: true},
		{name: "help", found: true},
		{name: "CD", found: false},
		{name: "Exit", found: false},
		{name: "ex", found: false},
		{name: "exit ", found: false},
		{name: "", found: false},
		{name: "ls", found: false},
	}
	for _, tt := range tests {
		e, ok := r.Lookup(tt.name)
		if ok != tt.found {
			t.Errorf("Lookup(%q) found = %v, want %v", tt.name, ok, tt.found)
			continue
		}
		if ok && e.Name != tt.name {
			t.Errorf("Lookup(%q) returned entry %q", tt.name, e.Name)
		}
	}
}

func TestRegistry_EntriesIsACopy(t *testing.T) {
	t.Parallel()

	r := NewRegistry(Entry{Name: "a", Run: nopBuiltin(Continue)})
	entries := r.Entries()
	entries[0].Name = "mutated"

	if _, ok := r.Lookup("a"); !ok {
		t.Error("mutating Entries() result changed the registry")
	}
	if got := r.Names(); len(got) != 1 || got[0] != "a" {
		t.Errorf("Names() = %v, want [a]", got)
	}
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	t.Parallel()

	entries := []Entry{{Name: "a", Run: nopBuiltin(Continue)}}
	r := NewRegistry(entries...)
	entries[0].Name = "b"

	if _, ok := r.Lookup("a"); !ok {
		t.Error("registry should not alias the caller's slice")
	}
}

func TestNewRegistry_Panics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []Entry
	}{
		{name: "empty name", entries: []Entry{{Name: "", Run: nopBuiltin(Continue)}}},
		{name: "nil operation", entries: []Entry{{Name: "x"}}},
		{name: "duplicate", entries: []Entry{
			{Name: "x", Run: nopBuiltin(Continue)},
			{Name: "x", Run: nopBuiltin(Terminate)},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Error("NewRegistry did not panic")
				}
			}()
			NewRegistry(tt.entries...)
		})
	}
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	tests := map[Status]string{
		Continue:   "continue",
		Terminate:  "terminate",
		Status(42): "Status(42)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
