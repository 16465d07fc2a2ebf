// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/kashsh/kash/internal/lineread"
	"github.com/kashsh/kash/internal/runtime"
	"github.com/kashsh/kash/internal/testutil"
)

type scriptedReader struct {
	lines   []string
	err     error
	prompts []string
}

func (r *scriptedReader) ReadLine(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) Close() error { return nil }

func TestNew_RequiresReader(t *testing.T) {
	t.Parallel()

	if _, err := New(Dependencies{}); !errors.Is(err, ErrNoReader) {
		t.Errorf("New() error = %v, want %v", err, ErrNoReader)
	}
}

func TestRun_EndOfInput(t *testing.T) {
	t.Parallel()

	r := &scriptedReader{}
	s, err := New(Dependencies{Reader: r, Launcher: &fakeLauncher{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.Run(t.Context()); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}
	if len(r.prompts) != 1 || r.prompts[0] != DefaultPrompt {
		t.Errorf("prompts = %q, want one %q", r.prompts, DefaultPrompt)
	}
}

func TestRun_ExitStopsReading(t *testing.T) {
	t.Parallel()

	r := &scriptedReader{lines: []string{"exit now", "echo unreachable"}}
	l := &fakeLauncher{}
	s, err := New(Dependencies{Reader: r, Launcher: l, Prompt: "$ "})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.Run(t.Context()); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}
	if len(r.prompts) != 1 || r.prompts[0] != "$ " {
		t.Errorf("prompts = %q, want one %q", r.prompts, "$ ")
	}
	if len(l.calls) != 0 {
		t.Errorf("nothing should be launched after exit, got %v", l.calls)
	}
}

func TestRun_EmptyLinesReprompt(t *testing.T) {
	t.Parallel()

	r := &scriptedReader{lines: []string{"", "   \t", "echo hi"}}
	l := &fakeLauncher{}
	var stderr bytes.Buffer
	s, err := New(Dependencies{Reader: r, Launcher: l, Stderr: &stderr})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.Run(t.Context()); err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if len(r.prompts) != 4 {
		t.Errorf("prompted %d times, want 4", len(r.prompts))
	}
	if len(l.calls) != 1 || strings.Join(l.calls[0], " ") != "echo hi" {
		t.Errorf("calls = %v, want [[echo hi]]", l.calls)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected diagnostic %q", stderr)
	}
}

func TestRun_NotFoundKeepsRunning(t *testing.T) {
	t.Parallel()

	r := &scriptedReader{lines: []string{"nosuchcmd", "echo after"}}
	l := &sequenceLauncher{results: []*runtime.Result{
		runtime.NewErrorResult(runtime.ExitCodeNotFound, &runtime.CommandNotFoundError{Name: "nosuchcmd"}),
		runtime.NewSuccessResult(),
	}}
	var stderr bytes.Buffer
	s, err := New(Dependencies{Reader: r, Launcher: l, Stderr: &stderr})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.Run(t.Context()); err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if l.n != 2 {
		t.Errorf("launched %d commands, want 2", l.n)
	}
	if !strings.Contains(stderr.String(), "kash: nosuchcmd: command not found") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_ReadErrorIsFatal(t *testing.T) {
	t.Parallel()

	boom := errors.New("device gone")
	r := &scriptedReader{lines: []string{"echo one"}, err: boom}
	s, err := New(Dependencies{Reader: r, Launcher: &fakeLauncher{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	err = s.Run(t.Context())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want wrapping %v", err, boom)
	}
	if !strings.HasPrefix(err.Error(), "read command line: ") {
		t.Errorf("Run() error = %q", err)
	}
}

//nolint:paralleltest // changes the process working directory
func TestRun_CdThenPwd(t *testing.T) {
	start := t.TempDir()
	target := t.TempDir()
	t.Chdir(start)

	var stdout, stderr bytes.Buffer
	reader := lineread.NewStreamReader(strings.NewReader("cd "+target+"\npwd -P\nexit\n"), io.Discard)
	s, err := New(Dependencies{
		Reader:   reader,
		Launcher: &runtime.NativeRuntime{Stdout: &stdout, Stderr: &stderr},
		Stdout:   &stdout,
		Stderr:   &stderr,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.Run(t.Context()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := testutil.Getwd(t)
	if got := strings.TrimSpace(stdout.String()); got != want {
		t.Errorf("pwd printed %q, want %q", got, want)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected diagnostic %q", stderr)
	}
}

type sequenceLauncher struct {
	results []*runtime.Result
	n       int
}

func (s *sequenceLauncher) Launch(_ context.Context, _ []string) *runtime.Result {
	res := s.results[s.n]
	s.n++
	return res
}
