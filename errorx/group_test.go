package errorx

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGroup(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	g := NewGroup(nil)
	if !g.IsEmpty() || g.Err() != nil {
		t.Fatalf("expect empty group, have %v", g.Err())
	}
	g.Append(errA, nil, errB)
	err := g.Err()
	if err == nil {
		t.Fatalf("expect err; got none")
	}
	if have, want := err.Error(), "a failed | b failed"; have != want {
		t.Fatalf("want %q, have %q", want, have)
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("collected errors should be reachable by errors.Is")
	}
	if len(g.Errs()) != 2 {
		t.Fatalf("want 2 errors, have %d", len(g.Errs()))
	}
}

func TestGroupDo(t *testing.T) {
	g := NewGroup()
	var calls int
	g.Do(func() error { calls++; return errors.New("first") })
	g.Do(func() error { calls++; return nil })
	if calls != 1 {
		t.Fatalf("want 1 call, have %d", calls)
	}
}

func TestExitWhen(t *testing.T) {
	var buf bytes.Buffer
	var code int
	origStderr, origExit := stderr, exit
	stderr, exit = &buf, func(c int) { code = c }
	defer func() {
		stderr, exit = origStderr, origExit
	}()

	ExitWhen(nil)
	if code != 0 || buf.Len() != 0 {
		t.Fatalf("nil error must not exit")
	}
	ExitWhen(errors.New("boom"))
	if code != 1 {
		t.Fatalf("want exit code 1, have %d", code)
	}
	if !strings.Contains(buf.String(), "boom") || !strings.Contains(buf.String(), "group_test.go") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
