package errorx

import (
	"strings"
)

// Group collects errors. Nil errors are ignored.
type Group struct {
	errs []error
}

func NewGroup(errs ...error) *Group {
	g := &Group{}
	g.Append(errs...)
	return g
}

func (g *Group) Append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		g.errs = append(g.errs, err)
	}
}

// Err returns all collected errors joined by " | ", or nil if there are none.
func (g *Group) Err() error {
	if len(g.errs) == 0 {
		return nil
	}
	var sl []string
	for _, err := range g.errs {
		sl = append(sl, err.Error())
	}
	return &groupError{
		msg:  strings.Join(sl, " | "),
		errs: g.errs,
	}
}

func (g *Group) Errs() []error {
	return g.errs
}

func (g *Group) IsEmpty() bool {
	return len(g.errs) == 0
}

// Do calls fn only if no error was collected so far.
func (g *Group) Do(fn func() error) {
	if len(g.errs) > 0 {
		return
	}
	g.Append(fn())
}

type groupError struct {
	msg  string
	errs []error
}

func (e *groupError) Error() string {
	return e.msg
}

// Unwrap allows errors.Is and errors.As to look into the collected errors.
func (e *groupError) Unwrap() []error {
	return e.errs
}
