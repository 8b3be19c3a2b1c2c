package testx

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/r3labs/diff/v3"
	"golang.org/x/exp/constraints"
)

func AssertInRange[T constraints.Ordered](t *testing.T, val, lower, upper T) {
	t.Helper()
	if val >= lower && val <= upper {
		return
	}
	t.Fatalf("%v not in range [%v, %v]", val, lower, upper)
}

func equal(want, have any) bool {
	return reflect.DeepEqual(want, have)
}

// mismatch describes the difference of want and have. If both can be diffed structurally,
// the changed paths are listed as well.
func mismatch(want, have any) string {
	msg := fmt.Sprintf("want %v, have %v", want, have)
	cl, err := changelog(want, have)
	if err != nil || len(cl) == 0 {
		return msg
	}
	var sl []string
	for _, c := range cl {
		sl = append(sl, fmt.Sprintf("%s %s: %v -> %v", c.Type, strings.Join(c.Path, "."), c.From, c.To))
	}
	return msg + "\nchanges:\n  " + strings.Join(sl, "\n  ")
}

func changelog(want, have any) (cl diff.Changelog, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("diff: %v", r)
		}
	}()
	return diff.Diff(want, have)
}
