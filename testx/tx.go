package testx

import (
	"testing"

	"golang.org/x/exp/constraints"
)

func NewTx(t *testing.T) *Tx {
	return &Tx{t: t}
}

type Tx struct {
	t *testing.T
}

func (tx *Tx) T() *testing.T {
	return tx.t
}

func (tx *Tx) AssertEqual(want, have any) {
	tx.t.Helper()
	if equal(want, have) {
		return
	}
	tx.t.Fatal(mismatch(want, have))
}

func (tx *Tx) AssertTrue(cond bool, format string, args ...any) {
	tx.t.Helper()
	if cond {
		return
	}
	tx.t.Fatalf(format, args...)
}

func (tx *Tx) AssertNoErr(err error) {
	tx.t.Helper()
	if err == nil {
		return
	}
	tx.t.Fatalf("error is not-nil but: %v", err)
}

func (tx *Tx) AssertErr(err error) {
	tx.t.Helper()
	if err != nil {
		return
	}
	tx.t.Fatalf("expect err; got none")
}

// TxAssertInRange is AssertInRange bound to a Tx; methods cannot have type parameters.
func TxAssertInRange[T constraints.Ordered](tx *Tx, val, lower, upper T) {
	tx.t.Helper()
	AssertInRange(tx.t, val, lower, upper)
}
