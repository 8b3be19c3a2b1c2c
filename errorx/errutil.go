package errorx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// ExitWhen prints err together with the calling location and exits with code 1. It does nothing if err is nil.
func ExitWhen(err error) {
	if err == nil {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	file = filepath.Base(file)
	fmt.Fprintf(stderr, "ERROR (EXIT): %v - (%s:%d)\n", err, file, line)
	exit(1)
}
