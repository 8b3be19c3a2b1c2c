package main

import (
	"io"

	"github.com/mazzegi/log"
	"github.com/mazzegi/log/console"
	"github.com/mazzegi/log/entry"
)

// installLogger routes all log entries to w. Debug entries are dropped unless verbose is set.
// Stdout is reserved for the calendar output.
func installLogger(w io.Writer, verbose bool) {
	accept := func(e entry.Entry) bool {
		return verbose || e.Level != entry.LevelDebug
	}
	log.Install(log.NewStdLogger("mcal", log.NewFilter(accept, console.NewWriter(console.WithStream(w)))))
}

func logError(err error) {
	if err == nil {
		return
	}
	log.Errorf("mcal: %v", err)
}
