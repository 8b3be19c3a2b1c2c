package main

import (
	"os"

	"github.com/mazzegi/log"

	"github.com/mazzegi/mcal/date"
	"github.com/mazzegi/mcal/errorx"
)

func main() {
	installLogger(os.Stderr, false)
	wd, err := os.Getwd()
	if err != nil {
		log.Warnf("getwd: %v; looking up .env files from the root", err)
		wd = string(os.PathSeparator)
	}
	err = newRootCmd(wd, date.Today()).Execute()
	logError(err)
	errorx.ExitWhen(err)
}
