package main

import (
	"errors"
	"os"

	clientCmd "github.com/goto/chrono/client/cmd"
	lerrors "github.com/goto/chrono/client/local/errors"
)

const DefaultExitCode = 1

func main() {
	command := clientCmd.New()

	if err := command.Execute(); err != nil {
		Exit(err)
	}
}

func Exit(err error) {
	var cmdErr *lerrors.CmdError
	if errors.As(err, &cmdErr) {
		os.Exit(cmdErr.Code)
		return
	}
	os.Exit(DefaultExitCode)
}
