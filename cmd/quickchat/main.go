package main

import (
	"fmt"
	"io"
	"os"
	"quickchat/internal"

	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the calling shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "QuickChat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run keeps every defer inside a returning function so that stores are closed before exit.
func run(args []string, in io.Reader, out io.Writer) (int, error) {
	config, err := internal.Load()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	root := newRootCmd(config, log, in, out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}
