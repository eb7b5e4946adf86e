package main

import (
	"fmt"
	"os"

	"github.com/velyan/dirdiff/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the dirdiff command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
