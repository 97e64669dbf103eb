// Command jproj scaffolds Java project directory trees from a layout template.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/opmodel/jproj/internal/cmd"
	oerrors "github.com/opmodel/jproj/internal/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	err := cmd.NewRootCmd().Execute()
	if err == nil {
		return oerrors.ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Printed {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	return oerrors.ExitCodeFromError(err)
}
