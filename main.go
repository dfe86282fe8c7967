package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/naclbox/cmd"
	"github.com/PolarWolf314/naclbox/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("Error:")+" "+err.Error())
		os.Exit(1)
	}
}
