package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/thiagokokada/git-graph-go/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		color.New(color.FgRed).Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
