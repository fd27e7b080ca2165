package main

import (
	"fmt"
	"os"

	"github.com/colmenar/agenda/internal/cli"
)

func main() {
	// If no args, open the calendar; otherwise route to CLI
	if len(os.Args) == 1 {
		if err := cli.RunCalendar(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}
