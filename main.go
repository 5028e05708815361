// Apptremind - A console appointment reminder tool
package main

import (
	"os"

	"github.com/manav03panchal/apptremind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
