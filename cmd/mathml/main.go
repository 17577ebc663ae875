package main

import (
	"github.com/pterm/pterm"

	"github.com/eolymp/go-mathml/internal/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Printfln("mathml crashed unexpectedly: %v", r)
		}
	}()

	cmd.Execute()
}
