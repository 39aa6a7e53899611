// main is the entry point for the burnlens CLI.
package main

import (
	"github.com/northstarwang/burnlens/cmd"
	"github.com/northstarwang/burnlens/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
