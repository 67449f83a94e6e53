package main

import (
	"os"

	"GroqAssistant/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
