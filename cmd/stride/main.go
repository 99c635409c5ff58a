package main

import (
	"github.com/stride-cli/stride/internal/cmd"
)

func main() {
	cmd.Execute()
}
