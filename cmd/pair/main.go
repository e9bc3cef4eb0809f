package main

import (
	"os"

	"github.com/pengelbrecht/pair/cmd/pair/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
