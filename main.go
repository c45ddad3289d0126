package main

import (
	"os"

	"github.com/thenoetrevino/sage/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
