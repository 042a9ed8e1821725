package main

import (
	"fmt"
	"os"

	"github.com/Lzww0608/uuidv7/internal/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "uuidv7:", err)
		os.Exit(1)
	}
}
