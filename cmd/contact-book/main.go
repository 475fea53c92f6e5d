package main

import (
	"os"

	"github.com/rcliao/contact-book/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
