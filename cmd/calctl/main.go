package main

import (
	"os"
	"time"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr, time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}
