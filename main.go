// Package main is the entry point for the cachekey CLI application.
package main

import (
	"log"

	"github.com/wellmaintained/cachekey/cmd"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
