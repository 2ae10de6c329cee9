// Package main is the inertia CLI command itself.
package main

import (
	"log"
	"os"

	inertiacli "go.viam.com/inertia/cli"
)

func main() {
	app := inertiacli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
