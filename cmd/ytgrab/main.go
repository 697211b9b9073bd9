package main

import (
	"fmt"
	"log"
	"os"

	"github.com/muratoffalex/ytgrab/internal/app"
)

var (
	version   string
	buildTime string
)

func main() {
	if version != "" {
		fmt.Fprintf(os.Stderr, "ytgrab %s (built at: %s)\n", version, buildTime)
	}
	application, err := app.New()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Start(); err != nil {
		application.Logger.WithError(err).Fatal("Application failed")
	}
}
