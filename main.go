package main

import (
	"log"

	"github.com/km-arc/go-inject/app"
)

func main() {
	application, err := app.New() // loads config.yaml and .env automatically
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	if err := application.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
