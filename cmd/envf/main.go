package main

import (
	"log"

	"github.com/MrSnakeDoc/envf/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ envf failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ envf stopped with an error: %v", err)
	}
}
