package main

import (
	"log"

	"github.com/MrSnakeDoc/features/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ features failed to start: %v", err)
	}
}
