package main

import (
	"context"
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"

	"github.com/sushikitos/cart-api/internal/app/api"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("skipping .env file: %v", err)
	}
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("cart API failed: %v", err)
	}
}
