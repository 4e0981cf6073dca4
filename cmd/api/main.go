package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/rohithkumar4855/smartposBillingSystem/internal/app"
)

func main() {
	_ = godotenv.Load()

	a := app.New()
	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
