package main

import (
	"fliprelay/cmd"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine; variables already set in the environment win
	_ = godotenv.Load()

	if err := cmd.Start(); err != nil {
		fmt.Printf("relay run into an error: %s\n", err)
		os.Exit(1)
	}
}
