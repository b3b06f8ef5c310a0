/*
Copyright © 2025 Wish2code
*/
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}
}
