/*
Copyright © 2025 NikhilBollineni
*/
package main

import (
	"github.com/NikhilBollineni/newsproject/cmd"
	"github.com/joho/godotenv"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional; keys may come from the real environment instead.
	godotenv.Load()
}
