package main

import (
	"github.com/joho/godotenv"

	"FadaMonitor/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
