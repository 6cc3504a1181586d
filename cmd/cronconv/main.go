package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/solatis/cronconv/cmd/cronconv/cmd"
)

func main() {
	// CRONCONV_* settings may come from a .env file in the working directory.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "cronconv: .env file not loaded: %v\n", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
