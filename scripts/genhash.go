package main

import (
	"fmt"
	"os"

	"go-devconnector-backend/pkg/password"
)

// Prints a bcrypt hash for each argument. Handy for seeding test users.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [password...]")
		os.Exit(1)
	}

	for _, plain := range os.Args[1:] {
		hash, err := password.Hash(plain)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", plain, hash)
	}
}
