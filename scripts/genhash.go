// One-off: go run scripts/genhash.go <password>
// Prints a password hash accepted by the local identity provider, for
// seeding the users table by hand.
package main

import (
	"fmt"
	"os"

	"Taskboard/internal/identity"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(2)
	}
	h, err := identity.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(h)
}
