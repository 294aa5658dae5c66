package main

import (
	"fmt"
	"os"

	"txmerge/cmd"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := cmd.IssueToken(os.Args[2:], os.Stdout); err != nil {
			fmt.Printf("could not issue token: %s\n", err)
			os.Exit(1)
		}
		return
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s\n", err)
		os.Exit(1)
	}
}
