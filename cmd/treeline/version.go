package main

import (
	"fmt"

	"github.com/justinpbarnett/treeline/internal/update"
)

// Version is injected at release time via -ldflags "-X main.Version=...".
var Version = "dev"

func runVersion() {
	fmt.Printf("treeline version %s\n", Version)

	if Version == "dev" {
		fmt.Println("Development build — update check skipped.")
		return
	}

	rel, err := update.Check(Version)
	if err != nil {
		fmt.Printf("Update check failed: %v\n", err)
		return
	}
	if rel != nil {
		fmt.Printf("Update available: v%s. Run \"treeline update\" to install.\n", rel.Version)
	} else {
		fmt.Println("You are up to date.")
	}
}

func runUpdate() error {
	rel, err := update.Apply(Version)
	if err != nil {
		return err
	}
	fmt.Printf("Updated to v%s.\n", rel.Version)
	if rel.ReleaseNotes != "" {
		fmt.Println(rel.ReleaseNotes)
	}
	return nil
}
