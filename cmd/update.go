package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/pathwise/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker()
		result, err := checker.Check(cmd.Context(), version)
		if err != nil {
			if errors.Is(err, selfupdate.ErrDevBuild) {
				fmt.Println("Development build — update checks are disabled")
				return nil
			}
			return err
		}

		if !result.UpdateAvailable {
			fmt.Printf("pathwise %s is up to date\n", result.CurrentVersion)
			return nil
		}

		fmt.Printf("pathwise %s is available (current: %s)\n", result.LatestVersion, result.CurrentVersion)
		fmt.Println("Release notes:", result.ReleaseURL)
		return nil
	},
}
