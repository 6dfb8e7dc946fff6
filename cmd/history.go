package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <student-id>",
	Short: "Show recently generated paths",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rows, err := st.PathRepo().Recent(context.Background(), args[0], limit)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No paths generated yet")
			return nil
		}

		fmt.Printf("%-20s  %-12s  %6s  %10s  %5s\n", "Generated", "Strategy", "Topics", "Milestones", "Days")
		fmt.Println(strings.Repeat("─", 64))
		for _, r := range rows {
			fmt.Printf("%-20s  %-12s  %6d  %10d  %5d\n",
				r.GeneratedAt.Format("2006-01-02 15:04"), r.Strategy, r.TopicCount, r.MilestoneCount, r.EstimatedDays)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Maximum paths to show")
}
