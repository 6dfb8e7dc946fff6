package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Inspect the topic graph",
}

var topicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all topics and their prerequisites",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, graph, err := resolveGraph(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("%-24s  %-32s  %s\n", "ID", "Name", "Prerequisites")
		fmt.Println(strings.Repeat("─", 90))

		for _, t := range graph.Topics() {
			var prereqs []string
			for _, e := range graph.Prerequisites(t.ID) {
				prereqs = append(prereqs, fmt.Sprintf("%s (≥%.0f%%)", e.PrerequisiteID, e.MasteryThreshold*100))
			}
			deps := "-"
			if len(prereqs) > 0 {
				deps = strings.Join(prereqs, ", ")
			}
			fmt.Printf("%-24s  %-32s  %s\n", t.ID, t.Name, deps)
		}

		fmt.Printf("\n%d topics in subject %q\n", len(graph.Topics()), subject)
		return nil
	},
}

var topicValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a topic graph config",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, graph, err := resolveGraph(cmd)
		if err != nil {
			return err
		}
		if err := graph.Validate(); err != nil {
			return err
		}
		fmt.Printf("Graph for subject %q is valid: %d topics, %d roots\n",
			subject, len(graph.Topics()), len(graph.Roots()))
		return nil
	},
}

func init() {
	topicCmd.AddCommand(topicListCmd)
	topicCmd.AddCommand(topicValidateCmd)
}
