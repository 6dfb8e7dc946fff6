package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/pathwise/internal/pathgen"
	"github.com/abhisek/pathwise/internal/strategy"
	"github.com/abhisek/pathwise/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse <student-id>",
	Short: "Generate a path and browse it interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]
		topics, _ := cmd.Flags().GetStringSlice("topics")
		strategyName, _ := cmd.Flags().GetString("strategy")

		if len(topics) == 0 {
			return fmt.Errorf("at least one target topic is required (--topics)")
		}

		subject, graph, err := resolveGraph(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := fetchWindow(context.Background(), st, studentID, subject)
		if err != nil {
			return err
		}

		gen := pathgen.New(subject, graph)
		path, warnings, err := gen.GeneratePath(pathgen.Request{
			StudentID:    studentID,
			TargetTopics: topics,
			Strategy:     strategyName,
			Records:      records,
		})
		if err != nil {
			return err
		}
		printWarnings(warnings)

		return tui.Run(path)
	},
}

func init() {
	browseCmd.Flags().StringSlice("topics", nil, "Target topic IDs (comma-separated)")
	browseCmd.Flags().String("strategy", strategy.NameBalanced, "Difficulty strategy: conservative, balanced, or aggressive")
}
