package cmd

import (
	"github.com/abhisek/pathwise/internal/store"
	"github.com/abhisek/pathwise/internal/topicgraph"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "Personalized learning path recommendation",
	Long:  "Pathwise — recommends, sequences, and difficulty-adjusts learning paths from a student's performance history and a prerequisite topic graph.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWISE_DB env var)")
	rootCmd.PersistentFlags().String("graph", "", "Path to a topic graph config file (default: built-in mathematics graph)")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveGraph loads the graph config named by --graph, falling back to
// the built-in mathematics graph.
func resolveGraph(cmd *cobra.Command) (string, *topicgraph.Graph, error) {
	if p, _ := cmd.Flags().GetString("graph"); p != "" {
		return topicgraph.LoadFile(p)
	}
	subject, g := topicgraph.Default()
	return subject, g, nil
}
