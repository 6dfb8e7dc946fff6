package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/pathwise/internal/pathgen"
	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/render"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/abhisek/pathwise/internal/strategy"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <student-id>",
	Short: "Generate a personalized learning path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]
		topics, _ := cmd.Flags().GetStringSlice("topics")
		strategyName, _ := cmd.Flags().GetString("strategy")
		maxLength, _ := cmd.Flags().GetInt("max")
		all, _ := cmd.Flags().GetBool("all")

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

		ctx := context.Background()
		records, err := fetchWindow(ctx, st, studentID, subject)
		if err != nil {
			return err
		}

		gen := pathgen.New(subject, graph)
		req := pathgen.Request{
			StudentID:    studentID,
			TargetTopics: topics,
			MaxLength:    maxLength,
			Records:      records,
		}

		if all {
			recs, warnings, err := gen.Recommendations(req)
			if err != nil {
				return err
			}
			printWarnings(warnings)
			fmt.Print(render.Recommendations(recs))
			for _, rec := range recs {
				if err := savePath(ctx, st, rec.Path, rec.Confidence); err != nil {
					return err
				}
			}
			return nil
		}

		req.Strategy = strategyName
		path, warnings, err := gen.GeneratePath(req)
		if err != nil {
			return err
		}
		printWarnings(warnings)
		fmt.Print(render.Path(path))
		return savePath(ctx, st, path, 0)
	},
}

func init() {
	recommendCmd.Flags().StringSlice("topics", nil, "Target topic IDs (comma-separated)")
	recommendCmd.Flags().String("strategy", strategy.NameBalanced, "Difficulty strategy: conservative, balanced, or aggressive")
	recommendCmd.Flags().Int("max", 0, "Maximum path length (0 = default cap)")
	recommendCmd.Flags().Bool("all", false, "Generate one path per strategy and rank by confidence")
}

// fetchWindow loads the student's trailing activity window and maps it to
// engine records.
func fetchWindow(ctx context.Context, st *store.Store, studentID, subject string) ([]profile.ActivityRecord, error) {
	from := time.Now().Add(-profile.Window)
	rows, err := st.ActivityRepo().Window(ctx, studentID, subject, from)
	if err != nil {
		return nil, fmt.Errorf("load activity: %w", err)
	}

	records := make([]profile.ActivityRecord, len(rows))
	for i, r := range rows {
		records[i] = profile.ActivityRecord{
			StudentID:  r.StudentID,
			Subject:    r.Subject,
			Topic:      r.Topic,
			ScoreRatio: r.ScoreRatio,
			Timestamp:  r.OccurredAt,
		}
	}
	return records, nil
}

// savePath appends a path event so generated paths leave a durable trail.
func savePath(ctx context.Context, st *store.Store, path *pathgen.PersonalizedPath, confidence float64) error {
	topicIDs := make([]string, len(path.Topics))
	for i, n := range path.Topics {
		topicIDs[i] = n.TopicID
	}
	err := st.PathRepo().Append(ctx, store.PathRecordData{
		StudentID:      path.StudentID,
		Subject:        path.Subject,
		Strategy:       path.Strategy,
		TopicIDs:       topicIDs,
		TopicCount:     len(path.Topics),
		MilestoneCount: len(path.Milestones),
		EstimatedDays:  path.EstimatedDurationDays,
		Confidence:     confidence,
		GeneratedAt:    path.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("record path: %w", err)
	}
	return nil
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
}
