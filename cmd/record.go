package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/abhisek/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <student-id> <topic> <score-ratio>",
	Short: "Record a scored attempt",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, topic := args[0], args[1]
		score, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("parse score ratio: %w", err)
		}
		if score < 0 || score > 1 {
			return fmt.Errorf("score ratio must be in [0, 1], got %g", score)
		}

		subject, _ := cmd.Flags().GetString("subject")
		if subject == "" {
			subject, _, err = resolveGraph(cmd)
			if err != nil {
				return err
			}
		}

		occurredAt := time.Now()
		if at, _ := cmd.Flags().GetString("at"); at != "" {
			occurredAt, err = time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("parse --at timestamp: %w", err)
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		err = st.ActivityRepo().Append(context.Background(), store.ActivityRecordData{
			StudentID:  studentID,
			Subject:    subject,
			Topic:      topic,
			ScoreRatio: score,
			OccurredAt: occurredAt,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %s: %s %.0f%%\n", studentID, topic, score*100)
		return nil
	},
}

var recordImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import attempts from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		var rows []struct {
			StudentID  string    `json:"student_id"`
			Subject    string    `json:"subject"`
			Topic      string    `json:"topic"`
			ScoreRatio float64   `json:"score_ratio"`
			Timestamp  time.Time `json:"timestamp"`
		}
		if err := json.Unmarshal(data, &rows); err != nil {
			return fmt.Errorf("parse import file: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.ActivityRepo()
		for i, r := range rows {
			err := repo.Append(ctx, store.ActivityRecordData{
				StudentID:  r.StudentID,
				Subject:    r.Subject,
				Topic:      r.Topic,
				ScoreRatio: r.ScoreRatio,
				OccurredAt: r.Timestamp,
			})
			if err != nil {
				return fmt.Errorf("import row %d: %w", i, err)
			}
		}

		fmt.Printf("Imported %d attempts\n", len(rows))
		return nil
	},
}

func init() {
	recordCmd.Flags().String("subject", "", "Subject of the attempt (default: the graph's subject)")
	recordCmd.Flags().String("at", "", "Attempt timestamp, RFC 3339 (default: now)")

	recordCmd.AddCommand(recordImportCmd)
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
