package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/skillcheck/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show assessment statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().SessionStats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if stats.QuestionsAnswered == 0 {
			fmt.Println("No assessments recorded yet. Run `skillcheck` to start one.")
			return nil
		}

		accuracy := float64(stats.CorrectAnswers) / float64(stats.QuestionsAnswered) * 100

		fmt.Println("Overall")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Assessments completed:  %d\n", stats.SessionsCompleted)
		fmt.Printf("Questions answered:     %d\n", stats.QuestionsAnswered)
		fmt.Printf("Correct:                %d (%.0f%%)\n", stats.CorrectAnswers, accuracy)
		fmt.Printf("Timed out:              %d\n", stats.TimedOut)
		fmt.Printf("Distinct concepts:      %d\n", stats.DistinctConcepts)

		if len(stats.ByDifficulty) > 0 {
			fmt.Println()
			fmt.Println("By Difficulty")
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("%-18s  %9s  %9s  %6s\n", "Level", "Answered", "Correct", "Acc")
			for _, d := range stats.ByDifficulty {
				acc := 0.0
				if d.Answered > 0 {
					acc = float64(d.Correct) / float64(d.Answered) * 100
				}
				fmt.Printf("%-18s  %9d  %9d  %5.0f%%\n", d.Difficulty, d.Answered, d.Correct, acc)
			}
		}

		return nil
	},
}
