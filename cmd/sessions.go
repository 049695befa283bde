package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nandita/prepwise/internal/config"
	"github.com/nandita/prepwise/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect stored practice sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list <user-email>",
	Short: "List a user's sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		user, err := s.Users().ByEmail(ctx, args[0])
		if err != nil {
			return fmt.Errorf("look up user: %w", err)
		}

		sessions, err := s.Sessions().ListSessions(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-10s  %-10s  %-5s  %s\n",
			"ID", "Created", "Type", "Status", "Score", "Role")
		fmt.Println(strings.Repeat("\u2500", 100))
		for _, sess := range sessions {
			score := "-"
			if sess.TotalScore != nil {
				score = fmt.Sprintf("%d", *sess.TotalScore)
			}
			fmt.Printf("%-36s  %-19s  %-10s  %-10s  %-5s  %s\n",
				sess.ID,
				sess.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				sess.InterviewType,
				sess.Status,
				score,
				sess.TargetRole,
			)
		}
		return nil
	},
}

var sessionsViewCmd = &cobra.Command{
	Use:   "view <user-email> <session-id>",
	Short: "View a session with its questions, answers, and review",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid session ID %q: %w", args[1], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		user, err := s.Users().ByEmail(ctx, args[0])
		if err != nil {
			return fmt.Errorf("look up user: %w", err)
		}

		detail, err := s.Sessions().SessionDetail(ctx, user.ID, sessionID)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}

		sep := strings.Repeat("\u2500", 60)
		sess := detail.Session

		fmt.Printf("Session:   %s\n", sess.ID)
		fmt.Printf("Role:      %s (%s, %s)\n", sess.TargetRole, sess.InterviewType, sess.ExperienceLevel)
		fmt.Printf("Status:    %s\n", sess.Status)
		if sess.TotalScore != nil {
			fmt.Printf("Score:     %d/100\n", *sess.TotalScore)
		}
		if sess.DurationSeconds > 0 {
			fmt.Printf("Duration:  %ds\n", sess.DurationSeconds)
		}

		answersByQuestion := make(map[uuid.UUID]store.Answer, len(detail.Answers))
		for _, a := range detail.Answers {
			answersByQuestion[a.QuestionID] = a
		}

		for _, q := range detail.Questions {
			fmt.Println()
			fmt.Println(sep)
			fmt.Printf("Q%d [%s/%s]: %s\n", q.Order, q.Type, q.Difficulty, q.Text)
			a, ok := answersByQuestion[q.ID]
			if !ok {
				fmt.Println("(unanswered)")
				continue
			}
			fmt.Printf("A: %s\n", a.Text)
			if a.Score != nil {
				fmt.Printf("Score: %d/100 — %s\n", *a.Score, a.Feedback)
			}
		}

		if detail.Review != nil {
			fmt.Println()
			fmt.Println(sep)
			fmt.Println("REVIEW")
			fmt.Println(sep)
			fmt.Printf("Overall: %d/100\n", detail.Review.OverallScore)
			printList("Strengths", detail.Review.Strengths)
			printList("Weaknesses", detail.Review.Weaknesses)
			printList("Recommendations", detail.Review.Recommendations)
			fmt.Println()
			fmt.Println(detail.Review.Analysis)
		}
		return nil
	},
}

func printList(label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", label)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsViewCmd)
}
