package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nandita/prepwise/internal/config"
	"github.com/nandita/prepwise/internal/interview"
	"github.com/nandita/prepwise/internal/llm"
	"github.com/nandita/prepwise/internal/server"
	"github.com/nandita/prepwise/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.JWTSecret == "" {
			return fmt.Errorf("a JWT secret is required: set PREPWISE_JWT_SECRET or jwt_secret in the config file")
		}

		dbPath, err := resolveDBPath(cmd, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), s.LLMCalls())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		// Transcription needs an OpenAI key; the server runs without it
		// and voice answers return an error until one is configured.
		var transcriber server.Transcriber
		if t, err := llm.NewTranscriber(llm.ConfigFromEnv()); err == nil {
			transcriber = interview.NewTranscriptionService(t)
		} else {
			transcriber = unavailableTranscriber{}
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: transcription disabled: %v\n", err)
		}

		srv := server.New(
			s.Users(),
			s.Sessions(),
			interview.NewGenerator(provider, interview.DefaultGeneratorConfig()),
			interview.NewEvaluator(provider, interview.DefaultEvaluatorConfig()),
			interview.NewReviewer(provider, interview.DefaultReviewerConfig()),
			transcriber,
			server.Config{
				JWTSecret:     cfg.JWTSecret,
				TokenTTL:      cfg.TokenTTL,
				QuestionCount: cfg.QuestionCount,
			},
		)

		fmt.Printf("prepwise listening on %s (model %s)\n", cfg.Addr, provider.ModelID())
		return srv.Router().Run(cfg.Addr)
	},
}
