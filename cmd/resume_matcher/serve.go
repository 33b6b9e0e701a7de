package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/classifier"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/server"
)

var (
	servePort       int
	serveModelPath  string
	serveNoNLP      bool
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scoring API server",
	Long:  `Start the HTTP server exposing POST /score for batch resume scoring and GET /health. Flags override values from the optional config file.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "HTTP listen port")
	serveCmd.Flags().StringVar(&serveModelPath, "model", classifier.DefaultModelPath, "Path to trained skills classifier")
	serveCmd.Flags().BoolVar(&serveNoNLP, "no-nlp", false, "Disable the linguistic engine and use fallbacks only")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveConfigPath != "" {
		cfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if cfg.Port != 0 && !cmd.Flags().Changed("port") {
			servePort = cfg.Port
		}
		if cfg.ModelPath != "" && !cmd.Flags().Changed("model") {
			serveModelPath = cfg.ModelPath
		}
		if cfg.DisableNLP && !cmd.Flags().Changed("no-nlp") {
			serveNoNLP = true
		}
	}

	log, err := logger.New(true, false)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	engine := buildEngine(serveNoNLP)
	clf := loadClassifier(engine, serveModelPath, log)
	extractor := extraction.New(engine, clf, log)
	scorer := scoring.New(engine, log)

	srv := server.New(server.Config{Port: servePort}, extractor, scorer, log)
	return srv.Start()
}
