package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/classifier"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	scoreResumePath string
	scoreJobPath    string
	scoreModelPath  string
	scoreNoNLP      bool
	scoreVerbose    bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  `Extract structured fields from a resume text file and score them against a job description text file. A resume file ending in .json is treated as a structured resume record.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreResumePath, "resume", "", "Path to resume text or JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreJobPath, "job", "", "Path to job description text file (required)")
	scoreCmd.Flags().StringVar(&scoreModelPath, "model", classifier.DefaultModelPath, "Path to trained skills classifier")
	scoreCmd.Flags().BoolVar(&scoreNoNLP, "no-nlp", false, "Disable the linguistic engine and use fallbacks only")
	scoreCmd.Flags().BoolVar(&scoreVerbose, "verbose", false, "Print the extracted record and score breakdown")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	log, err := logger.New(false, scoreVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	engine := buildEngine(scoreNoNLP)
	clf := loadClassifier(engine, scoreModelPath, log)
	extractor := extraction.New(engine, clf, log)

	record, err := loadResume(extractor, scoreResumePath)
	if err != nil {
		return err
	}

	jobText, err := ingestion.ReadFile(scoreJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	report := scoring.New(engine, log).Score(record, jobText)

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResumeRecord(record)
		printer.PrintScoreReport(report)
		return nil
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// loadResume reads the resume through the text or structured path,
// depending on the file extension.
func loadResume(extractor *extraction.Extractor, path string) (*types.ResumeRecord, error) {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume JSON: %w", err)
		}
		record, err := extractor.ExtractStructured(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
		}
		return record, nil
	}

	text, err := ingestion.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}
	return extractor.Extract(text), nil
}
