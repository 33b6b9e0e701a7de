package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/classifier"
	"github.com/jonathan/resume-matcher/internal/logger"
)

var (
	trainDataPath  string
	trainModelPath string
	trainNoNLP     bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the skills classifier",
	Long:  `Train the binary skill/not-skill classifier from a JSON file of labeled spans ([{"text": "...", "is_skill": true}, ...]) and save the model artifact.`,
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&trainDataPath, "data", "", "Path to labeled training data JSON (required)")
	trainCmd.Flags().StringVar(&trainModelPath, "model", classifier.DefaultModelPath, "Where to save the trained model")
	trainCmd.Flags().BoolVar(&trainNoNLP, "no-nlp", false, "Train without linguistic features")
	_ = trainCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(_ *cobra.Command, _ []string) error {
	log, err := logger.New(false, false)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	data, err := os.ReadFile(trainDataPath)
	if err != nil {
		return fmt.Errorf("failed to read training data: %w", err)
	}

	var samples []classifier.Sample
	if err := json.Unmarshal(data, &samples); err != nil {
		return fmt.Errorf("failed to parse training data: %w", err)
	}

	clf := classifier.New(buildEngine(trainNoNLP), log)
	metrics, err := clf.Train(samples)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	if err := clf.Save(trainModelPath); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	fmt.Printf("Trained on %d samples, accuracy %.3f\n", len(samples), metrics.Accuracy)
	fmt.Printf("Model saved to %s\n\n", trainModelPath)
	fmt.Println("Feature importance:")
	for _, name := range importanceOrder(metrics.FeatureImportance) {
		fmt.Printf("  %-20s %.4f\n", name, metrics.FeatureImportance[name])
	}
	return nil
}

// importanceOrder sorts feature names by descending importance.
func importanceOrder(importance map[string]float64) []string {
	names := make([]string, 0, len(importance))
	for name := range importance {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if importance[names[i]] != importance[names[j]] {
			return importance[names[i]] > importance[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
