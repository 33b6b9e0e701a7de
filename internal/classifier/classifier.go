package classifier

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/nlp"
)

// DefaultModelPath is the default location of the trained model artifact.
const DefaultModelPath = "models/skills_classifier.gob"

// Sample is one labeled training example.
type Sample struct {
	Text    string `json:"text"`
	IsSkill bool   `json:"is_skill"`
}

// Metrics reports the outcome of a training run.
type Metrics struct {
	Accuracy          float64            `json:"accuracy"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
}

// Classifier answers whether a short text span is a skill mention. It is
// read-only after Train or Load and safe for concurrent readers. Without a
// trained model it is deliberately permissive: every span is a skill, so
// recall is never lost when the model artifact is absent.
type Classifier struct {
	engine nlp.Engine
	log    *zap.Logger
	forest *forest
}

// New creates a classifier with no model loaded. A nil engine is replaced
// by the no-capability engine; a nil logger by a no-op logger.
func New(engine nlp.Engine, log *zap.Logger) *Classifier {
	if engine == nil {
		engine = nlp.NewNull()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Classifier{engine: engine, log: log}
}

// Loaded reports whether a trained model is available.
func (c *Classifier) Loaded() bool {
	return c.forest != nil
}

// IsSkill predicts whether the span is a skill mention. With no trained
// model every span is accepted.
func (c *Classifier) IsSkill(span string) bool {
	if c.forest == nil {
		return true
	}
	return c.forest.predict(extractFeatures(span, c.engine)) == 1
}

// Train fits the tree ensemble on the labeled samples and installs it as
// the active model. It returns training accuracy and per-feature
// importances.
func (c *Classifier) Train(samples []Sample) (*Metrics, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no training samples provided")
	}

	c.log.Info("training skills classifier", zap.Int("samples", len(samples)))

	x := make([][]float64, len(samples))
	y := make([]int, len(samples))
	for i, sample := range samples {
		x[i] = extractFeatures(sample.Text, c.engine)
		if sample.IsSkill {
			y[i] = 1
		}
	}

	c.forest = trainForest(x, y)

	correct := 0
	for i := range x {
		if c.forest.predict(x[i]) == y[i] {
			correct++
		}
	}

	metrics := &Metrics{
		Accuracy:          float64(correct) / float64(len(x)),
		FeatureImportance: make(map[string]float64, featureCount),
	}
	for i, name := range FeatureNames() {
		metrics.FeatureImportance[name] = c.forest.Importances[i]
	}

	return metrics, nil
}

// Save writes the trained model to path, creating parent directories as
// needed.
func (c *Classifier) Save(path string) error {
	if c.forest == nil {
		return fmt.Errorf("no trained model to save")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := gob.NewEncoder(file).Encode(c.forest); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	return nil
}

// Load reads a trained model from path. A missing or unreadable artifact
// returns an error and leaves the permissive default in place.
func (c *Classifier) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open model file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var f forest
	if err := gob.NewDecoder(file).Decode(&f); err != nil {
		return fmt.Errorf("failed to decode model: %w", err)
	}

	c.forest = &f
	c.log.Info("loaded skills classifier", zap.String("path", path))
	return nil
}
