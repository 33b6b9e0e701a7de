package main

import (
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/classifier"
	"github.com/jonathan/resume-matcher/internal/nlp"
)

// buildEngine selects the linguistic engine for a run.
func buildEngine(disabled bool) nlp.Engine {
	if disabled {
		return nlp.NewNull()
	}
	return nlp.NewProse()
}

// loadClassifier loads the trained skills classifier when the artifact
// exists. A failed load is logged and leaves the permissive default in
// place.
func loadClassifier(engine nlp.Engine, path string, log *zap.Logger) *classifier.Classifier {
	clf := classifier.New(engine, log)
	if err := clf.Load(path); err != nil {
		log.Warn("skills classifier not loaded, keeping permissive default",
			zap.String("path", path), zap.Error(err))
	}
	return clf
}
