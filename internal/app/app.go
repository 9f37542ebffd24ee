package app

import (
	"os"
	"path/filepath"

	"chartleap/internal/classify"
	"chartleap/internal/domain"
	"chartleap/internal/expression"
	plotsvc "chartleap/internal/services/plot"
)

// HomeDirName is the settings directory created under the user's home.
const HomeDirName = ".chartleap"

// Engine is the in-process plotting pipeline.
type Engine struct {
	Classifier domain.Classifier
	Plots      *plotsvc.Service
}

// NewEngine builds the parser, classifier and plot service for settings.
func NewEngine(settings domain.Settings) (*Engine, error) {
	c := classify.New(expression.New())
	svc, err := plotsvc.New(c, settings)
	if err != nil {
		return nil, err
	}
	return &Engine{Classifier: c, Plots: svc}, nil
}

// DefaultHome returns $HOME/.chartleap.
func DefaultHome() (string, error) {
	h, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(h, HomeDirName), nil
}
