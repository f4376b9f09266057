package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"graphkit/internal/graph"
	"graphkit/internal/graphkiterrors"
	"graphkit/internal/logging"
)

func newLogger(logLevel, logFormat string) (*zap.Logger, error) {
	return logging.New(logging.WithLevel(logLevel), logging.WithFormat(logFormat))
}

func loadGraphLogged(l *zap.Logger, input string) (*graph.Graph, error) {
	l.Info("loading graph", zap.String("input", input))
	start := time.Now()
	g, err := graph.LoadFile(input)
	if err != nil {
		return nil, err
	}
	l.Info("loaded graph",
		zap.Int("vertices", g.NumVertices()),
		zap.Int("edges", g.NumEdges()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return g, nil
}

func validateMode(mode string, allowParOpt bool) error {
	switch mode {
	case "seq", "par":
		return nil
	case "par-opt":
		if allowParOpt {
			return nil
		}
	}
	return fmt.Errorf("unknown mode %q: %w", mode, graphkiterrors.ErrArgument)
}

func validateThreads(threads int) error {
	if threads <= 0 {
		return fmt.Errorf("thread count must be positive, got %d: %w", threads, graphkiterrors.ErrArgument)
	}
	return nil
}
