// Package merge turns a declarations header and its implementation file into
// one single-header library, keeping the inclusion guard of the header
// around both.
package merge

import (
	"fmt"
	"time"

	"unihdr/pkg/config"

	"go.uber.org/zap"
)

// Result describes a finished merge.
type Result struct {
	Stage              Stage
	Lines              []string // merged document
	DeclarationsBody   int
	ImplementationBody int
	Tail               int
	SkippedPreamble    int
	Written            bool
}

// Run loads both documents, splits and scans them and writes the merged
// document to cfg.OutputPath, unless cfg.DryRun is set. Nothing is written
// when any earlier stage fails.
func Run(cfg config.Config, store LineStore, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	startTime := time.Now()
	res := &Result{Stage: StageStart}

	decl, err := load(store, cfg.DeclarationsPath)
	if err != nil {
		return res, err
	}
	impl, err := load(store, cfg.ImplementationPath)
	if err != nil {
		return res, err
	}
	res.Stage = StageLoaded
	logger.Debug("Loaded documents",
		zap.String("declarations", decl.Path),
		zap.Int("declarationsLines", decl.Len()),
		zap.String("implementation", impl.Path),
		zap.Int("implementationLines", impl.Len()))

	split, err := SplitGuard(decl, cfg.TailLineCount)
	if err != nil {
		logger.Error("Failed to split declarations", zap.String("path", decl.Path), zap.Error(err))
		return res, err
	}
	res.Stage = StageSplit
	res.DeclarationsBody, res.Tail = len(split.Body), len(split.Tail)
	logger.Debug("Split declarations",
		zap.Int("bodyLines", len(split.Body)),
		zap.Int("tailLines", len(split.Tail)))

	scanned := ScanPreamble(impl, PrefixMarker(cfg.MarkerPrefix))
	res.Stage = StageScanned
	res.ImplementationBody, res.SkippedPreamble = len(scanned.Body), scanned.Skipped
	if len(scanned.Body) == 0 {
		logger.Warn("No implementation line starts with the marker; merged output holds declarations only",
			zap.String("implementation", impl.Path),
			zap.String("marker", cfg.MarkerPrefix))
	} else {
		logger.Debug("Scanned implementation",
			zap.Int("skippedLines", scanned.Skipped),
			zap.Int("bodyLines", len(scanned.Body)))
	}

	res.Lines = Compose(split.Body, scanned.Body, split.Tail)
	if cfg.DryRun {
		res.Stage = StageComposed
		logger.Info("Dry run, output not written",
			zap.String("output", cfg.OutputPath),
			zap.Int("lines", len(res.Lines)))
		return res, nil
	}

	if err := store.WriteLines(cfg.OutputPath, res.Lines); err != nil {
		logger.Error("Failed to write merged header", zap.String("output", cfg.OutputPath), zap.Error(err))
		return res, &PathError{Op: "write", Path: cfg.OutputPath, Kind: ErrWriteFailure, Err: err}
	}
	res.Stage = StageComposed
	res.Written = true

	logger.Info("Merged single header",
		zap.String("output", cfg.OutputPath),
		zap.Int("lines", len(res.Lines)),
		zap.Duration("elapsed", time.Since(startTime)))
	return res, nil
}

func load(store LineStore, path string) (Document, error) {
	lines, err := store.LoadLines(path)
	if err != nil {
		return Document{}, &PathError{Op: "load", Path: path, Kind: ErrResourceNotFound, Err: err}
	}
	return Document{Path: path, Lines: lines}, nil
}
