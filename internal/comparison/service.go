package comparison

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/velyan/dirdiff/internal/compare"
	"github.com/velyan/dirdiff/internal/report"
	"github.com/velyan/dirdiff/internal/scan"
	"github.com/velyan/dirdiff/internal/ui"
	pathutils "github.com/velyan/dirdiff/internal/utils/path"
)

const (
	interruptedMessageConstant         = "comparison interrupted by user"
	interruptionTemplateConstant       = "%w: %v"
	rootValidationTemplateConstant     = "%w: %s"
	absolutePathErrorTemplateConstant  = "failed to resolve absolute path for %s: %w"
	scanFailureTemplateConstant        = "failed to scan %s: %w"
	scanningMessageConstant            = "scanning directory"
	scanCompletedMessageConstant       = "directory scan completed"
	comparisonStartingMessageConstant  = "comparing file contents"
	comparisonCompletedMessageConstant = "comparison completed"
	reportLineTemplateConstant         = "\n%s\n"
	logFieldRootConstant               = "root"
	logFieldFileCountConstant          = "file_count"
	logFieldFirstFileCountConstant     = "first_file_count"
	logFieldSecondFileCountConstant    = "second_file_count"
	logFieldOnlyInFirstCountConstant   = "only_in_first"
	logFieldOnlyInSecondCountConstant  = "only_in_second"
	logFieldDifferingCountConstant     = "differing"
)

// ErrInterrupted marks a user-initiated cancellation of a running
// comparison. It is distinct from comparison failures so callers can report
// it separately while still exiting non-zero.
var ErrInterrupted = errors.New(interruptedMessageConstant)

// ComparisonOptions carries one invocation's inputs into the Service.
type ComparisonOptions struct {
	FirstRoot          string
	SecondRoot         string
	IgnoreExtensions   []string
	OnlyExtensions     []string
	IgnoreDirectories  []string
	IgnoreFilePatterns []string
	ReportPath         string
	ShowDiffs          bool
	WorkerCount        int
}

// Service orchestrates the scan, diff, and reporting phases of one
// comparison run.
type Service struct {
	logger           *zap.Logger
	scanner          *scan.Scanner
	reporter         report.Reporter
	homeExpander     *pathutils.HomeExpander
	progressObserver compare.ProgressObserver
}

// NewService constructs a Service. A nil logger falls back to a no-op
// logger, a nil reporter writes to standard output, and a nil observer
// enables the terminal progress bar.
func NewService(logger *zap.Logger, reporter report.Reporter, progressObserver compare.ProgressObserver) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = report.NewWriterReporter(nil)
	}
	if progressObserver == nil {
		progressObserver = ui.NewProgressBar(nil)
	}
	return &Service{
		logger:           logger,
		scanner:          scan.NewScanner(),
		reporter:         reporter,
		homeExpander:     pathutils.NewHomeExpander(),
		progressObserver: progressObserver,
	}
}

// Run validates both roots, scans them, compares the surviving files, and
// renders the report and summary. It returns the comparison result so
// programmatic callers can inspect it alongside the rendered output.
func (service *Service) Run(executionContext context.Context, options ComparisonOptions) (*compare.Result, error) {
	firstRoot, firstRootError := service.resolveRoot(options.FirstRoot)
	if firstRootError != nil {
		return nil, firstRootError
	}
	secondRoot, secondRootError := service.resolveRoot(options.SecondRoot)
	if secondRootError != nil {
		return nil, secondRootError
	}

	filterConfiguration := scan.NewFilterConfiguration(
		options.IgnoreExtensions,
		options.OnlyExtensions,
		options.IgnoreDirectories,
		options.IgnoreFilePatterns,
	)

	service.logger.Info(scanningMessageConstant, zap.String(logFieldRootConstant, firstRoot))
	firstSet, firstScanError := service.scanner.Scan(firstRoot, filterConfiguration)
	if firstScanError != nil {
		return nil, fmt.Errorf(scanFailureTemplateConstant, firstRoot, firstScanError)
	}

	service.logger.Info(scanningMessageConstant, zap.String(logFieldRootConstant, secondRoot))
	secondSet, secondScanError := service.scanner.Scan(secondRoot, filterConfiguration)
	if secondScanError != nil {
		return nil, fmt.Errorf(scanFailureTemplateConstant, secondRoot, secondScanError)
	}

	service.logger.Info(
		scanCompletedMessageConstant,
		zap.Int(logFieldFirstFileCountConstant, firstSet.Len()),
		zap.Int(logFieldSecondFileCountConstant, secondSet.Len()),
	)

	service.logger.Info(
		comparisonStartingMessageConstant,
		zap.Int(logFieldFileCountConstant, firstSet.Intersection(secondSet).Len()),
	)

	engine := compare.NewEngine(options.WorkerCount, service.progressObserver)
	result, comparisonError := engine.Compare(executionContext, firstRoot, secondRoot, firstSet, secondSet)
	if comparisonError != nil {
		if errors.Is(comparisonError, context.Canceled) || errors.Is(comparisonError, context.DeadlineExceeded) {
			return nil, fmt.Errorf(interruptionTemplateConstant, ErrInterrupted, comparisonError)
		}
		return nil, comparisonError
	}

	service.logger.Info(
		comparisonCompletedMessageConstant,
		zap.Int(logFieldOnlyInFirstCountConstant, len(result.OnlyInFirst)),
		zap.Int(logFieldOnlyInSecondCountConstant, len(result.OnlyInSecond)),
		zap.Int(logFieldDifferingCountConstant, len(result.Differing)),
	)

	renderer := report.NewRenderer(report.RendererOptions{IncludeDiffDetails: options.ShowDiffs})
	if len(options.ReportPath) > 0 {
		if writeError := renderer.WriteFile(result, options.ReportPath); writeError != nil {
			return nil, writeError
		}
	} else {
		service.reporter.Printf(reportLineTemplateConstant, renderer.Render(result))
	}

	summaryPrinter := report.NewSummaryPrinter(service.reporter)
	summaryPrinter.PrintSummary(result, options.ReportPath)

	return result, nil
}

// resolveRoot expands a leading tilde, resolves the absolute path, and
// verifies the root is an existing directory before any scanning occurs.
func (service *Service) resolveRoot(rootPath string) (string, error) {
	expandedRoot := service.homeExpander.Expand(rootPath)

	absoluteRoot, absoluteError := filepath.Abs(expandedRoot)
	if absoluteError != nil {
		return "", fmt.Errorf(absolutePathErrorTemplateConstant, rootPath, absoluteError)
	}

	rootInfo, statError := os.Stat(absoluteRoot)
	if statError != nil || !rootInfo.IsDir() {
		return "", fmt.Errorf(rootValidationTemplateConstant, scan.ErrRootNotFound, rootPath)
	}

	return absoluteRoot, nil
}
