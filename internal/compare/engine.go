package compare

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/velyan/dirdiff/internal/scan"
)

const (
	firstTreeLabelPrefixConstant    = "Project1/"
	secondTreeLabelPrefixConstant   = "Project2/"
	unifiedDiffContextLineConstant  = 3
	invalidByteReplacementConstant  = "�"
	newlineConstant                 = "\n"
	fileReadErrorTemplateConstant   = "failed to read file: %w"
	readFailureLineTemplateConstant = "ERROR: file could not be compared - %v"
)

// ProgressObserver receives comparison lifecycle notifications so a
// presentation collaborator can render progress without the engine knowing
// anything about terminals.
type ProgressObserver interface {
	ComparisonStarted(totalFileCount int)
	FileCompared(relativePath string)
	ComparisonFinished()
}

// Engine performs pairwise content comparison between two scanned trees.
type Engine struct {
	workerCount int
	observer    ProgressObserver
}

// NewEngine constructs an Engine. A non-positive worker count selects one
// worker per CPU; a nil observer disables progress notifications.
func NewEngine(workerCount int, observer ProgressObserver) *Engine {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	return &Engine{workerCount: workerCount, observer: observer}
}

// Compare computes the set differences between the two file sets and a
// unified diff for every common file whose contents differ. Files that read
// identically produce no record. A file that cannot be read on either side
// yields a single synthetic error line and the comparison continues; only
// context cancellation aborts the run early.
func (engine *Engine) Compare(executionContext context.Context, firstRoot string, secondRoot string, firstSet scan.FileSet, secondSet scan.FileSet) (*Result, error) {
	result := &Result{
		FirstRoot:    firstRoot,
		SecondRoot:   secondRoot,
		OnlyInFirst:  firstSet.Difference(secondSet).SortedPaths(),
		OnlyInSecond: secondSet.Difference(firstSet).SortedPaths(),
		Differing:    make(map[string]DiffRecord),
	}

	commonPaths := firstSet.Intersection(secondSet).SortedPaths()

	if engine.observer != nil {
		engine.observer.ComparisonStarted(len(commonPaths))
	}

	comparisonJobs := make(chan string, len(commonPaths))
	comparisonOutcomes := make(chan fileOutcome, len(commonPaths))

	var workerGroup sync.WaitGroup
	for workerIndex := 0; workerIndex < engine.workerCount; workerIndex++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for relativePath := range comparisonJobs {
				if executionContext.Err() != nil {
					continue
				}
				comparisonOutcomes <- engine.compareFile(firstRoot, secondRoot, relativePath)
			}
		}()
	}

	for _, relativePath := range commonPaths {
		comparisonJobs <- relativePath
	}
	close(comparisonJobs)

	go func() {
		workerGroup.Wait()
		close(comparisonOutcomes)
	}()

	for outcome := range comparisonOutcomes {
		if outcome.record != nil {
			result.Differing[outcome.relativePath] = *outcome.record
		}
		if engine.observer != nil {
			engine.observer.FileCompared(outcome.relativePath)
		}
	}

	if engine.observer != nil {
		engine.observer.ComparisonFinished()
	}

	if contextError := executionContext.Err(); contextError != nil {
		return nil, contextError
	}

	return result, nil
}

type fileOutcome struct {
	relativePath string
	record       *DiffRecord
}

func (engine *Engine) compareFile(firstRoot string, secondRoot string, relativePath string) fileOutcome {
	firstPath := filepath.Join(firstRoot, filepath.FromSlash(relativePath))
	secondPath := filepath.Join(secondRoot, filepath.FromSlash(relativePath))

	firstDigest, firstDigestError := digestFile(firstPath)
	if firstDigestError != nil {
		return readFailureOutcome(relativePath, firstDigestError)
	}
	secondDigest, secondDigestError := digestFile(secondPath)
	if secondDigestError != nil {
		return readFailureOutcome(relativePath, secondDigestError)
	}
	if firstDigest == secondDigest {
		return fileOutcome{relativePath: relativePath}
	}

	firstLines, firstReadError := readFileLines(firstPath)
	if firstReadError != nil {
		return readFailureOutcome(relativePath, firstReadError)
	}
	secondLines, secondReadError := readFileLines(secondPath)
	if secondReadError != nil {
		return readFailureOutcome(relativePath, secondReadError)
	}

	unifiedDiff := difflib.UnifiedDiff{
		A:        firstLines,
		B:        secondLines,
		FromFile: firstTreeLabelPrefixConstant + relativePath,
		ToFile:   secondTreeLabelPrefixConstant + relativePath,
		Context:  unifiedDiffContextLineConstant,
	}
	diffText, diffError := difflib.GetUnifiedDiffString(unifiedDiff)
	if diffError != nil {
		return readFailureOutcome(relativePath, diffError)
	}
	if len(diffText) == 0 {
		return fileOutcome{relativePath: relativePath}
	}

	return fileOutcome{
		relativePath: relativePath,
		record:       &DiffRecord{Lines: splitDiffLines(diffText)},
	}
}

// readFileLines loads the file as text with permissive decoding: byte
// sequences that are not valid UTF-8 are replaced so an undecodable file
// still participates in line diffing instead of aborting the run.
func readFileLines(path string) ([]string, error) {
	content, readError := os.ReadFile(path)
	if readError != nil {
		return nil, fmt.Errorf(fileReadErrorTemplateConstant, readError)
	}
	decoded := strings.ToValidUTF8(string(content), invalidByteReplacementConstant)
	return difflib.SplitLines(decoded), nil
}

func readFailureOutcome(relativePath string, failure error) fileOutcome {
	return fileOutcome{
		relativePath: relativePath,
		record: &DiffRecord{
			Lines:       []string{fmt.Sprintf(readFailureLineTemplateConstant, failure)},
			ReadFailure: true,
		},
	}
}

func splitDiffLines(diffText string) []string {
	return strings.Split(strings.TrimSuffix(diffText, newlineConstant), newlineConstant)
}
