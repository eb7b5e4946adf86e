package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	progressBarWidthConstant          = 50
	progressRenderThrottleConstant    = 100 * time.Millisecond
	progressFilledSegmentConstant     = "█"
	progressEmptySegmentConstant      = "░"
	progressLineTemplateConstant      = "\r\033[K[%s] %3d%% (%d/%d) %s"
	progressFinishNewlineConstant     = "\n"
	currentFileDisplayLimitConstant   = 48
	currentFileTruncationMarkConstant = "…"
)

// ProgressBar renders a throttled single-line progress display over the
// common-file comparisons. It satisfies compare.ProgressObserver.
type ProgressBar struct {
	writer      io.Writer
	enabled     bool
	mutex       sync.Mutex
	total       int
	current     int
	currentFile string
	lastRender  time.Time
}

// NewProgressBar constructs a ProgressBar writing to the provided writer.
// When the writer is nil, standard output is used and rendering is enabled
// only when standard output is a terminal.
func NewProgressBar(writer io.Writer) *ProgressBar {
	if writer != nil {
		return &ProgressBar{writer: writer, enabled: true}
	}
	return &ProgressBar{writer: os.Stdout, enabled: standardOutputIsTerminal()}
}

// ComparisonStarted records the total number of files to compare.
func (bar *ProgressBar) ComparisonStarted(totalFileCount int) {
	if bar == nil || !bar.enabled {
		return
	}

	bar.mutex.Lock()
	defer bar.mutex.Unlock()

	bar.total = totalFileCount
	bar.current = 0
	bar.lastRender = time.Time{}
	bar.render()
}

// FileCompared advances the bar by one completed file.
func (bar *ProgressBar) FileCompared(relativePath string) {
	if bar == nil || !bar.enabled {
		return
	}

	bar.mutex.Lock()
	defer bar.mutex.Unlock()

	bar.current++
	bar.currentFile = truncateFileLabel(relativePath)

	now := time.Now()
	if now.Sub(bar.lastRender) > progressRenderThrottleConstant || bar.current == bar.total {
		bar.lastRender = now
		bar.render()
	}
}

// ComparisonFinished completes the bar and moves to a fresh line.
func (bar *ProgressBar) ComparisonFinished() {
	if bar == nil || !bar.enabled {
		return
	}

	bar.mutex.Lock()
	defer bar.mutex.Unlock()

	if bar.total == 0 {
		return
	}

	bar.current = bar.total
	bar.render()
	fmt.Fprint(bar.writer, progressFinishNewlineConstant)
}

// render must be called with the mutex held.
func (bar *ProgressBar) render() {
	if bar.total == 0 {
		return
	}

	percent := bar.current * 100 / bar.total
	filledWidth := progressBarWidthConstant * bar.current / bar.total
	if filledWidth > progressBarWidthConstant {
		filledWidth = progressBarWidthConstant
	}

	segments := strings.Repeat(progressFilledSegmentConstant, filledWidth) +
		strings.Repeat(progressEmptySegmentConstant, progressBarWidthConstant-filledWidth)

	fmt.Fprintf(bar.writer, progressLineTemplateConstant, segments, percent, bar.current, bar.total, bar.currentFile)
}

func truncateFileLabel(relativePath string) string {
	if len(relativePath) <= currentFileDisplayLimitConstant {
		return relativePath
	}
	runes := []rune(relativePath)
	if len(runes) <= currentFileDisplayLimitConstant {
		return relativePath
	}
	return currentFileTruncationMarkConstant + string(runes[len(runes)-currentFileDisplayLimitConstant:])
}

func standardOutputIsTerminal() bool {
	fileInfo, statError := os.Stdout.Stat()
	if statError != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
