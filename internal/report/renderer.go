package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/velyan/dirdiff/internal/compare"
)

const (
	headerRuleConstant                  = "================================================================================"
	sectionRuleConstant                 = "--------------------------------------------------------------------------------"
	reportTitleConstant                 = "PROJECT COMPARISON REPORT"
	firstRootLineTemplateConstant       = "Project 1: %s"
	secondRootLineTemplateConstant      = "Project 2: %s"
	onlyInFirstHeadingTemplateConstant  = "📌 FILES FOUND ONLY IN PROJECT1 (%d files):"
	onlyInSecondHeadingTemplateConstant = "📌 FILES FOUND ONLY IN PROJECT2 (%d files):"
	differingHeadingTemplateConstant    = "📌 FILES WITH CONTENT DIFFERENCES (%d files):"
	diffDetailHeadingTemplateConstant   = "📌 UNIFIED DIFFS (%d files):"
	fileBulletTemplateConstant          = "  ➤ %s"
	lineSeparatorConstant               = "\n"
	emptyLineConstant                   = ""
	reportFilePermissionsConstant       = 0o644
	reportWriteErrorTemplateConstant    = "failed to write report file: %w"
)

// RendererOptions controls optional report content beyond the stable
// three-section contract.
type RendererOptions struct {
	// IncludeDiffDetails appends every differing file's unified diff after
	// the contractual sections.
	IncludeDiffDetails bool
}

// Renderer produces the plain-text comparison report.
type Renderer struct {
	options RendererOptions
}

// NewRenderer constructs a Renderer with the provided options.
func NewRenderer(options RendererOptions) *Renderer {
	return &Renderer{options: options}
}

// Render builds the full report text for a comparison result. Sections with
// no entries are omitted, matching the stable report contract.
func (renderer *Renderer) Render(result *compare.Result) string {
	lines := []string{
		headerRuleConstant,
		reportTitleConstant,
		headerRuleConstant,
		fmt.Sprintf(firstRootLineTemplateConstant, result.FirstRoot),
		fmt.Sprintf(secondRootLineTemplateConstant, result.SecondRoot),
		headerRuleConstant,
		emptyLineConstant,
	}

	lines = appendFileSection(lines, onlyInFirstHeadingTemplateConstant, result.OnlyInFirst)
	lines = appendFileSection(lines, onlyInSecondHeadingTemplateConstant, result.OnlyInSecond)
	lines = appendFileSection(lines, differingHeadingTemplateConstant, result.DifferingPaths())

	if renderer.options.IncludeDiffDetails {
		lines = appendDiffDetails(lines, result)
	}

	return strings.Join(lines, lineSeparatorConstant)
}

// WriteFile renders the report and writes it to the provided path.
func (renderer *Renderer) WriteFile(result *compare.Result, reportPath string) error {
	reportText := renderer.Render(result)
	if writeError := os.WriteFile(reportPath, []byte(reportText), reportFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(reportWriteErrorTemplateConstant, writeError)
	}
	return nil
}

func appendFileSection(lines []string, headingTemplate string, relativePaths []string) []string {
	if len(relativePaths) == 0 {
		return lines
	}

	lines = append(lines, fmt.Sprintf(headingTemplate, len(relativePaths)))
	lines = append(lines, sectionRuleConstant)
	for _, relativePath := range relativePaths {
		lines = append(lines, fmt.Sprintf(fileBulletTemplateConstant, relativePath))
	}
	lines = append(lines, emptyLineConstant)
	return lines
}

func appendDiffDetails(lines []string, result *compare.Result) []string {
	differingPaths := result.DifferingPaths()
	if len(differingPaths) == 0 {
		return lines
	}

	lines = append(lines, fmt.Sprintf(diffDetailHeadingTemplateConstant, len(differingPaths)))
	lines = append(lines, sectionRuleConstant)
	for _, relativePath := range differingPaths {
		record := result.Differing[relativePath]
		lines = append(lines, record.Lines...)
		lines = append(lines, emptyLineConstant)
	}
	return lines
}
