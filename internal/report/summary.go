package report

import "github.com/velyan/dirdiff/internal/compare"

const (
	summaryRuleLineConstant               = "================================================================================\n"
	summaryCompletedLineConstant          = "✅ COMPARISON COMPLETED\n"
	summaryOnlyInFirstTemplateConstant    = "📁 %d files found only in Project1.\n"
	summaryOnlyInSecondTemplateConstant   = "📁 %d files found only in Project2.\n"
	summaryDifferingTemplateConstant      = "📝 %d files with content differences detected.\n"
	summaryIdenticalLineConstant          = "✨ Folders are identical!\n"
	summaryReportLocationTemplateConstant = "📄 Detailed report: %s\n"
	summaryLeadingNewlineConstant         = "\n"
)

// SummaryPrinter emits the per-category console summary after a comparison.
type SummaryPrinter struct {
	reporter Reporter
}

// NewSummaryPrinter constructs a SummaryPrinter writing through the provided
// Reporter.
func NewSummaryPrinter(reporter Reporter) *SummaryPrinter {
	return &SummaryPrinter{reporter: reporter}
}

// PrintSummary writes the closing summary block with counts per category and
// the report file location when one was written.
func (printer *SummaryPrinter) PrintSummary(result *compare.Result, reportPath string) {
	if printer == nil || printer.reporter == nil {
		return
	}

	printer.reporter.Printf(summaryLeadingNewlineConstant)
	printer.reporter.Printf(summaryRuleLineConstant)
	printer.reporter.Printf(summaryCompletedLineConstant)
	printer.reporter.Printf(summaryRuleLineConstant)

	if len(result.OnlyInFirst) > 0 {
		printer.reporter.Printf(summaryOnlyInFirstTemplateConstant, len(result.OnlyInFirst))
	}
	if len(result.OnlyInSecond) > 0 {
		printer.reporter.Printf(summaryOnlyInSecondTemplateConstant, len(result.OnlyInSecond))
	}
	if len(result.Differing) > 0 {
		printer.reporter.Printf(summaryDifferingTemplateConstant, len(result.Differing))
	}
	if !result.HasDifferences() {
		printer.reporter.Printf(summaryIdenticalLineConstant)
	}
	if len(reportPath) > 0 {
		printer.reporter.Printf(summaryReportLocationTemplateConstant, reportPath)
	}

	printer.reporter.Printf(summaryRuleLineConstant)
}
