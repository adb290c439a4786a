package transfer

import (
	"fmt"

	"github.com/fabworks/contentbridge/internal/domain"
)

// Aggregate rolls per-item results up into a batch summary. Warnings
// are deduplicated across items so a lookup name missing for fifty
// items reads as one line, not fifty. Errors keep their file name
// prefix and are capped at errorLimit with a trailing count of the
// rest.
func Aggregate(results []domain.ItemImportResult, total int, cancelled bool, errorLimit int) *domain.BatchSummary {
	summary := &domain.BatchSummary{
		Total:     total,
		Cancelled: cancelled,
		Results:   results,
	}

	seen := make(map[string]struct{})
	suppressed := 0

	for _, result := range results {
		if result.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}

		for _, warning := range result.Warnings {
			if _, dup := seen[warning]; dup {
				continue
			}
			seen[warning] = struct{}{}
			summary.Warnings = append(summary.Warnings, warning)
		}

		for _, msg := range result.Errors {
			if errorLimit > 0 && len(summary.Errors) >= errorLimit {
				suppressed++
				continue
			}
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s", result.FileName, msg))
		}
	}

	if suppressed > 0 {
		summary.Errors = append(summary.Errors, fmt.Sprintf("+%d more errors", suppressed))
	}
	return summary
}
