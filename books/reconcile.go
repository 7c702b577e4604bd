package books

import (
	"context"
	"fmt"

	"github.com/litbook/litbook/logs"
	"github.com/pmezard/go-difflib/difflib"
)

// Reconcile reports how a produced output differs from what the fence
// recorded, as a unified diff on the operator channel. Unchanged fences
// are silent.
type Reconcile func(ctx context.Context, path string, line int, previous, current string)

func (Module) Reconcile(
	writer logs.Writer,
	logger logs.Logger,
) Reconcile {
	return func(ctx context.Context, path string, line int, previous, current string) {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(previous),
			B:        difflib.SplitLines(current),
			FromFile: fmt.Sprintf("%s:%d recorded", path, line),
			ToFile:   fmt.Sprintf("%s:%d produced", path, line),
			Context:  3,
		})
		if err != nil {
			logger.ErrorContext(ctx, "diff failed",
				"error", err,
			)
			return
		}
		fmt.Fprint(writer, diff)
	}
}
