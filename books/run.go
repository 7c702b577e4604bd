package books

import (
	"context"
	"fmt"
	"os"

	"github.com/litbook/litbook/bookconfigs"
	"github.com/litbook/litbook/logs"
)

// Run processes the documents in order, each with a fresh execution
// context. A failing document does not stop the rest; the error reports
// how many failed.
type Run func(ctx context.Context, paths []string) error

func (Module) Run(
	process ProcessDocument,
	timeZone bookconfigs.TimeZone,
	writer logs.Writer,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, paths []string) error {
		// executed code observing the environment sees a fixed zone
		os.Setenv("TZ", string(timeZone))

		failed := 0
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := process(ctx, path); err != nil {
				failed++
				fmt.Fprintf(writer, "%s: %v\n", path, err)
				logger.ErrorContext(ctx, "document failed",
					"path", path,
					"error", err,
				)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d documents failed", failed, len(paths))
		}
		return nil
	}
}
