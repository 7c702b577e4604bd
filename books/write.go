package books

import (
	"io"
	"os"
	"path/filepath"

	"github.com/litbook/litbook/bookconfigs"
)

// WriteDocument replaces the document file with the rewritten text, or
// prints the text when dry-run is on. The replacement goes through a
// temp file in the same directory plus rename, so a crash mid-write
// never leaves a half-written document behind.
type WriteDocument func(path, text string) error

func (Module) WriteDocument(
	dryRun bookconfigs.DryRun,
	stdout Stdout,
) WriteDocument {
	return func(path, text string) error {
		if dryRun {
			_, err := io.WriteString(stdout, text)
			return err
		}

		info, err := os.Stat(path)
		if err != nil {
			return err
		}

		tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
		if err != nil {
			return err
		}
		defer os.Remove(tmp.Name())
		if _, err := tmp.WriteString(text); err != nil {
			tmp.Close()
			return err
		}
		if err := tmp.Close(); err != nil {
			return err
		}
		if err := os.Chmod(tmp.Name(), info.Mode()); err != nil {
			return err
		}
		return os.Rename(tmp.Name(), path)
	}
}
