package books

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/litbook/litbook/bookconfigs"
	"github.com/litbook/litbook/docs"
	"github.com/litbook/litbook/logs"
	"github.com/litbook/litbook/runners"
	"github.com/litbook/litbook/tracks"
)

// ProcessDocument executes one document top to bottom and reconciles its
// output fences. The rewritten text is assembled entirely in memory and
// only reaches the file after every segment succeeded: a failing
// document is reported and left byte-for-byte untouched.
type ProcessDocument func(ctx context.Context, path string) error

func (Module) ProcessDocument(
	run runners.Run,
	runIsolated runners.RunIsolated,
	runAlternate runners.RunAlternate,
	checkSyntax runners.CheckSyntax,
	rootDir bookconfigs.RootDir,
	seed bookconfigs.RandomSeed,
	timeZone bookconfigs.TimeZone,
	reconcile Reconcile,
	writeDocument WriteDocument,
	logger logs.Logger,
) ProcessDocument {
	return func(ctx context.Context, path string) error {
		ctx = logs.WithDocument(ctx, path)

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		doc, err := docs.Parse(path, string(content))
		if err != nil {
			return err
		}

		tctx, err := tracks.NewContext(path, int64(seed), string(timeZone))
		if err != nil {
			return err
		}
		track := tctx.Primary

		includeRoot := string(rootDir)
		if includeRoot == "" {
			includeRoot = filepath.Dir(path)
		}

		var pending []tracks.Chunk
		var produced strings.Builder
		changed := false

		// flush runs the accumulated normal-mode source, so visible
		// output lands in document order before any immediate-mode
		// segment runs
		flush := func() error {
			if len(pending) == 0 {
				return nil
			}
			program := track.Extend(pending)
			pending = nil
			res := run(ctx, tctx, track, program)
			if res.Failure != nil {
				return res.Failure
			}
			produced.WriteString(res.Visible)
			return nil
		}

		for _, segment := range doc.Segments {

			if output, ok := segment.(*docs.Output); ok {
				if err := flush(); err != nil {
					return err
				}
				previous := output.TrimmedBody()
				output.SetBody(produced.String())
				produced.Reset()
				if current := output.TrimmedBody(); current != previous {
					changed = true
					reconcile(ctx, path, output.StartLine, previous, current)
				}
				continue
			}

			code, ok := segment.(*docs.Code)
			if !ok {
				continue
			}

			if code.Track == docs.TrackAlternate {
				if err := flush(); err != nil {
					return err
				}
				res := runAlternate(ctx, code.Body, code.StartLine)
				if res.Failure != nil {
					return res.Failure
				}
				produced.WriteString(res.Visible)
				continue
			}

			switch code.Mode {

			case docs.ModeNormal:
				pending = append(pending, tracks.Chunk{
					Source: code.Body,
					Origin: code.StartLine,
				})

			case docs.ModeInclude:
				resolved := filepath.Join(includeRoot, code.IncludePath)
				included, err := os.ReadFile(resolved)
				if err != nil {
					return fmt.Errorf("resolve include at line %d: %w", code.StartLine, err)
				}
				previous := code.Body
				code.SetBody("# " + filepath.Base(resolved) + "\n" + string(included))
				if code.Body != previous {
					changed = true
				}
				pending = append(pending, tracks.Chunk{
					Source:    code.Body,
					Origin:    code.StartLine,
					Collapsed: true,
				})

			case docs.ModeIsolated:
				if err := flush(); err != nil {
					return err
				}
				res := runIsolated(ctx, tctx, code.Body, code.StartLine)
				if res.Failure != nil {
					return res.Failure
				}
				produced.WriteString(res.Visible)

			case docs.ModeExpectException:
				if err := flush(); err != nil {
					return err
				}
				program := track.Extend([]tracks.Chunk{{
					Source: code.Body,
					Origin: code.StartLine,
				}})
				res := run(ctx, tctx, track, program)
				rendered, err := runners.RenderException(res, path, code.StartLine)
				if err != nil {
					return err
				}
				produced.WriteString(rendered)
				produced.WriteString("\n")

			case docs.ModeExpectSyntaxError:
				res := checkSyntax(path, code.Body, code.StartLine)
				rendered, err := runners.RenderSyntaxError(res, path, code.StartLine)
				if err != nil {
					return err
				}
				produced.WriteString(rendered)
				produced.WriteString("\n")
			}
		}

		// source after the last output fence still runs, errors must not
		// hide at the tail
		if err := flush(); err != nil {
			return err
		}

		if !changed {
			logger.DebugContext(ctx, "document unchanged")
			return nil
		}
		logger.InfoContext(ctx, "rewriting document")
		return writeDocument(path, doc.Render())
	}
}
