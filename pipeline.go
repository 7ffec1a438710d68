package pcxconv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/pcxconv/palette"
)

func hasExt(file string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// outputName derives the converted filename for src, placing it in dir or
// alongside src if dir is empty
func outputName(src, dir string, caseFn func(string) string, ext string) string {
	base := filepath.Base(src)
	base = caseFn(strings.TrimSuffix(base, filepath.Ext(base))) + ext
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, base)
}

func findFiles(ctx context.Context, paths []string, exts []string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, len(paths))
	go func() {
		defer close(out)
		defer close(errc)
		for _, path := range paths {
			base, err := filepath.Abs(path)
			if err != nil {
				errc <- err
				continue
			}

			if err := filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}

				// Files named explicitly are always converted
				if file == base && info.Mode().IsRegular() {
					select {
					case out <- file:
					case <-ctx.Done():
						return ctx.Err()
					}
					return nil
				}

				// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
				if file != base && info.Name()[0] == '.' {
					if info.Mode().IsDir() {
						return filepath.SkipDir
					}
					return nil
				}

				if !info.Mode().IsRegular() || !hasExt(file, exts) {
					return nil
				}

				select {
				case out <- file:
				case <-ctx.Done():
					return ctx.Err()
				}

				return nil
			}); err != nil {
				errc <- err
				if ctx.Err() != nil {
					return
				}
			}
		}
	}()
	return out, errc
}

func (c *Converter) fileWorker(in <-chan string, fn func(string) error) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			if err := fn(file); err != nil {
				c.logger.Printf("Failed to convert \"%s\": %v\n", file, err)
				errc <- err
			}
		}
	}()
	return errc
}

// waitForPipeline drains every error channel so one failed file does not
// stop the rest of the batch, and returns all of the errors joined together
func waitForPipeline(errs ...<-chan error) error {
	var failed []error
	for err := range mergeErrors(errs...) {
		if err != nil {
			failed = append(failed, err)
		}
	}
	return errors.Join(failed...)
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func (c *Converter) run(ctx context.Context, paths []string, exts []string, fn func(string) error) error {
	files, errc := findFiles(ctx, paths, exts)

	errcList := []<-chan error{errc}
	for i := 0; i < c.workers; i++ {
		errcList = append(errcList, c.fileWorker(files, fn))
	}

	return waitForPipeline(errcList...)
}

// DecodeAll converts every PCX file found in paths to the raster format
// named by ext, for example ".png". Directories are searched recursively.
// Output files are lower case and written to outDir or next to each source
// file if outDir is empty. A file that fails to convert is logged and the
// batch carries on; all failures are returned together.
func (c *Converter) DecodeAll(ctx context.Context, paths []string, outDir, ext string) error {
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}

	return c.run(ctx, paths, []string{".pcx"}, func(src string) error {
		return c.DecodeFile(src, outputName(src, outDir, strings.ToLower, ext))
	})
}

// EncodeAll converts every raster image found in paths to PCX using palette
// p. Output files are upper case with a .PCX extension and otherwise follow
// the same rules as DecodeAll.
func (c *Converter) EncodeAll(ctx context.Context, paths []string, outDir string, p *palette.Palette, scanlines bool) error {
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}

	return c.run(ctx, paths, rasterExts, func(src string) error {
		return c.EncodeFile(src, outputName(src, outDir, strings.ToUpper, ".PCX"), p, scanlines)
	})
}
