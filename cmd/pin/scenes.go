package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/grindlemire/go-pin/internal/scene"
)

var errNoScenes = errors.New("no scene files found")

func isScene(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// collectScenes expands paths into scene files. A directory contributes the
// scenes directly inside it; dir/... walks it recursively. Files named
// explicitly are taken as is.
func collectScenes(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		if dir, ok := strings.CutSuffix(p, "..."); ok {
			dir = filepath.Clean(strings.TrimSuffix(dir, "/"))
			err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isScene(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("unable to walk %s: %w", dir, err)
			}
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("unable to access %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", p, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && isScene(entry.Name()) {
				files = append(files, filepath.Join(p, entry.Name()))
			}
		}
	}
	if len(files) == 0 {
		return nil, errNoScenes
	}
	return files, nil
}

func scenePaths(cmd *cli.Command) ([]string, error) {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	return collectScenes(paths)
}

// printResult writes one "name x y width height" line per view.
func printResult(w io.Writer, res *scene.Result) error {
	for _, name := range res.Names() {
		f, _ := res.Frame(name)
		if _, err := fmt.Fprintf(w, "%s %g %g %g %g\n", name, f.X, f.Y, f.Width, f.Height); err != nil {
			return err
		}
	}
	return nil
}

func runResolve(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	files, err := scenePaths(cmd)
	if err != nil {
		return err
	}
	opts, err := e.Cfg.Engine.Options(e.Log)
	if err != nil {
		return fmt.Errorf("unable to configure engine: %w", err)
	}

	out := cmd.Root().Writer
	var errs error
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		s, err := scene.LoadFile(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		res, err := s.Run(e.Log.Named("scene"), opts...)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if len(files) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# %s\n", path)
		}
		if err := printResult(out, res); err != nil {
			return fmt.Errorf("unable to write result: %w", err)
		}
		e.Log.Debug("Resolved scene",
			zap.String("scene", path),
			zap.Int("views", len(res.Names())),
			zap.Int("diagnostics", len(res.Diagnostics)),
		)
	}
	return errs
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	files, err := scenePaths(cmd)
	if err != nil {
		return err
	}

	var errs error
	for _, path := range files {
		s, err := scene.LoadFile(path)
		if err == nil {
			err = s.Check()
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		e.Log.Debug("Scene is valid", zap.String("scene", path))
	}
	if errs != nil {
		return fmt.Errorf("%d of %d scene(s) had errors: %w", len(multierr.Errors(errs)), len(files), errs)
	}
	e.Log.Info("All scenes passed checks", zap.Int("count", len(files)))
	return nil
}
