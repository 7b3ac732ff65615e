package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"jsstyle/internal/source"
)

// ListFiles returns every *.js file under dir in sorted order.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".js") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// LintDir lints every *.js file under dir independently and in parallel.
// Results come back sorted by path; a file that fails to load gets an I/O
// diagnostic instead of aborting the run.
func LintDir(ctx context.Context, dir string, opts Options) ([]*Result, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	return LintFiles(ctx, files, opts)
}

// LintFiles lints the given files in parallel, results sorted by path.
func LintFiles(ctx context.Context, files []string, opts Options) ([]*Result, error) {
	// Предзагружаем все файлы
	fileSet := source.NewFileSet()
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		if _, err := fileSet.Load(path); err != nil {
			loadErrors[path] = err
		}
	}
	for _, path := range files {
		emit(opts.Progress, path, StageLoad, StatusQueued, nil, 0)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if loadErr, failed := loadErrors[path]; failed {
				results[i] = loadFailed(ctx, path, loadErr, opts)
				return nil
			}
			id, _ := fileSet.GetLatest(path)
			results[i] = lintLoaded(gctx, fileSet.Get(id), path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(a, b int) bool { return results[a].Path < results[b].Path })
	return results, nil
}
