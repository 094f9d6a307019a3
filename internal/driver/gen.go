package driver

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"implfan/internal/diag"
	"implfan/internal/project"
	"implfan/internal/source"
)

// GenOptions configures manifest-driven generation.
type GenOptions struct {
	// Marker overrides the manifest marker when non-empty.
	Marker string
	// Cache — nil отключает кеширование.
	Cache          *DiskCache
	MaxDiagnostics int
	// Jobs overrides the manifest value when > 0.
	Jobs int
}

// GenFileResult holds the outcome for one input file.
type GenFileResult struct {
	Input   string
	Output  string // путь записанного файла; пуст при ошибках
	FileSet *source.FileSet
	Bag     *diag.Bag
	// Count — число развёрнутых вызовов.
	Count int
	// FromCache is true when the output was replayed from the disk cache.
	FromCache bool
}

// GenerateFile expands one input and writes the result next to it.
func GenerateFile(input, output, marker string, maxDiagnostics int, cache *DiskCache) (*GenFileResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(input)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	inputHash := project.Digest(file.Hash)
	key := CacheKey(inputHash, marker)

	res := &GenFileResult{Input: input, FileSet: fs}

	if cache != nil {
		var payload DiskPayload
		hit, err := cache.Get(key, &payload)
		if err == nil && hit && payload.Marker == marker && payload.InputHash == inputHash {
			if err := os.WriteFile(output, payload.Output, 0o644); err != nil {
				return nil, err
			}
			res.Output = output
			res.Count = payload.Count
			res.FromCache = true
			res.Bag = diag.NewBag(maxDiagnostics)
			return res, nil
		}
		// ошибки чтения кеша не фатальны — пересчитаем
	}

	exp, err := expandIn(fs, fileID, ExpandOptions{Marker: marker, MaxDiagnostics: maxDiagnostics})
	if err != nil {
		return nil, err
	}
	res.Bag = exp.Bag
	res.Count = exp.Count

	if exp.Bag.HasErrors() {
		return res, nil
	}

	if err := os.WriteFile(output, exp.Output, 0o644); err != nil {
		return nil, err
	}
	res.Output = output

	if cache != nil {
		payload := &DiskPayload{
			Schema:    diskCacheSchemaVersion,
			Marker:    marker,
			InputHash: inputHash,
			Output:    exp.Output,
			Count:     exp.Count,
		}
		// промах записи в кеш не фатален
		_ = cache.Put(key, payload)
	}
	return res, nil
}

// Generate expands every manifest input in parallel. Results come back
// in input order regardless of scheduling.
func Generate(ctx context.Context, m *project.Manifest, opts GenOptions) ([]GenFileResult, error) {
	inputs, err := m.ResolveInputs()
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, nil
	}

	marker := m.Config.Generate.Marker
	if opts.Marker != "" {
		marker = opts.Marker
	}

	jobs := m.Config.Generate.Jobs
	if opts.Jobs > 0 {
		jobs = opts.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]GenFileResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			output := m.OutputPath(input)
			res, err := GenerateFile(input, output, marker, opts.MaxDiagnostics, opts.Cache)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
