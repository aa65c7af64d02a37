package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/desertthunder/setlist/internal/formatter"
	"github.com/desertthunder/setlist/internal/shared"
	"golang.org/x/time/rate"
)

const manifestName = "export_manifest.json"

// BulkExport exports the named playlists concurrently, or every playlist when names is empty.
//
// Partial failures are recorded per playlist; the returned error is reserved for
// failures that stop the whole run.
func (e *Exporter) BulkExport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	names []string,
	opts BulkExportOpts,
) (*BulkExportResult, error) {
	if e.client == nil {
		return nil, fmt.Errorf("%w: client not initialized", shared.ErrServiceUnavailable)
	}

	if opts.Format == "" {
		opts.Format = formatter.FormatText
	}
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("setlist_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}

	if len(names) == 0 {
		sendProgress(prog, ProgressUpdate{Phase: FetchPlaylists, Step: 1, Total: 1, Message: "Fetching playlists"})
		playlists, err := e.client.ListPlaylists(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list playlists: %w", err)
		}
		for _, pl := range playlists {
			names = append(names, pl.Name)
		}
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		Format:          opts.Format,
		TotalPlaylists:  len(names),
		OutputDirectory: opts.OutputDir,
		Results:         make([]PlaylistExportResult, 0, len(names)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	jobs := make(chan exportJob, len(names))
	results := make(chan PlaylistExportResult, len(names))

	var wg sync.WaitGroup
	for range opts.NumWorkers {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, limiter, jobs, results, opts)
	}

	files := uniqueFileNames(names)
	for i, name := range names {
		jobs <- exportJob{name: name, file: files[i] + "." + opts.Format.Extension()}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			sendProgress(prog, exportedUpdate(completed, len(names), res.Name))
		} else {
			result.FailedExports++
			e.logger.Warn("export failed", "name", res.Name, "error", res.Error)
			sendProgress(prog, exportFailedUpdate(completed, len(names), res.Name, res.Error))
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// Workers finish in any order.
	sortResults(result.Results, names)

	sendProgress(prog, ProgressUpdate{Phase: WriteManifest, Step: 1, Total: 1, Message: "Writing manifest"})
	manifestPath := filepath.Join(opts.OutputDir, manifestName)
	if err := writeManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

type exportJob struct {
	name string
	file string
}

// exportWorker exports playlists from the jobs channel until it closes or ctx ends.
func (e *Exporter) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	limiter *rate.Limiter,
	jobs <-chan exportJob,
	results chan<- PlaylistExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		results <- e.exportSinglePlaylist(ctx, job, opts)
	}
}

func (e *Exporter) exportSinglePlaylist(ctx context.Context, job exportJob, opts BulkExportOpts) PlaylistExportResult {
	result := PlaylistExportResult{Name: job.name}

	data, err := e.client.ExportPlaylist(ctx, job.name, string(opts.Format))
	if err != nil {
		result.Error = err.Error()
		return result
	}

	path := filepath.Join(opts.OutputDir, job.file)
	if _, err := formatter.WriteExport(data, job.name, opts.Format, path); err != nil {
		result.Error = err.Error()
		return result
	}

	result.File = path
	result.Success = true
	return result
}

// fileName maps a playlist name onto a safe file name.
func fileName(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r < 0x20:
			return '_'
		default:
			return r
		}
	}, strings.TrimSpace(name))

	if safe == "" || safe == "." || safe == ".." {
		return "playlist"
	}
	return safe
}

// uniqueFileNames maps each name to a file name that no earlier name in the
// list has taken. Comparison ignores case so the result is safe on
// case-insensitive filesystems; later collisions get a numeric suffix.
func uniqueFileNames(names []string) []string {
	taken := make(map[string]bool, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		base := fileName(name)
		candidate := base
		for n := 2; taken[strings.ToLower(candidate)]; n++ {
			candidate = fmt.Sprintf("%s_%d", base, n)
		}
		taken[strings.ToLower(candidate)] = true
		out[i] = candidate
	}
	return out
}

// sortResults orders results to match the requested names.
func sortResults(results []PlaylistExportResult, names []string) {
	order := make(map[string]int, len(names))
	for i, n := range names {
		if _, ok := order[n]; !ok {
			order[n] = i
		}
	}
	slices.SortStableFunc(results, func(a, b PlaylistExportResult) int {
		return order[a.Name] - order[b.Name]
	})
}

func writeManifest(result *BulkExportResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
