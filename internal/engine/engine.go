package engine

import (
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/bytesift/bytesift/internal/cache"
	"github.com/bytesift/bytesift/internal/classify"
	"github.com/bytesift/bytesift/internal/memregion"
	"github.com/bytesift/bytesift/internal/patterns"
	"github.com/bytesift/bytesift/internal/textscan"
	"github.com/bytesift/bytesift/internal/types"
)

// Config controls a batch run: scope, filters, and performance knobs.
type Config struct {
	// Paths are files or directories to process. "-" means stdin.
	Paths        []string
	IncludeGlobs string
	ExcludeGlobs string
	// MaxBytes skips walked files larger than the limit. Zero means no
	// limit. Explicitly named files are never size-gated.
	MaxBytes int64
	// SampleBytes bounds the prefix used for classification sniffs.
	SampleBytes int64

	MinConfidence float64
	EnableTypes   []string
	DisableTypes  []string

	Threads         int
	FailFast        bool
	Incremental     bool
	DefaultExcludes bool
	Progress        func()
}

// Result contains basic run statistics.
type Result struct {
	FilesScanned int
	Skipped      int
	Errors       int
	Duration     time.Duration
}

// Analyze runs pattern detection over every target and emits one report
// per file. Per-file failures go to onErr and do not abort the batch
// unless FailFast is set.
func Analyze(cfg Config, onReport func(types.Report), onErr func(path string, err error)) (Result, error) {
	det := patterns.New(patterns.Config{
		MinConfidence: cfg.MinConfidence,
		Enable:        cfg.EnableTypes,
		Disable:       cfg.DisableTypes,
	})
	return run(cfg, onErr, func(path string, data []byte) (func(), error) {
		rep := det.AnalyzeContent(string(data), path)
		return func() { onReport(rep) }, nil
	})
}

// Metrics emits line, word, and byte counts per target.
func Metrics(cfg Config, onMetrics func(path string, m types.TextMetrics), onErr func(path string, err error)) (Result, error) {
	return run(cfg, onErr, func(path string, data []byte) (func(), error) {
		m, err := textscan.Scan(data)
		if err != nil {
			return nil, err
		}
		return func() { onMetrics(path, m) }, nil
	})
}

// ClassifyFiles emits a classification, size, and content digest per target.
func ClassifyFiles(cfg Config, onFile func(path string, size uint64, digest string, cls types.FileClassification), onErr func(path string, err error)) (Result, error) {
	sample := cfg.SampleBytes
	if sample <= 0 {
		sample = classify.DefaultSampleBytes
	}
	return run(cfg, onErr, func(path string, data []byte) (func(), error) {
		head := data
		if int64(len(head)) > sample {
			head = head[:sample]
		}
		cls := classify.Classify(path, head)
		size := uint64(len(data))
		digest := fastHash(data)
		return func() { onFile(path, size, digest, cls) }, nil
	})
}

// Search emits one match per non-overlapping occurrence of pattern.
func Search(cfg Config, pattern []byte, onMatch func(path string, offset, length uint64), onErr func(path string, err error)) (Result, error) {
	return run(cfg, onErr, func(path string, data []byte) (func(), error) {
		offs, err := memregion.FromBytes(data).Find(pattern)
		if err != nil {
			return nil, err
		}
		return func() {
			for _, off := range offs {
				onMatch(path, off, uint64(len(pattern)))
			}
		}, nil
	})
}

// run fans targets out over a worker pool. visit does the per-file work
// off the lock and returns an emit closure; emit closures and onErr run
// serialized so callers never need their own locking, and records for a
// single file are never interleaved with another file's.
func run(cfg Config, onErr func(path string, err error), visit func(path string, data []byte) (func(), error)) (Result, error) {
	var result Result
	started := time.Now()

	targets, err := collect(cfg, os.Stat)
	if err != nil {
		return result, err
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > len(targets) && len(targets) > 0 {
		threads = len(targets)
	}

	var db cache.DB
	if cfg.Incremental {
		db, _ = cache.Load(".")
	}
	updated := map[string]string{}

	var (
		mu       sync.Mutex
		firstErr error
		stopped  bool
	)
	jobs := make(chan target)
	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				mu.Lock()
				skip := stopped
				mu.Unlock()
				if skip {
					continue
				}

				data, err := readFile(t.path)
				var emit func()
				var digest string
				if err == nil {
					if cfg.Incremental && t.path != "-" {
						digest = fastHash(data)
						mu.Lock()
						hit := db.Entries != nil && db.Entries[t.path] == digest
						if hit {
							result.Skipped++
							if cfg.Progress != nil {
								cfg.Progress()
							}
						}
						mu.Unlock()
						if hit {
							continue
						}
					}
					emit, err = visit(t.path, data)
				}

				mu.Lock()
				if err != nil {
					result.Errors++
					onErr(t.path, err)
					if cfg.FailFast && firstErr == nil {
						firstErr = err
						stopped = true
					}
				} else {
					emit()
					result.FilesScanned++
					if digest != "" {
						updated[t.path] = digest
					}
				}
				if cfg.Progress != nil {
					cfg.Progress()
				}
				mu.Unlock()
			}
		}()
	}
	for _, t := range targets {
		jobs <- t
	}
	close(jobs)
	wg.Wait()

	if cfg.Incremental && len(updated) > 0 {
		if db.Entries == nil {
			db.Entries = map[string]string{}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(".", db)
	}

	result.Duration = time.Since(started)
	return result, firstErr
}

// readFile loads a target's full contents. Regular files are read
// through a mapped region so reads share the bounds checks of the
// region layer; empty files are never mapped and yield an empty slice.
func readFile(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	info, err := os.Stat(path)
	if err == nil && info.Size() == 0 {
		return []byte{}, nil
	}
	r, err := memregion.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	view, err := r.Read(0, r.Len())
	if err != nil {
		return nil, err
	}
	// The view aliases the mapping, which dies with Close.
	out := make([]byte, len(view))
	copy(out, view)
	return out, nil
}

func fastHash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
