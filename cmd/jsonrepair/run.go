package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"github.com/Latias94/jsonrepair/internal/cache"
	"github.com/Latias94/jsonrepair/repair"
)

// streamChunkSize is the fixed chunk size --stream feeds through the
// incremental driver; it exists to exercise Stream from the CLI, not
// because real input arrives in this size.
const streamChunkSize = 64

func run(ctx context.Context, cfg *Config, logger *slog.Logger, paths []string, stdout io.Writer) error {
	if err := cfg.validateJobs(); err != nil {
		return err
	}

	opts := cfg.ToOptions()

	var c *cache.Cache
	if cfg.CacheIdentical {
		c = cache.New()
	}

	results := make([][]byte, len(paths))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			input, err := readInput(path)
			if err != nil {
				logger.Warn("read failed", "path", path, "error", err)
				return fmt.Errorf("reading %s: %w", path, err)
			}

			out, ok, err := repairOne(input, opts, cfg, c)
			if err != nil {
				logger.Warn("repair failed", "path", path, "error", err)
				return fmt.Errorf("repairing %s: %w", path, err)
			}
			if !ok {
				logger.Warn("repair produced no output", "path", path)
				return fmt.Errorf("could not repair %s", path)
			}
			logger.Debug("repaired input", "path", path, "bytes_in", len(input), "bytes_out", len(out))
			results[i] = []byte(out)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return writeOutput(cfg, stdout, bytes.Join(results, []byte("\n")))
}

func readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func repairOne(input []byte, opts *repair.Options, cfg *Config, c *cache.Cache) (string, bool, error) {
	var key uint64
	if c != nil {
		key = cache.Key(input)
		if out, ok, hit := c.Get(key); hit {
			return out, ok, nil
		}
	}

	var out string
	var ok bool
	if cfg.Stream {
		out, ok = repairStreamed(input, opts)
	} else {
		out, ok = repair.RepairWithOptions(input, opts)
	}

	if c != nil {
		c.Put(key, out, ok)
	}
	return out, ok, nil
}

// repairStreamed feeds input through a Stream in fixed-size chunks,
// exercising the same code path repeated Push/Flush callers use.
func repairStreamed(input []byte, opts *repair.Options) (string, bool) {
	s := repair.NewStream(opts)
	var out bytes.Buffer
	any := false

	for off := 0; off < len(input); off += streamChunkSize {
		end := off + streamChunkSize
		if end > len(input) {
			end = len(input)
		}
		if chunk, ok := s.Push(input[off:end]); ok {
			out.WriteString(chunk)
			any = true
		}
	}
	if chunk, ok := s.Flush(); ok {
		out.WriteString(chunk)
		any = true
	}
	return out.String(), any
}

func writeOutput(cfg *Config, stdout io.Writer, data []byte) error {
	data = append(data, '\n')

	w := stdout
	var f *os.File
	if cfg.Output != "" && cfg.Output != "-" {
		var err error
		f, err = os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", cfg.Output, err)
		}
		defer f.Close()
		w = f
	}

	if cfg.Gzip {
		gz := gzip.NewWriter(w)
		defer gz.Close()
		_, err := gz.Write(data)
		return err
	}

	_, err := w.Write(data)
	return err
}
