package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/pns/internal/names"
	"github.com/roach88/pns/internal/store"
)

// maxConcurrentReads bounds the number of files read at once.
const maxConcurrentReads = 8

// newContextGenerator supplies context ids for files indexed without
// --context. Tests swap it for a deterministic generator.
var newContextGenerator = func() store.ContextGenerator {
	return store.UUIDv7Generator{}
}

// IndexOptions holds flags for the index command.
type IndexOptions struct {
	Lang    string
	Chunk   int
	Context string
	HTML    bool
	Query   []string
}

// IndexedFile pairs an indexed file with the context it was stated in.
type IndexedFile struct {
	Path    string `json:"path" yaml:"path"`
	Context string `json:"context" yaml:"context"`
}

// IndexResult is the output of the index command.
type IndexResult struct {
	Files    []IndexedFile      `json:"files" yaml:"files"`
	Stats    store.Stats        `json:"stats" yaml:"stats"`
	Snapshot store.Snapshot     `json:"snapshot" yaml:"snapshot"`
	Digest   string             `json:"digest" yaml:"digest"`
	Metrics  map[string]float64 `json:"metrics" yaml:"metrics"`
	Hits     []store.Hit        `json:"hits,omitempty" yaml:"hits,omitempty"`
	queried  bool
}

// String prints the search hits when a query was given, the snapshot
// otherwise.
func (r IndexResult) String() string {
	if r.queried {
		lines := make([]string, len(r.Hits))
		for i, h := range r.Hits {
			lines[i] = fmt.Sprintf("%s\t%s", h.Subject, strings.Join(h.Routes, " "))
		}
		return strings.Join(lines, "\n")
	}
	data, err := store.MarshalSnapshot(r.Snapshot)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// NewIndexCommand creates the index command.
func NewIndexCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IndexOptions{}

	cmd := &cobra.Command{
		Use:   "index <glob>...",
		Short: "Index text files into a statement store",
		Long: `Articulate every file matching the globs and state its names in an
in-memory store, then print the store.

Globs support ** (doublestar). Files are read concurrently and indexed one
by one in path order. Each file gets a fresh UUID v7 context id unless
--context is given. Files ending in .html or .htm, or all files with
--html, are parsed as HTML and only their visible text is articulated.

The store's Prometheus counters are reported with the result.

With --query the store is searched for subjects covering every query name
and the hits are printed instead of the store.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Lang, "lang", "l", "EN", "language code of the rule table")
	cmd.Flags().IntVar(&opts.Chunk, "chunk", 0, "articulate chunks of at most N bytes (0 states each file whole)")
	cmd.Flags().StringVar(&opts.Context, "context", "", "context id for every file (default: a UUID v7 per file)")
	cmd.Flags().BoolVar(&opts.HTML, "html", false, "parse every file as HTML")
	cmd.Flags().StringArrayVarP(&opts.Query, "query", "q", nil, "search the store for a name (repeatable)")

	return cmd
}

func runIndex(rootOpts *RootOptions, opts *IndexOptions, patterns []string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	reg, err := rootOpts.registry()
	if err != nil {
		return outputLoadError(formatter, err)
	}
	if _, ok := reg.Lookup(opts.Lang); !ok {
		return outputError(formatter, ErrCodeUnknownLang, fmt.Sprintf("unknown language %q", opts.Lang),
			map[string]any{"languages": reg.Codes()})
	}

	paths, err := expandGlobs(patterns)
	if err != nil {
		return outputError(formatter, ErrCodeBadInput, err.Error(), nil)
	}
	if len(paths) == 0 {
		return outputError(formatter, ErrCodeNotFound, "no files match", map[string]any{"globs": patterns})
	}
	formatter.VerboseLog("Indexing %d file(s) with %s", len(paths), opts.Lang)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	contents, err := readFiles(ctx, paths)
	if err != nil {
		return outputError(formatter, ErrCodeReadFailed, err.Error(), nil)
	}

	metrics := prometheus.NewRegistry()
	st := store.New(
		store.WithHorizon(rootOpts.horizon()),
		store.WithLanguages(reg),
		store.WithLogger(rootOpts.logger(formatter.GetErrWriter())),
		store.WithMetrics(metrics),
	)

	contexts := newContextGenerator()
	files := make([]IndexedFile, len(paths))
	for i, path := range paths {
		id := opts.Context
		if id == "" {
			id = contexts.Generate()
		}
		files[i] = IndexedFile{Path: path, Context: id}

		if opts.HTML || isHTML(path) {
			err = st.ArticulateHTML(bytes.NewReader(contents[i]), opts.Lang, id, opts.Chunk)
		} else {
			err = st.ArticulateTexts(string(contents[i]), opts.Lang, id, opts.Chunk)
		}
		if err != nil {
			return outputError(formatter, ErrCodeIndexFailed, err.Error(), map[string]any{"path": path})
		}
	}

	snap := st.Snapshot()
	digest, err := snap.Digest()
	if err != nil {
		return outputError(formatter, ErrCodeOutputFailed, err.Error(), nil)
	}

	counters, err := gatherCounters(metrics)
	if err != nil {
		return outputError(formatter, ErrCodeOutputFailed, err.Error(), nil)
	}
	formatter.VerboseLog("Counters: %v", counters)

	result := IndexResult{
		Files:    files,
		Stats:    st.Stats(),
		Snapshot: snap,
		Digest:   digest,
		Metrics:  counters,
	}
	if len(opts.Query) > 0 {
		query := make([]names.Name, len(opts.Query))
		for i, q := range opts.Query {
			query[i] = names.Name(q)
		}
		result.Hits = st.Search(query...)
		result.queried = true
		formatter.VerboseLog("Query matched %d subject(s)", len(result.Hits))
	}
	return formatter.Success(result)
}

// expandGlobs returns the regular files matching any pattern, sorted and
// without duplicates.
func expandGlobs(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)
	return slices.Compact(paths), nil
}

// readFiles reads paths concurrently. contents[i] holds paths[i].
func readFiles(ctx context.Context, paths []string) ([][]byte, error) {
	contents := make([][]byte, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			contents[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
