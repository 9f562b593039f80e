// Package main is the matome CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/matome/internal/cli"
	"github.com/hyperjump/matome/internal/config"
	"github.com/hyperjump/matome/internal/docid"
	"github.com/hyperjump/matome/internal/extract"
	"github.com/hyperjump/matome/internal/ingest"
	"github.com/hyperjump/matome/internal/keyword"
	"github.com/hyperjump/matome/internal/matrix"
	"github.com/hyperjump/matome/internal/models"
	"github.com/hyperjump/matome/internal/pipeline"
	"github.com/hyperjump/matome/internal/search"
	"github.com/hyperjump/matome/internal/server"
	"github.com/hyperjump/matome/internal/storage"
	"github.com/hyperjump/matome/internal/watcher"
	"github.com/hyperjump/matome/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/matome/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used, so that "matome serve" from the project dir uses the project's
// config (including debug). Returns the config and the path actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "serve":
		runServe()
	case "ingest":
		runIngest()
	case "cluster":
		runCluster()
	case "find":
		runFind()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("matome version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (directory changes, file ingestion, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger, debugMode)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	ing := components.Ingester
	exts := cfg.Corpus.Extensions
	watchOpts := []watcher.WatcherOption{}
	if debugMode {
		watchOpts = append(watchOpts, watcher.WithLogger(logger))
	}
	watchSvc := watcher.NewWatcher(
		cfg.Corpus.Directories,
		exts,
		cfg.Corpus.RecursiveOrDefault(),
		func(path string) {
			if err := ing.IngestFile(context.Background(), path, exts); err != nil {
				logger.Warn("watch ingest file failed", zap.String("path", path), zap.Error(err))
			}
		},
		func(path string) {
			if err := ing.DeleteDocument(context.Background(), docid.ForPath(path)); err != nil {
				logger.Warn("watch delete by path failed", zap.String("path", path), zap.Error(err))
			}
		},
		watchOpts...,
	)
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if err := watchSvc.Start(watchCtx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	watchSvc.SyncExistingFiles()

	srv := server.NewServer(
		components.Pipeline,
		components.Finder,
		components.Ingester,
		components.Storage,
		cfg,
		logger,
	)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runIngest() {
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: matome ingest [flags] <file-or-directory>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger, debugMode)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer components.Close()

	ctx := context.Background()
	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("Failed to stat path: %v\n", err)
		os.Exit(1)
	}
	if info.IsDir() {
		n, err := components.Ingester.IngestDirectory(ctx, path, cfg.Corpus.Extensions, cfg.Corpus.RecursiveOrDefault())
		if err != nil {
			fmt.Printf("Ingesting directory failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Ingested %d file(s) from %s\n", n, path)
		return
	}
	// Single file: no extension filter
	if err := components.Ingester.IngestFile(ctx, path, nil); err != nil {
		fmt.Printf("Ingestion failed: %v\n", err)
		os.Exit(1)
	}
	absPath, _ := filepath.Abs(path)
	fmt.Printf("Document ingested successfully: %s\n", docid.ForPath(absPath))
}

func runCluster() {
	fs := flag.NewFlagSet("cluster", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	eps := fs.Float64("eps", 0, "neighborhood radius in cosine distance (0 = config default)")
	minPoints := fs.Int("min-points", 0, "minimum neighborhood size for a core point (0 = config default)")
	representatives := fs.Int("representatives", 0, "coarse partition size (0 = config default)")
	matrixPath := fs.String("matrix", "", "cluster a sparse matrix file instead of the ingested corpus")
	indexBase := fs.Int("index-base", 0, "feature index base in the matrix file: 0 or 1")
	out := fs.String("out", "", "write per-record labels to this file, one per line")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	format, err := cli.ParseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	params := models.RunParams{
		Epsilon:         *eps,
		MinPoints:       *minPoints,
		Representatives: *representatives,
	}
	if params.Epsilon == 0 {
		params.Epsilon = cfg.Cluster.Epsilon
	}
	if params.MinPoints == 0 {
		params.MinPoints = cfg.Cluster.MinPoints
	}
	if params.Representatives == 0 {
		params.Representatives = cfg.Coarse.Representatives
	}

	if *matrixPath != "" {
		runClusterMatrix(cfg, logger, *matrixPath, *indexBase, params, *out, format)
		return
	}
	runClusterCorpus(cfg, logger, debugMode, params, *out, format)
}

// runClusterMatrix clusters pre-vectorized records from a sparse matrix
// file. Nothing is persisted; labels go to --out or stdout.
func runClusterMatrix(cfg *config.Config, logger *zap.Logger, path string, indexBase int, params models.RunParams, out string, format cli.OutputFormat) {
	var base matrix.IndexBase
	switch indexBase {
	case 0:
		base = matrix.ZeroBased
	case 1:
		base = matrix.OneBased
	default:
		fmt.Fprintf(os.Stderr, "Invalid index base %d; use 0 or 1\n", indexBase)
		os.Exit(1)
	}

	p := pipeline.NewPipeline(nil, cfg, pipeline.WithLogger(logger))
	res, err := p.RunMatrix(path, base, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Clustering failed: %v\n", err)
		os.Exit(1)
	}

	if out != "" {
		if err := writeLabelsFile(out, res.Labels); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write labels: %v\n", err)
			os.Exit(1)
		}
	}
	switch format {
	case cli.OutputJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	default:
		if out == "" {
			if err := cli.WriteLabels(os.Stdout, res.Labels); err != nil {
				fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Printf("Labels written to %s\n", out)
		}
		cli.WriteStats(os.Stdout, res.Stats)
	}
}

// runClusterCorpus runs a clustering run over the ingested corpus and
// persists it.
func runClusterCorpus(cfg *config.Config, logger *zap.Logger, debugMode bool, params models.RunParams, out string, format cli.OutputFormat) {
	components, err := initializeComponents(cfg, logger, debugMode)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer components.Close()

	res, err := components.Pipeline.RunCorpus(context.Background(), params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Clustering failed: %v\n", err)
		os.Exit(1)
	}

	labelsOut := out
	if labelsOut == "" {
		labelsOut = cfg.Storage.LabelsPath
	}
	if labelsOut != "" {
		if err := writeLabelsFile(labelsOut, res.Labels); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write labels: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cli.WriteRunReport(os.Stdout, res.Run, res.Summaries, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
	if format == cli.OutputText && labelsOut != "" {
		fmt.Printf("\nLabels written to %s\n", labelsOut)
	}
}

func writeLabelsFile(path string, labels []int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cli.WriteLabels(f, labels); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// printFindUsage prints find subcommand usage.
func printFindUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: matome find [flags] <query>\n\n")
	fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces. Multi-word queries work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Each result carries the document's cluster label from the latest run;
-1 means the document was unassigned (noise) in that run.

Examples:
  matome find quarterly invoice
  matome find "quarterly invoice"              # same as above
  matome find --limit 20 --output json report
`)
}

// buildFindQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting.
func buildFindQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// findArgsReorder moves any flags (and their values) that appear after the
// query to the front of the slice so that flag.Parse() sees them. Go's flag
// package stops at the first non-flag argument, so "matome find \"query\"
// -limit 5" would otherwise leave -limit unparsed.
func findArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func runFind() {
	findArgs := findArgsReorder(os.Args[2:])

	fs := flag.NewFlagSet("find", flag.ExitOnError)
	configPathFlag := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8091", "server URL (empty = use direct storage when server is not running)")
	limit := fs.Int("limit", search.DefaultLimit, "number of results")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	fs.Usage = func() { printFindUsage(fs) }
	_ = fs.Parse(findArgs)

	if fs.NArg() < 1 {
		printFindUsage(fs)
		os.Exit(1)
	}
	queryStr := buildFindQuery(fs.Args())
	if queryStr == "" {
		printFindUsage(fs)
		os.Exit(1)
	}

	format, err := cli.ParseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *serverURL != "" {
		// Use HTTP API when server is running (avoids Bleve/SQLite lock conflict).
		response, err := findViaHTTP(*serverURL, queryStr, *limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Find failed: %v\n", err)
			os.Exit(1)
		}
		if err := cli.WriteFindResults(os.Stdout, response, format); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Direct storage access (when server is not running).
	cfg, _, err := loadConfig(*configPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger, debugMode)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer components.Close()

	response, err := components.Finder.Find(context.Background(), queryStr, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Find failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteFindResults(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func findViaHTTP(serverURL, query string, limit int) (*models.FindResponse, error) {
	u := serverURL + "/api/v1/search?q=" + url.QueryEscape(query)
	if limit > 0 {
		u += "&limit=" + strconv.Itoa(limit)
	}
	resp, err := http.Get(u)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var response models.FindResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

// statusConfigResponse holds configuration info returned by status.
type statusConfigResponse struct {
	DatabasePath     string  `json:"database_path,omitempty"`
	KeywordIndexPath string  `json:"keyword_index_path,omitempty"`
	Epsilon          float64 `json:"epsilon,omitempty"`
	MinPoints        int     `json:"min_points,omitempty"`
	Representatives  int     `json:"representatives,omitempty"`
}

// statusResponse is the shape of GET /api/v1/status response.
type statusResponse struct {
	Documents      int64                 `json:"documents"`
	Runs           int64                 `json:"runs"`
	LatestRun      *models.Run           `json:"latest_run,omitempty"`
	DiskUsageBytes *int64                `json:"disk_usage_bytes,omitempty"`
	Config         *statusConfigResponse `json:"config,omitempty"`
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8091", "server URL (empty = use direct storage)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var status statusResponse
	if *serverURL != "" {
		res, err := statusViaHTTP(*serverURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}
		status = *res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		debugMode := cfg.Debug
		logger, err := utils.NewLogger(debugMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		components, err := initializeComponents(cfg, logger, debugMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		defer components.Close()
		ctx := context.Background()
		docCount, err := components.Storage.CountDocuments(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Count documents failed: %v\n", err)
			os.Exit(1)
		}
		runCount, err := components.Storage.CountRuns(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Count runs failed: %v\n", err)
			os.Exit(1)
		}
		status = statusResponse{
			Documents: docCount,
			Runs:      runCount,
			Config: &statusConfigResponse{
				DatabasePath:     cfg.Storage.DatabasePath,
				KeywordIndexPath: cfg.Storage.KeywordIndexPath,
				Epsilon:          cfg.Cluster.Epsilon,
				MinPoints:        cfg.Cluster.MinPoints,
				Representatives:  cfg.Coarse.Representatives,
			},
		}
		if run, err := components.Storage.LatestRun(ctx); err == nil {
			status.LatestRun = run
		}
		diskBytes, err := storage.DiskUsageBytes(cfg.Storage.DatabasePath, cfg.Storage.KeywordIndexPath)
		if err == nil {
			status.DiskUsageBytes = &diskBytes
		}
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		fmt.Printf("documents:        %d   # count of ingested documents\n", status.Documents)
		fmt.Printf("runs:             %d   # count of clustering runs\n", status.Runs)
		if status.DiskUsageBytes != nil {
			fmt.Printf("disk_usage_bytes: %d   # storage + keyword index on disk\n", *status.DiskUsageBytes)
		}
		if status.LatestRun != nil {
			fmt.Println()
			fmt.Printf("# latest run %s (%s)\n", status.LatestRun.ID, status.LatestRun.CreatedAt.Format(time.RFC3339))
			cli.WriteStats(os.Stdout, status.LatestRun.Stats)
		}
		if status.Config != nil {
			fmt.Println()
			fmt.Println("# configuration")
			fmt.Printf("epsilon:          %g\n", status.Config.Epsilon)
			fmt.Printf("min_points:       %d\n", status.Config.MinPoints)
			fmt.Printf("representatives:  %d\n", status.Config.Representatives)
			if status.Config.DatabasePath != "" {
				fmt.Printf("database_path:    %s\n", status.Config.DatabasePath)
			}
			if status.Config.KeywordIndexPath != "" {
				fmt.Printf("keyword_index:    %s\n", status.Config.KeywordIndexPath)
			}
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func statusViaHTTP(serverURL string) (*statusResponse, error) {
	resp, err := http.Get(serverURL + "/api/v1/status")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var s statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &s, nil
}

// Components holds initialized services.
type Components struct {
	Storage      storage.Storage
	KeywordIndex keyword.KeywordIndex
	Ingester     *ingest.Ingester
	Pipeline     *pipeline.Pipeline
	Finder       *search.Finder
}

func (c *Components) Close() {
	if c.Storage != nil {
		_ = c.Storage.Close()
	}
	if c.KeywordIndex != nil {
		_ = c.KeywordIndex.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger, debug bool) (*Components, error) {
	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	keywordIndex, err := keyword.NewBleveIndex(cfg.Storage.KeywordIndexPath)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize keyword index: %w", err)
	}

	ingOpts := []ingest.IngesterOption{}
	if debug && logger != nil {
		ingOpts = append(ingOpts, ingest.WithLogger(logger))
	}
	ing := ingest.NewIngester(store, keywordIndex, extract.NewExtractor(), ingOpts...)

	p := pipeline.NewPipeline(store, cfg, pipeline.WithLogger(logger))

	finderOpts := []search.FinderOption{}
	if debug && logger != nil {
		finderOpts = append(finderOpts, search.WithLogger(logger))
	}
	finder := search.NewFinder(store, keywordIndex, finderOpts...)

	return &Components{
		Storage:      store,
		KeywordIndex: keywordIndex,
		Ingester:     ing,
		Pipeline:     p,
		Finder:       finder,
	}, nil
}

func printUsage() {
	fmt.Println(`matome - Density clustering for local document collections

Usage:
  matome serve [flags]             Start the HTTP server
  matome ingest [flags] <path>     Ingest a document file or directory
  matome cluster [flags]           Run density clustering over the corpus or a matrix file
  matome find [flags] <query>      Search documents, annotated with cluster labels
  matome status [flags]            Show corpus/run status
  matome version                   Show version
  matome help                      Show this help

Serve Flags:
  --config string    Config file path (default: /usr/local/etc/matome/config.yaml)
  --debug            Enable debug logging (directory changes, file ingestion, etc.)

Ingest Flags:
  --config string    Config file path

Cluster Flags:
  --config string           Config file path
  --eps float               Neighborhood radius in cosine distance (default from config)
  --min-points int          Minimum neighborhood size for a core point (default from config)
  --representatives int     Coarse partition size (default from config)
  --matrix string           Cluster a sparse matrix file instead of the ingested corpus
  --index-base int          Feature index base in the matrix file: 0 or 1 (default: 0)
  --out string              Write per-record labels to this file, one per line
  --output string           Output format: text or json (default: text)

Find Flags:
  --config string    Config file path (for direct storage mode)
  --server string    Server URL (default: http://localhost:8091). Use empty (--server "") to use direct storage when server is not running.
  --limit int        Number of results (default: 10)
  --output string    Output format: text or json (default: text)

Status Flags:
  --config string    Config file path (for direct storage mode)
  --server string    Server URL (default: http://localhost:8091). Use empty (--server "") for direct storage.
  --output string    Output format: text or json (default: text)

Examples:
  matome serve
  matome ingest ~/Documents/reports
  matome cluster
  matome cluster --eps 0.3 --min-points 4
  matome cluster --matrix vectors.txt --index-base 1 --out labels.txt
  matome find "quarterly invoice"
  matome find --output json report
  matome status
  matome status --output json`)
}
