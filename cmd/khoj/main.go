package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mahesh-hegde/khoj/app/catalog"
	"github.com/mahesh-hegde/khoj/app/config"
	"github.com/mahesh-hegde/khoj/app/docstore"
	"github.com/mahesh-hegde/khoj/app/keywords"
	"github.com/mahesh-hegde/khoj/app/server"
	"github.com/mahesh-hegde/khoj/app/transliteration"
	"github.com/spf13/pflag"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "keywords":
		runKeywords()
	case "import":
		runImport()
	case "regenerate":
		runRegenerate()
	case "server":
		runServer()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: khoj <command> [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  keywords      Print the search keywords generated for product names")
	fmt.Fprintln(os.Stderr, "  import        Load products from a CSV or XLSX file into the store")
	fmt.Fprintln(os.Stderr, "  regenerate    Recompute search keywords of every stored product")
	fmt.Fprintln(os.Stderr, "  server        Start the khoj server")
}

func loadConfig(dataDir string) *config.KhojConfig {
	if dataDir == "" {
		slog.Error("--data-dir not provided, stopping")
		os.Exit(1)
	}
	conf, err := config.LoadConfig(dataDir)
	if err != nil {
		slog.Error("error while loading config", "err", err)
		os.Exit(1)
	}
	return conf
}

func newGenerator(maxKeywords int) *keywords.Generator {
	return keywords.NewGenerator(transliteration.NewTransliterator(), keywords.WithMaxKeywords(maxKeywords))
}

// openService opens the configured store. The returned handle must be
// closed by the caller.
func openService(conf *config.KhojConfig) (*catalog.ProductService, *docstore.Handle) {
	h, err := docstore.InitStore(conf)
	if err != nil {
		slog.Error("error while initializing store", "err", err)
		os.Exit(1)
	}
	return catalog.NewProductService(h.Store, newGenerator(conf.MaxKeywords), conf.SearchCacheTTL()), h
}

func importFile(ctx context.Context, ps *catalog.ProductService, file, format string) error {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(file)), ".")
	}
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := ps.Import(ctx, f, catalog.ImportFormat(format))
	if err != nil {
		return err
	}
	slog.Info("import finished", "file", file, "imported", result.Imported, "skipped_rows", result.Skipped)
	return nil
}

func runKeywords() {
	flags := pflag.NewFlagSet("keywords", pflag.ExitOnError)
	var maxKeywords int
	flags.IntVarP(&maxKeywords, "max", "m", keywords.MaxKeywords, "Maximum number of keywords per name")

	flags.Parse(os.Args[2:])

	if flags.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one product name is required")
		os.Exit(1)
	}

	gen := newGenerator(maxKeywords)
	for _, name := range flags.Args() {
		fmt.Println(name)
		for _, kw := range gen.Generate(name) {
			fmt.Printf("\t%s\n", kw)
		}
	}
}

func runImport() {
	flags := pflag.NewFlagSet("import", pflag.ExitOnError)
	var dataDir, file, format string
	flags.StringVarP(&dataDir, "data-dir", "d", "", "data directory with config.json and the product store")
	flags.StringVarP(&file, "file", "f", "", "CSV or XLSX file to import (required)")
	flags.StringVar(&format, "format", "", "file format, csv or xlsx (default: from file extension)")

	flags.Parse(os.Args[2:])

	if file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		os.Exit(1)
	}
	conf := loadConfig(dataDir)
	ps, h := openService(conf)
	defer h.Close()

	if err := importFile(context.Background(), ps, file, format); err != nil {
		slog.Error("error when importing products", "file", file, "err", err)
		h.Close()
		os.Exit(1)
	}
}

func runRegenerate() {
	flags := pflag.NewFlagSet("regenerate", pflag.ExitOnError)
	var dataDir string
	flags.StringVarP(&dataDir, "data-dir", "d", "", "data directory with config.json and the product store")

	flags.Parse(os.Args[2:])

	conf := loadConfig(dataDir)
	ps, h := openService(conf)
	defer h.Close()

	n, err := ps.RegenerateKeywords(context.Background())
	if err != nil {
		slog.Error("error when regenerating keywords", "err", err)
		h.Close()
		os.Exit(1)
	}
	slog.Info("regenerated search keywords", "products", n)
}

func runServer() {
	flags := pflag.NewFlagSet("server", pflag.ExitOnError)
	var serverConf config.ServerRuntimeConfig
	var dataDir string
	flags.StringVarP(&serverConf.Addr, "address", "a", "localhost", "Server address to bind")
	flags.IntVarP(&serverConf.Port, "port", "p", 8080, "Server port to bind")
	flags.StringVarP(&dataDir, "data-dir", "d", "", "data directory to read config.json and store products")
	flags.StringVar(&serverConf.CertDir, "cert-dir", "", "directory with fullchain.pem and privkey.pem, or the ACME cache")
	flags.BoolVar(&serverConf.AcmeEnabled, "acme", false, "obtain certificates with ACME for the configured hostnames")
	flags.BoolVar(&serverConf.BehindLoadBalancer, "behind-lb", false, "rate limit by X-Forwarded-For / X-Real-IP")
	flags.IntVar(&serverConf.RateLimit, "rate-limit", 0, "requests per second per client, 0 disables")
	flags.IntVar(&serverConf.GzipLevel, "gzip-level", 0, "gzip compression level, 0 disables")

	flags.Parse(os.Args[2:])

	conf := loadConfig(dataDir)
	if serverConf.AcmeEnabled && len(conf.Hostnames) == 0 {
		slog.Error("--acme needs hostnames in config.json, stopping")
		os.Exit(1)
	}

	ps, h := openService(conf)
	defer h.Close()

	if seed := conf.SeedPath(); seed != "" && h.Created {
		slog.Info("loading seed products into new store", "file", seed)
		if err := importFile(context.Background(), ps, seed, ""); err != nil {
			slog.Error("error when loading seed products", "err", err)
			h.Close()
			os.Exit(1)
		}
	}

	server.StartServer(server.NewKhojController(ps), conf, serverConf)
}
