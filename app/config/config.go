package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mahesh-hegde/khoj/app/keywords"
)

const (
	StoreSQLite = "sqlite"
	StoreBleve  = "bleve"
	StoreMemory = "memory"
)

type KhojConfig struct {
	InstanceName string `json:"instance_name"`
	DataDir      string `json:"-"`
	// One of sqlite, bleve or memory. Defaults to sqlite.
	Store string `json:"store"`
	// Upper bound on search keywords per product. Zero means the engine
	// default; values above it are rejected.
	MaxKeywords        int `json:"max_keywords"`
	SearchCacheSeconds int `json:"search_cache_seconds"`
	// CSV or XLSX file, relative to the data directory, loaded when the
	// store is created for the first time.
	SeedFile       string   `json:"seed_file"`
	Hostnames      []string `json:"hostnames"`
	TimeoutSeconds int      `json:"timeout_seconds"`
	LogLatency     bool     `json:"log_latency"`
}

// ServerRuntimeConfig holds options that come from command line flags
// rather than config.json.
type ServerRuntimeConfig struct {
	Addr               string
	Port               int
	CertDir            string
	AcmeEnabled        bool
	BehindLoadBalancer bool
	RateLimit          int
	GzipLevel          int
}

func (c *KhojConfig) SearchCacheTTL() time.Duration {
	return time.Duration(c.SearchCacheSeconds) * time.Second
}

// SeedPath returns the absolute seed file path, or "" when none is set.
func (c *KhojConfig) SeedPath() string {
	if c.SeedFile == "" || filepath.IsAbs(c.SeedFile) {
		return c.SeedFile
	}
	return filepath.Join(c.DataDir, c.SeedFile)
}

func (c *KhojConfig) setDefaults() {
	if c.InstanceName == "" {
		c.InstanceName = "khoj"
	}
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	if c.Store == "" {
		c.Store = StoreSQLite
	}
	if c.MaxKeywords == 0 {
		c.MaxKeywords = keywords.MaxKeywords
	}
}

func (c *KhojConfig) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreBleve, StoreMemory:
	default:
		return fmt.Errorf("unknown store: %q", c.Store)
	}
	if c.MaxKeywords < 1 || c.MaxKeywords > keywords.MaxKeywords {
		return fmt.Errorf("max_keywords must be between 1 and %d, got %d", keywords.MaxKeywords, c.MaxKeywords)
	}
	if c.SearchCacheSeconds < 0 {
		return fmt.Errorf("search_cache_seconds must not be negative")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative")
	}
	return nil
}

// LoadConfig reads config.json from dataDir. A missing file yields the
// defaults.
func LoadConfig(dataDir string) (*KhojConfig, error) {
	conf := &KhojConfig{}
	confFile, err := os.Open(filepath.Join(dataDir, "config.json"))
	switch {
	case err == nil:
		defer confFile.Close()
		dec := json.NewDecoder(confFile)
		dec.DisallowUnknownFields()
		if err := dec.Decode(conf); err != nil {
			return nil, fmt.Errorf("error while reading config.json: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("error while opening config.json: %w", err)
	}

	conf.DataDir = dataDir
	conf.setDefaults()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}
