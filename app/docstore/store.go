// Package docstore opens the product store selected in config.json.
package docstore

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/blevesearch/bleve/v2"
	"github.com/mahesh-hegde/khoj/app/catalog"
	"github.com/mahesh-hegde/khoj/app/config"
)

const bleveDirName = "products.bleve"

// Handle is an initialized product store. Created reports whether the
// underlying database did not exist before it was opened.
type Handle struct {
	Store   catalog.ProductStore
	Created bool
	closer  io.Closer
}

func (h *Handle) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer.Close()
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// InitStore opens or creates the store named by conf.Store under
// conf.DataDir and runs its Init.
func InitStore(conf *config.KhojConfig) (*Handle, error) {
	var h *Handle
	var err error
	switch conf.Store {
	case config.StoreSQLite:
		h, err = openSQLite(conf.DataDir)
	case config.StoreBleve:
		h, err = openBleve(conf.DataDir)
	case config.StoreMemory:
		h = &Handle{Store: catalog.NewMemoryProductStore(), Created: true}
	default:
		return nil, fmt.Errorf("unknown store: %s", conf.Store)
	}
	if err != nil {
		return nil, err
	}

	if err := h.Store.Init(); err != nil {
		h.Close()
		return nil, fmt.Errorf("failed to init %s store: %w", conf.Store, err)
	}
	return h, nil
}

func openSQLite(dataDir string) (*Handle, error) {
	found, err := exists(filepath.Join(dataDir, sqliteFileName))
	if err != nil {
		return nil, fmt.Errorf("error checking sqlite db: %w", err)
	}
	db, err := NewSQLiteDB(dataDir, false)
	if err != nil {
		return nil, fmt.Errorf("error creating sqlite db: %w", err)
	}
	return &Handle{Store: catalog.NewSQLiteProductStore(db), Created: !found, closer: db}, nil
}

func openBleve(dataDir string) (*Handle, error) {
	dbPath := filepath.Join(dataDir, bleveDirName)
	found, err := exists(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open bleve index: %w", err)
	}

	var index bleve.Index
	if found {
		index, err = bleve.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open bleve index: %w", err)
		}
		slog.Info("opened existing bleve index", "path", dbPath)
	} else {
		slog.Info("creating new bleve index", "path", dbPath)
		m, err := catalog.BleveIndexMapping()
		if err != nil {
			return nil, err
		}
		index, err = bleve.New(dbPath, m)
		if err != nil {
			return nil, fmt.Errorf("failed to create new bleve index: %w", err)
		}
	}
	return &Handle{Store: catalog.NewBleveProductStore(index), Created: !found, closer: index}, nil
}
