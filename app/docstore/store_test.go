package docstore

import (
	"context"
	"testing"

	"github.com/mahesh-hegde/khoj/app/catalog"
	"github.com/mahesh-hegde/khoj/app/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitStore_Reopen(t *testing.T) {
	for _, store := range []string{config.StoreSQLite, config.StoreBleve} {
		t.Run(store, func(t *testing.T) {
			ctx := context.Background()
			conf := &config.KhojConfig{Store: store, DataDir: t.TempDir()}

			h, err := InitStore(conf)
			require.NoError(t, err)
			assert.True(t, h.Created)
			require.NoError(t, h.Store.Add(ctx, []catalog.Product{{ID: "p1", Name: "Tomato Seeds"}}))
			require.NoError(t, h.Close())

			h, err = InitStore(conf)
			require.NoError(t, err)
			defer h.Close()
			assert.False(t, h.Created)

			p, err := h.Store.Get(ctx, "p1")
			require.NoError(t, err)
			assert.Equal(t, "Tomato Seeds", p.Name)
		})
	}
}

func TestInitStore_Memory(t *testing.T) {
	h, err := InitStore(&config.KhojConfig{Store: config.StoreMemory})
	require.NoError(t, err)
	assert.True(t, h.Created)
	assert.NoError(t, h.Close())
}

func TestInitStore_Unknown(t *testing.T) {
	_, err := InitStore(&config.KhojConfig{Store: "postgres", DataDir: t.TempDir()})
	assert.ErrorContains(t, err, "unknown store")
}
