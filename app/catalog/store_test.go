package catalog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/blevesearch/bleve/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storedAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func storedProduct(id, name, category string) Product {
	p := indexed(id, name, category, "Some *description*")
	p.DescriptionText = "Some description"
	p.CreatedAt = storedAt
	p.UpdatedAt = storedAt
	return p
}

func productIDs(ps []Product) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

// testProductStore runs the behaviour every ProductStore must share.
func testProductStore(t *testing.T, store ProductStore) {
	ctx := context.Background()
	require.NoError(t, store.Init())

	tomato := storedProduct("p1", "Tomato Seeds", "Seeds")
	urea := storedProduct("p2", "युरिया खत", "Fertilizer")
	chilli := storedProduct("p3", "chilli seeds", "seeds")
	require.NoError(t, store.Add(ctx, []Product{tomato, urea, chilli}))

	t.Run("Get", func(t *testing.T) {
		got, err := store.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, tomato, got)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("ListSortedByName", func(t *testing.T) {
		all, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"p3", "p1", "p2"}, productIDs(all))
	})

	t.Run("ListByCategoryIgnoresCase", func(t *testing.T) {
		seeds, err := store.List(ctx, "SEEDS")
		require.NoError(t, err)
		assert.Equal(t, []string{"p3", "p1"}, productIDs(seeds))

		none, err := store.List(ctx, "tools")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("AddReplaces", func(t *testing.T) {
		renamed := tomato
		renamed.Name = "Cherry Tomato Seeds"
		renamed.SearchKeywords = testGenerator.Generate(renamed.Name)
		require.NoError(t, store.Add(ctx, []Product{renamed}))

		got, err := store.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Cherry Tomato Seeds", got.Name)
		assert.Equal(t, renamed.SearchKeywords, got.SearchKeywords)

		all, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "p2"))
		_, err := store.Get(ctx, "p2")
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.ErrorIs(t, store.Delete(ctx, "p2"), ErrProductNotFound)
	})
}

func TestMemoryProductStore(t *testing.T) {
	testProductStore(t, NewMemoryProductStore())
}

func TestMemoryProductStore_CopiesKeywords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryProductStore()
	p := storedProduct("p1", "Tomato Seeds", "")
	require.NoError(t, store.Add(ctx, []Product{p}))

	p.SearchKeywords[0] = "changed"
	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Tomato Seeds", got.SearchKeywords[0])
}

func TestSQLiteProductStore(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "khoj.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	testProductStore(t, NewSQLiteProductStore(db))
}

func TestBleveProductStore(t *testing.T) {
	m, err := BleveIndexMapping()
	require.NoError(t, err)
	idx, err := bleve.NewMemOnly(m)
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })

	testProductStore(t, NewBleveProductStore(idx))
}

func TestBleveProductStore_EmptyIndex(t *testing.T) {
	m, err := BleveIndexMapping()
	require.NoError(t, err)
	idx, err := bleve.NewMemOnly(m)
	require.NoError(t, err)
	defer idx.Close()

	store := NewBleveProductStore(idx)
	all, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBleveIndexMapping_TextFieldsSearchable(t *testing.T) {
	m, err := BleveIndexMapping()
	require.NoError(t, err)
	idx, err := bleve.NewMemOnly(m)
	require.NoError(t, err)
	defer idx.Close()

	store := NewBleveProductStore(idx)
	require.NoError(t, store.Add(context.Background(), []Product{
		storedProduct("p1", "तिखट मिरची", "Spices"),
		storedProduct("p2", "Tomato Seeds", "Seeds"),
	}))

	match := func(field, text string) []string {
		q := bleve.NewMatchQuery(text)
		q.SetField(field)
		res, err := idx.Search(bleve.NewSearchRequest(q))
		require.NoError(t, err)
		ids := make([]string, 0, len(res.Hits))
		for _, hit := range res.Hits {
			ids = append(ids, hit.ID)
		}
		return ids
	}

	assert.Equal(t, []string{"p1"}, match("keywords", "MIRCHI"))
	assert.Equal(t, []string{"p1"}, match("name", "मिरची"))
	assert.Equal(t, []string{"p2"}, match("keywords", "तओमअतओ"))
	assert.ElementsMatch(t, []string{"p1", "p2"}, match("description", "description"))
}
