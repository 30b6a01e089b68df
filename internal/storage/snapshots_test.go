package storage

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liquidity-engine/internal/analyzer"
	"liquidity-engine/internal/database"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()

	db, err := database.New(database.Config{
		Path:    filepath.Join(t.TempDir(), "analysis.db"),
		Profile: database.ProfileCache,
		Name:    "analysis",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewSnapshotStore(db, zerolog.Nop())
	require.NoError(t, err)
	return store
}

func snapshot(symbol string, score float64) analyzer.Result {
	return analyzer.Result{
		Symbol:       symbol,
		CurrentPrice: 100,
		FinalScore:   score,
		Signal:       "HOLD",
		WeightedAvg:  95,
		Margin:       score - 50,
		Components: analyzer.Components{
			FundamentalValue: "$95.000",
			AISentiment:      "ok",
			AIMultiplier:     1.0,
			AILinks:          []string{"https://example.com"},
		},
	}
}

func TestUpsertInsertsAndReplaces(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Upsert(snapshot("BTC-USD", 60)))

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	updated := snapshot("BTC-USD", 72)
	updated.Signal = "BUY"
	require.NoError(t, store.Upsert(updated))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 72.0, list[0].FinalScore)
	assert.Equal(t, "BUY", list[0].Signal)
}

func TestListOrdersByScore(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Upsert(snapshot("ETH-USD", 55)))
	require.NoError(t, store.Upsert(snapshot("BTC-USD", 70)))
	require.NoError(t, store.Upsert(snapshot("SOL-USD", 40)))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "BTC-USD", list[0].Symbol)
	assert.Equal(t, "ETH-USD", list[1].Symbol)
	assert.Equal(t, "SOL-USD", list[2].Symbol)
}

func TestListRoundTripsComponents(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Upsert(snapshot("BTC-USD", 60)))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ok", list[0].Components.AISentiment)
	assert.Equal(t, []string{"https://example.com"}, list[0].Components.AILinks)
}

func TestReplaceAllSwapsContents(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Upsert(snapshot("OLD-USD", 10)))
	require.NoError(t, store.ReplaceAll([]analyzer.Result{
		snapshot("BTC-USD", 70),
		snapshot("ETH-USD", 55),
	}))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "BTC-USD", list[0].Symbol)
	assert.Equal(t, "ETH-USD", list[1].Symbol)
}

func TestEmptyStore(t *testing.T) {
	store := newTestStore(t)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	list, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
