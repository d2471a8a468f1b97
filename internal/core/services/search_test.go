package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	indexmem "github.com/custodia-labs/driveindex/internal/adapters/driven/indexstore/memory"
	"github.com/custodia-labs/driveindex/internal/core/domain"
)

func seedStore(t *testing.T, store *indexmem.IndexStore) {
	t.Helper()
	ctx := context.Background()
	docs := []domain.IndexedDocument{
		{FileID: "f1", FileName: "report.pdf", ExtractedText: "quarterly revenue report", UpdatedTime: time.Now().UTC()},
		{FileID: "f2", FileName: "notes.txt", ExtractedText: "meeting notes about revenue", UpdatedTime: time.Now().UTC()},
		{FileID: "f3", FileName: "todo.txt", ExtractedText: "buy milk", UpdatedTime: time.Now().UTC()},
	}
	for i := range docs {
		require.NoError(t, store.Upsert(ctx, &docs[i]))
	}
}

func TestSearchService_Search(t *testing.T) {
	store := indexmem.NewIndexStore()
	seedStore(t, store)
	svc := NewSearchService(store)

	results, err := svc.Search(context.Background(), "revenue", 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchService_Search_EmptyQuery(t *testing.T) {
	store := indexmem.NewIndexStore()
	seedStore(t, store)
	svc := NewSearchService(store)

	results, err := svc.Search(context.Background(), "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchService_Search_DefaultLimit(t *testing.T) {
	store := indexmem.NewIndexStore()
	ctx := context.Background()
	for i := 0; i < 15; i++ {
		require.NoError(t, store.Upsert(ctx, &domain.IndexedDocument{
			FileID:        string(rune('a' + i)),
			FileName:      "common.txt",
			ExtractedText: "shared term",
		}))
	}
	svc := NewSearchService(store)

	results, err := svc.Search(ctx, "common", 0)
	require.NoError(t, err)
	assert.Len(t, results, DefaultSearchLimit)
}

func TestSearchService_Count(t *testing.T) {
	store := indexmem.NewIndexStore()
	seedStore(t, store)
	svc := NewSearchService(store)

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestSearchService_Healthy(t *testing.T) {
	store := indexmem.NewIndexStore()
	svc := NewSearchService(store)

	assert.True(t, svc.Healthy(context.Background()))

	store.PingErr = errors.New("index gone")
	assert.False(t, svc.Healthy(context.Background()))
}
