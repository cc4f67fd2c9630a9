// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package catalog

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/librarium/internal/metrics"
	"github.com/tomtom215/librarium/internal/store"
)

// sequentialIDs hands out a fixed list of ids in order.
type sequentialIDs struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (s *sequentialIDs) NewID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}

func TestAuthorService_CreateThenFind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAuthorService(nil)

	cmd := CreateAuthorCommand{FirstName: "Ursula", LastName: "Le Guin", Address: "Portland", Language: "en"}
	created, err := svc.Create(ctx, cmd)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Ursula", created.FirstName)
	assert.Equal(t, "Le Guin", created.LastName)
	assert.Equal(t, "Portland", created.Address)
	assert.Equal(t, "en", created.Language)

	found, ok := svc.FindByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, created, found)
}

func TestAuthorService_IDsAreUnique(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAuthorService(nil)

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 50; i++ {
		a, err := svc.Create(ctx, CreateAuthorCommand{FirstName: "same"})
		require.NoError(t, err)
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
	assert.Len(t, svc.List(ctx), 50)
}

func TestService_FindUnknownIsAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewBookService(nil)

	_, err := svc.Create(ctx, CreateBookCommand{Title: "Dune"})
	require.NoError(t, err)

	_, ok := svc.FindByID(ctx, uuid.New())
	assert.False(t, ok)
}

func TestService_ListOnEmptyStore(t *testing.T) {
	t.Parallel()

	list := NewAuthorService(nil).List(context.Background())
	assert.Empty(t, list)
}

func TestService_InjectedIDGenerator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fixed := uuid.MustParse("11111111-1111-4111-8111-111111111111")
	svc := NewBookService(&sequentialIDs{ids: []uuid.UUID{fixed}})

	b, err := svc.Create(ctx, CreateBookCommand{Title: "Solaris", Pages: 204})
	require.NoError(t, err)
	assert.Equal(t, fixed, b.ID)
}

func TestBookService_AuthorIDStoredVerbatim(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewBookService(nil)

	// the author does not exist anywhere; books never check it
	authorID := uuid.New()
	b, err := svc.Create(ctx, CreateBookCommand{AuthorID: authorID.String(), Title: "Orphan", Pages: 0})
	require.NoError(t, err)

	stored, ok := svc.FindByID(ctx, b.ID)
	require.True(t, ok)
	assert.True(t, stored.AuthorID.Valid)
	assert.Equal(t, authorID, stored.AuthorID.UUID)
	assert.Equal(t, 0, stored.Pages)

	noAuthor, err := svc.Create(ctx, CreateBookCommand{Title: "Anonymous"})
	require.NoError(t, err)
	assert.False(t, noAuthor.AuthorID.Valid)
}

func TestBookService_AuthorIDIsCanonicalized(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewBookService(nil)

	authorID := uuid.New()
	b, err := svc.Create(ctx, CreateBookCommand{AuthorID: strings.ToUpper(authorID.String()), Title: "Shouting"})
	require.NoError(t, err)

	assert.Equal(t, authorID, b.AuthorID.UUID, "same UUID value")
	payload, err := json.Marshal(ToBookResponse(b))
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"authorId":"`+authorID.String()+`"`, "projection uses the lower-case form")
}

func TestBookService_MalformedAuthorIDIsRejected(t *testing.T) {
	t.Parallel()
	svc := NewBookService(nil)

	_, err := svc.Create(context.Background(), CreateBookCommand{AuthorID: "not-a-uuid"})
	assert.Error(t, err)
	assert.Empty(t, svc.List(context.Background()), "nothing is stored on failure")
}

func TestService_ConcurrentCreates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAuthorService(nil)

	const n = 100
	ids := make(chan uuid.UUID, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := svc.Create(ctx, CreateAuthorCommand{FirstName: "x"})
			if err == nil {
				ids <- a.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	distinct := make(map[uuid.UUID]bool)
	for id := range ids {
		distinct[id] = true
		_, ok := svc.FindByID(ctx, id)
		assert.True(t, ok, "created id %s must be findable", id)
	}
	assert.Len(t, distinct, n)
	assert.Len(t, svc.List(ctx), n)
}

func TestService_StoreGaugeMatchesConcurrentCreates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	const resource = "svc_store_gauge"
	svc := NewService[Author, CreateAuthorCommand](resource, store.New[Author](), nil, buildAuthor)

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, CreateAuthorCommand{FirstName: "x"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, float64(n), testutil.ToFloat64(metrics.StoreEntities.WithLabelValues(resource)))
}

func TestService_ReplacedIDDoesNotGrowGauge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	const resource = "svc_store_replace"
	fixed := uuid.New()
	svc := NewService[Author, CreateAuthorCommand](resource, store.New[Author](),
		&sequentialIDs{ids: []uuid.UUID{fixed, fixed}}, buildAuthor)

	_, err := svc.Create(ctx, CreateAuthorCommand{FirstName: "first"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateAuthorCommand{FirstName: "second"})
	require.NoError(t, err)

	assert.Len(t, svc.List(ctx), 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.StoreEntities.WithLabelValues(resource)))
}
