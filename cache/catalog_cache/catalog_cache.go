package catalog_cache

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/models"
)

// TTL is the freshness window of every cached fetch.
const TTL = 60 * time.Second

// ── Keys ─────────────────────────────────────────────────────────────────────
// categories and colors have constant keys; product listings are keyed by
// the canonical committed query, so every distinct filter combination
// caches independently and a late response can only ever land under the
// key of the query that started it.

const (
	keyCategories = "categories"
	keyColors     = "colors"
	keyProducts   = "products:"
	keyProduct    = "product:"
)

func productsKey(query url.Values) string {
	return keyProducts + models.CanonicalQuery(query)
}

// entry is one cached fetch. done is closed when the fetch completes;
// until then the entry counts as loading and concurrent callers for the
// same key join it instead of issuing a duplicate request.
type entry struct {
	done      chan struct{}
	fetchedAt time.Time
	val       any
	err       error
}

func (e *entry) completed() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// Store is the query cache / fetch orchestrator in front of the catalog
// client. All mutations happen under one mutex; fetches themselves run
// outside it.
type Store struct {
	client *catalog.Client
	ttl    time.Duration

	mu      sync.Mutex
	entries map[string]*entry
}

func New(client *catalog.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = TTL
	}
	return &Store{client: client, ttl: ttl, entries: map[string]*entry{}}
}

// get returns the fresh cached value for key or runs fetch, guaranteeing
// at most one outstanding request per key. The fetch is detached from the
// caller's cancellation: a caller that goes away does not abort the
// request, it only stops waiting for it (cancellation is advisory).
func (s *Store) get(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		if !e.completed() {
			s.mu.Unlock()
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-e.done:
			}
			return e.val, e.err
		}
		if e.err == nil && time.Since(e.fetchedAt) < s.ttl {
			s.mu.Unlock()
			return e.val, nil
		}
	}
	e := &entry{done: make(chan struct{})}
	s.entries[key] = e
	s.mu.Unlock()

	go func() {
		val, err := fetch(context.WithoutCancel(ctx))
		s.mu.Lock()
		e.val, e.err = val, err
		e.fetchedAt = time.Now()
		s.mu.Unlock()
		close(e.done)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-e.done:
		return e.val, e.err
	}
}

// peek reads an entry without triggering a fetch.
func (s *Store) peek(key string) (e *entry, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok = s.entries[key]
	return e, ok
}

// ── Typed accessors ──────────────────────────────────────────────────────────

func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	val, err := s.get(ctx, keyCategories, func(ctx context.Context) (any, error) {
		items, err := s.client.Categories(ctx)
		return items, err
	})
	items, _ := val.([]models.Category)
	return items, err
}

func (s *Store) Colors(ctx context.Context) ([]models.Color, error) {
	val, err := s.get(ctx, keyColors, func(ctx context.Context) (any, error) {
		items, err := s.client.Colors(ctx)
		return items, err
	})
	items, _ := val.([]models.Color)
	return items, err
}

func (s *Store) Products(ctx context.Context, query url.Values) (models.ProductPage, error) {
	val, err := s.get(ctx, productsKey(query), func(ctx context.Context) (any, error) {
		return s.client.Products(ctx, query)
	})
	page, ok := val.(models.ProductPage)
	if !ok {
		page = models.ProductPage{Items: []models.Product{}, Page: 1, Limit: 10, TotalPages: 1}
	}
	return page, err
}

func (s *Store) Product(ctx context.Context, id string) (models.Product, error) {
	val, err := s.get(ctx, keyProduct+id, func(ctx context.Context) (any, error) {
		return s.client.Product(ctx, id)
	})
	p, _ := val.(models.Product)
	return p, err
}

// ── Combined view state ──────────────────────────────────────────────────────

// View is the non-blocking snapshot of the three fetches driving the
// filter page. IsLoading is true when any of them is still in flight.
type View struct {
	Categories []models.Category
	Colors     []models.Color
	Products   models.ProductPage

	CatState     models.ResourceState
	ColorState   models.ResourceState
	ProductState models.ResourceState
}

func (v View) IsLoading() bool {
	return v.CatState.Loading || v.ColorState.Loading || v.ProductState.Loading
}

// Snapshot reports the current state for query without fetching anything.
// Results for any other query never leak in: only the entry under this
// query's own key is consulted.
func (s *Store) Snapshot(query url.Values) View {
	v := View{Products: models.ProductPage{Items: []models.Product{}, Page: 1, Limit: 10, TotalPages: 1}}

	if e, ok := s.peek(keyCategories); ok {
		if !e.completed() {
			v.CatState.Loading = true
		} else if e.err != nil {
			v.CatState.Err = e.err.Error()
		} else {
			v.Categories, _ = e.val.([]models.Category)
		}
	}
	if e, ok := s.peek(keyColors); ok {
		if !e.completed() {
			v.ColorState.Loading = true
		} else if e.err != nil {
			v.ColorState.Err = e.err.Error()
		} else {
			v.Colors, _ = e.val.([]models.Color)
		}
	}
	if e, ok := s.peek(productsKey(query)); ok {
		if !e.completed() {
			v.ProductState.Loading = true
		} else if e.err != nil {
			v.ProductState.Err = e.err.Error()
		} else if page, ok := e.val.(models.ProductPage); ok {
			v.Products = page
		}
	}
	return v
}

// ── Invalidation ─────────────────────────────────────────────────────────────

// InvalidateProduct drops one product's detail entry, e.g. after a review
// was confirmed so the next view shows it.
func (s *Store) InvalidateProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, keyProduct+id)
}

// Invalidate clears everything.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[string]*entry{}
}
