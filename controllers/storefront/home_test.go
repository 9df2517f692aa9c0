package storefront

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/cache/catalog_cache"
	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHomeRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			w.Write([]byte(`{"data":[{"id":"p1","name":"Acme Phone","price":199}],"total":1,"page":1,"totalPages":1}`))
		case "/category":
			w.Write([]byte(`{"data":[{"id":"c1","name":"Phones"}]}`))
		case "/color":
			w.Write([]byte(`{"data":[{"id":"k1","name":"Red"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(backend.Close)

	client := catalog.New(catalog.Config{BaseURL: backend.URL, HTTPClient: backend.Client(), Retries: -1})
	h := New(client, catalog_cache.New(client, time.Minute), store.NewSessions(t.TempDir()+"/user-storage.json"), store.NewPrefs())

	router := gin.New()
	router.LoadHTMLGlob("../../templates/*.html")
	router.GET("/", h.Home)
	return router
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHomeRedirectsNonCanonicalQueries(t *testing.T) {
	router := testHomeRouter(t)

	// A form submit arrives with fields in form order; the page's own URL
	// is the canonical serialization.
	w := get(router, "/?sortBy=price&minPrice=100&search=phone")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/?search=phone&minPrice=100&sortBy=price", w.Header().Get("Location"))
}

func TestHomeDropsDefaultValuedFieldsOnRedirect(t *testing.T) {
	router := testHomeRouter(t)

	// "All" selections and page 1 do not belong in the committed state.
	w := get(router, "/?search=tv&categoryId=all&colorId=all&sortBy=price&page=1")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/?search=tv&sortBy=price", w.Header().Get("Location"))
}

func TestHomeCanonicalQueryRendersDirectly(t *testing.T) {
	router := testHomeRouter(t)

	w := get(router, "/?search=phone&minPrice=100&sortBy=price")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Acme Phone")
	assert.Contains(t, body, `value="phone"`)
	assert.Contains(t, body, `value="100"`)
}

func TestHomeEmptyQueryIsResetState(t *testing.T) {
	router := testHomeRouter(t)

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme Phone")
}

func TestHomePreservesDeepPageParam(t *testing.T) {
	router := testHomeRouter(t)

	w := get(router, "/?search=tv&sortBy=price&page=2")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHomeRendersInlineErrorWhenCatalogIsDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	client := catalog.New(catalog.Config{BaseURL: backend.URL, HTTPClient: backend.Client(), Retries: -1})
	h := New(client, catalog_cache.New(client, time.Minute), store.NewSessions(t.TempDir()+"/user-storage.json"), store.NewPrefs())

	router := gin.New()
	router.LoadHTMLGlob("../../templates/*.html")
	router.GET("/", h.Home)

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load")
}
