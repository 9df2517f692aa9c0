package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/khmiq/ecommerce/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, HTTPClient: srv.Client(), Retries: -1})
}

func TestCategoriesNormalizesNestedEnvelope(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/category", r.URL.Path)
		w.Write([]byte(`{"data":{"data":[{"id":"c1","name":"Phones"}]}}`))
	}))

	cats, err := client.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Phones", cats[0].Name)
}

func TestCategoriesFailsSoftOnMalformedPayload(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":true}`))
	}))

	cats, err := client.Categories(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedFormat)
	assert.Empty(t, cats)
	assert.NotNil(t, cats)
}

func TestProductsAppliesDefaults(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "phone", r.URL.Query().Get("search"))
		w.Write([]byte(`{"data":[{"id":"p1","name":"Bare Phone","price":99}],"total":1,"page":1,"totalPages":1}`))
	}))

	page, err := client.Products(context.Background(), url.Values{"search": {"phone"}, "sortBy": {"price"}})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	p := page.Items[0]
	assert.Equal(t, models.PlaceholderImage, p.Img)
	assert.Equal(t, "Uncategorized", p.Category.Name)
	assert.Equal(t, "0", p.AvgStars)
	assert.Empty(t, p.Colors)
	assert.NotNil(t, p.Colors)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
}

func TestProductsPaginationDefaultsWhenAbsent(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))

	page, err := client.Products(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestProductMergesLegacyColorFields(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"p1","name":"Jacket","price":50,"imageUrl":"http://img/x.png","colorIds":[{"id":"k1","name":"Red"}]}}`))
	}))

	p, err := client.Product(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "http://img/x.png", p.Img)
	require.Len(t, p.Colors, 1)
	assert.Equal(t, "Red", p.Colors[0].Name)
}

func TestProductNotFound(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"no such product"}`, http.StatusNotFound)
	}))

	_, err := client.Product(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	}))

	_, err := client.Login(context.Background(), "a@b.c", "wrong")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, "Invalid email or password", httpErr.Message)
	// A login failure is a wrong credential, never a missing token.
	assert.NotErrorIs(t, err, ErrAuthRequired)
}

func TestLoginUnwrapsNestedToken(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"token":"tok-1"}}`))
	}))

	token, err := client.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestPlaceOrderMapsUnauthorized(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := client.PlaceOrder(context.Background(), "stale-token", "p1", []string{"k1"}, 1)
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestPlaceOrderValidatesBeforeNetwork(t *testing.T) {
	var hits atomic.Int32
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	assert.ErrorIs(t, client.PlaceOrder(context.Background(), "t", "p1", nil, 1), ErrValidation)
	assert.ErrorIs(t, client.PlaceOrder(context.Background(), "t", "p1", []string{"k1"}, 0), ErrValidation)
	assert.Zero(t, hits.Load())
}

func TestAddCommentValidatesStarAndText(t *testing.T) {
	var hits atomic.Int32
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	_, err := client.AddComment(context.Background(), "t", "", 3, "p1")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = client.AddComment(context.Background(), "t", "nice", 0, "p1")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = client.AddComment(context.Background(), "t", "nice", 6, "p1")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, hits.Load())
}

func TestUploadRejectsNonImagesBeforeNetwork(t *testing.T) {
	var hits atomic.Int32
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	_, err := client.UploadImage(context.Background(), "a.gif", "image/gif", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Zero(t, hits.Load())
}

func TestUploadReturnsFileURL(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.NotEmpty(t, header.Filename)
		w.Write([]byte(`{"fileUrl":"https://cdn/img.png"}`))
	}))

	fileURL, err := client.UploadImage(context.Background(), "img.png", "image/png", strings.NewReader("bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/img.png", fileURL)
}

func TestRetriesServerErrorsThenSucceeds(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()
	client := New(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})

	_, err := client.Products(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), hits.Load())
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()
	client := New(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})

	_, err := client.Products(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestRequestsCarryARequestID(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Write([]byte(`[]`))
	}))
	_, err := client.Categories(context.Background())
	require.NoError(t, err)
}

func TestMeSendsBearerToken(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-9", r.Header.Get("Authorization"))
		w.Write([]byte(`{"firstname":"Ada","lastname":"L"}`))
	}))

	profile, err := client.Me(context.Background(), "tok-9")
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Firstname)
}

func TestSendMessageRequiresText(t *testing.T) {
	var hits atomic.Int32
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	_, err := client.SendMessage(context.Background(), "t", "p1", "   ")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, hits.Load())
}
