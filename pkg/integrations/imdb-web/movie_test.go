package imdbweb_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	. "droscher.com/MovieCatalog/pkg/integrations/imdb-web"
)

const searchPage = `<html><body>
<ul>
  <li><a href="/title/tt0133093/?ref_=fn_al_tt_1">The Matrix</a></li>
  <li><a href="/title/tt0133093/?ref_=fn_al_tt_1_img"><img src="poster.jpg"></a></li>
  <li><a href="/title/tt0234215/?ref_=fn_al_tt_2">The Matrix Reloaded</a></li>
  <li><a href="/name/nm0000206/">Keanu Reeves</a></li>
</ul>
</body></html>`

const titlePage = `<html><head>
<script type="application/ld+json">%s</script>
</head><body></body></html>`

const matrixJSON = `{"@context":"https://schema.org","@type":"Movie","name":"The Matrix",
"image":"https://example.com/matrix.jpg","description":"A hacker learns the truth about reality.",
"datePublished":"1999-03-31","genre":["Action","Sci-Fi"],
"aggregateRating":{"ratingValue":8.7,"bestRating":10,"ratingCount":2000000}}`

const reloadedJSON = `{"@context":"https://schema.org","@type":"Movie","name":"The Matrix Reloaded",
"datePublished":"2003-05-15","genre":"Action"}`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/find/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, searchPage)
	})
	mux.HandleFunc("/title/tt0133093/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprintf(w, titlePage, matrixJSON)
	})
	mux.HandleFunc("/title/tt0234215/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprintf(w, titlePage, reloadedJSON)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestSearchMovies(t *testing.T) {
	server := newServer(t)
	imdb := NewImdbWebIntegration(zaptest.NewLogger(t), WithBaseURL(server.URL))

	results, err := imdb.SearchMovies(context.Background(), "the matrix")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, IntegrationName, results[0].Source)
	assert.Equal(t, "tt0133093", results[0].ExternalID)
	assert.Equal(t, "The Matrix", results[0].Title)
	assert.Equal(t, 1999, results[0].Year)
	assert.Equal(t, "Action, Sci-Fi", results[0].Genre)
	assert.Equal(t, "https://example.com/matrix.jpg", *results[0].PosterURL)
	assert.Contains(t, *results[0].Overview, "hacker")
	assert.InDelta(t, 8.7, *results[0].ExternalRating, 0.01)

	assert.Equal(t, "The Matrix Reloaded", results[1].Title)
	assert.Equal(t, 2003, results[1].Year)
	assert.Equal(t, "Action", results[1].Genre)
	assert.Nil(t, results[1].PosterURL)
	assert.Nil(t, results[1].ExternalRating)
}

func TestSearchMovies_ReportsMissingTitlePages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/find/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `<a href="/title/tt9999999/">Gone</a>`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	imdb := NewImdbWebIntegration(zaptest.NewLogger(t), WithBaseURL(server.URL))

	results, err := imdb.SearchMovies(context.Background(), "gone")
	require.Error(t, err)
	assert.Empty(t, results)
}

func TestSearchMovies_CancelledContext(t *testing.T) {
	server := newServer(t)
	imdb := NewImdbWebIntegration(zaptest.NewLogger(t), WithBaseURL(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := imdb.SearchMovies(ctx, "the matrix")
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestSearchMovies_CancelledDuringRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/find/", func(_ http.ResponseWriter, r *http.Request) {
		cancel()

		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	imdb := NewImdbWebIntegration(zaptest.NewLogger(t), WithBaseURL(server.URL))

	started := time.Now()
	results, err := imdb.SearchMovies(ctx, "the matrix")

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
	assert.Less(t, time.Since(started), 5*time.Second)
}
