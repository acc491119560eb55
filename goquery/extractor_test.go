package goquery_test

import (
	"testing"

	wikigoquery "github.com/fwojciec/wikictx/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	e := wikigoquery.NewExtractor()

	t.Run("strips boilerplate markup", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Home</title></head><body>
			<nav>site nav</nav>
			<header>banner</header>
			<script>alert(1)</script>
			<style>body{}</style>
			<iframe src="https://ads.example.com"></iframe>
			<main><p>Actual content.</p></main>
			<footer>copyright</footer>
		</body></html>`

		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Actual content.")
		assert.NotContains(t, result.ContentHTML, "site nav")
		assert.NotContains(t, result.ContentHTML, "banner")
		assert.NotContains(t, result.ContentHTML, "alert(1)")
		assert.NotContains(t, result.ContentHTML, "copyright")
		assert.NotContains(t, result.ContentHTML, "ads.example.com")
	})

	t.Run("prefers the Confluence main-content container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div id="main-content"><p>Wiki page body.</p></div>
			<div class="sidebar">related pages</div>
		</body></html>`

		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Wiki page body.")
		assert.NotContains(t, result.ContentHTML, "related pages")
	})

	t.Run("takes title from og:title over title tag", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<title>TEAM : Home - Wiki</title>
			<meta property="og:title" content="Home"/>
		</head><body><p>x</p></body></html>`

		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Home", result.Title)
	})

	t.Run("falls back to title tag", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title> Home </title></head><body><p>x</p></body></html>`

		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Home", result.Title)
	})

	t.Run("falls back to body when no content container matches", func(t *testing.T) {
		t.Parallel()

		result, err := e.Extract("<html><body><p>bare</p></body></html>")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "bare")
	})
}
