package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	t.Run("empty input", func(t *testing.T) {
		out, err := r.Render("")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("basic formatting", func(t *testing.T) {
		out, err := r.Render("**called** client\n- follow up")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>called</strong>")
		assert.Contains(t, out, "<li>follow up</li>")
	})

	t.Run("raw html is not passed through", func(t *testing.T) {
		out, err := r.Render("note <script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
	})

	t.Run("blockquote", func(t *testing.T) {
		out, err := r.Render("> approved by finance\n\nTom & Jerry")
		require.NoError(t, err)
		assert.Contains(t, out, "<blockquote>")
		assert.Contains(t, out, "approved by finance")
		assert.Contains(t, out, "Tom &amp; Jerry")
	})

	t.Run("links get nofollow", func(t *testing.T) {
		out, err := r.Render("[ticket](https://example.com/t/1)")
		require.NoError(t, err)
		assert.Contains(t, out, `rel="nofollow noopener"`)
		assert.Contains(t, out, `href="https://example.com/t/1"`)
	})
}
