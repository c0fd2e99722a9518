package github //nolint:testpackage // tests unexported functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinkHeader(t *testing.T) {
	t.Parallel()

	t.Run("should parse a single item with a quoted rel", func(t *testing.T) {
		t.Parallel()

		// given
		raw := `<https://api.example.com/orgs/foo/repos?page=2>; rel="next"`

		// when
		header, err := parseLinkHeader(raw)

		// then
		require.NoError(t, err)
		require.Len(t, header.items, 1)
		assert.Equal(t, "https://api.example.com/orgs/foo/repos?page=2", header.items[0].url)
		assert.Equal(t, "next", header.items[0].rel)
	})

	t.Run("should parse multiple items preserving order", func(t *testing.T) {
		t.Parallel()

		// given
		raw := `<https://api.example.com/repos?page=3>; rel="next", ` +
			`<https://api.example.com/repos?page=1>; rel="prev", ` +
			`<https://api.example.com/repos?page=5>; rel="last"`

		// when
		header, err := parseLinkHeader(raw)

		// then
		require.NoError(t, err)
		require.Len(t, header.items, 3)
		assert.Equal(t, "next", header.items[0].rel)
		assert.Equal(t, "prev", header.items[1].rel)
		assert.Equal(t, "last", header.items[2].rel)
	})

	t.Run("should accept an unquoted rel value", func(t *testing.T) {
		t.Parallel()

		// given
		raw := `<http://foo.bar/baz?page=2>; rel=next`

		// when
		header, err := parseLinkHeader(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, "next", header.items[0].rel)
	})

	t.Run("should pick the first rel attribute when several are present", func(t *testing.T) {
		t.Parallel()

		// given
		raw := `<http://foo.bar/baz>; rel="next"; rel="last"`

		// when
		header, err := parseLinkHeader(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, "next", header.items[0].rel)
	})

	t.Run("should reject the whole header when an item has no URL", func(t *testing.T) {
		t.Parallel()

		// given
		raw := `<http://foo.bar/a>; rel="prev", no-brackets-here; rel="next"`

		// when
		header, err := parseLinkHeader(raw)

		// then
		require.ErrorIs(t, err, ErrMalformedLink)
		assert.Nil(t, header)
	})

	t.Run("should reject the whole header when an item has no rel", func(t *testing.T) {
		t.Parallel()

		// given
		raw := `<http://foo.bar/a>; rel="prev", <http://foo.bar/b>; title="b"`

		// when
		header, err := parseLinkHeader(raw)

		// then
		require.ErrorIs(t, err, ErrMissingRelation)
		assert.Nil(t, header)
	})

	t.Run("should not match a REL attribute with different casing", func(t *testing.T) {
		t.Parallel()

		// given
		raw := `<http://foo.bar/a>; REL="next"`

		// when
		header, err := parseLinkHeader(raw)

		// then
		require.ErrorIs(t, err, ErrMissingRelation)
		assert.Nil(t, header)
	})
}

func TestFindRel(t *testing.T) {
	t.Parallel()

	t.Run("should return the first item with a matching relation", func(t *testing.T) {
		t.Parallel()

		// given
		header := &linkHeader{items: []linkItem{
			{url: "http://foo.bar/1", rel: "next"},
			{url: "http://foo.bar/2", rel: "next"},
		}}

		// when
		item := header.findRel("next")

		// then
		require.NotNil(t, item)
		assert.Equal(t, "http://foo.bar/1", item.url)
	})

	t.Run("should return nil when no relation matches", func(t *testing.T) {
		t.Parallel()

		// given
		header := &linkHeader{items: []linkItem{
			{url: "http://foo.bar/1", rel: "prev"},
		}}

		// when
		item := header.findRel("next")

		// then
		assert.Nil(t, item)
	})

	t.Run("should match relations case-sensitively", func(t *testing.T) {
		t.Parallel()

		// given
		header := &linkHeader{items: []linkItem{
			{url: "http://foo.bar/1", rel: "Next"},
		}}

		// when
		item := header.findRel("next")

		// then
		assert.Nil(t, item)
	})
}
