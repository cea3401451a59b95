package rankcheck_test

import (
	"testing"

	"github.com/fwojciec/rankcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func links(urls ...string) []rankcheck.ResultLink {
	out := make([]rankcheck.ResultLink, len(urls))
	for i, u := range urls {
		out[i] = rankcheck.ResultLink{URL: u, Index: i}
	}
	return out
}

func TestMatchPositions(t *testing.T) {
	t.Parallel()

	t.Run("returns 1-based position of single match", func(t *testing.T) {
		t.Parallel()

		got := rankcheck.MatchPositions(links("http://targeturl.com"), "http://targeturl.com")

		assert.Equal(t, []int{1}, got)
	})

	t.Run("returns every match in ascending order", func(t *testing.T) {
		t.Parallel()

		got := rankcheck.MatchPositions(links(
			"https://example.com/a",
			"https://other.org",
			"https://example.com/b",
			"https://another.net",
			"https://sub.example.com",
		), "example.com")

		assert.Equal(t, []int{1, 3, 5}, got)
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		got := rankcheck.MatchPositions(links("HTTP://EXAMPLE.COM/x"), "example.com")
		assert.Equal(t, []int{1}, got)

		got = rankcheck.MatchPositions(links("http://example.com/x"), "Example.COM")
		assert.Equal(t, []int{1}, got)
	})

	t.Run("matches substrings anywhere in the link", func(t *testing.T) {
		t.Parallel()

		got := rankcheck.MatchPositions(links("/url?q=https://www.example.com/&sa=U"), "www.example.com")

		assert.Equal(t, []int{1}, got)
	})

	t.Run("returns empty for non-matching links", func(t *testing.T) {
		t.Parallel()

		got := rankcheck.MatchPositions(links("http://otherurl.com"), "http://targeturl.com")

		assert.Empty(t, got)
	})

	t.Run("returns empty for empty links", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, rankcheck.MatchPositions(nil, "example.com"))
		assert.Empty(t, rankcheck.MatchPositions([]rankcheck.ResultLink{}, "example.com"))
	})

	t.Run("returns exactly one position per matching link", func(t *testing.T) {
		t.Parallel()

		urls := make([]string, 100)
		for i := range urls {
			urls[i] = "https://noise.example.org"
		}
		urls[9] = "https://target.dev/page"
		urls[41] = "https://TARGET.dev"
		urls[99] = "https://www.target.dev/x"

		got := rankcheck.MatchPositions(links(urls...), "target.dev")

		assert.Equal(t, []int{10, 42, 100}, got)
	})
}

func TestFormatPositions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"1", "12", "100"}, rankcheck.FormatPositions([]int{1, 12, 100}))
	assert.Empty(t, rankcheck.FormatPositions(nil))
}

func TestJoinPositions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1,3,5", rankcheck.JoinPositions([]string{"1", "3", "5"}))
	assert.Equal(t, "7", rankcheck.JoinPositions([]string{"7"}))
	assert.Equal(t, "", rankcheck.JoinPositions(nil))
}

func TestSplitPositions(t *testing.T) {
	t.Parallel()

	t.Run("reverses JoinPositions", func(t *testing.T) {
		t.Parallel()

		for _, positions := range [][]string{
			{},
			{"1"},
			{"1", "2"},
			{"4", "18", "99"},
		} {
			assert.Equal(t, positions, rankcheck.SplitPositions(rankcheck.JoinPositions(positions)))
		}
	})

	t.Run("reproduces matcher output", func(t *testing.T) {
		t.Parallel()

		matched := rankcheck.FormatPositions(rankcheck.MatchPositions(
			links("https://a.com", "https://b.com", "https://a.com/2"), "a.com"))

		stored := rankcheck.JoinPositions(matched)

		assert.Equal(t, "1,3", stored)
		assert.Equal(t, matched, rankcheck.SplitPositions(stored))
	})
}

func TestParsePositions(t *testing.T) {
	t.Parallel()

	t.Run("parses stored positions", func(t *testing.T) {
		t.Parallel()

		got, err := rankcheck.ParsePositions("2,7,31")

		require.NoError(t, err)
		assert.Equal(t, []int{2, 7, 31}, got)
	})

	t.Run("parses empty string as no positions", func(t *testing.T) {
		t.Parallel()

		got, err := rankcheck.ParsePositions("")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("rejects non-positive and non-numeric entries", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"0", "1,x", "-3", "1,,2"} {
			_, err := rankcheck.ParsePositions(s)
			require.Error(t, err, s)
			assert.Equal(t, rankcheck.EINVALID, rankcheck.ErrorCode(err))
		}
	})
}
