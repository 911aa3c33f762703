package metasearch_test

import (
	"math/rand/v2"
	"testing"

	"github.com/fwojciec/metasearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult(t *testing.T) {
	t.Parallel()

	t.Run("strips newlines from title", func(t *testing.T) {
		t.Parallel()

		r, err := metasearch.NewResult("Breaking\nNews\n", "https://example.com", metasearch.EngineGoogle)

		require.NoError(t, err)
		assert.Equal(t, "BreakingNews", r.Title())
	})

	t.Run("keeps valid URLs unchanged", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{
			"https://example.com",
			"https://example.com/join/",
			"http://example.org/handsome.html",
			"http://en.example.org/great/great/great/something",
			"https://example.com/search?q=a+b&lang=en#top",
			"https://ja.wikipedia.org/wiki/東京",
			"https://example.com/(paren)/[bracket]/it's",
		} {
			r, err := metasearch.NewResult("Article", u, metasearch.EngineGoogle)
			require.NoError(t, err, u)
			assert.Equal(t, u, r.URL())
		}
	})

	t.Run("strips trailing slash after html file", func(t *testing.T) {
		t.Parallel()

		r, err := metasearch.NewResult("Article", "http://ex.example.gov/index.html/", metasearch.EngineGoogle)

		require.NoError(t, err)
		assert.Equal(t, "http://ex.example.gov/index.html", r.URL())
	})

	t.Run("rejects malformed URLs", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{
			"",
			"example.com",
			"ftp://example.com",
			"https://",
			"https://example.com/with space",
			"https://example.com/<script>",
		} {
			r, err := metasearch.NewResult("Article", u, metasearch.EngineGoogle)
			assert.Nil(t, r, u)
			assert.Equal(t, metasearch.EINVALIDURL, metasearch.ErrorCode(err), u)
		}
	})

	t.Run("registers the source engine", func(t *testing.T) {
		t.Parallel()

		r, err := metasearch.NewResult("Article", "https://example.com", metasearch.EngineGoogle)

		require.NoError(t, err)
		assert.Equal(t, []metasearch.Engine{metasearch.EngineGoogle}, r.Engines())
	})

	t.Run("unknown engine returns result with empty engine set and error", func(t *testing.T) {
		t.Parallel()

		r, err := metasearch.NewResult("Article", "https://example.com", metasearch.Engine("abcde"))

		require.NotNil(t, r)
		assert.Equal(t, metasearch.EUNKNOWNENGINE, metasearch.ErrorCode(err))
		assert.Empty(t, r.Engines())
	})

	t.Run("engine names are case-sensitive", func(t *testing.T) {
		t.Parallel()

		r, err := metasearch.NewResult("Article", "https://example.com", metasearch.Engine("google"))

		require.NotNil(t, r)
		assert.Equal(t, metasearch.EUNKNOWNENGINE, metasearch.ErrorCode(err))
		assert.Empty(t, r.Engines())
	})

	t.Run("defaults ranks when none given", func(t *testing.T) {
		t.Parallel()

		r, err := metasearch.NewResult("Article", "https://example.com", metasearch.EngineGoogle)

		require.NoError(t, err)
		assert.False(t, r.Ranked())
		assert.Equal(t, metasearch.DefaultRank, r.HighestRank())
		assert.Equal(t, metasearch.DefaultRank, r.LowestRank())
	})

	t.Run("sets both bounds from initial rank", func(t *testing.T) {
		t.Parallel()

		r, err := metasearch.NewResult("Article", "https://example.com", metasearch.EngineGoogle, metasearch.WithRank(3))

		require.NoError(t, err)
		assert.True(t, r.Ranked())
		assert.Equal(t, 3, r.HighestRank())
		assert.Equal(t, 3, r.LowestRank())
	})

	t.Run("illegal initial rank keeps defaults and reports error", func(t *testing.T) {
		t.Parallel()

		r, err := metasearch.NewResult("Article", "https://example.com", metasearch.EngineGoogle, metasearch.WithRank(-1024))

		require.NotNil(t, r)
		assert.Equal(t, metasearch.EINVALIDRANK, metasearch.ErrorCode(err))
		assert.Equal(t, metasearch.DefaultRank, r.HighestRank())
		assert.Equal(t, metasearch.DefaultRank, r.LowestRank())
	})

	t.Run("sets abstract", func(t *testing.T) {
		t.Parallel()

		snippet := "sample snippet, sample snippet. This is a sample snippet."
		r, err := metasearch.NewResult("Article", "https://example.com", metasearch.EngineGoogle, metasearch.WithAbstract(snippet))

		require.NoError(t, err)
		assert.Equal(t, snippet, r.Abstract())
	})
}

func TestResult_AddEngine(t *testing.T) {
	t.Parallel()

	t.Run("appends engines in insertion order", func(t *testing.T) {
		t.Parallel()

		r := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 1)

		require.NoError(t, r.AddEngine(metasearch.EngineYahoo))
		require.NoError(t, r.AddEngine(metasearch.EngineBing))
		assert.Equal(t, []metasearch.Engine{metasearch.EngineGoogle, metasearch.EngineYahoo, metasearch.EngineBing}, r.Engines())
	})

	t.Run("rejects duplicate engine", func(t *testing.T) {
		t.Parallel()

		r := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 1)

		err := r.AddEngine(metasearch.EngineGoogle)

		assert.Equal(t, metasearch.EDUPLICATEENGINE, metasearch.ErrorCode(err))
		assert.Equal(t, []metasearch.Engine{metasearch.EngineGoogle}, r.Engines())
	})

	t.Run("rejects unknown engine", func(t *testing.T) {
		t.Parallel()

		r := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 1)

		err := r.AddEngine("Yahoo!")

		assert.Equal(t, metasearch.EUNKNOWNENGINE, metasearch.ErrorCode(err))
		assert.Equal(t, []metasearch.Engine{metasearch.EngineGoogle}, r.Engines())
	})

	t.Run("returned engines are a copy", func(t *testing.T) {
		t.Parallel()

		r := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 1)

		engines := r.Engines()
		engines[0] = metasearch.EngineBing

		assert.Equal(t, []metasearch.Engine{metasearch.EngineGoogle}, r.Engines())
	})
}

func TestResult_UpdateRank(t *testing.T) {
	t.Parallel()

	t.Run("first rank sets both bounds", func(t *testing.T) {
		t.Parallel()

		r, err := metasearch.NewResult("Article", "https://example.com", metasearch.EngineGoogle)
		require.NoError(t, err)

		require.NoError(t, r.UpdateRank(3))
		assert.Equal(t, 3, r.HighestRank())
		assert.Equal(t, 3, r.LowestRank())
	})

	t.Run("widens bounds with better and worse ranks", func(t *testing.T) {
		t.Parallel()

		r := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 5)

		require.NoError(t, r.UpdateRank(3))
		require.NoError(t, r.UpdateRank(8))
		assert.Equal(t, 3, r.HighestRank())
		assert.Equal(t, 8, r.LowestRank())
	})

	t.Run("rank between bounds is accepted without effect", func(t *testing.T) {
		t.Parallel()

		r := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 2)
		require.NoError(t, r.UpdateRank(9))

		require.NoError(t, r.UpdateRank(5))
		assert.Equal(t, 2, r.HighestRank())
		assert.Equal(t, 9, r.LowestRank())
	})

	t.Run("ignores illegal ranks among legal ones", func(t *testing.T) {
		t.Parallel()

		r, err := metasearch.NewResult("Article", "https://example.com", metasearch.EngineGoogle)
		require.NoError(t, err)

		assert.NoError(t, r.UpdateRank(5))
		assert.Equal(t, metasearch.EINVALIDRANK, metasearch.ErrorCode(r.UpdateRank(-1)))
		assert.NoError(t, r.UpdateRank(3))
		assert.Equal(t, metasearch.EINVALIDRANK, metasearch.ErrorCode(r.UpdateRank(800)))
		assert.Equal(t, metasearch.EINVALIDRANK, metasearch.ErrorCode(r.UpdateRank(199)))
		assert.Equal(t, metasearch.EINVALIDRANK, metasearch.ErrorCode(r.UpdateRank(0)))

		assert.Equal(t, 3, r.HighestRank())
		assert.Equal(t, 5, r.LowestRank())
	})

	t.Run("explicit worst rank counts as first rank", func(t *testing.T) {
		t.Parallel()

		r := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, metasearch.LowestRank)

		require.NoError(t, r.UpdateRank(5))
		assert.Equal(t, 5, r.HighestRank())
		assert.Equal(t, metasearch.LowestRank, r.LowestRank())
	})

	t.Run("bounds are monotonic for random rank sequences", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewPCG(1, 2))
		for seq := 0; seq < 200; seq++ {
			r, err := metasearch.NewResult("Article", "https://example.com", metasearch.EngineGoogle)
			require.NoError(t, err)

			prevHigh, prevLow := 0, 0
			for i := 0; i < 20; i++ {
				rank := rng.IntN(120) - 10
				_ = r.UpdateRank(rank)
				if !r.Ranked() {
					continue
				}
				if prevHigh != 0 {
					assert.LessOrEqual(t, r.HighestRank(), prevHigh)
					assert.GreaterOrEqual(t, r.LowestRank(), prevLow)
				}
				assert.LessOrEqual(t, r.HighestRank(), r.LowestRank())
				prevHigh, prevLow = r.HighestRank(), r.LowestRank()
			}
		}
	})
}

func TestResult_Merge(t *testing.T) {
	t.Parallel()

	t.Run("unions engines and widens ranks", func(t *testing.T) {
		t.Parallel()

		a := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 4)
		b := newResult(t, "Article", "https://example.com", metasearch.EngineYahoo, 2)
		require.NoError(t, b.UpdateRank(7))

		a.Merge(b)

		assert.Equal(t, []metasearch.Engine{metasearch.EngineGoogle, metasearch.EngineYahoo}, a.Engines())
		assert.Equal(t, 2, a.HighestRank())
		assert.Equal(t, 7, a.LowestRank())
	})

	t.Run("skips engines already present", func(t *testing.T) {
		t.Parallel()

		a := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 1)
		b := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 3)

		a.Merge(b)

		assert.Equal(t, []metasearch.Engine{metasearch.EngineGoogle}, a.Engines())
		assert.Equal(t, 1, a.HighestRank())
		assert.Equal(t, 3, a.LowestRank())
	})
}

func TestResult_Equal(t *testing.T) {
	t.Parallel()

	t.Run("ignores engine order and abstract", func(t *testing.T) {
		t.Parallel()

		a := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 1)
		require.NoError(t, a.AddEngine(metasearch.EngineYahoo))
		b := newResult(t, "Article", "https://example.com", metasearch.EngineYahoo, 1)
		require.NoError(t, b.AddEngine(metasearch.EngineGoogle))
		b.SetAbstract("different")

		assert.True(t, a.Equal(b))
	})

	t.Run("differs on rank", func(t *testing.T) {
		t.Parallel()

		a := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 1)
		b := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 2)

		assert.False(t, a.Equal(b))
	})

	t.Run("clone is equal and independent", func(t *testing.T) {
		t.Parallel()

		a := newResult(t, "Article", "https://example.com", metasearch.EngineGoogle, 1)
		c := a.Clone()
		require.True(t, a.Equal(c))

		require.NoError(t, c.AddEngine(metasearch.EngineBing))

		assert.False(t, a.Equal(c))
		assert.Equal(t, []metasearch.Engine{metasearch.EngineGoogle}, a.Engines())
	})
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	r := newResult(t, "Article 1", "http://www.example1.com/example", metasearch.EngineGoogle, 1)
	require.NoError(t, r.AddEngine(metasearch.EngineYahoo))
	require.NoError(t, r.UpdateRank(4))

	assert.Equal(t, "[Title] Article 1 [URL] http://www.example1.com/example [Engine] Google, Yahoo [HRank] 1 [LRank] 4", r.String())
}
