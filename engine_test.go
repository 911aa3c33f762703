package metasearch_test

import (
	"testing"

	"github.com/fwojciec/metasearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEngine(t *testing.T) {
	t.Parallel()

	t.Run("parses every supported engine", func(t *testing.T) {
		t.Parallel()

		for _, want := range metasearch.Engines {
			got, err := metasearch.ParseEngine(string(want))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("is case-sensitive", func(t *testing.T) {
		t.Parallel()

		_, err := metasearch.ParseEngine("google")

		assert.Equal(t, metasearch.EUNKNOWNENGINE, metasearch.ErrorCode(err))
	})

	t.Run("rejects unknown engine", func(t *testing.T) {
		t.Parallel()

		_, err := metasearch.ParseEngine("abcde")

		assert.Equal(t, metasearch.EUNKNOWNENGINE, metasearch.ErrorCode(err))
	})
}
