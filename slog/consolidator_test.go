package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/metasearch"
	"github.com/fwojciec/metasearch/mock"
	msslog "github.com/fwojciec/metasearch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingConsolidator_Consolidate(t *testing.T) {
	t.Parallel()

	newResults := func(t *testing.T) []*metasearch.Result {
		t.Helper()
		a, err := metasearch.NewResult("A", "https://a.example.com/", metasearch.EngineGoogle, metasearch.WithRank(1))
		require.NoError(t, err)
		b, err := metasearch.NewResult("B", "https://b.example.com/", metasearch.EngineGoogle, metasearch.WithRank(2))
		require.NoError(t, err)
		return []*metasearch.Result{a, b}
	}
	keepFirst := &mock.Consolidator{
		ConsolidateFn: func(results []*metasearch.Result) []*metasearch.Result {
			return results[:1]
		},
	}

	t.Run("logs input and output counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		got := msslog.NewLoggingConsolidator(keepFirst, logger).Consolidate(newResults(t))

		assert.Len(t, got, 1)
		output := buf.String()
		assert.Contains(t, output, "msg=consolidate")
		assert.Contains(t, output, "in=2")
		assert.Contains(t, output, "out=1")
		assert.Contains(t, output, "duration=")
		assert.NotContains(t, output, "[Title]")
	})

	t.Run("logs each result at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		_ = msslog.NewLoggingConsolidator(keepFirst, logger).Consolidate(newResults(t))

		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "[Title] A [URL] https://a.example.com/")
		assert.NotContains(t, output, "[Title] B")
	})
}
