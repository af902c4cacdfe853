package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.RecordRequest("/posts", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/posts", "GET", 200, 5*time.Millisecond)
	m.RecordError("/posts", "POST", "VALIDATION_FAILED")

	require.Equal(t, int64(2), m.requestCount["/posts|GET|200"])
	require.Equal(t, int64(1), m.errorCount["/posts|POST|VALIDATION_FAILED"])
}

func TestMetricsNilReceiver(t *testing.T) {
	t.Parallel()

	var m *Metrics
	require.NotPanics(t, func() {
		m.RecordRequest("/posts", "GET", 200, time.Millisecond)
		m.RecordError("/posts", "GET", "INTERNAL_ERROR")
	})
}
