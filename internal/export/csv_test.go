package export

import (
	"errors"
	"testing"

	"goldprice/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	require.Equal(t, "gold-prices-MAD-1m.csv", Filename(domain.MAD, domain.Period1M))
}

func TestCSV(t *testing.T) {
	points := []domain.HistoryPoint{
		{Date: "2026-10-18", Price: 949.5},
		{Date: "2026-10-19", Price: 1012.04},
	}

	got, err := CSV(points)

	require.NoError(t, err)
	require.Equal(t, "date,price\n2026-10-18,949.50\n2026-10-19,1012.04\n", got)
}

func TestCSV_EmptyHasHeaderOnly(t *testing.T) {
	got, err := CSV(nil)
	require.NoError(t, err)
	require.Equal(t, "date,price\n", got)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_WriterError(t *testing.T) {
	err := WriteCSV(failingWriter{}, []domain.HistoryPoint{{Date: "2026-10-19", Price: 1}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}
