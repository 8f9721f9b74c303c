// Package export renders price history for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"goldprice/internal/domain"
	"goldprice/internal/pricing"
)

const ContentType = "text/csv; charset=utf-8"

// Filename follows gold-prices-<code>-<period>.csv.
func Filename(code domain.CurrencyCode, period domain.Period) string {
	return fmt.Sprintf("gold-prices-%s-%s.csv", code, period)
}

// WriteCSV writes a "date,price" header followed by one line per point, in
// the order given.
func WriteCSV(w io.Writer, points []domain.HistoryPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "price"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, p := range points {
		if err := cw.Write([]string{p.Date, pricing.FormatAmount(p.Price)}); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", p.Date, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// CSV is WriteCSV into a string.
func CSV(points []domain.HistoryPoint) (string, error) {
	var b strings.Builder
	if err := WriteCSV(&b, points); err != nil {
		return "", err
	}
	return b.String(), nil
}
