package pricing

import (
	"time"

	"goldprice/internal/domain"
	"goldprice/internal/reference"
)

// History returns one point per calendar day, oldest first, ending today.
// Every period, "1d" included, is generated at day granularity.
func (e *Engine) History(code domain.CurrencyCode, period domain.Period) ([]domain.HistoryPoint, error) {
	days, ok := period.Days()
	if !ok {
		return nil, domain.ErrUnsupportedPeriod
	}

	code = resolve(code)
	base := reference.BasePrice(code)
	today := e.Today()

	points := make([]domain.HistoryPoint, 0, days+1)
	for i := days; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		points = append(points, domain.HistoryPoint{
			Date:  date.Format(time.DateOnly),
			Price: Round2(base + historyOffset(code, date, base)),
		})
	}
	return points, nil
}
