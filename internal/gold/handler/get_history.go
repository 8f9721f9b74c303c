package handler

import (
	"fmt"
	"net/http"

	"goldprice/internal/domain"
	"goldprice/internal/export"
	"goldprice/internal/gold"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type GetHistoryResponse struct {
	Currency domain.CurrencyCode   `json:"currency" example:"MAD"`
	Period   domain.Period         `json:"period" example:"1w"`
	Points   []domain.HistoryPoint `json:"points"`
}

// GetHistory godoc
// @Summary Price history
// @Description Daily 24k price per gram, oldest first, ending today. Every period is generated at day granularity.
// @Tags Prices
// @Produce json
// @Param code path string true "Currency code"
// @Param period query string false "Period (1d, 1w, 1m, 6m, 1y), defaults to 1m"
// @Success 200 {object} GetHistoryResponse
// @Failure 400 {object} errorResponse
// @Router /prices/{code}/history [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	code, period, ok := parseHistoryRequest(w, r)
	if !ok {
		return
	}

	points, err := h.service.History(code, period)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GetHistoryResponse{
		Currency: code,
		Period:   period,
		Points:   points,
	})
}

// ExportHistoryCSV godoc
// @Summary Download price history as CSV
// @Description Same series as the history endpoint, as a "date,price" CSV attachment named gold-prices-<code>-<period>.csv
// @Tags Prices
// @Produce text/csv
// @Param code path string true "Currency code"
// @Param period query string false "Period (1d, 1w, 1m, 6m, 1y), defaults to 1m"
// @Success 200 {string} string
// @Failure 400 {object} errorResponse
// @Router /prices/{code}/history.csv [get]
func (h *Handler) ExportHistoryCSV(w http.ResponseWriter, r *http.Request) {
	code, period, ok := parseHistoryRequest(w, r)
	if !ok {
		return
	}

	points, err := h.service.History(code, period)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(code, period)))
	w.WriteHeader(http.StatusOK)
	if err = export.WriteCSV(w, points); err != nil {
		// headers are already sent, nothing left to tell the client
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ExportHistoryCSV", "code": code, "period": period}).Warn("csv export interrupted")
	}
}

func parseHistoryRequest(w http.ResponseWriter, r *http.Request) (domain.CurrencyCode, domain.Period, bool) {
	code := gold.NormalizeCode(chi.URLParam(r, "code"))
	if err := gold.ValidateCode(code); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}
	period, err := gold.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}
	return code, period, true
}
