package handler

import "net/http"

// GetTicker godoc
// @Summary Latest refreshed prices
// @Description 24k price per gram for every supported currency, as of the last scheduled refresh
// @Tags Prices
// @Produce json
// @Success 200 {object} gold.TickerSnapshot
// @Failure 503 {object} errorResponse "ticker not refreshed yet"
// @Router /ticker [get]
func (h *Handler) GetTicker(w http.ResponseWriter, _ *http.Request) {
	snapshot, ok := h.ticker.Latest()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "ticker not refreshed yet")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
