package handler

import (
	"net/http"

	"goldprice/internal/domain"
	"goldprice/internal/gold"
	"goldprice/internal/pricing"

	"github.com/go-chi/chi/v5"
)

type GetPriceResponse struct {
	domain.GoldPrice
	ChangeFormatted string `json:"change_formatted" example:"+1.00%"`
}

// GetPrice godoc
// @Summary Current gold price
// @Description Simulated price for one unit of gold in the given currency. Unknown currencies are priced as USD, unknown purities as 24k and unknown units as grams.
// @Tags Prices
// @Produce json
// @Param code path string true "Currency code" example(MAD)
// @Param purity query string false "Purity label (24k, 22k, 21k, 18k, 14k, 12k, 10k)"
// @Param unit query string false "Unit (gram, ounce, kilo)"
// @Success 200 {object} GetPriceResponse
// @Failure 400 {object} errorResponse
// @Router /prices/{code} [get]
func (h *Handler) GetPrice(w http.ResponseWriter, r *http.Request) {
	code := gold.NormalizeCode(chi.URLParam(r, "code"))
	if err := gold.ValidateCode(code); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := r.URL.Query()
	price := h.service.Price(code, gold.ParsePurity(query.Get("purity")), gold.ParseUnit(query.Get("unit")))

	writeJSON(w, http.StatusOK, GetPriceResponse{
		GoldPrice:       price,
		ChangeFormatted: pricing.FormatPercent(price.ChangePercentage),
	})
}
