package handler

import (
	"net/http"

	"goldprice/internal/domain"
)

type GetCurrenciesResponse struct {
	Currencies []domain.Currency `json:"currencies"`
}

// GetCurrencies godoc
// @Summary List supported currencies
// @Tags Reference
// @Produce json
// @Success 200 {object} GetCurrenciesResponse
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GetCurrenciesResponse{
		Currencies: h.service.Currencies(),
	})
}
