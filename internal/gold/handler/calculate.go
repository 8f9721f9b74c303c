package handler

import (
	"net/http"

	"goldprice/internal/gold"
)

// Calculate godoc
// @Summary Gold value calculator
// @Description Value of a weight of gold at today's simulated price
// @Tags Calculator
// @Produce json
// @Param currency query string true "Currency code"
// @Param weight query number true "Weight, in the given unit"
// @Param purity query string false "Purity label, defaults to 24k"
// @Param unit query string false "Unit, defaults to gram"
// @Success 200 {object} domain.GoldValue
// @Failure 400 {object} errorResponse
// @Router /calculator [get]
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	code := gold.NormalizeCode(query.Get("currency"))
	if err := gold.ValidateCode(code); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	weight, err := gold.ParseWeight(query.Get("weight"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	value := h.service.Value(code, gold.ParsePurity(query.Get("purity")), gold.ParseUnit(query.Get("unit")), weight)
	writeJSON(w, http.StatusOK, value)
}
