package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"goldprice/internal/domain"
	"goldprice/internal/language"

	"github.com/sirupsen/logrus"
)

type GetLanguageResponse struct {
	Language  domain.Language   `json:"language" example:"en"`
	Supported []domain.Language `json:"supported"`
}

type SetLanguageRequest struct {
	Language string `json:"language"`
}

type GetMessagesResponse struct {
	Language domain.Language               `json:"language" example:"fr"`
	Messages map[language.MessageKey]string `json:"messages"`
}

// GetLanguage godoc
// @Summary Active UI language
// @Tags Preferences
// @Produce json
// @Success 200 {object} GetLanguageResponse
// @Router /preferences/language [get]
func (h *Handler) GetLanguage(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GetLanguageResponse{
		Language:  h.language.Get(),
		Supported: domain.Languages(),
	})
}

// SetLanguage godoc
// @Summary Change the UI language
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body SetLanguageRequest true "Language code"
// @Success 200 {object} GetLanguageResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /preferences/language [put]
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req SetLanguageRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	code := strings.ToLower(strings.TrimSpace(req.Language))
	if err := h.language.Set(r.Context(), code); err != nil {
		if errors.Is(err, domain.ErrUnsupportedLanguage) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		msg := "ups, couldn't save language preference this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "SetLanguage", "language": code}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, GetLanguageResponse{
		Language:  h.language.Get(),
		Supported: domain.Languages(),
	})
}

// GetMessages godoc
// @Summary Translated UI messages
// @Description Messages for the requested language, or the active one. Missing entries fall back to English.
// @Tags Preferences
// @Produce json
// @Param lang query string false "Language code"
// @Success 200 {object} GetMessagesResponse
// @Failure 400 {object} errorResponse
// @Router /messages [get]
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	lang := h.language.Get()
	if raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("lang"))); raw != "" {
		parsed, err := domain.ParseLanguage(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		lang = parsed
	}

	writeJSON(w, http.StatusOK, GetMessagesResponse{
		Language: lang,
		Messages: language.Messages(lang),
	})
}
