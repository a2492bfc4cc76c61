package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkravets/lingochat-server/internal/language"
	"github.com/mkravets/lingochat-server/internal/translate"
)

// APIHandlers provides HTTP handlers for REST API endpoints.
type APIHandlers struct {
	translator *translate.Translator
	log        *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(translator *translate.Translator, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{
		translator: translator,
		log:        logger,
	}
}

// TranslateRequest represents the translation request body.
type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
	SourceLanguage string `json:"sourceLanguage"`
}

// TranslateResponse represents the translation response body.
type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Languages returns the supported language descriptors.
// GET /api/languages
func (h *APIHandlers) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, language.All())
}

// Translate handles an on-demand translation request.
// POST /api/translate
func (h *APIHandlers) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid translate request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Text and targetLanguage are required"})
		return
	}
	if req.Text == "" || req.TargetLanguage == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Text and targetLanguage are required"})
		return
	}

	if !h.translator.Configured() {
		h.log.Error().Msg("translate request without configured credential")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Translation service not configured. Please set OPENROUTER_API_KEY or OPENAI_API_KEY.",
		})
		return
	}

	translated, err := h.translator.Translate(c.Request.Context(), req.Text, req.TargetLanguage, req.SourceLanguage)
	if err != nil {
		h.log.Error().Err(err).Str("target", req.TargetLanguage).Msg("translation failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TranslateResponse{TranslatedText: translated})
}
