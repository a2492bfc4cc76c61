// Package translate delegates text translation to an OpenAI-compatible
// chat-completions API, falling back to the untranslated input when no
// credential is configured or the provider rejects the call for quota
// reasons.
package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mkravets/lingochat-server/internal/language"
)

// Provider names reported by Translator.Provider.
const (
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
)

// Credentials selects and authenticates a completion provider. OpenRouter
// takes precedence when both keys are set.
type Credentials struct {
	OpenRouterKey string
	OpenAIKey     string
	Referer       string
	Title         string
}

// Translator is the translation gateway. A zero-credential translator is
// valid and echoes input text back unchanged.
type Translator struct {
	client   *Client
	provider string
	log      *zerolog.Logger
}

// New builds a translator for whichever provider the credentials select.
func New(creds Credentials, logger *zerolog.Logger, opts ...ClientOption) *Translator {
	t := &Translator{log: logger}

	switch {
	case creds.OpenRouterKey != "":
		t.provider = ProviderOpenRouter
		t.client = NewClient(OpenRouterBaseURL, creds.OpenRouterKey, OpenRouterModel,
			append([]ClientOption{WithReferer(creds.Referer, creds.Title)}, opts...)...)
	case creds.OpenAIKey != "":
		t.provider = ProviderOpenAI
		t.client = NewClient(OpenAIBaseURL, creds.OpenAIKey, OpenAIModel, opts...)
	}

	return t
}

// Configured reports whether any provider credential is present.
func (t *Translator) Configured() bool {
	return t.client != nil
}

// Provider returns the active provider name, or empty when unconfigured.
func (t *Translator) Provider() string {
	return t.provider
}

// Translate renders text into the target language. Source defaults to "auto"
// (provider-side detection). Callers must not assume the result differs from
// the input: with no credential, or when the provider fails for quota/billing
// reasons, the original text comes back with a nil error.
func (t *Translator) Translate(ctx context.Context, text, targetLanguage, sourceLanguage string) (string, error) {
	if !t.Configured() {
		t.log.Debug().Msg("no translation credential configured, returning original text")
		return text, nil
	}

	if sourceLanguage == "" {
		sourceLanguage = "auto"
	}

	system, user := buildPrompt(text, targetLanguage, sourceLanguage)

	result, err := t.client.Complete(ctx, system, user)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsQuota() {
			t.log.Warn().Msg("completion api quota exceeded, returning original text")
			return text, nil
		}
		return "", fmt.Errorf("translate: %w", err)
	}

	return stripQuotes(strings.TrimSpace(result)), nil
}

func buildPrompt(text, targetLanguage, sourceLanguage string) (system, user string) {
	targetName := languageName(targetLanguage)

	sourceName := "the source language"
	if sourceLanguage != "auto" {
		sourceName = languageName(sourceLanguage)
	}

	system = fmt.Sprintf("You are a professional translator. Your task is to translate the entire text accurately from %s to %s. "+
		"Translate the complete message maintaining the meaning, tone, and context. "+
		"Return ONLY the translated text in %s, nothing else - no explanations, no additional text, just the translation.",
		sourceName, targetName, targetName)
	user = fmt.Sprintf("Translate this text to %s: %q", targetName, text)
	return system, user
}

func languageName(code string) string {
	if name, ok := language.Name(code); ok {
		return name
	}
	return code
}

// stripQuotes removes one leading and one trailing quote character the model
// sometimes wraps its answer in. The two ends are trimmed independently.
func stripQuotes(s string) string {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return s
}
