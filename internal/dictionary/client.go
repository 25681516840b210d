package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go-object-recognizer/internal/logger"

	"github.com/sirupsen/logrus"
)

// Lookup messages surfaced as the definition when resolution fails.
// They are rendered inline per entry, never returned as errors.
const (
	msgNoAPIKey       = "API key not configured."
	msgNoResults      = "No results found."
	msgInvalidFormat  = "Invalid API response format."
	msgNetworkFailure = "Network error while fetching definition."
	msgProcessFailure = "Error processing definition."
)

// Resolver resolves a normalized word to a single definition string.
type Resolver interface {
	Lookup(ctx context.Context, word string) string
}

// Client resolves words against the Merriam-Webster collegiate
// dictionary API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a dictionary client with a bounded request
// timeout. A short timeout matters here: every page render blocks on
// one lookup per entry.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Lookup fetches a definition for the word. Every failure mode maps to
// a distinct user-visible string; Lookup never returns an error.
func (c *Client) Lookup(ctx context.Context, word string) string {
	if c.apiKey == "" {
		logger.Error("dictionary API key not configured")
		return msgNoAPIKey
	}

	reqURL := fmt.Sprintf("%s/%s?key=%s", c.baseURL, url.PathEscape(word), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		logger.WithError(err).WithField("word", word).Error("Failed to build dictionary request")
		return msgProcessFailure
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).WithField("word", word).Error("Dictionary request failed")
		return msgNetworkFailure
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.WithFields(logrus.Fields{
			"word":   word,
			"status": resp.StatusCode,
		}).Warn("Dictionary API returned non-200 status")
		return fmt.Sprintf("API error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).WithField("word", word).Error("Failed to read dictionary response")
		return msgNetworkFailure
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		if json.Valid(body) {
			// Parseable JSON that is not a list means no match.
			logger.WithField("word", word).Info("No dictionary results found")
			return msgNoResults
		}
		logger.WithError(err).WithField("word", word).Error("Failed to decode dictionary response")
		return msgProcessFailure
	}
	if len(entries) == 0 {
		logger.WithField("word", word).Info("No dictionary results found")
		return msgNoResults
	}

	// The API returns bare suggestion strings instead of entry records
	// when the word is unknown; only an object is a real entry.
	first := bytes.TrimSpace(entries[0])
	if len(first) == 0 || first[0] != '{' {
		logger.WithField("word", word).Warn("Unexpected dictionary entry shape")
		return msgInvalidFormat
	}

	var entry Entry
	if err := json.Unmarshal(first, &entry); err != nil {
		logger.WithError(err).WithField("word", word).Warn("Unexpected dictionary entry shape")
		return msgInvalidFormat
	}

	return entry.Definition()
}
