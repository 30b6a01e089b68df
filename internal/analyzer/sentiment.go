package analyzer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Sentiment is one asset's market-mood verdict from the AI provider.
type Sentiment struct {
	Word     string // good, ok, bad
	Analysis string
}

// SentimentProvider returns sentiment verdicts for a batch of symbols.
// Implementations are best-effort: an empty map means neutral everywhere.
type SentimentProvider interface {
	Bulk(symbols []string) map[string]Sentiment
}

// NoopSentiment is used when no API key is configured.
type NoopSentiment struct{}

func (NoopSentiment) Bulk([]string) map[string]Sentiment { return nil }

// ChatSentiment asks an OpenAI-compatible chat-completions endpoint for a
// bulk sentiment verdict, one prompt for all symbols.
type ChatSentiment struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewChatSentiment(apiURL, apiKey, model string, log zerolog.Logger) *ChatSentiment {
	return &ChatSentiment{
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        log.With().Str("component", "sentiment").Logger(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Bulk fetches sentiment for all symbols in one request. Failures degrade
// to neutral rather than failing the analysis.
func (s *ChatSentiment) Bulk(symbols []string) map[string]Sentiment {
	prompt := fmt.Sprintf(`Analyze the current overall market sentiment for the following cryptocurrencies: %s.
Return EXACTLY a valid JSON object.
The JSON must follow this exact structure:
{
    "SYMBOL-USD": {
        "sentiment": "good" | "ok" | "bad",
        "analysis": "A brief 1 to 2 sentence justification explaining why this sentiment was chosen based on current market conditions."
    }
}
Ensure every symbol in the list is included as a key.`, strings.Join(symbols, ", "))

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a quantitative crypto analyst. You only respond in strictly formatted JSON."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.2,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Warn().Err(err).Msg("Sentiment request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warn().Int("status", resp.StatusCode).Msg("Sentiment request rejected")
		return nil
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil || len(chat.Choices) == 0 {
		s.log.Warn().Err(err).Msg("Sentiment response malformed")
		return nil
	}

	return parseSentimentJSON(chat.Choices[0].Message.Content, s.log)
}

// parseSentimentJSON decodes the model's JSON verdict, tolerating markdown
// code fences around the payload.
func parseSentimentJSON(text string, log zerolog.Logger) map[string]Sentiment {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw map[string]struct {
		Sentiment string `json:"sentiment"`
		Analysis  string `json:"analysis"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		log.Warn().Err(err).Msg("Sentiment JSON parse failed")
		return nil
	}

	out := make(map[string]Sentiment, len(raw))
	for sym, v := range raw {
		out[strings.ToUpper(sym)] = Sentiment{
			Word:     strings.ToLower(v.Sentiment),
			Analysis: v.Analysis,
		}
	}
	return out
}
