package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

// Client calls the external emotion classification service over HTTP.
// The service wraps a pretrained transformer model; inference can be
// slow, hence the generous timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("emotion service base URL is required")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 25 * time.Second},
	}, nil
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// Classify implements domain.EmotionClassifier against POST /predict.
func (c *Client) Classify(ctx context.Context, text string) (domain.EmotionResult, error) {
	body, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return domain.EmotionResult{}, fmt.Errorf("encoding predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return domain.EmotionResult{}, fmt.Errorf("building predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return domain.EmotionResult{}, fmt.Errorf("calling emotion service: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return domain.EmotionResult{}, fmt.Errorf("emotion service returned status %d", res.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return domain.EmotionResult{}, fmt.Errorf("decoding predict response: %w", err)
	}

	return domain.EmotionResult{
		Label:      domain.Emotion(strings.ToLower(out.Emotion)),
		Confidence: out.Confidence,
	}, nil
}
