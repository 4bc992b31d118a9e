// Package pinnacle fetches live event odds from the Pinnacle relay API.
package pinnacle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oddscout/oddscout/internal/pkg/models"
)

const (
	defaultBaseURL = "https://swordfish-production.up.railway.app"
	defaultOrigin  = "https://www.pinnacleoddsdropper.com"
)

type Client struct {
	baseURL    string
	origin     string
	httpClient *http.Client
}

func NewClient(baseURL, origin string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if origin == "" {
		origin = defaultOrigin
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		origin:     strings.TrimSuffix(origin, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// eventResponse is the relay's envelope. Some deployments return the event
// detail at the top level instead; FetchEvent handles both.
type eventResponse struct {
	Data *models.PinnacleSnapshot `json:"data"`
}

// FetchEvent fetches all live lines for one event.
func (c *Client) FetchEvent(ctx context.Context, eventID string) (*models.PinnacleSnapshot, error) {
	rawURL := c.baseURL + "/events/" + eventID
	body, err := c.doRequest(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	var envelope eventResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshal event response: %w", err)
	}
	snap := envelope.Data
	if snap == nil {
		snap = &models.PinnacleSnapshot{}
		if err := json.Unmarshal(body, snap); err != nil {
			return nil, fmt.Errorf("unmarshal event detail: %w", err)
		}
	}
	if len(snap.Periods) == 0 {
		return nil, fmt.Errorf("event %s: no periods in response", eventID)
	}
	snap.EventID = eventID
	return snap, nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

// The relay only answers requests that look like they came from the odds
// dropper frontend.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "*/*")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/136.0.0.0 Safari/537.36")
	req.Header.Set("Origin", c.origin)
	req.Header.Set("Referer", c.origin+"/")
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "cross-site")
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
