package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the hit-counting collaborator over plain HTTP. It is
// deliberately forgiving: callers treat Hit errors as droppable and Views
// errors as "zero views everywhere".
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 2 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type hitBody struct {
	App       string    `json:"app"`
	URI       string    `json:"uri"`
	IP        string    `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
}

type viewStat struct {
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

// Hit records one read of uri from ip.
func (c *Client) Hit(ctx context.Context, app, uri, ip string, ts time.Time) error {
	body, err := json.Marshal(hitBody{App: app, URI: uri, IP: ip, Timestamp: ts.UTC()})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("stats hit: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Views returns unique-view counts per uri. A uri the collaborator has never
// seen is simply absent from the map; callers read absence as zero.
func (c *Client) Views(ctx context.Context, uris []string) (map[string]int64, error) {
	q := url.Values{}
	for _, u := range uris {
		q.Add("uris", u)
	}
	q.Set("unique", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats views: unexpected status %d", resp.StatusCode)
	}

	var stats []viewStat
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(stats))
	for _, s := range stats {
		out[s.URI] = s.Hits
	}
	return out, nil
}
