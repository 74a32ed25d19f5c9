package location

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

const defaultNominatimEndpoint = "https://nominatim.openstreetmap.org/reverse"

// NominatimClient reverse-geocodes via the OpenStreetMap Nominatim API.
type NominatimClient struct {
	endpoint  string
	userAgent string
	http      *http.Client
}

// NewNominatimClient creates a reverse-geocoding client. An empty endpoint
// uses the public Nominatim instance.
func NewNominatimClient(endpoint, userAgent string) *NominatimClient {
	if endpoint == "" {
		endpoint = defaultNominatimEndpoint
	}
	return &NominatimClient{
		endpoint:  endpoint,
		userAgent: userAgent,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// nominatimResponse is the JSON body returned by GET /reverse.
type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// Resolve looks up the address for the given coordinates.
func (c *NominatimClient) Resolve(ctx context.Context, lat, lon float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("format", "jsonv2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling geocoder: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading geocoder response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var parsed nominatimResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding geocoder response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("geocoder error: %s", parsed.Error)
	}
	return parsed.DisplayName, nil
}
