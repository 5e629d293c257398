package openf1

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"openf1lapexport/pkg/caster"

	"github.com/pkg/errors"
)

const (
	DefaultBaseURL = "https://api.openf1.org/v1/"

	endpointMeetings = "meetings"
	endpointSessions = "sessions"
	endpointDrivers  = "drivers"
	endpointLaps     = "laps"
)

type Client struct {
	baseURL    string
	outputDir  string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient returns a client for the API rooted at baseURL that writes its
// exports to outputDir. Empty values fall back to DefaultBaseURL and the
// working directory.
func NewClient(baseURL, outputDir string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if outputDir == "" {
		outputDir = "."
	}
	return &Client{
		baseURL:    baseURL,
		outputDir:  outputDir,
		httpClient: http.DefaultClient,
		now:        time.Now,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) buildURL(endpoint string, params Params) string {
	url := c.baseURL + endpoint
	if len(params) > 0 {
		url += "?" + params.Encode()
	}
	return url
}

// Fetch performs a GET against endpoint and returns the raw body of a 200
// response.
func (c *Client) Fetch(ctx context.Context, endpoint string, params Params) ([]byte, error) {
	// Make a get request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(endpoint, params), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", endpoint)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "requesting %s", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RemoteRequestError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s response", endpoint)
	}
	return body, nil
}

func fetchList[T any](ctx context.Context, c *Client, endpoint string, params Params) ([]T, error) {
	body, err := c.Fetch(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	records, err := caster.JSONCaster[[]T]{}.From(body)
	if err != nil {
		return nil, &MalformedResponseError{Endpoint: endpoint, Err: err}
	}
	return records, nil
}
