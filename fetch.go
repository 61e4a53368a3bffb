package xmlparser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// WebClient fetches remote documents and hands their bodies to the parser.
// It owns the connection lifecycle the same way Load owns the file handle:
// the parser itself never opens or closes anything.
type WebClient struct {
	client    *retryablehttp.Client
	userAgent string
	cfg       config
}

func NewClient(opts ...Option) *WebClient {
	cfg := newConfig(opts)

	client := retryablehttp.NewClient()
	client.HTTPClient = cleanhttp.DefaultClient()
	client.RetryMax = 3
	client.Logger = cfg.log

	return &WebClient{
		client:    client,
		userAgent: "xmlParser/1.0",
		cfg:       cfg,
	}
}

func (c *WebClient) SetUserAgent(agent string) {
	c.userAgent = agent
}

func (c *WebClient) SetRetryMax(n int) {
	c.client.RetryMax = n
}

// HTTPClient exposes the underlying client for callers that need to tune
// transport details.
func (c *WebClient) HTTPClient() *http.Client {
	return c.client.HTTPClient
}

// Fetch retrieves url and returns the raw body.
func (c *WebClient) Fetch(url string) ([]byte, error) {
	req, err := retryablehttp.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// FetchParse retrieves url and parses the body into a document. A leading
// declaration line is validated and skipped when present; remote documents
// are allowed to omit it.
func (c *WebClient) FetchParse(url string) (*Document, error) {
	data, err := c.Fetch(url)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(bytes.NewReader(data))
	if peeked, _ := br.Peek(2); bytes.Equal(peeked, []byte("<?")) {
		if err := readDeclaration(br); err != nil {
			return nil, fmt.Errorf("%s: %w", url, err)
		}
	}

	root, err := newParser(br, c.cfg).Parse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}

	return &Document{Path: url, root: root, limit: c.cfg.limit, log: c.cfg.log}, nil
}
