package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

type Client struct {
	config      *ClientConfig
	restyClient *resty.Client
	encoder     *zstd.Encoder
	decoder     *zstd.Decoder
}

// NewClient creates a client for the selection API at config.BaseURL.
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil || config.BaseURL == "" {
		return nil, fmt.Errorf("configuration with a base url is required")
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout
	}
	if config.RetryWait == 0 {
		config.RetryWait = DefaultRetryWait
	}

	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(config.BaseURL, "/")).
		SetTimeout(config.Timeout).
		SetRetryCount(config.RetryMax).
		SetRetryWaitTime(config.RetryWait).
		SetRetryMaxWaitTime(config.RetryWait * 2).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	client := &Client{
		config:      config,
		restyClient: restyClient,
	}

	if config.ZstdCompression {
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			encoder.Close()
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		client.encoder = encoder
		client.decoder = decoder
	}
	return client, nil
}

// Close cleans up client resources
func (c *Client) Close() {
	if c.encoder != nil {
		c.encoder.Close()
	}
	if c.decoder != nil {
		c.decoder.Close()
	}
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	resp, err := c.restyClient.R().SetContext(ctx).Get(HealthRoute)
	if err != nil {
		return HealthResponse{}, fmt.Errorf("get %s: %w", HealthRoute, err)
	}
	return decodeResponse[HealthResponse](resp.Body(), resp.StatusCode())
}

// Select posts a selection request and returns the server's answer.
func (c *Client) Select(ctx context.Context, req SelectRequest) (SelectResponse, error) {
	body, err := sonic.Marshal(req)
	if err != nil {
		return SelectResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	r := c.restyClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if c.encoder != nil {
		body = c.encoder.EncodeAll(body, nil)
		r = r.SetHeader("Content-Encoding", "zstd").
			SetHeader("Accept-Encoding", "zstd")
	}

	log.Trace().
		Str("endpoint", SelectRoute).
		Str("strategy", req.Strategy).
		Int("samples", len(req.Labels)).
		Msg("Sending select request")

	resp, err := r.SetBody(body).Post(SelectRoute)
	if err != nil {
		return SelectResponse{}, fmt.Errorf("post %s: %w", SelectRoute, err)
	}

	data := resp.Body()
	if c.decoder != nil && strings.Contains(strings.ToLower(resp.Header().Get("Content-Encoding")), "zstd") {
		data, err = c.decoder.DecodeAll(data, nil)
		if err != nil {
			return SelectResponse{}, fmt.Errorf("failed to decompress response: %w", err)
		}
	}

	return decodeResponse[SelectResponse](data, resp.StatusCode())
}

func decodeResponse[T any](data []byte, status int) (T, error) {
	var out StdResponse[T]
	if err := sonic.Unmarshal(data, &out); err != nil {
		var zero T
		if status >= 400 {
			return zero, fmt.Errorf("request returned status %d: %s", status, string(data))
		}
		return zero, fmt.Errorf("unmarshal response: %w", err)
	}
	if out.Error != nil {
		return out.Body, fmt.Errorf("request returned status %d: %s", status, *out.Error)
	}
	if status >= 400 {
		return out.Body, fmt.Errorf("request returned status %d", status)
	}
	return out.Body, nil
}
