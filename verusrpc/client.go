package verusrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/verus-stats/market-api/config"
	"github.com/verus-stats/market-api/metrics"
)

// RPCError is an error object returned by the daemon itself, as opposed
// to a transport failure. Daemon errors are never retried.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("verusd rpc error %d: %s", e.Code, e.Message)
}

// Daemon error codes that mean "the requested object does not exist"
const (
	rpcInvalidAddressOrKey = -5
	rpcInvalidParameter    = -8
)

func isNotFoundCode(code int) bool {
	return code == rpcInvalidAddressOrKey || code == rpcInvalidParameter
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// Client is a JSON-RPC 2.0 client for the Verus daemon with retry,
// backoff and outbound rate limiting.
type Client struct {
	cfg        config.RPCConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a daemon client from configuration
func NewClient(cfg config.RPCConfig) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.ConnectionTimeout,
				}).DialContext,
			},
		},
		limiter: rate.NewLimiter(limit, burst),
	}
}

// call executes one RPC method and unmarshals its result into out.
// Transport failures and retryable HTTP statuses are retried with
// exponential backoff and jitter; daemon-level errors are returned as-is.
func (c *Client) call(ctx context.Context, method string, params []interface{}, out interface{}) error {
	if params == nil {
		params = []interface{}{}
	}
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "1.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", method, err)
	}

	maxAttempts := c.cfg.MaxRetries
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	start := time.Now()
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := backoffWithJitter(time.Second, attempt)
			log.Printf("VerusRPC: retry %d/%d for %s after error: %v (waiting %.2fs)",
				attempt, maxAttempts-1, method, lastErr, backoff.Seconds())
			select {
			case <-ctx.Done():
				metrics.RecordRPCRequest(method, "error", start)
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			metrics.RecordRPCRequest(method, "error", start)
			return fmt.Errorf("rate limiter wait failed: %w", err)
		}

		body, err := c.post(ctx, payload)
		if err != nil {
			lastErr = err
			continue
		}

		var resp rpcResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			lastErr = fmt.Errorf("decoding %s response: %w", method, err)
			continue
		}
		if resp.Error != nil {
			metrics.RecordRPCRequest(method, "error", start)
			return resp.Error
		}

		if out != nil {
			if err := json.Unmarshal(resp.Result, out); err != nil {
				metrics.RecordRPCRequest(method, "error", start)
				return fmt.Errorf("decoding %s result: %w", method, err)
			}
		}

		metrics.RecordRPCRequest(method, "success", start)
		return nil
	}

	metrics.RecordRPCRequest(method, "error", start)
	return fmt.Errorf("all %d attempts for %s failed, last error: %w", maxAttempts, method, lastErr)
}

func (c *Client) post(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.User != "" {
		req.SetBasicAuth(c.cfg.User, c.cfg.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	// The daemon wraps rpc errors in 500s with a JSON body; let the
	// caller surface those instead of retrying them away
	if resp.StatusCode != http.StatusOK && !looksLikeRPCBody(body) {
		return nil, fmt.Errorf("daemon returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func looksLikeRPCBody(body []byte) bool {
	var probe rpcResponse
	return json.Unmarshal(body, &probe) == nil && (probe.Error != nil || probe.Result != nil)
}

func backoffWithJitter(base time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return base
	}
	multiplier := uint(1) << uint(attempt-1)
	backoff := time.Duration(float64(base) * float64(multiplier))
	jitter := time.Duration(rand.Int63n(int64(backoff/2) + 1))
	return backoff + jitter
}
