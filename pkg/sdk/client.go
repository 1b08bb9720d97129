package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the local development API address.
	DefaultBaseURL = "http://localhost:5000/api"
	// DefaultTimeout bounds every request.
	DefaultTimeout = 10 * time.Second
	// RequestIDHeader correlates a request with API-side logs.
	RequestIDHeader = "X-Request-ID"
)

// Client provides a high-level interface to the SweetShelf REST API.
// The bearer token is read from the SessionStore when each request is sent,
// so a login or logout is picked up by the next call without rebuilding the client.
type Client struct {
	rest    *resty.Client
	store   SessionStore
	logger  *zap.Logger
	baseURL string
}

// ClientOptions configures SDK client construction.
type ClientOptions struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *zap.Logger
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for requests. The client is
// copied, so the caller's Timeout is left alone.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithTimeout overrides DefaultTimeout. Tests use it to exercise deadline handling quickly.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.Timeout = timeout
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(opts *ClientOptions) {
		opts.Logger = logger
	}
}

// NewClient creates a client for the API at baseURL. store may be nil, in
// which case requests are sent without credentials.
func NewClient(baseURL string, store SessionStore, optFns ...ClientOption) *Client {
	opts := ClientOptions{
		Timeout: DefaultTimeout,
		Logger:  zap.NewNop(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	var rest *resty.Client
	if opts.HTTPClient != nil {
		httpClient := *opts.HTTPClient
		rest = resty.NewWithClient(&httpClient)
	} else {
		rest = resty.New()
	}
	rest.SetBaseURL(baseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	c := &Client{
		rest:    rest,
		store:   store,
		logger:  opts.Logger.With(zap.String("destination", baseURL)),
		baseURL: baseURL,
	}

	rest.OnBeforeRequest(c.setRequestID)
	rest.SetPreRequestHook(c.attachCredential)
	rest.OnAfterResponse(c.logResponse)
	rest.OnError(c.logError)

	return c
}

// BaseURL returns the normalized API address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) setRequestID(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(RequestIDHeader) == "" {
		req.SetHeader(RequestIDHeader, uuid.NewString())
	}
	return nil
}

// attachCredential runs on the final *http.Request, right before it is sent.
func (c *Client) attachCredential(_ *resty.Client, r *http.Request) error {
	if c.store == nil {
		return nil
	}
	token, ok := c.store.Get()
	if !ok {
		r.Header.Del("Authorization")
		return nil
	}
	(&oauth2.Token{AccessToken: string(token), TokenType: "Bearer"}).SetAuthHeader(r)
	return nil
}

func (c *Client) logResponse(_ *resty.Client, resp *resty.Response) error {
	c.logger.Debug("http call completed",
		zap.String("method", resp.Request.Method),
		zap.String("url", resp.Request.URL),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", resp.Time()),
		zap.String("request_id", resp.Request.Header.Get(RequestIDHeader)),
	)
	return nil
}

func (c *Client) logError(req *resty.Request, err error) {
	c.logger.Debug("http call failed",
		zap.String("method", req.Method),
		zap.String("url", req.URL),
		zap.String("request_id", req.Header.Get(RequestIDHeader)),
		zap.Error(err),
	)
}

type request struct {
	op         string
	method     string
	path       string
	pathParams map[string]string
	body       any
	out        any
}

func (c *Client) do(ctx context.Context, r request) error {
	req := c.rest.R().SetContext(ctx)
	if len(r.pathParams) > 0 {
		req.SetPathParams(r.pathParams)
	}
	if r.body != nil {
		req.SetBody(r.body)
	}

	resp, err := req.Execute(r.method, r.path)
	if err != nil {
		if isTransportError(err) {
			return &NetworkError{Op: r.op, Err: err}
		}
		return fmt.Errorf("%s: failed to build request: %w", r.op, err)
	}
	if !resp.IsSuccess() {
		return responseError(resp)
	}

	if r.out != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), r.out); err != nil {
			return fmt.Errorf("%s: failed to decode response: %w", r.op, err)
		}
	}
	return nil
}

// isTransportError reports whether err came from sending the request rather
// than from preparing it (for example an unencodable body).
func isTransportError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func responseError(resp *resty.Response) error {
	var body errorBody
	_ = json.Unmarshal(resp.Body(), &body)
	message := body.Message
	if message == "" {
		message = body.Error
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return &AuthError{StatusCode: resp.StatusCode(), Message: message}
	}
	return &ServerError{StatusCode: resp.StatusCode(), Message: message}
}
