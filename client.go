package testrail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
)

// apiPath is the fixed path suffix every API request goes through.
const apiPath = "index.php?/api/v2/"

// attachmentBoundary is the fixed multipart boundary token the API expects
// for attachment uploads.
const attachmentBoundary = "TestRailAPIAttachmentBoundary"

// attachmentFieldName is the form-data part name for uploaded files.
const attachmentFieldName = "attachment"

// Client is a binding for the TestRail API. Construct it with [New]; the
// zero value is not usable. Concurrent calls on one Client are safe as long
// as [Client.SetCredentials] is not racing them.
type Client struct {
	baseURL string
	options *Options
	http    *resty.Client
}

// New creates a Client for the API rooted at baseURL, authenticating every
// request with the given username and password. The base URL is normalized
// to end with exactly one slash before the fixed API path is appended.
func New(baseURL, username, password string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base URL must be set")
	}

	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	httpClient := resty.New()
	httpClient.SetDisableWarn(true)
	httpClient.SetBasicAuth(username, password)
	httpClient.SetHeaders(options.requestHeaders)

	if options.timeout > 0 {
		httpClient.SetTimeout(options.timeout)
	}

	return &Client{
		baseURL: baseURL + apiPath,
		options: options,
		http:    httpClient,
	}, nil
}

// SetCredentials replaces the username and password used for subsequent
// requests. It must not be called concurrently with in-flight requests.
func (c *Client) SetCredentials(username, password string) {
	c.http.SetBasicAuth(username, password)
}

// Close releases idle connections held by the underlying transport. The
// Client must not be used after Close.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

// Get sends a GET request for the API method named by uri and returns the
// decoded JSON response. An empty response body decodes to nil. Attachment
// downloads need a destination path and must go through [Client.GetFile].
func (c *Client) Get(ctx context.Context, uri string) (any, error) {
	if classify(http.MethodGet, uri) == requestAttachmentDownload {
		return nil, fmt.Errorf("GET %s: attachment download requires a destination path, use GetFile", uri)
	}

	c.options.requestLogger.Debugf("GET %s", uri)

	resp, err := c.http.R().SetContext(ctx).Get(c.baseURL + uri)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", uri, err)
	}

	return c.parseResponse(resp)
}

// GetFile sends a GET request for uri and streams the raw response body to
// destPath, returning destPath on success. It is the download half of the
// attachment API ("get_attachment/..." URIs); the response body is written
// byte for byte and never JSON-decoded.
func (c *Client) GetFile(ctx context.Context, uri, destPath string) (string, error) {
	if destPath == "" {
		return "", fmt.Errorf("GET %s: destination path must be set", uri)
	}

	c.options.requestLogger.Debugf("GET %s -> %s", uri, destPath)

	resp, err := c.http.R().SetContext(ctx).SetDoNotParseResponse(true).Get(c.baseURL + uri)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", uri, err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		errBody, _ := io.ReadAll(body)
		apiErr := newAPIError(resp.StatusCode(), errBody)
		c.options.requestLogger.Errorf("GET %s: %v", uri, apiErr)
		return "", apiErr
	}

	if err := writeAttachment(destPath, body); err != nil {
		return "", fmt.Errorf("GET %s: %w", uri, err)
	}

	return destPath, nil
}

// Post sends a POST request for the API method named by uri and returns the
// decoded JSON response. For "add_attachment" URIs the payload must be the
// path of a local file to upload; for everything else the payload is
// serialized to JSON, and a nil payload sends an empty body.
func (c *Client) Post(ctx context.Context, uri string, payload any) (any, error) {
	if classify(http.MethodPost, uri) == requestAttachmentUpload {
		filePath, ok := payload.(string)
		if !ok {
			return nil, fmt.Errorf("POST %s: attachment payload must be a file path string, got %T", uri, payload)
		}
		return c.postAttachment(ctx, uri, filePath)
	}

	return c.postJSON(ctx, uri, payload)
}

func (c *Client) postJSON(ctx context.Context, uri string, payload any) (any, error) {
	c.options.requestLogger.Debugf("POST %s", uri)

	req := c.http.R().SetContext(ctx).SetHeader("Content-Type", "application/json")

	if payload != nil {
		// Marshal here rather than letting the transport guess: a plain
		// string payload must still go on the wire as a JSON string.
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("POST %s: marshal payload: %w", uri, err)
		}
		req.SetBody(body)
	}

	resp, err := req.Post(c.baseURL + uri)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", uri, err)
	}

	return c.parseResponse(resp)
}

func (c *Client) postAttachment(ctx context.Context, uri, filePath string) (any, error) {
	c.options.requestLogger.Debugf("POST %s <- %s", uri, filePath)

	body, contentType, err := attachmentBody(filePath)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", uri, err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Post(c.baseURL + uri)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", uri, err)
	}

	return c.parseResponse(resp)
}

// parseResponse converts a completed exchange into a decoded JSON value or
// an error. Any status other than 200 is an *APIError; an empty 200 body is
// a nil result, not a decode failure.
func (c *Client) parseResponse(resp *resty.Response) (any, error) {
	if resp.StatusCode() != http.StatusOK {
		apiErr := newAPIError(resp.StatusCode(), resp.Body())
		c.options.requestLogger.Errorf("%s %s: %v", resp.Request.Method, resp.Request.URL, apiErr)
		return nil, apiErr
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil, nil
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse response body: %w", err)
	}

	return result, nil
}

// attachmentBody builds the single-part multipart/form-data body for an
// upload, using the fixed boundary the API expects.
func attachmentBody(filePath string) (*bytes.Buffer, string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("open attachment: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.SetBoundary(attachmentBoundary); err != nil {
		return nil, "", fmt.Errorf("build multipart body: %w", err)
	}

	part, err := writer.CreateFormFile(attachmentFieldName, filepath.Base(filePath))
	if err != nil {
		return nil, "", fmt.Errorf("build multipart body: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("read attachment: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("build multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

// writeAttachment streams body to a freshly created file at destPath.
func writeAttachment(destPath string, body io.Reader) error {
	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create attachment file: %w", err)
	}

	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		return fmt.Errorf("write attachment file: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("write attachment file: %w", err)
	}

	return nil
}
