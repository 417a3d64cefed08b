// Package testrail provides an HTTP client for the TestRail API (API v2,
// available since TestRail 3.0).
//
// The client wraps [github.com/go-resty/resty/v2] and exposes the raw request
// surface of the API: JSON calls via [Client.Get] and [Client.Post], and
// binary attachment transfer via [Client.GetFile] and [Client.Post] with the
// reserved attachment URIs.
//
// # Basic Usage
//
//	c, err := testrail.New("https://example.testrail.io", "user@example.com", "api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	result, err := c.Get(ctx, "get_case/1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The URI suffix is appended to the configured base URL verbatim; callers are
// responsible for encoding parameters the way the API expects
// (for example "get_cases/1&suite_id=2").
//
// # Results
//
// The API is schemaless from the client's point of view, so successful calls
// return the decoded JSON document as a generic value: map[string]any for
// objects, []any for arrays, string, float64, bool, or nil. Callers type-switch
// on the shape they expect. An HTTP 200 with an empty body decodes to nil
// rather than a parse error.
//
// # Attachments
//
// A POST to an "add_attachment" URI interprets the payload as a local file
// path and uploads the file as a single multipart/form-data part named
// "attachment". A download from a "get_attachment/" URI must go through
// [Client.GetFile], which streams the raw response body to the given
// destination path and returns that path.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; the
// resulting options are validated once inside [New].
//
// # Authentication
//
// Every request carries HTTP Basic authentication built from the username and
// password given to [New]. [Client.SetCredentials] replaces the credentials on
// an existing client; it must not be called concurrently with in-flight
// requests.
//
// # Errors
//
// A non-200 response surfaces as [*APIError] carrying the status code and any
// message text recoverable from the error body. Transport and file-system
// failures are returned as wrapped errors naming the method and URI, and an
// HTTP 200 body that is not valid JSON surfaces the underlying
// [encoding/json] error. Use [errors.As] to distinguish API errors from the
// rest. The client never retries and never recovers internally.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to integrate
// with your logging library, or use [NewZapLogger] for zap-based applications.
// The default [NoopLogger] discards all log output; the client never writes to
// a global logger on its own.
package testrail
