package testrail

import (
	"net/http"
	"strings"
)

// Reserved URI prefixes the API uses to signal attachment semantics instead
// of JSON payloads.
const (
	uploadCommandPrefix   = "add_attachment"
	downloadCommandPrefix = "get_attachment/"
)

type requestKind int

const (
	requestJSON requestKind = iota
	requestAttachmentUpload
	requestAttachmentDownload
)

// classify maps a method and URI suffix onto the request kind that decides
// how the body is built and how the response is consumed. The API dispatches
// on URI prefixes alone, so the string matching lives here in one place.
func classify(method, uri string) requestKind {
	switch {
	case method == http.MethodPost && strings.HasPrefix(uri, uploadCommandPrefix):
		return requestAttachmentUpload
	case method == http.MethodGet && strings.HasPrefix(uri, downloadCommandPrefix):
		return requestAttachmentDownload
	default:
		return requestJSON
	}
}
