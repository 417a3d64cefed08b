package testrail

import (
	"net/http"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		uri    string
		want   requestKind
	}{
		{"plain GET", http.MethodGet, "get_case/1", requestJSON},
		{"plain POST", http.MethodPost, "add_case/1", requestJSON},
		{"upload", http.MethodPost, "add_attachment_to_result/2677", requestAttachmentUpload},
		{"upload bare command", http.MethodPost, "add_attachment", requestAttachmentUpload},
		{"download", http.MethodGet, "get_attachment/5", requestAttachmentDownload},
		{"download needs trailing slash", http.MethodGet, "get_attachment", requestJSON},
		{"download prefix on POST is JSON", http.MethodPost, "get_attachment/5", requestJSON},
		{"upload prefix on GET is JSON", http.MethodGet, "add_attachment_to_case/1", requestJSON},
		{"download list endpoint", http.MethodGet, "get_attachments_for_case/1", requestJSON},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := classify(tt.method, tt.uri); got != tt.want {
				t.Errorf("classify(%s, %s) = %v, want %v", tt.method, tt.uri, got, tt.want)
			}
		})
	}
}
