package gradingtests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/launchdarkly/grading-contract-tests/framework"

	"github.com/alessio/shellescape"
	"github.com/pkg/errors"
)

const (
	healthCheckTimeout = time.Second * 5
	requestTimeout     = time.Second * 10
	uploadTimeout      = time.Second * 30
)

// backendClient issues requests to the grading backend on behalf of a test. Every request
// goes through the harness's HTTP client, so cookies set by a login are sent with later
// requests.
type backendClient struct {
	harness *framework.TestHarness
}

type backendRequest struct {
	method   string
	path     string
	query    url.Values
	jsonBody interface{}
	upload   *fileUpload
	timeout  time.Duration
}

// fileUpload is a multipart/form-data body with one file part and some plain fields.
type fileUpload struct {
	fieldName   string
	filePath    string
	contentType string
	fields      []formField
}

type formField struct {
	name  string
	value string
}

type backendResponse struct {
	status int
	body   []byte
}

// decodeJSON decodes the response body. The error text includes the body so that a
// shape mismatch can be diagnosed from the report alone.
func (r backendResponse) decodeJSON(target interface{}) error {
	if err := json.Unmarshal(r.body, target); err != nil {
		return errors.Wrapf(err, "malformed response %s", framework.BodyExcerpt(r.body))
	}
	return nil
}

func (c *backendClient) do(r backendRequest, logger framework.Logger) (backendResponse, error) {
	if logger == nil {
		logger = c.harness.Logger()
	}
	target := c.harness.BackendURL(r.path)
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}
	timeout := r.timeout
	if timeout == 0 {
		timeout = requestTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var body io.Reader
	var contentType string
	repro := commandBuilder{}
	repro.add("curl", "-X", r.method, target)
	switch {
	case r.upload != nil:
		data, ct, err := r.upload.encode()
		if err != nil {
			return backendResponse{}, err
		}
		body, contentType = bytes.NewReader(data), ct
		repro.add("-F", r.upload.fieldName+"=@"+r.upload.filePath+";type="+r.upload.contentType)
		for _, f := range r.upload.fields {
			repro.add("-F", f.name+"="+f.value)
		}
	case r.jsonBody != nil:
		data, err := json.Marshal(r.jsonBody)
		if err != nil {
			return backendResponse{}, err
		}
		body, contentType = bytes.NewReader(data), "application/json"
		repro.add("-H", "Content-Type: application/json", "-d", string(data))
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return backendResponse{}, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	logger.Printf("Request: %s", repro)
	resp, err := c.harness.HTTPClient().Do(req)
	if err != nil {
		logger.Printf("Request failed: %s", err)
		return backendResponse{}, errors.Wrapf(err, "%s %s", r.method, r.path)
	}
	defer resp.Body.Close()
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return backendResponse{}, errors.Wrapf(err, "reading response to %s %s", r.method, r.path)
	}
	logger.Printf("Response: HTTP %d\n%s", resp.StatusCode, framework.BodyExcerpt(data))
	return backendResponse{status: resp.StatusCode, body: data}, nil
}

func (u *fileUpload) encode() ([]byte, string, error) {
	f, err := os.Open(u.filePath)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+u.fieldName+`"; filename="`+escapeQuotes(filepath.Base(u.filePath))+`"`)
	header.Set("Content-Type", u.contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", errors.Wrapf(err, "reading %s", u.filePath)
	}
	for _, field := range u.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// commandBuilder assembles a shell command line, quoting each argument.
type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
