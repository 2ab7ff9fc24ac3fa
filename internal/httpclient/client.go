// Package httpclient executes request descriptors produced by the registry
// dispatcher. It owns body encoding, auth header injection and status-code
// mapping; it never retries.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/hathora/hathora-go/pkg/api"
	"github.com/hathora/hathora-go/pkg/registry"
)

const tracerName = "github.com/hathora/hathora-go/internal/httpclient"

// HTTPClient is the interface the transport needs from an HTTP client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is the raw outcome of one executed descriptor.
type Response struct {
	StatusCode  int
	Header      http.Header
	ContentType string
	Body        []byte
}

// IsJSON reports whether the response body is a JSON document.
func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType, "application/json")
}

// IsAudio reports whether the response body looks like audio, either by
// content type or by magic bytes (RIFF/WAV, MP3 frame sync).
func (r *Response) IsAudio() bool {
	if strings.Contains(r.ContentType, "audio") {
		return true
	}
	if len(r.Body) >= 4 && bytes.Equal(r.Body[:4], []byte("RIFF")) {
		return true
	}
	return len(r.Body) >= 2 && r.Body[0] == 0xff && r.Body[1] == 0xfb
}

// Send executes one request descriptor. A 401 maps to *api.AuthenticationError
// and any other non-2xx to *api.APIError; transport-level failures are
// returned as-is. Each call is wrapped in an OTel span.
func Send(ctx context.Context, client HTTPClient, desc *registry.RequestDescriptor, apiKey string, log *zap.Logger) (*Response, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, fmt.Sprintf("hathora.%s", desc.Capability))
	defer span.End()
	span.SetAttributes(
		attribute.String("hathora.model", desc.ModelKey),
		attribute.String("hathora.request_id", desc.RequestID),
		attribute.String("http.url", desc.URL),
	)

	body, contentType, err := encodeBody(desc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode")
		return nil, err
	}

	target := desc.URL
	if len(desc.Query) > 0 {
		target += "?" + desc.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, target, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("accept", "application/json")
	for k, v := range desc.Headers {
		req.Header.Set(k, v)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if desc.RequestID != "" {
		req.Header.Set("X-Request-ID", desc.RequestID)
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	log.Debug("sending request",
		zap.String("model", desc.ModelKey),
		zap.String("url", target),
		zap.String("request_id", desc.RequestID),
	)

	resp, err := client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusUnauthorized {
		span.SetStatus(codes.Error, "unauthorized")
		return nil, &api.AuthenticationError{URL: desc.URL}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		span.SetStatus(codes.Error, "upstream error")
		return nil, &api.APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
			URL:        desc.URL,
			Body:       raw,
		}
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        raw,
	}, nil
}

// DecodeJSON unmarshals a JSON response body into out.
func DecodeJSON(resp *Response, out any) error {
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func encodeBody(desc *registry.RequestDescriptor) (io.Reader, string, error) {
	switch desc.Shape {
	case registry.ShapeJSON:
		raw, err := json.Marshal(desc.JSONBody)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body: %w", err)
		}
		return bytes.NewReader(raw), "application/json", nil

	case registry.ShapeMultipart:
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		for _, part := range desc.Parts {
			if part.Reader == nil {
				if err := w.WriteField(part.Field, part.Value); err != nil {
					return nil, "", fmt.Errorf("failed to write form field %q: %w", part.Field, err)
				}
				continue
			}
			hdr := textproto.MIMEHeader{}
			hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, part.Field, part.Filename))
			if part.ContentType != "" {
				hdr.Set("Content-Type", part.ContentType)
			}
			fw, err := w.CreatePart(hdr)
			if err != nil {
				return nil, "", fmt.Errorf("failed to create form file %q: %w", part.Field, err)
			}
			if _, err := io.Copy(fw, part.Reader); err != nil {
				return nil, "", fmt.Errorf("failed to read audio for field %q: %w", part.Field, err)
			}
		}
		if err := w.Close(); err != nil {
			return nil, "", err
		}
		return buf, w.FormDataContentType(), nil

	default:
		return nil, "", fmt.Errorf("unsupported request shape %q", desc.Shape)
	}
}

// errorMessage digs the backend's error message out of the common
// {"error": {"message": ...}} envelope, falling back to the raw body.
func errorMessage(raw []byte) string {
	var envelope api.ErrorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return strings.TrimSpace(string(raw))
}
