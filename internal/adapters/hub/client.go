// Package hub implements the HubClient port against the hub's JSON admin API.
package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.trai.ch/zerr"

	"hubdeploy/internal/core/domain"
)

// maxErrorBodyBytes caps how much of a failed response body is carried in errors.
const maxErrorBodyBytes = 300

// Client implements ports.HubClient over plain HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client bound to the given hub target.
func NewClient(target domain.HubTarget) (*Client, error) {
	return newClientWithHTTP(target.Host, &http.Client{
		Timeout: target.Timeout,
	})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(host string, httpClient *http.Client) (*Client, error) {
	base, err := normalizeBaseURL(host)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:    base,
		httpClient: httpClient,
	}, nil
}

// normalizeBaseURL turns a host spec into a base URL.
// Bare hosts get an http scheme; the hub's admin API is LAN-only plain HTTP.
func normalizeBaseURL(host string) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		host = domain.DefaultHubHost
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}

	parsed, err := url.Parse(host)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrHubUnreachable.Error())
		return "", zerr.With(wrapped, "host", host)
	}

	return strings.TrimSuffix(parsed.String(), "/"), nil
}

// ListTypes fetches the installed-code catalog for the given kind.
func (c *Client) ListTypes(ctx context.Context, kind domain.Kind) ([]domain.TypeEntry, error) {
	endpoint := "/hub2/userAppTypes"
	if kind == domain.KindDriver {
		endpoint = "/hub2/userDeviceTypes"
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	// The catalog must be a JSON array; anything else means we are not
	// talking to a hub (or not to its admin interface).
	var dtos []typeEntryDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrHubResponseShape.Error())
		return nil, zerr.With(wrapped, "endpoint", endpoint)
	}

	entries := make([]domain.TypeEntry, len(dtos))
	for i, dto := range dtos {
		entries[i] = domain.TypeEntry{ID: dto.ID.Int(), Name: dto.Name}
	}
	return entries, nil
}

// FetchCode fetches the current source and version for one type.
func (c *Client) FetchCode(ctx context.Context, kind domain.Kind, id int) (domain.CodeRevision, error) {
	endpoint := "/app/ajax/code"
	if kind == domain.KindDriver {
		endpoint = "/driver/ajax/code"
	}

	body, err := c.get(ctx, endpoint+"?id="+strconv.Itoa(id))
	if err != nil {
		return domain.CodeRevision{}, err
	}

	var dto codeRevisionDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrHubResponseShape.Error())
		return domain.CodeRevision{}, zerr.With(wrapped, "endpoint", endpoint)
	}

	return domain.CodeRevision{
		Version: dto.Version.Int(),
		Source:  dto.Source,
	}, nil
}

// SaveCode uploads source for one type and returns the hub's verdict.
func (c *Client) SaveCode(ctx context.Context, kind domain.Kind, payload domain.SavePayload) (domain.SaveResult, error) {
	endpoint := "/app/saveOrUpdateJson"
	if kind == domain.KindDriver {
		endpoint = "/driver/saveOrUpdateJson"
	}

	body, err := c.post(ctx, endpoint, savePayloadDTO{
		ID:      payload.ID,
		Version: payload.Version,
		Source:  payload.Source,
	})
	if err != nil {
		return domain.SaveResult{}, err
	}

	var dto saveResponseDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrHubResponseShape.Error())
		return domain.SaveResult{}, zerr.With(wrapped, "endpoint", endpoint)
	}

	result := domain.SaveResult{
		Success: dto.Success,
		Message: dto.Message,
		Errors:  decodeErrorList(dto.Errors),
	}
	if dto.Version != nil {
		v := dto.Version.Int()
		result.Version = &v
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHubUnreachable.Error())
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode save payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHubUnreachable.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrHubUnreachable.Error())
		return nil, zerr.With(wrapped, "url", req.URL.String())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrHubUnreachable.Error())
		return nil, zerr.With(wrapped, "url", req.URL.String())
	}

	if resp.StatusCode/100 != 2 {
		statusErr := zerr.With(domain.ErrHubStatus, "status_code", resp.StatusCode)
		statusErr = zerr.With(statusErr, "path", req.URL.Path)
		return nil, zerr.With(statusErr, "body", truncate(body, maxErrorBodyBytes))
	}

	return body, nil
}

// decodeErrorList reads the hub's error list leniently. Entries are usually
// strings, but older firmware has been seen emitting objects and bare
// strings, so anything non-string is stringified rather than rejected.
func decodeErrorList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var strs []string
	if err := json.Unmarshal(raw, &strs); err == nil {
		return strs
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err == nil {
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, fmt.Sprint(item))
		}
		return out
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}

// truncate caps the body at limit bytes without splitting a rune; the text
// lands in user-facing error output.
func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	cut := limit
	for cut > 0 && cut > limit-utf8.UTFMax && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return string(body[:cut])
}
