package dbl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// apiClient owns the HTTP session. It builds request URLs from the base URL,
// attaches the auth header on every call, decodes JSON bodies and maps failure
// statuses to the error kinds in errors.go. It performs no retries and no
// backoff of its own.
type apiClient struct {
	rc      *resty.Client
	baseURL string
	token   string
	log     *zap.SugaredLogger

	closeOnce sync.Once
}

func newAPIClient(token, baseURL string, rc *resty.Client, timeout time.Duration, log *zap.SugaredLogger) *apiClient {
	if rc == nil {
		rc = resty.New()
		if timeout > 0 {
			rc.SetTimeout(timeout)
		}
	}
	return &apiClient{
		rc:      rc,
		baseURL: baseURL,
		token:   token,
		log:     log,
	}
}

func (a *apiClient) get(ctx context.Context, path string, query map[string]string, out any) error {
	return a.do(ctx, http.MethodGet, path, query, nil, out)
}

func (a *apiClient) post(ctx context.Context, path string, body any) error {
	return a.do(ctx, http.MethodPost, path, nil, body, nil)
}

func (a *apiClient) do(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	req := a.rc.R().
		SetContext(ctx).
		SetHeader("Authorization", a.token)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	resp, err := req.Execute(method, a.baseURL+path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	a.log.Debugw("listing api response",
		"method", method,
		"path", path,
		"status", resp.StatusCode(),
	)

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return &HTTPError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// close releases idle connections. Safe to call more than once; only the first
// call touches the session.
func (a *apiClient) close() {
	a.closeOnce.Do(func() {
		a.rc.GetClient().CloseIdleConnections()
	})
}
