package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/AngelCh415/CAMPAIGN_GO/internal/models"
	"github.com/AngelCh415/CAMPAIGN_GO/internal/utils"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

// FetchTable descarga un export por HTTP y lo pasa por el mismo lector que
// un upload directo. Reintenta con backoff ante fallos transitorios; el
// nombre del path decide el formato (sin extensión se asume CSV).
func FetchTable(ctx context.Context, c HTTPClient, rawurl string) ([]models.RawRow, bool, error) {
	if rawurl == "" {
		return nil, false, errors.New("empty url")
	}
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, false, fmt.Errorf("bad url: %w", err)
	}

	var body []byte
	b := utils.NewBackoff(100*time.Millisecond, 2)
	err = b.Do(ctx, func(i int) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
		if err != nil {
			return err
		}
		resp, err := c.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return fmt.Errorf("non-2xx: %d body=%s", resp.StatusCode, string(snippet))
		}
		body, err = io.ReadAll(resp.Body)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	return ReadTable(path.Base(u.Path), bytes.NewReader(body))
}
