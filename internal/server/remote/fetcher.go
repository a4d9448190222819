// Package remote fetches person snapshots from an external JSON endpoint,
// such as a json-server "persons" collection.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/personql/internal/logging"
	"github.com/dmitrijs2005/personql/internal/netx"
	"github.com/dmitrijs2005/personql/internal/server/models"
)

// Fetcher reads the full person list from URL on every Snapshot call.
type Fetcher struct {
	url    string
	client *http.Client
	logger logging.Logger
}

func NewFetcher(url string, timeout time.Duration, l logging.Logger) *Fetcher {
	return &Fetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: l.With("module", "remote_fetcher"),
	}
}

// personDTO mirrors the remote record. ID is kept raw because json-server
// style backends may emit it as a number.
type personDTO struct {
	ID       json.RawMessage `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Street   string          `json:"street"`
	City     string          `json:"city"`
	Phone    *string         `json:"phone"`
	Avatar   *string         `json:"avatar"`
	Favs     []string        `json:"favs"`
}

// Snapshot performs one GET and returns the decoded persons in remote order.
func (f *Fetcher) Snapshot(ctx context.Context) ([]models.Person, error) {
	start := time.Now()

	var dtos []personDTO
	if err := netx.GetJSON(ctx, f.client, f.url, &dtos); err != nil {
		f.logger.Error(ctx, "remote snapshot failed", "url", f.url, "error", err)
		return nil, fmt.Errorf("fetch persons from %s: %w", f.url, err)
	}

	out := make([]models.Person, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, models.Person{
			ID:       rawID(d.ID),
			Name:     d.Name,
			Email:    d.Email,
			Password: d.Password,
			Street:   d.Street,
			City:     d.City,
			Phone:    d.Phone,
			Avatar:   d.Avatar,
			Favs:     d.Favs,
		})
	}

	f.logger.Debug(ctx, "remote snapshot fetched", "count", len(out), "elapsed", time.Since(start))
	return out, nil
}

func rawID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
