package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// serverManaged columns are assigned by the database on insert and are left
// out of the payload when the record carries their zero value.
var serverManaged = []string{"id", "created_at", "updated_at"}

// Select implements store.Client.
func (c *Client) Select(ctx context.Context, q store.Query, dest any) error {
	if err := q.Validate(); err != nil {
		return err
	}
	body, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   restPath + q.Collection,
		query:  encodeQuery(q, true),
	}, decodeRestError)
	if err != nil {
		return err
	}
	return decode(body, dest)
}

// SelectOne implements store.Client. The provider answers 406 with
// code PGRST116 when the row count is not exactly one.
func (c *Client) SelectOne(ctx context.Context, q store.Query, dest any) error {
	if err := q.Validate(); err != nil {
		return err
	}
	body, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   restPath + q.Collection,
		query:  encodeQuery(q, true),
		header: http.Header{"Accept": {mediaObject}},
	}, decodeRestError)
	if err != nil {
		return err
	}
	return decode(body, dest)
}

// Insert implements store.Client.
func (c *Client) Insert(ctx context.Context, collection string, record any) error {
	if err := store.From(collection).Validate(); err != nil {
		return err
	}
	payload, err := insertPayload(record)
	if err != nil {
		return err
	}
	body, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   restPath + collection,
		body:   payload,
		header: http.Header{
			"Prefer": {"return=representation"},
			"Accept": {mediaObject},
		},
	}, decodeRestError)
	if err != nil {
		return err
	}
	return decode(body, record)
}

// Update implements store.Client.
func (c *Client) Update(ctx context.Context, q store.Query, patch map[string]any, dest any) error {
	if err := q.Validate(); err != nil {
		return err
	}
	req := request{
		method: http.MethodPatch,
		path:   restPath + q.Collection,
		query:  encodeQuery(q, false),
		body:   patch,
		header: http.Header{"Prefer": {"return=minimal"}},
	}
	if dest != nil {
		req.query = encodeQuery(q, true)
		req.header = http.Header{
			"Prefer": {"return=representation"},
			"Accept": {mediaObject},
		}
	}
	body, err := c.do(ctx, req, decodeRestError)
	if err != nil || dest == nil {
		return err
	}
	return decode(body, dest)
}

// Delete implements store.Client.
func (c *Client) Delete(ctx context.Context, q store.Query) error {
	if err := q.Validate(); err != nil {
		return err
	}
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   restPath + q.Collection,
		query:  encodeQuery(q, false),
	}, decodeRestError)
	return err
}

func decode(body []byte, dest any) error {
	if dest == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode store response: %w", err)
	}
	return nil
}

// insertPayload converts record to a JSON object without zero-valued
// server-managed columns.
func insertPayload(record any) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("record must encode as a JSON object: %w", err)
	}
	for _, key := range serverManaged {
		if isZeroJSON(payload[key]) {
			delete(payload, key)
		}
	}
	return payload, nil
}

func isZeroJSON(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		if val == "" {
			return true
		}
		t, err := time.Parse(time.RFC3339Nano, val)
		return err == nil && t.IsZero()
	}
	return false
}
