package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Query describes a PostgREST request against a single table: equality
// filters plus an optional ordering column.
type Query struct {
	Eq         map[string]string
	OrderBy    string
	Descending bool
}

func (q Query) toURLParams() url.Values {

	params := url.Values{}
	params.Add("select", "*")

	for column, value := range q.Eq {
		params.Add(column, "eq."+value)
	}

	if q.OrderBy != "" {
		direction := "asc"
		if q.Descending {
			direction = "desc"
		}
		params.Add("order", q.OrderBy+"."+direction)
	}

	return params
}

func (q Query) toFilterParams() url.Values {

	params := url.Values{}
	for column, value := range q.Eq {
		params.Add(column, "eq."+value)
	}
	return params
}

func (c *Client) restURL(table string, params url.Values) string {
	return c.baseURL + "/rest/v1/" + table + "?" + params.Encode()
}

// Select fetches all rows matching the query into dest.
func (c *Client) Select(ctx context.Context, token string, table string, query Query, dest any) error {

	status, body, err := c.sendRequest(ctx, http.MethodGet, c.restURL(table, query.toURLParams()), token, nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return parseRestError(status, body)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("error decoding JSON response: %v", err)
	}
	return nil
}

// SelectSingle fetches exactly one row into dest. It returns ErrNoRows when
// the query matches nothing.
func (c *Client) SelectSingle(ctx context.Context, token string, table string, query Query, dest any) error {

	headers := map[string]string{"Accept": "application/vnd.pgrst.object+json"}

	status, body, err := c.sendRequest(ctx, http.MethodGet, c.restURL(table, query.toURLParams()), token, headers, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return parseRestError(status, body)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("error decoding JSON response: %v", err)
	}
	return nil
}

// Insert creates a new row and decodes the representation returned by the
// backend into dest, which must be a pointer to a slice.
func (c *Client) Insert(ctx context.Context, token string, table string, record any, dest any) error {

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error encoding record: %v", err)
	}

	headers := map[string]string{"Prefer": "return=representation"}

	status, body, err := c.sendRequest(ctx, http.MethodPost, c.baseURL+"/rest/v1/"+table, token, headers, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return parseRestError(status, body)
	}

	if dest != nil {
		if err := json.Unmarshal(body, dest); err != nil {
			return fmt.Errorf("error decoding JSON response: %v", err)
		}
	}
	return nil
}

// Update overwrites the given fields on all rows matching the query filters.
func (c *Client) Update(ctx context.Context, token string, table string, query Query, fields any) error {

	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("error encoding fields: %v", err)
	}

	status, body, err := c.sendRequest(ctx, http.MethodPatch, c.restURL(table, query.toFilterParams()), token, nil, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return parseRestError(status, body)
	}
	return nil
}

// Delete removes all rows matching the query filters.
func (c *Client) Delete(ctx context.Context, token string, table string, query Query) error {

	status, body, err := c.sendRequest(ctx, http.MethodDelete, c.restURL(table, query.toFilterParams()), token, nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return parseRestError(status, body)
	}
	return nil
}
