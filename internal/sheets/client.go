package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/julianstephens/punchlog/internal/models"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4"

// Appender persists one assembled entry as a spreadsheet row.
type Appender interface {
	AppendRow(ctx context.Context, entry models.TimesheetEntry) error
}

// Client is an authenticated Google Sheets API client appending rows to
// one configured spreadsheet range.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	spreadsheetID string
	sheetRange    string
}

// NewClient creates a Sheets client using the provided token source.
func NewClient(ctx context.Context, ts oauth2.TokenSource, spreadsheetID, sheetRange string) *Client {
	return &Client{
		httpClient:    oauth2.NewClient(ctx, ts),
		baseURL:       defaultBaseURL,
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
	}
}

// appendRequest is the values:append request body.
type appendRequest struct {
	Values [][]string `json:"values"`
}

// apiError is the error envelope the Sheets API returns.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// AppendRow appends the entry as one row using the values:append
// endpoint. The returned error carries the service's human-readable
// reason when the API rejects the call.
func (c *Client) AppendRow(ctx context.Context, entry models.TimesheetEntry) error {
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED",
		c.baseURL,
		url.PathEscape(c.spreadsheetID),
		url.PathEscape(c.sheetRange),
	)

	body, err := json.Marshal(appendRequest{Values: [][]string{entry.Row()}})
	if err != nil {
		return fmt.Errorf("encoding append request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sheets API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("sheets API error %d", resp.StatusCode)
	}
	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("sheets API error %d: %s", resp.StatusCode, apiErr.Error.Message)
	}
	return fmt.Errorf("sheets API error %d: %s", resp.StatusCode, string(raw))
}
