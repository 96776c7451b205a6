// Package gwf answers the advisory remote lookups against the hosted font
// directory and the designer profiles listing.
package gwf

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	directoryURL   = "http://fonts.googleapis.com/css?family="
	profilesRawURL = "https://raw.githubusercontent.com/google/fonts/master/designers/profiles.csv"
)

// Client implements domain.WebDirectory over plain HTTP.
type Client struct {
	httpClient *http.Client
}

func New() *Client {
	return &Client{httpClient: http.DefaultClient}
}

// FamilyListed queries the directory's CSS endpoint for the family. A 200
// response means the family is hosted.
func (c *Client) FamilyListed(ctx context.Context, familyName string) (string, bool, error) {
	queryURL := directoryURL + strings.ReplaceAll(familyName, " ", "+")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return queryURL, false, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return queryURL, false, err
	}
	defer resp.Body.Close()
	return queryURL, resp.StatusCode == http.StatusOK, nil
}

// DesignerProfiles fetches the designer names from the profiles CSV. The
// designer name is the first column of each row.
func (c *Client) DesignerProfiles(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profilesRawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", profilesRawURL, resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	var designers []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing profiles csv: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		designers = append(designers, row[0])
	}
	return designers, nil
}
