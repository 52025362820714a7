package storytel

import (
	"context"
	"fmt"
	"net/url"
)

// Search queries the catalog for books matching the query text. The query is
// expected to be pre-formatted for transport (whitespace already collapsed);
// the catalog mixes locales, so request_locale mostly affects ranking.
func (c *Client) Search(ctx context.Context, query, locale string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("request_locale", locale)
	params.Set("q", query)

	endpoint := fmt.Sprintf("%s/api/search.action?%s", c.baseURL, params.Encode())

	var response SearchResponse
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	return &response, nil
}

// GetBook fetches the full detail record for one catalog identifier.
func (c *Client) GetBook(ctx context.Context, bookID, locale string) (*BookDetails, error) {
	params := url.Values{}
	params.Set("bookId", bookID)
	params.Set("request_locale", locale)

	endpoint := fmt.Sprintf("%s/api/getBookInfoForContent.action?%s", c.baseURL, params.Encode())

	var details BookDetails
	if err := c.getJSON(ctx, endpoint, &details); err != nil {
		return nil, fmt.Errorf("book details %s: %w", bookID, err)
	}

	return &details, nil
}
