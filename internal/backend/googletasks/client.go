// Package googletasks reads seed records from a Google Tasks list.
package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"todo/internal/config"
	"todo/internal/seed"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// PageSize is the number of tasks requested per page.
	PageSize = 100

	// APITimeout is the timeout for each API call.
	APITimeout = 5 * time.Second

	// Scope is the OAuth scope requested by login and used by the client.
	Scope = tasks.TasksReadonlyScope

	statusCompleted = "completed"
)

var (
	// ErrListNotFound is returned when no list has the configured name.
	ErrListNotFound = errors.New("list not found")

	// ErrAmbiguousList is returned when several lists share the configured name.
	ErrAmbiguousList = errors.New("ambiguous list name")

	// ErrTokenExpired is returned when the API rejects the stored token.
	ErrTokenExpired = errors.New("token expired or revoked (run: todo login)")

	// ErrTimeout is returned when an API call exceeds APITimeout.
	ErrTimeout = errors.New("request timed out")
)

// Client implements seed.Source using the Google Tasks API.
type Client struct {
	svc      *tasks.Service
	listName string
	timeout  time.Duration // per API call
}

var _ seed.Source = (*Client)(nil)

// New creates a client for the list named listName (empty for the
// default list). Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config, listName string) (*Client, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	// The token source refreshes the access token as needed.
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, &token))

	return NewWithHTTPClient(ctx, httpClient, listName)
}

// NewWithHTTPClient creates a client with a custom HTTP client.
// Extra options (e.g. option.WithEndpoint) are passed to the API service.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, listName string, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc, listName: strings.TrimSpace(listName), timeout: APITimeout}, nil
}

// Records returns every task of the configured list, completed and hidden
// ones included, in API order.
func (c *Client) Records(ctx context.Context) ([]seed.Record, error) {
	listID, err := c.resolveList(ctx)
	if err != nil {
		return nil, err
	}

	var records []seed.Record
	err = c.eachPage(ctx, func(ctx context.Context, pageToken string) (string, error) {
		call := c.svc.Tasks.List(listID).
			MaxResults(PageSize).
			ShowCompleted(true).
			ShowHidden(true).
			ShowDeleted(false)
		if pageToken != "" {
			call.PageToken(pageToken)
		}
		resp, err := call.Context(ctx).Do()
		if err != nil {
			return "", err
		}
		for _, t := range resp.Items {
			records = append(records, toRecord(t))
		}
		return resp.NextPageToken, nil
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return records, nil
}

// ListTitles returns the titles of the user's task lists in API order.
func (c *Client) ListTitles(ctx context.Context) ([]string, error) {
	var titles []string
	err := c.eachList(ctx, func(list *tasks.TaskList) {
		titles = append(titles, list.Title)
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return titles, nil
}

// resolveList finds the configured list by name (case-insensitive, trimmed).
func (c *Client) resolveList(ctx context.Context) (string, error) {
	if c.listName == "" {
		return DefaultListID, nil
	}

	want := strings.ToLower(c.listName)
	var matches []string
	err := c.eachList(ctx, func(list *tasks.TaskList) {
		if strings.ToLower(strings.TrimSpace(list.Title)) == want {
			matches = append(matches, list.Id)
		}
	})
	if err != nil {
		return "", wrapError(err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrListNotFound, c.listName)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousList, c.listName)
	}
}

// eachList calls fn for every task list of the user.
func (c *Client) eachList(ctx context.Context, fn func(*tasks.TaskList)) error {
	return c.eachPage(ctx, func(ctx context.Context, pageToken string) (string, error) {
		call := c.svc.Tasklists.List().MaxResults(PageSize)
		if pageToken != "" {
			call.PageToken(pageToken)
		}
		resp, err := call.Context(ctx).Do()
		if err != nil {
			return "", err
		}
		for _, list := range resp.Items {
			fn(list)
		}
		return resp.NextPageToken, nil
	})
}

// eachPage calls fetch with successive page tokens until it returns an
// empty next token. Every fetch gets its own timeout.
func (c *Client) eachPage(ctx context.Context, fetch func(ctx context.Context, pageToken string) (string, error)) error {
	pageToken := ""
	for {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		next, err := fetch(callCtx, pageToken)
		cancel()
		if err != nil {
			return err
		}
		if next == "" {
			return nil
		}
		pageToken = next
	}
}

// toRecord maps an API task to a seed record. An unparseable completion
// time is dropped rather than failing the whole list.
func toRecord(t *tasks.Task) seed.Record {
	rec := seed.Record{
		Title:       t.Title,
		Completed:   t.Status == statusCompleted,
		Description: t.Notes,
	}
	if t.Completed != nil && *t.Completed != "" {
		if at, err := time.Parse(time.RFC3339, *t.Completed); err == nil {
			rec.CompletedAt = &at
		}
	}
	return rec
}

// wrapError maps API errors to the package's sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrTokenExpired
		case http.StatusNotFound:
			return ErrListNotFound
		}
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return ErrTokenExpired
	}

	return err
}
