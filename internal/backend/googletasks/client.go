// Package googletasks implements service.Service on the Google Tasks API.
package googletasks

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"todolist/internal/config"
	"todolist/internal/service"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// APITimeout is the timeout for a single API call.
	APITimeout = 5 * time.Second
)

// Client implements service.Service using the Google Tasks API.
type Client struct {
	svc *tasks.Service
}

// New creates a client from the stored credentials in cfg.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if !cfg.HasOAuthClient() {
		return nil, fmt.Errorf("%w: %s not found in %s", service.ErrNotAuthenticated, config.OAuthClientFile, cfg.Dir)
	}
	if !cfg.HasToken() {
		return nil, service.ErrNotAuthenticated
	}

	oauthConfig, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	token, err := LoadToken(cfg)
	if err != nil {
		return nil, err
	}

	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))
	return NewWithHTTPClient(ctx, httpClient)
}

// NewWithHTTPClient creates a client over httpClient. Extra options are
// appended, which lets tests point the client at a local endpoint.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// DefaultList returns the user's default task list.
func (c *Client) DefaultList(ctx context.Context) (service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	list, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return service.TaskList{}, wrapError(err)
	}
	return service.TaskList{ID: DefaultListID, Title: list.Title, IsDefault: true}, nil
}

// ListLists returns all task lists in API order, with the default list's ID
// normalized to DefaultListID.
func (c *Client) ListLists(ctx context.Context) ([]service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	def, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}

	var result []service.TaskList
	err = c.svc.Tasklists.List().MaxResults(100).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, l := range resp.Items {
			tl := service.TaskList{ID: l.Id, Title: l.Title}
			if l.Id == def.Id {
				tl.ID = DefaultListID
				tl.IsDefault = true
			}
			result = append(result, tl)
		}
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ResolveList finds a list by name (case-insensitive, trimmed).
func (c *Client) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	lists, err := c.ListLists(ctx)
	if err != nil {
		return service.TaskList{}, err
	}
	return matchList(lists, name)
}

func matchList(lists []service.TaskList, name string) (service.TaskList, error) {
	name = strings.TrimSpace(name)
	want := strings.ToLower(name)

	var matches []service.TaskList
	for _, l := range lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == want {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrListNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrAmbiguousList, name)
	}
}

// ListOpenTasks returns one page of open tasks.
// The API pages by token, so earlier pages are walked to reach the requested one.
func (c *Client) ListOpenTasks(ctx context.Context, listID string, page int) ([]service.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	call := c.svc.Tasks.List(listID).
		MaxResults(service.PageSize).
		ShowCompleted(false).
		ShowDeleted(false).
		ShowHidden(false).
		Context(ctx)

	var pageToken string
	for current := 1; current < page; current++ {
		resp, err := call.PageToken(pageToken).Do()
		if err != nil {
			return nil, wrapError(err)
		}
		if resp.NextPageToken == "" {
			return nil, nil
		}
		pageToken = resp.NextPageToken
	}

	resp, err := call.PageToken(pageToken).Do()
	if err != nil {
		return nil, wrapError(err)
	}

	result := make([]service.Task, 0, len(resp.Items))
	for _, t := range resp.Items {
		result = append(result, service.Task{ID: t.Id, Title: t.Title, Status: t.Status})
	}
	return result, nil
}

// CreateTask creates a new task in the specified list.
func (c *Client) CreateTask(ctx context.Context, listID, title string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	if _, err := c.svc.Tasks.Insert(listID, &tasks.Task{Title: title}).Context(ctx).Do(); err != nil {
		return wrapError(err)
	}
	return nil
}

// wrapError folds API errors into the messages commands map to exit codes.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "context deadline exceeded"):
		return fmt.Errorf("request timed out")
	case strings.Contains(msg, "401"), strings.Contains(msg, "403"):
		return fmt.Errorf("token expired or revoked (run: todolist login)")
	case strings.Contains(msg, "404"):
		return fmt.Errorf("not found")
	}
	return err
}
