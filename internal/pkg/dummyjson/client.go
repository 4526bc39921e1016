// Package dummyjson talks to the users resource of a dummyjson.com style API.
package dummyjson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyKozhin/user-management-backend/internal/model"
	"golang.org/x/sync/errgroup"
)

const selectFields = "firstName,lastName,gender,email,phone,image"

type Client struct {
	baseURL     string
	http        *http.Client
	pageSize    int
	maxUsers    int
	concurrency int
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithMaxUsers caps how many users ListUsers returns. Zero means no cap.
func WithMaxUsers(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.maxUsers = n
		}
	}
}

func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: 10 * time.Second},
		pageSize:    30,
		maxUsers:    100,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListUsers fetches users in source order. The first page tells how many
// there are, the rest are requested concurrently.
func (c *Client) ListUsers(ctx context.Context) ([]*model.User, error) {
	first, err := c.getPage(ctx, 0, c.pageLimit(0))
	if err != nil {
		return nil, &model.DataSourceError{Op: "list users", Err: err}
	}

	total := first.Total
	if c.maxUsers > 0 && total > c.maxUsers {
		total = c.maxUsers
	}

	pages := make([][]*userDTO, 1, (total+c.pageSize-1)/c.pageSize+1)
	pages[0] = first.Users

	var skips []int
	for skip := len(first.Users); skip < total && len(first.Users) > 0; skip += c.pageSize {
		skips = append(skips, skip)
		pages = append(pages, nil)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, skip := range skips {
		i, skip := i, skip
		limit := c.pageSize
		if skip+limit > total {
			limit = total - skip
		}

		g.Go(func() error {
			page, err := c.getPage(gctx, skip, limit)
			if err != nil {
				return err
			}
			pages[i+1] = page.Users
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, &model.DataSourceError{Op: "list users", Err: err}
	}

	res := make([]*model.User, 0, total)
	for _, p := range pages {
		for _, dto := range p {
			if len(res) == total {
				break
			}
			res = append(res, mapToUser(dto))
		}
	}

	return res, nil
}

func (c *Client) AddUser(ctx context.Context, user *model.UserCreate) (*model.User, error) {
	body, err := json.Marshal(mapToAddRequest(user))
	if err != nil {
		return nil, &model.DataSourceError{Op: "add user", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/add", bytes.NewReader(body))
	if err != nil {
		return nil, &model.DataSourceError{Op: "add user", Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	dto := &userDTO{}
	if err := c.do(req, dto); err != nil {
		return nil, &model.DataSourceError{Op: "add user", Err: err}
	}

	return mapToUser(dto), nil
}

func (c *Client) pageLimit(skip int) int {
	if c.maxUsers > 0 && skip+c.pageSize > c.maxUsers {
		return c.maxUsers - skip
	}
	return c.pageSize
}

func (c *Client) getPage(ctx context.Context, skip, limit int) (*listResponse, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))
	q.Set("select", selectFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp := &listResponse{}
	if err := c.do(req, resp); err != nil {
		return nil, fmt.Errorf("get users (skip %d): %w", skip, err)
	}

	return resp, nil
}

func (c *Client) do(req *http.Request, dst interface{}) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
