// Package wp is the client for the portal's headless CMS, a WPGraphQL
// endpoint. Typed query methods sit on top of a single execute step, and
// every operation fails soft: upstream errors are logged and surface as
// a Failed result, never as a thrown error, because a public content
// page must render an empty state rather than break on CMS trouble.
package wp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/FrancisHerurd/gtaverso/internal/content"
)

const defaultPageSize = 12

// Config holds the CMS connection settings. Validated at construction so
// a misconfigured endpoint fails at startup, not on the first request.
type Config struct {
	// Endpoint is the GraphQL POST URL.
	Endpoint string
	// Timeout bounds each HTTP call. Defaults to 10s.
	Timeout time.Duration
	// Revalidate is the cache window hint sent upstream. Defaults to 60s.
	Revalidate time.Duration
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return errors.New("wp: endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("wp: endpoint %q is not a valid http(s) URL", c.Endpoint)
	}
	return nil
}

// Client issues GraphQL queries against the CMS.
type Client struct {
	cfg  Config
	http *http.Client
}

// New builds a client, validating the configuration.
func New(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Revalidate <= 0 {
		cfg.Revalidate = 60 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// execute POSTs one GraphQL document and returns the raw data payload.
// All failure modes (transport error, non-2xx status, GraphQL error
// array) log and return Failed.
func (c *Client) execute(ctx context.Context, query string, variables map[string]interface{}) Result[json.RawMessage] {
	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		log.Printf("wp: encoding request: %v", err)
		return failed[json.RawMessage](err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("wp: building request: %v", err)
		return failed[json.RawMessage](err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.cfg.Revalidate.Seconds())))

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("wp: request failed: %v", err)
		return failed[json.RawMessage](err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("wp: unexpected status %d", resp.StatusCode)
		log.Print(err)
		return failed[json.RawMessage](err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("wp: reading response: %v", err)
		return failed[json.RawMessage](err)
	}

	var gql graphQLResponse
	if err := json.Unmarshal(raw, &gql); err != nil {
		log.Printf("wp: decoding response: %v", err)
		return failed[json.RawMessage](err)
	}
	if len(gql.Errors) > 0 {
		msgs := make([]string, 0, len(gql.Errors))
		for _, e := range gql.Errors {
			msgs = append(msgs, e.Message)
		}
		err := fmt.Errorf("wp: graphql errors: %s", strings.Join(msgs, "; "))
		log.Print(err)
		return failed[json.RawMessage](err)
	}

	return ok(gql.Data)
}

// GetAllPosts returns up to limit posts ordered newest-first, plus the
// cursor state for incremental loading. Pass an empty cursor for the
// first page.
func (c *Client) GetAllPosts(ctx context.Context, limit int, cursor string) Result[PostsPage] {
	if limit <= 0 {
		limit = defaultPageSize
	}
	variables := map[string]interface{}{"first": limit}
	if cursor != "" {
		variables["after"] = cursor
	}

	res := c.execute(ctx, queryAllPosts, variables)
	if !res.OK() {
		return failed[PostsPage](res.Err)
	}

	var payload struct {
		Posts struct {
			PageInfo PageInfo   `json:"pageInfo"`
			Nodes    []postNode `json:"nodes"`
		} `json:"posts"`
	}
	if err := json.Unmarshal(res.Value, &payload); err != nil {
		log.Printf("wp: decoding posts: %v", err)
		return failed[PostsPage](err)
	}
	if len(payload.Posts.Nodes) == 0 {
		return empty[PostsPage]()
	}

	page := PostsPage{PageInfo: payload.Posts.PageInfo}
	for _, n := range payload.Posts.Nodes {
		page.Posts = append(page.Posts, n.toPost())
	}
	return ok(page)
}

// LoadMore fetches the page after prev. Callers concatenate the posts
// themselves and stop when HasNextPage goes false.
func (c *Client) LoadMore(ctx context.Context, limit int, prev PostsPage) Result[PostsPage] {
	if !prev.PageInfo.HasNextPage {
		return empty[PostsPage]()
	}
	return c.GetAllPosts(ctx, limit, prev.PageInfo.EndCursor)
}

// GetPostBySlug returns the single post with that slug, or Empty.
func (c *Client) GetPostBySlug(ctx context.Context, slug string) Result[content.Post] {
	res := c.execute(ctx, queryPostBySlug, map[string]interface{}{"slug": slug})
	if !res.OK() {
		return failed[content.Post](res.Err)
	}

	var payload struct {
		Post *postNode `json:"post"`
	}
	if err := json.Unmarshal(res.Value, &payload); err != nil {
		log.Printf("wp: decoding post: %v", err)
		return failed[content.Post](err)
	}
	if payload.Post == nil {
		return empty[content.Post]()
	}
	return ok(payload.Post.toPost())
}

// GetPostsByGameAndType returns posts carrying both taxonomy terms.
// Matching is exact-slug and case-sensitive; an unrecognized value
// simply yields Empty.
func (c *Client) GetPostsByGameAndType(ctx context.Context, game, typ string) Result[[]content.Post] {
	res := c.execute(ctx, queryPostsByGameAndType, map[string]interface{}{
		"first": 100,
		"game":  []string{game},
		"type":  []string{typ},
	})
	if !res.OK() {
		return failed[[]content.Post](res.Err)
	}

	var payload struct {
		Posts struct {
			Nodes []postNode `json:"nodes"`
		} `json:"posts"`
	}
	if err := json.Unmarshal(res.Value, &payload); err != nil {
		log.Printf("wp: decoding posts: %v", err)
		return failed[[]content.Post](err)
	}
	if len(payload.Posts.Nodes) == 0 {
		return empty[[]content.Post]()
	}

	posts := make([]content.Post, 0, len(payload.Posts.Nodes))
	for _, n := range payload.Posts.Nodes {
		posts = append(posts, n.toPost())
	}
	return ok(posts)
}

// GetAllGameTerms returns the full game taxonomy as the CMS enumerates
// it. Used to validate route parameters and to build the static route
// list.
func (c *Client) GetAllGameTerms(ctx context.Context) Result[[]Term] {
	res := c.execute(ctx, queryAllGameTerms, nil)
	if !res.OK() {
		return failed[[]Term](res.Err)
	}

	var payload struct {
		Juegos struct {
			Nodes []Term `json:"nodes"`
		} `json:"juegos"`
	}
	if err := json.Unmarshal(res.Value, &payload); err != nil {
		log.Printf("wp: decoding terms: %v", err)
		return failed[[]Term](err)
	}
	if len(payload.Juegos.Nodes) == 0 {
		return empty[[]Term]()
	}
	return ok(payload.Juegos.Nodes)
}
