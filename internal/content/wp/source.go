package wp

import (
	"context"

	"github.com/FrancisHerurd/gtaverso/internal/content"
)

// ListAll implements content.Source by paging through the whole posts
// connection. Failed results collapse to an empty listing; the failure
// was already logged by execute.
func (c *Client) ListAll(ctx context.Context) ([]content.Post, error) {
	var all []content.Post
	page := c.GetAllPosts(ctx, defaultPageSize, "")
	for page.OK() {
		all = append(all, page.Value.Posts...)
		if !page.Value.PageInfo.HasNextPage {
			break
		}
		page = c.LoadMore(ctx, defaultPageSize, page.Value)
	}
	return all, nil
}

// GetBySlug implements content.Source.
func (c *Client) GetBySlug(ctx context.Context, slug string) (content.Post, bool, error) {
	res := c.GetPostBySlug(ctx, slug)
	if !res.OK() {
		return content.Post{}, false, nil
	}
	return res.Value, true, nil
}

// ListByGameAndType implements content.Source.
func (c *Client) ListByGameAndType(ctx context.Context, game, typ string) ([]content.Post, error) {
	res := c.GetPostsByGameAndType(ctx, game, typ)
	if !res.OK() {
		return nil, nil
	}
	return res.Value, nil
}

// Games implements content.Source, falling back to the built-in set when
// the CMS cannot enumerate its terms.
func (c *Client) Games(ctx context.Context) ([]string, error) {
	res := c.GetAllGameTerms(ctx)
	if !res.OK() {
		return content.Games, nil
	}
	games := make([]string, 0, len(res.Value))
	for _, t := range res.Value {
		games = append(games, t.Slug)
	}
	return games, nil
}
