package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	posts []Post
	games []string
}

func (f *fakeSource) ListAll(ctx context.Context) ([]Post, error) {
	return f.posts, nil
}

func (f *fakeSource) GetBySlug(ctx context.Context, slug string) (Post, bool, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, true, nil
		}
	}
	return Post{}, false, nil
}

func (f *fakeSource) ListByGameAndType(ctx context.Context, game, typ string) ([]Post, error) {
	var out []Post
	for _, p := range f.posts {
		if p.Game == game && p.Type == typ {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeSource) Games(ctx context.Context) ([]string, error) {
	return f.games, nil
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestMultiEarlierSourceWinsOnCollision(t *testing.T) {
	local := &fakeSource{posts: []Post{
		{Slug: "gran-robo", Game: "gta-5", Type: "noticias", Source: "local", Date: day(2)},
	}}
	remote := &fakeSource{posts: []Post{
		{Slug: "gran-robo", Game: "gta-5", Type: "noticias", Source: "wp", Date: day(9)},
		{Slug: "otro", Game: "gta-6", Type: "guias", Source: "wp", Date: day(5)},
	}}

	merged, err := NewMulti(local, remote).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, merged, 2)

	// Sorted newest-first, and the colliding slug kept the local copy.
	assert.Equal(t, "otro", merged[0].Slug)
	assert.Equal(t, "gran-robo", merged[1].Slug)
	assert.Equal(t, "local", merged[1].Source)
}

func TestMultiSameSlugDifferentTaxonomyBothKept(t *testing.T) {
	a := &fakeSource{posts: []Post{{Slug: "guia", Game: "gta-5", Type: "guias", Date: day(1)}}}
	b := &fakeSource{posts: []Post{{Slug: "guia", Game: "gta-6", Type: "guias", Date: day(2)}}}

	merged, err := NewMulti(a, b).ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, merged, 2)
}

func TestMultiGetBySlugChecksSourcesInOrder(t *testing.T) {
	local := &fakeSource{}
	remote := &fakeSource{posts: []Post{{Slug: "solo-remoto", Source: "wp"}}}

	post, found, err := NewMulti(local, remote).GetBySlug(context.Background(), "solo-remoto")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "wp", post.Source)

	_, found, err = NewMulti(local, remote).GetBySlug(context.Background(), "nadie")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMultiListByGameAndType(t *testing.T) {
	src := &fakeSource{posts: []Post{
		{Slug: "a", Game: "gta-5", Type: "noticias", Date: day(3)},
		{Slug: "b", Game: "gta-5", Type: "trucos", Date: day(2)},
		{Slug: "c", Game: "gta-6", Type: "noticias", Date: day(1)},
	}}

	posts, err := NewMulti(src).ListByGameAndType(context.Background(), "gta-5", "noticias")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "a", posts[0].Slug)

	posts, err = NewMulti(src).ListByGameAndType(context.Background(), "tetris", "noticias")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestMultiGamesDeduplicates(t *testing.T) {
	a := &fakeSource{games: []string{"gta-5", "gta-6"}}
	b := &fakeSource{games: []string{"gta-6", "gta-online"}}

	games, err := NewMulti(a, b).Games(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"gta-5", "gta-6", "gta-online"}, games)
}
