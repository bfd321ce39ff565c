package content

import "context"

// Multi merges several sources behind the Source interface. Earlier
// sources win on slug collision within the same (game, type), so listing
// a local source first lets operator-authored files override CMS posts.
type Multi struct {
	sources []Source
}

// NewMulti builds a merged source. Order matters, see Multi.
func NewMulti(sources ...Source) *Multi {
	return &Multi{sources: sources}
}

func (m *Multi) ListAll(ctx context.Context) ([]Post, error) {
	seen := make(map[[3]string]bool)
	var merged []Post
	for _, src := range m.sources {
		posts, err := src.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range posts {
			key := [3]string{p.Game, p.Type, p.Slug}
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, p)
		}
	}
	SortByDateDesc(merged)
	return merged, nil
}

func (m *Multi) GetBySlug(ctx context.Context, slug string) (Post, bool, error) {
	for _, src := range m.sources {
		post, found, err := src.GetBySlug(ctx, slug)
		if err != nil {
			return Post{}, false, err
		}
		if found {
			return post, true, nil
		}
	}
	return Post{}, false, nil
}

func (m *Multi) ListByGameAndType(ctx context.Context, game, typ string) ([]Post, error) {
	posts, err := m.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []Post
	for _, p := range posts {
		if p.Game == game && p.Type == typ {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (m *Multi) Games(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var games []string
	for _, src := range m.sources {
		g, err := src.Games(ctx)
		if err != nil {
			return nil, err
		}
		for _, slug := range g {
			if seen[slug] {
				continue
			}
			seen[slug] = true
			games = append(games, slug)
		}
	}
	return games, nil
}
