package wp

// GraphQL documents sent to the CMS. The field shapes follow the
// WPGraphQL schema the portal's CMS exposes: posts live under the
// standard posts connection, games under the custom "juegos" taxonomy,
// and content types under categories.

const postFields = `
	slug
	title
	date
	excerpt
	content
	featuredImage {
		node {
			sourceUrl
		}
	}
	juegos {
		nodes {
			slug
			name
		}
	}
	categories {
		nodes {
			slug
			name
		}
	}
`

const queryAllPosts = `
query AllPosts($first: Int!, $after: String) {
	posts(first: $first, after: $after, where: { orderby: { field: DATE, order: DESC } }) {
		pageInfo {
			endCursor
			hasNextPage
		}
		nodes {` + postFields + `}
	}
}
`

const queryPostBySlug = `
query PostBySlug($slug: ID!) {
	post(id: $slug, idType: SLUG) {` + postFields + `}
}
`

const queryPostsByGameAndType = `
query PostsByGameAndType($first: Int!, $game: [String], $type: [String]) {
	posts(
		first: $first
		where: {
			orderby: { field: DATE, order: DESC }
			taxQuery: {
				relation: AND
				taxArray: [
					{ taxonomy: JUEGO, field: SLUG, terms: $game }
					{ taxonomy: CATEGORY, field: SLUG, terms: $type }
				]
			}
		}
	) {
		nodes {` + postFields + `}
	}
}
`

const queryAllGameTerms = `
query AllGameTerms {
	juegos(first: 100) {
		nodes {
			slug
			name
		}
	}
}
`
