package core

// An Article is a draft until it is published.
// Published is a unix timestamp, nil means draft.
// Title, Content and Icon are empty until the first edit.
type Article struct {
	ID        int    `json:"id"`
	AuthorID  int    `json:"authorId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Icon      string `json:"icon"`
	Published *int64 `json:"publishedAt"`
	Created   int64  `json:"createdAt"`
	Updated   int64  `json:"updatedAt"`
}

func (a *Article) IsPublished() bool {
	return a.Published != nil
}

// An ArticleDB stores articles. Ids are assigned by the store on insert.
//
// SetFields, SetPublished and DeleteArticle are conditional writes: they match
// both id and authorId in a single statement, so two interleaving mutations on
// the same row can not trample each other. AuthorId never changes, so a
// conditional write which affects no rows means the article is gone.
type ArticleDB interface {

	// GetArticle returns ErrNotFound (wrapped, with the id) if there is no such article.
	GetArticle(id int) (*Article, error)

	// InsertArticle inserts a draft with no title, content or icon
	// and returns it with its assigned id.
	InsertArticle(authorID int) (*Article, error)

	// SetFields overwrites title, content and icon and refreshes the updated timestamp.
	// The published timestamp is untouched.
	SetFields(id int, authorID int, title, content, icon string) (*Article, error)

	// SetPublished stamps the published timestamp with the current time,
	// or clears it if publish is false. Refreshes the updated timestamp either way.
	SetPublished(id int, authorID int, publish bool) (*Article, error)

	// DeleteArticle removes the row. There is no soft delete.
	DeleteArticle(id int, authorID int) error

	// PublishedArticles returns published articles only,
	// newest first, ties broken by id descending.
	PublishedArticles() ([]*Article, error)
}
