package core

// The article lifecycle. Every operation takes the caller's user id
// explicitly, there is no ambient session state down here.
//
// Mutations check existence before ownership, so probing a missing id yields
// ErrNotFound for everyone, and ErrForbidden is only ever seen by a non-owner
// of an existing article. The subsequent store write matches id and authorId
// again, so a concurrent delete can not resurrect the row.

// CreateArticle inserts an empty draft owned by the caller.
// It allocates a new article on every call.
func (c *CoreDB) CreateArticle(caller int) (*Article, error) {
	return c.ArticleDB.InsertArticle(caller)
}

// EditArticle overwrites title, content and icon with the patched values.
// The published state is untouched, drafts stay drafts.
func (c *CoreDB) EditArticle(caller int, id int, patch *ArticlePatch) (*Article, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	article, err := c.require(caller, id)
	if err != nil {
		return nil, err
	}
	title, content, icon := patch.Apply(article)
	return c.ArticleDB.SetFields(id, caller, title, content, icon)
}

// PublishArticle stamps the published timestamp with the current time.
// Publishing an already published article just re-stamps it.
func (c *CoreDB) PublishArticle(caller int, id int) (*Article, error) {
	if _, err := c.require(caller, id); err != nil {
		return nil, err
	}
	return c.ArticleDB.SetPublished(id, caller, true)
}

// UnpublishArticle clears the published timestamp, making the article a draft
// again. Unpublishing a draft succeeds and still refreshes the updated timestamp.
func (c *CoreDB) UnpublishArticle(caller int, id int) (*Article, error) {
	if _, err := c.require(caller, id); err != nil {
		return nil, err
	}
	return c.ArticleDB.SetPublished(id, caller, false)
}

// DeleteArticle removes the article for good.
func (c *CoreDB) DeleteArticle(caller int, id int) error {
	if _, err := c.require(caller, id); err != nil {
		return err
	}
	return c.ArticleDB.DeleteArticle(id, caller)
}

// require loads the article and checks ownership, in that order.
func (c *CoreDB) require(caller int, id int) (*Article, error) {
	article, err := c.ArticleDB.GetArticle(id)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != caller {
		return nil, Forbidden(id)
	}
	return article, nil
}
