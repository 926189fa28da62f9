package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/chronicle/core"
	"github.com/wansing/chronicle/view"
)

// viewArticle renders the article as an HTML page.
// Drafts are only rendered for their author, mirroring the mutation checks:
// a missing id is not found, someone else's draft is forbidden.
func viewArticle(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	id, err := articleID(params)
	if err != nil {
		return err
	}

	article, err := ctx.db.GetArticle(id)
	if err != nil {
		return err
	}

	if !article.IsPublished() && article.AuthorID != ctx.User.Id() {
		return core.Forbidden(id)
	}

	var authorName = "unknown author"
	if author, err := ctx.db.UserDB.GetUser(article.AuthorID); err == nil {
		authorName = author.Name()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return view.Render(w, article, authorName, req.Header.Get("Accept-Language"))
}
