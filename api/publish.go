package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// publishArticle stamps the publish time. Republishing just re-stamps it.
func publishArticle(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	id, err := articleID(params)
	if err != nil {
		return err
	}
	article, err := ctx.db.PublishArticle(ctx.User.Id(), id)
	if err != nil {
		return err
	}
	return writeData(w, article)
}

// unpublishArticle makes the article a draft again. Unpublishing a draft is not an error.
func unpublishArticle(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	id, err := articleID(params)
	if err != nil {
		return err
	}
	article, err := ctx.db.UnpublishArticle(ctx.User.Id(), id)
	if err != nil {
		return err
	}
	return writeData(w, article)
}
