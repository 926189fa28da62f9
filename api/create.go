package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// createArticle inserts an empty draft owned by the caller. No body required.
func createArticle(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	article, err := ctx.db.CreateArticle(ctx.User.Id())
	if err != nil {
		return err
	}
	return writeData(w, article)
}
