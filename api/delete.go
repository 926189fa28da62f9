package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func deleteArticle(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	id, err := articleID(params)
	if err != nil {
		return err
	}
	if err := ctx.db.DeleteArticle(ctx.User.Id(), id); err != nil {
		return err
	}
	return writeMessage(w, "article deleted: %d", id)
}
