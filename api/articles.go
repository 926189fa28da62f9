package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func listArticles(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	articles, err := ctx.db.PublishedArticles()
	if err != nil {
		return err
	}
	return writeData(w, articles)
}

func getArticle(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	id, err := articleID(params)
	if err != nil {
		return err
	}
	article, err := ctx.db.GetArticle(id)
	if err != nil {
		return err
	}
	return writeData(w, article)
}
