package api

import (
	"io/ioutil"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/chronicle/core"
)

func editArticle(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	id, err := articleID(params)
	if err != nil {
		return err
	}

	body, err := ioutil.ReadAll(http.MaxBytesReader(w, req.Body, core.MaxContentLen+4096))
	if err != nil {
		return &core.ValidationError{Field: "body", Reason: "unreadable"}
	}

	patch, err := core.DecodePatch(body)
	if err != nil {
		return err
	}

	article, err := ctx.db.EditArticle(ctx.User.Id(), id, patch)
	if err != nil {
		return err
	}

	return writeData(w, article)
}
