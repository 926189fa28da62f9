package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/chronicle/core"
)

// currentUser returns the session user.
func currentUser(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	return writeData(w, newUserJSON(ctx.User))
}

// getUser is the raw user lookup by id. It is the only route
// which works without a session.
func getUser(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		return &core.ValidationError{Field: "id", Reason: "not a number"}
	}

	user, err := ctx.db.UserDB.GetUser(id)
	if err != nil {
		return fmt.Errorf("user %w: %d", core.ErrNotFound, id)
	}

	return writeData(w, newUserJSON(user))
}
