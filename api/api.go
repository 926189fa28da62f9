// Package api is the JSON surface of chronicle.
//
// Every route except POST /login and GET /users/:id requires a logged-in
// session. Responses are wrapped in {"data": ...} or {"message": ...}.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/chronicle/auth"
	"github.com/wansing/chronicle/core"
)

// we need the CoreDB in the handlers
type context struct {
	*core.Request
	db *core.CoreDB
}

func middleware(db *core.CoreDB, requireLoggedIn bool, f func(http.ResponseWriter, *http.Request, *context, httprouter.Params) error) func(http.ResponseWriter, *http.Request, httprouter.Params) {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {

		var ctx = &context{
			Request: db.NewRequest(w, req),
			db:      db,
		}
		defer ctx.Cleanup()

		// the guard runs before any article logic and before any store access
		if requireLoggedIn && !ctx.LoggedIn() {
			writeError(w, core.ErrUnauthenticated)
			return
		}

		if err := f(w, req, ctx, params); err != nil {
			writeError(w, err)
		}
	}
}

func NewRouter(db *core.CoreDB) http.Handler {

	var router = httprouter.New()

	// public
	router.POST("/login", middleware(db, false, login))
	router.GET("/users/:id", middleware(db, false, getUser))

	// private
	router.GET("/articles", middleware(db, true, listArticles))
	router.POST("/articles", middleware(db, true, createArticle))
	router.GET("/articles/:id", middleware(db, true, getArticle))
	router.PATCH("/articles/:id", middleware(db, true, editArticle))
	router.PATCH("/articles/:id/publish", middleware(db, true, publishArticle))
	router.PATCH("/articles/:id/unpublish", middleware(db, true, unpublishArticle))
	router.DELETE("/articles/:id", middleware(db, true, deleteArticle))
	router.GET("/articles/:id/view", middleware(db, true, viewArticle))
	router.GET("/current", middleware(db, true, currentUser))
	router.GET("/logout", middleware(db, true, logout))

	return router
}

type userJSON struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newUserJSON(u auth.DBUser) *userJSON {
	return &userJSON{
		ID:   u.Id(),
		Name: u.Name(),
	}
}

func writeData(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(struct {
		Data interface{} `json:"data"`
	}{data})
}

func writeMessage(w http.ResponseWriter, format string, args ...interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(struct {
		Message string `json:"message"`
	}{fmt.Sprintf(format, args...)})
}

func writeError(w http.ResponseWriter, err error) {

	var status int
	var validationErr *core.ValidationError

	switch {
	case errors.Is(err, core.ErrUnauthenticated), errors.Is(err, auth.ErrLogin):
		status = http.StatusUnauthorized
	case errors.Is(err, core.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrForbidden):
		status = http.StatusForbidden
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	default:
		// store-level failures are not classified further
		log.Printf("internal error: %v", err)
		status = http.StatusInternalServerError
		err = errors.New("internal error")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Message string `json:"message"`
	}{err.Error()})
}

// articleID parses the id route parameter.
func articleID(params httprouter.Params) (int, error) {
	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		return 0, &core.ValidationError{Field: "id", Reason: "not a number"}
	}
	return id, nil
}
