package api

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/chronicle/core"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func login(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var body loginRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return &core.ValidationError{Field: "body", Reason: err.Error()}
	}

	if err := ctx.Login(body.Email, body.Password); err != nil {
		return err
	}

	return writeData(w, newUserJSON(ctx.User))
}
