package errors

import (
	"encoding/json"
	"net/http"

	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
)

// FailCode es el código que lleva el envelope en cualquier falla.
const FailCode = 400

type envelope struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// WriteError escribe el envelope {code, msg} con el status HTTP del error.
func WriteError(w http.ResponseWriter, err error) {
	appErr := FromError(err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(envelope{Code: FailCode, Msg: appErr.Msg()})
}

// WriteErrorLogged es WriteError más un log con la causa cuando es 5xx.
func WriteErrorLogged(w http.ResponseWriter, r *http.Request, err error) {
	appErr := FromError(err)
	if appErr.HTTPStatus >= 500 {
		logger.From(r.Context()).Error("request failed",
			logger.String("code", appErr.Code), logger.Err(appErr.Err))
	}
	WriteError(w, appErr)
}
