package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/gratitude-backend/internal/platform/rpcerr"
)

// The envelope shapes below are a compatibility contract with the web
// client; the field names must not change even if the RPC schema does.

type RowsEnvelope struct {
	Rows any `json:"rows"`
}

type DataEnvelope struct {
	Data any `json:"data"`
}

type ErrorEnvelope struct {
	Error string `json:"error"`
}

type CreateErrorEnvelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Rows wraps a list result in the named collection field.
func Rows(c *gin.Context, rows any) {
	c.JSON(http.StatusOK, RowsEnvelope{Rows: rows})
}

// Data wraps an aggregate result in the named data field.
func Data(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataEnvelope{Data: data})
}

func Error(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{Error: msg})
}

func CreateFailed(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, CreateErrorEnvelope{OK: false, Error: msg})
}

// StatusFor maps the RPC error taxonomy onto HTTP status classes:
// InvalidArgument is the caller's fault, everything else is ours.
func StatusFor(err error) int {
	var rpcErr *rpcerr.Error
	if errors.As(err, &rpcErr) && rpcErr.Code == rpcerr.InvalidArgument {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
