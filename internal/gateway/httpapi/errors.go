package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authslice/internal/common"
	"github.com/dmitrijs2005/authslice/internal/httpx"
	"github.com/gin-gonic/gin"
)

// kindStatus maps error kinds to HTTP statuses and user-facing messages.
// Kinds not listed here are reported as 500.
var kindStatus = map[common.Kind]struct {
	status  int
	message string
}{
	common.KindAlreadyRegistered:  {http.StatusConflict, "Email is already registered"},
	common.KindEmailNotRegistered: {http.StatusNotFound, "Email not registered"},
	common.KindInvalidPassword:    {http.StatusUnauthorized, "Password is invalid"},
	common.KindInvalidToken:       {http.StatusUnauthorized, "Unauthorized"},
	common.KindRateLimited:        {http.StatusTooManyRequests, "Too Many Requests"},
}

// writeError renders err as an ErrorBody.
func writeError(c *gin.Context, err error) {
	var verr *common.ValidationError
	if errors.As(err, &verr) {
		httpx.WriteError(c, http.StatusBadRequest, verr.Messages())
		return
	}

	if m, ok := kindStatus[common.KindOf(err)]; ok {
		httpx.WriteError(c, m.status, m.message)
		return
	}
	httpx.WriteError(c, http.StatusInternalServerError, "Internal server error")
}
