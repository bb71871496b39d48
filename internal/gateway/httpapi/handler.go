// Package httpapi is the gateway's HTTP surface.
package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/authslice/internal/common"
	"github.com/dmitrijs2005/authslice/internal/gateway/auth"
	"github.com/dmitrijs2005/authslice/internal/logging"
	"github.com/dmitrijs2005/authslice/internal/rpc"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *auth.Service
	logger  logging.Logger
}

func NewHandler(s *auth.Service, l logging.Logger) *Handler {
	return &Handler{service: s, logger: l.With("module", "http_handler")}
}

func (h *Handler) Register(c *gin.Context) {
	var in auth.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, &common.ValidationError{Fields: []common.FieldError{{Field: "body", Message: "must be a JSON object"}}})
		return
	}

	u, err := h.service.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Login runs after the local strategy has authenticated the caller.
func (h *Handler) Login(c *gin.Context) {
	id, ok := identityFrom(c)
	if !ok {
		writeError(c, common.ErrInvalidToken)
		return
	}

	res, err := h.service.Login(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Profile returns the identity carried by the bearer token.
func (h *Handler) Profile(c *gin.Context) {
	id, ok := identityFrom(c)
	if !ok {
		writeError(c, common.ErrInvalidToken)
		return
	}
	c.JSON(http.StatusOK, id)
}

// ListUsers forwards the backend listing. An empty store yields the
// explicit marker instead of an empty array.
func (h *Handler) ListUsers(c *gin.Context) {
	reply, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if reply.Empty() {
		c.JSON(http.StatusOK, gin.H{"message": rpc.NoUsersMessage})
		return
	}
	c.JSON(http.StatusOK, reply.Users)
}
