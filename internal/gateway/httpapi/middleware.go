package httpapi

import (
	"strconv"
	"time"

	"github.com/dmitrijs2005/authslice/internal/common"
	"github.com/dmitrijs2005/authslice/internal/gateway/auth"
	"github.com/dmitrijs2005/authslice/internal/gateway/ratelimit"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// rateLimit admits requests per client IP. The policy name keeps routes in
// separate buckets when limiters are shared.
func rateLimit(policy string, l *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := l.Allow(policy + ":" + c.ClientIP())
		if res.Limit > 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
		}
		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(res.RetryAfter(time.Now()).Seconds())))
			writeError(c, common.ErrRateLimited)
			return
		}
		c.Next()
	}
}

// authenticate runs s and stores the resulting identity on the context.
func authenticate(s auth.Strategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := s.Authenticate(c.Request)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Set(identityKey, *id)
		c.Next()
	}
}

func identityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
