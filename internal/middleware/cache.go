package middleware

import (
	"github.com/gin-gonic/gin"
)

const responseMetaKey = "response_meta"

// WithResponseMeta seeds an empty metadata map on the request context.
// Handlers annotate it (cache hits, timings, derived totals) and the response
// envelope carries whatever ended up in it.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(responseMetaKey, map[string]interface{}{})
		c.Next()
	}
}

// SetCacheHit marks whether the response was served from the query cache.
func SetCacheHit(c *gin.Context, hit bool) {
	if c == nil {
		return
	}
	meta := ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
		c.Set(responseMetaKey, meta)
	}
	meta["cache_hit"] = hit
}

// ExtractMeta returns the metadata map stored on the context, or nil when the
// middleware did not run.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	value, exists := c.Get(responseMetaKey)
	if !exists {
		return nil
	}
	meta, ok := value.(map[string]interface{})
	if !ok {
		return nil
	}
	return meta
}
