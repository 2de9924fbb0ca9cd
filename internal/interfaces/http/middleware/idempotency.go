package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"netbill/internal/infrastructure/idempotency"
	"netbill/internal/shared/logger"
	"netbill/internal/shared/utils"
)

const idempotencyHeader = "Idempotency-Key"

type IdempotencyMiddleware struct {
	store  *idempotency.Store
	logger logger.Interface
}

func NewIdempotencyMiddleware(store *idempotency.Store, logger logger.Interface) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{
		store:  store,
		logger: logger,
	}
}

// Guard rejects a request whose Idempotency-Key was already used within the
// configured window. The header is optional: requests without it pass
// through, because the lifecycle writes are deliberately non-idempotent for
// clients that want repeated subscribes to create repeated rows.
func (m *IdempotencyMiddleware) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		claimed, err := m.store.Claim(c.Request.Context(), key)
		if err != nil {
			m.logger.Errorw("failed to check idempotency key", "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
			c.Abort()
			return
		}
		if !claimed {
			utils.ErrorResponse(c, http.StatusConflict, "duplicate request: idempotency key already used")
			c.Abort()
			return
		}

		c.Next()

		// A failed request releases the key so the client can retry with it.
		if c.Writer.Status() >= http.StatusInternalServerError {
			if err := m.store.Release(c.Request.Context(), key); err != nil {
				m.logger.Warnw("failed to release idempotency key", "error", err)
			}
		}
	}
}
