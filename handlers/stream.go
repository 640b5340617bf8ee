package handlers

import (
	"net/http"

	"physiocare/models"

	"github.com/gin-gonic/gin"
)

// streamResource drains a resource channel as server-sent events until the
// channel closes or the client goes away. Each snapshot becomes one "update"
// event whose payload names its state.
func streamResource[T any](c *gin.Context, updates <-chan models.Resource[T]) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	done := c.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case res, ok := <-updates:
			if !ok {
				return
			}
			c.SSEvent("update", resourceEvent(res))
			c.Writer.Flush()
		}
	}
}

func resourceEvent[T any](res models.Resource[T]) gin.H {
	switch {
	case res.IsLoading():
		return gin.H{"state": "loading"}
	case res.IsError():
		return gin.H{"state": "error", "message": res.Message}
	default:
		return gin.H{"state": "success", "data": res.Value}
	}
}
