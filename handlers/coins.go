package handlers

import (
	"context"
	"net/http"

	"travelplanner/models"
	"travelplanner/utils"

	"github.com/gin-gonic/gin"
)

// CoinSearcher is the coin directory as seen by the handlers.
type CoinSearcher interface {
	Search(ctx context.Context, term string) ([]models.Coin, error)
}

type CoinHandler struct {
	coins CoinSearcher
}

func NewCoinHandler(coins CoinSearcher) *CoinHandler {
	return &CoinHandler{coins: coins}
}

// SearchCoinsHandler lists directory coins whose name or symbol contains ?q=.
func (h *CoinHandler) SearchCoinsHandler(c *gin.Context) {
	coins, err := h.coins.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, msgCoinsUnavailable, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coins": coins})
}
