package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) ListRestaurants(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"restaurants": h.store.Restaurants()})
}

func (h *Handler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.store.FindRestaurant(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Search ranks by name: exact, then prefix, then substring.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	matches := h.store.SearchRestaurants(query)
	results := make([]gin.H, 0, len(matches))
	for _, m := range matches {
		results = append(results, gin.H{
			"id":   m.Restaurant.ID,
			"name": m.Restaurant.Name,
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
