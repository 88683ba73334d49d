package places

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat is required"})
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lng is required"})
		return
	}
	radius, _ := strconv.Atoi(c.DefaultQuery("radius", "1500"))

	results, err := h.client.NearbySearch(
		c.Request.Context(),
		lat,
		lng,
		c.Query("keyword"),
		radius,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(results))
	for _, p := range results {
		out = append(out, gin.H{
			"id":          p.ID,
			"name":        p.Name,
			"vicinity":    p.Vicinity,
			"rating":      p.Rating,
			"ratings":     p.UserRatingsTotal,
			"price_range": PriceRange(p.PriceLevel),
			"photo_url":   h.client.PhotoURL(p.PhotoRef),
			"lat":         p.Lat,
			"lng":         p.Lng,
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": out})
}
