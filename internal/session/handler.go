package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gourav-Tailor/food-ai/internal/cart"
	"github.com/Gourav-Tailor/food-ai/internal/catalog"
	"github.com/Gourav-Tailor/food-ai/internal/command"
	"github.com/Gourav-Tailor/food-ai/internal/pricing"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// --------------------------------------------------
// Session lifecycle
// --------------------------------------------------

func (h *Handler) Create(c *gin.Context) {
	s := h.manager.Create()
	c.JSON(http.StatusCreated, gin.H{
		"session_id": s.ID,
		"stage":      s.Stage,
		"ack":        "Welcome! Dine in or takeaway?",
	})
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.manager.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id":    s.ID,
		"stage":         s.Stage,
		"order_type":    s.OrderType,
		"restaurant_id": s.SelectedRestaurantID,
		"cart":          s.Cart.Lines(),
		"totals":        s.Totals(),
	})
}

// --------------------------------------------------
// Voice path: one utterance in, one ack out
// --------------------------------------------------

func (h *Handler) Say(c *gin.Context) {
	var req struct {
		Utterance string `json:"utterance"`
	}
	if err := c.BindJSON(&req); err != nil || req.Utterance == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "utterance is required"})
		return
	}

	result, err := h.manager.Say(c.Request.Context(), c.Param("id"), req.Utterance)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrSessionNotFound):
			status = http.StatusNotFound
		case errors.Is(err, ErrStaleCommand):
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// UI path: direct typed command
// --------------------------------------------------

func (h *Handler) Dispatch(c *gin.Context) {
	var cmd command.Command
	if err := c.BindJSON(&cmd); err != nil || cmd.Kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "command kind is required"})
		return
	}

	result, err := h.manager.Dispatch(c.Param("id"), cmd)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// Cart endpoints (UI path, explicit configuration)
// --------------------------------------------------

func (h *Handler) AddLine(c *gin.Context) {
	var req struct {
		RestaurantID string              `json:"restaurant_id"`
		ItemID       string              `json:"item_id"`
		Selections   []pricing.Selection `json:"selections"`
		Quantity     int                 `json:"quantity"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	var lineID string
	err := h.manager.WithSession(c.Param("id"), func(s *Session) error {
		id, err := s.Cart.AddLine(req.RestaurantID, req.ItemID, req.Selections, req.Quantity)
		if err != nil {
			return err
		}
		lineID = id
		s.SelectedRestaurantID = req.RestaurantID
		return nil
	})
	if err != nil {
		c.JSON(cartErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"line_id": lineID})
}

func (h *Handler) ChangeQuantity(c *gin.Context) {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	var quantity int
	err := h.manager.WithSession(c.Param("id"), func(s *Session) error {
		q, err := s.Cart.ChangeQuantity(c.Param("lineId"), req.Delta)
		if err != nil {
			return err
		}
		quantity = q
		return nil
	})
	if err != nil {
		c.JSON(cartErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quantity": quantity})
}

func (h *Handler) RemoveLine(c *gin.Context) {
	err := h.manager.WithSession(c.Param("id"), func(s *Session) error {
		return s.Cart.RemoveLine(c.Param("lineId"))
	})
	if err != nil {
		c.JSON(cartErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

func (h *Handler) ClearCart(c *gin.Context) {
	err := h.manager.WithSession(c.Param("id"), func(s *Session) error {
		s.Cart.Clear()
		return nil
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

func cartErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrUnknownLine),
		errors.Is(err, catalog.ErrUnknownItem),
		errors.Is(err, catalog.ErrUnknownRestaurant):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrIncompleteSelection),
		errors.Is(err, cart.ErrRestaurantMismatch):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
