package cart

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Gourav-Tailor/food-ai/internal/catalog"
	"github.com/Gourav-Tailor/food-ai/internal/pricing"
)

var (
	ErrIncompleteSelection = errors.New("a required option has no selection")
	ErrRestaurantMismatch  = errors.New("cart already holds items from another restaurant")
	ErrUnknownLine         = errors.New("cart line not found")
)

// Line is one configured item in the cart. UnitPrice is always derived from
// the selections through the pricing engine, never set by callers.
type Line struct {
	LineID       string              `json:"line_id"`
	RestaurantID string              `json:"restaurant_id"`
	ItemID       string              `json:"item_id"`
	ItemName     string              `json:"item_name"`
	Quantity     int                 `json:"quantity"`
	Selections   []pricing.Selection `json:"selections"`
	UnitPrice    float64             `json:"unit_price"`
}

// Cart is the order aggregate. All lines belong to one restaurant at a time;
// switching restaurants requires an explicit Clear. Mutations are
// all-or-nothing: a failed operation leaves the cart untouched.
type Cart struct {
	store        *catalog.Store
	restaurantID string
	lines        []Line
}

func New(store *catalog.Store) *Cart {
	return &Cart{store: store}
}

func (c *Cart) RestaurantID() string { return c.restaurantID }

// Lines returns a copy. All cart mutation goes through the methods below;
// editing the returned lines changes nothing.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	for i := range out {
		selections := make([]pricing.Selection, len(out[i].Selections))
		for j, sel := range out[i].Selections {
			sel.ChosenOptionIDs = append([]string(nil), sel.ChosenOptionIDs...)
			selections[j] = sel
		}
		out[i].Selections = selections
	}
	return out
}

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for i := range c.lines {
		n += c.lines[i].Quantity
	}
	return n
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

// AddLine appends a configured item. Fails when the item does not exist, when
// a required option set has no chosen option, or when the cart is bound to a
// different restaurant (callers must Clear first).
func (c *Cart) AddLine(restaurantID, itemID string, selections []pricing.Selection, quantity int) (string, error) {
	item, err := c.store.FindItem(restaurantID, itemID)
	if err != nil {
		return "", err
	}

	if !c.IsEmpty() && c.restaurantID != restaurantID {
		return "", ErrRestaurantMismatch
	}

	for i := range item.OptionSets {
		set := &item.OptionSets[i]
		if !set.Required {
			continue
		}
		if !hasChoice(selections, set.ID) {
			return "", ErrIncompleteSelection
		}
	}

	if quantity < 1 {
		quantity = 1
	}

	line := Line{
		LineID:       uuid.New().String(),
		RestaurantID: restaurantID,
		ItemID:       itemID,
		ItemName:     item.Name,
		Quantity:     quantity,
		Selections:   selections,
		UnitPrice:    pricing.UnitPrice(item, selections),
	}

	c.restaurantID = restaurantID
	c.lines = append(c.lines, line)
	return line.LineID, nil
}

// ChangeQuantity adjusts a line by delta, clamped to a minimum of 1. A
// decrement never removes the line; removal is a separate explicit operation.
func (c *Cart) ChangeQuantity(lineID string, delta int) (int, error) {
	line := c.findLine(lineID)
	if line == nil {
		return 0, ErrUnknownLine
	}

	q := line.Quantity + delta
	if q < 1 {
		q = 1
	}
	line.Quantity = q

	c.reprice(line)
	return q, nil
}

// UpdateSelections replaces a line's configuration and reprices it. The same
// completeness rule as AddLine applies.
func (c *Cart) UpdateSelections(lineID string, selections []pricing.Selection) error {
	line := c.findLine(lineID)
	if line == nil {
		return ErrUnknownLine
	}

	item, err := c.store.FindItem(line.RestaurantID, line.ItemID)
	if err != nil {
		return err
	}
	for i := range item.OptionSets {
		set := &item.OptionSets[i]
		if set.Required && !hasChoice(selections, set.ID) {
			return ErrIncompleteSelection
		}
	}

	line.Selections = selections
	line.UnitPrice = pricing.UnitPrice(item, selections)
	return nil
}

func (c *Cart) RemoveLine(lineID string) error {
	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			if len(c.lines) == 0 {
				c.restaurantID = ""
			}
			return nil
		}
	}
	return ErrUnknownLine
}

// Clear empties the cart and unbinds the restaurant.
func (c *Cart) Clear() {
	c.lines = nil
	c.restaurantID = ""
}

// --------------------------------------------------
// Totals
// --------------------------------------------------

func (c *Cart) Totals(taxRate, deliveryFee float64) pricing.Totals {
	prices := make([]pricing.LinePrice, 0, len(c.lines))
	for i := range c.lines {
		prices = append(prices, pricing.LinePrice{
			UnitPrice: c.lines[i].UnitPrice,
			Quantity:  c.lines[i].Quantity,
		})
	}
	return pricing.ComputeTotals(prices, taxRate, deliveryFee)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (c *Cart) findLine(lineID string) *Line {
	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			return &c.lines[i]
		}
	}
	return nil
}

func (c *Cart) reprice(line *Line) {
	item, err := c.store.FindItem(line.RestaurantID, line.ItemID)
	if err != nil {
		return
	}
	line.UnitPrice = pricing.UnitPrice(item, line.Selections)
}

func hasChoice(selections []pricing.Selection, setID string) bool {
	for i := range selections {
		if selections[i].OptionSetID == setID && len(selections[i].ChosenOptionIDs) > 0 {
			return true
		}
	}
	return false
}

// DefaultSelections builds the starting configuration for an item: the first
// option of every single-choice set, nothing for multi-choice sets. Voice
// commands that add an item without explicit options go through this.
func DefaultSelections(item *catalog.MenuItem) []pricing.Selection {
	selections := make([]pricing.Selection, 0, len(item.OptionSets))
	for i := range item.OptionSets {
		set := &item.OptionSets[i]
		if set.Kind == catalog.SingleChoice {
			selections = append(selections, pricing.Selection{
				OptionSetID:     set.ID,
				ChosenOptionIDs: []string{set.Options[0].ID},
			})
			continue
		}
		selections = append(selections, pricing.Selection{OptionSetID: set.ID})
	}
	return selections
}
