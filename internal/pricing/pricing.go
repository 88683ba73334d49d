package pricing

import (
	"math"

	"github.com/Gourav-Tailor/food-ai/internal/catalog"
)

// Selection is the chosen option ids for one option set of one menu item.
type Selection struct {
	OptionSetID     string   `json:"option_set_id"`
	ChosenOptionIDs []string `json:"chosen_option_ids"`
}

// UnitPrice computes the configured price of one unit: base price plus the
// delta of the chosen option for each single-choice set and the sum of deltas
// for each multi-choice set. An absent selection contributes nothing. An
// option id that does not exist in its set also contributes nothing — stale
// client state is priced as zero rather than rejected.
func UnitPrice(item *catalog.MenuItem, selections []Selection) float64 {
	price := item.BasePrice

	for i := range item.OptionSets {
		set := &item.OptionSets[i]
		sel := findSelection(selections, set.ID)
		if sel == nil {
			continue
		}

		switch set.Kind {
		case catalog.SingleChoice:
			if len(sel.ChosenOptionIDs) == 0 {
				continue
			}
			if opt := set.FindOption(sel.ChosenOptionIDs[0]); opt != nil {
				price += opt.PriceDelta
			}
		case catalog.MultiChoice:
			for _, id := range sel.ChosenOptionIDs {
				if opt := set.FindOption(id); opt != nil {
					price += opt.PriceDelta
				}
			}
		}
	}
	return price
}

func findSelection(selections []Selection, setID string) *Selection {
	for i := range selections {
		if selections[i].OptionSetID == setID {
			return &selections[i]
		}
	}
	return nil
}

// --------------------------------------------------
// Cart totals
// --------------------------------------------------

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

// LinePrice is one priced cart line, the input to ComputeTotals.
type LinePrice struct {
	UnitPrice float64
	Quantity  int
}

// ComputeTotals derives the order totals. Tax is rounded half-up on the
// subtotal product, not per line. Delivery is a flat fee waived on an empty
// cart.
func ComputeTotals(lines []LinePrice, taxRate, deliveryFee float64) Totals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.UnitPrice * float64(l.Quantity)
	}

	var delivery float64
	if subtotal > 0 {
		delivery = deliveryFee
	}

	tax := RoundHalfUp(subtotal * taxRate)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Delivery: delivery,
		Total:    subtotal + tax + delivery,
	}
}

// RoundHalfUp rounds to the nearest whole amount, halves away from zero.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
