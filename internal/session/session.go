package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Gourav-Tailor/food-ai/internal/cart"
	"github.com/Gourav-Tailor/food-ai/internal/catalog"
	"github.com/Gourav-Tailor/food-ai/internal/command"
	"github.com/Gourav-Tailor/food-ai/internal/pricing"
)

// ErrStaleCommand is returned when a command was resolved against a stage
// generation that has since moved on (e.g. a direct UI action landed while
// the NLU round trip was in flight). The command is discarded, not applied.
var ErrStaleCommand = errors.New("command resolved against a stale stage")

// Session is one ordering conversation. It owns its cart exclusively and is
// mutated only through Apply; callers serialize access through the Manager.
type Session struct {
	ID                   string
	Stage                Stage
	OrderType            command.OrderType
	Contact              command.Contact
	SelectedRestaurantID string
	Cart                 *cart.Cart
	CreatedAt            time.Time

	// generation moves on every stage transition; stale resolutions check
	// against it. orderSeq moves on NewOrder and on completion, guarding
	// checkout double-submission.
	generation uint64
	orderSeq   uint64

	store       *catalog.Store
	taxRate     float64
	deliveryFee float64
}

func New(store *catalog.Store, taxRate, deliveryFee float64) *Session {
	return &Session{
		ID:          uuid.New().String(),
		Stage:       StageChooseType,
		Cart:        cart.New(store),
		CreatedAt:   time.Now(),
		store:       store,
		taxRate:     taxRate,
		deliveryFee: deliveryFee,
	}
}

func (s *Session) Generation() uint64 { return s.generation }
func (s *Session) OrderSeq() uint64   { return s.orderSeq }

// Profile describes the current stage for the resolver.
func (s *Session) Profile() command.StageProfile {
	spec := s.Stage.spec()
	return command.StageProfile{
		Context:              spec.context,
		Vocabulary:           spec.vocabulary,
		Legal:                append(append([]command.Kind{}, spec.legal...), globalKinds...),
		SelectedRestaurantID: s.SelectedRestaurantID,
	}
}

func (s *Session) Totals() pricing.Totals {
	return s.Cart.Totals(s.taxRate, s.deliveryFee)
}

// --------------------------------------------------
// Command application
// --------------------------------------------------

// ApplyResolved applies a command that was resolved while the session was at
// the given generation; a mismatch means the stage changed underneath the
// resolution and the command is dropped.
func (s *Session) ApplyResolved(cmd command.Command, resolvedAt uint64) (string, error) {
	if resolvedAt != s.generation {
		return "", ErrStaleCommand
	}
	return s.Apply(cmd), nil
}

// Apply runs one command against the current stage. Failures never leave a
// partial mutation: the ack reports the problem and the session is unchanged.
func (s *Session) Apply(cmd command.Command) string {
	if cmd.Kind == command.KindDisambiguate {
		return s.ackDisambiguate(cmd)
	}

	if !s.Stage.allows(cmd.Kind) || cmd.Kind == command.KindUnknown {
		return "Sorry, I didn't catch that. " + s.Stage.spec().help
	}

	switch cmd.Kind {
	case command.KindSetOrderType:
		return s.applyOrderType(cmd)
	case command.KindSetContact:
		return s.applyContact(cmd)
	case command.KindSelectRestaurant:
		return s.applySelectRestaurant(cmd)
	case command.KindSelectItem:
		return s.applySelectItem(cmd)
	case command.KindAddItem:
		return s.applyAddItem(cmd)
	case command.KindRemoveItem:
		return s.applyRemoveItem(cmd)
	case command.KindCheckout:
		return s.applyCheckout()
	case command.KindGoBack:
		return s.applyGoBack()
	case command.KindNewOrder:
		s.reset()
		return "Starting a new order. Dine in or takeaway?"
	case command.KindHelp:
		return s.Stage.spec().help
	}

	return "Sorry, I didn't catch that. " + s.Stage.spec().help
}

func (s *Session) applyOrderType(cmd command.Command) string {
	s.OrderType = cmd.OrderType
	s.transition(StageChooseContact)
	if cmd.OrderType == command.DineIn {
		return "Dine in it is. Continue as guest, or tell me your phone number?"
	}
	return "Takeaway it is. Continue as guest, or tell me your phone number?"
}

func (s *Session) applyContact(cmd command.Command) string {
	s.Contact = cmd.Contact
	s.transition(StageChooseRestaurant)
	names := make([]string, 0, len(s.store.Restaurants()))
	for _, r := range s.store.Restaurants() {
		names = append(names, r.Name)
	}
	if cmd.Contact.Guest {
		return "Continuing as guest. Where shall we order from? We have " + strings.Join(names, ", ") + "."
	}
	return "Got your number. Where shall we order from? We have " + strings.Join(names, ", ") + "."
}

func (s *Session) applySelectRestaurant(cmd command.Command) string {
	restaurant, err := s.store.FindRestaurant(cmd.RestaurantID)
	if err != nil {
		return "I couldn't find that restaurant. " + s.Stage.spec().help
	}

	// Switching restaurants invalidates the cart.
	if !s.Cart.IsEmpty() && s.Cart.RestaurantID() != restaurant.ID {
		s.Cart.Clear()
	}

	s.SelectedRestaurantID = restaurant.ID
	s.transition(StageBuildCart)
	return fmt.Sprintf(
		"Selected %s. %s cuisine, about %d minutes. What would you like to add?",
		restaurant.Name,
		strings.Join(restaurant.CuisineTags, " and "),
		restaurant.EtaMin,
	)
}

func (s *Session) applySelectItem(cmd command.Command) string {
	item, err := s.store.FindItem(cmd.RestaurantID, cmd.ItemID)
	if err != nil {
		return "I couldn't find that item. " + s.Stage.spec().help
	}
	return fmt.Sprintf(
		"%s: %s Starts at %s. Say add %s to put it in the cart.",
		item.Name,
		item.Description,
		fmtMoney(item.BasePrice),
		strings.ToLower(item.Name),
	)
}

func (s *Session) applyAddItem(cmd command.Command) string {
	item, err := s.store.FindItem(cmd.RestaurantID, cmd.ItemID)
	if err != nil {
		return "I couldn't find that item. " + s.Stage.spec().help
	}

	if !s.Cart.IsEmpty() && s.Cart.RestaurantID() != cmd.RestaurantID {
		other, _ := s.store.FindRestaurant(cmd.RestaurantID)
		name := cmd.RestaurantName
		if other != nil {
			name = other.Name
		}
		return fmt.Sprintf(
			"Your cart belongs to another restaurant. Say restaurant %s to switch — that clears the cart.",
			strings.ToLower(name),
		)
	}

	selections := cart.DefaultSelections(item)
	unit := pricing.UnitPrice(item, selections)
	if _, err := s.Cart.AddLine(cmd.RestaurantID, cmd.ItemID, selections, cmd.Quantity); err != nil {
		return "I couldn't add that: " + err.Error()
	}

	// An item-led add also binds the restaurant.
	if s.SelectedRestaurantID != cmd.RestaurantID {
		s.SelectedRestaurantID = cmd.RestaurantID
	}
	if s.Stage == StageChooseRestaurant {
		s.transition(StageBuildCart)
	}

	totals := s.Cart.Totals(s.taxRate, s.deliveryFee)
	return fmt.Sprintf(
		"Added %d × %s at %s each. Cart total %s. Anything else, or checkout?",
		cmd.Quantity,
		item.Name,
		fmtMoney(unit),
		fmtMoney(totals.Total),
	)
}

func (s *Session) applyRemoveItem(cmd command.Command) string {
	for _, line := range s.Cart.Lines() {
		if line.ItemID != cmd.ItemID {
			continue
		}
		if cmd.Quantity >= line.Quantity {
			_ = s.Cart.RemoveLine(line.LineID)
			return fmt.Sprintf("Removed %s from the cart.", line.ItemName)
		}
		q, _ := s.Cart.ChangeQuantity(line.LineID, -cmd.Quantity)
		return fmt.Sprintf("Reduced %s to %d.", line.ItemName, q)
	}
	return "That item isn't in your cart."
}

func (s *Session) applyCheckout() string {
	// The cart can be emptied through the UI endpoints while the session sits
	// at checkout, so emptiness is re-checked on every path.
	if s.Cart.IsEmpty() {
		if s.Stage == StageCheckout {
			s.transition(StageBuildCart)
		}
		return "Your cart is empty. Please add items first."
	}

	if s.Stage == StageCheckout {
		// Explicit confirmation: the only path to Completed.
		totals := s.Cart.Totals(s.taxRate, s.deliveryFee)
		s.orderSeq++
		s.transition(StageCompleted)
		return fmt.Sprintf(
			"Order placed! Total amount %s. Say new order to start again.",
			fmtMoney(totals.Total),
		)
	}

	s.transition(StageCheckout)
	totals := s.Cart.Totals(s.taxRate, s.deliveryFee)
	return fmt.Sprintf(
		"Your cart has %d items. Subtotal %s, taxes %s, delivery %s, total %s. Say checkout to confirm, or back to modify.",
		s.Cart.ItemCount(),
		fmtMoney(totals.Subtotal),
		fmtMoney(totals.Tax),
		fmtMoney(totals.Delivery),
		fmtMoney(totals.Total),
	)
}

func (s *Session) applyGoBack() string {
	target := s.Stage.spec().back
	if target == "" {
		return s.Stage.spec().help
	}

	// Clear state scoped to the stage being left. The cart survives leaving
	// BuildCart; the restaurant binding does not survive leaving
	// ChooseRestaurant.
	switch s.Stage {
	case StageChooseContact:
		s.Contact = command.Contact{}
	case StageChooseRestaurant:
		s.SelectedRestaurantID = ""
	}

	s.transition(target)
	return "Going back. " + target.spec().help
}

func (s *Session) ackDisambiguate(cmd command.Command) string {
	names := make([]string, 0, len(cmd.Candidates))
	for _, c := range cmd.Candidates {
		names = append(names, c.RestaurantName)
	}
	return fmt.Sprintf(
		"%s is served at %s. Which restaurant would you like?",
		cmd.ItemName,
		strings.Join(names, " and "),
	)
}

// --------------------------------------------------
// Internals
// --------------------------------------------------

func (s *Session) transition(next Stage) {
	s.Stage = next
	s.generation++
}

func (s *Session) reset() {
	s.OrderType = ""
	s.Contact = command.Contact{}
	s.SelectedRestaurantID = ""
	s.Cart.Clear()
	s.orderSeq++
	s.transition(StageChooseType)
}

func fmtMoney(v float64) string {
	return fmt.Sprintf("₹%.0f", v)
}
