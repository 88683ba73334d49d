package session

import (
	"context"
	"strings"
	"testing"

	"github.com/Gourav-Tailor/food-ai/internal/catalog"
	"github.com/Gourav-Tailor/food-ai/internal/command"
)

func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore(catalog.Seed())
	if err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
	return store
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return New(testStore(t), 0.05, 20)
}

// Walks the session to BuildCart with one biryani in the cart.
func sessionWithCart(t *testing.T) *Session {
	t.Helper()
	s := newTestSession(t)
	s.Apply(command.Command{Kind: command.KindSetOrderType, OrderType: command.DineIn})
	s.Apply(command.Command{Kind: command.KindSetContact, Contact: command.Contact{Guest: true}})
	s.Apply(command.Command{Kind: command.KindSelectRestaurant, RestaurantID: "r1"})
	s.Apply(command.Command{Kind: command.KindAddItem, RestaurantID: "r1", ItemID: "m1", Quantity: 1})
	if s.Stage != StageBuildCart {
		t.Fatalf("fixture expected build_cart, got %s", s.Stage)
	}
	return s
}

// --------------------------------------------------
// Stage flow
// --------------------------------------------------

func TestFlow_HappyPath(t *testing.T) {
	s := newTestSession(t)
	if s.Stage != StageChooseType {
		t.Fatalf("new session should start at choose_type, got %s", s.Stage)
	}

	ack := s.Apply(command.Command{Kind: command.KindSetOrderType, OrderType: command.DineIn})
	if s.Stage != StageChooseContact {
		t.Fatalf("expected choose_contact, got %s", s.Stage)
	}
	if !strings.Contains(ack, "Dine in") {
		t.Errorf("unexpected ack: %q", ack)
	}

	ack = s.Apply(command.Command{Kind: command.KindSetContact, Contact: command.Contact{Guest: true}})
	if s.Stage != StageChooseRestaurant {
		t.Fatalf("expected choose_restaurant, got %s", s.Stage)
	}
	if !strings.Contains(ack, "Bombay Spice Kitchen") {
		t.Errorf("restaurant list missing from ack: %q", ack)
	}

	s.Apply(command.Command{Kind: command.KindSelectRestaurant, RestaurantID: "r1"})
	if s.Stage != StageBuildCart || s.SelectedRestaurantID != "r1" {
		t.Fatalf("expected build_cart bound to r1, got %s / %q", s.Stage, s.SelectedRestaurantID)
	}

	ack = s.Apply(command.Command{Kind: command.KindAddItem, RestaurantID: "r1", ItemID: "m1", Quantity: 2})
	if !strings.Contains(ack, "Added 2") {
		t.Errorf("unexpected add ack: %q", ack)
	}

	ack = s.Apply(command.Command{Kind: command.KindCheckout})
	if s.Stage != StageCheckout {
		t.Fatalf("first checkout should reach the review stage, got %s", s.Stage)
	}
	if !strings.Contains(ack, "Say checkout to confirm") {
		t.Errorf("unexpected review ack: %q", ack)
	}

	before := s.OrderSeq()
	ack = s.Apply(command.Command{Kind: command.KindCheckout})
	if s.Stage != StageCompleted {
		t.Fatalf("confirmation should complete the order, got %s", s.Stage)
	}
	if s.OrderSeq() != before+1 {
		t.Errorf("order sequence not bumped on completion")
	}
	if !strings.Contains(ack, "Order placed!") {
		t.Errorf("unexpected completion ack: %q", ack)
	}
}

func TestCheckout_IsIdempotentOnceCompleted(t *testing.T) {
	s := sessionWithCart(t)
	s.Apply(command.Command{Kind: command.KindCheckout})
	s.Apply(command.Command{Kind: command.KindCheckout})

	seq := s.OrderSeq()
	ack := s.Apply(command.Command{Kind: command.KindCheckout})

	if s.Stage != StageCompleted {
		t.Fatalf("stage changed after completion: %s", s.Stage)
	}
	if s.OrderSeq() != seq {
		t.Errorf("a repeated checkout must not place another order")
	}
	if !strings.Contains(ack, "didn't catch that") {
		t.Errorf("expected help-style rejection, got %q", ack)
	}
}

func TestCheckout_EmptyCartRefused(t *testing.T) {
	s := newTestSession(t)
	s.Apply(command.Command{Kind: command.KindSetOrderType, OrderType: command.Takeaway})
	s.Apply(command.Command{Kind: command.KindSetContact, Contact: command.Contact{Guest: true}})
	s.Apply(command.Command{Kind: command.KindSelectRestaurant, RestaurantID: "r1"})

	ack := s.Apply(command.Command{Kind: command.KindCheckout})
	if s.Stage != StageBuildCart {
		t.Fatalf("empty checkout must not transition, got %s", s.Stage)
	}
	if !strings.Contains(ack, "cart is empty") {
		t.Errorf("unexpected ack: %q", ack)
	}
}

func TestCheckout_CartEmptiedDuringReviewCannotComplete(t *testing.T) {
	s := sessionWithCart(t)
	s.Apply(command.Command{Kind: command.KindCheckout})
	if s.Stage != StageCheckout {
		t.Fatalf("fixture expected checkout, got %s", s.Stage)
	}

	// The UI cart endpoints can clear the cart while the review is open.
	s.Cart.Clear()

	seq := s.OrderSeq()
	ack := s.Apply(command.Command{Kind: command.KindCheckout})

	if s.Stage != StageBuildCart {
		t.Fatalf("confirming over an emptied cart must bounce back, got %s", s.Stage)
	}
	if s.OrderSeq() != seq {
		t.Error("an empty confirmation must not place an order")
	}
	if !strings.Contains(ack, "cart is empty") {
		t.Errorf("unexpected ack: %q", ack)
	}
}

func TestUnknown_GetsHelpAndNoTransition(t *testing.T) {
	s := newTestSession(t)
	ack := s.Apply(command.Unknown("blargh"))
	if s.Stage != StageChooseType {
		t.Fatalf("unknown command must not transition, got %s", s.Stage)
	}
	if !strings.Contains(ack, "dine in, or takeaway") {
		t.Errorf("expected stage help in ack, got %q", ack)
	}
}

func TestIllegalCommandForStage(t *testing.T) {
	s := newTestSession(t)
	ack := s.Apply(command.Command{Kind: command.KindCheckout})
	if s.Stage != StageChooseType {
		t.Fatalf("checkout at choose_type must not transition, got %s", s.Stage)
	}
	if !strings.Contains(ack, "didn't catch that") {
		t.Errorf("unexpected ack: %q", ack)
	}
}

// --------------------------------------------------
// Go back
// --------------------------------------------------

func TestGoBack_CartSurvivesLeavingBuildCart(t *testing.T) {
	s := sessionWithCart(t)

	s.Apply(command.Command{Kind: command.KindGoBack})
	if s.Stage != StageChooseRestaurant {
		t.Fatalf("expected choose_restaurant, got %s", s.Stage)
	}
	if s.Cart.IsEmpty() {
		t.Error("cart must survive leaving build_cart")
	}

	s.Apply(command.Command{Kind: command.KindGoBack})
	if s.Stage != StageChooseContact {
		t.Fatalf("expected choose_contact, got %s", s.Stage)
	}
	if s.SelectedRestaurantID != "" {
		t.Error("restaurant binding must not survive leaving choose_restaurant")
	}

	s.Apply(command.Command{Kind: command.KindGoBack})
	if s.Stage != StageChooseType {
		t.Fatalf("expected choose_type, got %s", s.Stage)
	}
	if s.Contact != (command.Contact{}) {
		t.Error("contact must not survive leaving choose_contact")
	}
}

func TestGoBack_NoTargetIsNoOp(t *testing.T) {
	s := newTestSession(t)
	gen := s.Generation()
	s.Apply(command.Command{Kind: command.KindGoBack})
	if s.Stage != StageChooseType {
		t.Fatalf("go back at the first stage must stay put, got %s", s.Stage)
	}
	if s.Generation() != gen {
		t.Error("a no-op go back must not burn a generation")
	}
}

// --------------------------------------------------
// Restaurant switching
// --------------------------------------------------

func TestSwitchRestaurant_ClearsCart(t *testing.T) {
	s := sessionWithCart(t)

	s.Apply(command.Command{Kind: command.KindSelectRestaurant, RestaurantID: "r2"})
	if !s.Cart.IsEmpty() {
		t.Error("switching restaurants must clear the cart")
	}
	if s.SelectedRestaurantID != "r2" {
		t.Errorf("expected r2 bound, got %q", s.SelectedRestaurantID)
	}
}

func TestAddItem_OtherRestaurantRefusedWithoutSwitch(t *testing.T) {
	s := sessionWithCart(t)

	ack := s.Apply(command.Command{Kind: command.KindAddItem, RestaurantID: "r2", ItemID: "m4", Quantity: 1})
	if !strings.Contains(ack, "another restaurant") {
		t.Fatalf("expected mismatch refusal, got %q", ack)
	}
	if len(s.Cart.Lines()) != 1 || s.Cart.RestaurantID() != "r1" {
		t.Error("refused add must leave the cart untouched")
	}
}

func TestAddItem_BindsRestaurantFromChooseStage(t *testing.T) {
	s := newTestSession(t)
	s.Apply(command.Command{Kind: command.KindSetOrderType, OrderType: command.DineIn})
	s.Apply(command.Command{Kind: command.KindSetContact, Contact: command.Contact{Guest: true}})

	// Item-led entry: no restaurant selected yet.
	s.Apply(command.Command{Kind: command.KindAddItem, RestaurantID: "r2", ItemID: "m4", Quantity: 1})
	if s.Stage != StageBuildCart {
		t.Fatalf("item-led add should land in build_cart, got %s", s.Stage)
	}
	if s.SelectedRestaurantID != "r2" {
		t.Errorf("add should bind the restaurant, got %q", s.SelectedRestaurantID)
	}
}

// --------------------------------------------------
// Remove
// --------------------------------------------------

func TestRemoveItem_PartialThenFull(t *testing.T) {
	s := sessionWithCart(t)
	s.Apply(command.Command{Kind: command.KindAddItem, RestaurantID: "r1", ItemID: "m3", Quantity: 3})

	ack := s.Apply(command.Command{Kind: command.KindRemoveItem, RestaurantID: "r1", ItemID: "m3", Quantity: 1})
	if !strings.Contains(ack, "Reduced") {
		t.Fatalf("expected partial reduction, got %q", ack)
	}

	ack = s.Apply(command.Command{Kind: command.KindRemoveItem, RestaurantID: "r1", ItemID: "m3", Quantity: 5})
	if !strings.Contains(ack, "Removed") {
		t.Fatalf("expected full removal, got %q", ack)
	}

	ack = s.Apply(command.Command{Kind: command.KindRemoveItem, RestaurantID: "r1", ItemID: "m3", Quantity: 1})
	if !strings.Contains(ack, "isn't in your cart") {
		t.Errorf("expected not-in-cart ack, got %q", ack)
	}
}

// --------------------------------------------------
// New order and staleness
// --------------------------------------------------

func TestNewOrder_ResetsEverything(t *testing.T) {
	s := sessionWithCart(t)
	seq := s.OrderSeq()

	s.Apply(command.Command{Kind: command.KindNewOrder})

	if s.Stage != StageChooseType {
		t.Fatalf("expected choose_type, got %s", s.Stage)
	}
	if s.OrderType != "" || s.Contact != (command.Contact{}) || s.SelectedRestaurantID != "" {
		t.Error("new order must clear order type, contact and restaurant")
	}
	if !s.Cart.IsEmpty() {
		t.Error("new order must clear the cart")
	}
	if s.OrderSeq() != seq+1 {
		t.Error("new order must bump the order sequence")
	}
}

func TestApplyResolved_StaleGenerationDiscarded(t *testing.T) {
	s := newTestSession(t)
	resolvedAt := s.Generation()

	// The stage moves on while the resolution was in flight.
	s.Apply(command.Command{Kind: command.KindSetOrderType, OrderType: command.DineIn})

	_, err := s.ApplyResolved(command.Command{Kind: command.KindSetOrderType, OrderType: command.Takeaway}, resolvedAt)
	if err != ErrStaleCommand {
		t.Fatalf("expected ErrStaleCommand, got %v", err)
	}
	if s.OrderType != command.DineIn {
		t.Error("stale command must not be applied")
	}
}

func TestDisambiguate_AcksWithoutTransition(t *testing.T) {
	s := sessionWithCart(t)
	gen := s.Generation()

	ack := s.Apply(command.Command{
		Kind:     command.KindDisambiguate,
		ItemName: "gulab jamun",
		Candidates: []command.Candidate{
			{RestaurantID: "r1", RestaurantName: "Bombay Spice Kitchen"},
			{RestaurantID: "r3", RestaurantName: "Mediterranean Breeze"},
		},
	})

	if s.Generation() != gen {
		t.Error("disambiguation must not transition")
	}
	if !strings.Contains(ack, "Bombay Spice Kitchen") || !strings.Contains(ack, "Mediterranean Breeze") {
		t.Errorf("candidates missing from ack: %q", ack)
	}
}

// --------------------------------------------------
// Manager
// --------------------------------------------------

func TestManager_SayDrivesTheFlow(t *testing.T) {
	store := testStore(t)
	m := NewManager(store, command.NewResolver(store, nil), 0.05, 20)

	s := m.Create()
	if _, err := m.Get(s.ID); err != nil {
		t.Fatalf("fresh session not found: %v", err)
	}

	ctx := context.Background()
	res, err := m.Say(ctx, s.ID, "dine in please")
	if err != nil {
		t.Fatalf("say failed: %v", err)
	}
	if res.Stage != StageChooseContact {
		t.Fatalf("expected choose_contact, got %s", res.Stage)
	}

	res, err = m.Say(ctx, s.ID, "continue as guest")
	if err != nil {
		t.Fatalf("say failed: %v", err)
	}
	if res.Stage != StageChooseRestaurant {
		t.Fatalf("expected choose_restaurant, got %s", res.Stage)
	}

	res, err = m.Say(ctx, s.ID, "add 2 chicken biryani from bombay spice kitchen")
	if err != nil {
		t.Fatalf("say failed: %v", err)
	}
	if res.Stage != StageBuildCart {
		t.Fatalf("expected build_cart, got %s", res.Stage)
	}
	if res.Totals.Subtotal == 0 {
		t.Error("expected a priced cart in the result totals")
	}
}

func TestManager_UnknownSession(t *testing.T) {
	store := testStore(t)
	m := NewManager(store, command.NewResolver(store, nil), 0.05, 20)

	if _, err := m.Say(context.Background(), "nope", "hello"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	s := m.Create()
	m.Delete(s.ID)
	if _, err := m.Get(s.ID); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestManager_DispatchDirectCommand(t *testing.T) {
	store := testStore(t)
	m := NewManager(store, command.NewResolver(store, nil), 0.05, 20)
	s := m.Create()

	res, err := m.Dispatch(s.ID, command.Command{Kind: command.KindSetOrderType, OrderType: command.Takeaway})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if res.Stage != StageChooseContact {
		t.Fatalf("expected choose_contact, got %s", res.Stage)
	}
}
