package command

import (
	"context"
	"errors"
	"testing"

	"github.com/Gourav-Tailor/food-ai/internal/catalog"
)

// --------------------------------------------------
// Fake NLU client
// --------------------------------------------------

type fakeNLU struct {
	reply string
	err   error
	calls int
}

func (f *fakeNLU) ParseCommand(ctx context.Context, stageContext string, vocabulary []string, utterance string) (string, error) {
	f.calls++
	return f.reply, f.err
}

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

func seedStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore(catalog.Seed())
	if err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
	return store
}

// Two restaurants serving the same dish name, for disambiguation tests.
func sweetShopStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore([]catalog.Restaurant{
		{ID: "s1", Name: "Agra Sweets", Menu: []catalog.MenuItem{
			{ID: "g1", Name: "Gulab Jamun", BasePrice: 60},
		}},
		{ID: "s2", Name: "Delhi Mithai Wala", Menu: []catalog.MenuItem{
			{ID: "g2", Name: "Gulab Jamun", BasePrice: 70},
			{ID: "k1", Name: "Kaju Katli", BasePrice: 120},
		}},
	})
	if err != nil {
		t.Fatalf("store invalid: %v", err)
	}
	return store
}

func buildCartProfile(selected string) StageProfile {
	return StageProfile{
		Context: "building the cart",
		Vocabulary: []string{
			"add <qty> <item>", "remove <qty> <item>", "checkout", "unknown",
		},
		Legal: []Kind{
			KindAddItem, KindRemoveItem, KindSelectItem,
			KindSelectRestaurant, KindCheckout,
			KindHelp, KindGoBack, KindNewOrder,
		},
		SelectedRestaurantID: selected,
	}
}

// --------------------------------------------------
// NLU-first resolution
// --------------------------------------------------

func TestResolve_NluReplyIsGrounded(t *testing.T) {
	client := &fakeNLU{reply: "restaurant kyoto"}
	r := NewResolver(seedStore(t), client)

	profile := StageProfile{
		Legal: []Kind{KindSelectRestaurant, KindHelp, KindGoBack, KindNewOrder},
	}
	cmd := r.Resolve(context.Background(), profile, "take me to that ramen place in kyoto")

	if client.calls != 1 {
		t.Fatalf("expected one NLU call, got %d", client.calls)
	}
	if cmd.Kind != KindSelectRestaurant {
		t.Fatalf("expected select restaurant, got %s", cmd.Kind)
	}
	if cmd.RestaurantID != "r2" || cmd.RestaurantName != "Kyoto Street Ramen" {
		t.Errorf("expected grounded r2, got %+v", cmd)
	}
}

func TestResolve_NluFailureFallsBack(t *testing.T) {
	client := &fakeNLU{err: errors.New("service down")}
	r := NewResolver(seedStore(t), client)

	profile := StageProfile{
		Legal: []Kind{KindSetContact, KindHelp, KindGoBack, KindNewOrder},
	}
	cmd := r.Resolve(context.Background(), profile, "just continue as guest")

	if cmd.Kind != KindSetContact || !cmd.Contact.Guest {
		t.Fatalf("expected guest contact via fallback, got %+v", cmd)
	}
}

func TestResolve_NluUnknownFallsBack(t *testing.T) {
	client := &fakeNLU{reply: "unknown"}
	r := NewResolver(seedStore(t), client)

	cmd := r.Resolve(context.Background(), buildCartProfile("r1"), "get me a chicken biryani")

	if cmd.Kind != KindAddItem {
		t.Fatalf("expected add via fallback, got %s", cmd.Kind)
	}
	if cmd.ItemID != "m1" {
		t.Errorf("expected m1, got %+v", cmd)
	}
}

// --------------------------------------------------
// Disambiguation
// --------------------------------------------------

func TestResolve_AmbiguousItemAcrossRestaurants(t *testing.T) {
	r := NewResolver(sweetShopStore(t), nil)

	profile := StageProfile{
		Legal: []Kind{KindAddItem, KindSelectRestaurant, KindHelp, KindGoBack, KindNewOrder},
	}
	cmd := r.Resolve(context.Background(), profile, "add 3 gulab jamun")

	if cmd.Kind != KindDisambiguate {
		t.Fatalf("expected disambiguation, got %s", cmd.Kind)
	}
	if len(cmd.Candidates) != 2 {
		t.Fatalf("expected exactly 2 candidates, got %d", len(cmd.Candidates))
	}
	if cmd.Candidates[0].RestaurantID != "s1" || cmd.Candidates[1].RestaurantID != "s2" {
		t.Errorf("expected s1 and s2, got %+v", cmd.Candidates)
	}
	if cmd.Quantity != 3 {
		t.Errorf("expected quantity kept through disambiguation, got %d", cmd.Quantity)
	}
}

func TestResolve_HintResolvesAmbiguity(t *testing.T) {
	client := &fakeNLU{reply: "add 3 gulab jamun from agra sweets"}
	r := NewResolver(sweetShopStore(t), client)

	profile := StageProfile{
		Legal: []Kind{KindAddItem, KindHelp, KindGoBack, KindNewOrder},
	}
	cmd := r.Resolve(context.Background(), profile, "add 3 gulab jamun from agra sweets")

	if cmd.Kind != KindAddItem {
		t.Fatalf("expected add, got %s", cmd.Kind)
	}
	if cmd.RestaurantID != "s1" || cmd.ItemID != "g1" {
		t.Errorf("expected s1/g1, got %+v", cmd)
	}
}

func TestResolve_BoundRestaurantScopesItems(t *testing.T) {
	client := &fakeNLU{reply: "add 3 gulab jamun"}
	r := NewResolver(sweetShopStore(t), client)

	profile := StageProfile{
		Legal:                []Kind{KindAddItem, KindHelp, KindGoBack, KindNewOrder},
		SelectedRestaurantID: "s2",
	}
	cmd := r.Resolve(context.Background(), profile, "add 3 gulab jamun")

	if cmd.Kind != KindAddItem {
		t.Fatalf("expected add, got %s", cmd.Kind)
	}
	if cmd.RestaurantID != "s2" || cmd.ItemID != "g2" {
		t.Errorf("expected the bound restaurant's dish, got %+v", cmd)
	}
}

// --------------------------------------------------
// Local fallback (no NLU configured)
// --------------------------------------------------

func TestResolve_FallbackKeywords(t *testing.T) {
	r := NewResolver(seedStore(t), nil)

	typeProfile := StageProfile{
		Legal: []Kind{KindSetOrderType, KindHelp, KindGoBack, KindNewOrder},
	}
	if cmd := r.Resolve(context.Background(), typeProfile, "we'll dine in today"); cmd.OrderType != DineIn {
		t.Errorf("expected dine-in, got %+v", cmd)
	}
	if cmd := r.Resolve(context.Background(), typeProfile, "make it takeaway"); cmd.OrderType != Takeaway {
		t.Errorf("expected takeaway, got %+v", cmd)
	}

	checkoutProfile := buildCartProfile("r1")
	if cmd := r.Resolve(context.Background(), checkoutProfile, "place my order please"); cmd.Kind != KindCheckout {
		t.Errorf("expected checkout, got %+v", cmd)
	}
	if cmd := r.Resolve(context.Background(), checkoutProfile, "remove the masala chai"); cmd.Kind != KindRemoveItem {
		t.Errorf("expected remove, got %+v", cmd)
	}
}

func TestResolve_FallbackRestaurantName(t *testing.T) {
	r := NewResolver(seedStore(t), nil)

	profile := StageProfile{
		Legal: []Kind{KindSelectRestaurant, KindAddItem, KindSelectItem, KindHelp, KindGoBack, KindNewOrder},
	}
	cmd := r.Resolve(context.Background(), profile, "let's try mediterranean breeze")

	if cmd.Kind != KindSelectRestaurant || cmd.RestaurantID != "r3" {
		t.Errorf("expected r3, got %+v", cmd)
	}
}

func TestResolve_NothingMatchesIsUnknown(t *testing.T) {
	r := NewResolver(seedStore(t), nil)

	cmd := r.Resolve(context.Background(), buildCartProfile("r1"), "sing me a song")
	if cmd.Kind != KindUnknown {
		t.Fatalf("expected unknown, got %s", cmd.Kind)
	}
	if cmd.Raw != "sing me a song" {
		t.Errorf("expected raw text preserved, got %q", cmd.Raw)
	}
}
