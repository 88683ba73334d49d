package command

import (
	"context"
	"log"
	"strings"

	"github.com/Gourav-Tailor/food-ai/internal/catalog"
	"github.com/Gourav-Tailor/food-ai/internal/nlu"
)

// StageProfile is what the resolver knows about the caller's current stage:
// the description and vocabulary handed to the NLU collaborator, the command
// kinds that are legal, and the restaurant the session is bound to (scopes
// item lookups).
type StageProfile struct {
	Context              string
	Vocabulary           []string
	Legal                []Kind
	SelectedRestaurantID string
}

func (p StageProfile) Allows(kind Kind) bool {
	for _, k := range p.Legal {
		if k == kind {
			return true
		}
	}
	return false
}

// Resolver turns raw utterances into typed Commands: NLU first pass, exact
// template parse, then local keyword and catalog matching when the NLU result
// is unusable. An unreachable NLU service is never surfaced to the caller.
type Resolver struct {
	store  *catalog.Store
	client nlu.Client
}

func NewResolver(store *catalog.Store, client nlu.Client) *Resolver {
	return &Resolver{store: store, client: client}
}

func (r *Resolver) Resolve(ctx context.Context, profile StageProfile, utterance string) Command {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return Unknown(utterance)
	}

	if r.client != nil {
		reply, err := r.client.ParseCommand(ctx, profile.Context, profile.Vocabulary, utterance)
		if err == nil {
			cmd := Parse(reply)
			if cmd.Kind != KindUnknown {
				return r.ground(cmd, profile)
			}
		} else {
			log.Println("nlu unavailable, falling back to local matching:", err)
		}
	}

	return r.ground(r.fallback(profile, utterance), profile)
}

// --------------------------------------------------
// Catalog grounding
// --------------------------------------------------

// ground resolves spoken names to catalog ids. An item name that matches more
// than one restaurant with no hint and no bound restaurant becomes a
// disambiguation pseudo-command instead of a guess.
func (r *Resolver) ground(cmd Command, profile StageProfile) Command {
	switch cmd.Kind {
	case KindSelectRestaurant:
		matches := r.store.SearchRestaurants(cmd.RestaurantName)
		if len(matches) == 0 {
			return Unknown(cmd.RestaurantName)
		}
		cmd.RestaurantID = matches[0].Restaurant.ID
		cmd.RestaurantName = matches[0].Restaurant.Name
		return cmd

	case KindSelectItem, KindAddItem, KindRemoveItem:
		scope := profile.SelectedRestaurantID
		if cmd.RestaurantName != "" {
			hinted := r.store.SearchRestaurants(cmd.RestaurantName)
			if len(hinted) == 0 {
				return Unknown(cmd.RestaurantName)
			}
			scope = hinted[0].Restaurant.ID
		}

		matches := r.store.SearchItems(cmd.ItemName, scope)
		if len(matches) == 0 {
			return Unknown(cmd.ItemName)
		}

		// Only the best rank tier counts toward ambiguity.
		best := matches[0].Rank
		var candidates []Candidate
		seen := map[string]bool{}
		for _, m := range matches {
			if m.Rank != best {
				break
			}
			if !seen[m.Restaurant.ID] {
				seen[m.Restaurant.ID] = true
				candidates = append(candidates, Candidate{
					RestaurantID:   m.Restaurant.ID,
					RestaurantName: m.Restaurant.Name,
				})
			}
		}
		if len(candidates) > 1 {
			return Command{
				Kind:       KindDisambiguate,
				ItemName:   cmd.ItemName,
				Quantity:   cmd.Quantity,
				Candidates: candidates,
			}
		}

		cmd.RestaurantID = matches[0].Restaurant.ID
		cmd.RestaurantName = matches[0].Restaurant.Name
		cmd.ItemID = matches[0].Item.ID
		cmd.ItemName = matches[0].Item.Name
		if cmd.Quantity < 1 {
			cmd.Quantity = 1
		}
		return cmd
	}
	return cmd
}

// --------------------------------------------------
// Local fallback matching
// --------------------------------------------------

func (r *Resolver) fallback(profile StageProfile, utterance string) Command {
	text := strings.ToLower(utterance)

	// Session-wide commands first.
	switch {
	case strings.Contains(text, "help"), strings.Contains(text, "what can i say"):
		return Command{Kind: KindHelp}
	case strings.Contains(text, "start over"), strings.Contains(text, "new order"):
		return Command{Kind: KindNewOrder}
	case strings.Contains(text, "go back"), strings.Contains(text, "previous"):
		return Command{Kind: KindGoBack}
	}

	if profile.Allows(KindSetOrderType) {
		switch {
		case strings.Contains(text, "dine"):
			return Command{Kind: KindSetOrderType, OrderType: DineIn}
		case strings.Contains(text, "take"), strings.Contains(text, "parcel"), strings.Contains(text, "pick up"):
			return Command{Kind: KindSetOrderType, OrderType: Takeaway}
		}
	}

	if profile.Allows(KindSetContact) {
		if strings.Contains(text, "guest") {
			return Command{Kind: KindSetContact, Contact: Contact{Guest: true}}
		}
		if digits := strings.Map(keepDigit, text); len(digits) >= 7 {
			return Command{Kind: KindSetContact, Contact: Contact{Phone: digits}}
		}
	}

	if profile.Allows(KindCheckout) {
		switch {
		case strings.Contains(text, "checkout"), strings.Contains(text, "check out"),
			strings.Contains(text, "place order"), strings.Contains(text, "place my order"),
			strings.Contains(text, "confirm"):
			return Command{Kind: KindCheckout}
		}
	}

	removing := strings.Contains(text, "remove") || strings.Contains(text, "delete") ||
		strings.Contains(text, "take off")

	// Catalog names found inside the utterance.
	if profile.Allows(KindAddItem) || profile.Allows(KindSelectItem) || profile.Allows(KindRemoveItem) {
		if name := r.containedItemName(text, profile.SelectedRestaurantID); name != "" {
			kind := KindAddItem
			if removing && profile.Allows(KindRemoveItem) {
				kind = KindRemoveItem
			} else if !profile.Allows(KindAddItem) {
				kind = KindSelectItem
			}
			return Command{Kind: kind, ItemName: name, Quantity: quantityIn(text)}
		}
	}

	if profile.Allows(KindSelectRestaurant) {
		for _, restaurant := range r.store.Restaurants() {
			if strings.Contains(text, strings.ToLower(restaurant.Name)) {
				return Command{Kind: KindSelectRestaurant, RestaurantName: restaurant.Name}
			}
		}
		// Last resort: treat the whole utterance as a restaurant search.
		if len(r.store.SearchRestaurants(stripFiller(text))) > 0 {
			return Command{Kind: KindSelectRestaurant, RestaurantName: stripFiller(text)}
		}
	}

	return Unknown(utterance)
}

// containedItemName returns the longest catalog item name found inside the
// utterance. Longest wins so "extra chicken biryani" does not match a shorter
// name first.
func (r *Resolver) containedItemName(text, scope string) string {
	best := ""
	for _, restaurant := range r.store.Restaurants() {
		if scope != "" && restaurant.ID != scope {
			continue
		}
		for _, item := range restaurant.Menu {
			name := strings.ToLower(item.Name)
			if strings.Contains(text, name) && len(name) > len(best) {
				best = name
			}
		}
	}
	return best
}

func quantityIn(text string) int {
	for _, field := range strings.Fields(text) {
		if n, ok := parseQuantity(field); ok {
			return n
		}
	}
	return 1
}

// stripFiller drops the verb-ish lead-in words voice transcripts carry.
func stripFiller(text string) string {
	fillers := []string{
		"i want to order from", "i want", "order from", "select", "choose",
		"show me", "go to", "open", "the", "please",
	}
	for _, f := range fillers {
		text = strings.ReplaceAll(text, f, " ")
	}
	return strings.Join(strings.Fields(text), " ")
}
