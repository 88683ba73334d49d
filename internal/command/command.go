package command

// Kind discriminates the closed set of typed commands the state machine
// understands. Dispatch switches exhaustively on Kind instead of sniffing raw
// strings.
type Kind string

const (
	KindSetOrderType     Kind = "set_order_type"
	KindSetContact       Kind = "set_contact"
	KindSelectRestaurant Kind = "select_restaurant"
	KindSelectItem       Kind = "select_item"
	KindAddItem          Kind = "add_item"
	KindRemoveItem       Kind = "remove_item"
	KindCheckout         Kind = "checkout"
	KindGoBack           Kind = "go_back"
	KindNewOrder         Kind = "new_order"
	KindHelp             Kind = "help"
	KindUnknown          Kind = "unknown"

	// KindDisambiguate is a resolver pseudo-command: the item name matched
	// multiple restaurants and no hint was given, so the user must pick.
	KindDisambiguate Kind = "disambiguate_restaurant"
)

type OrderType string

const (
	DineIn   OrderType = "dinein"
	Takeaway OrderType = "takeaway"
)

// Contact is either the guest path or a phone number.
type Contact struct {
	Guest bool   `json:"guest"`
	Phone string `json:"phone,omitempty"`
}

// Candidate names one restaurant a disambiguation prompt offers.
type Candidate struct {
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
}

// Command is the typed result of resolving an utterance. Only the fields
// relevant to Kind are set.
type Command struct {
	Kind Kind `json:"kind"`

	OrderType OrderType `json:"order_type,omitempty"`
	Contact   Contact   `json:"contact,omitempty"`

	// Name targets as spoken; IDs filled in once the resolver matched them
	// against the catalog.
	RestaurantName string `json:"restaurant_name,omitempty"`
	RestaurantID   string `json:"restaurant_id,omitempty"`
	ItemName       string `json:"item_name,omitempty"`
	ItemID         string `json:"item_id,omitempty"`
	Quantity       int    `json:"quantity,omitempty"`

	Raw        string      `json:"raw,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty"`
}

func Unknown(raw string) Command {
	return Command{Kind: KindUnknown, Raw: raw}
}
