package command

import (
	"strconv"
	"strings"
)

// Templates the NLU collaborator is constrained to. Parsing is deterministic
// and template-exact; anything else maps to Unknown.
//
//	order type <dinein|takeaway>
//	contact guest
//	contact phone <digits>
//	restaurant <name>
//	select <item>
//	add <qty> <item>
//	add <qty> <item> from <restaurant>
//	remove <qty> <item>
//	remove <qty> <item> from <restaurant>
//	checkout
//	back
//	new order
//	help
//	unknown

// Parse maps one command string onto a typed Command. The quantity defaults
// to 1 when the template omits it.
func Parse(raw string) Command {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return Unknown(raw)
	}

	switch text {
	case "checkout":
		return Command{Kind: KindCheckout}
	case "back":
		return Command{Kind: KindGoBack}
	case "new order":
		return Command{Kind: KindNewOrder}
	case "help":
		return Command{Kind: KindHelp}
	case "unknown":
		return Unknown(raw)
	case "contact guest":
		return Command{Kind: KindSetContact, Contact: Contact{Guest: true}}
	}

	if rest, ok := cutPrefix(text, "order type "); ok {
		switch normalizeOrderType(rest) {
		case DineIn:
			return Command{Kind: KindSetOrderType, OrderType: DineIn}
		case Takeaway:
			return Command{Kind: KindSetOrderType, OrderType: Takeaway}
		}
		return Unknown(raw)
	}

	if rest, ok := cutPrefix(text, "contact phone "); ok {
		digits := strings.Map(keepDigit, rest)
		if digits == "" {
			return Unknown(raw)
		}
		return Command{Kind: KindSetContact, Contact: Contact{Phone: digits}}
	}

	if rest, ok := cutPrefix(text, "restaurant "); ok {
		if rest == "" {
			return Unknown(raw)
		}
		return Command{Kind: KindSelectRestaurant, RestaurantName: rest}
	}

	if rest, ok := cutPrefix(text, "select "); ok {
		if rest == "" {
			return Unknown(raw)
		}
		return Command{Kind: KindSelectItem, ItemName: rest, Quantity: 1}
	}

	if rest, ok := cutPrefix(text, "add "); ok {
		return parseItemCommand(KindAddItem, rest, raw)
	}
	if rest, ok := cutPrefix(text, "remove "); ok {
		return parseItemCommand(KindRemoveItem, rest, raw)
	}

	return Unknown(raw)
}

func parseItemCommand(kind Kind, rest, raw string) Command {
	rest = strings.TrimSpace(rest)

	var hint string
	if at := strings.LastIndex(rest, " from "); at >= 0 {
		hint = strings.TrimSpace(rest[at+len(" from "):])
		rest = strings.TrimSpace(rest[:at])
	}

	qty := 1
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Unknown(raw)
	}
	if n, ok := parseQuantity(fields[0]); ok {
		qty = n
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return Unknown(raw)
	}

	return Command{
		Kind:           kind,
		ItemName:       strings.Join(fields, " "),
		Quantity:       qty,
		RestaurantName: hint,
	}
}

// parseQuantity accepts digits and the spoken number words transcripts
// produce.
func parseQuantity(word string) (int, bool) {
	if n, err := strconv.Atoi(word); err == nil && n > 0 {
		return n, true
	}
	words := map[string]int{
		"one": 1, "a": 1, "an": 1,
		"two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	}
	n, ok := words[word]
	return n, ok
}

func normalizeOrderType(text string) OrderType {
	text = strings.ReplaceAll(strings.TrimSpace(text), "-", " ")
	switch text {
	case "dinein", "dine in":
		return DineIn
	case "takeaway", "take away", "takeout", "take out":
		return Takeaway
	}
	return ""
}

func keepDigit(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}

func cutPrefix(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		return strings.TrimSpace(s[len(prefix):]), true
	}
	return s, false
}
