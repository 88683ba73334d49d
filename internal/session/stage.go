package session

import (
	"github.com/Gourav-Tailor/food-ai/internal/command"
)

// Stage is one state of the ordering flow. Each stage gates which commands
// are legal; anything else gets a help-style reply and no transition.
type Stage string

const (
	StageChooseType       Stage = "choose_type"
	StageChooseContact    Stage = "choose_contact"
	StageChooseRestaurant Stage = "choose_restaurant"
	StageBuildCart        Stage = "build_cart"
	StageCheckout         Stage = "checkout"
	StageCompleted        Stage = "completed"
)

type stageSpec struct {
	context    string
	vocabulary []string
	legal      []command.Kind
	help       string
	back       Stage // "" means GoBack is a no-op
}

// Commands legal everywhere are appended to every stage's legal set.
var globalKinds = []command.Kind{
	command.KindHelp,
	command.KindGoBack,
	command.KindNewOrder,
}

var stages = map[Stage]stageSpec{
	StageChooseType: {
		context: "choosing dine-in or takeaway",
		vocabulary: []string{
			"order type dinein",
			"order type takeaway",
			"help",
			"new order",
			"unknown",
		},
		legal: []command.Kind{command.KindSetOrderType},
		help:  "You can say: dine in, or takeaway.",
	},
	StageChooseContact: {
		context: "providing contact details",
		vocabulary: []string{
			"contact guest",
			"contact phone <digits>",
			"back",
			"help",
			"new order",
			"unknown",
		},
		legal: []command.Kind{command.KindSetContact},
		help:  "You can say: continue as guest, or tell me your phone number.",
		back:  StageChooseType,
	},
	StageChooseRestaurant: {
		context: "selecting a restaurant",
		vocabulary: []string{
			"restaurant <name>",
			"add <qty> <item>",
			"add <qty> <item> from <restaurant>",
			"back",
			"help",
			"new order",
			"unknown",
		},
		legal: []command.Kind{
			command.KindSelectRestaurant,
			command.KindAddItem,
			command.KindSelectItem,
		},
		help: "You can say: a restaurant name, or a dish you are craving.",
		back: StageChooseContact,
	},
	StageBuildCart: {
		context: "building the cart",
		vocabulary: []string{
			"add <qty> <item>",
			"add <qty> <item> from <restaurant>",
			"remove <qty> <item>",
			"select <item>",
			"restaurant <name>",
			"checkout",
			"back",
			"help",
			"new order",
			"unknown",
		},
		legal: []command.Kind{
			command.KindAddItem,
			command.KindRemoveItem,
			command.KindSelectItem,
			command.KindSelectRestaurant,
			command.KindCheckout,
		},
		help: "You can say: add an item, remove an item, change restaurant, or checkout.",
		back: StageChooseRestaurant,
	},
	StageCheckout: {
		context: "reviewing the order at checkout",
		vocabulary: []string{
			"checkout",
			"back",
			"help",
			"new order",
			"unknown",
		},
		legal: []command.Kind{command.KindCheckout},
		help:  "You can say: checkout to place the order, back to modify it, or new order.",
		back:  StageBuildCart,
	},
	StageCompleted: {
		context: "order placed",
		vocabulary: []string{
			"new order",
			"help",
			"unknown",
		},
		legal: []command.Kind{},
		help:  "Your order is placed. Say new order to start again.",
	},
}

func (s Stage) spec() stageSpec {
	return stages[s]
}

func (s Stage) allows(kind command.Kind) bool {
	for _, k := range globalKinds {
		if k == kind {
			// GoBack is a no-op where no back target exists, but still accepted.
			return true
		}
	}
	for _, k := range s.spec().legal {
		if k == kind {
			return true
		}
	}
	return false
}
