package catalog

// Seed returns the built-in demo catalog. Used when no database is configured
// and to seed the catalog tables on first run.
func Seed() []Restaurant {
	return []Restaurant{
		{
			ID:          "r1",
			Name:        "Bombay Spice Kitchen",
			CuisineTags: []string{"Indian", "North Indian", "Biryani"},
			DistanceKm:  1.2,
			PriceLevel:  2,
			Rating:      4.5,
			EtaMin:      28,
			Menu: []MenuItem{
				{
					ID:          "m1",
					Name:        "Chicken Biryani",
					Description: "Aromatic basmati, tender chicken, saffron, and whole spices.",
					BasePrice:   240,
					Category:    "Mains",
					Rating:      4.7,
					Calories:    780,
					Popular:     true,
					OptionSets: []OptionSet{
						{
							ID: "size", Label: "Portion Size", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "regular", Label: "Regular", PriceDelta: 0},
								{ID: "large", Label: "Large", PriceDelta: 80},
								{ID: "family", Label: "Family Pack", PriceDelta: 180},
							},
						},
						{
							ID: "spice", Label: "Spice Level", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "mild", Label: "Mild", PriceDelta: 0, Tag: "mild"},
								{ID: "medium", Label: "Medium", PriceDelta: 0, Tag: "medium"},
								{ID: "hot", Label: "Hot", PriceDelta: 0, Tag: "hot"},
							},
						},
						{
							ID: "addons", Label: "Add-ons", Kind: MultiChoice,
							Options: []MenuOption{
								{ID: "egg", Label: "Boiled Egg", PriceDelta: 20},
								{ID: "raita", Label: "Raita", PriceDelta: 30},
								{ID: "extra-chicken", Label: "Extra Chicken", PriceDelta: 90},
							},
						},
					},
				},
				{
					ID:          "m2",
					Name:        "Paneer Butter Masala",
					Description: "Creamy tomato gravy with cottage cheese cubes.",
					BasePrice:   220,
					Category:    "Mains",
					Rating:      4.6,
					Calories:    560,
					OptionSets: []OptionSet{
						{
							ID: "size", Label: "Portion Size", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "regular", Label: "Regular", PriceDelta: 0},
								{ID: "large", Label: "Large", PriceDelta: 70},
							},
						},
						{
							ID: "addons", Label: "Add-ons", Kind: MultiChoice,
							Options: []MenuOption{
								{ID: "butter-naan", Label: "Butter Naan", PriceDelta: 40},
								{ID: "jeera-rice", Label: "Jeera Rice", PriceDelta: 60},
							},
						},
					},
				},
				{
					ID:          "m3",
					Name:        "Masala Chai",
					Description: "Spiced milk tea brewed fresh.",
					BasePrice:   40,
					Category:    "Beverages",
					Rating:      4.3,
					OptionSets: []OptionSet{
						{
							ID: "sweetness", Label: "Sweetness", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "regular", Label: "Regular", PriceDelta: 0},
								{ID: "less", Label: "Less Sugar", PriceDelta: 0},
								{ID: "more", Label: "Extra Sweet", PriceDelta: 0},
							},
						},
						{
							ID: "addons", Label: "Add-ons", Kind: MultiChoice,
							Options: []MenuOption{
								{ID: "ginger", Label: "Ginger", PriceDelta: 5},
								{ID: "elaichi", Label: "Cardamom", PriceDelta: 7},
							},
						},
					},
				},
			},
		},
		{
			ID:          "r2",
			Name:        "Kyoto Street Ramen",
			CuisineTags: []string{"Japanese", "Ramen"},
			DistanceKm:  2.1,
			PriceLevel:  3,
			Rating:      4.4,
			EtaMin:      35,
			Menu: []MenuItem{
				{
					ID:          "m4",
					Name:        "Tonkotsu Ramen",
					Description: "Pork broth, chashu, egg, noodles, scallions.",
					BasePrice:   380,
					Category:    "Bowls",
					Rating:      4.8,
					OptionSets: []OptionSet{
						{
							ID: "size", Label: "Bowl Size", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "standard", Label: "Standard", PriceDelta: 0},
								{ID: "mega", Label: "Mega", PriceDelta: 120},
							},
						},
						{
							ID: "spice", Label: "Spice Level", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "none", Label: "No Spice", PriceDelta: 0},
								{ID: "medium", Label: "Medium", PriceDelta: 0},
								{ID: "fiery", Label: "Fiery", PriceDelta: 0},
							},
						},
						{
							ID: "addons", Label: "Toppings", Kind: MultiChoice,
							Options: []MenuOption{
								{ID: "nori", Label: "Nori", PriceDelta: 20},
								{ID: "corn", Label: "Corn", PriceDelta: 20},
								{ID: "extra-egg", Label: "Extra Egg", PriceDelta: 30},
							},
						},
					},
				},
				{
					ID:          "m5",
					Name:        "Matcha Latte",
					Description: "Creamy matcha with milk.",
					BasePrice:   160,
					Category:    "Beverages",
					Rating:      4.2,
					OptionSets: []OptionSet{
						{
							ID: "milk", Label: "Milk Type", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "dairy", Label: "Dairy", PriceDelta: 0},
								{ID: "almond", Label: "Almond", PriceDelta: 15},
								{ID: "oat", Label: "Oat", PriceDelta: 20},
							},
						},
						{
							ID: "temp", Label: "Temperature", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "hot", Label: "Hot", PriceDelta: 0},
								{ID: "iced", Label: "Iced", PriceDelta: 0},
							},
						},
					},
				},
			},
		},
		{
			ID:          "r3",
			Name:        "Mediterranean Breeze",
			CuisineTags: []string{"Mediterranean", "Greek", "Middle Eastern"},
			DistanceKm:  1.8,
			PriceLevel:  2,
			Rating:      4.6,
			EtaMin:      30,
			Menu: []MenuItem{
				{
					ID:          "m6",
					Name:        "Lamb Gyro Platter",
					Description: "Sliced lamb, tzatziki, pita, tomatoes, onions, and fries.",
					BasePrice:   320,
					Category:    "Mains",
					Rating:      4.7,
					Calories:    650,
					Popular:     true,
					OptionSets: []OptionSet{
						{
							ID: "size", Label: "Portion Size", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "regular", Label: "Regular", PriceDelta: 0},
								{ID: "large", Label: "Large", PriceDelta: 100},
							},
						},
						{
							ID: "sauce", Label: "Sauce Choice", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "tzatziki", Label: "Tzatziki", PriceDelta: 0},
								{ID: "harissa", Label: "Harissa", PriceDelta: 0},
								{ID: "garlic", Label: "Garlic Sauce", PriceDelta: 0},
							},
						},
						{
							ID: "addons", Label: "Add-ons", Kind: MultiChoice,
							Options: []MenuOption{
								{ID: "feta", Label: "Feta Cheese", PriceDelta: 30},
								{ID: "olives", Label: "Kalamata Olives", PriceDelta: 25},
								{ID: "hummus", Label: "Hummus Side", PriceDelta: 40},
							},
						},
					},
				},
				{
					ID:          "m7",
					Name:        "Falafel Wrap",
					Description: "Crispy falafel, lettuce, tahini, and pickled veggies in a pita.",
					BasePrice:   200,
					Category:    "Mains",
					Rating:      4.5,
					Calories:    480,
					OptionSets: []OptionSet{
						{
							ID: "wrap", Label: "Wrap Type", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "pita", Label: "Pita", PriceDelta: 0},
								{ID: "whole-wheat", Label: "Whole Wheat Pita", PriceDelta: 10},
							},
						},
						{
							ID: "addons", Label: "Add-ons", Kind: MultiChoice,
							Options: []MenuOption{
								{ID: "feta", Label: "Feta Cheese", PriceDelta: 30},
								{ID: "extra-falafel", Label: "Extra Falafel", PriceDelta: 50},
							},
						},
					},
				},
				{
					ID:          "m8",
					Name:        "Baklava",
					Description: "Layered pastry with nuts and honey syrup.",
					BasePrice:   80,
					Category:    "Desserts",
					Rating:      4.4,
					Calories:    300,
					OptionSets: []OptionSet{
						{
							ID: "size", Label: "Serving Size", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "single", Label: "Single Piece", PriceDelta: 0},
								{ID: "double", Label: "Two Pieces", PriceDelta: 70},
							},
						},
						{
							ID: "addons", Label: "Add-ons", Kind: MultiChoice,
							Options: []MenuOption{
								{ID: "ice-cream", Label: "Vanilla Ice Cream", PriceDelta: 40},
								{ID: "pistachio", Label: "Pistachio Topping", PriceDelta: 20},
							},
						},
					},
				},
				{
					ID:          "m9",
					Name:        "Pomegranate Spritzer",
					Description: "Refreshing pomegranate juice with soda and mint.",
					BasePrice:   90,
					Category:    "Beverages",
					Rating:      4.3,
					OptionSets: []OptionSet{
						{
							ID: "sweetness", Label: "Sweetness Level", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "regular", Label: "Regular", PriceDelta: 0},
								{ID: "less", Label: "Less Sweet", PriceDelta: 0},
							},
						},
						{
							ID: "temp", Label: "Temperature", Kind: SingleChoice, Required: true,
							Options: []MenuOption{
								{ID: "iced", Label: "Iced", PriceDelta: 0},
								{ID: "chilled", Label: "Chilled", PriceDelta: 0},
							},
						},
					},
				},
			},
		},
	}
}
