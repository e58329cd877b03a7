package ingest

import "strings"

type keywordRule struct {
	category string
	keywords []string
}

// Café taxonomy. Drink keywords run before food so "iced coffee cake
// flavour" style descriptions land on Drinks, matching how the exports
// name combo items.
var cafeRules = []keywordRule{
	{"Drinks", []string{
		"coffee", "tea", "latte", "cappuccino", "espresso", "mocha",
		"americano", "juice", "smoothie", "shake", "water", "soda",
		"cola", "drink", "beverage", "beer", "wine", "hot chocolate",
		"iced", "frappe", "milkshake",
	}},
	{"Food", []string{
		"sandwich", "burger", "pizza", "salad", "cake", "pastry",
		"muffin", "cookie", "brownie", "toast", "bagel", "croissant",
		"panini", "wrap", "breakfast", "lunch",
	}},
}

// Services taxonomy for appointment-based exports. First match wins.
var serviceRules = []keywordRule{
	{"Haircut", []string{"haircut", "hair cut", "trim"}},
	{"Hair Color", []string{"color", "colour", "dye", "highlight"}},
	{"Styling", []string{"style", "styling", "blow dry", "blowdry"}},
	{"Treatment", []string{"perm", "straighten", "keratin"}},
	{"Facial", []string{"facial", "face"}},
	{"Massage", []string{"massage"}},
	{"Nail Care", []string{"nail", "manicure", "pedicure"}},
	{"Hair Removal", []string{"wax", "threading"}},
	{"Makeup", []string{"makeup", "make up"}},
	{"Extensions", []string{"extension", "wig"}},
	{"Consultation", []string{"consultation", "consult"}},
	{"Products", []string{"product", "retail"}},
}

func categorize(rules []keywordRule, description, fallback string) string {
	desc := strings.ToLower(description)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}
	return fallback
}

// CategorizeCafe maps a retail description to Food, Drinks or Other.
func CategorizeCafe(description string) string {
	return categorize(cafeRules, description, "Other")
}

// CategorizeService maps an appointment description to the services
// taxonomy, defaulting to Other Services.
func CategorizeService(description string) string {
	return categorize(serviceRules, description, "Other Services")
}
