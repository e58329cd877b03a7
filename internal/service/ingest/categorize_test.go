package ingest

import "testing"

func TestCategorizeCafe(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"Flat White Coffee", "Drinks"},
		{"Ham & Cheese Panini", "Food"},
		{"Iced coffee cake flavour", "Drinks"}, // drink keywords win over food
		{"Hot Chocolate", "Drinks"},
		{"Blueberry Muffin", "Food"},
		{"Gift Card", "Other"},
		{"", "Other"},
	}

	for _, tc := range tests {
		if got := CategorizeCafe(tc.desc); got != tc.want {
			t.Errorf("CategorizeCafe(%q) = %q, want %q", tc.desc, got, tc.want)
		}
	}
}

func TestCategorizeService(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"Gents Haircut", "Haircut"},
		{"Hair Cut & Finish", "Haircut"},
		{"Full Head Colour", "Hair Color"},
		{"Blow Dry", "Styling"},
		{"Keratin Smoothing", "Treatment"},
		{"Deluxe Facial", "Facial"},
		{"Back Massage 30min", "Massage"},
		{"Gel Manicure", "Nail Care"},
		{"Eyebrow Threading", "Hair Removal"},
		{"Bridal Makeup", "Makeup"},
		{"Tape-in Extensions", "Extensions"},
		{"New Client Consultation", "Consultation"},
		{"Retail Shampoo", "Products"},
		{"Walk-in", "Other Services"},
	}

	for _, tc := range tests {
		if got := CategorizeService(tc.desc); got != tc.want {
			t.Errorf("CategorizeService(%q) = %q, want %q", tc.desc, got, tc.want)
		}
	}
}

func TestCategorize_RuleOrder(t *testing.T) {
	// "haircut" and "colour" both appear; the earlier rule wins.
	if got := CategorizeService("Haircut with colour"); got != "Haircut" {
		t.Errorf("expected 'Haircut', got %q", got)
	}
}
