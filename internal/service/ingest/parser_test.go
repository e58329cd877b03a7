package ingest

import (
	"testing"
	"time"

	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/ports"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func retailRequest() *ports.UploadRequest {
	return &ports.UploadRequest{
		StoreID:   "store-1",
		StoreName: "High Street",
		Platform:  domain.PlatformTakeMyPayments,
		OutletID:  "OUT-9",
		MID:       "MID-42",
	}
}

func TestParseTable_TakeMyPayments(t *testing.T) {
	table := &Table{
		Headers: []string{"Invoice No", "Total", "Date", "Narrative", "Card Type", "Card Last 4"},
		Rows: []map[string]string{
			{"Invoice No": "INV-1", "Total": "£12.50", "Date": "15/03/2024 09:15", "Narrative": "Flat White", "Card Type": "Contactless", "Card Last 4": "4242"},
			{"Invoice No": "INV-2", "Total": "3.20", "Date": "15/03/2024 13:40", "Narrative": "Blueberry Muffin"},
		},
	}

	txs, stats := ParseTable(table, retailRequest(), Options{Now: fixedNow})

	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if stats.Parsed != 2 || stats.Skipped != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	tx := txs[0]
	if tx.TransactionID != "INV-1" {
		t.Errorf("expected 'INV-1', got '%s'", tx.TransactionID)
	}
	if tx.AmountPence != 1250 {
		t.Errorf("expected 1250 pence, got %d", tx.AmountPence)
	}
	if tx.Category != "Drinks" {
		t.Errorf("expected 'Drinks', got '%s'", tx.Category)
	}
	if tx.Hour != 9 {
		t.Errorf("expected hour 9, got %d", tx.Hour)
	}
	if tx.DayOfWeek != int(time.Friday) {
		t.Errorf("expected Friday (%d), got %d", int(time.Friday), tx.DayOfWeek)
	}
	if tx.PaymentMethod != "Contactless" {
		t.Errorf("expected 'Contactless', got '%s'", tx.PaymentMethod)
	}
	if tx.CustomerID != "4242" {
		t.Errorf("expected '4242', got '%s'", tx.CustomerID)
	}
	if tx.Status != domain.TransactionStatusCompleted {
		t.Errorf("expected default status Completed, got '%s'", tx.Status)
	}
	if tx.StoreID != "store-1" || tx.OutletID != "OUT-9" || tx.MID != "MID-42" {
		t.Error("store context not stamped on transaction")
	}

	if txs[1].PaymentMethod != "Card" {
		t.Errorf("expected payment default 'Card', got '%s'", txs[1].PaymentMethod)
	}
	if txs[1].Category != "Food" {
		t.Errorf("expected 'Food', got '%s'", txs[1].Category)
	}
}

func TestParseTable_Booker_Defaults(t *testing.T) {
	table := &Table{
		Headers: []string{"Booking ID", "Net Total", "Appointment Date"},
		Rows: []map[string]string{
			{"Booking ID": "BK-7", "Net Total": "45.00", "Appointment Date": "2024-03-20 10:00"},
		},
	}
	req := &ports.UploadRequest{
		StoreID:   "salon-1",
		StoreName: "The Salon",
		Platform:  domain.PlatformBooker,
		BookerID:  "BKR-1",
	}

	txs, _ := ParseTable(table, req, Options{Now: fixedNow})

	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	tx := txs[0]
	if tx.Description != "Service" {
		t.Errorf("expected default description 'Service', got '%s'", tx.Description)
	}
	if tx.CardScheme != "N/A" {
		t.Errorf("expected default scheme 'N/A', got '%s'", tx.CardScheme)
	}
	if tx.PaymentMethod != "Card" {
		t.Errorf("expected default payment 'Card', got '%s'", tx.PaymentMethod)
	}
	if tx.Category != "Other Services" {
		t.Errorf("expected 'Other Services', got '%s'", tx.Category)
	}
	if tx.AmountPence != 4500 {
		t.Errorf("expected 4500 pence, got %d", tx.AmountPence)
	}
}

func TestParseTable_Booker_Treatment(t *testing.T) {
	table := &Table{
		Headers: []string{"Confirmation ID", "Service Total", "Start Date", "Treatment"},
		Rows: []map[string]string{
			{"Confirmation ID": "C-1", "Service Total": "£30", "Start Date": "20/03/2024", "Treatment": "Gents Haircut"},
		},
	}
	req := &ports.UploadRequest{StoreID: "salon-1", Platform: domain.PlatformBooker}

	txs, _ := ParseTable(table, req, Options{Now: fixedNow})

	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	if txs[0].Category != "Haircut" {
		t.Errorf("expected 'Haircut', got '%s'", txs[0].Category)
	}
	if txs[0].Description != "Gents Haircut" {
		t.Errorf("expected 'Gents Haircut', got '%s'", txs[0].Description)
	}
}

func TestParseTable_MissingIDColumn_RejectsAll(t *testing.T) {
	table := &Table{
		Headers: []string{"Total", "Date"},
		Rows: []map[string]string{
			{"Total": "1.00", "Date": "15/03/2024"},
			{"Total": "2.00", "Date": "16/03/2024"},
		},
	}

	txs, stats := ParseTable(table, retailRequest(), Options{Now: fixedNow})

	if len(txs) != 0 {
		t.Fatalf("expected no transactions, got %d", len(txs))
	}
	if stats.Skipped != 2 {
		t.Errorf("expected 2 skipped rows, got %d", stats.Skipped)
	}
	if stats.SampleRow == nil {
		t.Error("expected a sample row for diagnostics")
	}
	// The diagnostic must list the file's own headers even when none of
	// the expected columns matched.
	if len(stats.FoundColumns) != 2 || stats.FoundColumns[0] != "Total" || stats.FoundColumns[1] != "Date" {
		t.Errorf("expected file headers in FoundColumns, got %v", stats.FoundColumns)
	}
}

func TestParseTable_NoColumnMatch_ReportsHeaders(t *testing.T) {
	table := &Table{
		Headers: []string{"Foo", "Bar", "Baz"},
		Rows: []map[string]string{
			{"Foo": "1", "Bar": "2", "Baz": "3"},
		},
	}

	txs, stats := ParseTable(table, retailRequest(), Options{Now: fixedNow})

	if len(txs) != 0 {
		t.Fatalf("expected no transactions, got %d", len(txs))
	}
	if len(stats.FoundColumns) != 3 {
		t.Fatalf("expected 3 headers reported, got %v", stats.FoundColumns)
	}
}

func TestParseTable_BlankIDSkipsRow(t *testing.T) {
	table := &Table{
		Headers: []string{"Invoice No", "Total"},
		Rows: []map[string]string{
			{"Invoice No": "", "Total": "1.00"},
			{"Invoice No": "INV-2", "Total": "2.00"},
		},
	}

	txs, stats := ParseTable(table, retailRequest(), Options{Now: fixedNow})

	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	if stats.Skipped != 1 {
		t.Errorf("expected 1 skipped row, got %d", stats.Skipped)
	}
}

func TestParseTable_UnparseableAmountSkipsRow(t *testing.T) {
	table := &Table{
		Headers: []string{"Invoice No", "Total"},
		Rows: []map[string]string{
			{"Invoice No": "INV-1", "Total": "free"},
			{"Invoice No": "INV-2", "Total": ""},
			{"Invoice No": "INV-3", "Total": "0"},
		},
	}

	txs, stats := ParseTable(table, retailRequest(), Options{Now: fixedNow})

	if len(txs) != 1 {
		t.Fatalf("expected only the parseable row, got %d", len(txs))
	}
	if stats.Skipped != 2 {
		t.Errorf("expected 2 skipped rows, got %d", stats.Skipped)
	}
	// A parsed zero is a real transaction, only unreadable cells reject.
	if txs[0].TransactionID != "INV-3" || txs[0].AmountPence != 0 {
		t.Errorf("expected INV-3 kept at 0 pence, got %+v", txs[0])
	}
}

func TestParseTable_UndatedRows(t *testing.T) {
	table := &Table{
		Headers: []string{"Invoice No", "Total", "Date"},
		Rows: []map[string]string{
			{"Invoice No": "INV-1", "Total": "1.00", "Date": "???"},
		},
	}

	// Default: fall back to now.
	txs, stats := ParseTable(table, retailRequest(), Options{Now: fixedNow})
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	if !txs[0].DateTime.Equal(fixedNow()) {
		t.Errorf("expected fallback timestamp, got %v", txs[0].DateTime)
	}
	if stats.Undated != 1 {
		t.Errorf("expected 1 undated row, got %d", stats.Undated)
	}

	// Strict mode: reject the row.
	txs, stats = ParseTable(table, retailRequest(), Options{Now: fixedNow, RejectUndated: true})
	if len(txs) != 0 {
		t.Fatalf("expected row rejected in strict mode, got %d", len(txs))
	}
	if stats.Skipped != 1 {
		t.Errorf("expected 1 skipped row, got %d", stats.Skipped)
	}
}

func TestParseTable_LineItem(t *testing.T) {
	table := &Table{
		Headers: []string{"Invoice No", "Total", "Product", "Qty", "Unit Price"},
		Rows: []map[string]string{
			{"Invoice No": "INV-1", "Total": "7.50", "Product": "Latte", "Qty": "3", "Unit Price": "2.50"},
		},
	}

	txs, _ := ParseTable(table, retailRequest(), Options{Now: fixedNow})

	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	tx := txs[0]
	if tx.ProductName != "Latte" {
		t.Errorf("expected 'Latte', got '%s'", tx.ProductName)
	}
	if tx.ProductCategory != "Drinks" {
		t.Errorf("expected 'Drinks', got '%s'", tx.ProductCategory)
	}
	if tx.Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", tx.Quantity)
	}
	if tx.ProductPricePence != 250 {
		t.Errorf("expected 250 pence, got %d", tx.ProductPricePence)
	}
}

func TestParseTable_StatusMapping(t *testing.T) {
	table := &Table{
		Headers: []string{"Invoice No", "Total", "Status"},
		Rows: []map[string]string{
			{"Invoice No": "INV-1", "Total": "1.00", "Status": "refunded"},
			{"Invoice No": "INV-2", "Total": "2.00", "Status": "Declined"},
		},
	}

	txs, _ := ParseTable(table, retailRequest(), Options{Now: fixedNow})

	if txs[0].Status != domain.TransactionStatusRefunded {
		t.Errorf("expected Refunded, got '%s'", txs[0].Status)
	}
	if txs[1].Status != domain.TransactionStatusDeclined {
		t.Errorf("expected Declined, got '%s'", txs[1].Status)
	}
}
