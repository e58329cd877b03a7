package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/ports"
)

// Options tune row normalization during parsing.
type Options struct {
	// RejectUndated skips rows whose date cannot be parsed instead of
	// stamping them with the upload time.
	RejectUndated bool
	Now           func() time.Time
}

// RowStats summarizes one parsed file and feeds the zero-parse diagnostic.
type RowStats struct {
	Parsed       int
	Skipped      int
	Undated      int
	FoundColumns []string
	SampleRow    map[string]string
}

// columnSet holds the header-alias candidates per logical field.
// The lists are deliberately permissive: POS vendors rename columns
// between export versions without notice.
type columnSet struct {
	id          []string
	amount      []string
	date        []string
	description []string
	payment     []string
	scheme      []string
	status      []string
	customer    []string
	product     []string
	quantity    []string
	unitPrice   []string
}

type rowDefaults struct {
	payment     string
	scheme      string
	description string
}

var takeMyPaymentsColumns = columnSet{
	id: []string{
		"Invoice No", "Invoice Number", "InvoiceNo", "Invoice_No", "Invoice",
		"Transaction ID", "TransactionID", "Transaction_ID", "ID",
		"Reference", "Ref", "Order ID", "OrderID",
		"Receipt No", "Receipt Number",
	},
	amount: []string{
		"Total", "Grand Total", "GrandTotal", "Grand_Total",
		"Amount", "Total Amount", "TotalAmount", "Value", "Price",
		"Net", "Gross", "Revenue",
		"20% Goods Ex Vat", "5% Goods Ex Vat", "Goods Ex Vat",
		"Total Ex VAT", "Total Inc VAT", "Total Incl VAT",
	},
	date: []string{
		"Date", "Transaction Date", "TransactionDate", "Transaction_Date",
		"Created", "Created Date", "CreatedDate",
		"Payment Date", "PaymentDate",
		"Invoice Date", "InvoiceDate", "Sale Date", "SaleDate",
	},
	description: []string{"Narrative", "Description", "Product", "Service", "Item"},
	payment:     []string{"Payment Method", "PaymentMethod", "Payment Type", "PaymentType", "Card Type", "CardType", "Method", "Tender"},
	scheme:      []string{"Card Scheme", "CardScheme", "Scheme", "Card Brand", "Card"},
	status:      []string{"Status", "Transaction Status", "TransactionStatus", "Payment Status", "PaymentStatus", "State"},
	customer:    []string{"Card Last 4", "CardLast4", "Customer ID", "CustomerID", "Customer"},
	product:     []string{"Product", "Item", "Product Name", "ProductName"},
	quantity:    []string{"Quantity", "Qty"},
	unitPrice:   []string{"Unit Price", "UnitPrice", "Item Price", "ItemPrice"},
}

var bookerColumns = columnSet{
	id: append([]string{
		"Confirmation ID", "ConfirmationID", "Appointment ID", "AppointmentID",
		"Booking ID", "BookingID", "Order Number", "OrderNumber",
	}, takeMyPaymentsColumns.id...),
	amount: append([]string{
		"Net Total", "NetTotal", "Service Total", "ServiceTotal",
		"Sale Amount", "SaleAmount", "Subtotal",
		"Gross Amount", "GrossAmount", "Sales",
	}, takeMyPaymentsColumns.amount...),
	date: append([]string{
		"Appointment Date", "AppointmentDate", "Start Date", "StartDate",
		"Booking Date", "BookingDate", "Service Date", "ServiceDate",
	}, takeMyPaymentsColumns.date...),
	description: []string{"Treatment", "Service", "Service Name", "ServiceName", "Description", "Product", "Item", "Category", "Type"},
	payment:     takeMyPaymentsColumns.payment,
	scheme:      takeMyPaymentsColumns.scheme,
	status:      takeMyPaymentsColumns.status,
	customer:    []string{"Customer ID", "CustomerID", "Client ID", "ClientID", "Customer", "Client"},
}

var takeMyPaymentsDefaults = rowDefaults{payment: "Card"}

var bookerDefaults = rowDefaults{
	payment:     "Card",
	scheme:      "N/A",
	description: "Service",
}

// ParseTable maps a decoded export to transactions for the request's
// platform.
func ParseTable(t *Table, req *ports.UploadRequest, opts Options) ([]domain.Transaction, *RowStats) {
	switch req.Platform {
	case domain.PlatformBooker:
		return parseRows(t, bookerColumns, bookerDefaults, CategorizeService, req, opts)
	default:
		return parseRows(t, takeMyPaymentsColumns, takeMyPaymentsDefaults, CategorizeCafe, req, opts)
	}
}

func parseRows(t *Table, cols columnSet, defaults rowDefaults, categorizeFn func(string) string, req *ports.UploadRequest, opts Options) ([]domain.Transaction, *RowStats) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	// FoundColumns carries the file's own header list so a zero-parse
	// diagnostic shows what the export actually contains, not which
	// candidates happened to match.
	stats := &RowStats{FoundColumns: t.Headers}
	if len(t.Rows) > 0 {
		stats.SampleRow = t.Rows[0]
	}

	resolve := func(candidates []string) string {
		name, ok := FindColumn(t.Headers, candidates)
		if !ok {
			return ""
		}
		return name
	}

	idCol := resolve(cols.id)
	amountCol := resolve(cols.amount)
	dateCol := resolve(cols.date)
	descCol := resolve(cols.description)
	paymentCol := resolve(cols.payment)
	schemeCol := resolve(cols.scheme)
	statusCol := resolve(cols.status)
	customerCol := resolve(cols.customer)
	productCol := resolve(cols.product)
	quantityCol := resolve(cols.quantity)
	unitPriceCol := resolve(cols.unitPrice)

	// A row is only a transaction if its id and amount can be resolved.
	if idCol == "" || amountCol == "" {
		stats.Skipped = len(t.Rows)
		return nil, stats
	}

	var txs []domain.Transaction
	for _, row := range t.Rows {
		id := strings.TrimSpace(row[idCol])
		if id == "" {
			stats.Skipped++
			continue
		}

		// A blank or unparseable amount cell rejects the row; a cell
		// that parses to zero is a legitimate transaction.
		amount, ok := ParseCurrency(row[amountCol])
		if !ok {
			stats.Skipped++
			continue
		}

		ts, dated := ParseDate(row[dateCol], opts.Now)
		if !dated {
			stats.Undated++
			if opts.RejectUndated {
				stats.Skipped++
				continue
			}
		}

		tx := domain.Transaction{
			ID:            uuid.New().String(),
			TransactionID: id,
			StoreID:       req.StoreID,
			StoreName:     req.StoreName,
			Platform:      req.Platform,
			AmountPence:   Pence(amount),
			PaymentMethod: cellOrDefault(row, paymentCol, defaults.payment),
			CardScheme:    cellOrDefault(row, schemeCol, defaults.scheme),
			Description:   cellOrDefault(row, descCol, defaults.description),
			Status:        parseStatus(row[statusCol]),
			CustomerID:    strings.TrimSpace(row[customerCol]),
			OutletID:      req.OutletID,
			MID:           req.MID,
			BookerID:      req.BookerID,
		}
		tx.SetDateTime(ts)
		tx.Category = categorizeFn(tx.Description)

		if productCol != "" {
			if name := strings.TrimSpace(row[productCol]); name != "" {
				tx.ProductName = name
				tx.ProductCategory = categorizeFn(name)
				tx.Quantity = parseQuantity(row[quantityCol])
				if price, ok := ParseCurrency(row[unitPriceCol]); ok {
					tx.ProductPricePence = Pence(price)
				}
			}
		}

		txs = append(txs, tx)
		stats.Parsed++
	}

	return txs, stats
}

func cellOrDefault(row map[string]string, col, fallback string) string {
	if col != "" {
		if v := strings.TrimSpace(row[col]); v != "" {
			return v
		}
	}
	return fallback
}

func parseStatus(s string) domain.TransactionStatus {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.TransactionStatusCompleted
	}
	switch strings.ToLower(s) {
	case "refund", "refunded":
		return domain.TransactionStatusRefunded
	case "declined", "failed":
		return domain.TransactionStatusDeclined
	default:
		return domain.TransactionStatus(s)
	}
}

func parseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 1
	}
	return n
}
