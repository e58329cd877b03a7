package analytics

import (
	"sort"
	"time"

	"github.com/seu-repo/pos-insight/internal/domain"
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func summarizeSales(txs []domain.Transaction, now time.Time) *domain.SalesSummary {
	s := &domain.SalesSummary{ID: 1, GeneratedAt: now}

	var thisWeek, lastWeek int64
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	for i := range txs {
		tx := &txs[i]
		s.TotalSalesPence += tx.AmountPence
		s.Orders++

		if !tx.DateTime.Before(weekAgo) {
			thisWeek += tx.AmountPence
		} else if !tx.DateTime.Before(twoWeeksAgo) {
			lastWeek += tx.AmountPence
		}
	}

	if s.Orders > 0 {
		s.AvgOrderPence = s.TotalSalesPence / int64(s.Orders)
	}
	if lastWeek > 0 {
		s.WeekOverWeekPct = float64(thisWeek-lastWeek) / float64(lastWeek) * 100
	}
	return s
}

// summarizeHourly always emits 24 rows so the demand chart never has gaps.
func summarizeHourly(txs []domain.Transaction) []domain.HourlySales {
	rows := make([]domain.HourlySales, 24)
	for h := range rows {
		rows[h].Hour = h
	}
	for i := range txs {
		h := txs[i].Hour
		if h < 0 || h > 23 {
			continue
		}
		rows[h].Orders++
		rows[h].RevenuePence += txs[i].AmountPence
	}
	return rows
}

// summarizeDaily always emits 7 rows, Sunday first.
func summarizeDaily(txs []domain.Transaction) []domain.DailySales {
	rows := make([]domain.DailySales, 7)
	for d := range rows {
		rows[d].DayOfWeek = d
		rows[d].Day = dayNames[d]
	}
	for i := range txs {
		d := txs[i].DayOfWeek
		if d < 0 || d > 6 {
			continue
		}
		rows[d].Orders++
		rows[d].RevenuePence += txs[i].AmountPence
	}
	return rows
}

func summarizeSites(txs []domain.Transaction) []domain.SiteSummary {
	byStore := make(map[string]*domain.SiteSummary)
	for i := range txs {
		tx := &txs[i]
		site, ok := byStore[tx.StoreID]
		if !ok {
			site = &domain.SiteSummary{StoreID: tx.StoreID, StoreName: tx.StoreName}
			byStore[tx.StoreID] = site
		}
		site.Orders++
		site.RevenuePence += tx.AmountPence
	}

	rows := make([]domain.SiteSummary, 0, len(byStore))
	for _, site := range byStore {
		if site.Orders > 0 {
			site.AvgOrderPence = site.RevenuePence / int64(site.Orders)
		}
		rows = append(rows, *site)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].RevenuePence > rows[j].RevenuePence })
	return rows
}

func summarizeProducts(txs []domain.Transaction) []domain.ProductSummary {
	byName := make(map[string]*domain.ProductSummary)
	for i := range txs {
		tx := &txs[i]
		if tx.ProductName == "" {
			continue
		}
		p, ok := byName[tx.ProductName]
		if !ok {
			p = &domain.ProductSummary{Name: tx.ProductName, Category: tx.ProductCategory}
			byName[tx.ProductName] = p
		}
		qty := tx.Quantity
		if qty <= 0 {
			qty = 1
		}
		p.Quantity += qty
		if tx.ProductPricePence > 0 {
			p.RevenuePence += tx.ProductPricePence * int64(qty)
		} else {
			p.RevenuePence += tx.AmountPence
		}
	}

	rows := make([]domain.ProductSummary, 0, len(byName))
	for _, p := range byName {
		rows = append(rows, *p)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].RevenuePence > rows[j].RevenuePence })
	return rows
}

// summarizeCustomers counts identified customers only: rows without a
// customer token can't be attributed and stay out of the new/returning
// split.
func summarizeCustomers(txs []domain.Transaction, now time.Time) *domain.CustomerSummary {
	s := &domain.CustomerSummary{ID: 1, GeneratedAt: now}

	visits := make(map[string]int)
	var spend int64
	for i := range txs {
		tx := &txs[i]
		if tx.CustomerID == "" {
			continue
		}
		visits[tx.CustomerID]++
		spend += tx.AmountPence
		s.IdentifiedOrders++
	}

	for _, n := range visits {
		if n > 1 {
			s.ReturningCustomers++
		} else {
			s.NewCustomers++
		}
	}

	if len(visits) > 0 {
		s.AvgSpendPence = spend / int64(len(visits))
		s.AvgVisits = float64(s.IdentifiedOrders) / float64(len(visits))
	}
	return s
}
