package calculator

import (
	"sort"
	"time"

	"stocktracker/internal/domain"

	"github.com/shopspring/decimal"
)

// ComputePositions folds a ledger slice into net per-symbol positions
// using the average-cost disposal method: a sell releases cost
// proportionally to the fraction of currently-held shares sold, so the
// average cost basis of the remaining shares is unchanged.
//
// Transactions are processed per symbol in chronological order, with
// ledger insertion order breaking date ties. Symbols whose net quantity
// ends at or below zero are not current holdings and are excluded from
// the result. Oversells are not rejected here - the arithmetic is
// applied as-is and the symbol drops out of the result; rejecting
// oversells is the ingestion boundary's job.
//
// The function is pure and never fails for well-typed input.
func ComputePositions(transactions []domain.Transaction) map[string]domain.Position {
	ordered := make([]domain.Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TransactionDate.Before(ordered[j].TransactionDate)
	})

	bySymbol := map[string][]domain.Transaction{}
	for _, t := range ordered {
		bySymbol[t.Symbol] = append(bySymbol[t.Symbol], t)
	}

	positions := map[string]domain.Position{}
	for symbol, txs := range bySymbol {
		netQuantity := decimal.Zero
		totalCost := decimal.Zero
		var firstPurchase time.Time

		for _, t := range txs {
			switch t.TransactionType {
			case domain.TransactionTypeBuy:
				totalCost = totalCost.Add(t.Quantity.Mul(t.PricePerShare))
				netQuantity = netQuantity.Add(t.Quantity)
				if firstPurchase.IsZero() {
					firstPurchase = t.TransactionDate
				}
			case domain.TransactionTypeSell:
				// release cost for the fraction of held shares sold;
				// when nothing is held the cost cannot be attributed,
				// so only the quantity moves (further negative)
				if netQuantity.Sign() > 0 {
					soldFraction := t.Quantity.Div(netQuantity)
					totalCost = totalCost.Sub(totalCost.Mul(soldFraction))
				}
				netQuantity = netQuantity.Sub(t.Quantity)
			}
		}

		if netQuantity.Sign() <= 0 {
			continue
		}

		positions[symbol] = domain.Position{
			Symbol:        symbol,
			Quantity:      netQuantity,
			AvgCostBasis:  totalCost.Div(netQuantity),
			TotalCost:     totalCost,
			FirstPurchase: firstPurchase,
		}
	}

	return positions
}

// SummarizeLedger computes the headline numbers shown above the
// holdings table. Total invested/received are gross transaction values,
// independent of which positions are still held.
func SummarizeLedger(transactions []domain.Transaction, positions map[string]domain.Position) domain.PortfolioSummary {
	totalInvested := decimal.Zero
	totalReceived := decimal.Zero
	for _, t := range transactions {
		switch t.TransactionType {
		case domain.TransactionTypeBuy:
			totalInvested = totalInvested.Add(t.TotalValue())
		case domain.TransactionTypeSell:
			totalReceived = totalReceived.Add(t.TotalValue())
		}
	}

	return domain.PortfolioSummary{
		TotalInvested:     totalInvested,
		TotalReceived:     totalReceived,
		NetInvested:       totalInvested.Sub(totalReceived),
		CompaniesCount:    len(positions),
		TotalTransactions: len(transactions),
	}
}
