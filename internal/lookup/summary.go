package lookup

// Summarize computes aggregate statistics over orders. Missing prices count as 0 and
// orders with an unknown opt-in flag count toward neither opt-in nor opt-out.
func Summarize(orders []Order) Summary {
	summary := Summary{TotalOrders: len(orders)}

	for _, o := range orders {
		if o.TotalPrice != nil {
			summary.TotalSpent += *o.TotalPrice
		}

		if o.OptIn == nil {
			continue
		}
		if *o.OptIn {
			summary.OptInCount++
		} else {
			summary.OptOutCount++
		}
	}

	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalSpent / float64(summary.TotalOrders)
		summary.OptInRate = float64(summary.OptInCount) / float64(summary.TotalOrders) * 100
	}

	return summary
}
