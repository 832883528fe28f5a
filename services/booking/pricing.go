package booking

import "freshfold/models"

// Flat per-service rates in GBP. Quantity does not affect the price.
const (
	LaundryRate     = 25.00
	DuvetsRate      = 35.00
	DryCleaningRate = 45.00
)

// Quote computes the session total from the selected service flags.
func Quote(sel models.ServiceSelection) float64 {
	total := 0.0
	if sel.Laundry {
		total += LaundryRate
	}
	if sel.Duvets {
		total += DuvetsRate
	}
	if sel.DryCleaning {
		total += DryCleaningRate
	}
	return total
}

// PerLockerShare splits the total evenly across the selected lockers.
// Plain float division; no remainder redistribution.
func PerLockerShare(total float64, lockerCount int) float64 {
	if lockerCount <= 0 {
		return total
	}
	return total / float64(lockerCount)
}

// BuildOrderLines derives the order line items from the service flags.
func BuildOrderLines(sel models.ServiceSelection) []models.OrderLine {
	var lines []models.OrderLine
	if sel.Laundry {
		lines = append(lines, models.OrderLine{Name: "Wash & Fold", Quantity: 1, UnitPrice: LaundryRate, Service: models.ServiceLaundry})
	}
	if sel.Duvets {
		lines = append(lines, models.OrderLine{Name: "Duvet Clean", Quantity: 1, UnitPrice: DuvetsRate, Service: models.ServiceDuvets})
	}
	if sel.DryCleaning {
		lines = append(lines, models.OrderLine{Name: "Dry Cleaning", Quantity: 1, UnitPrice: DryCleaningRate, Service: models.ServiceDryCleaning})
	}
	return lines
}
