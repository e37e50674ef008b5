package app

import (
	"regexp"

	"relief_ai/internal/domain"
)

// Documented fallback constants for item-less reports.
const (
	defaultPeopleServed = 50
	defaultFoodSavedKg  = 200
	defaultValueRupees  = 5000
)

// FoodItem is a food surplus line extracted from a raw text report.
type FoodItem struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Unit       string `json:"unit"`
	UnitPrice  int    `json:"unit_price"`
	TotalValue int    `json:"total_value"`
}

type foodPattern struct {
	re    *regexp.Regexp
	name  string
	unit  string
	price int // rupees per unit
}

var foodPatterns = []foodPattern{
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?).*?tomato(?:es)?`), "Tomatoes", "kg", 15},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:l|liters?|litres?).*?milk`), "Milk", "L", 40},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?).*?potato(?:es)?`), "Potatoes", "kg", 20},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?).*?apples?`), "Apples", "kg", 80},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?).*?rice`), "Rice", "kg", 25},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?).*?wheat`), "Wheat", "kg", 22},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?).*?vegetables?`), "Vegetables", "kg", 18},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?).*?fish`), "Fish", "kg", 120},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?).*?meat`), "Meat", "kg", 200},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?).*?(?:bread|bakery)`), "Bakery Items", "kg", 30},
}

var generalQuantity = regexp.MustCompile(`(?i)(\d+)\s*(?:kg|kilograms?|tons?)`)

// ExtractFoodItems scans a raw report for known food quantities.
// Quantities for the same item are summed. If no known item matches but
// generic quantities appear, they are pooled as mixed food items.
func ExtractFoodItems(report string) []FoodItem {
	var items []FoodItem
	for _, p := range foodPatterns {
		qty := 0
		for _, m := range p.re.FindAllStringSubmatch(report, -1) {
			qty += atoiSafe(m[1])
		}
		if qty > 0 {
			items = append(items, FoodItem{
				Name:       p.name,
				Quantity:   qty,
				Unit:       p.unit,
				UnitPrice:  p.price,
				TotalValue: qty * p.price,
			})
		}
	}
	if len(items) == 0 {
		total := 0
		for _, m := range generalQuantity.FindAllStringSubmatch(report, -1) {
			total += atoiSafe(m[1])
		}
		if total > 0 {
			items = append(items, FoodItem{Name: "Mixed Food Items", Quantity: total, Unit: "kg", UnitPrice: 25, TotalValue: total * 25})
		}
	}
	return items
}

// EstimateImpact derives impact metrics from extracted items: 3 kg feeds
// one person, 2.5 kg CO2e and 1000 L water saved per kg of food waste
// avoided. Item-less reports fall back to the documented defaults.
func EstimateImpact(items []FoodItem) domain.Impact {
	if len(items) == 0 {
		return domain.Impact{
			PeopleServed:        defaultPeopleServed,
			FoodSavedKg:         defaultFoodSavedKg,
			EconomicValueRupees: defaultValueRupees,
			EmissionsSavedKg:    2.5 * defaultFoodSavedKg,
			WaterSavedLiters:    defaultFoodSavedKg * 1000,
		}
	}
	totalQty, value := 0, 0
	for _, it := range items {
		totalQty += it.Quantity
		value += it.TotalValue
	}
	return domain.Impact{
		PeopleServed:        totalQty / 3,
		FoodSavedKg:         totalQty,
		EconomicValueRupees: value,
		EmissionsSavedKg:    2.5 * float64(totalQty),
		WaterSavedLiters:    totalQty * 1000,
	}
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
