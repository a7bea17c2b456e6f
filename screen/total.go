package screen

import (
	"gofood/utils"

	"github.com/shopspring/decimal"
)

// Total is quantity × price plus every extra's quantity × value. Zero before load.
func (s *FoodDetails) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

// FormattedTotal is Total rendered as BRL, e.g. "R$ 27,50".
func (s *FoodDetails) FormattedTotal() string {
	return formatTotal(s.Total())
}

func (s *FoodDetails) totalLocked() decimal.Decimal {
	if s.food == nil {
		return decimal.Zero
	}

	total := s.price.Mul(decimal.NewFromInt(int64(s.quantity)))
	for _, x := range s.extras {
		total = total.Add(x.Value.Mul(decimal.NewFromInt(int64(x.Quantity))))
	}
	return total
}

func formatTotal(d decimal.Decimal) string {
	return utils.FormatValue(d)
}
