package commission

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// Amounts денежные поля бронирования
type Amounts struct {
	TotalAmount decimal.Decimal
	Commission  decimal.Decimal
}

// Calculator вычисляет сумму бронирования и комиссию агента
// Чистая функция: без состояния, кроме ставки
type Calculator struct {
	rate decimal.Decimal
}

// NewCalculator создает калькулятор со ставкой domain.CommissionRate
func NewCalculator() *Calculator {
	return &Calculator{rate: domain.CommissionRate}
}

// Rate текущая ставка комиссии
func (c *Calculator) Rate() decimal.Decimal {
	return c.rate
}

// ComputeAmounts total = price * headcount, commission = total * rate
// Обе суммы округляются до 2 знаков (half-up для неотрицательных сумм)
func (c *Calculator) ComputeAmounts(unitPrice decimal.Decimal, headcount int) Amounts {
	total := unitPrice.Mul(decimal.NewFromInt(int64(headcount))).Round(domain.MoneyPrecision)
	commission := total.Mul(c.rate).Round(domain.MoneyPrecision)

	return Amounts{
		TotalAmount: total,
		Commission:  commission,
	}
}
