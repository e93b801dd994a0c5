package mathutil

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// TenThousands is the basis-point denominator.
var TenThousands = uint64(10000)

func init() {
	decimal.DivisionPrecision = 8
}

// Decimal lifts a uint64 into a decimal.Decimal without any intermediate
// signed conversion, so the full uint64 range is representable.
func Decimal(x uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
}

// Mul takes two uint64 numbers and multiplies them x * y, returning the
// result as decimal.Decimal. It cannot overflow.
func Mul(x, y uint64) decimal.Decimal {
	return Decimal(x).Mul(Decimal(y))
}

// Div takes two uint64 numbers and divides them x / y, returning the result
// as decimal.Decimal.
func Div(x, y uint64) decimal.Decimal {
	return Decimal(x).Div(Decimal(y))
}

// SatSub subtracts y from x, flooring at zero instead of wrapping around.
func SatSub(x, y uint64) uint64 {
	if y >= x {
		return 0
	}
	return x - y
}
