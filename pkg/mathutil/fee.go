package mathutil

// SplitFee splits a settlement amount between the platform owner and the
// seller given an owner cut expressed in basis points (ie. 5% = 500).
// ownerCut is floor(amount * cutBps / 10000); sellerProceeds is the
// remainder, floored at zero. The whole computation runs on arbitrary
// precision numbers, so no intermediate product can overflow.
func SplitFee(amount uint64, cutBps uint16) (ownerCut, sellerProceeds uint64) {
	cutDecimal := Mul(amount, uint64(cutBps)).
		Div(Decimal(TenThousands)).
		Truncate(0)

	ownerCut = cutDecimal.BigInt().Uint64()
	sellerProceeds = SatSub(amount, ownerCut)
	return
}
