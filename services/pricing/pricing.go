package pricing

import (
	"github.com/shopspring/decimal"
)

// Fixed business rates. The LCL unit rate is per m³; commission is a flat 5%
// of the China-side goods value; import VAT is a flat 10% of the Korea-side
// goods value.
var (
	lclUnitRate     = decimal.NewFromInt(90000)
	commissionRate  = decimal.NewFromFloat(0.05)
	importVATRate   = decimal.NewFromFloat(0.10)
	fclThresholdCBM = decimal.NewFromInt(15)
	cbmDivisor      = decimal.NewFromInt(1_000_000)
)

// Shipping methods derived from total CBM
const (
	MethodFCL = "FCL"
	MethodLCL = "LCL"
)

// moneyScale is the rounding applied at the edge of every formula:
// half-up to 2 decimal places.
func moneyScale(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CBM computes total cubic meters from box count and box dimensions in cm
func CBM(boxQuantity int, lengthCm, widthCm, heightCm float64) decimal.Decimal {
	volume := decimal.NewFromInt(int64(boxQuantity)).
		Mul(decimal.NewFromFloat(lengthCm)).
		Mul(decimal.NewFromFloat(widthCm)).
		Mul(decimal.NewFromFloat(heightCm))
	return volume.Div(cbmDivisor).Round(6)
}

// ShippingMethod selects FCL when total CBM reaches 15 m³, LCL otherwise.
// The boundary value 15.0 itself is FCL.
func ShippingMethod(totalCBM decimal.Decimal) string {
	if totalCBM.GreaterThanOrEqual(fclThresholdCBM) {
		return MethodFCL
	}
	return MethodLCL
}

// LCLShippingFee is totalCBM × 90,000. FCL shipments pay no LCL fee.
func LCLShippingFee(totalCBM decimal.Decimal) decimal.Decimal {
	if ShippingMethod(totalCBM) == MethodFCL {
		return decimal.Zero
	}
	return moneyScale(totalCBM.Mul(lclUnitRate))
}

// Commission is china_unit_price × quantity × exchange_rate × 0.05
func Commission(chinaUnitPrice decimal.Decimal, quantity int, exchangeRate decimal.Decimal) decimal.Decimal {
	return moneyScale(chinaUnitPrice.
		Mul(decimal.NewFromInt(int64(quantity))).
		Mul(exchangeRate).
		Mul(commissionRate))
}

// ImportVAT is korea_unit_price × quantity × 0.10
func ImportVAT(koreaUnitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return moneyScale(koreaUnitPrice.
		Mul(decimal.NewFromInt(int64(quantity))).
		Mul(importVATRate))
}

// ExpectedTotal is korea_unit_price × quantity + lcl_shipping_fee + import_vat
func ExpectedTotal(koreaUnitPrice decimal.Decimal, quantity int, lclShippingFee, importVAT decimal.Decimal) decimal.Decimal {
	goods := koreaUnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return moneyScale(goods.Add(lclShippingFee).Add(importVAT))
}

// InspectionCost holds the recomputed cost breakdown for an inspection order
type InspectionCost struct {
	Total decimal.Decimal
	VAT   decimal.Decimal
	Final decimal.Decimal
}

// Inspection computes total = unit_price × days, vat = total × 0.10,
// final = total + vat.
func Inspection(unitPrice decimal.Decimal, inspectionDays int) InspectionCost {
	total := moneyScale(unitPrice.Mul(decimal.NewFromInt(int64(inspectionDays))))
	vat := moneyScale(total.Mul(importVATRate))
	return InspectionCost{
		Total: total,
		VAT:   vat,
		Final: moneyScale(total.Add(vat)),
	}
}

// QuoteInput bundles the staff-entered pricing fields shared by market
// research and bulk orders.
type QuoteInput struct {
	Quantity       int
	ChinaUnitPrice *decimal.Decimal
	KoreaUnitPrice *decimal.Decimal
	ExchangeRate   *decimal.Decimal
	BoxQuantity    *int
	BoxLengthCm    *float64
	BoxWidthCm     *float64
	BoxHeightCm    *float64
}

// QuoteResult carries every derived field; nil members mean the inputs
// required to compute them were absent.
type QuoteResult struct {
	TotalCBM       *decimal.Decimal
	ShippingMethod *string
	LCLShippingFee *decimal.Decimal
	Commission     *decimal.Decimal
	ImportVAT      *decimal.Decimal
	ExpectedTotal  *decimal.Decimal
}

// ComputeQuote recomputes every derived field from scratch. There is no
// incremental recalculation: staff saves always pass the full input set.
func ComputeQuote(in QuoteInput) QuoteResult {
	var out QuoteResult

	if in.BoxQuantity != nil && in.BoxLengthCm != nil && in.BoxWidthCm != nil && in.BoxHeightCm != nil {
		cbm := CBM(*in.BoxQuantity, *in.BoxLengthCm, *in.BoxWidthCm, *in.BoxHeightCm)
		method := ShippingMethod(cbm)
		fee := LCLShippingFee(cbm)
		out.TotalCBM = &cbm
		out.ShippingMethod = &method
		out.LCLShippingFee = &fee
	}

	if in.ChinaUnitPrice != nil && in.ExchangeRate != nil {
		commission := Commission(*in.ChinaUnitPrice, in.Quantity, *in.ExchangeRate)
		out.Commission = &commission
	}

	if in.KoreaUnitPrice != nil {
		vat := ImportVAT(*in.KoreaUnitPrice, in.Quantity)
		out.ImportVAT = &vat

		fee := decimal.Zero
		if out.LCLShippingFee != nil {
			fee = *out.LCLShippingFee
		}
		total := ExpectedTotal(*in.KoreaUnitPrice, in.Quantity, fee, vat)
		out.ExpectedTotal = &total
	}

	return out
}
