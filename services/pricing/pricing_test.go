package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCBM(t *testing.T) {
	// 100 boxes of 40×30×20 cm = 2.4 m³
	cbm := CBM(100, 40, 30, 20)
	assert.True(t, cbm.Equal(decimal.NewFromFloat(2.4)), "got %s", cbm)
}

func TestShippingMethodBoundary(t *testing.T) {
	assert.Equal(t, MethodFCL, ShippingMethod(decimal.NewFromFloat(15.0)))
	assert.Equal(t, MethodFCL, ShippingMethod(decimal.NewFromFloat(20.5)))
	assert.Equal(t, MethodLCL, ShippingMethod(decimal.NewFromFloat(14.999)))
	assert.Equal(t, MethodLCL, ShippingMethod(decimal.Zero))
}

func TestLCLShippingFee(t *testing.T) {
	// 2.4 m³ × 90,000 = 216,000
	fee := LCLShippingFee(decimal.NewFromFloat(2.4))
	assert.True(t, fee.Equal(decimal.NewFromInt(216000)), "got %s", fee)

	// FCL shipments pay no LCL fee
	fee = LCLShippingFee(decimal.NewFromInt(16))
	assert.True(t, fee.IsZero(), "got %s", fee)
}

func TestCommission(t *testing.T) {
	// 10 yuan × 1000 pcs × 190 KRW/yuan × 0.05 = 95,000
	commission := Commission(decimal.NewFromInt(10), 1000, decimal.NewFromInt(190))
	assert.True(t, commission.Equal(decimal.NewFromInt(95000)), "got %s", commission)
}

func TestImportVAT(t *testing.T) {
	// 1,000 KRW × 1000 pcs × 0.10 = 100,000
	vat := ImportVAT(decimal.NewFromInt(1000), 1000)
	assert.True(t, vat.Equal(decimal.NewFromInt(100000)), "got %s", vat)
}

func TestExpectedTotal(t *testing.T) {
	// 1,000 × 1000 + 216,000 + 100,000 = 1,316,000
	total := ExpectedTotal(decimal.NewFromInt(1000), 1000,
		decimal.NewFromInt(216000), decimal.NewFromInt(100000))
	assert.True(t, total.Equal(decimal.NewFromInt(1316000)), "got %s", total)
}

func TestInspection(t *testing.T) {
	cost := Inspection(decimal.NewFromInt(200000), 3)
	assert.True(t, cost.Total.Equal(decimal.NewFromInt(600000)), "total %s", cost.Total)
	assert.True(t, cost.VAT.Equal(decimal.NewFromInt(60000)), "vat %s", cost.VAT)
	assert.True(t, cost.Final.Equal(decimal.NewFromInt(660000)), "final %s", cost.Final)
}

func TestComputeQuoteFull(t *testing.T) {
	chinaPrice := decimal.NewFromInt(10)
	koreaPrice := decimal.NewFromInt(1000)
	rate := decimal.NewFromInt(190)
	boxQty := 100
	length, width, height := 40.0, 30.0, 20.0

	result := ComputeQuote(QuoteInput{
		Quantity:       1000,
		ChinaUnitPrice: &chinaPrice,
		KoreaUnitPrice: &koreaPrice,
		ExchangeRate:   &rate,
		BoxQuantity:    &boxQty,
		BoxLengthCm:    &length,
		BoxWidthCm:     &width,
		BoxHeightCm:    &height,
	})

	assert.NotNil(t, result.TotalCBM)
	assert.True(t, result.TotalCBM.Equal(decimal.NewFromFloat(2.4)))
	assert.Equal(t, MethodLCL, *result.ShippingMethod)
	assert.True(t, result.LCLShippingFee.Equal(decimal.NewFromInt(216000)))
	assert.True(t, result.Commission.Equal(decimal.NewFromInt(95000)))
	assert.True(t, result.ImportVAT.Equal(decimal.NewFromInt(100000)))
	assert.True(t, result.ExpectedTotal.Equal(decimal.NewFromInt(1316000)))
}

func TestComputeQuotePartialInputs(t *testing.T) {
	koreaPrice := decimal.NewFromInt(1000)

	// Only the Korea-side price: VAT and expected total resolve, the rest stay nil
	result := ComputeQuote(QuoteInput{
		Quantity:       500,
		KoreaUnitPrice: &koreaPrice,
	})

	assert.Nil(t, result.TotalCBM)
	assert.Nil(t, result.ShippingMethod)
	assert.Nil(t, result.LCLShippingFee)
	assert.Nil(t, result.Commission)
	assert.NotNil(t, result.ImportVAT)
	assert.True(t, result.ImportVAT.Equal(decimal.NewFromInt(50000)))
	// Expected total treats the missing LCL fee as zero
	assert.True(t, result.ExpectedTotal.Equal(decimal.NewFromInt(550000)))
}

func TestComputeQuoteEmpty(t *testing.T) {
	result := ComputeQuote(QuoteInput{Quantity: 100})
	assert.Nil(t, result.TotalCBM)
	assert.Nil(t, result.ShippingMethod)
	assert.Nil(t, result.LCLShippingFee)
	assert.Nil(t, result.Commission)
	assert.Nil(t, result.ImportVAT)
	assert.Nil(t, result.ExpectedTotal)
}
