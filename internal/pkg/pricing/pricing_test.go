package pricing

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestComputeDiscountOnlyAppliesToService(t *testing.T) {
	sel := Selection{
		ServicePrice:        20000,
		ServiceRegularPrice: 25000,
		DiscountPercent:     50,
		Plan:                &PlanChoice{Name: "TV Full", Price: 10000},
		Addons:              []AddonChoice{{Name: "Router Wifi", Price: 2000}},
	}

	q := Compute(sel)

	assert.Equal(t, 10000.0, q.DiscountedServicePrice)
	assert.Equal(t, 22000.0, q.TotalNow)

	// The discount must not leak onto the plan or add-on prices.
	leaked := sel.ServicePrice*0.5 + sel.Plan.Price*0.5 + 2000*0.5
	assert.NotEqual(t, leaked, q.TotalNow)
}

func TestComputeTotalAfterUsesRegularServicePrice(t *testing.T) {
	sel := Selection{
		ServicePrice:        20000,
		ServiceRegularPrice: 25000,
		DiscountPercent:     10,
		Plan:                &PlanChoice{Name: "TV Full", Price: 8000},
		Addons:              []AddonChoice{{Name: "IP Fija", Price: 3000}},
	}

	q := Compute(sel)

	// Plan and add-on enter the after-promo total at their current
	// price; only the service reverts to its regular price. This
	// documents the behavior as shipped.
	assert.Equal(t, 25000.0+8000+3000, q.TotalAfter)
}

func TestComputeZeroValues(t *testing.T) {
	q := Compute(Selection{})
	assert.Equal(t, 0.0, q.DiscountedServicePrice)
	assert.Equal(t, 0.0, q.TotalNow)
	assert.Equal(t, 0.0, q.TotalAfter)
}

func TestComputeNaNInputsCoerceToZero(t *testing.T) {
	sel := Selection{
		ServicePrice:        math.NaN(),
		ServiceRegularPrice: 25000,
		DiscountPercent:     math.NaN(),
		Addons:              []AddonChoice{{Name: "Router Wifi", Price: math.NaN()}},
	}

	q := Compute(sel)

	// Unfilled form state upstream arrives as NaN; the engine keeps
	// degrading to zero instead of erroring.
	assert.Equal(t, 0.0, q.DiscountedServicePrice)
	assert.Equal(t, 0.0, q.TotalNow)
	assert.Equal(t, 25000.0, q.TotalAfter)
}

func TestFormatCLP(t *testing.T) {
	assert.Equal(t, "$0", FormatCLP(0))
	assert.Equal(t, "$500", FormatCLP(500))
	assert.Equal(t, "$18.000", FormatCLP(18000))
	assert.Equal(t, "$27.000", FormatCLP(27000.9))
	assert.Equal(t, "$1.234.567", FormatCLP(1234567))
	assert.Equal(t, "$0", FormatCLP(math.NaN()))
}

func TestSummaryServiceAndAddonOnly(t *testing.T) {
	sel := Selection{
		ServicePrice:        20000,
		ServiceRegularPrice: 25000,
		DiscountPercent:     10,
		Duration:            12,
		Addons:              []AddonChoice{{Name: "Router Wifi", Price: 2000}},
	}

	expected := strings.Join([]string{
		"Hola, me gustaría contratar:",
		"- Plan Fibra 0 Mbps por $18.000",
		"- Complementos: Router Wifi por $2.000",
		"",
		"Precio total mensual: $20.000",
		"Después del mes 12, el precio será $27.000",
	}, "\n")

	assert.Equal(t, expected, Summary(sel))
}

func TestSummaryWithPlanAndChannels(t *testing.T) {
	sel := Selection{
		ServicePrice:        30000,
		ServiceRegularPrice: 35000,
		ServiceSpeedMbps:    600,
		DiscountPercent:     20,
		Duration:            6,
		Plan:                &PlanChoice{Name: "TV Full", Price: 9990, ChannelCount: intPtr(80)},
	}

	got := Summary(sel)

	assert.Contains(t, got, "- Plan Fibra 600 Mbps por $24.000")
	assert.Contains(t, got, "- Plan TV Full con 80 canales por $9.990")
	assert.NotContains(t, got, "Complementos")
	assert.Contains(t, got, "Precio total mensual: $33.990")
	assert.Contains(t, got, "Después del mes 6, el precio será $44.990")
}

func TestSummaryPlanWithoutChannelCountOmitsClause(t *testing.T) {
	sel := Selection{
		ServicePrice: 20000,
		Duration:     12,
		Plan:         &PlanChoice{Name: "Zapping Lite", Price: 5000},
	}

	got := Summary(sel)

	assert.Contains(t, got, "- Plan Zapping Lite por $5.000")
	assert.NotContains(t, got, "canales")
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("56912345678", "Hola, me gustaría contratar:")

	require.True(t, strings.HasPrefix(link, "https://wa.me/56912345678?text="))
	assert.NotContains(t, link, " ")
	assert.Contains(t, link, "Hola")
}
