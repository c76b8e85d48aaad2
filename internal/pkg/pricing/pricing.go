// Package pricing computes the monthly price for a service bundled
// with an optional plan and a set of add-ons under a promotion. The
// promotion discount applies to the service component only; plan and
// add-on prices always enter the totals at full price. This is the
// campaign rule, not an accident.
package pricing

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

// PlanChoice is the optionally selected plan.
type PlanChoice struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	ChannelCount *int    `json:"channel_count"`
}

// AddonChoice is a selected add-on.
type AddonChoice struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Selection is everything the quote depends on. Numeric fields that
// arrive as NaN (unfilled form state upstream) are treated as zero
// instead of failing; partially filled selections must still render.
type Selection struct {
	ServicePrice        float64      `json:"service_price"`
	ServiceRegularPrice float64      `json:"service_regular_price"`
	ServiceSpeedMbps    int          `json:"service_speed_mbps"`
	DiscountPercent     float64      `json:"discount_percent"`
	Duration            int          `json:"duration"`
	Plan                *PlanChoice  `json:"plan"`
	Addons              []AddonChoice `json:"addons"`
}

// Quote holds the computed monthly totals.
type Quote struct {
	DiscountedServicePrice float64 `json:"discounted_service_price"`
	TotalNow               float64 `json:"total_now"`
	TotalAfter             float64 `json:"total_after"`
}

func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// Compute derives the quote for a selection.
//
//	discounted = servicePrice * (1 - discount/100)
//	totalNow   = discounted + planPrice + addonsTotal
//	totalAfter = serviceRegularPrice + planPrice + addonsTotal
//
// The after-promo total carries the plan and add-on prices at their
// current (promotional) value, not their regular price. That matches
// how the campaigns have always been sold; see the design notes
// before changing it.
func Compute(sel Selection) Quote {
	servicePrice := orZero(sel.ServicePrice)
	discount := orZero(sel.DiscountPercent)

	planPrice := 0.0
	if sel.Plan != nil {
		planPrice = orZero(sel.Plan.Price)
	}

	addonsTotal := 0.0
	for _, addon := range sel.Addons {
		addonsTotal += orZero(addon.Price)
	}

	discounted := servicePrice * (1 - discount/100)
	return Quote{
		DiscountedServicePrice: discounted,
		TotalNow:               discounted + planPrice + addonsTotal,
		TotalAfter:             orZero(sel.ServiceRegularPrice) + planPrice + addonsTotal,
	}
}

// FormatCLP renders a peso amount the way the sites display it:
// floored to whole pesos, dot-grouped thousands, no decimals.
func FormatCLP(v float64) string {
	n := int64(math.Floor(orZero(v)))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return sign + "$" + b.String()
}

// Summary builds the prefilled contact message for a selection. Line
// order is fixed; sections without data produce no line at all.
func Summary(sel Selection) string {
	q := Compute(sel)

	lines := []string{
		"Hola, me gustaría contratar:",
		fmt.Sprintf("- Plan Fibra %d Mbps por %s", sel.ServiceSpeedMbps, FormatCLP(q.DiscountedServicePrice)),
	}

	if sel.Plan != nil {
		if sel.Plan.ChannelCount != nil {
			lines = append(lines, fmt.Sprintf("- Plan %s con %d canales por %s",
				sel.Plan.Name, *sel.Plan.ChannelCount, FormatCLP(sel.Plan.Price)))
		} else {
			lines = append(lines, fmt.Sprintf("- Plan %s por %s",
				sel.Plan.Name, FormatCLP(sel.Plan.Price)))
		}
	}

	if len(sel.Addons) > 0 {
		parts := make([]string, 0, len(sel.Addons))
		for _, addon := range sel.Addons {
			parts = append(parts, fmt.Sprintf("%s por %s", addon.Name, FormatCLP(addon.Price)))
		}
		lines = append(lines, "- Complementos: "+strings.Join(parts, ", "))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Precio total mensual: %s", FormatCLP(q.TotalNow)),
		fmt.Sprintf("Después del mes %d, el precio será %s", sel.Duration, FormatCLP(q.TotalAfter)),
	)

	return strings.Join(lines, "\n")
}

// WhatsAppLink builds the wa.me URL that opens a chat with the given
// number and the summary prefilled.
func WhatsAppLink(number, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}
