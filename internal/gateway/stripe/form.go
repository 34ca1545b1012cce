package stripe

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/eshop-platform/payment-service/internal/domain"
)

type checkoutSessionRequest struct {
	UIMode    string
	Mode      string
	ReturnURL string
	LineItems []domain.LineItem
}

// encodeCheckoutSessionForm builds the form body by hand. Stripe parses
// nested collections from bracket-indexed keys (line_items[0][price]);
// generic urlencoded encoders flatten arrays into shapes its API rejects.
func encodeCheckoutSessionForm(req checkoutSessionRequest) url.Values {
	form := url.Values{}
	form.Set("ui_mode", req.UIMode)
	form.Set("mode", req.Mode)
	form.Set("return_url", req.ReturnURL)

	for i, item := range req.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price]", minorUnits(item.Price))
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
	}
	return form
}

// minorUnits renders a major-unit amount in cents.
func minorUnits(amount decimal.Decimal) string {
	return amount.Mul(decimal.NewFromInt(minorUnitFactor)).Round(0).String()
}
