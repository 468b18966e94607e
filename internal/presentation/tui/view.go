package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"roastline/internal/session"
)

// View renders session snapshots into full-screen frames.
type View struct {
	width    int
	markdown func(string) string
}

// NewView creates a renderer for the given terminal width.
func NewView(width int) *View {
	if width > 80 {
		width = 80
	}
	return &View{
		width:    width,
		markdown: NewMarkdownRenderer(width - 8),
	}
}

// Render paints one frame from the current session state.
func (v *View) Render(s *session.Session) string {
	if s.ShowSplash {
		return styleFrame.Width(v.width - 4).Render(v.splash())
	}

	var body string
	switch s.CurrentTab {
	case session.TabShop:
		body = v.shop(s)
	case session.TabAccount:
		body = v.account(s)
	case session.TabCart:
		body = v.checkout(s)
	default:
		body = v.home(s)
	}

	frame := lipgloss.JoinVertical(lipgloss.Left,
		v.header(s),
		"",
		body,
		"",
		v.footer(s),
	)
	return styleFrame.Width(v.width - 4).Render(frame)
}

func (v *View) splash() string {
	logo := styleTitle.Render(`
                     _   _ _
 _ __ ___   __ _ ___| |_| (_)_ __   ___
| '__/ _ \ / _` + "`" + ` |/ __| __| | | '_ \ / _ \
| | | (_) | (_| |\__ \ |_| | | | | |  __/
|_|  \___/ \__,_||___/\__|_|_|_| |_|\___|`)
	return lipgloss.JoinVertical(lipgloss.Left,
		logo,
		"",
		styleDim.Render("coffee for your terminal"),
		"",
		styleDim.Render("press any key"),
	)
}

func (v *View) header(s *session.Session) string {
	tabs := []struct {
		tab   session.Tab
		label string
	}{
		{session.TabHome, "home"},
		{session.TabShop, "[s]hop"},
		{session.TabAccount, "[a]ccount"},
		{session.TabCart, fmt.Sprintf("[c]art (%d)", s.Cart.TotalItems())},
	}

	var parts []string
	for _, t := range tabs {
		if t.tab == s.CurrentTab {
			parts = append(parts, styleTabActive.Render(t.label))
		} else {
			parts = append(parts, styleTabInactive.Render(t.label))
		}
	}

	region := styleDim.Render(fmt.Sprintf("%s %s · %s", s.Region.Flag, s.Region.Code, s.Region.Currency))
	left := styleTitle.Render("roastline") + "  " + strings.Join(parts, "  ")
	return left + "   " + region
}

func (v *View) footer(s *session.Session) string {
	if s.Notification != "" {
		return styleNotification.Render(s.Notification)
	}

	hints := "↑/↓ navigate · enter select · esc back · r region · q quit"
	if s.ActiveField != session.FieldNone {
		hints = "type to edit · tab next field · enter continue · esc back"
	}
	user := styleDim.Render("~" + s.ShortID)
	return styleDim.Render(hints) + "   " + user
}

func (v *View) home(s *session.Session) string {
	free := fmt.Sprintf("free shipping over $%d", s.Region.FreeShippingThreshold/100)
	return lipgloss.JoinVertical(lipgloss.Left,
		styleHeading.Render("welcome to roastline"),
		"",
		stylePlain.Render("fresh roasted coffee, ordered entirely over ssh."),
		styleDim.Render(free),
		"",
		styleDim.Render("press s to start shopping"),
	)
}

func (v *View) shop(s *session.Session) string {
	if len(s.Products) == 0 {
		return styleDim.Render("no products available in this region")
	}

	var lines []string
	var lastCategory string
	for idx, p := range s.Products {
		if string(p.Category) != lastCategory {
			lastCategory = string(p.Category)
			lines = append(lines, styleDim.Render(p.Category.Heading()))
		}

		marker := "  "
		style := stylePlain
		if idx == s.SelectedProduct {
			marker = "> "
			style = styleSelected
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%-20s %6s", marker, p.Name, p.PriceDisplay())))
		if idx == s.SelectedProduct {
			lines = append(lines, styleDim.Render("    "+p.DetailsLine()))
			lines = append(lines, styleDim.Render("    "+p.Description))
			lines = append(lines, styleDim.Render(fmt.Sprintf("    qty %d  (+/- adjust, enter to add)", s.ProductQuantity)))
		}
	}
	return strings.Join(lines, "\n")
}

func (v *View) account(s *session.Session) string {
	sections := []struct {
		section session.AccountSection
		label   string
	}{
		{session.SectionOrderHistory, "order history"},
		{session.SectionSubscriptions, "subscriptions"},
		{session.SectionFaq, "faq"},
		{session.SectionAbout, "about"},
	}

	var menu []string
	for _, sec := range sections {
		if sec.section == s.AccountSection {
			menu = append(menu, styleSelected.Render("> "+sec.label))
		} else {
			menu = append(menu, styleDim.Render("  "+sec.label))
		}
	}

	var content string
	switch s.AccountSection {
	case session.SectionSubscriptions:
		content = v.subscriptions(s)
	case session.SectionFaq:
		content = v.markdown(FaqMarkdown)
	case session.SectionAbout:
		content = v.markdown(AboutMarkdown)
	default:
		content = v.orders(s)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(menu, "\n"),
		"    ",
		content,
	)
}

func (v *View) orders(s *session.Session) string {
	if len(s.Orders) == 0 {
		return styleDim.Render("no orders yet")
	}
	var lines []string
	for _, o := range s.Orders {
		lines = append(lines, stylePlain.Render(fmt.Sprintf("%s  %s  %s",
			o.CreatedAt.Format("2006-01-02"), o.TotalDisplay(), o.Status)))
	}
	return strings.Join(lines, "\n")
}

func (v *View) subscriptions(s *session.Session) string {
	if len(s.Subscriptions) == 0 {
		return styleDim.Render("no subscriptions")
	}
	var lines []string
	for _, sub := range s.Subscriptions {
		next := "—"
		if sub.NextDelivery != nil {
			next = sub.NextDelivery.Format("2006-01-02")
		}
		lines = append(lines, stylePlain.Render(fmt.Sprintf("%-20s %s  next: %s", sub.ProductName, sub.Status, next)))
	}
	return strings.Join(lines, "\n")
}

// checkout renders the cart tab for the current checkout step.
func (v *View) checkout(s *session.Session) string {
	steps := []struct {
		step  session.CheckoutStep
		label string
	}{
		{session.StepCart, "cart"},
		{session.StepShipping, "shipping"},
		{session.StepPayment, "payment"},
		{session.StepConfirmation, "confirm"},
	}
	var crumbs []string
	for _, st := range steps {
		if st.step == s.Step {
			crumbs = append(crumbs, styleSelected.Render(st.label))
		} else {
			crumbs = append(crumbs, styleDim.Render(st.label))
		}
	}
	header := strings.Join(crumbs, styleDim.Render(" → "))

	var body string
	switch s.Step {
	case session.StepShipping:
		if s.ShippingMode == session.ModeSelectAddress {
			body = v.addressSelection(s)
		} else {
			body = v.addressForm(s)
		}
	case session.StepPayment:
		body = v.payment(s)
	case session.StepConfirmation:
		body = v.confirmation(s)
	default:
		body = v.cart(s)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
}

func (v *View) cart(s *session.Session) string {
	if s.Cart.IsEmpty() {
		return styleDim.Render("your cart is empty")
	}

	var lines []string
	for idx, item := range s.Cart.Items {
		marker := "  "
		style := stylePlain
		if idx == s.CartItemIndex {
			marker = "> "
			style = styleSelected
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%dx %-20s %6s", marker, item.Quantity, item.Product.Name, item.TotalDisplay())))
	}

	lines = append(lines, "", v.totals(s), "", styleDim.Render("enter to checkout"))
	return strings.Join(lines, "\n")
}

func (v *View) totals(s *session.Session) string {
	subtotal := s.Cart.SubtotalCents()
	shipping := s.Region.ShippingCents(subtotal)
	return styleDim.Render("subtotal: ") + stylePlain.Render(fmt.Sprintf("$%.2f", float64(subtotal)/100)) +
		styleDim.Render("  shipping: ") + stylePlain.Render(fmt.Sprintf("$%.2f", float64(shipping)/100)) +
		styleDim.Render("  total: ") + styleSelected.Render(fmt.Sprintf("$%.2f", float64(subtotal+shipping)/100))
}

func (v *View) addressSelection(s *session.Session) string {
	lines := []string{styleHeading.Render("select shipping address"), ""}
	for idx, addr := range s.SavedAddresses {
		marker := "  "
		style := stylePlain
		if idx == s.AddressSelectIndex {
			marker = "> "
			style = styleSelected
		}
		lines = append(lines, style.Render(marker+addr.Name+" — "+addr.DisplayLine()))
	}

	marker := "  "
	style := stylePlain
	if s.AddressSelectIndex == len(s.SavedAddresses) {
		marker = "> "
		style = styleSelected
	}
	lines = append(lines, style.Render(marker+"+ add new address"))
	if len(s.SavedAddresses) > 0 {
		lines = append(lines, "", styleDim.Render("x to remove the highlighted address"))
	}
	return strings.Join(lines, "\n")
}

func (v *View) addressForm(s *session.Session) string {
	fields := []struct {
		field session.Field
		label string
		value string
	}{
		{session.FieldName, "name", s.Shipping.Name},
		{session.FieldStreet1, "street", s.Shipping.Street1},
		{session.FieldStreet2, "street 2", s.Shipping.Street2},
		{session.FieldCity, "city", s.Shipping.City},
		{session.FieldState, "state", s.Shipping.State},
		{session.FieldCountry, "country", s.Shipping.Country},
		{session.FieldPhone, "phone", s.Shipping.Phone},
		{session.FieldPostalCode, "postal code", s.Shipping.PostalCode},
	}

	lines := []string{styleHeading.Render("new shipping address"), ""}
	for _, f := range fields {
		lines = append(lines, v.formLine(f.label, f.value, s.ActiveField == f.field))
	}
	return strings.Join(lines, "\n")
}

func (v *View) payment(s *session.Session) string {
	if s.PaymentMethod == session.PaymentNone {
		options := []string{"pay over ssh", "pay in browser"}
		lines := []string{styleHeading.Render("payment method"), ""}
		for idx, opt := range options {
			if idx == s.PaymentOptionIndex {
				lines = append(lines, styleSelected.Render("> "+opt))
			} else {
				lines = append(lines, stylePlain.Render("  "+opt))
			}
		}
		return strings.Join(lines, "\n")
	}

	if s.PaymentMethod == session.PaymentBrowser {
		return lipgloss.JoinVertical(lipgloss.Left,
			styleHeading.Render("pay in browser"),
			"",
			stylePlain.Render("we'll hand this order off to your browser to finish payment."),
			styleDim.Render("press enter to continue"),
		)
	}

	fields := []struct {
		field session.Field
		label string
		value string
	}{
		{session.FieldPaymentName, "name", s.Payment.Name},
		{session.FieldPaymentEmail, "email", s.Payment.Email},
		{session.FieldCardNumber, "card number", s.Payment.CardNumber},
		{session.FieldExpiryMonth, "expiry month", s.Payment.ExpiryMonth},
		{session.FieldExpiryYear, "expiry year", s.Payment.ExpiryYear},
		{session.FieldCVV, "cvv", s.Payment.CVV},
	}

	lines := []string{styleHeading.Render("card details"), ""}
	for _, f := range fields {
		lines = append(lines, v.formLine(f.label, f.value, s.ActiveField == f.field))
	}
	return strings.Join(lines, "\n")
}

func (v *View) formLine(label, value string, active bool) string {
	if active {
		return styleFieldActive.Render(fmt.Sprintf("> %-13s %s_", label, value))
	}
	return stylePlain.Render(fmt.Sprintf("  %-13s %s", label, value))
}

func (v *View) confirmation(s *session.Session) string {
	payment := "browser hand-off"
	if s.PaymentMethod == session.PaymentSSH {
		payment = s.Payment.MaskedCard()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styleHeading.Render("confirm your order"),
		"",
		styleDim.Render("ship to:  ")+stylePlain.Render(s.Shipping.Name+", "+s.Shipping.DisplayLine()),
		styleDim.Render("payment:  ")+stylePlain.Render(payment),
		"",
		v.totals(s),
		"",
		styleDim.Render("press enter to place your order"),
	)
}
