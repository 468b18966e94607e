package cli

import (
	"context"
	"time"

	"roastline/internal/presentation/tui"
	"roastline/internal/session"
)

// Run drives the interactive storefront until the user quits. Input events
// are processed strictly one at a time: a backend call triggered by one event
// completes before the next event is handled.
func Run(ctx context.Context, s *session.Session) error {
	terminal, err := tui.Open()
	if err != nil {
		return err
	}
	defer terminal.Close()

	width, _ := terminal.Size()
	view := tui.NewView(width)

	s.LoadInitialData(ctx)

	keys := make(chan tui.Key)
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go readKeys(readCtx, keys)

	// The tick keeps the splash timeout and notifications repainting while
	// no keys arrive.
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for s.Running {
		s.CheckSplashTimeout()
		terminal.Draw(view.Render(s))

		select {
		case key := <-keys:
			handleKey(ctx, s, key)
		case <-ticker.C:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// readKeys feeds decoded key presses into the event loop. Decoding runs on
// its own goroutine because reads block; handling stays single-threaded.
func readKeys(ctx context.Context, keys chan<- tui.Key) {
	reader := tui.NewKeyReader(stdin())
	for {
		key, err := reader.ReadKey()
		if err != nil {
			return
		}
		select {
		case keys <- key:
		case <-ctx.Done():
			return
		}
	}
}

func handleKey(ctx context.Context, s *session.Session, key tui.Key) {
	if s.ShowSplash {
		if key.Kind == tui.KeyCtrlC || (key.Kind == tui.KeyRune && key.Rune == 'q') {
			s.Quit()
			return
		}
		s.SkipSplash()
		return
	}

	// While a form field is active, keys edit the form.
	if s.ActiveField != session.FieldNone {
		handleInputMode(ctx, s, key)
		return
	}

	if key.Kind == tui.KeyCtrlC {
		s.Quit()
		return
	}
	if key.Kind == tui.KeyRune {
		switch key.Rune {
		case 'q':
			s.Quit()
			return
		case 'r':
			s.CycleRegion(ctx)
			return
		case 's':
			s.SwitchTab(session.TabShop)
			return
		case 'a':
			s.SwitchTab(session.TabAccount)
			s.LoadAccountData(ctx)
			return
		case 'c':
			s.SwitchTab(session.TabCart)
			return
		}
	}

	switch s.CurrentTab {
	case session.TabShop:
		handleShopKeys(s, key)
	case session.TabAccount:
		handleAccountKeys(s, key)
	case session.TabCart:
		handleCartKeys(ctx, s, key)
	default:
		handleHomeKeys(s, key)
	}
}

func handleInputMode(ctx context.Context, s *session.Session, key tui.Key) {
	switch key.Kind {
	case tui.KeyRune:
		s.HandleChar(key.Rune)
	case tui.KeyBackspace:
		s.HandleBackspace()
	case tui.KeyTab:
		s.NextInputField()
	case tui.KeyEnter:
		s.Advance(ctx)
	case tui.KeyEsc:
		s.Retreat()
	}
}

func handleHomeKeys(s *session.Session, key tui.Key) {
	if key.Kind == tui.KeyEnter && len(s.Products) > 0 {
		s.SwitchTab(session.TabShop)
	}
}

func handleShopKeys(s *session.Session, key tui.Key) {
	switch {
	case key.Kind == tui.KeyUp || (key.Kind == tui.KeyRune && key.Rune == 'k'):
		s.PrevProduct()
	case key.Kind == tui.KeyDown || (key.Kind == tui.KeyRune && key.Rune == 'j'):
		s.NextProduct()
	case key.Kind == tui.KeyRune && (key.Rune == '+' || key.Rune == '='):
		s.AdjustProductQuantity(1)
	case key.Kind == tui.KeyRune && (key.Rune == '-' || key.Rune == '_'):
		s.AdjustProductQuantity(-1)
	case key.Kind == tui.KeyEnter:
		s.AddToCart()
	}
}

func handleAccountKeys(s *session.Session, key tui.Key) {
	switch {
	case key.Kind == tui.KeyUp || (key.Kind == tui.KeyRune && key.Rune == 'k'):
		s.PrevAccountSection()
	case key.Kind == tui.KeyDown || (key.Kind == tui.KeyRune && key.Rune == 'j'):
		s.NextAccountSection()
	}
}

func handleCartKeys(ctx context.Context, s *session.Session, key tui.Key) {
	switch {
	case s.Step == session.StepCart:
		switch {
		case key.Kind == tui.KeyUp || (key.Kind == tui.KeyRune && key.Rune == 'k'):
			s.PrevCartItem()
		case key.Kind == tui.KeyDown || (key.Kind == tui.KeyRune && key.Rune == 'j'):
			s.NextCartItem()
		case key.Kind == tui.KeyRune && (key.Rune == '+' || key.Rune == '='):
			s.IncrementCartItem()
		case key.Kind == tui.KeyRune && (key.Rune == '-' || key.Rune == '_'):
			s.DecrementCartItem()
		case key.Kind == tui.KeyEnter:
			s.Advance(ctx)
		case key.Kind == tui.KeyEsc:
			s.SwitchTab(session.TabShop)
		}

	case s.Step == session.StepShipping && s.ShippingMode == session.ModeSelectAddress:
		switch {
		case key.Kind == tui.KeyUp || (key.Kind == tui.KeyRune && key.Rune == 'k'):
			s.PrevAddressOption()
		case key.Kind == tui.KeyDown || (key.Kind == tui.KeyRune && key.Rune == 'j'):
			s.NextAddressOption()
		case key.Kind == tui.KeyEnter:
			s.SelectAddressOption()
		case key.Kind == tui.KeyBackspace || key.Kind == tui.KeyDelete || (key.Kind == tui.KeyRune && key.Rune == 'x'):
			s.RemoveSelectedAddress(ctx)
		case key.Kind == tui.KeyEsc:
			s.Retreat()
		}

	case s.Step == session.StepPayment && s.PaymentMethod == session.PaymentNone:
		switch {
		case key.Kind == tui.KeyUp || (key.Kind == tui.KeyRune && key.Rune == 'k'):
			s.PrevPaymentOption()
		case key.Kind == tui.KeyDown || (key.Kind == tui.KeyRune && key.Rune == 'j'):
			s.NextPaymentOption()
		case key.Kind == tui.KeyEnter:
			s.SelectPaymentMethod()
		case key.Kind == tui.KeyEsc:
			s.Retreat()
		}

	default:
		switch key.Kind {
		case tui.KeyEnter:
			s.Advance(ctx)
		case tui.KeyEsc:
			s.Retreat()
		}
	}
}
