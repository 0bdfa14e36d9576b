package cli

import "fmt"

// getStatus renders the prompt status: signed-in admin, connectivity mode and
// cart size.
func (a *App) getStatus() string {
	s := ""
	if a.session != nil {
		if u := a.session.CurrentUser(); u != nil {
			s = u.Username + " "
		}
	}
	if m := a.currentMode(); m != "" {
		s += string(m)
	}
	if a.cart != nil {
		if n := a.cart.TotalItems(); n > 0 {
			s += fmt.Sprintf(" cart:%d", n)
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
