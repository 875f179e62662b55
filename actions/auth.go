package actions

import (
	"github.com/DAQEM/fakestore/auth"
	"github.com/DAQEM/fakestore/views"
)

// Login delegates to the identity provider. On failure the provider's error
// text is surfaced verbatim for inline display.
func (a *Actions) Login(email, password string) (auth.Session, Result) {
	session, err := a.id.Login(email, password)
	if err != nil {
		return auth.Session{}, failed(err.Error())
	}
	a.views.Invalidate(views.Root)
	return session, ok()
}

// Signup registers a new account and signs it in.
func (a *Actions) Signup(email, name, password string) (auth.Session, Result) {
	session, err := a.id.Signup(email, name, password)
	if err != nil {
		return auth.Session{}, failed(err.Error())
	}
	a.views.Invalidate(views.Root)
	return session, ok()
}

// Logout has no feedback channel: failures are logged server-side only.
func (a *Actions) Logout(token string) {
	if err := a.id.Logout(token); err != nil {
		a.log.Error("logout failed", "error", err)
		return
	}
	a.views.Invalidate(views.Root)
}
