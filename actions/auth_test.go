package actions

import (
	"errors"
	"testing"

	"github.com/DAQEM/fakestore/views"
)

func TestLoginSurfacesProviderErrorText(t *testing.T) {
	f := newFixture()
	f.id.err = errors.New("invalid email or password")

	_, res := f.acts.Login("a@example.com", "nope")
	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Message != "invalid email or password" {
		t.Fatalf("message = %q, want the provider's text", res.Message)
	}
	if f.reg.Revision(views.Root) != 0 {
		t.Fatal("no view may be invalidated on failure")
	}
}

func TestLoginInvalidatesWholeTree(t *testing.T) {
	f := newFixture()

	session, res := f.acts.Login("a@example.com", "pw")
	if !res.OK {
		t.Fatalf("login failed: %+v", res)
	}
	if session.Token == "" {
		t.Fatal("expected a session token")
	}
	if f.reg.Revision(views.Root) != 1 {
		t.Fatal("root view not invalidated")
	}
}

func TestSignupInvalidatesWholeTree(t *testing.T) {
	f := newFixture()

	session, res := f.acts.Signup("a@example.com", "Ada", "pw")
	if !res.OK {
		t.Fatalf("signup failed: %+v", res)
	}
	if session.User.Name != "Ada" {
		t.Fatalf("unexpected user: %+v", session.User)
	}
	if f.reg.Revision(views.Root) != 1 {
		t.Fatal("root view not invalidated")
	}
}

func TestLogoutFailureIsSilent(t *testing.T) {
	f := newFixture()
	f.id.err = errors.New("invalid or expired token")

	// No return value; the failure must not invalidate anything.
	f.acts.Logout("bad-token")
	if f.reg.Revision(views.Root) != 0 {
		t.Fatal("no view may be invalidated on failure")
	}

	f.id.err = nil
	f.acts.Logout("good-token")
	if f.reg.Revision(views.Root) != 1 {
		t.Fatal("root view not invalidated on success")
	}
}
