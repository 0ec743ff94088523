package cli

import (
	"context"
	"log"
	"os"
)

// Signup creates an account, persists the returned token and moves the
// session to authenticated.
func (a *App) Signup(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	res, err := a.api.Signup(ctx, name, email, password)
	if err != nil {
		log.Printf("Signup unsuccessful: %v", err)
		return err
	}

	if err := a.tokens.Save(res.Token); err != nil {
		log.Printf("error saving token: %v", err)
	}
	a.profile = &res.User
	log.Printf("Signed up as %s", res.User.Email)
	return nil
}

// Login exchanges credentials for a token, persists it and moves the session
// to authenticated. On failure the session stays anonymous and the server's
// message is shown as-is.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessful: %v", err)
		return err
	}

	if err := a.tokens.Save(res.Token); err != nil {
		log.Printf("error saving token: %v", err)
	}
	a.profile = &res.User
	log.Printf("Logged in as %s", res.User.Email)
	return nil
}

// Whoami fetches the profile afresh with the stored token. Any failure clears
// the token and drops the session back to anonymous.
func (a *App) Whoami(ctx context.Context) error {
	token, err := a.tokens.Load()
	if err != nil || token == "" {
		log.Printf("Not logged in")
		return nil
	}

	profile, err := a.api.Profile(ctx, token)
	if err != nil {
		log.Printf("Session is no longer valid: %v", err)
		_ = a.tokens.Clear()
		a.profile = nil
		return err
	}

	a.profile = profile
	log.Printf("id: %s", profile.ID)
	log.Printf("name: %s", profile.Name)
	log.Printf("email: %s", profile.Email)
	return nil
}

// Logout clears the stored token and the cached profile. It is a purely
// local transition: no server call is made.
func (a *App) Logout(ctx context.Context) error {
	if err := a.tokens.Clear(); err != nil {
		log.Printf("error clearing token: %v", err)
		return err
	}
	a.profile = nil
	log.Printf("Logged out")
	return nil
}
