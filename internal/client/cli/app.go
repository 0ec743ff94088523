// Package cli implements the interactive client: a session that is either
// anonymous or authenticated, backed by the auth and user services and a
// locally stored token.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/mpetrov/dashauth/internal/client/api"
	"github.com/mpetrov/dashauth/internal/client/config"
	"github.com/mpetrov/dashauth/internal/client/tokenstore"
)

type App struct {
	config  *config.Config
	api     *api.Client
	tokens  *tokenstore.Store
	profile *api.User
	reader  *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.AuthBaseURL, c.UserBaseURL),
		tokens: tokenstore.New(c.TokenPath),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.profile != nil
}

// Run restores the session from the stored token, then hands control to the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	a.restoreSession(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// restoreSession re-derives the authenticated state on startup: if a token is
// stored, a profile fetch confirms it. A token that no longer verifies is
// cleared rather than kept around.
func (a *App) restoreSession(ctx context.Context) {
	token, err := a.tokens.Load()
	if err != nil || token == "" {
		return
	}

	profile, err := a.api.Profile(ctx, token)
	if err != nil {
		log.Printf("Stored session is no longer valid: %v", err)
		_ = a.tokens.Clear()
		return
	}

	a.profile = profile
	log.Printf("Welcome back, %s!", profile.Name)
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.profile.Email
	}
	return "anonymous"
}
