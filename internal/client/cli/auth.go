package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/fittrack/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. The password is wiped
// before returning. A failed login leaves the app usable offline.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		fmt.Println("Login failed, continuing offline:", err)
		a.setMode(ctx, ModeOffline)
		return err
	}

	fmt.Println("Logged in.")
	a.setMode(ctx, ModeOnline)
	return nil
}

// Logout clears the session and the synced local data.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out, local data cleared.")
	a.setMode(ctx, ModeOffline)
	return nil
}
