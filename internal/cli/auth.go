package cli

import (
	"context"
	"fmt"

	"jobdesk/internal/common"
	"jobdesk/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and attempts to authenticate. On failure the
// server's message (or the generic fallback) is shown; the session is left
// untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	res := a.session.Login(ctx, email, password)
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return nil
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", a.session.CurrentUser().Name)
	return nil
}

// Register prompts for account details and attempts to create an account.
// The server logs a new account straight in, so a success lands in the same
// place as Login.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Account type (jobseeker/employer)", a.out)
	if err != nil {
		return err
	}
	if role != common.RoleJobSeeker && role != common.RoleEmployer {
		fmt.Fprintln(a.out, "Account type must be 'jobseeker' or 'employer'.")
		return nil
	}

	reg := models.RegisterRequest{Name: name, Email: email, Password: password, Role: role}
	if role == common.RoleEmployer {
		company, err := getSimpleText(a.reader, "Enter company name", a.out)
		if err != nil {
			return err
		}
		reg.Company = company
	}

	res := a.session.Register(ctx, reg)
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return nil
	}

	fmt.Fprintln(a.out, "Account created, you are now logged in.")
	return nil
}

// Logout clears the session. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout cleanup failed", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
