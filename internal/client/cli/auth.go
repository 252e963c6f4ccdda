package cli

import (
	"context"

	"github.com/dmitrijs2005/jobly/internal/client/models"
)

// Login prompts for credentials and starts a session. Backend messages are
// printed on failure; the stored session is left as it was.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	res := a.session.Login(ctx, models.Credentials{Username: username, Password: password})
	if !res.Success {
		a.printErrors(res.Errors)
		return nil
	}
	a.printLatestFlash()
	return nil
}

// Signup prompts for the registration form and starts a session.
func (a *App) Signup(ctx context.Context) error {
	var data models.SignupData
	var err error

	if data.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if data.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}
	if data.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if data.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if data.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}

	res := a.session.Register(ctx, data)
	if !res.Success {
		a.printErrors(res.Errors)
		return nil
	}
	a.printLatestFlash()
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.printLatestFlash()
	return nil
}
