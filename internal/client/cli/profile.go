package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobly/internal/client/models"
)

func (a *App) Profile(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		return nil
	}

	a.printf("Username:   %s\n", u.Username)
	a.printf("Name:       %s\n", u.FullName())
	a.printf("Email:      %s\n", u.Email)
	if u.IsAdmin {
		a.printf("Role:       admin\n")
	}

	ids := u.AppliedJobIDs()
	if len(ids) == 0 {
		a.printf("Applied to: none yet\n")
		return nil
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("#%d", id)
	}
	a.printf("Applied to: %s\n", strings.Join(parts, ", "))
	return nil
}

// EditProfile prompts for each editable field, showing the current value.
// Blank answers keep the value; a blank password is not sent at all.
func (a *App) EditProfile(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		return nil
	}

	var patch models.ProfilePatch
	var err error

	if patch.FirstName, err = a.promptWithDefault("First name", u.FirstName); err != nil {
		return err
	}
	if patch.LastName, err = a.promptWithDefault("Last name", u.LastName); err != nil {
		return err
	}
	if patch.Email, err = a.promptWithDefault("Email", u.Email); err != nil {
		return err
	}
	if patch.Password, err = getPassword(a.reader, "New password (blank to keep)", a.out); err != nil {
		return err
	}

	res := a.session.UpdateProfile(ctx, patch)
	if !res.Success {
		a.printErrors(res.Errors)
		return nil
	}
	a.printf("Profile updated.\n")
	return nil
}

func (a *App) promptWithDefault(label, current string) (string, error) {
	s, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), a.out)
	if err != nil {
		return "", err
	}
	if s == "" {
		return current, nil
	}
	return s, nil
}
