package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/campus-suite/campusctl/internal/common"
	"github.com/campus-suite/campusctl/internal/session"
)

// Login prompts for credentials and authenticates through the session store.
// A rejected login prints the backend's message next to the form instead of
// failing the command; the previous session stays in place.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		renderNotice(a.out, "Already logged in; use 'logout' first to switch accounts.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		var authErr *session.AuthenticationError
		if errors.As(err, &authErr) {
			renderError(a.out, "Login failed: "+authErr.Message)
			return nil
		}
		return err
	}

	if ident := a.session.Identity(); ident != nil && ident.Nombre != "" {
		fmt.Fprintf(a.out, "Welcome, %s!\n", ident.Nombre)
	} else {
		fmt.Fprintln(a.out, "Logged in.")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the current identity as the session store sees it.
func (a *App) Whoami(ctx context.Context) error {
	ident := a.session.Identity()
	if ident == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	renderTable(a.out, []string{"ID", "Name", "Email", "Role"}, [][]string{{
		fmt.Sprintf("%d", ident.ID), ident.Nombre, ident.Email, ident.Role,
	}})
	return nil
}
