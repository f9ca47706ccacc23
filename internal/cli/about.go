package cli

import (
	"context"
	"fmt"
)

func (a *App) About(ctx context.Context) error {
	renderTitle(a.out, "About")
	fmt.Fprintln(a.out, "campusctl is the terminal client of the university administration system.")
	fmt.Fprintln(a.out, "Students check their portal and payments, teachers record grades and")
	fmt.Fprintln(a.out, "attendance, administrators manage users, courses and payments.")
	fmt.Fprintf(a.out, "Backend: %s\n", a.config.APIBaseURL)
	return nil
}
