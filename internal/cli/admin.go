package cli

import (
	"context"
	"fmt"

	"github.com/campus-suite/campusctl/internal/authz"
)

// Admin is the administration dashboard: entity counts plus the list of
// management screens.
func (a *App) Admin(ctx context.Context) error {
	return a.open(ctx, authz.ScreenAdmin, a.adminDashboard)
}

func (a *App) adminDashboard(ctx context.Context) error {
	token := a.session.Token()

	users, err := a.api.ListUsers(ctx, token)
	if err != nil {
		renderError(a.out, "Could not load the dashboard: "+err.Error())
		return err
	}
	students, err := a.api.ListStudents(ctx, token)
	if err != nil {
		renderError(a.out, "Could not load the dashboard: "+err.Error())
		return err
	}
	teachers, err := a.api.ListTeachers(ctx, token)
	if err != nil {
		renderError(a.out, "Could not load the dashboard: "+err.Error())
		return err
	}
	courses, err := a.api.ListCourses(ctx, token)
	if err != nil {
		renderError(a.out, "Could not load the dashboard: "+err.Error())
		return err
	}

	renderTitle(a.out, "Administration")
	renderTable(a.out,
		[]string{"Users", "Students", "Teachers", "Courses"},
		[][]string{{
			fmt.Sprintf("%d", len(users)),
			fmt.Sprintf("%d", len(students)),
			fmt.Sprintf("%d", len(teachers)),
			fmt.Sprintf("%d", len(courses)),
		}})

	fmt.Fprintln(a.out, "Management screens: users, students, teachers, courses, pagos, inquiries.")
	return nil
}
