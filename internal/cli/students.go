package cli

import (
	"context"
	"fmt"

	"github.com/campus-suite/campusctl/internal/api"
	"github.com/campus-suite/campusctl/internal/authz"
	"github.com/campus-suite/campusctl/internal/common"
)

// Students is the admin screen over student records. Creation goes through
// user creation with the estudiante role; the backend provisions the student
// record from the new account.
func (a *App) Students(ctx context.Context) error {
	return a.open(ctx, authz.ScreenStudents, a.students)
}

func (a *App) students(ctx context.Context) error {
	token := a.session.Token()

	students, err := a.api.ListStudents(ctx, token)
	if err != nil {
		renderError(a.out, "Could not load students: "+err.Error())
		return err
	}

	renderTitle(a.out, "Students")
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.ID), s.CodigoEstudiante, s.Nombre, s.Email,
			fmt.Sprintf("%d", s.UsuarioID),
		})
	}
	renderTable(a.out, []string{"ID", "Code", "Name", "Email", "Account"}, rows)

	action, err := a.promptText("Action (create/update/delete/back)", "back")
	if err != nil {
		return err
	}
	switch action {
	case "create":
		return a.createStudent(ctx)
	case "update":
		return a.updateStudent(ctx)
	case "delete":
		return a.deleteStudent(ctx)
	default:
		return nil
	}
}

func (a *App) createStudent(ctx context.Context) error {
	nombre, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
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

	id, err := a.api.CreateUser(ctx, a.session.Token(), api.NewUser{
		Nombre:   nombre,
		Email:    email,
		Password: string(password),
		RoleID:   estudianteRoleID,
	})
	if err != nil {
		renderError(a.out, "Could not create the student account: "+err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Student account created with user id %d.\n", id)
	return nil
}

func (a *App) updateStudent(ctx context.Context) error {
	id, err := a.promptID("Student id")
	if err != nil || id == 0 {
		return nil
	}

	fields := map[string]any{}
	if codigo, err := getSimpleText(a.reader, "New student code (empty to keep)", a.out); err == nil && codigo != "" {
		fields["codigo_estudiante"] = codigo
	}
	if len(fields) == 0 {
		renderNotice(a.out, "Nothing to change.")
		return nil
	}

	if err := a.api.UpdateStudent(ctx, a.session.Token(), id, fields); err != nil {
		renderError(a.out, "Could not update the student: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Student updated.")
	return nil
}

func (a *App) deleteStudent(ctx context.Context) error {
	id, err := a.promptID("Student id")
	if err != nil || id == 0 {
		return nil
	}
	if !a.confirm(fmt.Sprintf("Delete student %d?", id)) {
		return nil
	}
	if err := a.api.DeleteStudent(ctx, a.session.Token(), id); err != nil {
		renderError(a.out, "Could not delete the student: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Student deleted.")
	return nil
}
