package cli

import (
	"context"
	"fmt"

	"github.com/campus-suite/campusctl/internal/api"
	"github.com/campus-suite/campusctl/internal/authz"
	"github.com/campus-suite/campusctl/internal/common"
)

// Teachers is the admin screen over docente records. Creation makes a user
// account with the docente role, then fills in the specialty on the docente
// record the backend provisions for it.
func (a *App) Teachers(ctx context.Context) error {
	return a.open(ctx, authz.ScreenTeachers, a.teachers)
}

func (a *App) teachers(ctx context.Context) error {
	token := a.session.Token()

	teachers, err := a.api.ListTeachers(ctx, token)
	if err != nil {
		renderError(a.out, "Could not load teachers: "+err.Error())
		return err
	}

	renderTitle(a.out, "Teachers")
	rows := make([][]string, 0, len(teachers))
	for _, t := range teachers {
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID), t.Nombre, t.Email, t.Especialidad,
			fmt.Sprintf("%d", t.UsuarioID),
		})
	}
	renderTable(a.out, []string{"ID", "Name", "Email", "Specialty", "Account"}, rows)

	action, err := a.promptText("Action (create/update/delete/back)", "back")
	if err != nil {
		return err
	}
	switch action {
	case "create":
		return a.createTeacher(ctx)
	case "update":
		return a.updateTeacher(ctx)
	case "delete":
		return a.deleteTeacher(ctx)
	default:
		return nil
	}
}

func (a *App) createTeacher(ctx context.Context) error {
	token := a.session.Token()

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

	especialidad, err := getSimpleText(a.reader, "Specialty", a.out)
	if err != nil {
		return err
	}

	usuarioID, err := a.api.CreateUser(ctx, token, api.NewUser{
		Nombre:   nombre,
		Email:    email,
		Password: string(password),
		RoleID:   docenteRoleID,
	})
	if err != nil {
		renderError(a.out, "Could not create the teacher account: "+err.Error())
		return err
	}

	if especialidad != "" && usuarioID != 0 {
		if docente, err := a.api.TeacherByUsuario(ctx, token, usuarioID); err == nil && docente.ID != 0 {
			if err := a.api.UpdateTeacher(ctx, token, docente.ID, map[string]any{
				"especialidad": especialidad,
			}); err != nil {
				renderNotice(a.out, "Account created but the specialty was not saved: "+err.Error())
				return nil
			}
		} else {
			renderNotice(a.out, "Account created; set the specialty later from this screen.")
			return nil
		}
	}

	fmt.Fprintf(a.out, "Teacher created with user id %d.\n", usuarioID)
	return nil
}

func (a *App) updateTeacher(ctx context.Context) error {
	id, err := a.promptID("Teacher id")
	if err != nil || id == 0 {
		return nil
	}

	fields := map[string]any{}
	if esp, err := getSimpleText(a.reader, "New specialty (empty to keep)", a.out); err == nil && esp != "" {
		fields["especialidad"] = esp
	}
	if len(fields) == 0 {
		renderNotice(a.out, "Nothing to change.")
		return nil
	}

	if err := a.api.UpdateTeacher(ctx, a.session.Token(), id, fields); err != nil {
		renderError(a.out, "Could not update the teacher: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Teacher updated.")
	return nil
}

func (a *App) deleteTeacher(ctx context.Context) error {
	id, err := a.promptID("Teacher id")
	if err != nil || id == 0 {
		return nil
	}
	if !a.confirm(fmt.Sprintf("Delete teacher %d?", id)) {
		return nil
	}
	if err := a.api.DeleteTeacher(ctx, a.session.Token(), id); err != nil {
		renderError(a.out, "Could not delete the teacher: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Teacher deleted.")
	return nil
}
