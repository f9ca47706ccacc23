package cli

import (
	"context"
	"fmt"

	"github.com/campus-suite/campusctl/internal/api"
	"github.com/campus-suite/campusctl/internal/authz"
	"github.com/campus-suite/campusctl/internal/common"
)

// Role ids of the backend's user schema. Note that the numeric aliases the
// client maps for display ("2" -> editor) do not line up with the backend
// assignment of 2 to docente accounts; the backend is authoritative here.
const (
	adminRoleID      int64 = 1
	docenteRoleID    int64 = 2
	estudianteRoleID int64 = 3
)

// Users is the admin account management screen.
func (a *App) Users(ctx context.Context) error {
	return a.open(ctx, authz.ScreenUsers, a.users)
}

func (a *App) users(ctx context.Context) error {
	token := a.session.Token()

	users, err := a.api.ListUsers(ctx, token)
	if err != nil {
		renderError(a.out, "Could not load users: "+err.Error())
		return err
	}

	renderTitle(a.out, "Users")
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		role := u.Role
		if role == "" && u.RoleID != 0 {
			role = fmt.Sprintf("%d", u.RoleID)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", u.ID), u.Nombre, u.Email, role})
	}
	renderTable(a.out, []string{"ID", "Name", "Email", "Role"}, rows)

	action, err := a.promptText("Action (create/update/password/delete/back)", "back")
	if err != nil {
		return err
	}
	switch action {
	case "create":
		return a.createUser(ctx)
	case "update":
		return a.updateUser(ctx)
	case "password":
		return a.setUserPassword(ctx)
	case "delete":
		return a.deleteUser(ctx)
	default:
		return nil
	}
}

func (a *App) createUser(ctx context.Context) error {
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

	roleID, err := a.promptID(fmt.Sprintf("Role id (%d=admin, %d=docente, %d=estudiante)",
		adminRoleID, docenteRoleID, estudianteRoleID))
	if err != nil || roleID == 0 {
		renderError(a.out, "role id is required")
		return nil
	}

	id, err := a.api.CreateUser(ctx, a.session.Token(), api.NewUser{
		Nombre:   nombre,
		Email:    email,
		Password: string(password),
		RoleID:   roleID,
	})
	if err != nil {
		renderError(a.out, "Could not create the user: "+err.Error())
		return err
	}
	fmt.Fprintf(a.out, "User created with id %d.\n", id)
	return nil
}

func (a *App) updateUser(ctx context.Context) error {
	id, err := a.promptID("User id")
	if err != nil || id == 0 {
		return nil
	}

	fields := map[string]any{}
	if nombre, err := getSimpleText(a.reader, "New name (empty to keep)", a.out); err == nil && nombre != "" {
		fields["nombre"] = nombre
	}
	if email, err := getSimpleText(a.reader, "New email (empty to keep)", a.out); err == nil && email != "" {
		fields["email"] = email
	}
	if len(fields) == 0 {
		renderNotice(a.out, "Nothing to change.")
		return nil
	}

	if err := a.api.UpdateUser(ctx, a.session.Token(), id, fields); err != nil {
		renderError(a.out, "Could not update the user: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "User updated.")
	return nil
}

func (a *App) setUserPassword(ctx context.Context) error {
	id, err := a.promptID("User id")
	if err != nil || id == 0 {
		return nil
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.SetUserPassword(ctx, a.session.Token(), id, string(password)); err != nil {
		renderError(a.out, "Could not set the password: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Password updated.")
	return nil
}

func (a *App) deleteUser(ctx context.Context) error {
	id, err := a.promptID("User id")
	if err != nil || id == 0 {
		return nil
	}
	if !a.confirm(fmt.Sprintf("Delete user %d?", id)) {
		return nil
	}
	if err := a.api.DeleteUser(ctx, a.session.Token(), id); err != nil {
		renderError(a.out, "Could not delete the user: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "User deleted.")
	return nil
}
