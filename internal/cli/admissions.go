package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campus-suite/campusctl/internal/storage/inquiries"
)

// Admissions collects an admission application and stores it locally with
// status pendiente. Administrators review applications on the inquiries
// screen.
func (a *App) Admissions(ctx context.Context) error {
	renderTitle(a.out, "Admission application")

	var form AdmissionForm
	var err error

	if form.Nombre, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if form.Apellido, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Telefono, err = getSimpleText(a.reader, "Phone", a.out); err != nil {
		return err
	}
	if form.FechaNacimiento, err = getSimpleText(a.reader, "Date of birth YYYY-MM-DD (optional)", a.out); err != nil {
		return err
	}
	if form.Direccion, err = getSimpleText(a.reader, "Address (optional)", a.out); err != nil {
		return err
	}
	if form.CarreraInteres, err = getSimpleText(a.reader, "Program of interest", a.out); err != nil {
		return err
	}
	if form.Mensaje, err = GetMultiline(a.reader, "Anything else we should know? (optional)", a.out); err != nil {
		return err
	}

	if !checkForm(a.out, form) {
		return nil
	}

	payload, err := json.Marshal(form)
	if err != nil {
		return err
	}
	inq, err := a.inquiries.Add(ctx, inquiries.KindAdmission, payload)
	if err != nil {
		renderError(a.out, "Could not save your application: "+err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Application received (reference %s, status %s).\n", inq.ID, inq.Status)
	return nil
}
