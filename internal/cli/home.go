package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campus-suite/campusctl/internal/storage/inquiries"
)

// Home is the public landing screen: university blurb plus an optional
// information-request form stored locally for the admissions office.
func (a *App) Home(ctx context.Context) error {
	renderTitle(a.out, "Universidad - campus client")
	fmt.Fprintln(a.out, "Programs, sections and student services in one terminal.")
	fmt.Fprintln(a.out, "Type 'help' to see the screens available to you.")

	if !a.confirm("Submit an information request?") {
		return nil
	}
	return a.submitInformationRequest(ctx)
}

func (a *App) submitInformationRequest(ctx context.Context) error {
	var form InformationForm
	var err error

	if form.Nombre, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Telefono, err = getSimpleText(a.reader, "Phone (optional)", a.out); err != nil {
		return err
	}
	if form.Mensaje, err = GetMultiline(a.reader, "Message", a.out); err != nil {
		return err
	}

	if !checkForm(a.out, form) {
		return nil
	}

	payload, err := json.Marshal(form)
	if err != nil {
		return err
	}
	inq, err := a.inquiries.Add(ctx, inquiries.KindInformation, payload)
	if err != nil {
		renderError(a.out, "Could not save your request: "+err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Request received (reference %s). We will contact you soon.\n", inq.ID)
	return nil
}
