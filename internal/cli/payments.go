package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/campus-suite/campusctl/internal/api"
	"github.com/campus-suite/campusctl/internal/authz"
)

// Payments shows the student's own payment history and takes a new payment.
func (a *App) Payments(ctx context.Context) error {
	return a.open(ctx, authz.ScreenPayments, a.payments)
}

func (a *App) payments(ctx context.Context) error {
	token := a.session.Token()
	ident := a.session.Identity()

	estudianteID, err := a.api.ResolveStudentID(ctx, token, ident.ID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			// some backends key payments by the account id directly
			estudianteID = ident.ID
		} else {
			renderError(a.out, "Could not resolve your student record: "+err.Error())
			return err
		}
	}

	pagos, err := a.api.ListStudentPayments(ctx, token, estudianteID)
	if err != nil {
		renderError(a.out, "Could not load payments: "+err.Error())
		return err
	}

	renderTitle(a.out, "Payments")
	renderPayments(a.out, pagos)

	if !a.confirm("Submit a payment?") {
		return nil
	}

	monto, err := a.promptFloat("Amount")
	if err != nil {
		renderError(a.out, err.Error())
		return nil
	}
	concepto, err := getSimpleText(a.reader, "Concept (e.g. matrícula, mensualidad)", a.out)
	if err != nil {
		return err
	}
	metodo, err := a.promptText("Payment method", "efectivo")
	if err != nil {
		return err
	}

	err = a.api.CreatePayment(ctx, token, api.NewPayment{
		EstudianteID: estudianteID,
		Monto:        monto,
		Concepto:     concepto,
		MetodoPago:   metodo,
	})
	if err != nil {
		renderError(a.out, "Payment failed: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Payment submitted.")
	return nil
}

func renderPayments(w io.Writer, pagos []api.Payment) {
	rows := make([][]string, 0, len(pagos))
	for _, p := range pagos {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			fmt.Sprintf("%.2f", p.Monto),
			p.Concepto,
			p.Estado,
			p.Fecha,
		})
	}
	renderTable(w, []string{"ID", "Amount", "Concept", "Status", "Date"}, rows)
}
