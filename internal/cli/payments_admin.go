package cli

import (
	"context"
	"fmt"

	"github.com/campus-suite/campusctl/internal/api"
	"github.com/campus-suite/campusctl/internal/authz"
)

// PaymentsAdmin lists every payment and updates payment statuses.
func (a *App) PaymentsAdmin(ctx context.Context) error {
	return a.open(ctx, authz.ScreenPaymentsAdmin, a.paymentsAdmin)
}

func (a *App) paymentsAdmin(ctx context.Context) error {
	token := a.session.Token()

	pagos, err := a.api.ListPayments(ctx, token)
	if err != nil {
		renderError(a.out, "Could not load payments: "+err.Error())
		return err
	}

	renderTitle(a.out, "Payments - all students")
	rows := make([][]string, 0, len(pagos))
	for _, p := range pagos {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			fmt.Sprintf("%d", p.EstudianteID),
			fmt.Sprintf("%.2f", p.Monto),
			p.Concepto,
			p.Estado,
			p.Fecha,
		})
	}
	renderTable(a.out, []string{"ID", "Student", "Amount", "Concept", "Status", "Date"}, rows)

	action, err := a.promptText("Action (status/register/back)", "back")
	if err != nil {
		return err
	}
	switch action {
	case "status":
		return a.updatePaymentStatus(ctx)
	case "register":
		return a.registerPayment(ctx)
	default:
		return nil
	}
}

func (a *App) updatePaymentStatus(ctx context.Context) error {
	id, err := a.promptID("Payment id")
	if err != nil || id == 0 {
		return nil
	}
	estado, err := a.promptText("New status (pendiente/pagado/anulado)", "pagado")
	if err != nil {
		return err
	}

	if err := a.api.UpdatePaymentStatus(ctx, a.session.Token(), id, estado); err != nil {
		renderError(a.out, "Could not update the payment: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Payment updated.")
	return nil
}

// registerPayment records a payment on behalf of a student, e.g. one made at
// the cashier's desk.
func (a *App) registerPayment(ctx context.Context) error {
	estudianteID, err := a.promptID("Student id")
	if err != nil || estudianteID == 0 {
		return nil
	}
	monto, err := a.promptFloat("Amount")
	if err != nil {
		renderError(a.out, err.Error())
		return nil
	}
	concepto, err := getSimpleText(a.reader, "Concept", a.out)
	if err != nil {
		return err
	}
	metodo, err := a.promptText("Payment method", "efectivo")
	if err != nil {
		return err
	}

	err = a.api.CreatePayment(ctx, a.session.Token(), api.NewPayment{
		EstudianteID: estudianteID,
		Monto:        monto,
		Concepto:     concepto,
		MetodoPago:   metodo,
	})
	if err != nil {
		renderError(a.out, "Could not register the payment: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Payment registered.")
	return nil
}
