package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/campus-suite/campusctl/internal/api"
	"github.com/campus-suite/campusctl/internal/authz"
)

// Portal shows the student's profile, enrollments and payment summary, and
// offers enrollment into an open section.
func (a *App) Portal(ctx context.Context) error {
	return a.open(ctx, authz.ScreenPortal, a.portal)
}

func (a *App) portal(ctx context.Context) error {
	ident := a.session.Identity()

	portal, estudianteID, err := a.loadStudentPortal(ctx, ident.ID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			renderError(a.out, "No student record is linked to your account.")
			return nil
		}
		renderError(a.out, "Could not load your portal: "+err.Error())
		return err
	}

	renderTitle(a.out, "Student portal - "+portal.Perfil.DisplayName())
	if portal.Perfil != nil && portal.Perfil.CodigoEstudiante != "" {
		fmt.Fprintf(a.out, "Student code: %s\n", portal.Perfil.CodigoEstudiante)
	}

	rows := make([][]string, 0, len(portal.Inscripciones))
	for _, ins := range portal.Inscripciones {
		final := "-"
		if ins.NotaFinal != nil {
			final = fmt.Sprintf("%.1f", *ins.NotaFinal)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", ins.InscripcionID),
			ins.CursoNombre,
			ins.NombreSeccion,
			final,
			attendanceSummary(ins.Asistencia),
		})
	}
	renderTable(a.out, []string{"Enrollment", "Course", "Section", "Final", "Attendance"}, rows)

	renderPayments(a.out, portal.Pagos)

	if !a.confirm("Enroll in a section?") {
		return nil
	}
	return a.enroll(ctx, estudianteID, portal.Inscripciones)
}

// loadStudentPortal fetches the portal view, first keyed by the account id
// and, when the backend says that student does not exist, again with the
// resolved student record id.
func (a *App) loadStudentPortal(ctx context.Context, usuarioID int64) (*api.StudentPortal, int64, error) {
	token := a.session.Token()

	portal, err := a.api.StudentPortal(ctx, token, usuarioID)
	if err == nil {
		return portal, usuarioID, nil
	}
	if !errors.Is(err, api.ErrNotFound) {
		return nil, 0, err
	}

	estudianteID, rerr := a.api.ResolveStudentID(ctx, token, usuarioID)
	if rerr != nil {
		return nil, 0, err
	}
	portal, err = a.api.StudentPortal(ctx, token, estudianteID)
	if err != nil {
		return nil, 0, err
	}
	return portal, estudianteID, nil
}

func (a *App) enroll(ctx context.Context, estudianteID int64, current []api.PortalEnrollment) error {
	token := a.session.Token()

	sections, err := a.api.ListSections(ctx, token)
	if err != nil {
		renderError(a.out, "Could not load sections: "+err.Error())
		return err
	}
	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.ID), s.CursoNombre, s.NombreSeccion, s.Horario, s.DocenteNombre,
		})
	}
	renderTable(a.out, []string{"ID", "Course", "Section", "Schedule", "Teacher"}, rows)

	seccionID, err := a.promptID("Section id to enroll (empty to cancel)")
	if err != nil {
		renderError(a.out, err.Error())
		return nil
	}
	if seccionID == 0 {
		return nil
	}

	for _, ins := range current {
		if ins.SeccionID == seccionID {
			renderNotice(a.out, "You are already enrolled in that section.")
			return nil
		}
	}

	if err := a.api.Enroll(ctx, token, estudianteID, seccionID); err != nil {
		renderError(a.out, "Enrollment failed: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Enrolled.")
	return nil
}

func attendanceSummary(counts map[string]int) string {
	if len(counts) == 0 {
		return "-"
	}
	return fmt.Sprintf("P%d A%d T%d", counts["presente"], counts["ausente"], counts["tarde"])
}
