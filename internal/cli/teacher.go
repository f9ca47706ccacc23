package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/campus-suite/campusctl/internal/api"
	"github.com/campus-suite/campusctl/internal/authz"
)

// Teacher shows the sections taught by the logged-in docente and records
// grades and attendance for enrolled students.
func (a *App) Teacher(ctx context.Context) error {
	return a.open(ctx, authz.ScreenTeacher, a.teacher)
}

func (a *App) teacher(ctx context.Context) error {
	token := a.session.Token()
	ident := a.session.Identity()

	sections, err := a.api.TeacherPortal(ctx, token, ident.ID)
	if err != nil {
		renderError(a.out, "Could not load your sections: "+err.Error())
		return err
	}

	renderTitle(a.out, "Teacher - sections")
	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.SeccionID), s.CursoNombre, s.NombreSeccion, s.Horario,
			fmt.Sprintf("%d", len(s.Estudiantes)),
		})
	}
	renderTable(a.out, []string{"ID", "Course", "Section", "Schedule", "Students"}, rows)

	seccionID, err := a.promptID("Section id to open (empty to go back)")
	if err != nil {
		renderError(a.out, err.Error())
		return nil
	}
	if seccionID == 0 {
		return nil
	}

	var section *api.TeacherSection
	for i := range sections {
		if sections[i].SeccionID == seccionID {
			section = &sections[i]
			break
		}
	}
	if section == nil {
		renderError(a.out, "That section is not yours.")
		return nil
	}

	return a.teacherSection(ctx, section)
}

func (a *App) teacherSection(ctx context.Context, section *api.TeacherSection) error {
	rows := make([][]string, 0, len(section.Estudiantes))
	for _, st := range section.Estudiantes {
		rows = append(rows, []string{
			fmt.Sprintf("%d", st.InscripcionID), st.CodigoEstudiante, st.NombreEstudiante, st.Email,
		})
	}
	renderTable(a.out, []string{"Enrollment", "Code", "Student", "Email"}, rows)

	action, err := a.promptText("Action (grade/attendance/back)", "back")
	if err != nil {
		return err
	}
	switch action {
	case "grade":
		return a.recordGrade(ctx, section)
	case "attendance":
		return a.recordAttendance(ctx, section)
	default:
		return nil
	}
}

func (a *App) recordGrade(ctx context.Context, section *api.TeacherSection) error {
	inscripcionID, err := a.promptID("Enrollment id")
	if err != nil || inscripcionID == 0 {
		return nil
	}
	if !enrollmentInSection(section, inscripcionID) {
		renderError(a.out, "That enrollment is not in this section.")
		return nil
	}

	tipo, err := a.promptText("Type (parcial/final/tarea)", "parcial")
	if err != nil {
		return err
	}
	nota, err := a.promptFloat("Grade (0-100)")
	if err != nil {
		renderError(a.out, err.Error())
		return nil
	}
	peso := 1.0
	if raw, err := a.promptText("Weight", "1"); err == nil && raw != "1" {
		if _, perr := fmt.Sscanf(raw, "%f", &peso); perr != nil {
			renderError(a.out, "invalid weight "+raw)
			return nil
		}
	}

	err = a.api.SubmitGrade(ctx, a.session.Token(), api.Grade{
		InscripcionID: inscripcionID,
		Tipo:          tipo,
		Nota:          nota,
		Peso:          peso,
	})
	if err != nil {
		renderError(a.out, "Could not record the grade: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Grade recorded.")
	return nil
}

func (a *App) recordAttendance(ctx context.Context, section *api.TeacherSection) error {
	inscripcionID, err := a.promptID("Enrollment id")
	if err != nil || inscripcionID == 0 {
		return nil
	}
	if !enrollmentInSection(section, inscripcionID) {
		renderError(a.out, "That enrollment is not in this section.")
		return nil
	}

	fecha, err := a.promptText("Date YYYY-MM-DD", time.Now().Format("2006-01-02"))
	if err != nil {
		return err
	}
	estado, err := a.promptText("Status (presente/ausente/tarde)", "presente")
	if err != nil {
		return err
	}
	switch estado {
	case "presente", "ausente", "tarde":
	default:
		renderError(a.out, "invalid status "+estado)
		return nil
	}

	err = a.api.SubmitAttendance(ctx, a.session.Token(), api.Attendance{
		InscripcionID: inscripcionID,
		Fecha:         fecha,
		Estado:        estado,
	})
	if err != nil {
		renderError(a.out, "Could not record attendance: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Attendance recorded.")
	return nil
}

func enrollmentInSection(section *api.TeacherSection, inscripcionID int64) bool {
	for _, st := range section.Estudiantes {
		if st.InscripcionID == inscripcionID {
			return true
		}
	}
	return false
}
