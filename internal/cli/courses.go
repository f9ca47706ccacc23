package cli

import (
	"context"
	"fmt"

	"github.com/campus-suite/campusctl/internal/authz"
)

// Courses is the admin screen over courses and their sections.
func (a *App) Courses(ctx context.Context) error {
	return a.open(ctx, authz.ScreenCourses, a.courses)
}

func (a *App) courses(ctx context.Context) error {
	token := a.session.Token()

	courses, err := a.api.ListCourses(ctx, token)
	if err != nil {
		renderError(a.out, "Could not load courses: "+err.Error())
		return err
	}

	renderTitle(a.out, "Courses")
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.ID), c.Codigo, c.Nombre, fmt.Sprintf("%d", c.Creditos),
		})
	}
	renderTable(a.out, []string{"ID", "Code", "Name", "Credits"}, rows)

	sections, err := a.api.ListSections(ctx, token)
	if err != nil {
		renderError(a.out, "Could not load sections: "+err.Error())
		return err
	}
	srows := make([][]string, 0, len(sections))
	for _, s := range sections {
		docente := "-"
		if s.DocenteNombre != "" {
			docente = s.DocenteNombre
		} else if s.DocenteID != nil {
			docente = fmt.Sprintf("%d", *s.DocenteID)
		}
		srows = append(srows, []string{
			fmt.Sprintf("%d", s.ID), s.CursoNombre, s.NombreSeccion, s.Jornada, s.Horario, docente,
		})
	}
	renderTable(a.out, []string{"ID", "Course", "Section", "Shift", "Schedule", "Teacher"}, srows)

	action, err := a.promptText("Action (course-create/course-update/course-delete/section-create/section-update/section-delete/back)", "back")
	if err != nil {
		return err
	}
	switch action {
	case "course-create":
		return a.createCourse(ctx)
	case "course-update":
		return a.updateCourse(ctx)
	case "course-delete":
		return a.deleteCourse(ctx)
	case "section-create":
		return a.createSection(ctx)
	case "section-update":
		return a.updateSection(ctx)
	case "section-delete":
		return a.deleteSection(ctx)
	default:
		return nil
	}
}

func (a *App) createCourse(ctx context.Context) error {
	nombre, err := getSimpleText(a.reader, "Course name", a.out)
	if err != nil {
		return err
	}
	codigo, err := getSimpleText(a.reader, "Code", a.out)
	if err != nil {
		return err
	}
	creditos, err := a.promptID("Credits")
	if err != nil {
		renderError(a.out, err.Error())
		return nil
	}
	descripcion, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	fields := map[string]any{"nombre": nombre, "codigo": codigo, "creditos": creditos}
	if descripcion != "" {
		fields["descripcion"] = descripcion
	}
	if err := a.api.CreateCourse(ctx, a.session.Token(), fields); err != nil {
		renderError(a.out, "Could not create the course: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Course created.")
	return nil
}

func (a *App) updateCourse(ctx context.Context) error {
	id, err := a.promptID("Course id")
	if err != nil || id == 0 {
		return nil
	}

	fields := map[string]any{}
	if nombre, err := getSimpleText(a.reader, "New name (empty to keep)", a.out); err == nil && nombre != "" {
		fields["nombre"] = nombre
	}
	if descripcion, err := getSimpleText(a.reader, "New description (empty to keep)", a.out); err == nil && descripcion != "" {
		fields["descripcion"] = descripcion
	}
	if len(fields) == 0 {
		renderNotice(a.out, "Nothing to change.")
		return nil
	}

	if err := a.api.UpdateCourse(ctx, a.session.Token(), id, fields); err != nil {
		renderError(a.out, "Could not update the course: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Course updated.")
	return nil
}

func (a *App) deleteCourse(ctx context.Context) error {
	id, err := a.promptID("Course id")
	if err != nil || id == 0 {
		return nil
	}
	if !a.confirm(fmt.Sprintf("Delete course %d and its sections?", id)) {
		return nil
	}
	if err := a.api.DeleteCourse(ctx, a.session.Token(), id); err != nil {
		renderError(a.out, "Could not delete the course: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Course deleted.")
	return nil
}

func (a *App) createSection(ctx context.Context) error {
	cursoID, err := a.promptID("Course id")
	if err != nil || cursoID == 0 {
		return nil
	}
	nombre, err := getSimpleText(a.reader, "Section name (e.g. A, B)", a.out)
	if err != nil {
		return err
	}
	jornada, err := a.promptText("Shift (matutina/vespertina/nocturna)", "matutina")
	if err != nil {
		return err
	}
	horario, err := getSimpleText(a.reader, "Schedule (optional)", a.out)
	if err != nil {
		return err
	}

	fields := map[string]any{
		"curso_id":       cursoID,
		"nombre_seccion": nombre,
		"jornada":        jornada,
	}
	if horario != "" {
		fields["horario"] = horario
	}
	if docenteID, err := a.promptID("Teacher id (empty for unassigned)"); err == nil && docenteID != 0 {
		fields["docente_id"] = docenteID
	}

	if err := a.api.CreateSection(ctx, a.session.Token(), fields); err != nil {
		renderError(a.out, "Could not create the section: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Section created.")
	return nil
}

func (a *App) updateSection(ctx context.Context) error {
	id, err := a.promptID("Section id")
	if err != nil || id == 0 {
		return nil
	}

	fields := map[string]any{}
	if horario, err := getSimpleText(a.reader, "New schedule (empty to keep)", a.out); err == nil && horario != "" {
		fields["horario"] = horario
	}
	if docenteID, err := a.promptID("New teacher id (empty to keep)"); err == nil && docenteID != 0 {
		fields["docente_id"] = docenteID
	}
	if len(fields) == 0 {
		renderNotice(a.out, "Nothing to change.")
		return nil
	}

	if err := a.api.UpdateSection(ctx, a.session.Token(), id, fields); err != nil {
		renderError(a.out, "Could not update the section: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Section updated.")
	return nil
}

func (a *App) deleteSection(ctx context.Context) error {
	id, err := a.promptID("Section id")
	if err != nil || id == 0 {
		return nil
	}
	if !a.confirm(fmt.Sprintf("Delete section %d?", id)) {
		return nil
	}
	if err := a.api.DeleteSection(ctx, a.session.Token(), id); err != nil {
		renderError(a.out, "Could not delete the section: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Section deleted.")
	return nil
}
