package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campus-suite/campusctl/internal/api"
	"github.com/campus-suite/campusctl/internal/session"
)

func teacherSectionsFixture() []api.TeacherSection {
	return []api.TeacherSection{{
		SeccionID:     10,
		NombreSeccion: "A",
		CursoNombre:   "Álgebra",
		Horario:       "Lun 8:00",
		Estudiantes: []api.TeacherStudent{{
			InscripcionID:    77,
			EstudianteID:     33,
			CodigoEstudiante: "EST-33",
			NombreEstudiante: "Pedro",
		}},
	}}
}

func TestTeacher_RecordsGradeWithDefaults(t *testing.T) {
	fake := &fakeAPI{teacherSections: teacherSectionsFixture()}
	// section 10 -> grade -> enrollment 77 -> default type -> 95 -> default weight
	ta := newTestApp(t, fake, "10\ngrade\n77\n\n95\n\n")
	ta.loginAs(t, "t.p.s", session.Identity{ID: 9, Role: "docente"})

	require.NoError(t, ta.app.Teacher(context.Background()))

	require.Len(t, fake.grades, 1)
	g := fake.grades[0]
	require.Equal(t, int64(77), g.InscripcionID)
	require.Equal(t, "parcial", g.Tipo)
	require.InDelta(t, 95, g.Nota, 0.001)
	require.InDelta(t, 1, g.Peso, 0.001)
}

func TestTeacher_RecordsAttendanceDefaultsToToday(t *testing.T) {
	fake := &fakeAPI{teacherSections: teacherSectionsFixture()}
	// section 10 -> attendance -> enrollment 77 -> default date -> default status
	ta := newTestApp(t, fake, "10\nattendance\n77\n\n\n")
	ta.loginAs(t, "t.p.s", session.Identity{ID: 9, Role: "docente"})

	require.NoError(t, ta.app.Teacher(context.Background()))

	require.Len(t, fake.attendances, 1)
	at := fake.attendances[0]
	require.Equal(t, int64(77), at.InscripcionID)
	require.Equal(t, time.Now().Format("2006-01-02"), at.Fecha)
	require.Equal(t, "presente", at.Estado)
}

func TestTeacher_RejectsForeignEnrollment(t *testing.T) {
	fake := &fakeAPI{teacherSections: teacherSectionsFixture()}
	ta := newTestApp(t, fake, "10\ngrade\n999\n")
	ta.loginAs(t, "t.p.s", session.Identity{ID: 9, Role: "docente"})

	require.NoError(t, ta.app.Teacher(context.Background()))

	require.Empty(t, fake.grades)
	require.Contains(t, ta.out.String(), "not in this section")
}

func TestTeacher_AdmittedViaTokenFallback(t *testing.T) {
	fake := &fakeAPI{teacherSections: teacherSectionsFixture()}
	// cached role is stale but the token says docente; empty section id backs out
	ta := newTestApp(t, fake, "\n")
	ta.loginAs(t, "h.eyJyb2xlX25hbWUiOiJkb2NlbnRlIn0.s", session.Identity{ID: 9, Role: "user"})

	require.NoError(t, ta.app.Teacher(context.Background()))
	require.Equal(t, 1, fake.teacherPortalCalls, "fallback admits the screen")
}

func TestTeacher_SectionNotOwned(t *testing.T) {
	fake := &fakeAPI{teacherSections: teacherSectionsFixture()}
	ta := newTestApp(t, fake, "42\n")
	ta.loginAs(t, "t.p.s", session.Identity{ID: 9, Role: "docente"})

	require.NoError(t, ta.app.Teacher(context.Background()))
	require.Contains(t, ta.out.String(), "not yours")
}
