package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckForm_Admission(t *testing.T) {
	valid := AdmissionForm{
		Nombre:         "Ana",
		Apellido:       "García",
		Email:          "ana@x.com",
		Telefono:       "555-0100",
		CarreraInteres: "Ingeniería",
	}

	tests := []struct {
		name    string
		mutate  func(*AdmissionForm)
		wantOK  bool
		wantMsg string
	}{
		{"valid", func(f *AdmissionForm) {}, true, ""},
		{"valid with birth date", func(f *AdmissionForm) { f.FechaNacimiento = "2001-04-15" }, true, ""},
		{"missing name", func(f *AdmissionForm) { f.Nombre = "" }, false, "Nombre is required"},
		{"bad email", func(f *AdmissionForm) { f.Email = "nope" }, false, "Email must be a valid email"},
		{"bad birth date", func(f *AdmissionForm) { f.FechaNacimiento = "15/04/2001" }, false, "YYYY-MM-DD"},
		{"missing program", func(f *AdmissionForm) { f.CarreraInteres = "" }, false, "CarreraInteres is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := valid
			tc.mutate(&form)
			var out bytes.Buffer
			require.Equal(t, tc.wantOK, checkForm(&out, form))
			if tc.wantMsg != "" {
				require.Contains(t, out.String(), tc.wantMsg)
			}
		})
	}
}

func TestCheckForm_Information(t *testing.T) {
	var out bytes.Buffer
	require.True(t, checkForm(&out, InformationForm{
		Nombre: "Beto", Email: "beto@x.com", Mensaje: "Quiero información",
	}))

	require.False(t, checkForm(&out, InformationForm{Nombre: "Beto", Email: "beto@x.com"}))
	require.Contains(t, out.String(), "Mensaje is required")
}
