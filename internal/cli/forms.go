package cli

import (
	"errors"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AdmissionForm is the admission application stored locally for later review.
type AdmissionForm struct {
	Nombre          string `json:"nombre" validate:"required"`
	Apellido        string `json:"apellido" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Telefono        string `json:"telefono" validate:"required"`
	FechaNacimiento string `json:"fecha_nacimiento,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Direccion       string `json:"direccion,omitempty"`
	CarreraInteres  string `json:"carrera_interes" validate:"required"`
	Mensaje         string `json:"mensaje,omitempty"`
}

// InformationForm is the information request submitted from the home screen.
type InformationForm struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Telefono string `json:"telefono,omitempty"`
	Mensaje  string `json:"mensaje" validate:"required"`
}

// checkForm validates v and prints one line per failing field. Returns false
// when the form is invalid; the user re-runs the screen to retry.
func checkForm(w io.Writer, v any) bool {
	err := validate.Struct(v)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		renderError(w, "Invalid form: "+err.Error())
		return false
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			renderError(w, fe.Field()+" is required")
		case "email":
			renderError(w, fe.Field()+" must be a valid email address")
		case "datetime":
			renderError(w, fe.Field()+" must be a date in YYYY-MM-DD form")
		default:
			renderError(w, fe.Field()+" is invalid")
		}
	}
	return false
}
