package api

// Wire models for the university administration backend. Field names follow
// the backend's Spanish schema; optional fields use pointers or zero values.

type User struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	RoleID int64  `json:"role_id,omitempty"`
	Role   string `json:"role,omitempty"`
}

// NewUser is the creation payload for POST /api/usuarios.
type NewUser struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int64  `json:"role_id"`
}

type Student struct {
	ID               int64  `json:"id"`
	UsuarioID        int64  `json:"usuario_id"`
	CodigoEstudiante string `json:"codigo_estudiante,omitempty"`
	Nombre           string `json:"nombre,omitempty"`
	Email            string `json:"email,omitempty"`
}

type Teacher struct {
	ID           int64  `json:"id"`
	UsuarioID    int64  `json:"usuario_id"`
	Nombre       string `json:"nombre,omitempty"`
	Email        string `json:"email,omitempty"`
	Especialidad string `json:"especialidad,omitempty"`
}

type Course struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Codigo      string `json:"codigo,omitempty"`
	Creditos    int64  `json:"creditos,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`
}

type Section struct {
	ID            int64  `json:"id"`
	CursoID       int64  `json:"curso_id"`
	NombreSeccion string `json:"nombre_seccion"`
	Jornada       string `json:"jornada,omitempty"`
	Horario       string `json:"horario,omitempty"`
	DocenteID     *int64 `json:"docente_id,omitempty"`
	CursoNombre   string `json:"curso_nombre,omitempty"`
	DocenteNombre string `json:"docente_nombre,omitempty"`
}

// Grade is the payload for POST /api/calificaciones.
type Grade struct {
	InscripcionID int64   `json:"inscripcion_id"`
	PeriodoID     *int64  `json:"periodo_id"`
	Tipo          string  `json:"tipo"`
	Nota          float64 `json:"nota"`
	Peso          float64 `json:"peso"`
}

// Attendance is the payload for POST /api/asistencias.
type Attendance struct {
	InscripcionID int64  `json:"inscripcion_id"`
	Fecha         string `json:"fecha"`
	Estado        string `json:"estado"`
}

type Payment struct {
	ID           int64   `json:"id"`
	EstudianteID int64   `json:"estudiante_id"`
	Monto        float64 `json:"monto"`
	Concepto     string  `json:"concepto,omitempty"`
	Estado       string  `json:"estado,omitempty"`
	Fecha        string  `json:"fecha,omitempty"`
}

// NewPayment is the creation payload for POST /api/pagos.
type NewPayment struct {
	EstudianteID int64   `json:"estudiante_id"`
	Monto        float64 `json:"monto"`
	Concepto     string  `json:"concepto"`
	MetodoPago   string  `json:"metodo_pago,omitempty"`
}

// StudentPortal is the aggregated view behind GET /api/portal/estudiante/{id}.
type StudentPortal struct {
	Perfil        *PortalProfile     `json:"perfil"`
	Inscripciones []PortalEnrollment `json:"inscripciones"`
	Pagos         []Payment          `json:"pagos"`
}

type PortalProfile struct {
	NombreUsuario    string `json:"nombre_usuario,omitempty"`
	Nombre           string `json:"nombre,omitempty"`
	Email            string `json:"email,omitempty"`
	CodigoEstudiante string `json:"codigo_estudiante,omitempty"`
}

// DisplayName prefers the account name over the student record name,
// the way the source portal renders its header.
func (p *PortalProfile) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.NombreUsuario != "" {
		return p.NombreUsuario
	}
	return p.Nombre
}

type PortalEnrollment struct {
	InscripcionID  int64          `json:"inscripcion_id"`
	SeccionID      int64          `json:"seccion_id"`
	CursoID        int64          `json:"curso_id"`
	CursoNombre    string         `json:"curso_nombre"`
	NombreSeccion  string         `json:"nombre_seccion"`
	NotaFinal      *float64       `json:"nota_final"`
	Calificaciones []PortalGrade  `json:"calificaciones,omitempty"`
	Asistencia     map[string]int `json:"asistencia,omitempty"`
}

type PortalGrade struct {
	ID   int64   `json:"id"`
	Tipo string  `json:"tipo"`
	Nota float64 `json:"nota"`
	Peso float64 `json:"peso"`
}

// TeacherSection is one normalized row of GET /api/portal/docente/{usuario_id}.
type TeacherSection struct {
	SeccionID     int64
	NombreSeccion string
	Horario       string
	CursoID       int64
	CursoNombre   string
	Estudiantes   []TeacherStudent
}

type TeacherStudent struct {
	InscripcionID    int64  `json:"inscripcion_id"`
	EstudianteID     int64  `json:"estudiante_id"`
	CodigoEstudiante string `json:"codigo_estudiante,omitempty"`
	NombreEstudiante string `json:"nombre_estudiante"`
	Email            string `json:"email,omitempty"`
}
