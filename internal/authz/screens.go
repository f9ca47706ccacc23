package authz

// Screen identifiers used by the navigation layer.
const (
	ScreenHome       = "home"
	ScreenAbout      = "about"
	ScreenAdmissions = "admissions"
	ScreenLogin      = "login"

	ScreenPortal   = "portal"
	ScreenPayments = "payments"
	ScreenTeacher  = "teacher"

	ScreenAdmin         = "admin"
	ScreenUsers         = "users"
	ScreenStudents      = "students"
	ScreenTeachers      = "teachers"
	ScreenCourses       = "courses"
	ScreenPaymentsAdmin = "pagos"
	ScreenInquiries     = "inquiries"
)

// ScreenRoles maps each screen to the roles admitted to it. A nil entry (or a
// screen missing from the table) is public. Role values are compared by exact
// string equality, so legacy numeric codes appear alongside their labels.
var ScreenRoles = map[string][]string{
	ScreenHome:       nil,
	ScreenAbout:      nil,
	ScreenAdmissions: nil,
	ScreenLogin:      nil,

	ScreenPortal:   {"user", "student", "3"},
	ScreenPayments: {"user", "student", "3"},
	ScreenTeacher:  {"docente", "teacher", "4", "admin"},

	ScreenAdmin:         {"admin", "1"},
	ScreenUsers:         {"admin", "1"},
	ScreenStudents:      {"admin", "1"},
	ScreenTeachers:      {"admin", "1"},
	ScreenCourses:       {"admin", "1"},
	ScreenPaymentsAdmin: {"admin", "1"},
	ScreenInquiries:     {"admin", "1"},
}

// RolesFor returns the allowed role set for a screen, nil for public screens.
func RolesFor(screen string) []string {
	return ScreenRoles[screen]
}
