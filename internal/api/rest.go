package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// RestClient is the concrete Client over net/http. It is stateless apart
// from the base URL; the caller supplies the bearer token per request.
type RestClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*RestClient)(nil)

func NewRestClient(baseURL string) *RestClient {
	return &RestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// do performs one request and returns the raw response body. Transport
// failures wrap ErrUnavailable; non-2xx responses become *HTTPError carrying
// the backend's message|error field when present.
func (c *RestClient) do(ctx context.Context, method, path, token string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &HTTPError{Status: res.StatusCode, Message: backendMessage(raw)}
	}
	return raw, nil
}

// backendMessage extracts message|error from an error body, "" when absent.
func backendMessage(raw []byte) string {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	return FirstString(m, "message", "error")
}

func (c *RestClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/api/health", "", nil)
	return err
}

func (c *RestClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decoding login response: %w", err)
	}
	return &LoginResult{
		Token:   extractToken(body),
		RawUser: extractUser(body),
	}, nil
}

func (c *RestClient) FetchUser(ctx context.Context, token string, id int64) (map[string]any, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/usuarios/%d", id), token, nil)
	if err != nil {
		return nil, err
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decoding profile response: %w", err)
	}
	if o, ok := FirstObject(body, "usuario", "user", "data"); ok {
		return o, nil
	}
	return body, nil
}

// --- users ---

func (c *RestClient) ListUsers(ctx context.Context, token string) ([]User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/usuarios", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[User](raw, "usuarios", "users", "data")
}

func (c *RestClient) CreateUser(ctx context.Context, token string, u NewUser) (int64, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/usuarios", token, u)
	if err != nil {
		return 0, err
	}
	return createdID(raw), nil
}

// createdID digs the new record id out of a creation response; the backend
// answers with the object bare or wrapped under usuario|user|data.
func createdID(raw json.RawMessage) int64 {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return 0
	}
	if id, ok := AsInt64(m["id"]); ok {
		return id
	}
	if o, ok := FirstObject(m, "usuario", "user", "data"); ok {
		if id, ok := AsInt64(o["id"]); ok {
			return id
		}
	}
	return 0
}

func (c *RestClient) UpdateUser(ctx context.Context, token string, id int64, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/usuarios/%d", id), token, fields)
	return err
}

func (c *RestClient) SetUserPassword(ctx context.Context, token string, id int64, password string) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/usuarios/%d/password", id), token, map[string]string{
		"password": password,
	})
	return err
}

func (c *RestClient) DeleteUser(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/usuarios/%d", id), token, nil)
	return err
}

// --- students ---

func (c *RestClient) ListStudents(ctx context.Context, token string) ([]Student, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/estudiantes", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Student](raw, "estudiantes", "data")
}

func (c *RestClient) StudentByUsuario(ctx context.Context, token string, usuarioID int64) (*Student, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/estudiantes/usuario/%d", usuarioID), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeWrapped[Student](raw, "estudiante")
}

// decodeWrapped unmarshals an object that may be wrapped under key or arrive
// bare.
func decodeWrapped[T any](raw json.RawMessage, key string) (*T, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	if inner, ok := envelope[key]; ok {
		raw = inner
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *RestClient) ResolveStudentID(ctx context.Context, token string, usuarioID int64) (int64, error) {
	// 1) dedicated route
	if s, err := c.StudentByUsuario(ctx, token, usuarioID); err == nil && s.ID != 0 {
		return s.ID, nil
	}

	// 2) query-filter route
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/estudiantes?usuario_id=%d", usuarioID), token, nil)
	if err == nil {
		if list, err := decodeList[Student](raw, "estudiantes"); err == nil && len(list) > 0 && list[0].ID != 0 {
			return list[0].ID, nil
		}
	}

	// 3) scan the full list
	list, err := c.ListStudents(ctx, token)
	if err != nil {
		return 0, err
	}
	for _, s := range list {
		if s.UsuarioID == usuarioID && s.ID != 0 {
			return s.ID, nil
		}
	}
	return 0, ErrNotFound
}

func (c *RestClient) UpdateStudent(ctx context.Context, token string, id int64, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/estudiantes/%d", id), token, fields)
	return err
}

func (c *RestClient) DeleteStudent(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/estudiantes/%d", id), token, nil)
	return err
}

// --- teachers ---

func (c *RestClient) ListTeachers(ctx context.Context, token string) ([]Teacher, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/docentes", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Teacher](raw, "docentes", "data")
}

func (c *RestClient) TeacherByUsuario(ctx context.Context, token string, usuarioID int64) (*Teacher, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/docentes/usuario/%d", usuarioID), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeWrapped[Teacher](raw, "docente")
}

func (c *RestClient) UpdateTeacher(ctx context.Context, token string, id int64, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/docentes/%d", id), token, fields)
	return err
}

func (c *RestClient) DeleteTeacher(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/docentes/%d", id), token, nil)
	return err
}

// --- courses and sections ---

func (c *RestClient) ListCourses(ctx context.Context, token string) ([]Course, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/cursos", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Course](raw, "cursos", "data")
}

func (c *RestClient) CreateCourse(ctx context.Context, token string, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPost, "/api/cursos", token, fields)
	return err
}

func (c *RestClient) UpdateCourse(ctx context.Context, token string, id int64, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cursos/%d", id), token, fields)
	return err
}

func (c *RestClient) DeleteCourse(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cursos/%d", id), token, nil)
	return err
}

func (c *RestClient) ListSections(ctx context.Context, token string) ([]Section, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/secciones", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Section](raw, "secciones", "data")
}

func (c *RestClient) CreateSection(ctx context.Context, token string, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPost, "/api/secciones", token, fields)
	return err
}

func (c *RestClient) UpdateSection(ctx context.Context, token string, id int64, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/secciones/%d", id), token, fields)
	return err
}

func (c *RestClient) DeleteSection(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/secciones/%d", id), token, nil)
	return err
}

// --- enrollment, grades, attendance ---

func (c *RestClient) Enroll(ctx context.Context, token string, estudianteID, seccionID int64) error {
	_, err := c.do(ctx, http.MethodPost, "/api/inscripciones", token, map[string]int64{
		"estudiante_id": estudianteID,
		"seccion_id":    seccionID,
	})
	return err
}

// postWithCreateFallback posts to path and, when the route does not exist on
// this backend revision, retries the legacy path+"/create" variant once.
func (c *RestClient) postWithCreateFallback(ctx context.Context, token, path string, body any) error {
	_, err := c.do(ctx, http.MethodPost, path, token, body)
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
		_, err = c.do(ctx, http.MethodPost, path+"/create", token, body)
	}
	return err
}

func (c *RestClient) SubmitGrade(ctx context.Context, token string, g Grade) error {
	return c.postWithCreateFallback(ctx, token, "/api/calificaciones", g)
}

func (c *RestClient) SubmitAttendance(ctx context.Context, token string, a Attendance) error {
	return c.postWithCreateFallback(ctx, token, "/api/asistencias", a)
}

// --- payments ---

func (c *RestClient) ListPayments(ctx context.Context, token string) ([]Payment, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/pagos", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Payment](raw, "pagos", "data")
}

func (c *RestClient) ListStudentPayments(ctx context.Context, token string, estudianteID int64) ([]Payment, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/pagos/estudiante/%d", estudianteID), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Payment](raw, "pagos", "data")
}

func (c *RestClient) CreatePayment(ctx context.Context, token string, p NewPayment) error {
	_, err := c.do(ctx, http.MethodPost, "/api/pagos", token, p)
	return err
}

func (c *RestClient) UpdatePaymentStatus(ctx context.Context, token string, id int64, estado string) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/pagos/%d", id), token, map[string]string{
		"estado": estado,
	})
	return err
}

// --- portal views ---

func (c *RestClient) StudentPortal(ctx context.Context, token string, estudianteID int64) (*StudentPortal, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/portal/estudiante/%d", estudianteID), token, nil)
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decoding portal response: %w", err)
	}

	portal := &StudentPortal{}
	if perfil, ok := envelope["perfil"]; ok {
		_ = json.Unmarshal(perfil, &portal.Perfil)
	}
	if ins, ok := envelope["inscripciones"]; ok {
		_ = json.Unmarshal(ins, &portal.Inscripciones)
	}
	if pagos, ok := envelope["pagos"]; ok {
		_ = json.Unmarshal(pagos, &portal.Pagos)
	}
	return portal, nil
}

func (c *RestClient) TeacherPortal(ctx context.Context, token string, usuarioID int64) ([]TeacherSection, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/portal/docente/%d", usuarioID), token, nil)
	if err != nil {
		return nil, err
	}

	items, err := unwrapList(raw, "secciones", "sections")
	if err != nil {
		return nil, fmt.Errorf("decoding teacher portal response: %w", err)
	}

	sections := make([]TeacherSection, 0, len(items))
	for _, item := range items {
		var m map[string]any
		if err := json.Unmarshal(item, &m); err != nil {
			continue
		}
		sections = append(sections, normalizeTeacherSection(m))
	}
	return sections, nil
}

// normalizeTeacherSection maps the inconsistent section shape of the teacher
// portal endpoint into TeacherSection.
func normalizeTeacherSection(m map[string]any) TeacherSection {
	s := TeacherSection{
		NombreSeccion: FirstString(m, "nombre_seccion", "nombre"),
		Horario:       FirstString(m, "horario"),
		CursoNombre:   FirstString(m, "curso_nombre", "cursoNombre"),
	}
	for _, k := range []string{"seccion_id", "id", "seccionId"} {
		if id, ok := AsInt64(m[k]); ok {
			s.SeccionID = id
			break
		}
	}
	for _, k := range []string{"curso_id", "cursoId"} {
		if id, ok := AsInt64(m[k]); ok {
			s.CursoID = id
			break
		}
	}

	students, ok := m["estudiantes"].([]any)
	if !ok {
		students, _ = m["alumnos"].([]any)
	}
	for _, e := range students {
		b, err := json.Marshal(e)
		if err != nil {
			continue
		}
		var st TeacherStudent
		if err := json.Unmarshal(b, &st); err == nil {
			s.Estudiantes = append(s.Estudiantes, st)
		}
	}
	return s
}
