package authz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campus-suite/campusctl/internal/session"
)

func identWithRole(role string) *session.Identity {
	return &session.Identity{ID: 1, Role: role}
}

func TestAuthorize_AdminRoles(t *testing.T) {
	adminRoles := RolesFor(ScreenAdmin)

	for _, role := range []string{"admin", "1"} {
		require.Equal(t, Admit, Authorize(identWithRole(role), adminRoles), "role %q", role)
	}
	for _, role := range []string{"user", "student", "3", "docente", "editor", "2", ""} {
		require.Equal(t, Redirect, Authorize(identWithRole(role), adminRoles), "role %q", role)
	}
}

func TestAuthorize_NilIdentityRedirects(t *testing.T) {
	require.Equal(t, Redirect, Authorize(nil, RolesFor(ScreenPortal)))
}

func TestAuthorize_PublicScreensAlwaysAdmit(t *testing.T) {
	require.Equal(t, Admit, Authorize(nil, RolesFor(ScreenHome)))
	require.Equal(t, Admit, Authorize(nil, nil))
	require.Equal(t, Admit, Authorize(identWithRole("user"), RolesFor(ScreenAbout)))
}

func TestAuthorize_ExactMatchOnly(t *testing.T) {
	// no case folding, no substring matching
	require.Equal(t, Redirect, Authorize(identWithRole("Admin"), RolesFor(ScreenAdmin)))
	require.Equal(t, Redirect, Authorize(identWithRole("admins"), RolesFor(ScreenAdmin)))
}

func TestAuthorizeScreen_StudentScreens(t *testing.T) {
	for _, screen := range []string{ScreenPortal, ScreenPayments} {
		for _, role := range []string{"user", "student", "3"} {
			require.Equal(t, Admit, AuthorizeScreen(identWithRole(role), screen))
		}
		require.Equal(t, Redirect, AuthorizeScreen(identWithRole("admin"), screen))
	}
}

func TestShouldShowLink(t *testing.T) {
	require.True(t, ShouldShowLink(identWithRole("admin"), RolesFor(ScreenUsers)))
	require.False(t, ShouldShowLink(nil, RolesFor(ScreenUsers)))
	require.False(t, ShouldShowLink(identWithRole("user"), RolesFor(ScreenUsers)))
}

func TestShouldShowTeacherLink_FallbackOverridesStaleRole(t *testing.T) {
	// normalized role is stale, but the current token says docente
	token := "h.eyJyb2xlX25hbWUiOiJkb2NlbnRlIn0.s"
	require.True(t, ShouldShowTeacherLink(identWithRole("user"), token))
}

func TestAuthorizeTeacher(t *testing.T) {
	tests := []struct {
		name  string
		ident *session.Identity
		token string
		want  Decision
	}{
		{"role matches directly", identWithRole("docente"), "", Admit},
		{"admin admitted", identWithRole("admin"), "", Admit},
		{"numeric teacher code", identWithRole("4"), "", Admit},
		{"token role_id 4 via fallback", identWithRole("user"), "h.eyJyb2xlX2lkIjo0fQ.s", Admit},
		{"token role_id 1 maps to admin", identWithRole("user"), "h.eyJyb2xlX2lkIjoxfQ.s", Admit},
		{"token role student stays out", identWithRole("user"), "h.eyJyb2xlIjoic3R1ZGVudCJ9.s", Redirect},
		{"nil identity", nil, "h.eyJyb2xlX25hbWUiOiJkb2NlbnRlIn0.s", Redirect},
		{"no token no fallback", identWithRole("user"), "", Redirect},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, AuthorizeTeacher(tc.ident, tc.token))
		})
	}
}

func TestAuthorizeTeacher_MalformedTokenFailsClosed(t *testing.T) {
	for _, token := range []string{"not-a-jwt", "a.!!!.c", "x.eyJub3QganNvbg.y", "."} {
		require.NotPanics(t, func() {
			require.Equal(t, Redirect, AuthorizeTeacher(identWithRole("user"), token), "token %q", token)
		})
	}
}

func TestRoleFromToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"role_name wins", "h.eyJyb2xlX25hbWUiOiJkb2NlbnRlIiwiaWQiOjl9.s", "docente"},
		{"numeric role mapped", "h.eyJyb2xlX2lkIjoxfQ.s", "admin"},
		{"unmapped numeric kept", "h.eyJyb2xlX2lkIjo0fQ.s", "4"},
		{"missing claims", "h.eyJpZCI6NX0.s", ""},
		{"garbage", "h.!!!.s", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, roleFromToken(tc.token))
		})
	}
}
