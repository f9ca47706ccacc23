// Package authz decides, per screen, whether the current identity may enter.
// The decision is advisory UI gating only; the backend enforces access on
// every request regardless of what the client shows.
package authz

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/campus-suite/campusctl/internal/session"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Redirect sends the user back to the home screen.
	Redirect Decision = iota
	// Admit renders the requested screen.
	Admit
)

// Authorize checks identity against an allowed role set. A nil or empty set
// marks a public screen and always admits. An absent identity redirects.
// Roles match by exact string equality only.
func Authorize(identity *session.Identity, allowed []string) Decision {
	if len(allowed) == 0 {
		return Admit
	}
	if identity == nil {
		return Redirect
	}
	for _, role := range allowed {
		if identity.Role == role {
			return Admit
		}
	}
	return Redirect
}

// AuthorizeScreen applies Authorize with the screen's configured role set.
func AuthorizeScreen(identity *session.Identity, screen string) Decision {
	return Authorize(identity, RolesFor(screen))
}

// ShouldShowLink reports whether a navigation link for a screen with the
// given role set should be visible. Same predicate as Authorize.
func ShouldShowLink(identity *session.Identity, allowed []string) bool {
	return Authorize(identity, allowed) == Admit
}

// AuthorizeTeacher gates the teacher screen. When the normalized identity
// does not match, the raw token payload gets one more look: a permission
// change on the backend may not have reached the cached identity yet, but
// the freshly issued token already carries the new role.
func AuthorizeTeacher(identity *session.Identity, token string) Decision {
	if Authorize(identity, RolesFor(ScreenTeacher)) == Admit {
		return Admit
	}
	if identity == nil || token == "" {
		return Redirect
	}
	role := roleFromToken(token)
	if role == "" {
		return Redirect
	}
	for _, allowed := range RolesFor(ScreenTeacher) {
		if role == allowed {
			return Admit
		}
	}
	return Redirect
}

// ShouldShowTeacherLink is the link-visibility form of AuthorizeTeacher.
func ShouldShowTeacherLink(identity *session.Identity, token string) bool {
	return AuthorizeTeacher(identity, token) == Admit
}

// legacy numeric role codes, kept in sync with the backend's role schema
var roleAliases = map[string]string{
	"1": "admin",
	"2": "editor",
	"3": "user",
}

// roleFromToken decodes the token's payload segment without verification and
// extracts the role claim. Any decode failure means "no role", which the
// callers treat as no match.
func roleFromToken(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return ""
	}
	segment := strings.TrimRight(parts[1], "=")
	data, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(segment); err != nil {
			return ""
		}
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}

	for _, key := range []string{"role_name", "role", "role_id", "roleId"} {
		v, ok := payload[key]
		if !ok || v == nil {
			continue
		}
		role := claimString(v)
		if role == "" {
			continue
		}
		if mapped, ok := roleAliases[role]; ok {
			return mapped
		}
		return role
	}
	return ""
}

func claimString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatInt(int64(x), 10)
	case json.Number:
		return x.String()
	default:
		return ""
	}
}
