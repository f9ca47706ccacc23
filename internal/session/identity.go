// Package session holds the authenticated session state of the client: the
// bearer token and the identity derived from it, mirrored synchronously into
// the local metadata store so a restart reconstructs the same session.
//
// The token is never verified client-side. Its payload is decoded purely to
// pre-populate the identity for display and navigation gating; real access
// control happens on the backend.
package session

import (
	"strconv"

	"github.com/campus-suite/campusctl/internal/api"
)

// Identity is the client-visible profile of the authenticated user. A zero
// value means "not logged in".
type Identity struct {
	ID     int64  `json:"id,omitempty"`
	Nombre string `json:"nombre,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Empty reports whether the identity carries no recognizable fields.
func (i Identity) Empty() bool {
	return i.ID == 0 && i.Nombre == "" && i.Email == "" && i.Role == ""
}

// idToRole maps legacy numeric role ids to canonical labels. Kept verbatim
// for compatibility with the backend's role schema; treat as configuration
// if the backend assignments ever change.
var idToRole = map[string]string{
	"1": "admin",
	"2": "editor",
	"3": "user",
}

// RoleForID resolves a numeric role id (as a string) to its canonical label,
// "" when unmapped.
func RoleForID(id string) string {
	return idToRole[id]
}

// NormalizeIdentity maps a raw profile object from any external source
// (login response, enrichment response, persisted copy) into Identity.
//
// Field resolution:
//   - id:     id, _id
//   - nombre: nombre, name
//   - email:  email, mail
//   - role:   explicit string role; else role_id through the alias table;
//     else the stringified raw role value; else "".
func NormalizeIdentity(raw map[string]any) Identity {
	ident := Identity{
		Nombre: api.FirstString(raw, "nombre", "name"),
		Email:  api.FirstString(raw, "email", "mail"),
	}
	for _, k := range []string{"id", "_id"} {
		if v, ok := api.AsInt64(raw[k]); ok {
			ident.ID = v
			break
		}
	}

	if s, ok := raw["role"].(string); ok && s != "" {
		ident.Role = s
		return ident
	}
	if rid, ok := api.AsInt64(raw["role_id"]); ok {
		if mapped := RoleForID(strconv.FormatInt(rid, 10)); mapped != "" {
			ident.Role = mapped
			return ident
		}
	}
	if v, ok := raw["role"]; ok && v != nil {
		ident.Role = api.AsString(v)
	}
	return ident
}

// identityFromTokenPayload derives a best-effort identity from a decoded
// token payload. The role candidate is role_id|roleId|role; numeric values
// go through the alias table, anything else is used verbatim.
func identityFromTokenPayload(payload map[string]any) Identity {
	ident := Identity{
		Nombre: api.FirstString(payload, "nombre", "name"),
		Email:  api.FirstString(payload, "email"),
	}
	if v, ok := api.AsInt64(payload["id"]); ok {
		ident.ID = v
	}

	var roleCandidate any
	for _, k := range []string{"role_id", "roleId", "role"} {
		if v, ok := payload[k]; ok && v != nil {
			roleCandidate = v
			break
		}
	}
	if roleCandidate != nil {
		if mapped := RoleForID(api.AsString(roleCandidate)); mapped != "" {
			ident.Role = mapped
		} else if v, ok := payload["role"]; ok && v != nil {
			ident.Role = api.AsString(v)
		}
	}
	return ident
}
