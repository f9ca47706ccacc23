// Package cli provides the interactive campusctl terminal client.
//
// It wires configuration, local storage, the backend API client, the session
// store and the authorization gate into an interactive REPL. Typical flow:
// restore the persisted session, start a background connectivity watcher, and
// execute screen commands.
//
// Screens:
//   - public: home, about, admissions, login
//   - student: portal, payments
//   - teacher: teacher
//   - admin: admin (dashboard), users, students, teachers, courses, pagos,
//     inquiries
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Every gated screen re-checks authorization on entry; the help output only
// lists screens the current identity may open.
package cli
