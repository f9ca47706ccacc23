package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	visibleLinks() []string

	Home(ctx context.Context) error
	About(ctx context.Context) error
	Admissions(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Portal(ctx context.Context) error
	Payments(ctx context.Context) error
	Teacher(ctx context.Context) error

	Admin(ctx context.Context) error
	Users(ctx context.Context) error
	Students(ctx context.Context) error
	Teachers(ctx context.Context) error
	Courses(ctx context.Context) error
	PaymentsAdmin(ctx context.Context) error
	Inquiries(ctx context.Context) error
}

// runREPL reads a command per line and dispatches to screen methods on a.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Errors returned by screen handlers are ignored here; handlers print their
// own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("campus %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			printlnFn("Available commands: " + strings.Join(a.visibleLinks(), ", "))

		case "home":
			_ = a.Home(ctx)
		case "about":
			_ = a.About(ctx)
		case "admissions":
			_ = a.Admissions(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)

		case "portal":
			_ = a.Portal(ctx)
		case "payments":
			_ = a.Payments(ctx)
		case "teacher":
			_ = a.Teacher(ctx)

		case "admin":
			_ = a.Admin(ctx)
		case "users":
			_ = a.Users(ctx)
		case "students":
			_ = a.Students(ctx)
		case "teachers":
			_ = a.Teachers(ctx)
		case "courses":
			_ = a.Courses(ctx)
		case "pagos":
			_ = a.PaymentsAdmin(ctx)
		case "inquiries":
			_ = a.Inquiries(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
