package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/campus-suite/campusctl/internal/api"
	"github.com/campus-suite/campusctl/internal/authz"
	"github.com/campus-suite/campusctl/internal/config"
	"github.com/campus-suite/campusctl/internal/logging"
	"github.com/campus-suite/campusctl/internal/session"
	"github.com/campus-suite/campusctl/internal/storage"
	"github.com/campus-suite/campusctl/internal/storage/inquiries"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App is the composition root of the client.
type App struct {
	config    *config.Config
	api       api.Client
	session   *session.Store
	inquiries inquiries.Repository
	repos     *storage.Repositories
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer
	Mode   Mode
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	repos, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	client := api.NewRestClient(cfg.APIBaseURL)
	store := session.NewStore(client, repos.Metadata, log)

	return &App{
		config:    cfg,
		api:       client,
		session:   store,
		inquiries: repos.Inquiries,
		repos:     repos,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run restores the persisted session, starts the connectivity watcher and
// hands control to the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.repos.Close()

	if err := a.session.Initialize(ctx); err != nil {
		return err
	}
	a.session.Reconcile(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "campusctl (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher probes the backend health endpoint on an interval
// and flips the connectivity mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	var parts []string
	if ident := a.session.Identity(); ident != nil {
		name := ident.Nombre
		if name == "" {
			name = ident.Email
		}
		if name == "" {
			name = fmt.Sprintf("user %d", ident.ID)
		}
		parts = append(parts, name)
		if ident.Role != "" {
			parts = append(parts, ident.Role)
		}
	}
	if a.Mode != "" {
		parts = append(parts, string(a.Mode))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// visibleLinks lists the screens the current identity may open, in menu
// order. The teacher screen uses the token-fallback check so a freshly
// promoted docente sees the link even with a stale cached identity.
func (a *App) visibleLinks() []string {
	ident := a.session.Identity()

	links := []string{authz.ScreenHome, authz.ScreenAbout, authz.ScreenAdmissions}
	if !a.isLoggedIn() {
		links = append(links, authz.ScreenLogin)
	}

	for _, screen := range []string{authz.ScreenPortal, authz.ScreenPayments} {
		if authz.ShouldShowLink(ident, authz.RolesFor(screen)) {
			links = append(links, screen)
		}
	}
	if authz.ShouldShowTeacherLink(ident, a.session.Token()) {
		links = append(links, authz.ScreenTeacher)
	}
	for _, screen := range []string{
		authz.ScreenAdmin, authz.ScreenUsers, authz.ScreenStudents,
		authz.ScreenTeachers, authz.ScreenCourses, authz.ScreenPaymentsAdmin,
		authz.ScreenInquiries,
	} {
		if authz.ShouldShowLink(ident, authz.RolesFor(screen)) {
			links = append(links, screen)
		}
	}

	if a.isLoggedIn() {
		links = append(links, "whoami", "logout")
	}
	return append(links, "exit")
}

// open runs a gated screen. On refusal it prints a notice and falls back to
// the home screen, mirroring the redirect behavior of the source UI.
func (a *App) open(ctx context.Context, screen string, fn func(context.Context) error) error {
	ident := a.session.Identity()

	var decision authz.Decision
	if screen == authz.ScreenTeacher {
		decision = authz.AuthorizeTeacher(ident, a.session.Token())
	} else {
		decision = authz.AuthorizeScreen(ident, screen)
	}

	if decision != authz.Admit {
		renderNotice(a.out, "You are not allowed to open this screen; returning home.")
		return a.Home(ctx)
	}
	return fn(ctx)
}
