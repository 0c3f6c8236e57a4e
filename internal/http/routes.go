package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/campushq/campus-ui-api/internal/data/memory"
	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
	"github.com/campushq/campus-ui-api/internal/domain/guard"
)

// AuthAPI is the full auth surface the router needs: the login flow
// handlers plus snapshot resolution for the guard middleware.
type AuthAPI interface {
	AuthServiceInterface
	SnapshotFor(ctx context.Context, sessionID string) (domainauth.Snapshot, error)
}

// RouterOptions groups dependencies for NewRouter.
type RouterOptions struct {
	Auth         AuthAPI
	Stores       *memory.Stores
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter builds the HTTP handler tree. Every dashboard route is
// wrapped in the guard policy of the audience it serves; the policy
// table here is the single place access rules live.
func NewRouter(opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authHandlers := &AuthHandlers{Svc: opts.Auth, CookieDomain: opts.CookieDomain, Logger: logger}
	students := &StudentHandlers{Store: opts.Stores.Students}
	fines := &FineHandlers{Store: opts.Stores.Fines}
	schedules := &ScheduleHandlers{Schedules: opts.Stores.Schedules, Students: opts.Stores.Students}
	fees := &FeeHandlers{Fees: opts.Stores.Fees, Students: opts.Stores.Students}
	messages := &MessageHandlers{Store: opts.Stores.Messages}

	g := &Guard{Auth: opts.Auth, Logger: logger}

	staffOnly := g.Protect(guard.StaffOnly[http.Handler]())
	adminOnly := g.Protect(guard.AdminOnly[http.Handler]())
	teacherOnly := g.Protect(guard.TeacherOnly[http.Handler]())
	studentOnly := g.Protect(guard.StudentOnly[http.Handler]())
	anyRole := g.Protect(guard.AnyRole[http.Handler]())

	// Parents without linked fee records see a contact notice instead of
	// an access error.
	parentFees := g.Protect(guard.ParentOnly(
		guard.WithFallback[http.Handler](http.HandlerFunc(feeContactNotice)),
	))

	// The media studio booking screen is shared by admins and the media
	// coordinator; everyone else lands back on their dashboard.
	mediaOnly := g.Protect(guard.NewPolicy(
		domainauth.RoleSet{domainauth.RoleAdmin, domainauth.RoleMediaCoordinator},
		guard.WithRedirect[http.Handler]("/dashboard"),
	))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", Healthz)

	mux.HandleFunc("GET /auth/login", authHandlers.Login)
	mux.HandleFunc("GET /auth/callback", authHandlers.Callback)
	mux.HandleFunc("POST /auth/logout", authHandlers.Logout)
	mux.HandleFunc("GET /api/session", authHandlers.Status)

	mux.Handle("GET /api/students", staffOnly(http.HandlerFunc(students.List)))
	mux.Handle("GET /api/students/{id}", staffOnly(http.HandlerFunc(students.Get)))

	mux.Handle("GET /api/fines", staffOnly(http.HandlerFunc(fines.List)))
	mux.Handle("POST /api/fines", staffOnly(http.HandlerFunc(fines.Issue)))
	mux.Handle("POST /api/fines/{id}/waive", adminOnly(http.HandlerFunc(fines.Waive)))

	mux.Handle("GET /api/schedules", teacherOnly(http.HandlerFunc(schedules.List)))
	mux.Handle("POST /api/schedules", teacherOnly(http.HandlerFunc(schedules.Assign)))
	mux.Handle("GET /api/my/schedule", studentOnly(http.HandlerFunc(schedules.MySchedule)))

	mux.Handle("GET /api/fees", staffOnly(http.HandlerFunc(fees.List)))
	mux.Handle("POST /api/fees/{id}/payments", adminOnly(http.HandlerFunc(fees.RecordPayment)))
	mux.Handle("GET /api/my/fees", parentFees(http.HandlerFunc(fees.MyFees)))

	mux.Handle("GET /api/messages", anyRole(http.HandlerFunc(messages.List)))
	mux.Handle("POST /api/messages", anyRole(http.HandlerFunc(messages.Post)))

	mux.Handle("GET /media", mediaOnly(http.HandlerFunc(mediaStudio)))
	mux.Handle("GET /dashboard", anyRole(http.HandlerFunc(dashboardHome)))

	var handler http.Handler = mux
	handler = BrowserDetection()(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

// feeContactNotice is the parent-facing stand-in when the fee summary is
// denied: point at the front office rather than showing an error.
func feeContactNotice(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"notice": "Fee statements are available from the front office.",
	})
}

// mediaStudio is the media equipment booking screen.
func mediaStudio(w http.ResponseWriter, r *http.Request) {
	session, _ := GetSessionFromContext(r.Context())
	resp := map[string]any{
		"section": "media-studio",
		"slots":   []string{"monday-am", "wednesday-pm", "friday-am"},
	}
	if session != nil {
		resp["booked_by"] = session.Email
	}
	WriteJSON(w, http.StatusOK, resp)
}

// dashboardHome lists the sections the signed-in role can reach.
func dashboardHome(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	sections := []string{"/api/messages"}
	if domainauth.RoleSatisfies(session.Role, domainauth.GroupStaffOnly) {
		sections = append(sections, "/api/students", "/api/fines", "/api/fees")
	}
	if domainauth.RoleSatisfies(session.Role, domainauth.GroupTeacherOnly) {
		sections = append(sections, "/api/schedules")
	}
	if session.Role == domainauth.RoleStudent {
		sections = append(sections, "/api/my/schedule")
	}
	if session.Role == domainauth.RoleParent {
		sections = append(sections, "/api/my/fees")
	}
	if session.Role == domainauth.RoleAdmin || session.Role == domainauth.RoleMediaCoordinator {
		sections = append(sections, "/media")
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"role":     session.Role,
		"sections": sections,
	})
}
