package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kampus/admin-console/internal/bootstrap"
	domainauth "github.com/kampus/admin-console/internal/domain/auth"
)

type listSessionsOptions struct {
	Email string
}

type revokeOptions struct {
	Email  string
	DryRun bool
	Yes    bool
}

// sessionLister is the slice of the session store the listing command needs.
type sessionLister interface {
	List(ctx context.Context) ([]domainauth.Session, error)
}

// sessionRevoker revokes every session for an email and reports how many were removed.
type sessionRevoker interface {
	RevokeUser(ctx context.Context, email string) (int, error)
}

func parseListSessionsFlags(args []string) (listSessionsOptions, error) {
	var opts listSessionsOptions
	fs := flag.NewFlagSet("list-sessions", flag.ContinueOnError)
	fs.StringVar(&opts.Email, "email", "", "Only show sessions for this staff email")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Email = strings.ToLower(strings.TrimSpace(opts.Email))
	return opts, nil
}

func parseRevokeFlags(args []string) (revokeOptions, error) {
	var opts revokeOptions
	fs := flag.NewFlagSet("revoke-sessions", flag.ContinueOnError)
	fs.StringVar(&opts.Email, "email", "", "Staff email whose sessions should be revoked (required)")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Show what would be revoked without deleting")
	fs.BoolVar(&opts.Yes, "yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Email = strings.ToLower(strings.TrimSpace(opts.Email))
	if opts.Email == "" {
		return opts, errors.New("--email is required")
	}
	return opts, nil
}

func runListSessions(cmdCtx *commandContext, args []string) error {
	opts, err := parseListSessionsFlags(args)
	if err != nil {
		return err
	}
	return withServices(cmdCtx, func(svcs bootstrap.ServiceContainer) error {
		return listSessions(cmdCtx.Ctx, cmdCtx.Stdout, svcs.Sessions, opts, time.Now())
	})
}

func runRevokeSessions(cmdCtx *commandContext, args []string) error {
	opts, err := parseRevokeFlags(args)
	if err != nil {
		return err
	}
	return withServices(cmdCtx, func(svcs bootstrap.ServiceContainer) error {
		return revokeSessions(&revokeRequest{
			Ctx:     cmdCtx.Ctx,
			Out:     cmdCtx.Stdout,
			In:      cmdCtx.Stdin,
			Lister:  svcs.Sessions,
			Revoker: svcs.Auth,
			Opts:    opts,
		})
	})
}

// withServices connects Redis, builds the service container and closes the
// connection once fn returns.
func withServices(cmdCtx *commandContext, fn func(bootstrap.ServiceContainer) error) error {
	client, err := bootstrap.ConnectSessionRedis(cmdCtx.Ctx, cmdCtx.Config.Redis, cmdCtx.Logger)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer closeRedis(cmdCtx, client)

	svcs, err := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config:      &cmdCtx.Config,
		RedisClient: client,
		Logger:      cmdCtx.Logger,
	})
	if err != nil {
		return err
	}
	return fn(svcs)
}

func closeRedis(cmdCtx *commandContext, client redis.UniversalClient) {
	if err := client.Close(); err != nil {
		cmdCtx.Logger.ErrorContext(cmdCtx.Ctx, "close redis failed", "error", err)
	}
}

func listSessions(ctx context.Context, w io.Writer, store sessionLister, opts listSessionsOptions, now time.Time) error {
	sessions, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	sessions = filterByEmail(sessions, opts.Email)
	if len(sessions) == 0 {
		return writeln(w, "No sessions found.")
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Email != sessions[j].Email {
			return sessions[i].Email < sessions[j].Email
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if err := writeln(tw, "EMAIL\tSESSION\tCREATED\tEXPIRES IN\tPERMISSIONS"); err != nil {
		return err
	}
	for _, s := range sessions {
		if err := writef(tw, "%s\t%s\t%s\t%s\t%s\n",
			s.Email,
			shortID(s.ID),
			s.CreatedAt.UTC().Format(time.RFC3339),
			renderTTL(s.ExpiresAt.Sub(now)),
			renderPermissions(s.Permissions),
		); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush session table: %w", err)
	}
	return writef(w, "\n%d session(s)\n", len(sessions))
}

type revokeRequest struct {
	Ctx     context.Context
	Out     io.Writer
	In      io.Reader
	Lister  sessionLister
	Revoker sessionRevoker
	Opts    revokeOptions
}

func revokeSessions(req *revokeRequest) error {
	if req.Opts.DryRun {
		sessions, err := req.Lister.List(req.Ctx)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		n := len(filterByEmail(sessions, req.Opts.Email))
		return writef(req.Out, "Dry run: %d session(s) for %s would be revoked.\n", n, req.Opts.Email)
	}

	if !req.Opts.Yes {
		if err := confirmAction(req.In, req.Out, "revoke all sessions for "+req.Opts.Email); err != nil {
			return err
		}
	}

	n, err := req.Revoker.RevokeUser(req.Ctx, req.Opts.Email)
	if err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return writef(req.Out, "Revoked %d session(s) for %s.\n", n, req.Opts.Email)
}

func confirmAction(in io.Reader, out io.Writer, action string) error {
	if err := writef(out, "About to %s.\n", action); err != nil {
		return fmt.Errorf("print confirmation message: %w", err)
	}
	if err := write(out, "Continue? [y/N]: "); err != nil {
		return fmt.Errorf("print confirmation prompt: %w", err)
	}
	resp, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read confirmation: %w", err)
	}
	resp = strings.ToLower(strings.TrimSpace(resp))
	if resp == "y" || resp == "yes" {
		return nil
	}
	return errors.New("aborted by user")
}

func filterByEmail(sessions []domainauth.Session, email string) []domainauth.Session {
	if email == "" {
		return sessions
	}
	out := sessions[:0:0]
	for _, s := range sessions {
		if strings.EqualFold(s.Email, email) {
			out = append(out, s)
		}
	}
	return out
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func renderTTL(d time.Duration) string {
	if d <= 0 {
		return "expired"
	}
	return d.Truncate(time.Second).String()
}

func renderPermissions(p domainauth.Permissions) string {
	var granted []string
	for _, k := range domainauth.AllPermissions() {
		if p.Has(k) {
			granted = append(granted, strings.TrimPrefix(string(k), "can_"))
		}
	}
	if len(granted) == 0 {
		return "-"
	}
	return strings.Join(granted, ",")
}
