package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/adamlaw669/Curio/internal/analytics"
	"github.com/adamlaw669/Curio/internal/appstate"
	"github.com/adamlaw669/Curio/internal/catalog"
	"github.com/adamlaw669/Curio/internal/config"
	"github.com/adamlaw669/Curio/internal/llm"
	"github.com/adamlaw669/Curio/internal/logger"
	"github.com/adamlaw669/Curio/internal/store"
	"github.com/adamlaw669/Curio/internal/ui/render"
)

// env is everything a command needs: the seeded catalog with recorded
// events replayed, the analytics service over it, and the signed-in
// session.
type env struct {
	ctx    context.Context
	cfg    config.Config
	log    *logger.Logger
	store  *store.Store
	events store.EventRepo
	cat    *catalog.Catalog
	svc    *analytics.Service
	state  *appstate.Holder
	out    io.Writer
	render render.Renderer
	now    func() time.Time
	newID  func() string
}

func openEnv(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	e := &env{
		ctx:    ctx,
		cfg:    cfg,
		log:    log.With("db", dbPath),
		store:  st,
		events: st.EventRepo(),
		cat:    catalog.Default(),
		out:    cmd.OutOrStdout(),
		render: render.Renderer{Color: useColor(cmd)},
		now:    time.Now,
		newID:  uuid.NewString,
	}

	skipped, err := store.Replay(ctx, e.events, e.cat)
	if err != nil {
		e.Close()
		return nil, err
	}
	for _, s := range skipped {
		e.log.Warn("skipping recorded event", "error", s)
	}
	e.svc = analytics.New(e.cat)

	e.state, err = appstate.Load(ctx, st.StateRepo(), appstate.WithLogger(e.log))
	if err != nil {
		e.Close()
		return nil, err
	}
	if p := e.state.Snapshot().CurrentStudentProfile; p != nil {
		if err := e.cat.UpsertProfile(*p); err != nil {
			e.log.Warn("ignoring stored profile", "user", p.UserID, "error", err)
		}
	}
	if err := e.state.Hydrate(e.cat); err != nil {
		e.Close()
		return nil, fmt.Errorf("hydrate session: %w", err)
	}

	e.log.Debug("environment ready", "assessments", e.cat.AssessmentCount(), "skipped", len(skipped))
	return e, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("closing store", "error", err)
	}
	e.log.Sync()
}

// provider builds the configured LLM provider, or returns nil when none
// is configured or it cannot be built.
func (e *env) provider() llm.Provider {
	if !e.cfg.LLMEnabled() {
		return nil
	}
	p, err := llm.NewProvider(e.ctx, e.cfg.LLM, e.events, e.log)
	if err != nil {
		e.log.Warn("LLM provider unavailable", "provider", e.cfg.LLM.Provider, "error", err)
		return nil
	}
	return p
}

// studentArg resolves the student a command acts on: the first argument
// when given, otherwise the signed-in user.
func (e *env) studentArg(args []string) (catalog.User, error) {
	id := ""
	if len(args) > 0 {
		id = args[0]
	} else if u := e.state.Snapshot().CurrentUser; u != nil {
		id = u.ID
	}
	if id == "" {
		return catalog.User{}, fmt.Errorf("no student given and nobody is signed in")
	}
	u, ok := e.cat.FindStudent(id)
	if !ok {
		return catalog.User{}, fmt.Errorf("student %q: %w", id, analytics.ErrUnknownStudent)
	}
	return u, nil
}

func (e *env) today() string {
	return e.now().UTC().Format(catalog.DateLayout)
}

// recordAssessment validates a, writes it to the store, then adds it to
// the catalog and, when it belongs to the signed-in user, the session log.
// A failed store write leaves the catalog untouched.
func (e *env) recordAssessment(a catalog.Assessment) error {
	if err := catalog.CheckAssessment(a); err != nil {
		return err
	}
	if err := e.events.AppendAssessment(e.ctx, a); err != nil {
		return fmt.Errorf("store assessment: %w", err)
	}
	if err := e.cat.AppendAssessment(a); err != nil {
		return err
	}
	if u := e.state.Snapshot().CurrentUser; u != nil && u.ID == a.StudentID {
		e.state.AppendAssessment(a)
	}
	return nil
}

// recordEngagement is recordAssessment for engagement.
func (e *env) recordEngagement(g catalog.Engagement) error {
	if err := catalog.CheckEngagement(g); err != nil {
		return err
	}
	if err := e.events.AppendEngagement(e.ctx, g); err != nil {
		return fmt.Errorf("store engagement: %w", err)
	}
	if err := e.cat.AppendEngagement(g); err != nil {
		return err
	}
	if u := e.state.Snapshot().CurrentUser; u != nil && u.ID == g.StudentID {
		e.state.AppendEngagement(g)
	}
	return nil
}

func useColor(cmd *cobra.Command) bool {
	if off, _ := cmd.Flags().GetBool("no-color"); off {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func withEnv(run func(e *env, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		return run(e, cmd, args)
	}
}
