package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/splanner/internal/content"
	"github.com/alexanderramin/splanner/internal/credential"
	"github.com/alexanderramin/splanner/internal/domain"
	"github.com/alexanderramin/splanner/internal/generation"
	"github.com/alexanderramin/splanner/internal/planfile"
	"github.com/alexanderramin/splanner/internal/repository"
	"github.com/alexanderramin/splanner/internal/service"
	"github.com/alexanderramin/splanner/internal/store"
	"github.com/alexanderramin/splanner/internal/testutil"
)

type fakeGateway struct {
	mu     sync.Mutex
	topics []string
	result *generation.Result
	err    error
}

func (g *fakeGateway) Model() string { return "fake-model" }

func (g *fakeGateway) NeedsCredential() bool { return true }

func (g *fakeGateway) Generate(_ context.Context, _ domain.Credential, req generation.Request) (*generation.Result, error) {
	g.mu.Lock()
	g.topics = append(g.topics, req.Topic)
	g.mu.Unlock()
	return g.result, g.err
}

func (g *fakeGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.topics)
}

type testEnv struct {
	app   *App
	gw    *fakeGateway
	creds *credential.Manager
	dir   string
}

// testApp wires the real services over an in-memory database and a fake
// gateway. env stands in for the process environment.
func testApp(t *testing.T, env map[string]string) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	creds := credential.NewManager(repository.NewSQLiteCredentialRepo(database), testutil.NewTestUoW(database)).
		WithEnv(func(k string) string { return env[k] })
	logRepo := repository.NewSQLiteGenerationLogRepo(database)
	gw := &fakeGateway{result: &generation.Result{Content: sampleContent(), Model: "fake-model", LatencyMs: 42}}

	app := &App{
		Lessons: func(plan domain.LessonPlan) service.LessonService {
			return service.NewLessonService(store.New(plan), gw, creds, logRepo)
		},
		Credentials:   service.NewCredentialService(creds),
		History:       service.NewHistoryService(logRepo),
		IsInteractive: func() bool { return false },
	}
	return &testEnv{app: app, gw: gw, creds: creds, dir: t.TempDir()}
}

func (e *testEnv) path(name string) string {
	return filepath.Join(e.dir, name)
}

// writePlan saves plan under the env's temp dir and returns its path.
func (e *testEnv) writePlan(t *testing.T, plan domain.LessonPlan) string {
	t.Helper()
	p := e.path("lesson.json")
	require.NoError(t, planfile.Save(p, plan))
	return p
}

func sampleContent() *content.PartialContent {
	return &content.PartialContent{
		Knowledge:      []string{"Nhận biết phân số", "So sánh hai phân số"},
		MathCompetency: testutil.Str("Giải quyết vấn đề toán học"),
		Startup: &content.StartupContent{
			Objective:   testutil.Str("Gợi mở về phân số"),
			Instruction: testutil.Str("Chia bánh cho 4 bạn"),
		},
		Formation: []content.FormationContent{
			{Title: testutil.Str("Khái niệm phân số"), Objective: testutil.Str("Hiểu phân số")},
		},
	}
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdWithInput(t, app, nil, args...)
}

func executeCmdWithInput(t *testing.T, app *App, in io.Reader, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	if in != nil {
		root.SetIn(in)
	} else {
		root.SetIn(strings.NewReader(""))
	}
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
