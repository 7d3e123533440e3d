package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexmoren/studyplan/internal/repository"
	"github.com/alexmoren/studyplan/internal/service"
	"github.com/alexmoren/studyplan/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	classRepo := repository.NewSQLiteClassRepo(db)
	taskRepo := repository.NewSQLiteTaskRepo(db)
	profileRepo := repository.NewSQLiteProfileRepo(db)
	scheduleRepo := repository.NewSQLiteScheduleRepo(db)

	return &App{
		Classes:  service.NewClassService(classRepo),
		Tasks:    service.NewTaskService(taskRepo, classRepo),
		Profile:  service.NewProfileService(profileRepo),
		Workload: service.NewWorkloadService(taskRepo, classRepo, profileRepo, nil),
		Plans:    service.NewPlanService(taskRepo, classRepo, profileRepo, scheduleRepo, nil),
		// Intelligence left nil — LLM disabled in tests.
		IsInteractive: func() bool { return false },
	}
}

// execute runs a command through the Cobra tree and captures its output.
func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	err := root.Execute()
	return buf.String(), err
}

func TestClassAddAndList(t *testing.T) {
	app := testApp(t)

	out, err := execute(t, app, "class", "add", "Calculus", "--code", "MATH201")
	require.NoError(t, err)
	assert.Contains(t, out, "Added class Calculus")

	out, err = execute(t, app, "class", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculus")
	assert.Contains(t, out, "MATH201")
}

func TestClassRemove_ByName(t *testing.T) {
	app := testApp(t)

	_, err := execute(t, app, "class", "add", "Biology")
	require.NoError(t, err)
	_, err = execute(t, app, "class", "remove", "biology")
	require.NoError(t, err)

	out, err := execute(t, app, "class", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No classes yet")
}

func TestTaskLifecycle(t *testing.T) {
	app := testApp(t)

	_, err := execute(t, app, "class", "add", "Calculus")
	require.NoError(t, err)

	due := time.Now().UTC().AddDate(0, 0, 5).Format("2006-01-02")
	out, err := execute(t, app, "task", "add", "Problem set 3",
		"--class", "Calculus", "--type", "assignment", "--due", due)
	require.NoError(t, err)
	assert.Contains(t, out, "Added task Problem set 3")

	out, err = execute(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Problem set 3")

	tasks, err := app.Tasks.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	_, err = execute(t, app, "task", "done", tasks[0].ID[:8])
	require.NoError(t, err)

	out, err = execute(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found")

	out, err = execute(t, app, "task", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Problem set 3")
}

func TestTaskAdd_RejectsBadDueDate(t *testing.T) {
	app := testApp(t)
	_, err := execute(t, app, "task", "add", "Essay", "--due", "next tuesday")
	assert.Error(t, err)
}

func TestTaskAdd_UnknownClass(t *testing.T) {
	app := testApp(t)
	_, err := execute(t, app, "task", "add", "Essay", "--class", "Underwater Basket Weaving")
	assert.Error(t, err)
}

func TestProfileSetAndWindow(t *testing.T) {
	app := testApp(t)

	_, err := execute(t, app, "profile", "set", "--focus", "40", "--daily-limit", "3.5")
	require.NoError(t, err)

	out, err := execute(t, app, "profile", "window", "mon", "18:00", "21:00", "--productivity", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Monday 18:00–21:00")

	out, err = execute(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "40m")
	assert.Contains(t, out, "3.5h")
	assert.Contains(t, out, "Monday")
}

func TestProfileWindow_RejectsBadWeekday(t *testing.T) {
	app := testApp(t)
	_, err := execute(t, app, "profile", "window", "someday", "18:00", "21:00")
	assert.Error(t, err)
}

func TestWorkloadCommand(t *testing.T) {
	app := testApp(t)

	_, err := execute(t, app, "class", "add", "Calculus")
	require.NoError(t, err)
	due := time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02")
	_, err = execute(t, app, "task", "add", "Midterm", "--class", "Calculus", "--type", "exam", "--due", due)
	require.NoError(t, err)

	out, err := execute(t, app, "workload")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculus")
	assert.Contains(t, out, "WORKLOAD")
}

func TestPlanGenerateAndShow(t *testing.T) {
	app := testApp(t)

	for _, day := range []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"} {
		_, err := execute(t, app, "profile", "window", day, "09:00", "12:00")
		require.NoError(t, err)
	}
	_, err := execute(t, app, "class", "add", "Calculus")
	require.NoError(t, err)
	due := time.Now().UTC().AddDate(0, 0, 5).Format("2006-01-02")
	_, err = execute(t, app, "task", "add", "Midterm", "--class", "Calculus", "--type", "exam", "--due", due)
	require.NoError(t, err)

	out, err := execute(t, app, "plan", "generate", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "sessions")
	assert.Contains(t, out, "Calculus")

	out, err = execute(t, app, "plan", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Schedule")
}

func TestPlanGenerate_DryRunDoesNotPersist(t *testing.T) {
	app := testApp(t)

	_, err := execute(t, app, "profile", "window", "mon", "09:00", "12:00")
	require.NoError(t, err)
	_, err = execute(t, app, "class", "add", "Calculus")
	require.NoError(t, err)
	_, err = execute(t, app, "task", "add", "Quiz", "--class", "Calculus", "--type", "quiz")
	require.NoError(t, err)

	_, err = execute(t, app, "plan", "generate", "--dry-run")
	require.NoError(t, err)

	_, err = execute(t, app, "plan", "show")
	assert.Error(t, err)
}

func TestPlanGenerate_RejectsUnknownGoal(t *testing.T) {
	app := testApp(t)
	_, err := execute(t, app, "plan", "generate", "--goal", "cram_everything")
	assert.Error(t, err)
}

func TestImportCommand(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "semester.json")
	payload := `{
		"classes": [
			{"ref": "calc", "name": "Calculus", "code": "MATH201"},
			{"ref": "bio", "name": "Biology"}
		],
		"tasks": [
			{"class_ref": "calc", "title": "Problem set 3", "type": "assignment", "due_date": "2026-03-10"},
			{"class_ref": "bio", "title": "Reading ch. 4", "type": "reading"}
		],
		"profile": {
			"focus_session_min": 45,
			"windows": [{"day": "Monday", "start": "18:00", "end": "21:00", "productivity": 7}]
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	out, err := execute(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 classes and 2 tasks")
	assert.Contains(t, out, "study profile")

	out, err = execute(t, app, "class", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculus")
	assert.Contains(t, out, "Biology")

	out, err = execute(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "45m")
}

func TestImportCommand_InvalidFile(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tasks":[{"type":"karaoke"}]}`), 0o644))

	out, err := execute(t, app, "import", path)
	assert.Error(t, err)
	assert.Contains(t, out, "invalid")
}
