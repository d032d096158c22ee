package cli_test

import (
	"bytes"
	"context"
	"testing"

	"todoist/internal/cli"
	"todoist/internal/commands"
	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/service"
	"todoist/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService
// and counts invocations.
func testFactory(svc *testutil.FakeService, calls *int) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		if calls != nil {
			*calls++
		}
		return svc, nil
	}
}

func run(t *testing.T, svc *testutil.FakeService, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc, nil))
	var outBuf, errBuf bytes.Buffer
	code = dispatcher.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_NoArgsPrintsHelp(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")
	stdout, stderr, code := run(t, testutil.NewFakeService())

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != commands.HelpText {
		t.Errorf("expected help text, got %q", stdout)
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")
	_, stderr, code := run(t, testutil.NewFakeService(), "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")
	_, stderr, code := run(t, testutil.NewFakeService(), "--debug")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --debug\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")
	_, stderr, code := run(t, testutil.NewFakeService(), "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_MissingAPIKey(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "")

	calls := 0
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService(), &calls))
	var outBuf, errBuf bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"tasks"}, &outBuf, &errBuf)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if errBuf.String() != config.MissingKeyHelp {
		t.Errorf("expected remediation message, got %q", errBuf.String())
	}
	// No service construction and no remote call without a credential.
	if calls != 0 {
		t.Errorf("expected factory never invoked, got %d calls", calls)
	}
}

func TestDispatcher_MissingAPIKeyHelpStillWorks(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "")
	stdout, stderr, code := run(t, testutil.NewFakeService(), "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout == "" {
		t.Error("expected help output")
	}
}

func TestDispatcher_AliasesMatchCanonical(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")

	seed := func() *testutil.FakeService {
		svc := testutil.NewFakeService()
		svc.SeedTask(service.Task{ID: "1001", Content: "Buy milk", Priority: 1})
		return svc
	}

	canonical, _, canonicalCode := run(t, seed(), "tasks")

	for _, alias := range []string{"ls", "list"} {
		stdout, _, code := run(t, seed(), alias)
		if code != canonicalCode {
			t.Errorf("%s: expected exit code %d, got %d", alias, canonicalCode, code)
		}
		if stdout != canonical {
			t.Errorf("%s: expected same output as canonical command\nwant: %q\ngot:  %q", alias, canonical, stdout)
		}
	}
}

func TestDispatcher_DeleteAlias(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")

	svc := testutil.NewFakeService()
	svc.SeedTask(service.Task{ID: "1001", Content: "Buy milk", Priority: 1})

	stdout, stderr, code := run(t, svc, "rm", "1001")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "Task 1001 deleted.\n" {
		t.Errorf("expected delete confirmation, got %q", stdout)
	}
}

func TestDispatcher_CompleteAliases(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")

	for _, alias := range []string{"done", "close", "finish"} {
		svc := testutil.NewFakeService()
		svc.SeedTask(service.Task{ID: "1001", Content: "Buy milk", Priority: 1})

		stdout, _, code := run(t, svc, alias, "1001")
		if code != exitcode.Success {
			t.Errorf("%s: expected exit code %d, got %d", alias, exitcode.Success, code)
		}
		if stdout != "Task 1001 marked as completed.\n" {
			t.Errorf("%s: expected completion confirmation, got %q", alias, stdout)
		}
	}
}

func TestDispatcher_AddDefaultPriority(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")

	svc := testutil.NewFakeService()
	stdout, stderr, code := run(t, svc, "add", "Buy milk")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	task, ok := svc.Task("task-1")
	if !ok {
		t.Fatal("expected task to be created")
	}
	if task.Priority != 1 {
		t.Errorf("expected default priority 1, got %d", task.Priority)
	}
	if task.Due != nil {
		t.Errorf("expected no due date, got %+v", task.Due)
	}

	expected := "Task created successfully!\n" +
		"  ID: task-1\n" +
		"  Content: Buy milk\n" +
		"  Priority: P4 (Normal)\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestDispatcher_AddWithFlags(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")

	svc := testutil.NewFakeService()
	_, stderr, code := run(t, svc, "add", "Meeting", "-d", "tomorrow 3pm", "-P", "4", "--project-id", "p1")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d: %s", exitcode.Success, code, stderr)
	}

	task, ok := svc.Task("task-1")
	if !ok {
		t.Fatal("expected task to be created")
	}
	if task.Priority != 4 {
		t.Errorf("expected priority 4, got %d", task.Priority)
	}
	if task.Due == nil || task.Due.String != "tomorrow 3pm" {
		t.Errorf("expected due string, got %+v", task.Due)
	}
	if task.ProjectID != "p1" {
		t.Errorf("expected project id p1, got %q", task.ProjectID)
	}
}

func TestDispatcher_UpdateFlagsAfterTaskID(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")

	svc := testutil.NewFakeService()
	svc.SeedTask(service.Task{ID: "1001", Content: "Old text", Priority: 1})

	stdout, stderr, code := run(t, svc, "update", "1001", "--content", "New text", "-P", "3")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d: %s", exitcode.Success, code, stderr)
	}
	if stdout != "Task 1001 updated successfully.\n" {
		t.Errorf("expected confirmation, got %q", stdout)
	}

	task, ok := svc.Task("1001")
	if !ok {
		t.Fatal("task disappeared")
	}
	if task.Content != "New text" {
		t.Errorf("expected updated content, got %q", task.Content)
	}
	if task.Priority != 3 {
		t.Errorf("expected priority 3, got %d", task.Priority)
	}
}

func TestDispatcher_FlagsOnBothSidesOfPositional(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")

	svc := testutil.NewFakeService()
	_, stderr, code := run(t, svc, "add", "-d", "friday", "Weekly", "review", "-P", "2")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d: %s", exitcode.Success, code, stderr)
	}

	task, ok := svc.Task("task-1")
	if !ok {
		t.Fatal("expected task to be created")
	}
	if task.Content != "Weekly review" {
		t.Errorf("expected positionals joined as content, got %q", task.Content)
	}
	if task.Priority != 2 {
		t.Errorf("expected priority 2, got %d", task.Priority)
	}
	if task.Due == nil || task.Due.String != "friday" {
		t.Errorf("expected due string, got %+v", task.Due)
	}
}

func TestDispatcher_UnknownFlagAfterPositional(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")

	svc := testutil.NewFakeService()
	_, stderr, code := run(t, svc, "add", "Meeting", "--bogus")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown flag: -bogus\n" {
		t.Errorf("expected unknown flag error, got %q", stderr)
	}
	if len(svc.Calls) != 0 {
		t.Errorf("expected no remote calls, got %v", svc.Calls)
	}
}

func TestDispatcher_UpdateNoFieldsViaDispatch(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")

	svc := testutil.NewFakeService()
	svc.SeedTask(service.Task{ID: "1001", Content: "Old", Priority: 1})

	_, stderr, code := run(t, svc, "update", "1001")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "Error: No updates specified. Use --content, --due, or --priority.\n" {
		t.Errorf("expected no-updates error, got %q", stderr)
	}
	if len(svc.Calls) != 0 {
		t.Errorf("expected no remote calls, got %v", svc.Calls)
	}
}
