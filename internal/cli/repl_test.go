package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loading bool
	auth    bool
	role    string

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) Check(requiredRole string) Decision {
	if f.loading {
		return DecisionDefer
	}
	if !f.auth {
		return DecisionLogin
	}
	if requiredRole != "" && requiredRole != f.role {
		return DecisionForbidden
	}
	return DecisionAllow
}

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", nil) }
func (f *fakeExec) Login(ctx context.Context) error {
	f.auth = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.auth = false
	f.role = ""
	return f.record("logout", nil)
}

func (f *fakeExec) Jobs(ctx context.Context, args []string) error { return f.record("jobs", args) }
func (f *fakeExec) JobDetails(ctx context.Context, args []string) error {
	return f.record("job", args)
}
func (f *fakeExec) PostJob(ctx context.Context) error { return f.record("postjob", nil) }
func (f *fakeExec) EditJob(ctx context.Context, args []string) error {
	return f.record("editjob", args)
}
func (f *fakeExec) DeleteJob(ctx context.Context, args []string) error {
	return f.record("deletejob", args)
}
func (f *fakeExec) MyJobs(ctx context.Context) error { return f.record("myjobs", nil) }

func (f *fakeExec) Apply(ctx context.Context, args []string) error { return f.record("apply", args) }
func (f *fakeExec) MyApplications(ctx context.Context) error {
	return f.record("applications", nil)
}
func (f *fakeExec) Withdraw(ctx context.Context, args []string) error {
	return f.record("withdraw", args)
}
func (f *fakeExec) Applicants(ctx context.Context, args []string) error {
	return f.record("applicants", args)
}
func (f *fakeExec) SetStatus(ctx context.Context, args []string) error {
	return f.record("setstatus", args)
}

func (f *fakeExec) Profile(ctx context.Context) error     { return f.record("profile", nil) }
func (f *fakeExec) EditProfile(ctx context.Context) error { return f.record("editprofile", nil) }
func (f *fakeExec) UploadResume(ctx context.Context, args []string) error {
	return f.record("resume", args)
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"jobs -search go",
		"login",
		"apply job1",
		"applications",
		"withdraw app1",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{role: "jobseeker"}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"jobs", "login", "apply", "applications", "withdraw"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ProtectedCommandBeforeLogin(t *testing.T) {
	lines := silencePrintln(t)

	input := strings.NewReader("apply job1\nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	found := false
	for _, l := range *lines {
		if strings.Contains(l, "Please log in first.") {
			found = true
		}
	}
	if !found {
		t.Fatalf("login redirect message not printed, got %v", *lines)
	}
}

func TestRunREPL_RoleMismatchForbidden(t *testing.T) {
	lines := silencePrintln(t)

	input := strings.NewReader("postjob\nexit\n")
	exec := &fakeExec{auth: true, role: "jobseeker"}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	found := false
	for _, l := range *lines {
		if strings.Contains(l, "only available to employer accounts") {
			found = true
		}
	}
	if !found {
		t.Fatalf("forbidden message not printed, got %v", *lines)
	}
}

func TestRunREPL_LoadingSessionDefers(t *testing.T) {
	lines := silencePrintln(t)

	input := strings.NewReader("profile\nexit\n")
	exec := &fakeExec{loading: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	foundDefer, foundLogin := false, false
	for _, l := range *lines {
		if strings.Contains(l, "still loading") {
			foundDefer = true
		}
		if strings.Contains(l, "Please log in first.") {
			foundLogin = true
		}
	}
	if !foundDefer {
		t.Fatalf("defer message not printed, got %v", *lines)
	}
	if foundLogin {
		t.Fatalf("loading session must not redirect to login, got %v", *lines)
	}
}

func TestRunREPL_ArgsPassedThrough(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("setstatus app1 accepted\nquit\n")
	exec := &fakeExec{auth: true, role: "employer"}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "setstatus" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	got := exec.args[0]
	if len(got) != 2 || got[0] != "app1" || got[1] != "accepted" {
		t.Fatalf("unexpected args: %v", got)
	}
}

func TestRunREPL_PublicCommandsNeedNoSession(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("jobs\njob job1\nexit\n")
	exec := &fakeExec{loading: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 2 || exec.calls[0] != "jobs" || exec.calls[1] != "job" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
