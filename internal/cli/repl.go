package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"jobdesk/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Check(requiredRole string) Decision

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Jobs(ctx context.Context, args []string) error
	JobDetails(ctx context.Context, args []string) error
	PostJob(ctx context.Context) error
	EditJob(ctx context.Context, args []string) error
	DeleteJob(ctx context.Context, args []string) error
	MyJobs(ctx context.Context) error

	Apply(ctx context.Context, args []string) error
	MyApplications(ctx context.Context) error
	Withdraw(ctx context.Context, args []string) error
	Applicants(ctx context.Context, args []string) error
	SetStatus(ctx context.Context, args []string) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	UploadResume(ctx context.Context, args []string) error
}

// commandRoles maps protected commands to the role they require.
// "" means any authenticated user; commands absent from the map are public.
var commandRoles = map[string]string{
	"apply":        common.RoleJobSeeker,
	"applications": common.RoleJobSeeker,
	"resume":       common.RoleJobSeeker,
	"withdraw":     "",
	"profile":      "",
	"editprofile":  "",
	"logout":       "",
	"postjob":      common.RoleEmployer,
	"editjob":      common.RoleEmployer,
	"deletejob":    common.RoleEmployer,
	"myjobs":       common.RoleEmployer,
	"applicants":   common.RoleEmployer,
	"setstatus":    common.RoleEmployer,
}

// gate consults the guard for cmd and reports whether the command may run,
// printing the appropriate notice when it may not. A loading session defers
// with a neutral message; it never redirects to login.
func gate(a execIface, cmd string) bool {
	role, protected := commandRoles[cmd]
	if !protected {
		return true
	}
	switch a.Check(role) {
	case DecisionDefer:
		printlnFn("Session is still loading, try again in a moment.")
		return false
	case DecisionLogin:
		printlnFn("Please log in first.")
		return false
	case DecisionForbidden:
		printlnFn(fmt.Sprintf("This command is only available to %s accounts.", role))
		return false
	}
	return true
}

// runREPL starts a read–eval–print loop for the jobdesk CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, consults the guard for protected commands, and dispatches to
// methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Welcome to jobdesk (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("jobdesk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			printHelp(a)
			continue
		}

		if !gate(a, cmd) {
			continue
		}

		switch cmd {
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "jobs":
			_ = a.Jobs(ctx, args)
		case "job":
			_ = a.JobDetails(ctx, args)
		case "postjob":
			_ = a.PostJob(ctx)
		case "editjob":
			_ = a.EditJob(ctx, args)
		case "deletejob":
			_ = a.DeleteJob(ctx, args)
		case "myjobs":
			_ = a.MyJobs(ctx)

		case "apply":
			_ = a.Apply(ctx, args)
		case "applications":
			_ = a.MyApplications(ctx)
		case "withdraw":
			_ = a.Withdraw(ctx, args)
		case "applicants":
			_ = a.Applicants(ctx, args)
		case "setstatus":
			_ = a.SetStatus(ctx, args)

		case "profile":
			_ = a.Profile(ctx)
		case "editprofile":
			_ = a.EditProfile(ctx)
		case "resume":
			_ = a.UploadResume(ctx, args)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	printlnFn("Browse: jobs [-search s] [-location l] [-type t] [-level e] [-page n], job <id>")
	switch {
	case a.Check(common.RoleJobSeeker) == DecisionAllow:
		printlnFn("Job seeker: apply <jobID>, applications, withdraw <id>, profile, editprofile, resume <path>, logout")
	case a.Check(common.RoleEmployer) == DecisionAllow:
		printlnFn("Employer: postjob, editjob <id>, deletejob <id>, myjobs, applicants <jobID>, setstatus <id> <status>, profile, editprofile, logout")
	default:
		printlnFn("Account: register, login")
	}
	printlnFn("Other: help, exit")
}
