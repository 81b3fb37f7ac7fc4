package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"jobdesk/internal/models"
)

// Apply submits an application with a cover letter for the given job.
func (a *App) Apply(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: apply <jobID>")
		return nil
	}

	coverLetter, err := GetMultiline(a.reader, "Cover letter:", a.out)
	if err != nil {
		return err
	}

	app, err := a.client.Apply(ctx, models.ApplicationRequest{JobID: args[0], CoverLetter: coverLetter})
	if err != nil {
		fmt.Fprintln(a.out, apiMessage(err, "Could not submit application."))
		return err
	}

	fmt.Fprintf(a.out, "Application %s submitted (status: %s).\n", app.ID, app.Status)
	return nil
}

// MyApplications lists the job seeker's submitted applications with their
// review status. A fetch failure renders as an empty list.
func (a *App) MyApplications(ctx context.Context) error {
	apps, err := a.client.MyApplications(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching applications failed", "error", err)
		fmt.Fprintln(a.out, "Could not fetch your applications.")
		apps = nil
	}
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications yet.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tJOB\tSTATUS\tAPPLIED")
	for _, app := range apps {
		title := app.JobID
		if app.Job != nil {
			title = app.Job.Title
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", app.ID, title, app.Status, app.AppliedAt.Format("2006-01-02"))
	}
	_ = tw.Flush()
	return nil
}

// Withdraw deletes one of the user's applications.
func (a *App) Withdraw(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: withdraw <applicationID>")
		return nil
	}

	if err := a.client.DeleteApplication(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, apiMessage(err, "Could not withdraw application."))
		return err
	}
	fmt.Fprintln(a.out, "Application withdrawn.")
	return nil
}

// Applicants lists the applications submitted to one of the employer's jobs.
func (a *App) Applicants(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: applicants <jobID>")
		return nil
	}

	apps, err := a.client.JobApplications(ctx, args[0])
	if err != nil {
		a.log.Error(ctx, "fetching applicants failed", "job", args[0], "error", err)
		fmt.Fprintln(a.out, "Could not fetch applicants.")
		apps = nil
	}
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applicants for this job.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAPPLICANT\tEMAIL\tSTATUS")
	for _, app := range apps {
		name, email := "", ""
		if app.Applicant != nil {
			name, email = app.Applicant.Name, app.Applicant.Email
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", app.ID, name, email, app.Status)
	}
	_ = tw.Flush()
	return nil
}

// SetStatus moves an application through the review flow.
func (a *App) SetStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintf(a.out, "Usage: setstatus <applicationID> <%s>\n", strings.Join(models.ApplicationStatuses, "|"))
		return nil
	}

	status := args[1]
	if !models.ValidStatus(status) {
		fmt.Fprintf(a.out, "Unknown status %q, expected one of: %s\n", status, strings.Join(models.ApplicationStatuses, ", "))
		return nil
	}

	app, err := a.client.UpdateApplicationStatus(ctx, args[0], status)
	if err != nil {
		fmt.Fprintln(a.out, apiMessage(err, "Could not update application status."))
		return err
	}

	fmt.Fprintf(a.out, "Application %s is now %s.\n", app.ID, app.Status)
	return nil
}
