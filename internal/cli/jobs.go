package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"jobdesk/internal/models"
)

// Jobs lists the public job board. Filters are given as flags, e.g.:
//
//	jobs -search go -location Riga -type Full-time -level Senior -page 2
//
// A fetch failure is logged and rendered as an empty result, never a crash.
func (a *App) Jobs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("jobs", flag.ContinueOnError)
	fs.SetOutput(a.out)

	var filter models.JobFilter
	fs.StringVar(&filter.Search, "search", "", "title or keyword search")
	fs.StringVar(&filter.Location, "location", "", "location filter")
	fs.StringVar(&filter.JobType, "type", "", "job type filter")
	fs.StringVar(&filter.ExperienceLevel, "level", "", "experience level filter")
	fs.IntVar(&filter.Page, "page", 1, "page number")
	fs.IntVar(&filter.Limit, "limit", 9, "page size")

	if err := fs.Parse(args); err != nil {
		return err
	}

	page, err := a.client.ListJobs(ctx, filter)
	if err != nil {
		a.log.Error(ctx, "fetching jobs failed", "error", err)
		fmt.Fprintln(a.out, "Could not fetch jobs.")
		page = models.JobPage{}
	}

	if len(page.Jobs) == 0 {
		fmt.Fprintln(a.out, "No jobs found.")
		return nil
	}

	a.printJobs(page.Jobs)
	fmt.Fprintf(a.out, "Page %d of %d (%d jobs)\n", page.CurrentPage, page.TotalPages, page.Total)
	return nil
}

func (a *App) printJobs(jobs []models.Job) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCOMPANY\tLOCATION\tTYPE")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", j.ID, j.Title, j.Company, j.Location, j.JobType)
	}
	_ = tw.Flush()
}

// JobDetails shows a single listing.
func (a *App) JobDetails(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: job <id>")
		return nil
	}

	job, err := a.client.Job(ctx, args[0])
	if err != nil {
		a.log.Error(ctx, "fetching job failed", "id", args[0], "error", err)
		fmt.Fprintln(a.out, "Could not fetch job.")
		return err
	}

	fmt.Fprintf(a.out, "%s at %s (%s)\n", job.Title, job.Company, job.Location)
	fmt.Fprintf(a.out, "Type: %s  Level: %s", job.JobType, job.ExperienceLevel)
	if job.Salary != "" {
		fmt.Fprintf(a.out, "  Salary: %s", job.Salary)
	}
	fmt.Fprintln(a.out)
	if len(job.Requirements) > 0 {
		fmt.Fprintf(a.out, "Requirements: %s\n", strings.Join(job.Requirements, ", "))
	}
	fmt.Fprintln(a.out, job.Description)
	return nil
}

// PostJob collects the fields of a new listing and creates it.
func (a *App) PostJob(ctx context.Context) error {
	input, err := a.promptJobInput(models.JobInput{})
	if err != nil {
		return err
	}

	job, err := a.client.CreateJob(ctx, input)
	if err != nil {
		fmt.Fprintln(a.out, apiMessage(err, "Could not create job."))
		return err
	}

	fmt.Fprintf(a.out, "Job %s created.\n", job.ID)
	return nil
}

// EditJob fetches a listing and prompts field by field; an empty answer
// keeps the current value.
func (a *App) EditJob(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: editjob <id>")
		return nil
	}

	job, err := a.client.Job(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, apiMessage(err, "Could not fetch job."))
		return err
	}

	input, err := a.promptJobInput(models.JobInput{
		Title:           job.Title,
		Description:     job.Description,
		Location:        job.Location,
		JobType:         job.JobType,
		ExperienceLevel: job.ExperienceLevel,
		Salary:          job.Salary,
		Requirements:    job.Requirements,
	})
	if err != nil {
		return err
	}

	if _, err := a.client.UpdateJob(ctx, args[0], input); err != nil {
		fmt.Fprintln(a.out, apiMessage(err, "Could not update job."))
		return err
	}

	fmt.Fprintln(a.out, "Job updated.")
	return nil
}

func (a *App) promptJobInput(current models.JobInput) (models.JobInput, error) {
	var zero models.JobInput

	title, err := GetTextWithDefault(a.reader, "Job title", current.Title, a.out)
	if err != nil {
		return zero, err
	}
	location, err := GetTextWithDefault(a.reader, "Location", current.Location, a.out)
	if err != nil {
		return zero, err
	}
	jobType, err := GetTextWithDefault(a.reader,
		fmt.Sprintf("Job type (%s)", strings.Join(models.JobTypes, "/")), current.JobType, a.out)
	if err != nil {
		return zero, err
	}
	level, err := GetTextWithDefault(a.reader,
		fmt.Sprintf("Experience level (%s)", strings.Join(models.ExperienceLevels, "/")), current.ExperienceLevel, a.out)
	if err != nil {
		return zero, err
	}
	salary, err := GetTextWithDefault(a.reader, "Salary (optional)", current.Salary, a.out)
	if err != nil {
		return zero, err
	}
	description, err := GetMultiline(a.reader, "Description:", a.out)
	if err != nil {
		return zero, err
	}
	if description == "" {
		description = current.Description
	}

	return models.JobInput{
		Title:           title,
		Description:     description,
		Location:        location,
		JobType:         jobType,
		ExperienceLevel: level,
		Salary:          salary,
		Requirements:    current.Requirements,
	}, nil
}

// DeleteJob removes one of the employer's listings after confirmation.
func (a *App) DeleteJob(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: deletejob <id>")
		return nil
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete job %s? (y/n)", args[0]), a.out)
	if err != nil {
		return err
	}
	if answer != "y" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.client.DeleteJob(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, apiMessage(err, "Could not delete job."))
		return err
	}
	fmt.Fprintln(a.out, "Job deleted.")
	return nil
}

// MyJobs lists the employer's own postings.
func (a *App) MyJobs(ctx context.Context) error {
	jobs, err := a.client.MyJobs(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching own jobs failed", "error", err)
		fmt.Fprintln(a.out, "Could not fetch your jobs.")
		jobs = nil
	}
	if len(jobs) == 0 {
		fmt.Fprintln(a.out, "You have not posted any jobs.")
		return nil
	}
	a.printJobs(jobs)
	return nil
}
