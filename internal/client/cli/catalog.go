package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobly/internal/client/client"
	"github.com/dmitrijs2005/jobly/internal/client/models"
)

const noResults = "Sorry, no results were found!"

// Companies lists companies, optionally filtered by a name fragment.
func (a *App) Companies(ctx context.Context, args []string) error {
	filter := models.CompanyFilter{Name: strings.Join(args, " ")}

	companies, err := a.catalog.ListCompanies(ctx, filter)
	if err != nil {
		a.printErrors(client.Messages(err))
		return err
	}
	if len(companies) == 0 {
		a.printf("%s\n", noResults)
		return nil
	}
	for _, c := range companies {
		a.printf("%s\n", c)
	}
	return nil
}

// Company shows one company with its open jobs.
func (a *App) Company(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Usage: company <handle>\n")
		return nil
	}

	c, err := a.catalog.GetCompany(ctx, args[0])
	if err != nil {
		a.printErrors(client.Messages(err))
		return err
	}

	a.printf("%s\n", c.Name)
	if c.Description != "" {
		a.printf("%s\n", c.Description)
	}
	if len(c.Jobs) == 0 {
		a.printf("No open jobs.\n")
		return nil
	}
	for _, j := range c.Jobs {
		a.printJob(j)
	}
	return nil
}

// Jobs prompts for the search form and lists matching jobs.
func (a *App) Jobs(ctx context.Context) error {
	var filter models.JobFilter
	var err error

	if filter.Title, err = getSimpleText(a.reader, "Title (blank for any)", a.out); err != nil {
		return err
	}
	if filter.MinSalary, err = GetOptionalInt(a.reader, "Minimum salary (blank for any)", a.out); err != nil {
		a.printErrors([]string{err.Error()})
		return nil
	}
	if filter.HasEquity, err = GetYesNo(a.reader, "Only jobs with equity?", a.out); err != nil {
		return err
	}

	jobs, err := a.catalog.ListJobs(ctx, filter)
	if err != nil {
		a.printErrors(client.Messages(err))
		return err
	}
	if len(jobs) == 0 {
		a.printf("%s\n", noResults)
		return nil
	}
	for _, j := range jobs {
		a.printJob(j)
	}
	return nil
}

func (a *App) Job(ctx context.Context, args []string) error {
	id, ok := a.jobIDArg("job", args)
	if !ok {
		return nil
	}

	j, err := a.catalog.GetJob(ctx, id)
	if err != nil {
		a.printErrors(client.Messages(err))
		return err
	}
	a.printJob(*j)
	return nil
}

// Apply applies the current user to a job and prints the outcome.
func (a *App) Apply(ctx context.Context, args []string) error {
	id, ok := a.jobIDArg("apply", args)
	if !ok {
		return nil
	}

	j, err := a.catalog.GetJob(ctx, id)
	if err != nil {
		a.printErrors(client.Messages(err))
		return nil
	}

	res := a.session.ApplyToJob(ctx, j.ID, j.Title)
	if !res.Success {
		a.printErrors(res.Errors)
		return nil
	}
	a.printLatestFlash()
	return nil
}

func (a *App) jobIDArg(cmd string, args []string) (int, bool) {
	if len(args) == 0 {
		a.printf("Usage: %s <id>\n", cmd)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		a.printf("Invalid job id: %s\n", args[0])
		return 0, false
	}
	return id, true
}

func (a *App) printJob(j models.Job) {
	marker := "   "
	if a.session.HasApplied(j.ID) {
		marker = "[x]"
	}
	a.printf("%s %s\n", marker, j)
}
