package main

import (
	"fmt"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

func runList(c client, cmd listCmd) error {
	list, err := c.listExperiments(app.FilterExperiments{Status: cmd.Status, Kind: cmd.Kind})
	if err != nil {
		return err
	}
	renderTable(list)
	return nil
}

func runShow(c client, cmd showCmd) error {
	e, err := c.getExperiment(cmd.ID)
	if err != nil {
		return err
	}
	renderExperiment(e)
	return nil
}

func runCommand(c client, cmd commandCmd) error {
	line, err := c.getCommand(cmd.ID)
	if err != nil {
		return err
	}
	fmt.Println(line)
	return nil
}

func runRequeue(c client, cmd requeueCmd) error {
	e, err := c.requeueExperiment(cmd.ID)
	if err != nil {
		return err
	}
	fmt.Printf("The experiment #%d is back to the queue\n", e.ID)
	return nil
}

func runCancel(c client, cmd cancelCmd) error {
	err := c.cancelExperiment(cmd.ID)
	if err != nil {
		return err
	}
	fmt.Printf("The experiment #%d is canceled\n", cmd.ID)
	return nil
}

func renderTable(list []app.Experiment) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tKIND\tENV\tSTATUS\tMODE\tJOB\tUPDATED")
	for _, e := range list {
		fmt.Fprintf(
			w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Name, e.Kind, e.Env, e.Status, e.Mode, e.JobID, humanize.Time(e.UpdatedAt),
		)
	}
	w.Flush()
}

func renderExperiment(e app.Experiment) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%d\n", e.ID)
	fmt.Fprintf(w, "Kind:\t%s\n", e.Kind)
	fmt.Fprintf(w, "Name:\t%s\n", e.Name)
	if e.Env != "" {
		fmt.Fprintf(w, "Env:\t%s\n", e.Env)
	}
	fmt.Fprintf(w, "Status:\t%s\n", colorStatus(e.Status))
	switch e.Kind {
	case app.ExperimentKindPolicy:
		fmt.Fprintf(w, "Trainer config:\t%s\n", e.TrainerConfig)
		fmt.Fprintf(w, "Agent config:\t%s\n", e.AgentConfig)
		fmt.Fprintf(w, "Env config:\t%s\n", e.EnvConfig)
		if e.EncoderCheckpoint != "" {
			fmt.Fprintf(w, "Encoder checkpoint:\t%s\n", e.EncoderCheckpoint)
		}
		if e.AutoScod {
			fmt.Fprintf(w, "Auto SCOD:\t%s\n", e.ScodConfig)
		}
	case app.ExperimentKindScod:
		fmt.Fprintf(w, "SCOD config:\t%s\n", e.ScodConfig)
		fmt.Fprintf(w, "Policy checkpoint:\t%s\n", e.PolicyCheckpoint)
	}
	fmt.Fprintf(w, "Seed:\t%d\n", e.Seed)
	if len(e.Args) > 0 {
		fmt.Fprintf(w, "Args:\t%s\n", strings.Join(e.Args, " "))
	}
	if e.Mode != "" {
		fmt.Fprintf(w, "Mode:\t%s\n", e.Mode)
	}
	if e.JobID != "" {
		fmt.Fprintf(w, "Job:\t%s\n", e.JobID)
	}
	if e.Host != "" {
		fmt.Fprintf(w, "Host:\t%s\n", e.Host)
	}
	if e.Commit != "" {
		fmt.Fprintf(w, "Commit:\t%s (%s)\n", e.Commit, e.GitBranch)
	}
	if e.OutputPath != "" {
		fmt.Fprintf(w, "Output:\t%s\n", e.OutputPath)
	}
	if e.Command != "" {
		fmt.Fprintf(w, "Command:\t%s\n", e.Command)
	}
	if e.ErrorMsg != nil {
		fmt.Fprintf(w, "Error:\t%s\n", *e.ErrorMsg)
	}
	fmt.Fprintf(w, "Created:\t%s (%s)\n", e.CreatedAt.Format(time.RFC3339), humanize.Time(e.CreatedAt))
	fmt.Fprintf(w, "Updated:\t%s (%s)\n", e.UpdatedAt.Format(time.RFC3339), humanize.Time(e.UpdatedAt))
	w.Flush()
}

func colorStatus(status string) string {
	s := termenv.String(status)
	switch status {
	case app.ExperimentStatusPending:
		s = s.Foreground(termenv.ANSIYellow)
	case app.ExperimentStatusSubmitted:
		s = s.Foreground(termenv.ANSICyan)
	case app.ExperimentStatusRunning:
		s = s.Foreground(termenv.ANSIBlue)
	case app.ExperimentStatusSucceeded:
		s = s.Foreground(termenv.ANSIGreen)
	case app.ExperimentStatusFailed:
		s = s.Foreground(termenv.ANSIRed)
	case app.ExperimentStatusCanceled:
		s = s.Faint()
	}
	return s.String()
}
