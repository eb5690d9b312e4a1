package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/syssam/scaffold/compiler/gen"
	"github.com/syssam/scaffold/compiler/writer"
)

// statusColors maps outcomes to their report color.
var statusColors = map[writer.Status]color.Attribute{
	writer.Written:        color.FgGreen,
	writer.Overwritten:    color.FgGreen,
	writer.Merged:         color.FgGreen,
	writer.Deleted:        color.FgBlue,
	writer.Kept:           color.FgCyan,
	writer.AlreadyPresent: color.FgCyan,
	writer.NotFound:       color.FgYellow,
	writer.Conflict:       color.FgYellow,
	writer.Skipped:        color.FgYellow,
	writer.Failed:         color.FgRed,
}

// statusOrder lists outcomes in summary order.
var statusOrder = []writer.Status{
	writer.Written, writer.Overwritten, writer.Merged, writer.Kept, writer.AlreadyPresent,
	writer.Deleted, writer.NotFound, writer.Conflict, writer.Skipped, writer.Failed,
}

func statusLabel(s writer.Status) string {
	label := fmt.Sprintf("%-15s", s)
	if attr, ok := statusColors[s]; ok {
		return color.New(attr).Sprint(label)
	}
	return label
}

// printReport writes one report, as JSON or as one line per item followed
// by a summary.
func printReport(w io.Writer, r *gen.Report, asJSON bool) error {
	if asJSON {
		b, err := r.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	var b strings.Builder
	title := string(r.Operation)
	if r.Entity != "" {
		title = r.Entity + " (" + title + ")"
	}
	fmt.Fprintln(&b, color.New(color.Bold).Sprint(title))
	for _, it := range r.Items {
		line := "  " + statusLabel(it.Status) + " " + it.Path
		if it.DryRun {
			line += " " + color.New(color.Faint).Sprint("(dry run)")
		}
		if it.Detail != "" && it.Err == nil {
			line += " " + color.New(color.Faint).Sprint("["+it.Detail+"]")
		}
		if it.Err != nil {
			line += "\n    " + color.New(color.FgRed).Sprint(it.Err.Error())
		}
		fmt.Fprintln(&b, line)
	}
	fmt.Fprintln(&b, summary(r))
	_, err := io.WriteString(w, b.String())
	return err
}

// summary counts the items per outcome, e.g. "3 written, 1 conflict".
func summary(r *gen.Report) string {
	var parts []string
	for _, s := range statusOrder {
		if n := r.Count(s); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s))
		}
	}
	if len(parts) == 0 {
		return "nothing to do"
	}
	return strings.Join(parts, ", ")
}

// printReports writes the reports of a manifest run.
func printReports(w io.Writer, reports []*gen.Report, asJSON bool) error {
	if asJSON {
		if reports == nil {
			reports = []*gen.Report{}
		}
		b, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	for _, r := range reports {
		if err := printReport(w, r, false); err != nil {
			return err
		}
	}
	return nil
}
