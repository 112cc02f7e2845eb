package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
)

type GetOptions struct {
	GlobalOptions

	Output string
	JobID  string
}

func DefaultGetOptions() *GetOptions {
	return &GetOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdGet() *cobra.Command {
	o := DefaultGetOptions()
	cmd := &cobra.Command{
		Use:   "get (TYPE | TYPE/ID)",
		Short: "Display one or many jobs or reports.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *GetOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.StringVar(&o.JobID, "job", o.JobID, "Only list the reports of this job")
}

func (o *GetOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *GetOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	kind, _, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}
	if o.JobID != "" {
		if kind != ReportKind {
			return fmt.Errorf("--job only applies to reports")
		}
		if _, err := uuid.Parse(o.JobID); err != nil {
			return fmt.Errorf("invalid job ID: %w", err)
		}
	}

	return validateOutput(o.Output)
}

func (o *GetOptions) Run(ctx context.Context, args []string) error {
	c, err := o.Client()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	errorPrefix := fmt.Sprintf("reading %s/%s", kind, id)
	if id == nil {
		errorPrefix = fmt.Sprintf("listing %s", plural(kind))
	}

	var response any
	switch {
	case kind == JobKind && id != nil:
		response, err = c.GetJob(ctx, *id)
	case kind == JobKind:
		response, err = c.ListJobs(ctx)
	case kind == ReportKind && id != nil:
		response, err = c.GetReport(ctx, *id)
	case kind == ReportKind:
		var jobID *uuid.UUID
		if o.JobID != "" {
			parsed := uuid.MustParse(o.JobID)
			jobID = &parsed
		}
		response, err = c.ListReports(ctx, jobID)
	default:
		return fmt.Errorf("unsupported resource kind: %s", kind)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", errorPrefix, err)
	}

	w := o.writer()
	if done, err := printStructured(w, o.Output, response); done {
		return err
	}
	return printTable(w, response)
}

func printTable(out io.Writer, response any) error {
	w := tabwriter.NewWriter(out, 0, 8, 1, '\t', 0)
	switch r := response.(type) {
	case api.JobList:
		printJobsTable(w, r...)
	case *api.Job:
		printJobsTable(w, *r)
	case api.ReportList:
		printReportsTable(w, r...)
	case *api.Report:
		printReportsTable(w, *r)
	default:
		return fmt.Errorf("unknown resource type %T", response)
	}
	return w.Flush()
}

func printJobsTable(w io.Writer, jobs ...api.Job) {
	fmt.Fprintln(w, "ID\tNUMBER\tCUSTOMER\tSITE")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", j.Id, j.Number, j.Customer, j.Site)
	}
}

func printReportsTable(w io.Writer, reports ...api.Report) {
	fmt.Fprintln(w, "ID\tJOB\tTYPE\tSTATUS\tTITLE")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Id, r.JobId, r.Type, r.Status, r.Title)
	}
}
