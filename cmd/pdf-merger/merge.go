package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/pdf-merger/internal/config"
	"github.com/ytget/pdf-merger/internal/merge"
	"github.com/ytget/pdf-merger/internal/model"
	"github.com/ytget/pdf-merger/internal/platform"
)

// errNoOutput is returned when neither --output nor a job file names the destination.
var errNoOutput = errors.New("no output file: use --output or a job file with an output entry")

// mergeOptions collects flag, config and job file values for one run.
type mergeOptions struct {
	Files      []string
	Output     string
	Divider    bool
	Validation string
	SaveJob    string
}

var mergeCmd = &cobra.Command{
	Use:   "merge [files...]",
	Short: "Merge PDF files in the given order",
	Long: `Merge concatenates the given PDF files in argument order into the output
file. The output is written to a temporary file next to the destination and
renamed into place, so a failed merge leaves the destination untouched.

Inputs can also come from a YAML job file (--job); arguments are appended
after the job's files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := mergeOptions{
			Output:     viper.GetString("output"),
			Divider:    viper.GetBool("divider"),
			Validation: viper.GetString("validation"),
			SaveJob:    viper.GetString("save-job"),
		}

		if jobPath, _ := cmd.Flags().GetString("job"); jobPath != "" {
			job, err := config.LoadMergeJob(jobPath)
			if err != nil {
				return err
			}
			opts.Files = append(opts.Files, job.Files...)
			if !cmd.Flags().Changed("output") && job.Output != "" {
				opts.Output = job.Output
			}
			if !cmd.Flags().Changed("divider") && job.Divider {
				opts.Divider = true
			}
			if !cmd.Flags().Changed("validation") && job.Validation != "" {
				opts.Validation = job.Validation
			}
		}
		opts.Files = append(opts.Files, args...)

		return runMerge(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	},
}

func init() {
	mergeCmd.Flags().StringP("output", "o", "", "merged output file (.pdf is appended when missing)")
	mergeCmd.Flags().Bool("divider", false, "insert a blank page between inputs")
	mergeCmd.Flags().String("validation", string(config.DefaultValidationMode), "input validation mode: strict or relaxed")
	mergeCmd.Flags().String("job", "", "YAML job file listing inputs and output")
	mergeCmd.Flags().String("save-job", "", "write the accepted inputs and output to a YAML job file")

	_ = viper.BindPFlag("output", mergeCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("divider", mergeCmd.Flags().Lookup("divider"))
	_ = viper.BindPFlag("validation", mergeCmd.Flags().Lookup("validation"))
	_ = viper.BindPFlag("save-job", mergeCmd.Flags().Lookup("save-job"))

	rootCmd.AddCommand(mergeCmd)
}

// runMerge filters inputs through a file set and merges the accepted ones.
func runMerge(ctx context.Context, stdout, stderr io.Writer, opts mergeOptions) error {
	fileSet := model.NewFileSet()
	result := fileSet.AddFiles(opts.Files)
	for _, rejected := range result.Rejected {
		fmt.Fprintf(stderr, "skipping %s: %s\n", rejected.Path, rejected.Reason)
	}

	if opts.Output == "" {
		return errNoOutput
	}
	destination := platform.EnsurePDFExtension(opts.Output)

	svc := merge.NewService(merge.NewPDFCPUEngine(opts.Validation))
	svc.SetDividerPage(opts.Divider)
	svc.SetUpdateCallback(func(task *model.MergeTask) {
		fmt.Fprintf(stderr, "%s: %s\n", task.Status, task.DisplayName())
	})

	task, err := svc.Merge(ctx, fileSet.Files(), destination)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "merged %d file(s) into %s (%d pages)\n", fileSet.Len(), task.Destination(), task.PageCount)

	if opts.SaveJob != "" {
		job := &config.MergeJob{
			Output:     task.Destination(),
			Divider:    opts.Divider,
			Validation: opts.Validation,
			Files:      fileSet.Files(),
		}
		if err := config.WriteMergeJob(opts.SaveJob, job); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "saved job to %s\n", opts.SaveJob)
	}
	return nil
}
