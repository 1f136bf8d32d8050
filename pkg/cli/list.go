package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/cli/config"
	"github.com/secmon-lab/datedmemo/pkg/domain/model"
	"github.com/secmon-lab/datedmemo/pkg/service/datetime"
	"github.com/secmon-lab/datedmemo/pkg/usecase"
	"github.com/secmon-lab/datedmemo/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdList() *cli.Command {
	var repoCfg config.Repository
	var calendarCfg config.Calendar

	var flags []cli.Flag
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, calendarCfg.Flags()...)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Print the memo list in display order",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			normalizer, err := calendarCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo, usecase.WithNormalizer(normalizer))
			views, err := uc.Memo.List(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list memos")
			}

			return printMemos(os.Stdout, views)
		},
	}
}

var (
	todayColor    = color.New(color.FgGreen, color.Bold)
	tomorrowColor = color.New(color.FgYellow)
)

// labelText pads the label to a fixed width and highlights today and tomorrow. Colors
// are disabled automatically when stdout is not a terminal.
func labelText(label string) string {
	padded := fmt.Sprintf("%-14s", label)
	switch label {
	case datetime.LabelToday:
		return todayColor.Sprint(padded)
	case datetime.LabelTomorrow:
		return tomorrowColor.Sprint(padded)
	default:
		return padded
	}
}

func printMemos(w io.Writer, views []*model.MemoView) error {
	if len(views) == 0 {
		if _, err := fmt.Fprintln(w, "No memos for now."); err != nil {
			return goerr.Wrap(err, "failed to write memo list")
		}
		return nil
	}

	for i, v := range views {
		if _, err := fmt.Fprintf(w, "%3d  %s  %s\n", i, labelText(v.Label), v.Text); err != nil {
			return goerr.Wrap(err, "failed to write memo list")
		}
	}
	return nil
}
