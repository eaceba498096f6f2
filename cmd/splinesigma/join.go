package main

import (
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sgostarter/libsigmacurve/node"
	"github.com/sgostarter/libsigmacurve/schedule"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func NewJoinCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "join <schedule-a> <schedule-b>",
		Short:   "Join two schedules into one descending schedule",
		Example: `  splinesigma join 3,2,1 1,0`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseSchedule(args[0])
			if err != nil {
				return err
			}

			b, err := parseSchedule(args[1])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return printJSON(cmd, node.NewRenderer(nil, cfg, newLogger()).JoinSchedules(a, b))
		},
	}

	return cmd
}

func parseSchedule(s string) (schedule.Schedule, error) {
	sched := schedule.Schedule{}

	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		v, err := cast.ToFloat64E(item)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "bad schedule value %q", item)
		}

		sched = append(sched, v)
	}

	return sched, nil
}
