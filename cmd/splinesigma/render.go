package main

import (
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/sgostarter/libsigmacurve/node"
	"github.com/spf13/cobra"
)

type renderOutput struct {
	NodeID      string    `json:"node_id,omitempty"`
	Kind        string    `json:"kind"`
	Info        string    `json:"info"`
	Description string    `json:"description"`
	Sigmas      []float64 `json:"sigmas"`
}

func NewRenderCommand() *cobra.Command {
	var (
		description     string
		descriptionFile string
		steps           int
		startY          float64
		endY            float64
		nodeID          string
		stateDir        string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fit a curve and sample it into a sigma schedule",
		Example: `  splinesigma render -d '{"control_points":[{"x":0,"y":1},{"x":1,"y":0}]}' -s 5
  splinesigma render -f curve.json -s 30 --start-y 14.6 --end-y 0.03
  splinesigma render --state-dir ./state --node-id abc -s 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if descriptionFile != "" {
				d, e := os.ReadFile(descriptionFile)
				if e != nil {
					return pkgerrors.Wrapf(e, "failed to read description %s", descriptionFile)
				}

				description = string(d)
			}

			if !cmd.Flags().Changed("steps") {
				steps = cfg.DefaultSteps
			}

			var store node.Store

			if stateDir != "" {
				store = node.NewFileStore(stateDir)

				if nodeID == "" {
					nodeID = node.NewInstanceID()
				}
			}

			var options []node.Option

			if cmd.Flags().Changed("start-y") {
				options = append(options, node.StartYOption(startY))
			}

			if cmd.Flags().Changed("end-y") {
				options = append(options, node.EndYOption(endY))
			}

			r, err := node.NewRenderer(store, cfg, newLogger()).RenderCurve(nodeID, description, steps, options...)
			if err != nil {
				return err
			}

			return printJSON(cmd, &renderOutput{
				NodeID:      nodeID,
				Kind:        r.Kind.String(),
				Info:        r.Info,
				Description: r.Output.JSON(),
				Sigmas:      r.Schedule,
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "curve description json")
	cmd.Flags().StringVarP(&descriptionFile, "description-file", "f", "", "read the curve description from a file")
	cmd.Flags().IntVarP(&steps, "steps", "s", 20, "number of schedule values")
	cmd.Flags().Float64Var(&startY, "start-y", 0, "first schedule value")
	cmd.Flags().Float64Var(&endY, "end-y", 0, "last schedule value")
	cmd.Flags().StringVar(&nodeID, "node-id", "", "node whose control points are cached")
	cmd.Flags().StringVar(&stateDir, "state-dir", "", "directory caching control points per node")

	return cmd
}
