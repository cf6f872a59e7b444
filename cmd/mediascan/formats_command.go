package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediascan/internal/media/codecs"
	"mediascan/internal/scan"
)

type formatView struct {
	Container   string `json:"container"`
	Extension   string `json:"extension"`
	Description string `json:"description"`
	Supported   bool   `json:"supported"`
}

func newFormatsCommand(ctx *commandContext) *cobra.Command {
	var supportedOnly bool

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "Report which known containers this ffmpeg build supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withScanner(func(scanner *scan.Scanner) error {
				supported, err := scanner.SupportedContainers(cmd.Context())
				if err != nil {
					return err
				}

				supportedSet := make(map[codecs.Container]struct{}, len(supported))
				for _, container := range supported {
					supportedSet[container] = struct{}{}
				}

				views := make([]formatView, 0, len(codecs.Containers()))
				for _, container := range codecs.Containers() {
					_, ok := supportedSet[container]
					if supportedOnly && !ok {
						continue
					}
					views = append(views, formatView{
						Container:   container.Token(),
						Extension:   container.Extension(),
						Description: container.Description(),
						Supported:   ok,
					})
				}

				if ctx.jsonOutput() {
					return writeJSON(cmd, views)
				}

				rows := make([][]string, 0, len(views))
				for _, view := range views {
					mark := ""
					if view.Supported {
						mark = "yes"
					}
					rows = append(rows, []string{view.Container, view.Extension, view.Description, mark})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Container", "Extension", "Description", "Supported"},
					rows,
					nil,
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&supportedOnly, "supported", false, "List only containers the ffmpeg build supports")
	return cmd
}
