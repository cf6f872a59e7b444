package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mediascan/internal/probecache"
	"mediascan/internal/scan"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Probe result cache utilities",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached probe results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *probecache.Store) error {
				entries, err := store.List(cmd.Context())
				if err != nil {
					return err
				}

				if ctx.jsonOutput() {
					views := make([]inspectView, 0, len(entries))
					for _, entry := range entries {
						views = append(views, newCacheView(entry))
					}
					return writeJSON(cmd, views)
				}

				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Cache is empty.")
					return nil
				}

				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{
						entry.Info.SourcePath,
						orDash(entry.Info.Container.Token()),
						formatDuration(entry.Info.DurationMs),
						entry.ProbedAt.Local().Format(time.RFC3339),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Source", "Container", "Duration", "Probed"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop all cached probe results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *probecache.Store) error {
				dropped, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Dropped %d cached result(s).\n", dropped)
				return nil
			})
		},
	}
}

func newCacheView(entry *probecache.Entry) inspectView {
	return newInspectView(scan.Result{Info: entry.Info, Cached: true})
}
