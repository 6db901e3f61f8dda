package cmd

import (
	"fmt"
	"strings"

	"github.com/orgscope/orgscope/internal/basics"
	"github.com/orgscope/orgscope/internal/comprehension"
	"github.com/orgscope/orgscope/internal/delay"
	"github.com/orgscope/orgscope/internal/util"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "run the concurrency exercises",
}

var demoWaitCmd = &cobra.Command{
	Use:   "wait",
	Short: "spawn n random waits concurrently and print their delays in completion order",
	Run: func(cmd *cobra.Command, args []string) {
		delays, err := newRunner().WaitN(cmd.Context(), waitCount, maxDelay)
		if err != nil {
			util.FailPretty("%v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatDelays(delays))
	},
}

var demoTasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "same as wait, but through task handles",
	Run: func(cmd *cobra.Command, args []string) {
		delays, err := newRunner().TaskWaitN(cmd.Context(), waitCount, maxDelay)
		if err != nil {
			util.FailPretty("%v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatDelays(delays))
	},
}

var demoMeasureCmd = &cobra.Command{
	Use:   "measure",
	Short: "print the average time per wait of a wait run",
	Run: func(cmd *cobra.Command, args []string) {
		avg, err := newRunner().MeasureTime(cmd.Context(), waitCount, maxDelay)
		if err != nil {
			util.FailPretty("%v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "average per wait: %s\n", avg)
	},
}

var demoGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "collect the values of one delayed generator",
	Run: func(cmd *cobra.Command, args []string) {
		values, err := comprehension.New(newRunner()).Collect(cmd.Context())
		if err != nil {
			util.FailPretty("%v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatDelays(values))
	},
}

var demoRuntimeCmd = &cobra.Command{
	Use:   "runtime",
	Short: "run four collections in parallel and print the elapsed time",
	Run: func(cmd *cobra.Command, args []string) {
		elapsed, err := comprehension.New(newRunner()).MeasureRuntime(cmd.Context())
		if err != nil {
			util.FailPretty("%v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "runtime: %s\n", elapsed)
	},
}

func newRunner() *delay.Runner {
	return delay.NewRunner(delay.WithUnit(cfg.Demo.Unit), delay.WithLogger(logger))
}

func formatDelays(delays []float64) string {
	parts := make([]string, 0, len(delays))
	for _, d := range delays {
		parts = append(parts, basics.ToStr(d))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func init() {
	for _, c := range []*cobra.Command{demoWaitCmd, demoTasksCmd, demoMeasureCmd} {
		c.Flags().IntVarP(&waitCount, "count", "n", 5, "number of concurrent waits")
		c.Flags().IntVar(&maxDelay, "max-delay", 10, "upper bound of each wait, in units")
	}

	demoCmd.AddCommand(demoWaitCmd)
	demoCmd.AddCommand(demoTasksCmd)
	demoCmd.AddCommand(demoMeasureCmd)
	demoCmd.AddCommand(demoGenerateCmd)
	demoCmd.AddCommand(demoRuntimeCmd)
	rootCmd.AddCommand(demoCmd)
}
