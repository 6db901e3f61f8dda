package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/table"
	"github.com/orgscope/orgscope/internal/basics"
	"github.com/spf13/cobra"
)

var basicsCmd = &cobra.Command{
	Use:   "basics",
	Short: "print the results of the typed helper exercises",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		first, _ := basics.SafeFirstElement([]string{"a", "b"})
		k, v := basics.ToKV("eggs", 3)
		double := basics.MakeMultiplier(2.22)

		t := table.NewWriter()
		t.AppendHeader(table.Row{"Call", "Result"})
		t.AppendRows([]table.Row{
			{"Add(1.11, 2.22)", basics.Add(1.11, 2.22)},
			{`Concat("egg", "shell")`, basics.Concat("egg", "shell")},
			{"Floor(3.14)", basics.Floor(3.14)},
			{"ToStr(3.14)", basics.ToStr(3.14)},
			{"SumList([3.14, 1.11, 2.31])", basics.SumList([]float64{3.14, 1.11, 2.31})},
			{"SumMixedList([1, 2, 3])", basics.SumMixedList([]int{1, 2, 3})},
			{`ToKV("eggs", 3)`, fmt.Sprintf("(%s, %v)", k, v)},
			{"MakeMultiplier(2.22)(2.22)", double(2.22)},
			{`ElementLength(["ab", "c"])`, fmt.Sprintf("%v", basics.ElementLength([]string{"ab", "c"}))},
			{`SafeFirstElement(["a", "b"])`, first},
			{`SafelyGetValue({"a": 1}, "b", 42)`, basics.SafelyGetValue(map[string]int{"a": 1}, "b", 42)},
			{"ZoomArray([12, 72, 91], 3)", fmt.Sprintf("%v", basics.ZoomArray([]int{12, 72, 91}, 3))},
			{"a, pi, school", fmt.Sprintf("%d, %v, %s", basics.A, basics.Pi, basics.School)},
		})
		t.SetStyle(table.StyleLight)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", t.Render())
	},
}

func init() {
	rootCmd.AddCommand(basicsCmd)
}
