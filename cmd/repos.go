package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/table"
	"github.com/orgscope/orgscope/client/preference"
	"github.com/orgscope/orgscope/internal/api"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "list public repositories of an organization",
}

var reposListCmd = &cobra.Command{
	Use:   "list [org]",
	Short: "list public repositories, optionally only those with a given license",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgName, err := resolveOrg(args)
		if err != nil {
			return err
		}

		client := newOrgClient(orgName)
		repos, err := client.Repositories(cmd.Context(), license)
		if err != nil {
			return err
		}

		if err := preference.CreateOrUpdate(client.OrgName(), license, setAsDefault); err != nil {
			logger.Warn("failed to save preference", zap.Error(err))
		}

		t := table.NewWriter()
		t.AppendHeader(table.Row{"Name", "License", "URL"})
		for _, repo := range repos {
			t.AppendRow(table.Row{repo.Name, repo.LicenseKey(), repo.HTMLURL})
		}
		t.SetStyle(table.StyleLight)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", t.Render())
		return nil
	},
}

var reposLicenseCmd = &cobra.Command{
	Use:   "license [org]",
	Short: "check every public repository against a license key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgName, err := resolveOrg(args)
		if err != nil {
			return err
		}

		client := newOrgClient(orgName)
		payload, err := client.ReposPayload(cmd.Context())
		if err != nil {
			return err
		}

		matched := 0
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Name", "Has " + license})
		for _, item := range payload {
			repo, _ := item.(map[string]interface{})
			name, err := api.RepoName(repo)
			if err != nil {
				return fmt.Errorf("invalid repository in %s: %w", client.OrgName(), err)
			}

			if api.HasLicense(repo, license) {
				matched++
				t.AppendRow(table.Row{name, color.GreenString("yes")})
			} else {
				t.AppendRow(table.Row{name, color.RedString("no")})
			}
		}
		t.AppendFooter(table.Row{"Total", fmt.Sprintf("%d/%d", matched, len(payload))})
		t.SetStyle(table.StyleLight)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", t.Render())
		return nil
	},
}

func init() {
	reposListCmd.Flags().StringVarP(&license, "license", "l", "", "only list repositories with this license key (e.g. apache-2.0)")
	reposListCmd.Flags().BoolVar(&setAsDefault, "default", false, "remember the organization as the default one")
	reposLicenseCmd.Flags().StringVarP(&license, "license", "l", "", "license key to check (e.g. mit)")
	reposLicenseCmd.MarkFlagRequired("license")

	reposCmd.AddCommand(reposListCmd)
	reposCmd.AddCommand(reposLicenseCmd)
	rootCmd.AddCommand(reposCmd)
}
