package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/jedib0t/go-pretty/table"
	"github.com/orgscope/orgscope/client/preference"
	"github.com/orgscope/orgscope/internal/api"
	"github.com/orgscope/orgscope/internal/config"
	orgscopehttp "github.com/orgscope/orgscope/internal/http"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var organizationCmd = &cobra.Command{
	Use:     "org",
	Aliases: []string{"organization"},
	Short:   "organization related commands",
}

var organizationShowCmd = &cobra.Command{
	Use:   "show [org]",
	Short: "show organization info",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgName, err := resolveOrg(args)
		if err != nil {
			return err
		}

		client := newOrgClient(orgName)
		org, err := client.Organization(cmd.Context())
		if err != nil {
			return err
		}

		if err := preference.CreateOrUpdate(org.Login, "", false); err != nil {
			logger.Warn("failed to save preference", zap.Error(err))
		}

		t := table.NewWriter()
		t.AppendRow(table.Row{"Login", org.Login})
		t.AppendRow(table.Row{"ID", org.ID})
		t.AppendRow(table.Row{"Name", org.Name})
		t.AppendRow(table.Row{"Description", org.Description})
		t.AppendRow(table.Row{"URL", org.HTMLURL})
		t.AppendRow(table.Row{"Repos URL", org.ReposURL})
		t.AppendRow(table.Row{"Public Repos", org.PublicRepos})
		t.SetStyle(table.StyleLight)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", t.Render())
		return nil
	},
}

var organizationUseCmd = &cobra.Command{
	Use:   "use <org>",
	Short: "set the default organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ValidateOrgName(args[0]); err != nil {
			return err
		}

		if err := preference.CreateOrUpdate(args[0], "", true); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "default organization set to %s\n", args[0])
		return nil
	},
}

// resolveOrg picks the organization from the arguments, the configuration, the
// saved default, or finally asks for it.
func resolveOrg(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], config.ValidateOrgName(args[0])
	}

	if cfg != nil && cfg.GitHub.Org != "" {
		return cfg.GitHub.Org, nil
	}

	pref, err := preference.Read()
	if err != nil {
		logger.Warn("failed to read preference", zap.Error(err))
	}
	if pref != nil && pref.DefaultOrg != "" {
		return pref.DefaultOrg, nil
	}

	var orgName string
	var prompt survey.Prompt = &survey.Input{Message: "GitHub organization:"}
	if pref != nil {
		if recent := pref.RecentlyUsedOrgs(10).Logins(); len(recent) > 0 {
			prompt = &survey.Select{Message: "Choose an organization:", Options: recent}
		}
	}

	if err := survey.AskOne(prompt, &orgName, survey.WithValidator(survey.Required)); err != nil {
		return "", fmt.Errorf("unable to read organization: %w", err)
	}

	return orgName, config.ValidateOrgName(orgName)
}

func newOrgClient(orgName string) *api.GithubOrgClient {
	githubToken := orgscopehttp.GetToken()
	if cfg.GitHub.Token != "" {
		githubToken = cfg.GitHub.Token
	}

	getter := orgscopehttp.NewClient(
		orgscopehttp.WithToken(githubToken),
		orgscopehttp.WithVersion(version),
		orgscopehttp.WithTimeout(cfg.GitHub.Timeout),
		orgscopehttp.WithRetries(cfg.GitHub.Retries, 0),
		orgscopehttp.WithLogger(logger),
	)

	return api.NewGithubOrgClient(orgName,
		api.WithBaseURL(cfg.GitHub.APIURL),
		api.WithGetter(getter),
		api.WithLogger(logger),
	)
}

func init() {
	organizationCmd.AddCommand(organizationShowCmd)
	organizationCmd.AddCommand(organizationUseCmd)
	rootCmd.AddCommand(organizationCmd)
}
