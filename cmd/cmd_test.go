package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orgscope/orgscope/client/preference"
	"github.com/orgscope/orgscope/internal/api/factories"
	"github.com/orgscope/orgscope/internal/config"
	orgscopehttp "github.com/orgscope/orgscope/internal/http"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGithubServer serves the google fixtures, rewriting repos_url to point back at itself.
func newGithubServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/orgs/google", func(w http.ResponseWriter, r *http.Request) {
		org := map[string]interface{}{}
		for k, v := range factories.OrgPayload {
			org[k] = v
		}
		org["repos_url"] = srv.URL + "/orgs/google/repos"
		json.NewEncoder(w).Encode(org)
	})
	mux.HandleFunc("/orgs/google/repos", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(factories.ReposPayload)
	})

	return srv
}

// useTestEnv isolates the preference file and the environment driven configuration.
func useTestEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	t.Setenv("ORGSCOPE_GITHUB_ORG", "")
	t.Setenv("ORGSCOPE_GITHUB_API_URL", "")
	t.Setenv("GITHUB_TOKEN", "")
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)

	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestFormatDelays(t *testing.T) {
	assert.Equal(t, "[]", formatDelays(nil))
	assert.Equal(t, "[0.5, 2.0, 3.25]", formatDelays([]float64{0.5, 2, 3.25}))
}

func TestBasicsCmd(t *testing.T) {
	out, err := executeCommand(t, "basics")
	require.NoError(t, err)

	assert.Contains(t, out, "eggshell")
	assert.Contains(t, out, "Holberton")
}

func TestCompletionCmd(t *testing.T) {
	out, err := executeCommand(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "orgscope")
}

func TestOrgShowCmd(t *testing.T) {
	useTestEnv(t)
	srv := newGithubServer(t)

	out, err := executeCommand(t, "org", "show", "google", "--api-url", srv.URL)
	require.NoError(t, err)

	assert.Contains(t, out, "google")
	assert.Contains(t, out, "1342004")
	assert.Contains(t, out, srv.URL+"/orgs/google/repos")

	pref, err := preference.Read()
	require.NoError(t, err)
	assert.Contains(t, pref.Orgs, "google")
	assert.Empty(t, pref.DefaultOrg)
}

func TestOrgShowCmd_UnknownOrg(t *testing.T) {
	useTestEnv(t)
	srv := newGithubServer(t)

	_, err := executeCommand(t, "org", "show", "nobody", "--api-url", srv.URL)
	assert.ErrorIs(t, err, orgscopehttp.ErrNotFound)
}

func TestOrgUseCmd(t *testing.T) {
	useTestEnv(t)

	out, err := executeCommand(t, "org", "use", "holbertonschool")
	require.NoError(t, err)
	assert.Contains(t, out, "default organization set to holbertonschool")

	pref, err := preference.Read()
	require.NoError(t, err)
	assert.Equal(t, "holbertonschool", pref.DefaultOrg)

	_, err = executeCommand(t, "org", "use", "not an org")
	assert.ErrorIs(t, err, config.ErrInvalidOrgName)
}

func TestReposListCmd(t *testing.T) {
	useTestEnv(t)
	srv := newGithubServer(t)

	out, err := executeCommand(t, "repos", "list", "google", "--api-url", srv.URL, "--license", "apache-2.0", "--default")
	require.NoError(t, err)

	for _, name := range factories.Apache2Repos {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "cpp-netlib")
	assert.NotContains(t, out, "episodes.dart")

	pref, err := preference.Read()
	require.NoError(t, err)
	assert.Equal(t, "google", pref.DefaultOrg)
	assert.Equal(t, "apache-2.0", pref.Orgs["google"].LastLicense)
}

func TestReposListCmd_NoFilter(t *testing.T) {
	useTestEnv(t)
	srv := newGithubServer(t)

	out, err := executeCommand(t, "repos", "list", "google", "--api-url", srv.URL)
	require.NoError(t, err)

	for _, name := range factories.ExpectedRepos {
		assert.Contains(t, out, name)
	}
}

func TestReposLicenseCmd(t *testing.T) {
	tests := []struct {
		license string
		total   string
	}{
		{license: "apache-2.0", total: "4/9"},
		{license: "bsl-1.0", total: "1/9"},
		{license: "mit", total: "0/9"},
	}
	for _, tt := range tests {
		t.Run(tt.license, func(t *testing.T) {
			useTestEnv(t)
			srv := newGithubServer(t)

			out, err := executeCommand(t, "repos", "license", "google", "--api-url", srv.URL, "-l", tt.license)
			require.NoError(t, err)

			assert.Contains(t, out, tt.total)
			assert.Contains(t, out, "firmata.py")
		})
	}
}

func TestReposLicenseCmd_RequiresLicense(t *testing.T) {
	useTestEnv(t)
	srv := newGithubServer(t)

	_, err := executeCommand(t, "repos", "license", "google", "--api-url", srv.URL)
	assert.Error(t, err)
}

func TestReposListCmd_ConfigOrgBeatsSavedDefault(t *testing.T) {
	useTestEnv(t)
	srv := newGithubServer(t)
	require.NoError(t, preference.CreateOrUpdate("someone-else", "", true))
	t.Setenv("ORGSCOPE_GITHUB_ORG", "google")

	// the server only knows google, so using the saved default would fail with not found
	out, err := executeCommand(t, "repos", "list", "--api-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "traceur-compiler")
}

func TestResolveOrg(t *testing.T) {
	useTestEnv(t)
	require.NoError(t, preference.CreateOrUpdate("saved-default", "", true))

	saved := cfg
	t.Cleanup(func() { cfg = saved })

	cfg = config.NewConfig()
	cfg.GitHub.Org = "from-config"

	got, err := resolveOrg([]string{"from-arg"})
	require.NoError(t, err)
	assert.Equal(t, "from-arg", got)

	got, err = resolveOrg(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-config", got)

	cfg.GitHub.Org = ""
	got, err = resolveOrg(nil)
	require.NoError(t, err)
	assert.Equal(t, "saved-default", got)

	_, err = resolveOrg([]string{"bad/org"})
	assert.ErrorIs(t, err, config.ErrInvalidOrgName)
}
