package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/orgscope/orgscope/internal/api/factories"
	orgscopehttp "github.com/orgscope/orgscope/internal/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGithubServer serves the google fixtures, rewriting repos_url to point back at itself.
func newGithubServer(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/orgs/google", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		org := map[string]interface{}{}
		for k, v := range factories.OrgPayload {
			org[k] = v
		}
		org["repos_url"] = srv.URL + "/orgs/google/repos"
		json.NewEncoder(w).Encode(org)
	})
	mux.HandleFunc("/orgs/google/repos", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		json.NewEncoder(w).Encode(factories.ReposPayload)
	})

	return srv, &hits
}

func TestIntegrationGithubOrgClient_PublicRepos(t *testing.T) {
	srv, hits := newGithubServer(t)

	client := NewGithubOrgClient("google", WithBaseURL(srv.URL), WithGetter(orgscopehttp.NewClient()))

	got, err := client.PublicRepos(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, factories.ExpectedRepos, got)

	got, err = client.PublicRepos(context.Background(), "apache-2.0")
	require.NoError(t, err)
	assert.Equal(t, factories.Apache2Repos, got)

	assert.Equal(t, int32(2), atomic.LoadInt32(hits))
}

func TestIntegrationGithubOrgClient_UnknownOrg(t *testing.T) {
	srv, _ := newGithubServer(t)

	client := NewGithubOrgClient("nobody", WithBaseURL(srv.URL))

	_, err := client.PublicRepos(context.Background(), "")
	assert.ErrorIs(t, err, orgscopehttp.ErrNotFound)
}
