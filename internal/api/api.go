package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgscope/orgscope/internal/api/models"
	orgscopehttp "github.com/orgscope/orgscope/internal/http"
	"github.com/orgscope/orgscope/internal/util"
	"go.uber.org/zap"
)

const APIUrl = "https://api.github.com"

// OrgURL is the organization endpoint, formatted with the API base URL and the org name.
const OrgURL = "%s/orgs/%s"

type ClientOption func(*GithubOrgClient)

func WithGetter(getter orgscopehttp.JSONGetter) ClientOption {
	return func(c *GithubOrgClient) {
		c.getter = getter
	}
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *GithubOrgClient) {
		c.logger = logger
	}
}

func WithBaseURL(baseURL string) ClientOption {
	return func(c *GithubOrgClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// GithubOrgClient reads an organization and its public repositories.
// The org and repos documents are fetched at most once per client.
type GithubOrgClient struct {
	orgName string
	baseURL string
	getter  orgscopehttp.JSONGetter
	logger  *zap.Logger

	org          util.Memo[map[string]interface{}]
	reposPayload util.Memo[[]interface{}]
}

func NewGithubOrgClient(orgName string, opts ...ClientOption) *GithubOrgClient {
	c := &GithubOrgClient{
		orgName: orgName,
		baseURL: APIUrl,
		getter:  orgscopehttp.NewClient(),
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *GithubOrgClient) OrgName() string {
	return c.orgName
}

// Org returns the organization document as served by the API.
func (c *GithubOrgClient) Org(ctx context.Context) (map[string]interface{}, error) {
	return c.org.Get(func() (map[string]interface{}, error) {
		url := fmt.Sprintf(OrgURL, c.baseURL, c.orgName)
		c.logger.Debug("fetching organization", zap.String("org", c.orgName), zap.String("url", url))

		payload, err := c.getter.GetJSON(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("failed to get organization %s: %w", c.orgName, err)
		}

		org, ok := payload.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected organization document type %T", payload)
		}

		return org, nil
	})
}

// PublicReposURL returns the repos_url field of the organization document.
func (c *GithubOrgClient) PublicReposURL(ctx context.Context) (string, error) {
	org, err := c.Org(ctx)
	if err != nil {
		return "", err
	}

	value, err := util.AccessNestedMap(org, "repos_url")
	if err != nil {
		return "", err
	}

	url, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("unexpected repos_url type %T", value)
	}

	return url, nil
}

// ReposPayload returns the list of repository documents.
func (c *GithubOrgClient) ReposPayload(ctx context.Context) ([]interface{}, error) {
	return c.reposPayload.Get(func() ([]interface{}, error) {
		url, err := c.PublicReposURL(ctx)
		if err != nil {
			return nil, err
		}

		c.logger.Debug("fetching repositories", zap.String("org", c.orgName), zap.String("url", url))

		payload, err := c.getter.GetJSON(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("failed to get repositories of %s: %w", c.orgName, err)
		}

		repos, ok := payload.([]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected repositories document type %T", payload)
		}

		return repos, nil
	})
}

// PublicRepos returns repository names in listing order. A non-empty license keeps
// only the repositories whose license key equals it.
func (c *GithubOrgClient) PublicRepos(ctx context.Context, license string) ([]string, error) {
	payload, err := c.ReposPayload(ctx)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, item := range payload {
		repo, _ := item.(map[string]interface{})
		if license != "" && !HasLicense(repo, license) {
			continue
		}

		name, err := RepoName(repo)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	c.logger.Debug("listed public repositories",
		zap.String("org", c.orgName),
		zap.String("license", license),
		zap.Int("count", len(names)))

	return names, nil
}

// RepoName returns the name field of a repository document.
func RepoName(repo map[string]interface{}) (string, error) {
	value, err := util.AccessNestedMap(repo, "name")
	if err != nil {
		return "", err
	}

	name, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("unexpected repository name type %T", value)
	}

	return name, nil
}

// HasLicense reports whether repo["license"]["key"] equals licenseKey.
// A missing or malformed license block never matches.
func HasLicense(repo map[string]interface{}, licenseKey string) bool {
	key, err := util.AccessNestedMap(repo, "license", "key")
	if err != nil {
		return false
	}

	value, ok := key.(string)
	return ok && value == licenseKey
}

// Organization returns the typed view of the organization document.
func (c *GithubOrgClient) Organization(ctx context.Context) (*models.Organization, error) {
	org, err := c.Org(ctx)
	if err != nil {
		return nil, err
	}

	result := models.Organization{}
	if err := models.Decode(org, &result); err != nil {
		return nil, fmt.Errorf("failed to decode organization: %w", err)
	}

	return &result, nil
}

// Repositories returns the typed view of the repositories, filtered like PublicRepos.
func (c *GithubOrgClient) Repositories(ctx context.Context, license string) ([]models.Repository, error) {
	payload, err := c.ReposPayload(ctx)
	if err != nil {
		return nil, err
	}

	repos := []models.Repository{}
	for _, item := range payload {
		repo, _ := item.(map[string]interface{})
		if license != "" && !HasLicense(repo, license) {
			continue
		}

		r := models.Repository{}
		if err := models.Decode(repo, &r); err != nil {
			return nil, fmt.Errorf("failed to decode repository: %w", err)
		}
		repos = append(repos, r)
	}

	return repos, nil
}
