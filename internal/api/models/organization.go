package models

type Organization struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	ReposURL    string `json:"repos_url"`
	PublicRepos int    `json:"public_repos"`
}
