package models

type License struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	SPDXID string `json:"spdx_id"`
}

type Repository struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	FullName string   `json:"full_name"`
	Private  bool     `json:"private"`
	HTMLURL  string   `json:"html_url"`
	Fork     bool     `json:"fork"`
	License  *License `json:"license"`
}

// LicenseKey returns the license key, or an empty string for unlicensed repositories.
func (r Repository) LicenseKey() string {
	if r.License == nil {
		return ""
	}
	return r.License.Key
}
