package preference

import (
	"sort"
	"time"
)

type Data struct {
	Orgs       map[string]Org `json:"orgs"`
	DefaultOrg string         `json:"default_org"`
}

type Org struct {
	Login       string    `json:"login"`
	LastLicense string    `json:"last_license,omitempty"`
	LastUsed    time.Time `json:"last_used"`
}

func NewData() *Data {
	return &Data{
		Orgs: make(map[string]Org),
	}
}

func NewOrg(login string) *Org {
	return &Org{
		Login:    login,
		LastUsed: time.Now(),
	}
}

func (d *Data) Org(login string) *Org {
	if foundOrg, exists := d.Orgs[login]; exists {
		return &foundOrg
	}
	return NewOrg(login)
}

func (d *Data) SetOrg(input *Org) {
	login := input.Login

	if foundOrg, exists := d.Orgs[login]; exists {
		if input.LastLicense != "" {
			foundOrg.LastLicense = input.LastLicense
		}
		input = &foundOrg
	}

	input.LastUsed = time.Now()
	d.Orgs[login] = *input
}

func (d *Data) RecentlyUsedOrgs(howMany int) Orgs {
	var orgs []Org
	for _, org := range d.Orgs {
		orgs = append(orgs, org)
	}
	// most recently used orgs are at the top
	sort.Slice(orgs, func(i, j int) bool {
		return orgs[i].LastUsed.After(orgs[j].LastUsed)
	})
	if len(orgs) > howMany {
		return orgs[:howMany]
	}
	return orgs
}

type Orgs []Org

func (o Orgs) Logins() []string {
	var logins []string
	for _, org := range o {
		logins = append(logins, org.Login)
	}
	return logins
}
