package factories

// OrgPayload, ReposPayload, ExpectedRepos and Apache2Repos describe a small
// snapshot of the google organization.
var OrgPayload = map[string]interface{}{
	"login":     "google",
	"id":        float64(1342004),
	"repos_url": "https://api.github.com/orgs/google/repos",
}

var ReposPayload = []interface{}{
	repoDocument(7697149, "episodes.dart", "bsd-3-clause"),
	repoDocument(7776515, "cpp-netlib", "bsl-1.0"),
	repoDocument(7968417, "dagger", "apache-2.0"),
	repoDocument(8165161, "ios-webkit-debug-proxy", "other"),
	repoDocument(8459994, "google.github.io", ""),
	repoDocument(8566972, "kratu", "apache-2.0"),
	repoDocument(8858648, "build-debian-cloud", "other"),
	repoDocument(9060347, "traceur-compiler", "apache-2.0"),
	repoDocument(9065917, "firmata.py", "apache-2.0"),
}

var ExpectedRepos = []string{
	"episodes.dart",
	"cpp-netlib",
	"dagger",
	"ios-webkit-debug-proxy",
	"google.github.io",
	"kratu",
	"build-debian-cloud",
	"traceur-compiler",
	"firmata.py",
}

var Apache2Repos = []string{"dagger", "kratu", "traceur-compiler", "firmata.py"}

func repoDocument(id float64, name, licenseKey string) map[string]interface{} {
	repo := map[string]interface{}{
		"id":        id,
		"name":      name,
		"full_name": "google/" + name,
		"private":   false,
		"html_url":  "https://github.com/google/" + name,
		"fork":      false,
	}

	if licenseKey == "" {
		repo["license"] = nil
		return repo
	}

	repo["license"] = map[string]interface{}{
		"key":     licenseKey,
		"name":    licenseKey,
		"spdx_id": licenseKey,
	}
	return repo
}
