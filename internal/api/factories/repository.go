package factories

import (
	"encoding/json"
	"fmt"

	"github.com/bluele/factory-go/factory"
	"github.com/brianvoe/gofakeit"
	"github.com/orgscope/orgscope/internal/api/models"
)

var LicenseKeys = []string{"apache-2.0", "mit", "bsd-3-clause", "bsl-1.0", "other"}

var OrganizationFactory = factory.NewFactory(
	&models.Organization{
		Login:       "google",
		Name:        "Google",
		Description: "Google ❤️ Open Source",
		HTMLURL:     "https://github.com/google",
		ReposURL:    "https://api.github.com/orgs/google/repos",
	},
).Attr("ID", func(args factory.Args) (interface{}, error) {
	return int64(gofakeit.Number(1, 9999999)), nil
}).Attr("PublicRepos", func(args factory.Args) (interface{}, error) {
	return gofakeit.Number(1, 3000), nil
})

var RepositoryFactory = factory.NewFactory(
	&models.Repository{},
).Attr("ID", func(args factory.Args) (interface{}, error) {
	return int64(gofakeit.Number(1, 9999999)), nil
}).Attr("Name", func(args factory.Args) (interface{}, error) {
	return fmt.Sprintf("random-repo-%v", gofakeit.Number(1, 100000)), nil
}).Attr("License", func(args factory.Args) (interface{}, error) {
	key := LicenseKeys[gofakeit.Number(0, len(LicenseKeys)-1)]
	return &models.License{Key: key, Name: key, SPDXID: key}, nil
})

// Document converts a model into the raw JSON document the API would serve.
func Document(model interface{}) map[string]interface{} {
	raw, err := json.Marshal(model)
	if err != nil {
		panic(err)
	}

	document := map[string]interface{}{}
	if err := json.Unmarshal(raw, &document); err != nil {
		panic(err)
	}

	return document
}

// Documents converts repositories into a repos payload.
func Documents(repos ...*models.Repository) []interface{} {
	payload := make([]interface{}, 0, len(repos))
	for _, repo := range repos {
		payload = append(payload, Document(repo))
	}
	return payload
}
