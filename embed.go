package jsonschema4

import "embed"

//go:embed data/draft4.json
var embeddedData embed.FS

// defaultEmbeddedResources populates the data://Module/Name registry (spec
// §6) with the schemas shipped inside the module itself. The Draft 4
// meta-schema lives here under "jsonschema/draft4", reachable as
// data://jsonschema/draft4 without any network fetch.
func defaultEmbeddedResources() map[string][]byte {
	resources := make(map[string][]byte)
	if b, err := embeddedData.ReadFile("data/draft4.json"); err == nil {
		resources["jsonschema/draft4"] = b
	}
	return resources
}
