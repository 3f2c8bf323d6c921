package manifest

import (
	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON schema of a level manifest document
// Editors validate TOML through its JSON form; field names match the TOML keys.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(LevelSet))
	schema.Title = "snowhop level manifest"
	schema.Description = "Hand-authored platform levels: spawn, platforms, pickups, hazards and exit gate"
	return schema
}
