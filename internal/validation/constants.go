package validation

// Embedded schema names
const (
	SchemaFishDescriptors = "fish-descriptors.schema.json"
	SchemaLocationSpawns  = "location-spawns.schema.json"
	SchemaItems           = "items.schema.json"
	SchemaContentPack     = "content-pack.schema.json"
)

// Error messages
const (
	ErrMsgReadDataFile     = "failed to read data file %s"
	ErrMsgLoadSchema       = "failed to load schema %s"
	ErrMsgParseJSONData    = "failed to parse JSON data"
	ErrMsgSchemaNotFound   = "schema not found: %s"
	ErrMsgValidationFailed = "schema validation failed"
)
