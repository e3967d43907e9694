package assets

import _ "embed"

// DefaultArena is the built-in arena preset used when no config file is given.
//
//go:embed default.yaml
var DefaultArena []byte

// ArenaSchema is the JSON schema every arena preset is validated against.
//
//go:embed arena.schema.json
var ArenaSchema string
