// Package configs manages user-scoped settings and namespace metadata for
// envstash.
//
// # Settings
//
// Global settings are initialized at startup:
//
//   - UserEnvstashSettings: the base data directory all secret namespaces
//     live under.
//
// The base directory is platform-dependent but deterministic per platform:
//
//	Linux / macOS : $XDG_DATA_HOME/envstash or ~/.local/share/envstash
//	Windows       : %AppData%/envstash
//
// # Namespace Metadata
//
// Each namespace directory carries a metadata.toml recording the project it
// was created for (name, path, identifier, creation time). The metadata is
// informational, written once at namespace creation and surfaced by the
// info command. The authoritative project-to-namespace link is always the
// ENVSTASH_ID variable in the project's .env file, never the metadata.
package configs
