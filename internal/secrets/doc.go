// Package secrets implements the core of envstash: linking a project to a
// user-scoped secret namespace and managing the secrets stored there.
//
// # Architecture
//
// Three pieces compose into the public Manager:
//
//  1. The identifier store reads or creates the ENVSTASH_ID variable in the
//     project's .env file. The identifier is a canonical UUIDv4 generated
//     from a cryptographically secure source; it names the namespace and
//     carries no secret material.
//  2. The Store maps an identifier to a namespace directory under the
//     user-scoped data root and performs the durable reads and writes of
//     the .secrets file: strict parsing on load, full-overwrite
//     write-then-rename on save.
//  3. The Manager holds the in-memory secret set for a session and exposes
//     init, get, set, delete, list, clear, and info. Every mutation is
//     flushed synchronously, so a crash between operations leaves the file
//     consistent with the last completed operation.
//
// Apply injects a secret set into the process environment, optionally
// layered over a dotenv baseline loaded by godotenv. Secrets win on
// collision.
//
// # Storage Layout
//
//	<data root>/<project-id>/.secrets       one KEY=VALUE per line, 0600
//	<data root>/<project-id>/metadata.toml  which project this namespace serves
//
// The data root is resolved per platform by the configs package.
//
// # Security Considerations
//
// Secrets are stored in plain text with owner-only permissions where the
// filesystem supports them. This is a local-development convenience layer:
// it keeps secrets out of the working tree and out of version control, it
// does not defend against an attacker with access to the user account.
//
// Concurrent processes sharing a namespace are not coordinated. Saves are
// atomic (readers never see a torn file), but the last save wins.
package secrets
