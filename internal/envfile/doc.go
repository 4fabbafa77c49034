// Package envfile implements the KEY=VALUE line format shared by the
// project's .env file and the secret file.
//
// Two reading modes exist on purpose:
//
//   - Parse / ParseFile are strict. They are used on the secret file, which
//     envstash owns: a malformed line fails the whole load with its line
//     number rather than silently dropping entries.
//   - LookupKey is tolerant. It is used on the project's .env file, which
//     envstash does not own: it extracts a single variable and ignores
//     everything else.
//
// UpsertKey writes exactly one variable into a dotenv file while preserving
// all other content and line order, which is how the project identifier is
// linked without disturbing the rest of the file.
package envfile
