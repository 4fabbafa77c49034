package secrets

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/torvikdev/envstash/internal/envfile"
	serrors "github.com/torvikdev/envstash/internal/errors"
)

// IdentifierKey is the reserved variable in the project's .env file that
// links the project to its secret namespace. The identifier carries no
// secret material; committing it only reveals that a namespace exists.
const IdentifierKey = "ENVSTASH_ID"

// ResolveOrCreateProjectID returns the project identifier stored in the
// dotenv file at envPath, generating and persisting a new one when absent.
//
// An existing valid identifier is returned unchanged (idempotent, no file
// mutation). A present but malformed value is ErrCorruptIdentifier and is
// never repaired automatically: a replacement identifier would orphan the
// namespace the old value pointed at.
func ResolveOrCreateProjectID(envPath string) (id string, created bool, err error) {
	existing, found, err := envfile.LookupKey(envPath, IdentifierKey)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", envPath, err)
	}

	if found {
		if !IsCanonicalID(existing) {
			return "", false, fmt.Errorf("%w: %s in %s holds %q", serrors.ErrCorruptIdentifier, IdentifierKey, envPath, existing)
		}
		return existing, false, nil
	}

	id = uuid.NewString()
	if err := envfile.UpsertKey(envPath, IdentifierKey, id); err != nil {
		return "", false, fmt.Errorf("failed to write %s to %s: %w", IdentifierKey, envPath, err)
	}

	return id, true, nil
}

// IsCanonicalID reports whether s is a UUID in canonical form: lowercase,
// hyphenated hex groups. Only canonical identifiers map to namespace
// directories, so alternate UUID encodings are rejected rather than
// normalized.
func IsCanonicalID(s string) bool {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return parsed.String() == s
}
