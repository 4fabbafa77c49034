package configs

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
)

// UserSettings holds the user-scoped paths envstash stores data under.
type UserSettings struct {
	// DataPath is the base directory holding one namespace directory per
	// project identifier.
	DataPath string
}

// UserEnvstashSettings is the process-wide default. Tests swap it (or pass
// their own UserSettings to NewManager) to point at a temp directory.
var UserEnvstashSettings *UserSettings

func init() {
	dataPath, err := resolveDataPath()
	if err != nil {
		log.Fatalf("error resolving envstash data directory: %s", err)
	}

	// This is independent of what project you are in, so it is ok to init here.
	UserEnvstashSettings = &UserSettings{
		DataPath: dataPath,
	}
}

// resolveDataPath returns the platform's user-scoped base directory for
// secret namespaces. This is the only platform-conditional spot; everything
// downstream treats the result as an opaque base path.
//
//	Linux / macOS : $XDG_DATA_HOME/envstash or ~/.local/share/envstash
//	Windows       : %AppData%/envstash
func resolveDataPath() (string, error) {
	if runtime.GOOS == "windows" {
		configDir, err := os.UserConfigDir() // %AppData%
		if err != nil {
			return "", err
		}
		return filepath.Join(configDir, "envstash"), nil
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "envstash"), nil
}
