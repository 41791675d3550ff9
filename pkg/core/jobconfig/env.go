package jobconfig

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/rcarmo/go-linecopy/pkg/core/linecopy"
)

// DefaultPrefix is prepended to upper-cased keys when reading the environment.
const DefaultPrefix = "LINECOPY_"

// Getenv looks up a single environment variable.
type Getenv func(key string) string

// FromEnv builds a job from <prefix>INPUT_FILE, <prefix>RESULT_FILE,
// <prefix>COUNT_LINES and <prefix>WRITE_MODE. Unset or empty variables fall
// back to the default job.
func FromEnv(getenv Getenv, prefix string) (linecopy.Job, error) {
	def := linecopy.DefaultJob()
	defaults := map[string]string{
		KeyInputFile:  def.Source,
		KeyResultFile: def.Destination,
	}
	return build(func(key string) (string, bool) {
		if v := getenv(prefix + strings.ToUpper(key)); v != "" {
			return v, true
		}
		v, ok := defaults[key]
		return v, ok
	})
}

// LoadEnvFile parses a dotenv file without modifying the process environment.
func LoadEnvFile(fsys afero.Fs, path string) (map[string]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return godotenv.Parse(f)
}

// Overlay returns a Getenv consulting primary first and falling back to
// values, so real environment variables win over dotenv entries.
func Overlay(primary Getenv, values map[string]string) Getenv {
	return func(key string) string {
		if v := primary(key); v != "" {
			return v
		}
		return values[key]
	}
}
