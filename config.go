package longform

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// ToolConfig is the TOML config shared by the longform tools. Persistence
// is optional; compiler and sink sections fall back to their documented
// defaults ("compiled" destination, "./out" output directory) when omitted.
type ToolConfig struct {
	LogLevel    string             `toml:"log_level"`
	Compiler    *CompilerConfig    `toml:"compiler"`
	Sink        *SinkConfig        `toml:"sink"`
	Persistence *PersistenceConfig `toml:"persistence"`
}

func LoadToolConfig(path string) (*ToolConfig, error) {
	conffile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Unable to open config [%s]: %w", path, err)
	}
	defer conffile.Close()

	confDecoder := toml.NewDecoder(conffile)
	config := &ToolConfig{}
	meta, err := confDecoder.Decode(config)
	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal tool config [%s]: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		// Unknown keys get a did-you-mean against the known section names
		// rather than a silent skip.
		known := []string{"log_level", "compiler", "sink", "persistence",
			"destination_names", "output_path", "name", "path",
			"sqlite_pragmas", "sqlite_options"}
		key := undecoded[0]
		leaf := key[len(key)-1]
		msg := fmt.Sprintf("Unknown config key [%s] in [%s]", key.String(), path)
		if suggestion := SuggestSimilar(leaf, known); len(suggestion) > 0 {
			msg = fmt.Sprintf("%s. Did you mean [%s]?", msg, suggestion)
		}
		return nil, fmt.Errorf("%s", msg)
	}

	if config.Compiler == nil {
		config.Compiler = DefaultCompilerConfig()
	}

	if config.Sink == nil {
		config.Sink = DefaultSinkConfig()
	}

	return config, nil
}

// ApplyLogLevel sets the global logrus level from the config, defaulting to
// info when unset or unparseable.
func (tc *ToolConfig) ApplyLogLevel() {
	level, err := log.ParseLevel(tc.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
