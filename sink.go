package longform

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// LongExtension is the fixed extension for compiled output files.
const LongExtension = ".long"

type SinkConfig struct {
	OutputPath string `toml:"output_path"`
}

func DefaultSinkConfig() *SinkConfig {
	return &SinkConfig{OutputPath: "./out"}
}

// Sink persists a Compilation: one file per destination name under the
// configured output directory, contents written verbatim.
type Sink struct {
	Config *SinkConfig
}

func NewSink(config *SinkConfig) (*Sink, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.OutputPath) == 0 {
		return nil, fmt.Errorf("OutputPath to write compiled output must be defined")
	}

	return &Sink{Config: config}, nil
}

func (s *Sink) Write(compilation *Compilation) error {
	if compilation == nil {
		return fmt.Errorf("compilation cannot be nil")
	}

	if err := os.MkdirAll(s.Config.OutputPath, 0755); err != nil {
		return fmt.Errorf("Failed to create output directory [%s]: %w", s.Config.OutputPath, err)
	}

	for _, name := range compilation.Destinations {
		path := filepath.Join(s.Config.OutputPath, name+LongExtension)
		if err := os.WriteFile(path, []byte(compilation.Compiled), 0644); err != nil {
			return fmt.Errorf("Failed to write compiled output to [%s]: %w", path, err)
		}
		log.WithFields(log.Fields{
			"path":  path,
			"bytes": len(compilation.Compiled),
		}).Debug("wrote compiled output")
	}

	return nil
}
