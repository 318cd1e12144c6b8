package longform

import (
	"time"

	cp "github.com/jinzhu/copier"
	log "github.com/sirupsen/logrus"

	bf "nickandperla.net/longform/brainfuck"
)

// The compiler is the per-run orchestrator: parse the source into OPs, run
// them on a fresh machine to collect the output event log, encode the log
// into long form, and package the result as a Compilation. Every run builds
// its own tape and memory, so one Compiler may serve concurrent Compile
// calls; only the sink has to care about concurrent writes to the same
// destination name.

const DefaultDestinationName = "compiled"

type CompilerConfig struct {
	DestinationNames []string `toml:"destination_names"`
}

func DefaultCompilerConfig() *CompilerConfig {
	return &CompilerConfig{
		DestinationNames: []string{DefaultDestinationName},
	}
}

// Compilation is one finished run. Destinations and Compiled are fixed at
// creation; the counters exist for the runs tooling and metrics queries.
type Compilation struct {
	ID               uint
	Destinations     []string `gorm:"serializer:json"`
	Source           string
	Compiled         string
	InstructionCount uint
	OutputCount      uint
	CreatedAt        time.Time
}

type Compiler struct {
	Config *CompilerConfig
}

func NewCompiler(config *CompilerConfig) *Compiler {
	if config == nil || len(config.DestinationNames) == 0 {
		config = DefaultCompilerConfig()
	}
	return &Compiler{Config: config}
}

// Compile runs the whole pipeline over source. It is total: any input,
// including instruction-free text, produces a well-formed Compilation.
func (c *Compiler) Compile(source string) *Compilation {
	machine := bf.NewMachine()
	machine.LoadProgram(source)
	events := machine.Run()

	compilation := &Compilation{
		Source:           source,
		Compiled:         Encode(events),
		InstructionCount: uint(len(machine.Tape.Instructions)),
		OutputCount:      uint(len(events)),
	}

	// Snapshot the destination list so later config edits can't reach into
	// an already-produced Compilation.
	if err := cp.Copy(&compilation.Destinations, &c.Config.DestinationNames); err != nil {
		compilation.Destinations = []string{DefaultDestinationName}
	}

	log.WithFields(log.Fields{
		"instructions": compilation.InstructionCount,
		"outputs":      compilation.OutputCount,
		"compiled_len": len(compilation.Compiled),
	}).Debug("compiled source to long form")

	return compilation
}
