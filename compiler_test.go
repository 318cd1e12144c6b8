package longform

import (
	"testing"
)

func TestNewCompilerDefaults(t *testing.T) {
	compiler := NewCompiler(nil)
	if compiler == nil {
		t.Fatalf("NewCompiler returned nil")
	}

	if len(compiler.Config.DestinationNames) != 1 || compiler.Config.DestinationNames[0] != DefaultDestinationName {
		t.Errorf("Default destination names are %v, expected [%s]", compiler.Config.DestinationNames, DefaultDestinationName)
	}
}

func TestCompileScenarios(t *testing.T) {
	scenarios := []struct {
		source   string
		compiled string
	}{
		{"+++.", "3+"},
		{"+++---.", "0+"},
		{"+.+.+.", "1+1+1+"},
		{"<<<+.", "1+"},
		{"hello world", ""},
		{"+.-.", "1+1-"},
	}

	compiler := NewCompiler(nil)

	for _, scenario := range scenarios {
		compilation := compiler.Compile(scenario.source)
		if compilation.Compiled != scenario.compiled {
			t.Errorf("Compile(|%s|) produced |%s|, expected |%s|", scenario.source, compilation.Compiled, scenario.compiled)
		}
	}
}

func TestCompileCounters(t *testing.T) {
	compilation := NewCompiler(nil).Compile("+. junk +.")

	if compilation.InstructionCount != 4 {
		t.Errorf("InstructionCount is [%d], expected [4]", compilation.InstructionCount)
	}

	if compilation.OutputCount != 2 {
		t.Errorf("OutputCount is [%d], expected [2]", compilation.OutputCount)
	}
}

func TestCompileSnapshotsDestinations(t *testing.T) {
	config := &CompilerConfig{DestinationNames: []string{"alpha"}}
	compiler := NewCompiler(config)

	compilation := compiler.Compile("+.")

	config.DestinationNames[0] = "mutated"

	if compilation.Destinations[0] != "alpha" {
		t.Errorf("Compilation destination is |%s|, expected snapshot |alpha|", compilation.Destinations[0])
	}
}

func TestCompileDeterministic(t *testing.T) {
	compiler := NewCompiler(nil)
	source := "+>++.<.--."

	first := compiler.Compile(source)
	second := compiler.Compile(source)

	if first.Compiled != second.Compiled {
		t.Errorf("Compile isn't deterministic: |%s| vs |%s|", first.Compiled, second.Compiled)
	}
}
