package main

import (
	"flag"
	"fmt"
	"io"

	lf "nickandperla.net/longform"

	"github.com/peterh/liner"
)

// Interactive loop: each line of source is compiled to long form and
// echoed back. Nothing is written to disk.

var destination *string = flag.String("destination", lf.DefaultDestinationName, "Destination name shown in the prompt output")

func main() {
	flag.Parse()

	compiler := lf.NewCompiler(&lf.CompilerConfig{
		DestinationNames: []string{*destination},
	})

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("longform repl. Enter source; ctrl-d to exit.")

	for {
		input, err := line.Prompt("bf> ")
		if err == io.EOF || err == liner.ErrPromptAborted {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Printf("read error: %v\n", err)
			return
		}

		if len(input) == 0 {
			continue
		}
		line.AppendHistory(input)

		compilation := compiler.Compile(input)
		fmt.Printf("%s%s: |%s| (%d instructions, %d outputs)\n",
			compilation.Destinations[0], lf.LongExtension, compilation.Compiled,
			compilation.InstructionCount, compilation.OutputCount)
	}
}
