package main

import (
	"flag"
	"os"
	str "strings"

	lf "nickandperla.net/longform"

	"github.com/pkg/profile"
)

/*
	Read config file (TOML)

	From unmarshaled config:
		Compile the source file to long form
		Write one .long file per destination name
		Optionally record the run in the runs DB

*/

var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for longform tools to use. Defaults to './config.toml'")

var sourcePath *string = flag.String("source", "", "The source file to compile")

var destinations *string = flag.String("destinations", "", "Comma-separated destination names, overriding the config")

var profileRun *bool = flag.Bool("profile", false, "Write a CPU profile for this run")

func main() {
	flag.Parse()

	if *profileRun {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	reporter := lf.NewReporter()

	if len(*sourcePath) == 0 {
		reporter.Report(&lf.Report{
			Message:    "No source file given",
			Suggestion: "pass one with -source path/to/program.b",
		}, true)
	}

	toolConfig, err := lf.LoadToolConfig(*toolConfigPath)
	if err != nil {
		reporter.Report(&lf.Report{
			Message: err.Error(),
			File:    *toolConfigPath,
		}, true)
	}
	toolConfig.ApplyLogLevel()

	source, err := os.ReadFile(*sourcePath)
	if err != nil {
		reporter.Report(&lf.Report{
			Message: "Unable to read source file: " + err.Error(),
			File:    *sourcePath,
		}, true)
	}

	if len(*destinations) > 0 {
		toolConfig.Compiler.DestinationNames = str.Split(*destinations, ",")
	}

	compiler := lf.NewCompiler(toolConfig.Compiler)
	compilation := compiler.Compile(string(source))

	sink, err := lf.NewSink(toolConfig.Sink)
	if err != nil {
		reporter.Report(&lf.Report{Message: err.Error(), File: *toolConfigPath}, true)
	}

	if err := sink.Write(compilation); err != nil {
		reporter.Report(&lf.Report{
			Message:    err.Error(),
			Suggestion: "check that the output directory is writable",
		}, true)
	}

	if toolConfig.Persistence != nil {
		persist, err := lf.NewPersistence(toolConfig.Persistence)
		if err != nil {
			reporter.Report(&lf.Report{Message: "Failed to create or initialize Persistence: " + err.Error()}, true)
		}
		defer persist.Shutdown()

		if _, err := persist.Create(compilation); err != nil {
			reporter.Report(&lf.Report{Message: "Failed to record compilation run: " + err.Error()}, true)
		}
	}
}
