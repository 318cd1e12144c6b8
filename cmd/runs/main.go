package main

import (
	"flag"
	"fmt"

	lf "nickandperla.net/longform"
)

/*
	Read config file (TOML)

	From unmarshaled config:
		Connect to runs DB
		List recent compilation runs
		Print aggregate metrics

*/

var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for longform tools to use. Defaults to './config.toml'")

var limit *int = flag.Int("limit", 10, "How many recent runs to list")

func main() {
	flag.Parse()

	reporter := lf.NewReporter()

	toolConfig, err := lf.LoadToolConfig(*toolConfigPath)
	if err != nil {
		reporter.Report(&lf.Report{Message: err.Error(), File: *toolConfigPath}, true)
	}
	toolConfig.ApplyLogLevel()

	if toolConfig.Persistence == nil {
		reporter.Report(&lf.Report{
			Message:    "No [persistence] section in config",
			Suggestion: "add one with name and path to record and list runs",
			File:       *toolConfigPath,
		}, true)
	}

	persist, err := lf.NewPersistence(toolConfig.Persistence)
	if err != nil {
		reporter.Report(&lf.Report{Message: "Failed to create or initialize Persistence: " + err.Error()}, true)
	}
	defer persist.Shutdown()

	recent, err := persist.LoadRecent(*limit)
	if err != nil {
		reporter.Report(&lf.Report{Message: err.Error()}, true)
	}

	for _, run := range recent {
		fmt.Printf("#%d  %s  instructions=%d outputs=%d  %v -> |%s|\n",
			run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.InstructionCount, run.OutputCount, run.Destinations, run.Compiled)
	}

	metrics, err := persist.QueryMetrics()
	if err != nil {
		reporter.Report(&lf.Report{Message: err.Error()}, true)
	}

	fmt.Printf("\nruns=%d avg_compiled_len=%.1f avg_outputs=%.1f max_instructions=%d\n",
		metrics.RunCount, metrics.AvgCompiledLength, metrics.AvgOutputCount, metrics.MaxInstructionCount)
}
