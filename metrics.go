package longform

import (
	"fmt"
)

// CompileMetrics holds aggregates over every recorded compilation run.
type CompileMetrics struct {
	RunCount            uint
	AvgCompiledLength   float64
	AvgOutputCount      float64
	MaxInstructionCount uint
}

// QueryMetrics computes aggregate metrics across all recorded runs in a
// single query.
func (p *Persistence) QueryMetrics() (*CompileMetrics, error) {
	row := p.DB.Raw(`SELECT COUNT(*),
		COALESCE(AVG(LENGTH(compiled)), 0),
		COALESCE(AVG(output_count), 0),
		COALESCE(MAX(instruction_count), 0)
		FROM compilations`).Row()

	var count int64
	var avgLen, avgOut float64
	var maxIns int64
	if err := row.Scan(&count, &avgLen, &avgOut, &maxIns); err != nil {
		return nil, fmt.Errorf("Failed to query compile metrics: %w", err)
	}

	return &CompileMetrics{
		RunCount:            uint(count),
		AvgCompiledLength:   avgLen,
		AvgOutputCount:      avgOut,
		MaxInstructionCount: uint(maxIns),
	}, nil
}

// QueryLargestRun returns the recorded compilation with the most source
// instructions, or nil when nothing has been recorded yet.
func (p *Persistence) QueryLargestRun() (*Compilation, error) {
	var compilations []*Compilation
	result := p.DB.Order("instruction_count DESC").Limit(1).Find(&compilations)
	if result.Error != nil {
		return nil, fmt.Errorf("Failed to query largest run: %w", result.Error)
	}
	if len(compilations) == 0 {
		return nil, nil
	}
	return compilations[0], nil
}
