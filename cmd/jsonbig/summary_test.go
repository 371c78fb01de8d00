package main

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sonnes/jsonbig/process"
	"github.com/stretchr/testify/assert"
)

func TestSummaryLine(t *testing.T) {
	tests := []struct {
		name  string
		stats *process.Stats
		want  string
	}{
		{
			"lines mode",
			&process.Stats{Records: 2, Fields: 3, Mode: process.ModeLines, OutputPath: "data-bigint.jsonl"},
			"converted 3 fields in 2 records -> data-bigint.jsonl",
		},
		{
			"single record",
			&process.Stats{Records: 1, Fields: 1, Mode: process.ModeLines, OutputPath: "data-bigint.json"},
			"converted 1 field in 1 record -> data-bigint.json",
		},
		{
			"document mode",
			&process.Stats{Records: 1, Fields: 2, Mode: process.ModeDocument, OutputPath: "data-bigint.json"},
			"converted 2 fields in 1 document -> data-bigint.json",
		},
		{
			"nothing converted",
			&process.Stats{Records: 5, Fields: 0, Mode: process.ModeLines, OutputPath: "out.jsonl"},
			"converted 0 fields in 5 records -> out.jsonl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summaryLine(tt.stats, false))

			// The styled line carries the same text under the ANSI codes.
			assert.Equal(t, tt.want, ansi.Strip(summaryLine(tt.stats, true)))
		})
	}
}
