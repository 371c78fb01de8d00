// Package process drives one conversion run: it detects the input
// format (JSON-Lines vs a single JSON document), converts every record,
// and writes the compact result.
package process

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sonnes/jsonbig/convert"
)

// maxLineSize is the maximum JSONL line size (1 MB). Identifier-heavy
// records can exceed the default 64 KB bufio.Scanner buffer.
const maxLineSize = 1 << 20

// errInvalid reports that neither parse strategy accepted the input.
var errInvalid = errors.New("invalid JSON format")

// Mode identifies which parse strategy a run settled on.
type Mode string

const (
	// ModeLines means the input was processed as JSON-Lines.
	ModeLines Mode = "jsonl"
	// ModeDocument means the input was processed as one JSON document.
	ModeDocument Mode = "json"
)

// Stats summarizes one conversion run.
type Stats struct {
	Records    int
	Fields     int
	Mode       Mode
	OutputPath string
}

// DefaultOutputPath derives an output path by inserting "-bigint"
// before the input path's extension. A path without an extension gets
// the suffix appended to the bare name.
func DefaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "-bigint" + ext
}

// Run converts inputPath into outputPath. An empty outputPath derives
// the destination via DefaultOutputPath.
//
// The first line of the input is trial-decoded: success confirms
// JSON-Lines mode for the whole file, failure rewinds the input and
// decodes it as a single document. When both attempts fail, Run logs a
// diagnostic naming the input file and returns (nil, nil); callers
// cannot distinguish that case by error value. A decode failure on a
// later line in confirmed JSON-Lines mode is fatal, and lines already
// written stay in the output file.
func Run(inputPath, outputPath string, conv *convert.Converter) (*Stats, error) {
	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath)
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	stats, err := transform(in, out, conv)
	if err != nil {
		if errors.Is(err, errInvalid) {
			log.Errorf("invalid JSON format in file %s", inputPath)
			return nil, nil
		}
		return nil, err
	}

	stats.OutputPath = outputPath
	log.Debug("converted",
		"input", inputPath,
		"output", outputPath,
		"mode", stats.Mode,
		"records", stats.Records,
		"fields", stats.Fields)
	return stats, nil
}

// transform scans in as JSON-Lines, falling back to single-document
// mode when the very first line does not decode.
func transform(in io.ReadSeeker, out io.Writer, conv *convert.Converter) (*Stats, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	stats := &Stats{Mode: ModeLines}
	for scanner.Scan() {
		doc, err := decodeLine(scanner.Bytes())
		if err != nil {
			if stats.Records == 0 {
				return transformDocument(in, out, conv)
			}
			return nil, fmt.Errorf("decode line %d: %w", stats.Records+1, err)
		}

		converted, n := conv.Convert(doc)
		encoded, err := encodeCompact(converted)
		if err != nil {
			return nil, fmt.Errorf("encode line %d: %w", stats.Records+1, err)
		}
		if _, err := out.Write(append(encoded, '\n')); err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}

		stats.Records++
		stats.Fields += n
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return stats, nil
}

// transformDocument rewinds in and converts it as one JSON document,
// written with no trailing newline. Content after the first document
// is ignored.
func transformDocument(in io.ReadSeeker, out io.Writer, conv *convert.Converter) (*Stats, error) {
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind input: %w", err)
	}

	dec := json.NewDecoder(in)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errInvalid
	}

	converted, n := conv.Convert(doc)
	encoded, err := encodeCompact(converted)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if _, err := out.Write(encoded); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	return &Stats{Records: 1, Fields: n, Mode: ModeDocument}, nil
}

// decodeLine parses a JSONL record: exactly one JSON value per line,
// with numbers kept as json.Number so wide integer literals survive
// re-encoding intact.
func decodeLine(line []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}

// encodeCompact serializes v with no inserted whitespace and no HTML
// escaping.
func encodeCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
