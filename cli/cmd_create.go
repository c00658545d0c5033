package main

import (
	"encoding/json"
	"fmt"

	"github.com/samiksome92/crc32/internals"
)

// CreateCommand defines the CLI command parameters
type CreateCommand struct {
	Paths        []string `json:"paths"`
	Recursive    bool     `json:"recursive"`
	KeepGoing    bool     `json:"keep-going"`
	OutFile      string   `json:"out-file"`
	ConfigOutput bool     `json:"config"`
	JSONOutput   bool     `json:"json"`
}

// recordJSONResult is a struct used to serialize one record as JSON output
type recordJSONResult struct {
	Path     string `json:"path"`
	Checksum string `json:"checksum"`
}

var createCommand *CreateCommand

// createArgs fills the global CreateCommand instance called createCommand
// from the positional arguments and the parser globals.
func createArgs(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf(`expected at least one positional argument {paths}, got none`)
	}

	createCommand = new(CreateCommand)
	createCommand.Paths = args
	createCommand.Recursive = argRecursive
	createCommand.KeepGoing = argKeepGoing
	createCommand.OutFile = argOutFile
	createCommand.ConfigOutput = argConfigOutput
	createCommand.JSONOutput = argJSONOutput

	// handle environment variables
	envKeepGoing, errKeepGoing := EnvToBool("CRC32_KEEP_GOING")
	if errKeepGoing == nil {
		createCommand.KeepGoing = envKeepGoing
	}
	envJSON, errJSON := EnvToBool("CRC32_JSON")
	if errJSON == nil {
		createCommand.JSONOutput = envJSON
		// NOTE ↓ ugly hack, to make cli() report errors in the right format
		argJSONOutput = envJSON
	}

	return nil
}

// Run executes the generation pipeline on the given parameter set,
// writes the records to Output w and error messages to log.
// It returns a pair (exit code, error)
func (c *CreateCommand) Run(w, log Output) (int, error) {
	// config output
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	opts := internals.CreateOptions{
		Recursive: c.Recursive,
		KeepGoing: c.KeepGoing,
		OutFile:   c.OutFile,
	}

	if c.JSONOutput {
		// records are buffered, a JSON array cannot be emitted per file
		results := make([]recordJSONResult, 0, 32)
		result, err := internals.Create(c.Paths, opts, func(record internals.Record) {
			results = append(results, recordJSONResult{
				Path:     record.Path,
				Checksum: internals.FormatChecksum(record.Checksum),
			})
		})
		if err != nil {
			return 2, err
		}

		jsonRepr, err := json.Marshal(results)
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(jsonRepr))

		if result.Failed != nil {
			return 1, result.Failed
		}
		return 0, nil
	}

	result, err := internals.Create(c.Paths, opts, func(record internals.Record) {
		w.Printfln("%s %s", record.Path, internals.FormatChecksum(record.Checksum))
	})
	if err != nil {
		return 2, err
	}
	if result.Failed != nil {
		return 1, result.Failed
	}
	return 0, nil
}
