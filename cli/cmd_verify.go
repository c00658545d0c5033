package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/samiksome92/crc32/internals"
)

// VerifyCommand defines the CLI command parameters
type VerifyCommand struct {
	SfvFile      string `json:"sfv-file"`
	ConfigOutput bool   `json:"config"`
	JSONOutput   bool   `json:"json"`
}

// outcomeJSONResult is a struct used to serialize one outcome as JSON output
type outcomeJSONResult struct {
	Path     string `json:"path"`
	Status   string `json:"status"`
	Expected string `json:"expected"`
	Computed string `json:"computed,omitempty"`
	Error    string `json:"error,omitempty"`
}

var verifyCommand *VerifyCommand

// status tags of the plain text output
var statusOK = color.New(color.FgGreen, color.Bold)
var statusFailed = color.New(color.FgYellow, color.Bold)
var statusError = color.New(color.FgRed, color.Bold)

// verifyArgs fills the global VerifyCommand instance called verifyCommand
// from the positional arguments and the parser globals.
func verifyArgs(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf(`expected one positional argument {sfv-file}, got none`)
	}
	if len(args) > 1 {
		return fmt.Errorf(`expected exactly one positional argument in verify mode, got %d`, len(args))
	}
	if argOutFile != "" {
		return fmt.Errorf(`cannot accept --out-file in verify mode`)
	}

	verifyCommand = new(VerifyCommand)
	verifyCommand.SfvFile = args[0]
	verifyCommand.ConfigOutput = argConfigOutput
	verifyCommand.JSONOutput = argJSONOutput

	// handle environment variables
	envJSON, errJSON := EnvToBool("CRC32_JSON")
	if errJSON == nil {
		verifyCommand.JSONOutput = envJSON
		// NOTE ↓ ugly hack, to make cli() report errors in the right format
		argJSONOutput = envJSON
	}

	return nil
}

// Run executes the verification pipeline on the given parameter set,
// writes per-record outcomes to Output w and error messages to log.
// It returns a pair (exit code, error)
func (c *VerifyCommand) Run(w, log Output) (int, error) {
	// config output
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	if c.JSONOutput {
		results := make([]outcomeJSONResult, 0, 32)
		ok, err := internals.Verify(c.SfvFile, func(outcome internals.Outcome) {
			result := outcomeJSONResult{
				Path:     outcome.Path,
				Status:   outcome.Status.String(),
				Expected: internals.FormatChecksum(outcome.Expected),
			}
			switch outcome.Status {
			case internals.StatusOK, internals.StatusMismatch:
				result.Computed = internals.FormatChecksum(outcome.Computed)
			case internals.StatusError:
				result.Error = outcome.Err.Error()
			}
			results = append(results, result)
		})
		if err != nil {
			return 2, err
		}

		jsonRepr, err := json.Marshal(results)
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(jsonRepr))

		if !ok {
			return 1, nil
		}
		return 0, nil
	}

	ok, err := internals.Verify(c.SfvFile, func(outcome internals.Outcome) {
		switch outcome.Status {
		case internals.StatusOK:
			w.Printfln("%s %s", outcome.Path, statusOK.Sprint("OK"))
		case internals.StatusMismatch:
			w.Printfln("%s %s %s ≠ %s", outcome.Path, statusFailed.Sprint("FAILED"),
				internals.FormatChecksum(outcome.Computed), internals.FormatChecksum(outcome.Expected))
		case internals.StatusError:
			w.Printfln("%s %s %s", outcome.Path, statusError.Sprint("ERROR"), outcome.Err)
		}
	})
	if err != nil {
		return 2, err
	}
	if !ok {
		return 1, nil
	}
	return 0, nil
}
