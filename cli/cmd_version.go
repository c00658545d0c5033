package main

import (
	"encoding/json"
	"fmt"

	v1 "github.com/samiksome92/crc32/v1"
	"github.com/spf13/cobra"
)

// VersionCommand defines the CLI command parameters
type VersionCommand struct {
	ConfigOutput bool `json:"config"`
	JSONOutput   bool `json:"json"`
}

// VersionJSONResult is a struct used to serialize JSON output
type VersionJSONResult struct {
	Version     string `json:"version"`
	ReleaseDate string `json:"release-date"`
}

var versionCommand *VersionCommand

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "returns metadata about this implementation",
	Args: func(cmd *cobra.Command, args []string) error {
		// create global VersionCommand instance
		versionCommand = new(VersionCommand)
		versionCommand.ConfigOutput = argConfigOutput
		versionCommand.JSONOutput = argJSONOutput

		// handle environment variables
		envJSON, errJSON := EnvToBool("CRC32_JSON")
		if errJSON == nil {
			versionCommand.JSONOutput = envJSON
			argJSONOutput = envJSON
		}

		return nil
	},
	// Run the version subcommand with versionCommand.
	Run: func(cmd *cobra.Command, args []string) {
		// NOTE global input variables: {w, log, versionCommand}
		exitCode, cmdError = versionCommand.Run(w, log)
		// NOTE global output variables: {exitCode, cmdError}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Run executes the CLI command version on the given parameter set,
// writes the result to Output w and error messages to log.
// It returns a pair (exit code, error)
func (c *VersionCommand) Run(w, log Output) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	versionString := fmt.Sprintf("%d.%d.%d", v1.VERSION_MAJOR, v1.VERSION_MINOR, v1.VERSION_PATCH)

	if !c.JSONOutput {
		w.Println(versionString)
		return 0, nil
	}

	jsonRepr, err := json.Marshal(&VersionJSONResult{Version: versionString, ReleaseDate: v1.RELEASE_DATE})
	if err != nil {
		return 6, fmt.Errorf(resultJSONErrMsg, err)
	}
	w.Println(string(jsonRepr))
	return 0, nil
}
