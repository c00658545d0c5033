package main

import (
	"encoding/json"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the tool without any subcommand.
// The create/verify switch follows the --verify flag, matching the
// conventional SFV tool interface.
var rootCmd = &cobra.Command{
	Use:   "crc32 [paths...]",
	Short: "Compute CRC32 checksums of files and verify SFV checksum files",
	Long: `Computes the CRC32 checksum of the files provided. Directory arguments are
listed, and with --recursive descended into; the result is reported in
sorted order as ‘<path> <checksum>’ lines and can be written to an SFV
file. With --verify, the first argument names an SFV file whose records
are checked against the filesystem. For example:

	crc32 -r -o music.sfv music/
	crc32 -v music.sfv
`,
	SilenceUsage: true,
	// Args considers all arguments (in the function arguments and global
	// variables of the command line parser) with the goal to define EITHER
	// the global CreateCommand instance called createCommand OR the global
	// VerifyCommand instance called verifyCommand, depending on --verify.
	// It EITHER succeeds, fills the instance appropriately and returns nil.
	// OR returns an error instance and the instance is incomplete.
	Args: func(cmd *cobra.Command, args []string) error {
		envNoColor, errNoColor := EnvToBool("CRC32_NO_COLOR")
		if errNoColor == nil {
			argNoColor = envNoColor
		}
		if argNoColor {
			color.NoColor = true
		}

		if argVerify {
			return verifyArgs(args)
		}
		return createArgs(args)
	},
	// Run the selected pipeline with createCommand or verifyCommand
	Run: func(cmd *cobra.Command, args []string) {
		// NOTE global input variables: {w, log, createCommand, verifyCommand}
		if argVerify {
			exitCode, cmdError = verifyCommand.Run(w, log)
		} else {
			exitCode, cmdError = createCommand.Run(w, log)
		}
		// NOTE global output variables: {exitCode, cmdError}
	},
}

func init() {
	f := rootCmd.PersistentFlags()

	f.BoolVarP(&argRecursive, `recursive`, `r`, false, `parse directories recursively`)
	f.StringVarP(&argOutFile, `out-file`, `o`, EnvOr("CRC32_OUT_FILE", ""), `output file name`)
	f.BoolVarP(&argVerify, `verify`, `v`, false, `verify a checksum file`)
	f.BoolVar(&argKeepGoing, `keep-going`, false, `skip files and directories that cannot be read instead of aborting`)
	f.BoolVar(&argNoColor, `no-color`, false, `disable colored status output`)
	f.BoolVar(&argConfigOutput, `config`, false, `only prints the configuration and terminates`)
	f.BoolVar(&argJSONOutput, `json`, false, `return output as JSON, not as plain text`)
}

// errorResponse is the uniform representation of a fatal error
type errorResponse struct {
	ErrorMessage string `json:"error"`
}

func cli() int {
	w = &plainOutput{device: os.Stdout}
	log = &plainOutput{device: os.Stderr}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := rootCmd.Execute(); err != nil {
		// cobra has reported the parse error already
		return 2
	}

	if cmdError != nil {
		if argJSONOutput {
			jsonRepr, err := json.Marshal(&errorResponse{cmdError.Error()})
			if err != nil {
				logrus.Errorf(resultJSONErrMsg, err)
			} else {
				log.Println(string(jsonRepr))
			}
		} else {
			logrus.Error(cmdError)
		}
		if exitCode == 0 {
			exitCode = 2
		}
	}

	return exitCode
}

func main() {
	exitcode := cli()
	os.Exit(exitcode)
}
