package main

import (
	"fmt"
	"os"

	"github.com/attohq/attoval/value"
	"github.com/spf13/cobra"
)

var formatArgsPath string

func init() {
	cmd := &cobra.Command{
		Use:   "format <template>",
		Short: "Interpolate {n}/{key} tokens in a template against a JSON List or Map",
		Long: `format reads a template string as its sole argument and a JSON
List or Map on stdin, and prints the result of String.Format against it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(args[0])
		},
	}
	cmd.Flags().StringVar(&formatArgsPath, "args", "", "read the JSON args from this file instead of stdin")
	rootCmd.AddCommand(cmd)
}

func runFormat(template string) error {
	var raw string
	if formatArgsPath != "" {
		data, err := os.ReadFile(formatArgsPath)
		if err != nil {
			return fmt.Errorf("reading args file: %w", err)
		}
		raw = string(data)
	} else {
		text, err := readStdin()
		if err != nil {
			return err
		}
		raw = text
	}

	args := value.ParseJSON(value.NewStringFromBytes([]byte(raw)))
	out := value.NewStringFromBytes([]byte(template)).Format(args)
	fmt.Fprintln(os.Stdout, out.String())
	return nil
}
