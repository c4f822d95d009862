package main

import (
	"fmt"
	"os"

	"github.com/attohq/attoval/value"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Encode or decode attoval's RFC-4180-ish CSV dialect",
	}
	cmd.AddCommand(newCSVEncodeCmd(), newCSVDecodeCmd())
	rootCmd.AddCommand(cmd)
}

func newCSVEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "Read a JSON list-of-lists from stdin and print CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdin()
			if err != nil {
				return err
			}
			rows := value.FromJSON(value.NewStringFromBytes([]byte(text)))
			fmt.Fprint(os.Stdout, rows.ToCSV().String())
			return nil
		},
	}
}

func newCSVDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Read CSV from stdin and print it as a canonical JSON list-of-lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdin()
			if err != nil {
				return err
			}
			rows := value.FromCSV(value.NewStringFromBytes([]byte(text)))
			fmt.Fprintln(os.Stdout, rows.ToJSON())
			return nil
		},
	}
}
