package main

import (
	"fmt"
	"os"

	"github.com/attohq/attoval/value"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Encode or decode attoval's canonical JSON",
	}
	cmd.AddCommand(newJSONEncodeCmd(), newJSONDecodeCmd())
	rootCmd.AddCommand(cmd)
}

func newJSONEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "Parse lenient JSON from stdin and re-emit it in canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdin()
			if err != nil {
				return err
			}
			cell := value.ParseJSON(value.NewStringFromBytes([]byte(text)))
			fmt.Fprintln(os.Stdout, value.EncodeJSON(cell))
			return nil
		},
	}
}

func newJSONDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Parse JSON from stdin and print its type and length",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdin()
			if err != nil {
				return err
			}
			cell := value.ParseJSON(value.NewStringFromBytes([]byte(text)))
			printInfo("kind: %s\n", cell.Kind())
			switch cell.Kind() {
			case value.KindList:
				printInfo("length: %d\n", cell.AsList().Length())
			case value.KindMap:
				printInfo("length: %d\n", cell.AsMap().Length())
			}
			return nil
		},
	}
}
