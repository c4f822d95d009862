package main

import (
	"fmt"
	"os"

	"github.com/attohq/attoval/value"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "b64",
		Short: "Encode or decode standard base64",
	}
	cmd.AddCommand(newB64EncodeCmd(), newB64DecodeCmd())
	rootCmd.AddCommand(cmd)
}

func newB64EncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "Base64-encode stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdin()
			if err != nil {
				return err
			}
			buf := value.NewBufferFromBytes([]byte(text))
			fmt.Fprintln(os.Stdout, buf.ToBase64().String())
			return nil
		},
	}
}

func newB64DecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Base64-decode stdin (lenient: ignores unrecognized characters)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdin()
			if err != nil {
				return err
			}
			buf := value.BufferFromBase64(value.NewStringFromBytes([]byte(text)))
			_, err = os.Stdout.Write(buf.Bytes())
			return err
		},
	}
}
