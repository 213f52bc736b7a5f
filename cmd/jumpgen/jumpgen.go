package main

import (
	"log"
	"os"

	"github.com/fabric-jumpstart/jumpgen/cmd/jumpgen/generate"
	"github.com/fabric-jumpstart/jumpgen/cmd/jumpgen/preview"
	"github.com/fabric-jumpstart/jumpgen/cmd/jumpgen/validate"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{Use: "jumpgen"}
)

func init() {
	rootCmd.AddCommand(generate.GetCommands()...)
	rootCmd.AddCommand(validate.GetCommands()...)
	rootCmd.AddCommand(preview.GetCommands()...)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			log.Print("Jumpstart catalog content generator")
		}})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
