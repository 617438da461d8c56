package main

import "github.com/spf13/cobra"

func runMenu(_ *cobra.Command, _ []string) error {
	return runLocal(nil)
}
