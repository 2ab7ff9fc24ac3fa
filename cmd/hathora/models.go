package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hathora/hathora-go/internal/cli"
	"github.com/hathora/hathora-go/pkg/registry"
)

var modelsCmd = &cobra.Command{
	Use:   "models [capability]",
	Short: "List available models, optionally for one capability",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		capabilities := registry.Capabilities()
		if len(args) == 1 {
			capabilities = []registry.Capability{registry.Capability(args[0])}
		}

		for _, capability := range capabilities {
			keys := client.Registry().Models(capability)
			fmt.Printf("%s %s\n", cli.Arrow(), cli.Style(string(capability), cli.Bold))
			if len(keys) == 0 {
				fmt.Println("    (no models)")
				continue
			}
			for _, key := range keys {
				fmt.Printf("    %s\n", key)
			}
		}
		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <model>",
	Short: "Show a model's parameters, defaults and descriptions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		for _, capability := range registry.Capabilities() {
			def, err := client.Registry().Lookup(capability, args[0])
			if err != nil {
				continue
			}
			fmt.Print(registry.Help(def))
			return nil
		}
		return fmt.Errorf("unknown model %q, try: hathora models", args[0])
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(describeCmd)
}
