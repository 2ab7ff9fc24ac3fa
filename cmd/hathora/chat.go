package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hathora/hathora-go/internal/cli"
)

var (
	chatModel  string
	chatParams []string
	chatJSON   bool
)

var chatCmd = &cobra.Command{
	Use:   "chat <prompt>",
	Short: "Send a prompt to a chat model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		params, err := parseParams(chatParams)
		if err != nil {
			return err
		}

		resp, err := client.LLM.ChatText(cmd.Context(), chatModel, args[0], params)
		if err != nil {
			return err
		}

		if chatJSON {
			raw, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(cli.HighlightJSON(string(raw)))
			return nil
		}
		fmt.Println(resp.Content())
		return nil
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatModel, "model", "qwen", "chat model")
	chatCmd.Flags().StringArrayVar(&chatParams, "param", nil, "model parameter, name=value (repeatable)")
	chatCmd.Flags().BoolVar(&chatJSON, "json", false, "print the full response as highlighted JSON")
	rootCmd.AddCommand(chatCmd)
}
