package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	sttModel  string
	sttParams []string
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe an audio file to text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		params, err := parseParams(sttParams)
		if err != nil {
			return err
		}

		resp, err := client.SpeechToText.Create(cmd.Context(), sttModel, args[0], params)
		if err != nil {
			return err
		}
		fmt.Println(resp.Text)
		return nil
	},
}

func init() {
	transcribeCmd.Flags().StringVar(&sttModel, "model", "parakeet", "transcription model")
	transcribeCmd.Flags().StringArrayVar(&sttParams, "param", nil, "model parameter, name=value (repeatable)")
	rootCmd.AddCommand(transcribeCmd)
}
