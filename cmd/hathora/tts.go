package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hathora/hathora-go/internal/cli"
)

var (
	ttsModel  string
	ttsOut    string
	ttsParams []string
)

var ttsCmd = &cobra.Command{
	Use:   "tts <text>",
	Short: "Synthesize speech from text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		params, err := parseParams(ttsParams)
		if err != nil {
			return err
		}

		resp, err := client.TextToSpeech.Convert(cmd.Context(), ttsModel, args[0], params)
		if err != nil {
			return err
		}
		if err := resp.Save(ttsOut); err != nil {
			return err
		}

		log.Info("audio saved", zap.String("path", ttsOut), zap.Int("bytes", len(resp.Content)))
		fmt.Printf("%s wrote %d bytes to %s\n", cli.CheckMark(), len(resp.Content), ttsOut)
		return nil
	},
}

func init() {
	ttsCmd.Flags().StringVar(&ttsModel, "model", "kokoro", "speech synthesis model (kokoro, resemble)")
	ttsCmd.Flags().StringVar(&ttsOut, "out", "output.wav", "output file path")
	ttsCmd.Flags().StringArrayVar(&ttsParams, "param", nil, "model parameter, name=value (repeatable)")
	rootCmd.AddCommand(ttsCmd)
}
