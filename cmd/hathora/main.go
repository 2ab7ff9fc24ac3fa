// Command hathora is a small CLI over the Hathora Voice AI SDK: list and
// inspect models, synthesize speech, transcribe audio and chat.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
