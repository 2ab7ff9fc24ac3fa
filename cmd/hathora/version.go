package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	goversion "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"

	"github.com/hathora/hathora-go/internal/cli"
)

var appVersion = "v0.3.0"

type githubRelease struct {
	TagName string `json:"tag_name"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version and check for updates",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hathora %s\n", appVersion)
		checkForUpdates()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// checkForUpdates compares the running version against the latest GitHub
// release. Best-effort: any failure stays silent.
func checkForUpdates() {
	client := http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("https://api.github.com/repos/hathora/hathora-go/releases/latest")
	if err != nil {
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return
	}

	current, err := goversion.NewVersion(appVersion)
	if err != nil {
		return
	}
	latest, err := goversion.NewVersion(release.TagName)
	if err != nil {
		return
	}

	if current.LessThan(latest) {
		fmt.Printf("%s a newer version is available: %s\n", cli.Arrow(), release.TagName)
	}
}
