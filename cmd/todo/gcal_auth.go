package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

var gcalAuthCmd = &cobra.Command{
	Use:   "gcal-auth [CREDENTIALS]",
	Short: "Authorize Google Calendar access and save token.json",
	Long: `Runs the OAuth flow for Desktop App credentials once and writes token.json
next to the credentials file, where the calendar mirror looks for it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGcalAuth,
}

func init() {
	rootCmd.AddCommand(gcalAuthCmd)
}

func runGcalAuth(cmd *cobra.Command, args []string) error {
	credsPath := "google-credentials.json"
	if len(args) > 0 {
		credsPath = args[0]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("reading credentials file %q: %w", credsPath, err)
	}

	oauthCfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("parsing credentials: %w (is %q an OAuth Desktop App credentials file?)", err, credsPath)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Step 1: open this URL in a browser and sign in with your Google account:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	fmt.Fprintln(out)
	fmt.Fprint(out, "Step 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
		return fmt.Errorf("reading authorization code: %w", err)
	}

	tok, err := oauthCfg.Exchange(cmd.Context(), code)
	if err != nil {
		return fmt.Errorf("exchanging authorization code: %w", err)
	}

	tokenPath := filepath.Join(filepath.Dir(credsPath), "token.json")
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("writing %s: %w", tokenPath, err)
	}

	fmt.Fprintf(out, "\ntoken.json saved at %s\n", tokenPath)
	fmt.Fprintln(out, "Restart the server to enable the Google Calendar mirror.")
	return nil
}
