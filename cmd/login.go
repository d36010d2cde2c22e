// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"restaurantai/cli/internal/auth"
	"restaurantai/cli/internal/httperrors"
	"restaurantai/cli/internal/simulation"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	loginCreate    bool
	loginNoBrowser bool
	loginToken     string
)

// loginCmd signs in through the backend's Google flow. The backend redirects the
// browser to the dashboard with an access token, which the user pastes back here.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with Google and store the access token",
	Long: `The login command asks the backend for a Google sign-in link and opens it in
your browser. After signing in, the browser lands on the dashboard page; copy that
address and paste it here. The access token it carries is stored in the OS keychain.

Use --create to allow a new account to be created, for example to keep the result
of a simulation you ran as a guest.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
		defer cancel()

		km, err := rt.requireKeys()
		if err != nil {
			return err
		}
		svc := auth.NewService(rt.be, km)

		if loginToken == "" {
			if account, ok, _ := svc.WhoAmI(ctx); ok {
				fmt.Printf("Already logged in as %s\n", account)
				return nil
			}
		}

		pending, hasPending, err := simulation.LoadPending()
		if err != nil {
			rt.log.Debug("pending simulation unreadable", rt.log.Args("error", err.Error()))
		}

		pasted := loginToken
		if pasted == "" {
			authURL, err := withSpinner("Requesting sign-in link", func() (string, error) {
				return svc.LoginURL(ctx, loginCreate || hasPending)
			})
			if err != nil {
				return shownError{httperrors.Present(err, "requesting the sign-in link", rt.endpoint, "")}
			}
			fmt.Println("Open this link to sign in with Google:")
			fmt.Printf("%s\n\n", authURL)
			if !loginNoBrowser {
				openBrowser(authURL)
			}
			pasted, err = readLine("Paste the address of the page you were sent to: ", true)
			if err != nil {
				return err
			}
		}

		account, err := withSpinner("Verifying", func() (string, error) {
			return svc.Complete(ctx, pasted)
		})
		if err != nil {
			return shownError{httperrors.Present(err, "verifying the token", rt.endpoint, "")}
		}
		fmt.Println(getRandomLoginGreeting(account))

		if hasPending {
			pterm.Println()
			pterm.Info.Printfln("A guest simulation from %s is saved on this machine.", pending.SavedAt.Local().Format("2006-01-02 15:04"))
			pterm.Println("   Run 'restaurantai simulate --resume' to submit it under your account.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().BoolVar(&loginCreate, "create", false, "Allow a new account to be created")
	loginCmd.Flags().BoolVar(&loginNoBrowser, "no-browser", false, "Print the sign-in link without opening a browser")
	loginCmd.Flags().StringVar(&loginToken, "token", "", "Use this access token or redirect URL instead of signing in interactively")
}

// getRandomLoginGreeting returns a random greeting phrase with the user's identifier
func getRandomLoginGreeting(identifier string) string {
	greetings := []string{
		"🎉 Welcome back, %s!",
		"✨ Great to see you, %s!",
		"🚀 You're all set, %s!",
		"👋 Hello %s! Ready to plan your opening?",
		"🌟 Welcome aboard, %s!",
		"✅ Signed in as %s",
	}
	return fmt.Sprintf(greetings[rand.IntN(len(greetings))], identifier)
}
