package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wanderpair/wanderpair/internal/cli"
	"github.com/wanderpair/wanderpair/internal/services"
)

var registerCmd = &cobra.Command{
	Use:   "register <your-name> <partner-name>",
	Short: "Create a shared account for the two of you",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuthenticate(services.AuthModeRegister, args[0], args[1])
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <your-name> <partner-name>",
	Short: "Log in to your shared map",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuthenticate(services.AuthModeLogin, args[0], args[1])
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Leave the shared session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, err := openWorkspace()
		if err != nil {
			return err
		}
		workspace.Logout()
		fmt.Println("Logged out. The map is back to the default catalog.")
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password <your-name> <partner-name>",
	Short: "Replace a forgotten shared password with a temporary one",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunResetPasswordCommand(config.DBPath, args[0], args[1])
	},
}

func runAuthenticate(mode string, myName string, partnerName string) error {
	password, err := cli.PromptPassword("Shared password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	confirm := ""
	if mode == services.AuthModeRegister {
		confirm, err = cli.PromptPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("read password confirmation: %w", err)
		}
	}

	workspace, err := openWorkspace()
	if err != nil {
		return err
	}

	result := workspace.Authenticate(services.AuthRequest{
		Mode:            mode,
		MyUsername:      myName,
		PartnerUsername: partnerName,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if !result.Success {
		return errors.New(result.Message)
	}

	session := workspace.Session()
	fmt.Printf("%s (%s ❤ %s)\n", result.Message, session.MyUsername, session.PartnerUsername)
	return nil
}

func init() {
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, resetPasswordCmd)
}
