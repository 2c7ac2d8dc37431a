package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loginCmd exchanges credentials for a bearer token and persists it to
// the config file.
var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in to Pluto",
	Long:  `Exchange your email and password for an API token and save it to the config file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  loginRun,
}

var signupCmd = &cobra.Command{
	Use:   "signup <email>",
	Short: "Create a Pluto account",
	Long:  `Create a new Pluto account and save the resulting API token to the config file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  signupRun,
}

func init() {
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")
	signupCmd.Flags().String("password", "", "account password (prompted when omitted)")
	signupCmd.Flags().String("name", "", "full name for the new account")
}

func loginRun(cmd *cobra.Command, args []string) error {
	password, err := resolvePassword(cmd)
	if err != nil {
		return err
	}

	newToken, err := client.Login(cmd.Context(), args[0], password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := persistToken(newToken); err != nil {
		return err
	}

	fmt.Println("logged in, token saved")
	return nil
}

func signupRun(cmd *cobra.Command, args []string) error {
	password, err := resolvePassword(cmd)
	if err != nil {
		return err
	}

	fullName, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("failed to get name flag: %w", err)
	}
	if fullName == "" {
		fullName = args[0]
	}

	newToken, err := client.Signup(cmd.Context(), args[0], password, fullName)
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	if err := persistToken(newToken); err != nil {
		return err
	}

	fmt.Println("account created, token saved")
	return nil
}

func resolvePassword(cmd *cobra.Command) (string, error) {
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return "", fmt.Errorf("failed to get password flag: %w", err)
	}
	if password != "" {
		return password, nil
	}

	prompt := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password),
	))
	if err := prompt.Run(); err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// persistToken writes the token into the existing config file, keeping
// any colors or budgets the user has set there.
func persistToken(newToken string) error {
	path := viper.ConfigFileUsed()
	if path == "" {
		path = findConfigFile()
	}

	cfg := buildConfig()
	if path != "" {
		if existing, err := loadConfigFromFile(path); err == nil {
			cfg = *existing
		}
	}
	cfg.Token = newToken

	if err := saveConfig(path, cfg); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}
