package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Registration wizard commands",
	}

	cmd.AddCommand(newRegisterShowCmd())
	cmd.AddCommand(newRegisterSetCmd())
	cmd.AddCommand(newRegisterNextCmd())
	cmd.AddCommand(newRegisterPreviousCmd())
	cmd.AddCommand(newRegisterJumpCmd())
	cmd.AddCommand(newRegisterSubmitCmd())

	return cmd
}

func newRegisterShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current wizard state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WizardState

			if err := client.Get("/api/v1/register/wizard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRegisterSetCmd() *cobra.Command {
	fields := map[string]*string{}
	var licenseUnknown bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set draft fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only send flags the caller actually passed
			req := map[string]any{}
			for name, value := range fields {
				if cmd.Flags().Changed(name) {
					req[flagToField(name)] = *value
				}
			}
			if cmd.Flags().Changed("license-unknown") {
				req["licenseUnknown"] = licenseUnknown
			}
			if len(req) == 0 {
				return fmt.Errorf("no fields to set")
			}

			var result WizardState
			if err := client.Patch("/api/v1/register/wizard", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flagNames := []string{
		"first-name", "last-name", "email", "password", "password-confirm",
		"license-choice", "license-number",
		"city", "cin", "gender", "phone", "birth-date", "address",
		"discipline", "passport-number", "birth-place", "study-level", "club",
	}
	for _, name := range flagNames {
		fields[name] = cmd.Flags().String(name, "", "")
	}
	cmd.Flags().BoolVar(&licenseUnknown, "license-unknown", false, "License number is unknown")

	return cmd
}

// flagToField converts a kebab-case flag name to the API field name
func flagToField(flag string) string {
	switch flag {
	case "first-name":
		return "firstName"
	case "last-name":
		return "lastName"
	case "password-confirm":
		return "passwordConfirm"
	case "license-choice":
		return "licenseChoice"
	case "license-number":
		return "licenseNumber"
	case "birth-date":
		return "birthDate"
	case "passport-number":
		return "passportNumber"
	case "birth-place":
		return "birthPlace"
	case "study-level":
		return "studyLevel"
	default:
		return flag
	}
}

func newRegisterNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Validate the current group and advance",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WizardState

			if err := client.Post("/api/v1/register/wizard/next", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRegisterPreviousCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "previous",
		Short: "Go back one step",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WizardState

			if err := client.Post("/api/v1/register/wizard/previous", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRegisterJumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jump <step>",
		Short: "Jump to a step (basic, details, optional)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"step": args[0]}
			var result WizardState

			if err := client.Post("/api/v1/register/wizard/jump", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRegisterSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Submit the completed registration",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RegisterResult

			if err := client.Post("/api/v1/register/submit", nil, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
