package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <hwid>",
		Short: "Verify a HWID against the flat allow list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ActionResult
			body := map[string]string{"hwid": args[0]}
			if err := client.Post("/api/v1/verify", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(ActionResult{
				Success: result.Success,
				Message: "HWID is authorized",
			})
			return nil
		},
	}
}

func newManageCmd() *cobra.Command {
	manageCmd := &cobra.Command{
		Use:   "manage",
		Short: "Manage the flat allow list",
	}

	manageCmd.AddCommand(newManageActionCmd("add", "Add a HWID to the allow list"))
	manageCmd.AddCommand(newManageActionCmd("remove", "Remove a HWID from the allow list"))

	manageCmd.PersistentFlags().StringVar(&cfg.AdminKey, "admin-key", cfg.AdminKey, "Admin key (env: HWIDCTL_ADMIN_KEY)")

	return manageCmd
}

func newManageActionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <hwid>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.AdminKey == "" {
				return errors.New("admin key required (--admin-key or HWIDCTL_ADMIN_KEY)")
			}

			body := map[string]string{
				"action":   action,
				"hwid":     args[0],
				"adminKey": cfg.AdminKey,
			}

			var result ActionResult
			if err := client.Post("/api/v1/manage", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
