package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newHwidCmd() *cobra.Command {
	hwidCmd := &cobra.Command{
		Use:   "hwid",
		Short: "Manage HWID registry records",
	}

	hwidCmd.AddCommand(newHwidSubmitCmd())
	hwidCmd.AddCommand(newHwidCheckCmd())
	hwidCmd.AddCommand(newHwidAllowCmd())
	hwidCmd.AddCommand(newHwidDisallowCmd())
	hwidCmd.AddCommand(newHwidListCmd())

	return hwidCmd
}

func newHwidSubmitCmd() *cobra.Command {
	var executor, userID, username string

	cmd := &cobra.Command{
		Use:   "submit <hwid>",
		Short: "Submit a HWID record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"hwid": args[0]}
			if executor != "" {
				body["executor"] = executor
			}
			if userID != "" || username != "" {
				body["player"] = map[string]any{
					"userId":   userID,
					"username": username,
				}
			}

			var result SubmitResult
			if err := client.Post("/api/v1/hwid", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&executor, "executor", "", "Executor label")
	cmd.Flags().StringVar(&userID, "user-id", "", "Player user ID")
	cmd.Flags().StringVar(&username, "username", "", "Player username")

	return cmd
}

func newHwidCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <hwid>",
		Short: "Check whether a HWID exists and is allowed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CheckResult
			path := fmt.Sprintf("/api/v1/hwid/check/%s", url.PathEscape(args[0]))
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newHwidAllowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "allow <hwid>",
		Short: "Mark a HWID as allowed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ActionResult
			path := fmt.Sprintf("/api/v1/hwid/allow/%s", url.PathEscape(args[0]))
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newHwidDisallowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disallow <hwid>",
		Short: "Mark a HWID as disallowed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ActionResult
			path := fmt.Sprintf("/api/v1/hwid/disallow/%s", url.PathEscape(args[0]))
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newHwidListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the full HWID registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RegistryDocument
			if err := client.Get("/api/v1/hwid", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
