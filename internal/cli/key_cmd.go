package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/splanner/internal/cli/formatter"
	"github.com/alexanderramin/splanner/internal/credential"
)

func newKeyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Quản lý API Key",
	}
	cmd.AddCommand(newKeySetCmd(app), newKeyStatusCmd(app), newKeyClearCmd(app))
	return cmd
}

func newKeySetCmd(app *App) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Thiết lập API Key cá nhân",
		Long:  "Prompts for the key on a terminal. Without one the key is read from the first line of stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &keyDraft{Label: label}
			if app.interactive() {
				if err := d.form().Run(); err != nil {
					return err
				}
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading key from stdin: %w", err)
				}
				d.Key = strings.TrimSpace(line)
			}

			c, err := app.Credentials.Select(cmd.Context(), d.Key, d.Label)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Đã lưu API Key %s\n", formatter.StyleGreen.Render("✔"), c.MaskedKey())
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "label for the key")

	return cmd
}

func newKeyStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Kiểm tra API Key",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Credentials.Current(cmd.Context())
			if errors.Is(err, credential.ErrNoCredential) {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCredentialStatus(nil))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCredentialStatus(&c))
			return nil
		},
	}
}

func newKeyClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Xóa API Key đã lưu",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Credentials.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Đã xóa API Key đã lưu\n", formatter.StyleGreen.Render("✔"))
			return nil
		},
	}
}
