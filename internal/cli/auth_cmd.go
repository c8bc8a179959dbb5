package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/learner/internal/cli/formatter"
	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/service"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Register, log in and out",
	}

	cmd.AddCommand(
		newAuthRegisterCmd(app),
		newAuthLoginCmd(app),
		newAuthLogoutCmd(app),
		newAuthWhoAmICmd(app),
	)

	return cmd
}

// credentialFlags are shared by register and login.
type credentialFlags struct {
	email         string
	passwordStdin bool
}

func (f *credentialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.email, "email", "", "Account email")
	cmd.Flags().BoolVar(&f.passwordStdin, "password-stdin", false, "Read the password from the first line of stdin")
}

// resolve fills in missing credentials from stdin or prompts.
func (f *credentialFlags) resolve(ctx context.Context, cmd *cobra.Command, app *App, confirm bool) (string, string, error) {
	email := strings.TrimSpace(f.email)
	if email == "" {
		if !app.interactive() {
			return "", "", fmt.Errorf("--email is required")
		}
		var err error
		if email, err = app.prompter().Input(ctx, "Email", "you@example.com"); err != nil {
			return "", "", err
		}
	}

	if f.passwordStdin {
		pw, err := readPasswordLine(cmd.InOrStdin())
		return email, pw, err
	}
	if !app.interactive() {
		return "", "", fmt.Errorf("use --password-stdin to pass a password without a terminal")
	}

	pw, err := app.prompter().Password(ctx, "Password")
	if err != nil {
		return "", "", err
	}
	if confirm {
		again, err := app.prompter().Password(ctx, "Repeat password")
		if err != nil {
			return "", "", err
		}
		if again != pw {
			return "", "", fmt.Errorf("%w: passwords do not match", service.ErrInvalidInput)
		}
	}
	return email, pw, nil
}

func readPasswordLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return "", fmt.Errorf("reading password: stdin is empty")
	}
	return strings.TrimRight(sc.Text(), "\r"), nil
}

func newAuthRegisterCmd(app *App) *cobra.Command {
	var creds credentialFlags
	var name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a local account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			email, pw, err := creds.resolve(ctx, cmd, app, true)
			if err != nil {
				return err
			}

			u, err := app.Auth.Register(ctx, service.RegisterRequest{
				Email:       email,
				Password:    pw,
				DisplayName: name,
			})
			if err != nil {
				return err
			}
			if _, err := app.Auth.Login(ctx, email, pw); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Account created.\n", formatter.StyleGreen.Render("✔"))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWhoAmI(u))
			return nil
		},
	}

	creds.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	return cmd
}

func newAuthLoginCmd(app *App) *cobra.Command {
	var creds credentialFlags

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			email, pw, err := creds.resolve(ctx, cmd, app, false)
			if err != nil {
				return err
			}

			u, err := app.Auth.Login(ctx, email, pw)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWhoAmI(u))
			return nil
		},
	}

	creds.register(cmd)
	return cmd
}

func newAuthLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved login",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runLogout(cmd.Context(), app, cmd.OutOrStdout())
			return err
		},
	}
}

func newAuthWhoAmICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runWhoAmI(cmd.Context(), app, cmd.OutOrStdout())
			return err
		},
	}
}

func runLogout(ctx context.Context, app *App, w io.Writer) (*domain.User, error) {
	u, err := app.Auth.Logout(ctx)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "Logged out %s.\n", u.Email)
	return u, nil
}

func runWhoAmI(ctx context.Context, app *App, w io.Writer) (*domain.User, error) {
	u, err := requireUser(ctx, app)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(w, formatter.FormatWhoAmI(u))
	return u, nil
}
