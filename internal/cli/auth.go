package cli

import (
	"context"

	"github.com/urano-b2b/internal/provider"
	"github.com/urano-b2b/internal/service"

	"github.com/spf13/cobra"
)

func newLoginCommand(r *runner) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Iniciar sesión",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return WrapExitError(ExitCommandError, "falta --password", nil)
			}
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				identity, err := sf.Auth.Login(ctx, args[0], password)
				if err != nil {
					return err
				}
				if out.JSON() {
					return out.WriteJSON(identity)
				}
				out.Printf("Bienvenido, %s (%s)\n", identity.Name, identity.Email)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña")
	return cmd
}

func newLogoutCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión (el carrito se conserva)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				if err := sf.Auth.Logout(); err != nil {
					return err
				}
				out.Printf("Sesión cerrada\n")
				return nil
			})
		},
	}
}

func newWhoamiCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar la sesión actual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				identity, ok := sf.Auth.CurrentUser()
				if !ok {
					return errNotLoggedIn
				}
				if out.JSON() {
					return out.WriteJSON(identity)
				}
				out.Printf("%s <%s>\n", identity.Name, identity.Email)
				return nil
			})
		},
	}
}

var errNotLoggedIn = WrapExitError(ExitFailure, "no hay sesión iniciada", service.ErrNotAuthenticated)
