package cli

import (
	"context"
	"strconv"

	"github.com/urano-b2b/internal/provider"

	"github.com/spf13/cobra"
)

func newCartCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Gestionar el carrito",
	}
	cmd.AddCommand(newCartShowCommand(r))
	cmd.AddCommand(newCartAddCommand(r))
	cmd.AddCommand(newCartUpdateCommand(r))
	cmd.AddCommand(newCartRemoveCommand(r))
	cmd.AddCommand(newCartClearCommand(r))
	return cmd
}

func newCartShowCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Mostrar el carrito",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				return printCart(sf, out)
			})
		},
	}
}

func newCartAddCommand(r *runner) *cobra.Command {
	var quantity int
	cmd := &cobra.Command{
		Use:   "add <productId>",
		Short: "Agregar un producto al carrito",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				detail, err := sf.Catalog.GetProduct(ctx, args[0])
				if err != nil {
					return err
				}
				if _, err := sf.Catalog.AddToCart(detail.Product, quantity); err != nil {
					return reported(err)
				}
				if out.JSON() {
					return out.WriteJSON(sf.Cart.Items())
				}
				out.Printf("Carrito: %d unidades · %s\n", sf.Cart.TotalItems(), FormatARS(sf.Cart.TotalPrice()))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&quantity, "qty", "q", 1, "cantidad")
	return cmd
}

func newCartUpdateCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "update <productId> <cantidad>",
		Short: "Cambiar la cantidad (0 elimina la línea)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "cantidad inválida", err)
			}
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				if err := sf.Cart.UpdateQuantity(args[0], quantity); err != nil {
					return err
				}
				return printCart(sf, out)
			})
		},
	}
}

func newCartRemoveCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <productId>",
		Short: "Quitar un producto del carrito",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				if err := sf.Cart.RemoveItem(args[0]); err != nil {
					return err
				}
				return printCart(sf, out)
			})
		},
	}
}

func newCartClearCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Vaciar el carrito",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				if err := sf.Cart.ClearCart(); err != nil {
					return err
				}
				out.Printf("Carrito vacío\n")
				return nil
			})
		},
	}
}

func printCart(sf *provider.Storefront, out *Formatter) error {
	lines := sf.Cart.Items()
	if out.JSON() {
		return out.WriteJSON(map[string]interface{}{
			"items":      lines,
			"totalItems": sf.Cart.TotalItems(),
			"totalPrice": sf.Cart.TotalPrice(),
		})
	}
	if len(lines) == 0 {
		out.Printf("El carrito está vacío\n")
		return nil
	}
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []string{
			line.ProductID,
			line.Title,
			strconv.Itoa(line.Quantity),
			FormatARS(line.UnitPrice),
			FormatARS(line.Subtotal()),
		})
	}
	if err := out.Table([]string{"ID", "TÍTULO", "CANT.", "PRECIO", "SUBTOTAL"}, rows); err != nil {
		return err
	}
	out.Printf("Total: %d unidades · %s\n", sf.Cart.TotalItems(), FormatARS(sf.Cart.TotalPrice()))
	return nil
}
