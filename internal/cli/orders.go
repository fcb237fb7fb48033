package cli

import (
	"context"
	"strconv"

	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/provider"
	"github.com/urano-b2b/internal/service"

	"github.com/spf13/cobra"
)

func newCheckoutCommand(r *runner) *cobra.Command {
	var observations string
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Confirmar el pedido con el contenido del carrito",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				result, err := sf.Orders.SubmitOrder(ctx, service.SubmitOrderInput{Observations: observations})
				if err != nil {
					return reported(err)
				}
				if out.JSON() {
					return out.WriteJSON(result.Order)
				}
				out.Printf("Pedido %s · %d unidades · %s\n", result.Order.DisplayNumber(), result.Order.TotalItems, FormatARS(result.Order.TotalPrice))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&observations, "observations", "o", "", "observaciones para el pedido")
	return cmd
}

func newOrdersCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Historial de pedidos",
	}
	cmd.AddCommand(newOrdersListCommand(r))
	cmd.AddCommand(newOrdersShowCommand(r))
	cmd.AddCommand(newOrdersRepeatCommand(r))
	return cmd
}

func newOrdersListCommand(r *runner) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar pedidos (más recientes primero)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				orders, err := sf.Orders.ListOrders(ctx, limit)
				if err != nil {
					return err
				}
				if out.JSON() {
					return out.WriteJSON(orders)
				}
				if len(orders) == 0 {
					out.Printf("Todavía no hiciste pedidos\n")
					return nil
				}
				return out.Table([]string{"ID", "PEDIDO", "FECHA", "ESTADO", "UNID.", "TOTAL"}, orderRows(orders))
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "cantidad máxima de pedidos")
	return cmd
}

func newOrdersShowCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|#número>",
		Short: "Ver el detalle de un pedido",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				order, err := sf.Orders.FindOrder(ctx, args[0])
				if err != nil {
					return err
				}
				if out.JSON() {
					return out.WriteJSON(order)
				}
				out.Printf("Pedido %s · %s · %s\n", order.DisplayNumber(), FormatDate(order.CreatedAt), service.StatusLabel(order.Status))
				out.Printf("Cliente: %s\n", order.CustomerName)
				rows := make([][]string, 0, len(order.Items))
				for _, item := range order.Items {
					rows = append(rows, []string{item.ProductID, item.Title, strconv.Itoa(item.Quantity), FormatARS(item.Price), FormatARS(item.Subtotal)})
				}
				if err := out.Table([]string{"ID", "TÍTULO", "CANT.", "PRECIO", "SUBTOTAL"}, rows); err != nil {
					return err
				}
				out.Printf("Total: %d unidades · %s\n", order.TotalItems, FormatARS(order.TotalPrice))
				if order.Observations != nil {
					out.Printf("Observaciones: %s\n", *order.Observations)
				}
				if order.InvoiceNumber != "" {
					out.Printf("Factura: %s %s\n", order.InvoiceNumber, order.InvoiceURL)
				}
				return nil
			})
		},
	}
}

func newOrdersRepeatCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "repeat <id|#número>",
		Short: "Volver a agregar al carrito los productos de un pedido",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				if _, err := sf.Orders.RepeatOrder(ctx, args[0]); err != nil {
					return reported(err)
				}
				return printCart(sf, out)
			})
		},
	}
}

func orderRows(orders []models.Order) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, []string{
			order.ID,
			order.DisplayNumber(),
			FormatDate(order.CreatedAt),
			service.StatusLabel(order.Status),
			strconv.Itoa(order.TotalItems),
			FormatARS(order.TotalPrice),
		})
	}
	return rows
}
