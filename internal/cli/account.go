package cli

import (
	"context"

	"github.com/urano-b2b/internal/provider"
	"github.com/urano-b2b/internal/service"

	"github.com/spf13/cobra"
)

var dashboardSectionLabels = map[string]string{
	service.DashboardSectionAccount:     "la cuenta corriente",
	service.DashboardSectionOrders:      "los pedidos",
	service.DashboardSectionNewArrivals: "las novedades",
}

func newAccountCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Resumen de cuenta corriente, pedidos y novedades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				dashboard, err := sf.Account.Dashboard(ctx)
				if err != nil {
					return err
				}
				if out.JSON() {
					return out.WriteJSON(struct {
						*service.Dashboard
						FailedSections []string `json:"failedSections,omitempty"`
					}{dashboard, dashboard.FailedSections()})
				}
				for _, section := range dashboard.FailedSections() {
					out.Printf("No se pudo cargar %s\n", dashboardSectionLabels[section])
				}
				if account := dashboard.Account; account != nil {
					out.Printf("Cuenta %s (%s)\n", account.CustomerID, account.Status)
					out.Printf("Saldo actual: %s · Límite de crédito: %s\n", FormatARS(account.CurrentBalance), FormatARS(account.CreditLimit))
				}
				if !dashboard.Failed(service.DashboardSectionOrders) {
					out.Printf("Pedidos abiertos: %d\n", dashboard.OpenOrders)
				}
				if len(dashboard.Invoices) > 0 {
					out.Printf("\nÚltimas facturas\n")
					rows := make([][]string, 0, len(dashboard.Invoices))
					for _, invoice := range dashboard.Invoices {
						rows = append(rows, []string{invoice.ID, FormatDate(invoice.Date), FormatARS(invoice.Amount)})
					}
					if err := out.Table([]string{"FACTURA", "FECHA", "IMPORTE"}, rows); err != nil {
						return err
					}
				}
				if len(dashboard.RecentOrders) > 0 {
					out.Printf("\nPedidos recientes\n")
					if err := out.Table([]string{"ID", "PEDIDO", "FECHA", "ESTADO", "UNID.", "TOTAL"}, orderRows(dashboard.RecentOrders)); err != nil {
						return err
					}
				}
				if len(dashboard.NewArrivals) > 0 {
					out.Printf("\nNovedades\n")
					return out.Table([]string{"ID", "TÍTULO", "AUTOR", "SELLO", "PRECIO", "STOCK"}, productRows(dashboard.NewArrivals))
				}
				return nil
			})
		},
	}
}

func newAlertCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Avisos de reposición de stock",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <productId>",
		Short: "Avisarme cuando el producto vuelva a estar disponible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				registration, err := sf.StockAlerts.RegisterAlert(ctx, args[0])
				if err != nil {
					return reported(err)
				}
				if out.JSON() {
					return out.WriteJSON(map[string]interface{}{
						"productId":    registration.ProductID,
						"remoteSynced": registration.RemoteSynced,
					})
				}
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Listar productos con aviso activo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				ids := sf.StockAlerts.List()
				if out.JSON() {
					return out.WriteJSON(ids)
				}
				if len(ids) == 0 {
					out.Printf("No tenés avisos activos\n")
					return nil
				}
				for _, id := range ids {
					out.Printf("%s\n", id)
				}
				return nil
			})
		},
	})
	return cmd
}
