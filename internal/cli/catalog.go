package cli

import (
	"context"
	"strings"

	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/provider"
	"github.com/urano-b2b/internal/service"

	"github.com/spf13/cobra"
)

type catalogFlags struct {
	search   string
	imprints []string
	onlyNew  bool
	sort     string
	page     int
	pageSize int
}

func newCatalogCommand(r *runner) *cobra.Command {
	flags := &catalogFlags{}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Explorar el catálogo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidSort(flags.sort) {
				return WrapExitError(ExitCommandError, "orden inválido: usar title, author, price-asc o price-desc", nil)
			}
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				pageSize := flags.pageSize
				if pageSize <= 0 {
					pageSize = sf.Config.Catalog.PageSize
				}
				view := service.NewCatalogView(pageSize)
				view.SetSearch(flags.search)
				for _, imprint := range flags.imprints {
					view.ToggleImprint(strings.TrimSpace(imprint))
				}
				view.SetOnlyNew(flags.onlyNew)
				view.SetSort(flags.sort)
				view.SetPage(flags.page)

				page, err := sf.Catalog.Browse(ctx, view)
				if err != nil {
					return err
				}
				if out.JSON() {
					return out.WriteJSON(page)
				}
				if page.Total == 0 {
					out.Printf("No se encontraron productos\n")
					return nil
				}
				if err := out.Table([]string{"ID", "TÍTULO", "AUTOR", "SELLO", "PRECIO", "STOCK"}, productRows(page.Items)); err != nil {
					return err
				}
				out.Printf("Página %d de %d · %d productos\n", page.Page, page.TotalPages, page.Total)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "buscar por título, autor, ISBN o sello")
	cmd.Flags().StringSliceVar(&flags.imprints, "sello", nil, "filtrar por sello (repetible)")
	cmd.Flags().BoolVar(&flags.onlyNew, "new", false, "solo novedades")
	cmd.Flags().StringVar(&flags.sort, "sort", constants.SortByTitle, "orden: title, author, price-asc, price-desc")
	cmd.Flags().IntVar(&flags.page, "page", 1, "página")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "productos por página")
	return cmd
}

func newProductCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Ver el detalle de un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, sf *provider.Storefront, out *Formatter) error {
				detail, err := sf.Catalog.GetProduct(ctx, args[0])
				if err != nil {
					return err
				}
				if out.JSON() {
					return out.WriteJSON(detail)
				}
				p := detail.Product
				out.Printf("%s\n%s · %s\n", p.Title, p.Author, p.Sello)
				out.Printf("ISBN %s · %d páginas · %s\n", p.ISBN, p.Pages, p.Format)
				out.Printf("Precio mayorista: %s\n", FormatARS(p.Price))
				switch {
				case p.InStock():
					out.Printf("Stock: %d unidades\n", p.Stock)
				case sf.StockAlerts.IsNotified(p.ID):
					out.Printf("Agotado · te avisaremos cuando esté disponible\n")
				default:
					out.Printf("Agotado · usá `storefront alerts add %s` para recibir un aviso\n", p.ID)
				}
				if line, ok := sf.Cart.Line(p.ID); ok {
					out.Printf("En el carrito: %d\n", line.Quantity)
				}
				if p.Description != "" {
					out.Printf("\n%s\n", p.Description)
				}
				if len(detail.Related) > 0 {
					out.Printf("\nTambién del sello %s:\n", p.Sello)
					return out.Table([]string{"ID", "TÍTULO", "AUTOR", "SELLO", "PRECIO", "STOCK"}, productRows(detail.Related))
				}
				return nil
			})
		},
	}
}

func productRows(products []models.Product) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		title := p.Title
		if p.IsNew {
			title += " ★"
		}
		rows = append(rows, []string{p.ID, title, p.Author, p.Sello, FormatARS(p.Price), stockLabel(p)})
	}
	return rows
}

func isValidSort(sortBy string) bool {
	switch sortBy {
	case constants.SortByTitle, constants.SortByAuthor, constants.SortByPriceAsc, constants.SortByPriceDesc:
		return true
	default:
		return false
	}
}
