package cli

import (
	"context"
	"fmt"

	"github.com/urano-b2b/internal/config"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/notify"
	"github.com/urano-b2b/internal/provider"

	"github.com/spf13/cobra"
)

const cliLogFilename = "storefront.log"

// RootOptions 全局参数
type RootOptions struct {
	ConfigPath string
	Format     string
}

// Factory 按全局参数创建客户端容器
type Factory func(opts *RootOptions, console *notify.Console) (*provider.Storefront, error)

// DefaultFactory 读取配置文件并打开本地状态库
func DefaultFactory(opts *RootOptions, console *notify.Console) (*provider.Storefront, error) {
	cfg, err := config.LoadFile(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	logOptions := cfg.Log.ToLoggerOptions()
	if logOptions.Filename == "" || logOptions.Filename == "urano.log" {
		logOptions.Filename = cliLogFilename
	}
	logger.Init(logger.ModeCLI, logOptions)
	return provider.NewStorefront(cfg, console)
}

type runner struct {
	opts    *RootOptions
	factory Factory
}

type runFunc func(ctx context.Context, sf *provider.Storefront, out *Formatter) error

func (r *runner) run(cmd *cobra.Command, fn runFunc) error {
	console := notify.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
	sf, err := r.factory(r.opts, console)
	if err != nil {
		return WrapExitError(ExitCommandError, "no se pudo iniciar la tienda", err)
	}
	defer sf.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, sf, &Formatter{Format: r.opts.Format, Out: cmd.OutOrStdout()})
}

// NewRootCommand 创建 storefront 根命令
func NewRootCommand(factory Factory) *cobra.Command {
	if factory == nil {
		factory = DefaultFactory
	}
	opts := &RootOptions{}
	r := &runner{opts: opts, factory: factory}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Portal mayorista de Urano",
		Long:          "Catálogo, carrito, pedidos y cuenta corriente para librerías clientes de Urano.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return WrapExitError(ExitCommandError, fmt.Sprintf("formato inválido %q: usar %v", opts.Format, ValidFormats), nil)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "archivo de configuración")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "formato de salida (text|json)")

	cmd.AddCommand(newLoginCommand(r))
	cmd.AddCommand(newLogoutCommand(r))
	cmd.AddCommand(newWhoamiCommand(r))
	cmd.AddCommand(newCatalogCommand(r))
	cmd.AddCommand(newProductCommand(r))
	cmd.AddCommand(newCartCommand(r))
	cmd.AddCommand(newCheckoutCommand(r))
	cmd.AddCommand(newOrdersCommand(r))
	cmd.AddCommand(newAccountCommand(r))
	cmd.AddCommand(newAlertCommand(r))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
