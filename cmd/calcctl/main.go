package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/GGmuzem/web-calculator/internal/client"
	"github.com/GGmuzem/web-calculator/pkg/models"
	"github.com/spf13/cobra"
)

type options struct {
	grpcAddr string
	httpURL  string
	timeout  time.Duration
}

// BuildFunc создает клиента по опциям командной строки
type BuildFunc func(opts options) (client.Calculator, error)

func newRootCmd(build BuildFunc, out io.Writer) *cobra.Command {
	opts := options{}

	root := &cobra.Command{
		Use:          "calcctl",
		Short:        "Client for the calculator service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.grpcAddr, "addr", "localhost:50052", "gRPC address of the calculator service")
	root.PersistentFlags().StringVar(&opts.httpURL, "http", "", "use the HTTP API at this base URL instead of gRPC")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", client.DefaultTimeout, "request timeout")

	evalCmd := &cobra.Command{
		Use:     "eval NUM1 OPERATOR NUM2",
		Short:   "Evaluate a single binary operation (+, -, *, /)",
		Example: "  calcctl eval 2 + 3\n  calcctl eval -- -4 '*' 2.5",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := build(opts)
			if err != nil {
				return err
			}
			defer calc.Close()

			result, err := calc.Calculate(cmd.Context(), models.CalculateRequest{
				Num1:     args[0],
				Operator: args[1],
				Num2:     args[2],
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(out, strconv.FormatFloat(result, 'f', -1, 64))
			return nil
		},
	}

	root.AddCommand(evalCmd)
	return root
}

func buildCalculator(opts options) (client.Calculator, error) {
	if opts.httpURL != "" {
		return client.NewHTTPClient(opts.httpURL, opts.timeout), nil
	}

	c, err := client.NewGRPCClient(opts.grpcAddr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s: %w", opts.grpcAddr, err)
	}
	c.Timeout = opts.timeout
	return c, nil
}

func runWithOutput(args []string, build BuildFunc, out io.Writer) error {
	cmd := newRootCmd(build, out)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd.ExecuteContext(context.Background())
}

func main() {
	if err := runWithOutput(os.Args[1:], buildCalculator, os.Stdout); err != nil {
		os.Exit(1)
	}
}
