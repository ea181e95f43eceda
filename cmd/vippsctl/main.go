package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kevin07696/vipps-client/internal/config"
	"github.com/kevin07696/vipps-client/internal/secrets"
	"github.com/kevin07696/vipps-client/pkg/logging"
	"github.com/kevin07696/vipps-client/pkg/vipps"
	"github.com/shopspring/decimal"
)

var actions = []struct{ name, help string }{
	{"token", "Fetch and print an access token"},
	{"draft-agreement", "Draft a recurring agreement (-product, -amount, -phone)"},
	{"get-agreement", "Show an agreement (-agreement)"},
	{"list-agreements", "List agreements (-status)"},
	{"update-agreement", "Update status and/or price (-agreement, -status, -amount)"},
	{"create-charge", "Create a charge (-agreement, -amount, -description, -due)"},
	{"get-charge", "Show a charge (-charge, optionally -agreement)"},
	{"list-charges", "List an agreement's charges (-agreement, -status)"},
	{"capture-charge", "Capture a reserved charge (-agreement, -charge, -amount)"},
	{"refund-charge", "Refund a charge (-agreement, -charge, -amount)"},
	{"cancel-charge", "Cancel a charge (-agreement, -charge)"},
	{"multi-charge", "Create charges from a JSON array file (-json)"},
	{"register-webhook", "Register a webhook (-url, -events)"},
	{"list-webhooks", "List webhooks"},
	{"delete-webhook", "Delete a webhook (-webhook)"},
	{"init-payment", "Initiate an e-commerce payment (-order, -amount, -description, -phone)"},
	{"payment-status", "Show e-commerce payment status (-order)"},
	{"payment-details", "Show e-commerce payment details (-order)"},
	{"capture-payment", "Capture an e-commerce payment (-order, -amount)"},
	{"cancel-payment", "Cancel an e-commerce payment (-order)"},
	{"refund-payment", "Refund an e-commerce payment (-order, -amount)"},
}

type options struct {
	configFile     string
	action         string
	secretsBackend string
	agreementID    string
	chargeID       string
	orderID        string
	webhookID      string
	amount         string
	description    string
	product        string
	phone          string
	status         string
	due            string
	url            string
	events         string
	callback       string
	fallback       string
	jsonFile       string
	idempotencyKey string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("vippsctl", flag.ContinueOnError)
	var opts options
	fs.StringVar(&opts.configFile, "config", "", "Optional config file (YAML, JSON or TOML)")
	fs.StringVar(&opts.action, "action", "", "Action to perform")
	fs.StringVar(&opts.secretsBackend, "secrets", "", "Secret backend override: none, file, aws, vault")
	fs.StringVar(&opts.agreementID, "agreement", "", "Agreement ID")
	fs.StringVar(&opts.chargeID, "charge", "", "Charge ID")
	fs.StringVar(&opts.orderID, "order", "", "Order ID")
	fs.StringVar(&opts.webhookID, "webhook", "", "Webhook ID")
	fs.StringVar(&opts.amount, "amount", "", "Amount in major units, e.g. 499.50")
	fs.StringVar(&opts.description, "description", "", "Description or transaction text")
	fs.StringVar(&opts.product, "product", "", "Product name")
	fs.StringVar(&opts.phone, "phone", "", "Customer phone number")
	fs.StringVar(&opts.status, "status", "", "Status filter or new status")
	fs.StringVar(&opts.due, "due", "", "Charge due date (YYYY-MM-DD)")
	fs.StringVar(&opts.url, "url", "", "Webhook URL")
	fs.StringVar(&opts.events, "events", "", "Comma-separated webhook events")
	fs.StringVar(&opts.callback, "callback", "", "E-commerce callback prefix")
	fs.StringVar(&opts.fallback, "fallback", "", "E-commerce fallback URL")
	fs.StringVar(&opts.jsonFile, "json", "", "JSON file with charge orders")
	fs.StringVar(&opts.idempotencyKey, "idempotency-key", "", "Idempotency key (generated when empty)")
	fs.Usage = func() { usage(fs.Output()) }

	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.action == "" {
		usage(out)
		return fmt.Errorf("missing -action")
	}

	settings, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}
	if opts.secretsBackend != "" {
		settings.Secrets.Backend = opts.secretsBackend
	}

	logger, err := initLogger(settings.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	src, err := secrets.NewSource(ctx, settings.Secrets, logger)
	if err != nil {
		return err
	}
	if err := secrets.ResolveCredentials(ctx, src, settings); err != nil {
		return err
	}
	if err := settings.Vipps.Validate(); err != nil {
		return err
	}

	c := &cli{
		ctx:    ctx,
		cfg:    vipps.FromSettings(settings.Vipps),
		logger: logger,
		out:    out,
	}
	return c.dispatch(opts)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: vippsctl -action=<action> [options]")
	fmt.Fprintln(w, "Actions:")
	for _, a := range actions {
		fmt.Fprintf(w, "  %-17s - %s\n", a.name, a.help)
	}
}

// initLogger builds a development logger unless configured otherwise
func initLogger(cfg config.LoggerConfig) (*logging.ZapLogger, error) {
	if cfg.Development {
		return logging.NewDevelopment()
	}
	return logging.NewProduction(cfg.Level)
}

func parseAmount(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount must not be negative: %s", value)
	}
	return vipps.MinorUnits(d), nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// requireFlags takes flag name and value pairs and reports the first empty one
func requireFlags(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("-%s is required", pairs[i])
		}
	}
	return nil
}
