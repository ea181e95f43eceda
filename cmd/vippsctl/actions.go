package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kevin07696/vipps-client/pkg/logging"
	"github.com/kevin07696/vipps-client/pkg/vipps"
)

type cli struct {
	ctx    context.Context
	cfg    vipps.Config
	logger *logging.ZapLogger
	out    io.Writer
}

func (c *cli) v3() (*vipps.V3Client, error) {
	return vipps.NewV3Client(c.ctx, c.cfg, vipps.WithLogger(c.logger))
}

func (c *cli) ecomm() (*vipps.EcommClient, error) {
	return vipps.NewEcommClient(c.ctx, c.cfg, vipps.WithLogger(c.logger))
}

func (c *cli) dispatch(o options) error {
	amount, err := parseAmount(o.amount)
	if err != nil {
		return err
	}

	switch o.action {
	case "token":
		client, err := c.v3()
		if err != nil {
			return err
		}
		return c.print(map[string]string{"access_token": client.AccessToken()})

	case "draft-agreement":
		if err := requireFlags("product", o.product); err != nil {
			return err
		}
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			return v.DraftAgreement(c.ctx, vipps.DraftAgreementOptions{
				ProductName:        o.product,
				ProductDescription: o.description,
				PhoneNumber:        o.phone,
				SuggestedMaxAmount: amount,
				IdempotencyKey:     o.idempotencyKey,
			})
		})

	case "get-agreement":
		if err := requireFlags("agreement", o.agreementID); err != nil {
			return err
		}
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			return v.GetAgreement(c.ctx, o.agreementID)
		})

	case "list-agreements":
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			return v.ListAgreements(c.ctx, o.status)
		})

	case "update-agreement":
		if err := requireFlags("agreement", o.agreementID); err != nil {
			return err
		}
		update := vipps.UpdateAgreementOptions{Status: o.status, IdempotencyKey: o.idempotencyKey}
		if o.amount != "" {
			update.Price = vipps.Int64(amount)
		}
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			return v.UpdateAgreement(c.ctx, o.agreementID, update)
		})

	case "create-charge":
		if err := requireFlags("agreement", o.agreementID, "amount", o.amount); err != nil {
			return err
		}
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			return v.CreateCharge(c.ctx, vipps.CreateChargeOptions{
				AgreementID:    o.agreementID,
				Amount:         amount,
				Description:    o.description,
				Due:            o.due,
				OrderID:        o.orderID,
				IdempotencyKey: o.idempotencyKey,
			})
		})

	case "get-charge":
		if err := requireFlags("charge", o.chargeID); err != nil {
			return err
		}
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			if o.agreementID == "" {
				return v.GetChargeByID(c.ctx, o.chargeID)
			}
			return v.GetCharge(c.ctx, o.agreementID, o.chargeID)
		})

	case "list-charges":
		if err := requireFlags("agreement", o.agreementID); err != nil {
			return err
		}
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			return v.ListCharges(c.ctx, o.agreementID, o.status)
		})

	case "capture-charge", "refund-charge":
		if err := requireFlags("agreement", o.agreementID, "charge", o.chargeID, "amount", o.amount); err != nil {
			return err
		}
		adj := vipps.ChargeAdjustment{
			AgreementID:    o.agreementID,
			ChargeID:       o.chargeID,
			Amount:         amount,
			Description:    o.description,
			IdempotencyKey: o.idempotencyKey,
		}
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			if o.action == "capture-charge" {
				return v.CaptureCharge(c.ctx, adj)
			}
			return v.RefundCharge(c.ctx, adj)
		})

	case "cancel-charge":
		if err := requireFlags("agreement", o.agreementID, "charge", o.chargeID); err != nil {
			return err
		}
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			return v.CancelCharge(c.ctx, o.agreementID, o.chargeID, o.idempotencyKey)
		})

	case "multi-charge":
		if err := requireFlags("json", o.jsonFile); err != nil {
			return err
		}
		orders, err := readOrders(o.jsonFile)
		if err != nil {
			return err
		}
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			return v.MultiCharge(c.ctx, orders, o.idempotencyKey)
		})

	case "register-webhook":
		if err := requireFlags("url", o.url, "events", o.events); err != nil {
			return err
		}
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			return v.RegisterWebhook(c.ctx, o.url, splitList(o.events))
		})

	case "list-webhooks":
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			return v.ListWebhooks(c.ctx)
		})

	case "delete-webhook":
		if err := requireFlags("webhook", o.webhookID); err != nil {
			return err
		}
		return c.withV3(func(v *vipps.V3Client) (*vipps.Response, error) {
			return v.DeleteWebhook(c.ctx, o.webhookID)
		})

	case "init-payment":
		if err := requireFlags("order", o.orderID, "amount", o.amount); err != nil {
			return err
		}
		return c.withEcomm(func(e *vipps.EcommClient) (*vipps.Response, error) {
			return e.InitiatePayment(c.ctx, vipps.InitiatePaymentOptions{
				OrderID:         o.orderID,
				Amount:          amount,
				TransactionText: o.description,
				MobileNumber:    o.phone,
				CallbackPrefix:  o.callback,
				FallbackURL:     o.fallback,
			})
		})

	case "payment-status", "payment-details":
		if err := requireFlags("order", o.orderID); err != nil {
			return err
		}
		return c.withEcomm(func(e *vipps.EcommClient) (*vipps.Response, error) {
			if o.action == "payment-status" {
				return e.GetPaymentStatus(c.ctx, o.orderID)
			}
			return e.GetPaymentDetails(c.ctx, o.orderID)
		})

	case "capture-payment", "refund-payment":
		if err := requireFlags("order", o.orderID); err != nil {
			return err
		}
		adj := vipps.PaymentAdjustment{
			OrderID:         o.orderID,
			Amount:          amount,
			TransactionText: o.description,
			IdempotencyKey:  o.idempotencyKey,
		}
		return c.withEcomm(func(e *vipps.EcommClient) (*vipps.Response, error) {
			if o.action == "capture-payment" {
				return e.CapturePayment(c.ctx, adj)
			}
			return e.RefundPayment(c.ctx, adj)
		})

	case "cancel-payment":
		if err := requireFlags("order", o.orderID); err != nil {
			return err
		}
		return c.withEcomm(func(e *vipps.EcommClient) (*vipps.Response, error) {
			return e.CancelPayment(c.ctx, o.orderID, o.description)
		})

	default:
		return fmt.Errorf("unknown action: %s", o.action)
	}
}

func (c *cli) withV3(fn func(*vipps.V3Client) (*vipps.Response, error)) error {
	client, err := c.v3()
	if err != nil {
		return err
	}
	resp, err := fn(client)
	if err != nil {
		return err
	}
	return c.printResponse(resp)
}

func (c *cli) withEcomm(fn func(*vipps.EcommClient) (*vipps.Response, error)) error {
	client, err := c.ecomm()
	if err != nil {
		return err
	}
	resp, err := fn(client)
	if err != nil {
		return err
	}
	return c.printResponse(resp)
}

func (c *cli) printResponse(resp *vipps.Response) error {
	if resp == nil {
		fmt.Fprintln(c.out, "nothing to do")
		return nil
	}
	if resp.Body == nil {
		fmt.Fprintf(c.out, "status %d\n", resp.StatusCode)
		return nil
	}
	return c.print(resp.Body)
}

func (c *cli) print(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(c.out, string(data))
	return err
}

func readOrders(path string) ([]map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var orders []map[string]interface{}
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return orders, nil
}
