package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"bodega-storefront/internal/cart"
	"bodega-storefront/internal/checkout"
	"bodega-storefront/internal/config"
	"bodega-storefront/internal/domain"
	"bodega-storefront/internal/money"
	"bodega-storefront/internal/orderapi"
	"bodega-storefront/internal/pipeline"
)

// orderFile is the JSON shape the CLI reads: menu item ids with quantities,
// plus the customer and payment details normally collected step by step.
type orderFile struct {
	Items []struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
	Customer domain.CustomerInfo `json:"customer"`
	Payment  domain.PaymentInput `json:"payment"`
}

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a JSON order file")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[checkout] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	raw, err := os.ReadFile(filePath)
	if err != nil {
		logger.Fatalf("read order file: %v", err)
	}
	var order orderFile
	if err := json.Unmarshal(raw, &order); err != nil {
		logger.Fatalf("parse order file: %v", err)
	}
	if len(order.Items) == 0 {
		logger.Fatalf("order file has no items")
	}

	client := orderapi.NewClient(cfg.BackendURL, cfg.APIKey)

	menu, err := client.GetMenu(ctx)
	if err != nil {
		logger.Fatalf("fetch menu: %v", err)
	}
	byID := make(map[string]domain.MenuItem, len(menu))
	for _, item := range menu {
		byID[item.ID] = item
	}

	basket := cart.NewStore()
	for _, line := range order.Items {
		item, ok := byID[line.ID]
		if !ok {
			logger.Fatalf("unknown menu item %q", line.ID)
		}
		basket.Add(item)
		if line.Quantity > 1 {
			basket.UpdateQuantity(item.ID, line.Quantity)
		}
	}

	sess := checkout.NewSession(basket)
	if err := sess.SubmitCustomerInfo(order.Customer); err != nil {
		logger.Fatalf("customer info rejected: %v", err)
	}
	sess.SetPaymentInput(order.Payment)

	start := time.Now()
	result, err := pipeline.New(client, logger).Submit(ctx, sess)
	if err != nil {
		logger.Fatalf("checkout failed: %v", err)
	}

	fmt.Printf("Order %s confirmed, payment %s, charged %s in %s\n",
		result.OrderID, result.PaymentID, money.FormatCents(result.TotalCents),
		time.Since(start).Truncate(time.Millisecond))
}
