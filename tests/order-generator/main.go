package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type CartItem struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Cart struct {
	UserID int64      `json:"userId"`
	Items  []CartItem `json:"items"`
	Total  float64    `json:"total"`
}

var catalog = []CartItem{
	{SKU: "MUG-001", Name: "Coffee mug", Price: 12.5},
	{SKU: "TEE-002", Name: "T-shirt", Price: 25},
	{SKU: "CAP-003", Name: "Baseball cap", Price: 18.99},
	{SKU: "BAG-004", Name: "Tote bag", Price: 30},
	{SKU: "PEN-005", Name: "Ballpoint pen", Price: 2.49},
}

func generateRandomCart(maxUserID int64) Cart {
	cart := Cart{UserID: rand.Int63n(maxUserID) + 1}

	for range rand.Intn(3) + 1 {
		item := catalog[rand.Intn(len(catalog))]
		item.Quantity = rand.Intn(4) + 1
		cart.Items = append(cart.Items, item)
		cart.Total += item.Price * float64(item.Quantity)
	}
	cart.Total = math.Round(cart.Total*100) / 100

	return cart
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "order-submissions", "order submissions topic")
	users := flag.Int64("users", 10, "generate carts for user ids in [1, users]")
	interval := flag.Duration("interval", 2*time.Second, "delay between carts")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cart := generateRandomCart(*users)
			data, err := json.Marshal(cart)
			if err != nil {
				log.Println("failed to marshal cart:", err)
				continue
			}
			err = writer.WriteMessages(ctx, kafka.Message{
				Key:   []byte(strconv.FormatInt(cart.UserID, 10)),
				Value: data,
			})
			if err != nil {
				log.Println("failed to write cart:", err)
				continue
			}
			log.Println("cart generated", fmt.Sprintf("user=%d total=%.2f", cart.UserID, cart.Total))
		case <-ctx.Done():
			return
		}
	}
}
