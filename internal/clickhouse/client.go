package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/config"
)

type Client struct {
	conn driver.Conn
}

func NewClient(cfg config.ClickHouseConfig) (*Client, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{cfg.Addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout:      time.Second * 30,
		MaxOpenConns:     cfg.MaxConns,
		MaxIdleConns:     cfg.MaxConns / 2,
		ConnMaxLifetime:  time.Hour,
		ConnOpenStrategy: clickhouse.ConnOpenInOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return &Client{conn: conn}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// ChatEventRow is the ClickHouse representation of one chat
// interaction.
type ChatEventRow struct {
	EventID    string
	UserID     string
	Kind       string
	Term       string
	ProductID  int64
	OrderID    string
	OccurredAt time.Time
	IPAddress  string
	UserAgent  string
	Browser    string
	OS         string
	DeviceType string
}

func (c *Client) InsertChatEvents(ctx context.Context, events []ChatEventRow) error {
	if len(events) == 0 {
		return nil
	}

	batch, err := c.conn.PrepareBatch(ctx, `INSERT INTO analytics.chat_events (
		event_id, user_id, kind, term, product_id, order_id, occurred_at,
		ip_address, user_agent, browser, os, device_type
	)`)
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	for _, event := range events {
		err := batch.Append(
			event.EventID,
			event.UserID,
			event.Kind,
			event.Term,
			event.ProductID,
			event.OrderID,
			event.OccurredAt,
			event.IPAddress,
			event.UserAgent,
			event.Browser,
			event.OS,
			event.DeviceType,
		)
		if err != nil {
			return fmt.Errorf("failed to append event: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	return nil
}
