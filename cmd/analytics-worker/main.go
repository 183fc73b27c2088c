package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/clickhouse"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/config"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/logger"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/redis"
	redislib "github.com/redis/go-redis/v9"
)

var (
	log           *logger.Logger
	streamName    string
	consumerGroup string
	consumerName  string
	batchSize     int
	pollInterval  time.Duration
	blockTime     time.Duration
)

func main() {
	log = logger.New("analytics-worker")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	streamName = cfg.Redis.StreamName
	consumerGroup = cfg.Analytics.ConsumerGroup
	consumerName = cfg.Analytics.ConsumerName
	batchSize = cfg.Analytics.BatchSize
	pollInterval = cfg.Analytics.PollInterval
	blockTime = cfg.Analytics.BlockTime

	ctx := context.Background()

	redisClient, err := redis.NewRedisClient(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	chClient, err := clickhouse.NewClient(cfg.ClickHouse)
	if err != nil {
		log.Fatal("Failed to connect to ClickHouse: %v", err)
	}
	defer chClient.Close()

	err = redisClient.GetClient().XGroupCreateMkStream(ctx, streamName, consumerGroup, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		log.Fatal("Failed to create consumer group: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Info("Processing chat events")
	go processEvents(ctx, redisClient.GetClient(), chClient)

	<-sigChan
	log.Info("Shutting down")
}

func processEvents(ctx context.Context, client *redislib.Client, sink *clickhouse.Client) {
	for {
		messages, err := client.XReadGroup(ctx, &redislib.XReadGroupArgs{
			Group:    consumerGroup,
			Consumer: consumerName,
			Streams:  []string{streamName, ">"},
			Count:    int64(batchSize),
			Block:    blockTime,
		}).Result()

		if err != nil {
			if err == redislib.Nil {
				continue
			}
			log.Error("Failed to read from stream: %v", err)
			time.Sleep(pollInterval)
			continue
		}

		for _, stream := range messages {
			if len(stream.Messages) == 0 {
				continue
			}

			rows := make([]clickhouse.ChatEventRow, 0, len(stream.Messages))
			messageIDs := make([]string, 0, len(stream.Messages))

			for _, msg := range stream.Messages {
				row, ok := parseEvent(msg.Values)
				if !ok {
					log.Warn("Skipping malformed stream message %v", msg.ID)
					continue
				}
				rows = append(rows, row)
				messageIDs = append(messageIDs, msg.ID)
			}

			if len(rows) > 0 {
				if err := sink.InsertChatEvents(ctx, rows); err != nil {
					log.Error("Failed to write to ClickHouse: %v", err)
					continue
				}
				log.Debug("Processed %d events", len(rows))
			}

			if len(messageIDs) > 0 {
				if err := client.XAck(ctx, streamName, consumerGroup, messageIDs...).Err(); err != nil {
					log.Error("Failed to acknowledge messages: %v", err)
				}
			}
		}
	}
}

func parseEvent(values map[string]interface{}) (clickhouse.ChatEventRow, bool) {
	eventID, ok := values["event_id"].(string)
	if !ok {
		return clickhouse.ChatEventRow{}, false
	}
	kind, ok := values["kind"].(string)
	if !ok {
		return clickhouse.ChatEventRow{}, false
	}

	row := clickhouse.ChatEventRow{
		EventID:    eventID,
		Kind:       kind,
		UserID:     stringField(values, "user_id"),
		Term:       stringField(values, "term"),
		OrderID:    stringField(values, "order_id"),
		IPAddress:  stringField(values, "ip"),
		UserAgent:  stringField(values, "user_agent"),
		Browser:    stringField(values, "browser"),
		OS:         stringField(values, "os"),
		DeviceType: stringField(values, "device_type"),
		OccurredAt: time.Now(),
	}

	if ts := stringField(values, "timestamp"); ts != "" {
		if unix, err := strconv.ParseInt(ts, 10, 64); err == nil {
			row.OccurredAt = time.Unix(unix, 0)
		}
	}
	if pid := stringField(values, "product_id"); pid != "" {
		if id, err := strconv.ParseInt(pid, 10, 64); err == nil {
			row.ProductID = id
		}
	}

	return row, true
}

func stringField(values map[string]interface{}, key string) string {
	if val, ok := values[key].(string); ok {
		return val
	}
	return ""
}
