package delivery

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/IBM/sarama"

	"newsharvest/types"
)

// KafkaPublisher emits kept records as JSON messages, one per article, keyed
// by URL so downstream consumers can compact per article.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaFromEnv builds a publisher when KAFKA_BROKERS is set; nil
// otherwise. Optional: KAFKA_TOPIC (default "news.articles").
func NewKafkaFromEnv() *KafkaPublisher {
	brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokers == "" {
		return nil
	}
	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "news.articles"
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), cfg)
	if err != nil {
		log.Printf("Warning: failed to init Kafka producer: %v (publishing disabled)", err)
		return nil
	}
	return &KafkaPublisher{producer: producer, topic: topic}
}

// PublishRecords sends each record and returns how many were delivered
// before the first failure.
func (p *KafkaPublisher) PublishRecords(records []types.ArticleRecord) (int, error) {
	for i, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return i, fmt.Errorf("encode record %s: %w", rec.URL, err)
		}
		msg := &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(rec.URL),
			Value: sarama.ByteEncoder(payload),
		}
		if _, _, err := p.producer.SendMessage(msg); err != nil {
			return i, fmt.Errorf("publish record %s: %w", rec.URL, err)
		}
	}
	return len(records), nil
}

// Close shuts the underlying producer down.
func (p *KafkaPublisher) Close() {
	if err := p.producer.Close(); err != nil {
		log.Printf("Warning: Kafka producer close: %v", err)
	}
}
