package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	ProductsCollection() string
	QuantityUnitsCollection() string
	ConversionsCollection() string
	StockCollection() string
	ShoppingListCollection() string
	RecipesCollection() string
	DSN() string
}

type Kafka interface {
	Brokers() []string
	ShoppingListUpdatedTopic() string
	ShoppingListUpdatedProducerConfig() *sarama.Config
}
