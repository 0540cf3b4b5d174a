package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type mongoEnv struct {
	Host     string `env:"MONGO_HOST,required"`
	Port     int    `env:"MONGO_PORT,required"`
	User     string `env:"MONGO_INITDB_ROOT_USERNAME,required"`
	Password string `env:"MONGO_INITDB_ROOT_PASSWORD,required"`
	DBName   string `env:"MONGO_DATABASE,required"`
	AuthDB   string `env:"MONGO_AUTH_DB,required"`

	ProductsCollection      string `env:"MONGO_PRODUCTS_COLLECTION,required"`
	QuantityUnitsCollection string `env:"MONGO_QUANTITY_UNITS_COLLECTION,required"`
	ConversionsCollection   string `env:"MONGO_CONVERSIONS_COLLECTION,required"`
	StockCollection         string `env:"MONGO_STOCK_COLLECTION,required"`
	ShoppingListCollection  string `env:"MONGO_SHOPPING_LIST_COLLECTION,required"`
	RecipesCollection       string `env:"MONGO_RECIPES_COLLECTION,required"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) DatabaseName() string { return cfg.raw.DBName }

func (cfg *mongo) ProductsCollection() string      { return cfg.raw.ProductsCollection }
func (cfg *mongo) QuantityUnitsCollection() string { return cfg.raw.QuantityUnitsCollection }
func (cfg *mongo) ConversionsCollection() string   { return cfg.raw.ConversionsCollection }
func (cfg *mongo) StockCollection() string         { return cfg.raw.StockCollection }
func (cfg *mongo) ShoppingListCollection() string  { return cfg.raw.ShoppingListCollection }
func (cfg *mongo) RecipesCollection() string       { return cfg.raw.RecipesCollection }

func (cfg *mongo) DSN() string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%d/%s?authSource=%s",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
		cfg.raw.DBName,
		cfg.raw.AuthDB,
	)
}
