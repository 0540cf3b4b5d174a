package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/household-pantry/internal/config"
	"github.com/you-humble/household-pantry/internal/converter"
	convrepo "github.com/you-humble/household-pantry/internal/repository/conversion"
	productrepo "github.com/you-humble/household-pantry/internal/repository/product"
	unitrepo "github.com/you-humble/household-pantry/internal/repository/quantityunit"
	reciperepo "github.com/you-humble/household-pantry/internal/repository/recipe"
	slrepo "github.com/you-humble/household-pantry/internal/repository/shoppinglist"
	stockrepo "github.com/you-humble/household-pantry/internal/repository/stock"
	slproducer "github.com/you-humble/household-pantry/internal/service/producer/shoppinglist"
	rsvc "github.com/you-humble/household-pantry/internal/service/recipe"
	ssvc "github.com/you-humble/household-pantry/internal/service/stock"
	thttp "github.com/you-humble/household-pantry/internal/transport/http/pantry/v1"
	"github.com/you-humble/household-pantry/platform/closer"
	"github.com/you-humble/household-pantry/platform/kafka"
	"github.com/you-humble/household-pantry/platform/kafka/producer"
	"github.com/you-humble/household-pantry/platform/logger"
)

type QuantityUnitRepository interface {
	rsvc.QuantityUnitRepository
	unitrepo.BatchCreator
}

type ProductRepository interface {
	rsvc.ProductRepository
	ssvc.ProductRepository
}

type PantryHandler interface {
	Register(r chi.Router)
}

type di struct {
	mongo *mongo.Client

	productsCollection     *mongo.Collection
	unitsCollection        *mongo.Collection
	conversionsCollection  *mongo.Collection
	stockCollection        *mongo.Collection
	shoppingListCollection *mongo.Collection
	recipesCollection      *mongo.Collection

	productRepository      ProductRepository
	unitRepository         QuantityUnitRepository
	conversionRepository   rsvc.ConversionRepository
	stockRepository        rsvc.StockRepository
	shoppingListRepository rsvc.ShoppingListRepository
	recipeRepository       rsvc.RecipeRepository

	syncProducer       sarama.SyncProducer
	shoppingListKafka  kafka.Producer
	shoppingListSender rsvc.ShoppingListUpdatedSender
	conv               slproducer.Converter

	recipeService thttp.RecipeService
	stockService  thttp.StockService
	handler       PantryHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) collection(ctx context.Context, name string) *mongo.Collection {
	return d.MongoDB(ctx).
		Database(config.C().Mongo.DatabaseName()).
		Collection(name)
}

func (d *di) ProductsCollection(ctx context.Context) *mongo.Collection {
	if d.productsCollection == nil {
		d.productsCollection = d.collection(ctx, config.C().Mongo.ProductsCollection())

		if err := ensureProductIndexes(ctx, d.productsCollection); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}
	}

	return d.productsCollection
}

func (d *di) UnitsCollection(ctx context.Context) *mongo.Collection {
	if d.unitsCollection == nil {
		d.unitsCollection = d.collection(ctx, config.C().Mongo.QuantityUnitsCollection())
	}

	return d.unitsCollection
}

func (d *di) ConversionsCollection(ctx context.Context) *mongo.Collection {
	if d.conversionsCollection == nil {
		d.conversionsCollection = d.collection(ctx, config.C().Mongo.ConversionsCollection())

		if err := ensureConversionIndexes(ctx, d.conversionsCollection); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}
	}

	return d.conversionsCollection
}

func (d *di) StockCollection(ctx context.Context) *mongo.Collection {
	if d.stockCollection == nil {
		// Stock rows are keyed by product ID, so _id already enforces
		// one row per product.
		d.stockCollection = d.collection(ctx, config.C().Mongo.StockCollection())
	}

	return d.stockCollection
}

func (d *di) ShoppingListCollection(ctx context.Context) *mongo.Collection {
	if d.shoppingListCollection == nil {
		d.shoppingListCollection = d.collection(ctx, config.C().Mongo.ShoppingListCollection())

		if err := ensureShoppingListIndexes(ctx, d.shoppingListCollection); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}
	}

	return d.shoppingListCollection
}

func (d *di) RecipesCollection(ctx context.Context) *mongo.Collection {
	if d.recipesCollection == nil {
		d.recipesCollection = d.collection(ctx, config.C().Mongo.RecipesCollection())
	}

	return d.recipesCollection
}

func (d *di) ProductRepository(ctx context.Context) ProductRepository {
	if d.productRepository == nil {
		d.productRepository = productrepo.NewProductRepository(d.ProductsCollection(ctx))
	}

	return d.productRepository
}

func (d *di) QuantityUnitRepository(ctx context.Context) QuantityUnitRepository {
	if d.unitRepository == nil {
		d.unitRepository = unitrepo.NewQuantityUnitRepository(d.UnitsCollection(ctx))
	}

	return d.unitRepository
}

func (d *di) ConversionRepository(ctx context.Context) rsvc.ConversionRepository {
	if d.conversionRepository == nil {
		d.conversionRepository = convrepo.NewConversionRepository(d.ConversionsCollection(ctx))
	}

	return d.conversionRepository
}

func (d *di) StockRepository(ctx context.Context) rsvc.StockRepository {
	if d.stockRepository == nil {
		d.stockRepository = stockrepo.NewStockRepository(d.StockCollection(ctx))
	}

	return d.stockRepository
}

func (d *di) ShoppingListRepository(ctx context.Context) rsvc.ShoppingListRepository {
	if d.shoppingListRepository == nil {
		d.shoppingListRepository = slrepo.NewShoppingListRepository(d.ShoppingListCollection(ctx))
	}

	return d.shoppingListRepository
}

func (d *di) RecipeRepository(ctx context.Context) rsvc.RecipeRepository {
	if d.recipeRepository == nil {
		d.recipeRepository = reciperepo.NewRecipeRepository(d.RecipesCollection(ctx))
	}

	return d.recipeRepository
}

func (d *di) KafkaConverter(ctx context.Context) slproducer.Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ShoppingListUpdatedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) ShoppingListUpdatedProducer(ctx context.Context) kafka.Producer {
	if d.shoppingListKafka == nil {
		d.shoppingListKafka = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.ShoppingListUpdatedTopic(),
			logger.L(),
		)
	}

	return d.shoppingListKafka
}

func (d *di) ShoppingListUpdatedSender(ctx context.Context) rsvc.ShoppingListUpdatedSender {
	if d.shoppingListSender == nil {
		d.shoppingListSender = slproducer.NewShoppingListProducer(
			d.ShoppingListUpdatedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.shoppingListSender
}

func (d *di) RecipeService(ctx context.Context) thttp.RecipeService {
	if d.recipeService == nil {
		d.recipeService = rsvc.NewRecipeService(
			d.RecipeRepository(ctx),
			d.ProductRepository(ctx),
			d.QuantityUnitRepository(ctx),
			d.ConversionRepository(ctx),
			d.StockRepository(ctx),
			d.ShoppingListRepository(ctx),
			d.ShoppingListUpdatedSender(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.recipeService
}

func (d *di) StockService(ctx context.Context) thttp.StockService {
	if d.stockService == nil {
		d.stockService = ssvc.NewStockService(
			d.ProductRepository(ctx),
			d.QuantityUnitRepository(ctx),
			d.ConversionRepository(ctx),
			d.StockRepository(ctx),
			d.ShoppingListRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.stockService
}

func (d *di) PantryHandler(ctx context.Context) PantryHandler {
	if d.handler == nil {
		d.handler = thttp.NewPantryHandler(
			d.RecipeService(ctx),
			d.StockService(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

func ensureProductIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "parent_id", Value: 1}}},
	}, options.CreateIndexes())

	return err
}

func ensureConversionIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "product_id", Value: 1},
				{Key: "from_unit_id", Value: 1},
				{Key: "to_unit_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}, options.CreateIndexes())

	return err
}

func ensureShoppingListIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "done", Value: 1},
			{Key: "product_id", Value: 1},
		}},
	}, options.CreateIndexes())

	return err
}
