package wire

import (
	"context"
	"fmt"

	"tourism-booking/internal/data/repository"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

// OpenStore connects the booking store named by STORE_DRIVER. The returned
// close func releases its connections and is safe to defer.
func OpenStore(config *utils.Config, logger *zap.Logger) (repository.BookingStore, func(), error) {
	switch config.Store.Driver {
	case "postgres":
		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		logger.Info("Database connected successfully", zap.String("driver", "postgres"))
		return repository.NewPostgresStore(db, logger), db.Close, nil

	case "mongo":
		db, err := database.InitMongo(config.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("open mongo store: %w", err)
		}
		logger.Info("Database connected successfully",
			zap.String("driver", "mongo"),
			zap.String("database", config.Mongo.Database))
		closeFn := func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				logger.Warn("Failed to disconnect mongo", zap.Error(err))
			}
		}
		return repository.NewMongoStore(db, logger), closeFn, nil

	case "memory":
		logger.Warn("Using in-memory store, bookings are lost on restart")
		return repository.NewMemoryStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", config.Store.Driver)
	}
}
