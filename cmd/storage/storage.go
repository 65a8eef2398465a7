package storageclient

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/sanitary-shop/cmd/config"
	redisclient "github.com/muhammadheryan/sanitary-shop/cmd/redis"
	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/repository/storage"
)

// Open builds the key-value driver selected by STORAGE_DRIVER. The returned
// close func releases the underlying connection or file.
func Open(cfg *config.Config) (storage.Storage, func() error, error) {
	switch cfg.Storage.Driver {
	case constant.StorageDriverMemory:
		return storage.NewMemoryStorage(), noop, nil

	case constant.StorageDriverBolt:
		b, err := storage.OpenBoltStorage(cfg.Storage.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil

	case constant.StorageDriverRedis:
		client, err := redisclient.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStorage(client, ""), client.Close, nil

	case constant.StorageDriverMySQL:
		db, err := sqlx.Connect("mysql", cfg.GetDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect mysql: %w", err)
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
		return storage.NewSQLStorage(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func noop() error { return nil }
