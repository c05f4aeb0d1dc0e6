package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/monokpe/james-ecom/internal/config"

	_ "github.com/lib/pq"
)

// Sentinel errors the service layer translates into API errors.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotPending   = errors.New("order is not pending")
	ErrDuplicatePayment  = errors.New("order already has a payment")
)

type Repositories struct {
	DB           *sql.DB
	Product      ProductRepository
	Catalog      CatalogRepository
	Stock        StockRepository
	Order        OrderRepository
	Payment      PaymentRepository
	Cart         CartRepository
	Wishlist     WishlistRepository
	Address      AddressRepository
	Notification NotificationRepository
}

func New(cfg *config.Config) (*Repositories, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:           db,
		Product:      NewProductRepo(db),
		Catalog:      NewCatalogRepo(db),
		Stock:        NewStockRepo(db),
		Order:        NewOrderRepository(db),
		Payment:      NewPaymentRepository(db),
		Cart:         NewCartRepo(db),
		Wishlist:     NewWishlistRepo(db),
		Address:      NewAddressRepo(db),
		Notification: NewNotificationRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
