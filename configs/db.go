package configs

import (
	"plateful/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func ConnectDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{}, &entity.DriverProfile{},
		&entity.Restaurant{}, &entity.Menu{}, &entity.Option{}, &entity.OptionValue{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemSelection{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{},
		&entity.Review{}, &entity.DriverReview{},
		&entity.Promotion{},
		&entity.SupportTicket{},
		&entity.Banner{}, &entity.Popup{}, &entity.PopupView{},
		&entity.BlogCategory{}, &entity.BlogArticle{},
		&entity.Payout{},
		&entity.OTPCode{},
	)
}
