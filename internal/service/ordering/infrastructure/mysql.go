// internal/service/ordering/infrastructure/mysql.go
package infrastructure

import (
	"time"

	driver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// MySQLConfig 是打开数据库连接所需的全部参数。
type MySQLConfig struct {
	Addr     string
	User     string
	Password string
	Database string
}

// OpenMySQL 打开 GORM 连接并完成表结构迁移。
func OpenMySQL(cfg MySQLConfig) (*gorm.DB, error) {
	dsnConfig := driver.NewConfig()
	dsnConfig.User = cfg.User
	dsnConfig.Passwd = cfg.Password
	dsnConfig.Net = "tcp"
	dsnConfig.Addr = cfg.Addr
	dsnConfig.DBName = cfg.Database
	dsnConfig.ParseTime = true
	dsnConfig.Loc = time.UTC

	db, err := gorm.Open(gormmysql.Open(dsnConfig.FormatDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}
	if err := db.AutoMigrate(
		&CustomerModel{},
		&OrderModel{},
		&OrderItemModel{},
		&ShoppingCartModel{},
		&ShoppingCartItemModel{},
	); err != nil {
		return nil, errors.Wrap(err, "migrate schema")
	}
	return db, nil
}
