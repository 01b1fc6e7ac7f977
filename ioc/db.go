package ioc

import (
	"fmt"

	"booktrack/internal/repository/dao"
	prometheus2 "booktrack/pkg/gormx/callbacks/prometheus"
	"booktrack/pkg/logger"

	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func InitDB(l logger.Logger) *gorm.DB {
	type Config struct {
		DSN string `yaml:"dsn"`
	}
	c := Config{
		DSN: "root:root@tcp(localhost:13316)/booktrack",
	}

	err := viper.UnmarshalKey("db", &c)
	if err != nil {
		panic(fmt.Errorf("初始化配置失败 %v, 原因 %w", c, err))
	}

	db, err := gorm.Open(mysql.Open(c.DSN), &gorm.Config{
		Logger: glogger.New(gormLoggerFunc(l.Debug),
			glogger.Config{
				SlowThreshold: 0,
				LogLevel:      glogger.Info,
			}),
	})
	if err != nil {
		panic(err)
	}

	// 数据库操作的响应时间上报到 prometheus
	cb := &prometheus2.Callbacks{
		Namespace:  "booktrack_server",
		Subsystem:  "booktrack",
		Name:       "gorm_db",
		InstanceID: "my-instance-1",
		Help:       "GORM 数据库查询",
	}
	err = cb.Register(db)
	if err != nil {
		panic(err)
	}

	err = dao.InitTables(db)
	if err != nil {
		panic(err)
	}

	return db
}

type gormLoggerFunc func(msg string, fields ...logger.Field)

func (g gormLoggerFunc) Printf(msg string, args ...interface{}) {
	g(msg, logger.Field{Key: "args", Value: args})
}
