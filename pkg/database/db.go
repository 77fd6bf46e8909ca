package database

import (
	"ecoconnect/config"
	"ecoconnect/models"
	"ecoconnect/pkg/log"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接，建表并写入默认管理员
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success")

	if err := db.AutoMigrate(
		&models.Users{},
		&models.UserFollow{},
		&models.ActivityFeed{},
		&models.Achievement{},
		&models.WasteLog{},
	); err != nil {
		log.L.Fatal("failed to migrate database", zap.Error(err))
	}

	if err := ensureAdmin(db, conf.Admin); err != nil {
		log.L.Fatal("failed to seed admin user", zap.Error(err))
	}

	return db
}

// ensureAdmin 无管理员时创建默认账号
func ensureAdmin(db *gorm.DB, admin *config.Admin) error {
	var count int64
	if err := db.Model(&models.Users{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.Users{
		Username: admin.Username,
		Email:    admin.Email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	log.L.Info("admin user created", zap.String("username", admin.Username))
	return nil
}
