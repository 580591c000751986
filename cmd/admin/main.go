package main

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"careerdesk/internal/auth"
	"careerdesk/internal/config"
	"careerdesk/internal/database"
)

// 运维命令行：创建账号（生成一次性密码）或删除账号。
// 删除账号会级联清理其全部简历与求职记录。
func main() {
	var (
		createEmail = flag.String("create", "", "创建账号：邮箱（与 --name 配合使用）")
		name        = flag.String("name", "", "创建账号：姓名")
		deleteEmail = flag.String("delete", "", "删除账号：邮箱（级联删除其简历与求职记录）")
	)
	flag.Parse()

	dbCfg, err := loadDatabaseConfig()
	if err != nil {
		log.Fatalf("load database config: %v", err)
	}

	db, err := database.InitDatabase(dbCfg)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	switch {
	case strings.TrimSpace(*createEmail) != "":
		if err := createUser(db, *createEmail, *name); err != nil {
			log.Fatalf("create user: %v", err)
		}
	case strings.TrimSpace(*deleteEmail) != "":
		if err := deleteUser(db, *deleteEmail); err != nil {
			log.Fatalf("delete user: %v", err)
		}
	default:
		log.Fatal("nothing to do: pass --create <email> --name <name> or --delete <email>")
	}
}

func createUser(db *gorm.DB, email, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("missing required flag: --name")
	}

	var existing database.User
	switch err := db.Where("email = ?", email).First(&existing).Error; {
	case err == nil:
		return fmt.Errorf("user %q already exists", email)
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return fmt.Errorf("query user: %w", err)
	}

	password, err := generateRandomPassword(24)
	if err != nil {
		return fmt.Errorf("generate password: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := database.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Printf("已创建账号：\n")
	fmt.Printf("邮箱: %s\n", email)
	fmt.Printf("初始密码: %s\n", password)
	fmt.Printf("提示：该密码仅显示一次，请立即登录并修改。\n")
	return nil
}

func deleteUser(db *gorm.DB, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user database.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %q not found", email)
		}
		return fmt.Errorf("query user: %w", err)
	}

	// Select 子表确保在未启用外键级联的环境下同样删除干净。
	if err := db.Select("Resumes", "Jobs").Delete(&user).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	fmt.Printf("已删除账号 %s（含其全部简历与求职记录）。\n", email)
	return nil
}

// loadDatabaseConfig 只读取数据库相关环境变量，避免要求完整的服务配置。
func loadDatabaseConfig() (config.DatabaseConfig, error) {
	cfg := config.DatabaseConfig{
		Host:     envOr("DATABASE_HOST", "localhost"),
		Port:     5432,
		Name:     os.Getenv("POSTGRES_DB"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		SSLMode:  envOr("DATABASE_SSLMODE", "disable"),
	}

	if env := strings.TrimSpace(os.Getenv("DATABASE_PORT")); env != "" {
		port, err := strconv.Atoi(env)
		if err != nil {
			return config.DatabaseConfig{}, fmt.Errorf("parse DATABASE_PORT: %w", err)
		}
		cfg.Port = port
	}

	if cfg.Name == "" {
		return config.DatabaseConfig{}, errors.New("database name is required (POSTGRES_DB)")
	}
	if cfg.User == "" {
		return config.DatabaseConfig{}, errors.New("database user is required (POSTGRES_USER)")
	}
	if cfg.Password == "" {
		return config.DatabaseConfig{}, errors.New("database password is required (POSTGRES_PASSWORD)")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func generateRandomPassword(bytesLen int) (string, error) {
	if bytesLen <= 0 {
		bytesLen = 24
	}
	buf := make([]byte, bytesLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
