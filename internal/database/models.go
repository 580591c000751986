package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User 表示系统中的账号信息。
type User struct {
	gorm.Model
	Name         string   `gorm:"size:128"`
	Email        string   `gorm:"uniqueIndex;size:255"`
	PasswordHash string   `gorm:"size:255"`
	Resumes      []Resume `gorm:"constraint:OnDelete:CASCADE"`
	Jobs         []Job    `gorm:"constraint:OnDelete:CASCADE"`
}

// Resume 表示用户创建的简历内容。
// Content 以 JSONB 原样保存客户端提交的结构化文档，读取时不做二次加工。
type Resume struct {
	gorm.Model
	Title     string         `gorm:"size:255"`
	Content   datatypes.JSON `gorm:"type:jsonb"`
	Template  string         `gorm:"size:32;default:classic"`
	UserID    uint           `gorm:"index"`
	User      User           `gorm:"constraint:OnDelete:CASCADE"`
	PdfURL    string         `gorm:"size:512"`
	PdfStatus string         `gorm:"size:32"`
}

// Job 表示一条求职申请记录。
// Status 取值限定为 Applied/Interview/Offer/Rejected，默认 Applied。
type Job struct {
	gorm.Model
	Company     string `gorm:"size:255"`
	Role        string `gorm:"size:255"`
	Status      string `gorm:"size:16;default:Applied"`
	Notes       string `gorm:"type:text"`
	AppliedDate string `gorm:"size:10"`
	UserID      uint   `gorm:"index"`
	User        User   `gorm:"constraint:OnDelete:CASCADE"`
}
