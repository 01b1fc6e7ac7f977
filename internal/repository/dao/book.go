package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到错误（即 Gorm 的记录未找到）
var ErrDataNotFound = gorm.ErrRecordNotFound

type BookDAO interface {
	Insert(ctx context.Context, b Book) (int64, error)
	FindById(ctx context.Context, id int64) (Book, error)
	ListAll(ctx context.Context) ([]Book, error)
	UpdateById(ctx context.Context, b Book) error
	UpdateReadPages(ctx context.Context, id int64, readPages int64) error
}

type GORMBookDAO struct {
	db *gorm.DB
}

func NewGORMBookDAO(db *gorm.DB) BookDAO {
	return &GORMBookDAO{
		db: db,
	}
}

func (dao *GORMBookDAO) Insert(ctx context.Context, b Book) (int64, error) {
	now := time.Now().UnixMilli()
	b.Ctime = now
	b.Utime = now
	err := dao.db.WithContext(ctx).Create(&b).Error
	return b.Id, err
}

func (dao *GORMBookDAO) FindById(ctx context.Context, id int64) (Book, error) {
	var b Book
	err := dao.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return b, err
}

func (dao *GORMBookDAO) ListAll(ctx context.Context) ([]Book, error) {
	var bs []Book
	err := dao.db.WithContext(ctx).Find(&bs).Error
	return bs, err
}

// UpdateById 只更新非零字段，用于外部建书流程修改标题和总页数
// 依赖了 gorm 的默认语义：用 Id 作为 WHERE 条件，非零值才更新
func (dao *GORMBookDAO) UpdateById(ctx context.Context, b Book) error {
	b.Utime = time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Updates(&b).Error
}

// UpdateReadPages 回写异步算好的去重页数
// 同一本书的任务可能重复投递，重复回写同一个值没有副作用
func (dao *GORMBookDAO) UpdateReadPages(ctx context.Context, id int64, readPages int64) error {
	return dao.db.WithContext(ctx).Model(&Book{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"read_pages": readPages,
			"utime":      time.Now().UnixMilli(),
		}).Error
}

// Book 书籍表
type Book struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Title string `gorm:"type:varchar(1024)"`
	// 总页数只会被外部建书流程改动
	TotalPages int64
	// 冗余的去重阅读页数，异步任务回写
	ReadPages int64
	Ctime     int64
	Utime     int64
}
