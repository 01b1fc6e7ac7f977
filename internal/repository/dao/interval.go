package dao

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrIntervalDuplicate 表示完全相同的阅读区间已经存在
// 靠 (uid, book_id, start_page, end_page) 的唯一索引兜底，
// 并发重复提交的时候只有一个能插进去，其余的拿到这个错误
var ErrIntervalDuplicate = errors.New("阅读区间重复")

type IntervalDAO interface {
	Insert(ctx context.Context, iv ReadingInterval) error
	// GetByBookId 某本书的全部区间，按 start_page 升序
	// 调用方可以直接做线性合并
	GetByBookId(ctx context.Context, bookId int64) ([]ReadingInterval, error)
	// GetAll 全部区间，按 book_id、start_page 排好序，榜单实时计算用
	GetAll(ctx context.Context) ([]ReadingInterval, error)
}

type GORMIntervalDAO struct {
	db *gorm.DB
}

func NewGORMIntervalDAO(db *gorm.DB) IntervalDAO {
	return &GORMIntervalDAO{
		db: db,
	}
}

func (dao *GORMIntervalDAO) Insert(ctx context.Context, iv ReadingInterval) error {
	now := time.Now().UnixMilli()
	iv.Ctime = now
	iv.Utime = now
	err := dao.db.WithContext(ctx).Create(&iv).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062 // 唯一索引冲突错误码
		if me.Number == uniqueIndexErrNo {
			return ErrIntervalDuplicate
		}
	}
	return err
}

func (dao *GORMIntervalDAO) GetByBookId(ctx context.Context, bookId int64) ([]ReadingInterval, error) {
	var ivs []ReadingInterval
	err := dao.db.WithContext(ctx).
		Where("book_id = ?", bookId).
		Order("start_page ASC").
		Find(&ivs).Error
	return ivs, err
}

func (dao *GORMIntervalDAO) GetAll(ctx context.Context) ([]ReadingInterval, error) {
	var ivs []ReadingInterval
	err := dao.db.WithContext(ctx).
		Order("book_id ASC, start_page ASC").
		Find(&ivs).Error
	return ivs, err
}

// ReadingInterval 阅读区间表，插入之后不会再改
// 重叠的区间照样各存各的行，合并只在读取的时候做
type ReadingInterval struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// 四个构成唯一索引，同一个人对同一本书重复提交同一段是幂等的
	Uid       int64 `gorm:"uniqueIndex:uid_book_page"`
	BookId    int64 `gorm:"uniqueIndex:uid_book_page;index"`
	StartPage int64 `gorm:"uniqueIndex:uid_book_page"`
	EndPage   int64 `gorm:"uniqueIndex:uid_book_page"`
	Ctime     int64
	Utime     int64
}
