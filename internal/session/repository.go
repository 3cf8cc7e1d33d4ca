package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"gorm.io/gorm"

	"qrpay/kit/db"
)

// Expired sessions are kept; nothing sweeps them.
type sessionRow struct {
	ID         string `gorm:"primaryKey"`
	BusinessID string `gorm:"not null;index"`
	ExpiresAt  int64  `gorm:"not null"`
	CreatedAt  int64  `gorm:"not null;autoCreateTime:false"`
}

func (sessionRow) TableName() string { return "sessions" }

type SQLRepository struct {
	db *gorm.DB
}

func NewSQLRepository(gdb *gorm.DB) (*SQLRepository, error) {
	if err := gdb.AutoMigrate(&sessionRow{}); err != nil {
		log.Printf("layer=repo component=session repo=SQLRepository method=NewSQLRepository err=%v", err)
		return nil, errors.Join(db.ErrInternal, err)
	}
	return &SQLRepository{db: gdb}, nil
}

func (r *SQLRepository) Insert(ctx context.Context, s *Session) error {
	row := sessionRow{ID: s.ID, BusinessID: s.BusinessID, ExpiresAt: s.ExpiresAt, CreatedAt: s.CreatedAt}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&sessionRow{}).Where("id = ?", s.ID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return db.ErrConflict
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		log.Printf("layer=repo component=session repo=SQLRepository method=Insert session_id=%s err=%v", s.ID, err)
		return db.Translate(err)
	}
	return nil
}

func (r *SQLRepository) Get(ctx context.Context, sessionID string) (*Session, error) {
	var row sessionRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", sessionID).Error; err != nil {
		err = db.Translate(err)
		if !db.IsNotFound(err) {
			log.Printf("layer=repo component=session repo=SQLRepository method=Get session_id=%s err=%v", sessionID, err)
		}
		return nil, err
	}
	return &Session{ID: row.ID, BusinessID: row.BusinessID, ExpiresAt: row.ExpiresAt, CreatedAt: row.CreatedAt}, nil
}

type InMemoryRepository struct {
	mu   sync.Mutex
	data map[string]Session
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{data: make(map[string]Session)}
}

func (r *InMemoryRepository) Insert(ctx context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[s.ID]; ok {
		log.Printf("layer=repo component=session repo=InMemoryRepository method=Insert session_id=%s err=%v", s.ID, db.ErrConflict)
		return db.ErrConflict
	}
	r.data[s.ID] = *s
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, sessionID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.data[sessionID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &s, nil
}
