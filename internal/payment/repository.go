package payment

import (
	"context"
	"errors"
	"log"
	"sync"

	"gorm.io/gorm"

	"qrpay/kit/db"
)

type paymentRow struct {
	ID          string  `gorm:"primaryKey"`
	SessionID   string  `gorm:"not null;index"`
	BusinessID  string  `gorm:"not null;index"`
	Amount      float64 `gorm:"not null"`
	Status      string  `gorm:"not null"`
	CreatedAt   int64   `gorm:"not null;autoCreateTime:false"`
	CompletedAt int64
}

func (paymentRow) TableName() string { return "payments" }

func toRow(p *Payment) paymentRow {
	return paymentRow{
		ID:          p.ID,
		SessionID:   p.SessionID,
		BusinessID:  p.BusinessID,
		Amount:      p.Amount,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		CompletedAt: p.CompletedAt,
	}
}

func (r paymentRow) toPayment() *Payment {
	return &Payment{
		ID:          r.ID,
		SessionID:   r.SessionID,
		BusinessID:  r.BusinessID,
		Amount:      r.Amount,
		Status:      Status(r.Status),
		CreatedAt:   r.CreatedAt,
		CompletedAt: r.CompletedAt,
	}
}

type SQLRepository struct {
	db *gorm.DB
}

func NewSQLRepository(gdb *gorm.DB) (*SQLRepository, error) {
	if err := gdb.AutoMigrate(&paymentRow{}); err != nil {
		log.Printf("layer=repo component=payment repo=SQLRepository method=NewSQLRepository err=%v", err)
		return nil, errors.Join(db.ErrInternal, err)
	}
	return &SQLRepository{db: gdb}, nil
}

func (r *SQLRepository) Insert(ctx context.Context, p *Payment) error {
	row := toRow(p)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&paymentRow{}).Where("id = ?", p.ID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return db.ErrConflict
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		log.Printf("layer=repo component=payment repo=SQLRepository method=Insert payment_id=%s err=%v", p.ID, err)
		return db.Translate(err)
	}
	return nil
}

func (r *SQLRepository) Get(ctx context.Context, paymentID string) (*Payment, error) {
	var row paymentRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", paymentID).Error; err != nil {
		err = db.Translate(err)
		if !db.IsNotFound(err) {
			log.Printf("layer=repo component=payment repo=SQLRepository method=Get payment_id=%s err=%v", paymentID, err)
		}
		return nil, err
	}
	return row.toPayment(), nil
}

func (r *SQLRepository) Update(ctx context.Context, p *Payment) error {
	row := toRow(p)
	res := r.db.WithContext(ctx).Model(&paymentRow{ID: p.ID}).Select("*").Updates(&row)
	if res.Error != nil {
		log.Printf("layer=repo component=payment repo=SQLRepository method=Update payment_id=%s err=%v", p.ID, res.Error)
		return db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}

type InMemoryRepository struct {
	mu   sync.Mutex
	data map[string]Payment
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{data: make(map[string]Payment)}
}

func (r *InMemoryRepository) Insert(ctx context.Context, p *Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[p.ID]; ok {
		log.Printf("layer=repo component=payment repo=InMemoryRepository method=Insert payment_id=%s err=%v", p.ID, db.ErrConflict)
		return db.ErrConflict
	}
	r.data[p.ID] = *p
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, paymentID string) (*Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.data[paymentID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &p, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, p *Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[p.ID]; !ok {
		log.Printf("layer=repo component=payment repo=InMemoryRepository method=Update payment_id=%s err=%v", p.ID, db.ErrNotFound)
		return db.ErrNotFound
	}
	r.data[p.ID] = *p
	return nil
}
