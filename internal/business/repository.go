package business

import (
	"context"
	"errors"
	"log"
	"maps"
	"sync"

	"gorm.io/gorm"

	"qrpay/kit/db"
)

type businessRow struct {
	ID             string         `gorm:"primaryKey"`
	DisplayName    string         `gorm:"not null"`
	Message        string         `gorm:"not null;default:''"`
	PaymentType    string         `gorm:"not null"`
	PaymentDetails map[string]any `gorm:"serializer:json"`
	LinkVersion    int64          `gorm:"not null"`
	Active         bool           `gorm:"not null"`
	CreatedAt      int64          `gorm:"not null;autoCreateTime:false"`
}

func (businessRow) TableName() string { return "businesses" }

func toRow(b *Business) businessRow {
	return businessRow{
		ID:             b.ID,
		DisplayName:    b.DisplayName,
		Message:        b.Message,
		PaymentType:    b.PaymentType,
		PaymentDetails: b.PaymentDetails,
		LinkVersion:    b.LinkVersion,
		Active:         b.Active,
		CreatedAt:      b.CreatedAt,
	}
}

func (r businessRow) toBusiness() *Business {
	details := r.PaymentDetails
	if details == nil {
		details = map[string]any{}
	}
	return &Business{
		ID:             r.ID,
		DisplayName:    r.DisplayName,
		Message:        r.Message,
		PaymentType:    r.PaymentType,
		PaymentDetails: details,
		LinkVersion:    r.LinkVersion,
		Active:         r.Active,
		CreatedAt:      r.CreatedAt,
	}
}

type SQLRepository struct {
	db *gorm.DB
}

func NewSQLRepository(gdb *gorm.DB) (*SQLRepository, error) {
	if err := gdb.AutoMigrate(&businessRow{}); err != nil {
		log.Printf("layer=repo component=business repo=SQLRepository method=NewSQLRepository err=%v", err)
		return nil, errors.Join(db.ErrInternal, err)
	}
	return &SQLRepository{db: gdb}, nil
}

func (r *SQLRepository) Insert(ctx context.Context, b *Business) error {
	row := toRow(b)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&businessRow{}).Where("id = ?", b.ID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return db.ErrConflict
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		log.Printf("layer=repo component=business repo=SQLRepository method=Insert business_id=%s err=%v", b.ID, err)
		return db.Translate(err)
	}
	return nil
}

func (r *SQLRepository) Get(ctx context.Context, businessID string) (*Business, error) {
	var row businessRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", businessID).Error; err != nil {
		err = db.Translate(err)
		if !db.IsNotFound(err) {
			log.Printf("layer=repo component=business repo=SQLRepository method=Get business_id=%s err=%v", businessID, err)
		}
		return nil, err
	}
	return row.toBusiness(), nil
}

// List returns businesses in registration order.
func (r *SQLRepository) List(ctx context.Context) ([]*Business, error) {
	var rows []businessRow
	if err := r.db.WithContext(ctx).Order("rowid").Find(&rows).Error; err != nil {
		log.Printf("layer=repo component=business repo=SQLRepository method=List err=%v", err)
		return nil, db.Translate(err)
	}
	out := make([]*Business, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toBusiness())
	}
	return out, nil
}

func (r *SQLRepository) Update(ctx context.Context, b *Business) error {
	row := toRow(b)
	res := r.db.WithContext(ctx).Model(&businessRow{ID: b.ID}).Select("*").Updates(&row)
	if res.Error != nil {
		log.Printf("layer=repo component=business repo=SQLRepository method=Update business_id=%s err=%v", b.ID, res.Error)
		return db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}

type InMemoryRepository struct {
	mu    sync.Mutex
	data  map[string]*Business
	order []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{data: make(map[string]*Business)}
}

func (r *InMemoryRepository) Insert(ctx context.Context, b *Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[b.ID]; ok {
		log.Printf("layer=repo component=business repo=InMemoryRepository method=Insert business_id=%s err=%v", b.ID, db.ErrConflict)
		return db.ErrConflict
	}
	r.data[b.ID] = clone(b)
	r.order = append(r.order, b.ID)
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, businessID string) (*Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.data[businessID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return clone(b), nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Business, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.data[id]))
	}
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, b *Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[b.ID]; !ok {
		return db.ErrNotFound
	}
	r.data[b.ID] = clone(b)
	return nil
}

func clone(b *Business) *Business {
	cpy := *b
	cpy.PaymentDetails = maps.Clone(b.PaymentDetails)
	return &cpy
}
