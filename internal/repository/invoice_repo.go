package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"inventix/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(tx *gorm.DB, invoice *model.Invoice) error
	FindAll(orgID uuid.UUID) ([]model.Invoice, error)
	FindByReference(orgID uuid.UUID, reference string) (*model.Invoice, error)
	DeleteByReference(tx *gorm.DB, orgID uuid.UUID, reference string) error
	NextReference(orgID uuid.UUID, year int) (string, error)
}

type invoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db}
}

func (r *invoiceRepo) Create(tx *gorm.DB, invoice *model.Invoice) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(invoice).Error
}

func (r *invoiceRepo) FindAll(orgID uuid.UUID) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.Where("org_id = ?", orgID).Order("date DESC, reference DESC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) FindByReference(orgID uuid.UUID, reference string) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.First(&invoice, "org_id = ? AND reference = ?", orgID, reference).Error
	return &invoice, err
}

// DeleteByReference hard-deletes the summary row. The edit workflow recreates
// an invoice under the same reference, which the unique (org_id, reference)
// index would reject if a soft-deleted row were left behind.
func (r *invoiceRepo) DeleteByReference(tx *gorm.DB, orgID uuid.UUID, reference string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Unscoped().Delete(&model.Invoice{}, "org_id = ? AND reference = ?", orgID, reference).Error
}

// NextReference allocates FAC-<year>-<seq> by parsing the highest existing
// sequence for the year.
func (r *invoiceRepo) NextReference(orgID uuid.UUID, year int) (string, error) {
	prefix := fmt.Sprintf("FAC-%d-", year)

	var last model.Invoice
	err := r.db.Unscoped().
		Where("org_id = ? AND reference LIKE ?", orgID, prefix+"%").
		Order("reference DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Sprintf("%s%04d", prefix, 1), nil
	}
	if err != nil {
		return "", err
	}

	seq, err := strconv.Atoi(strings.TrimPrefix(last.Reference, prefix))
	if err != nil {
		return "", fmt.Errorf("malformed invoice reference %q: %w", last.Reference, err)
	}
	return fmt.Sprintf("%s%04d", prefix, seq+1), nil
}
