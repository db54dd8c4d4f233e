package mongodb

import (
	"context"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.DonationReceiptRepository = (*DonationReceiptRepository)(nil)

type DonationReceiptRepository struct {
	store documentStore[models.DonationReceipt]
}

func NewDonationReceiptRepository(db *mongo.Database) *DonationReceiptRepository {
	return &DonationReceiptRepository{store: newDocumentStore[models.DonationReceipt](db, "donationreceipts")}
}

func (r *DonationReceiptRepository) Create(ctx context.Context, receipt *models.DonationReceipt) error {
	stamp(&receipt.ID, &receipt.CreatedAt, &receipt.UpdatedAt)
	return r.store.insert(ctx, receipt)
}

func (r *DonationReceiptRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DonationReceipt, error) {
	return r.store.findByID(ctx, id)
}

// FindAll returns applications newest first
func (r *DonationReceiptRepository) FindAll(ctx context.Context) ([]*models.DonationReceipt, error) {
	return r.store.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *DonationReceiptRepository) Update(ctx context.Context, id primitive.ObjectID, fields repositories.Fields) (*models.DonationReceipt, error) {
	return r.store.update(ctx, id, fields)
}

func (r *DonationReceiptRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.delete(ctx, id)
}
