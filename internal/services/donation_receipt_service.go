package services

import (
	"context"
	"strings"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgReceiptNotFound   = "신청 내역을 찾을 수 없습니다."
	msgReceiptRequired   = "필수 정보가 누락되었습니다."
	msgReceiptIndividual = "개인 발급의 경우 주민등록번호와 주소는 필수입니다."
	msgReceiptCorporate  = "법인 발급의 경우 법인명과 사업자등록증은 필수입니다."
	msgReceiptBadType    = "유효하지 않은 발급 유형입니다."
	msgReceiptBadStatus  = "유효하지 않은 처리 상태입니다."
)

type donationReceiptService struct {
	repo repositories.DonationReceiptRepository
}

// NewDonationReceiptService creates a new DonationReceiptService implementation
func NewDonationReceiptService(repo repositories.DonationReceiptRepository) DonationReceiptService {
	return &donationReceiptService{repo: repo}
}

func (s *donationReceiptService) List(ctx context.Context) ([]*models.DonationReceipt, error) {
	return s.repo.FindAll(ctx)
}

func (s *donationReceiptService) Get(ctx context.Context, id primitive.ObjectID) (*models.DonationReceipt, error) {
	receipt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgReceiptNotFound)
	}
	return receipt, nil
}

// Submit validates a public application. Fields belonging to the other
// receipt type are dropped.
func (s *donationReceiptService) Submit(ctx context.Context, req *models.DonationReceiptRequest) (*models.DonationReceipt, error) {
	if req.Type == "" || blank(req.Name) || blank(req.Contact) || blank(req.Email) {
		return nil, validationError(msgReceiptRequired)
	}

	receipt := &models.DonationReceipt{
		Type:          req.Type,
		Name:          strings.TrimSpace(req.Name),
		Contact:       strings.TrimSpace(req.Contact),
		Email:         strings.TrimSpace(req.Email),
		OtherRequests: req.OtherRequests,
		Status:        models.ReceiptPending,
	}
	switch req.Type {
	case models.ReceiptIndividual:
		if blank(req.ResidentNumber) || blank(req.Address) {
			return nil, validationError(msgReceiptIndividual)
		}
		receipt.ResidentNumber = strings.TrimSpace(req.ResidentNumber)
		receipt.Address = strings.TrimSpace(req.Address)
	case models.ReceiptCorporate:
		if blank(req.CorporateName) || blank(req.BusinessRegistrationFile) {
			return nil, validationError(msgReceiptCorporate)
		}
		receipt.CorporateName = strings.TrimSpace(req.CorporateName)
		receipt.BusinessRegistrationFile = strings.TrimSpace(req.BusinessRegistrationFile)
	default:
		return nil, validationError(msgReceiptBadType)
	}

	if err := s.repo.Create(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// UpdateStatus changes only the processing status and the admin notes.
func (s *donationReceiptService) UpdateStatus(ctx context.Context, id primitive.ObjectID, req *models.DonationReceiptUpdate) (*models.DonationReceipt, error) {
	fields := repositories.Fields{}
	if req.Status != nil && *req.Status != "" {
		if !req.Status.Valid() {
			return nil, validationError(msgReceiptBadStatus)
		}
		fields["status"] = *req.Status
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	receipt, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, notFoundOr(err, msgReceiptNotFound)
	}
	return receipt, nil
}

func (s *donationReceiptService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFoundOr(s.repo.Delete(ctx, id), msgReceiptNotFound)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
