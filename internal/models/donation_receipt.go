package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReceiptType string

const (
	ReceiptIndividual ReceiptType = "개인"
	ReceiptCorporate  ReceiptType = "법인"
)

type ReceiptStatus string

const (
	ReceiptPending    ReceiptStatus = "대기"
	ReceiptProcessing ReceiptStatus = "처리중"
	ReceiptDone       ReceiptStatus = "완료"
	ReceiptRejected   ReceiptStatus = "거부"
)

// Valid reports whether s is a known status.
func (s ReceiptStatus) Valid() bool {
	switch s {
	case ReceiptPending, ReceiptProcessing, ReceiptDone, ReceiptRejected:
		return true
	}
	return false
}

// DonationReceipt is a request for a year-end donation receipt.
// ResidentNumber is sensitive; the public submit response is Redacted.
type DonationReceipt struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Type                     ReceiptType        `bson:"type" json:"type"`
	Name                     string             `bson:"name" json:"name"`
	Contact                  string             `bson:"contact" json:"contact"`
	Email                    string             `bson:"email" json:"email"`
	ResidentNumber           string             `bson:"residentNumber" json:"residentNumber"`
	Address                  string             `bson:"address" json:"address"`
	CorporateName            string             `bson:"corporateName" json:"corporateName"`
	BusinessRegistrationFile string             `bson:"businessRegistrationFile" json:"businessRegistrationFile"`
	OtherRequests            string             `bson:"otherRequests" json:"otherRequests"`
	Status                   ReceiptStatus      `bson:"status" json:"status"`
	Notes                    string             `bson:"notes" json:"notes"`
	CreatedAt                time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt                time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Redacted returns a copy without the resident registration number.
func (r DonationReceipt) Redacted() DonationReceipt {
	r.ResidentNumber = ""
	return r
}

// DonationReceiptRequest is the body of the public application form.
type DonationReceiptRequest struct {
	Type                     ReceiptType `json:"type"`
	Name                     string      `json:"name"`
	Contact                  string      `json:"contact"`
	Email                    string      `json:"email"`
	ResidentNumber           string      `json:"residentNumber"`
	Address                  string      `json:"address"`
	CorporateName            string      `json:"corporateName"`
	BusinessRegistrationFile string      `json:"businessRegistrationFile"`
	OtherRequests            string      `json:"otherRequests"`
}

// DonationReceiptUpdate is the body of the admin status update.
type DonationReceiptUpdate struct {
	Status *ReceiptStatus `json:"status"`
	Notes  *string        `json:"notes"`
}
