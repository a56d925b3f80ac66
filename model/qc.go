package model

import (
	"time"

	"github.com/muhammadheryan/garment-erp/constant"
	"github.com/muhammadheryan/garment-erp/ledger"
)

type QCReviewEntity struct {
	ID               uint64    `db:"id" json:"id"`
	AssignmentID     uint64    `db:"order_batch_assignment_id" json:"assignment_id"`
	Size             string    `db:"size_name" json:"size"`
	ApprovedQuantity int       `db:"approved_quantity" json:"approved_quantity"`
	RejectedQuantity int       `db:"rejected_quantity" json:"rejected_quantity"`
	Remarks          string    `db:"remarks" json:"remarks"`
	ReviewedBy       uint64    `db:"reviewed_by" json:"reviewed_by"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// ReviewTotal is the sum of qc_reviews for one (assignment, size).
type ReviewTotal struct {
	OrderID      uint64 `db:"order_id"`
	AssignmentID uint64 `db:"order_batch_assignment_id"`
	Size         string `db:"size_name"`
	Approved     int    `db:"approved"`
	Rejected     int    `db:"rejected"`
}

// ReviewKey identifies one size of one batch assignment.
type ReviewKey struct {
	AssignmentID uint64
	Size         string
}

// IndexReviews keys review totals by (assignment, size).
func IndexReviews(totals []ReviewTotal) map[ReviewKey]ReviewTotal {
	idx := make(map[ReviewKey]ReviewTotal, len(totals))
	for _, t := range totals {
		idx[ReviewKey{AssignmentID: t.AssignmentID, Size: t.Size}] = t
	}
	return idx
}

// State combines a size row with its review totals.
func (s AssignmentSize) State(reviews map[ReviewKey]ReviewTotal) ledger.SizeState {
	t := reviews[ReviewKey{AssignmentID: s.AssignmentID, Size: s.Size}]
	return ledger.SizeState{
		Size:      s.Size,
		Allocated: s.Quantity,
		Picked:    s.PickedQuantity,
		Approved:  t.Approved,
		Rejected:  t.Rejected,
	}
}

// GroupQC builds the QC view of every assignment, keyed by order id.
// Assignments keep the order in which their first row appears.
func GroupQC(rows []AssignmentSize, reviews map[ReviewKey]ReviewTotal) map[uint64][]ledger.AssignmentQC {
	out := make(map[uint64][]ledger.AssignmentQC)
	pos := make(map[uint64]int)
	for _, row := range rows {
		i, ok := pos[row.AssignmentID]
		if !ok {
			out[row.OrderID] = append(out[row.OrderID], ledger.AssignmentQC{AssignmentID: row.AssignmentID})
			i = len(out[row.OrderID]) - 1
			pos[row.AssignmentID] = i
		}
		a := &out[row.OrderID][i]
		a.Sizes = append(a.Sizes, row.State(reviews))
	}
	return out
}

// ApprovedBySize sums approved units per size.
func ApprovedBySize(totals []ReviewTotal) map[string]int {
	out := make(map[string]int)
	for _, t := range totals {
		out[t.Size] += t.Approved
	}
	return out
}

type SubmitReviewRequest struct {
	AssignmentID uint64 `json:"-"`
	Size         string `json:"size" validate:"required,size"`
	Approved     int    `json:"approved" validate:"gte=0"`
	Rejected     int    `json:"rejected" validate:"gte=0"`
	Remarks      string `json:"remarks" validate:"max=1000"`
}

type SubmitReviewResponse struct {
	ReviewID       uint64 `json:"review_id"`
	AssignmentID   uint64 `json:"assignment_id"`
	Size           string `json:"size"`
	Picked         int    `json:"picked"`
	Approved       int    `json:"approved"`
	Rejected       int    `json:"rejected"`
	AwaitingReview int    `json:"awaiting_review"`
	QCComplete     bool   `json:"qc_complete"`
}

type AssignmentQCResponse struct {
	AssignmentID uint64           `json:"assignment_id"`
	OrderID      uint64           `json:"order_id"`
	BatchID      uint64           `json:"batch_id"`
	BatchName    string           `json:"batch_name"`
	QCComplete   bool             `json:"qc_complete"`
	Sizes        []QCSize         `json:"sizes"`
	Reviews      []QCReviewEntity `json:"reviews"`
}

type QCSize struct {
	Size           string `json:"size"`
	Picked         int    `json:"picked"`
	Approved       int    `json:"approved"`
	Rejected       int    `json:"rejected"`
	AwaitingReview int    `json:"awaiting_review"`
	Unapproved     int    `json:"unapproved"`
	QCComplete     bool   `json:"qc_complete"`
}

type QCOrder struct {
	OrderID      uint64            `json:"order_id"`
	OrderNumber  string            `json:"order_number"`
	CustomerName string            `json:"customer_name"`
	QCStatus     constant.QCStatus `json:"qc_status"`
	Picked       int               `json:"picked"`
	Approved     int               `json:"approved"`
	Rejected     int               `json:"rejected"`
}
