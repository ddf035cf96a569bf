package models

import (
	"strings"
)

// ApprovalStatus is the review state of a showcase
type ApprovalStatus string

const (
	ApprovalStatusPending       ApprovalStatus = "pending"
	ApprovalStatusNeedsRevision ApprovalStatus = "needs_revision"
	ApprovalStatusRejected      ApprovalStatus = "rejected"
	ApprovalStatusApproved      ApprovalStatus = "approved"
)

// ApprovalStatuses lists every status in display order
var ApprovalStatuses = []ApprovalStatus{
	ApprovalStatusPending,
	ApprovalStatusNeedsRevision,
	ApprovalStatusRejected,
	ApprovalStatusApproved,
}

// ApprovalStatusLabels maps status codes to their human readable label
var ApprovalStatusLabels = map[ApprovalStatus]string{
	ApprovalStatusPending:       "Pending",
	ApprovalStatusNeedsRevision: "Needs Revision",
	ApprovalStatusRejected:      "Rejected",
	ApprovalStatusApproved:      "Approved",
}

// IsValid checks if the ApprovalStatus is valid
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusNeedsRevision, ApprovalStatusRejected, ApprovalStatusApproved:
		return true
	}
	return false
}

// Label returns the display label, or the raw code for unknown values
func (s ApprovalStatus) Label() string {
	if label, ok := ApprovalStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseApprovalStatus accepts a status code or its label, ignoring case
func ParseApprovalStatus(value string) (ApprovalStatus, bool) {
	v := strings.TrimSpace(value)
	for _, s := range ApprovalStatuses {
		if strings.EqualFold(v, string(s)) || strings.EqualFold(v, s.Label()) {
			return s, true
		}
	}
	return "", false
}

// ApprovalStatusCodes returns the accepted status codes
func ApprovalStatusCodes() []string {
	codes := make([]string, 0, len(ApprovalStatuses))
	for _, s := range ApprovalStatuses {
		codes = append(codes, string(s))
	}
	return codes
}

// PackageType discriminates catalog entries
type PackageType string

const (
	PackageTypeDataset  PackageType = "dataset"
	PackageTypeShowcase PackageType = "showcase"
)

// IsValid checks if the PackageType is valid
func (t PackageType) IsValid() bool {
	switch t {
	case PackageTypeDataset, PackageTypeShowcase:
		return true
	}
	return false
}

// PackageState is the lifecycle state of a catalog entry
type PackageState string

const (
	PackageStateActive  PackageState = "active"
	PackageStateDraft   PackageState = "draft"
	PackageStateDeleted PackageState = "deleted"
)

// IsValid checks if the PackageState is valid
func (s PackageState) IsValid() bool {
	switch s {
	case PackageStateActive, PackageStateDraft, PackageStateDeleted:
		return true
	}
	return false
}

// ReuseType classifies what a showcase built on top of the data
type ReuseType string

const (
	ReuseTypeApplication   ReuseType = "application"
	ReuseTypeVisualization ReuseType = "visualization"
	ReuseTypeAPI           ReuseType = "api"
	ReuseTypeResearch      ReuseType = "research"
	ReuseTypeNewsArticle   ReuseType = "news_article"
	ReuseTypeIdea          ReuseType = "idea"
	ReuseTypeOther         ReuseType = "other"
)

// ReuseTypes lists every accepted reuse type
var ReuseTypes = []ReuseType{
	ReuseTypeApplication,
	ReuseTypeVisualization,
	ReuseTypeAPI,
	ReuseTypeResearch,
	ReuseTypeNewsArticle,
	ReuseTypeIdea,
	ReuseTypeOther,
}

// IsValid checks if the ReuseType is valid
func (r ReuseType) IsValid() bool {
	for _, t := range ReuseTypes {
		if r == t {
			return true
		}
	}
	return false
}

// ReuseTypeCodes returns the accepted reuse type codes
func ReuseTypeCodes() []string {
	codes := make([]string, 0, len(ReuseTypes))
	for _, r := range ReuseTypes {
		codes = append(codes, string(r))
	}
	return codes
}
