// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type PlanType string

const (
	PlanPersonal       PlanType = "personal"
	PlanSmallBusiness  PlanType = "small_business"
	PlanMediumBusiness PlanType = "medium_business"
	PlanEnterprise     PlanType = "enterprise"
)

// Quotas are the resource limits and list price attached to a plan tier.
type Quotas struct {
	MonthlyPrice      float64
	MaxQRCodes        int
	MaxContributors   int
	StorageLimitBytes int64
}

const gib int64 = 1 << 30

// PlanQuotas must stay in line with the column defaults of the organizations table,
// which carry the personal tier.
var PlanQuotas = map[PlanType]Quotas{
	PlanPersonal:       {MonthlyPrice: 0, MaxQRCodes: 5, MaxContributors: 1, StorageLimitBytes: 2 * gib},
	PlanSmallBusiness:  {MonthlyPrice: 29, MaxQRCodes: 50, MaxContributors: 5, StorageLimitBytes: 25 * gib},
	PlanMediumBusiness: {MonthlyPrice: 99, MaxQRCodes: 250, MaxContributors: 25, StorageLimitBytes: 100 * gib},
	PlanEnterprise:     {MonthlyPrice: 499, MaxQRCodes: 5000, MaxContributors: 250, StorageLimitBytes: 1024 * gib},
}

type OrganizationStatus string

const (
	OrganizationActive    OrganizationStatus = "active"
	OrganizationSuspended OrganizationStatus = "suspended"
	OrganizationCancelled OrganizationStatus = "cancelled"
)

type Organization struct {
	ID                    string             `db:"id" json:"id"`
	Name                  string             `db:"name" json:"name"`
	Email                 string             `db:"email" json:"email"`
	PlanType              PlanType           `db:"plan_type" json:"plan_type"`
	Status                OrganizationStatus `db:"status" json:"status"`
	MonthlyPrice          float64            `db:"monthly_price" json:"monthly_price"`
	MaxQRCodes            int                `db:"max_qr_codes" json:"max_qr_codes"`
	MaxContributors       int                `db:"max_contributors" json:"max_contributors"`
	StorageLimitBytes     int64              `db:"storage_limit_bytes" json:"storage_limit_bytes"`
	TotalScans            int64              `db:"total_scans" json:"total_scans"`
	TotalUploads          int64              `db:"total_uploads" json:"total_uploads"`
	SubscriptionStartedAt time.Time          `db:"subscription_started_at" json:"subscription_started_at"`
	CreatedAt             time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time          `db:"updated_at" json:"updated_at"`
}

type AdminRole string

const (
	AdminRoleAnalyst    AdminRole = "analyst"
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super_admin"
)

// AdminRoles lists the accepted operator roles in privilege order.
var AdminRoles = []AdminRole{AdminRoleAnalyst, AdminRoleAdmin, AdminRoleSuperAdmin}

// AdminOperator is an internal staff account, it never belongs to an Organization.
type AdminOperator struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     string     `db:"full_name" json:"full_name"`
	Role         AdminRole  `db:"role" json:"role"`
	Status       string     `db:"status" json:"status"`
	CreatedBy    *string    `db:"created_by" json:"created_by,omitempty"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
