package service

import (
	"testing"

	"inventix/internal/model"
	"inventix/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newOrgService(db *gorm.DB) OrgService {
	return NewOrgService(repository.NewOrganizationRepo(db), repository.NewContactRepo(db), db)
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := model.User{Email: email, FullName: "Test User", IsActive: true}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func TestApproveRequestProvisionsTenant(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "owner@example.com")
	svc := newOrgService(db)

	req, err := svc.RequestOrganization(user.ID, user.Email, "Corner Shop")
	if err != nil {
		t.Fatalf("RequestOrganization: %v", err)
	}
	if req.Status != model.OrgRequestPending {
		t.Fatalf("status = %s, want pending", req.Status)
	}

	org, err := svc.ApproveRequest(req.ID, "admin@example.com")
	if err != nil {
		t.Fatalf("ApproveRequest: %v", err)
	}
	if org.Name != "Corner Shop" {
		t.Fatalf("org name = %q", org.Name)
	}

	orgs, err := svc.MyOrganizations(user.ID)
	if err != nil {
		t.Fatalf("MyOrganizations: %v", err)
	}
	if len(orgs) != 1 || orgs[0].ID != org.ID {
		t.Fatalf("requester is not a member of the new org: %+v", orgs)
	}
	var member model.OrgMember
	if err := db.First(&member, "org_id = ? AND user_id = ?", org.ID, user.ID).Error; err != nil {
		t.Fatalf("membership row: %v", err)
	}
	if member.Role != model.OrgRoleOwner {
		t.Fatalf("role = %s, want owner", member.Role)
	}

	// Provisioning includes the counter contact and default settings.
	counter, err := repository.NewContactRepo(db).FindCounter(org.ID)
	if err != nil {
		t.Fatalf("counter contact: %v", err)
	}
	if !counter.Counter {
		t.Fatal("contact is not flagged as counter")
	}
	var settings model.Settings
	if err := db.First(&settings, "org_id = ?", org.ID).Error; err != nil {
		t.Fatalf("settings row: %v", err)
	}
	if settings.DiscountMethod != model.PaymentCash {
		t.Fatalf("discount method = %q, want cash", settings.DiscountMethod)
	}
}

func TestApproveRequestTwice(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "owner@example.com")
	svc := newOrgService(db)

	req, err := svc.RequestOrganization(user.ID, user.Email, "Corner Shop")
	if err != nil {
		t.Fatalf("RequestOrganization: %v", err)
	}
	if _, err := svc.ApproveRequest(req.ID, "admin@example.com"); err != nil {
		t.Fatalf("first approve: %v", err)
	}
	if _, err := svc.ApproveRequest(req.ID, "admin@example.com"); err != ErrRequestNotPending {
		t.Fatalf("expected ErrRequestNotPending, got %v", err)
	}
}

func TestRejectRequest(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "owner@example.com")
	svc := newOrgService(db)

	req, err := svc.RequestOrganization(user.ID, user.Email, "Corner Shop")
	if err != nil {
		t.Fatalf("RequestOrganization: %v", err)
	}
	if err := svc.RejectRequest(req.ID, "admin@example.com"); err != nil {
		t.Fatalf("RejectRequest: %v", err)
	}
	rejected, err := repository.NewOrganizationRepo(db).FindRequestByID(req.ID)
	if err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if rejected.Status != model.OrgRequestRejected {
		t.Fatalf("status = %s, want rejected", rejected.Status)
	}
	if len(mustOrgs(t, svc, user.ID)) != 0 {
		t.Fatal("rejected request must not create a membership")
	}
}

func TestApproveUnknownRequest(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrgService(db)
	if _, err := svc.ApproveRequest(uuid.New(), "admin@example.com"); err != ErrRequestNotFound {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func mustOrgs(t *testing.T, svc OrgService, userID uuid.UUID) []model.Organization {
	t.Helper()
	orgs, err := svc.MyOrganizations(userID)
	if err != nil {
		t.Fatalf("MyOrganizations: %v", err)
	}
	return orgs
}
