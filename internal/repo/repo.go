package repo

import (
	"github.com/GlebRadaev/loyalty/internal/pg"
	auditrepo "github.com/GlebRadaev/loyalty/internal/repo/audit-repo"
	businessrepo "github.com/GlebRadaev/loyalty/internal/repo/business-repo"
	clientrepo "github.com/GlebRadaev/loyalty/internal/repo/client-repo"
	productrepo "github.com/GlebRadaev/loyalty/internal/repo/product-repo"
	programrepo "github.com/GlebRadaev/loyalty/internal/repo/program-repo"
	progressrepo "github.com/GlebRadaev/loyalty/internal/repo/progress-repo"
	purchaserepo "github.com/GlebRadaev/loyalty/internal/repo/purchase-repo"
	ticketrepo "github.com/GlebRadaev/loyalty/internal/repo/ticket-repo"
	userrepo "github.com/GlebRadaev/loyalty/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	BusinessRepo *businessrepo.Repository
	ClientRepo   *clientrepo.Repository
	ProgramRepo  *programrepo.Repository
	ProductRepo  *productrepo.Repository
	ProgressRepo *progressrepo.Repository
	PurchaseRepo *purchaserepo.Repository
	TicketRepo   *ticketrepo.Repository
	AuditRepo    *auditrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		BusinessRepo: businessrepo.New(conn),
		ClientRepo:   clientrepo.New(conn),
		ProgramRepo:  programrepo.New(conn, txManager),
		ProductRepo:  productrepo.New(conn),
		ProgressRepo: progressrepo.New(conn),
		PurchaseRepo: purchaserepo.New(conn),
		TicketRepo:   ticketrepo.New(conn),
		AuditRepo:    auditrepo.New(conn),
	}
}
