package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"veredicto/internal/domain/entities"
	"veredicto/internal/usecase/interfaces"
)

var (
	ErrInvalidCheckoutEmail = errors.New("invalid checkout email")
	ErrInvalidTier          = errors.New("invalid tier")
	ErrRepairNotUnlocked    = errors.New("repair requires a paid verdict")
)

// PriceTable maps a tier to the amount charged, in minor units of Currency.
type PriceTable struct {
	VerdictAmount int64
	RepairAmount  int64
	Currency      string
}

// LoadPriceTableFromEnv reads the tier pricing. Defaults are CLP, which has
// no decimal subdivision, so minor units equal whole pesos.
func LoadPriceTableFromEnv() PriceTable {
	return PriceTable{
		VerdictAmount: getenvInt64Default("PRICE_VERDICT", 9990),
		RepairAmount:  getenvInt64Default("PRICE_REPAIR", 19990),
		Currency:      strings.ToLower(getenvDefault("PRICE_CURRENCY", "clp")),
	}
}

func (p PriceTable) AmountFor(tier entities.Tier) int64 {
	if tier == entities.TierRepair {
		return p.RepairAmount
	}
	return p.VerdictAmount
}

// ICheckoutUseCase starts a provider checkout session tied to a report and a
// tier, and records the pending intent on the report.

type ICheckoutUseCase interface {
	StartCheckout(ctx context.Context, reportID, email string, tier entities.Tier) (string, error)
}

type CheckoutUseCase struct {
	repo    interfaces.IReportRepository
	gateway interfaces.ICheckoutGateway
	prices  PriceTable
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(repo interfaces.IReportRepository, gateway interfaces.ICheckoutGateway, prices PriceTable) *CheckoutUseCase {
	return &CheckoutUseCase{repo: repo, gateway: gateway, prices: prices}
}

// StartCheckout is safe to call repeatedly for the same report and tier: each
// call opens a fresh provider session and nothing server-side is unlocked
// until a verified webhook confirms payment. Abandoned sessions just expire
// on the provider side.
func (u *CheckoutUseCase) StartCheckout(ctx context.Context, reportID, email string, tier entities.Tier) (string, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return "", ErrInvalidReportID
	}
	if !tier.Valid() {
		return "", ErrInvalidTier
	}
	if u.gateway == nil {
		return "", errors.New("checkout gateway not configured")
	}

	rep, err := u.repo.GetByID(ctx, reportID)
	if err != nil {
		log.Printf("[checkout][usecase] failed loading report report_id=%s err=%v", reportID, err)
		return "", err
	}
	if rep.ID == "" {
		return "", ErrReportNotFound
	}

	email = strings.TrimSpace(email)
	if email == "" {
		// The repair endpoint omits the email; fall back to the address the
		// verdict payment was made with.
		email = strings.TrimSpace(rep.Email)
	}
	if tier == entities.TierVerdict && (email == "" || !strings.Contains(email, "@")) {
		return "", ErrInvalidCheckoutEmail
	}

	// Precondition checked before any provider call: repair cannot be bought
	// until the verdict is unlocked.
	if tier == entities.TierRepair && !rep.Paid {
		log.Printf("[checkout][usecase] repair requested before verdict paid report_id=%s", reportID)
		return "", ErrRepairNotUnlocked
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, interfaces.CheckoutParams{
		ReportID:    reportID,
		Tier:        tier,
		Email:       email,
		Amount:      u.prices.AmountFor(tier),
		Currency:    u.prices.Currency,
		Description: checkoutDescription(rep, tier),
	})
	if err != nil {
		log.Printf("[checkout][usecase] session create failed report_id=%s tier=%s err=%v", reportID, tier, err)
		return "", err
	}

	if _, err := u.repo.AddPendingCheckout(ctx, reportID, session.ID, tier); err != nil {
		// The session exists on the provider side but the pending record did
		// not land. The webhook still recovers report id and tier from the
		// session metadata, so surface the error and let the client retry.
		log.Printf("[checkout][usecase] pending checkout record failed report_id=%s session_id=%s err=%v", reportID, session.ID, err)
		return "", err
	}

	log.Printf("[checkout][usecase] session created report_id=%s tier=%s session_id=%s", reportID, tier, session.ID)
	return session.URL, nil
}

func checkoutDescription(rep entities.Report, tier entities.Tier) string {
	if tier == entities.TierRepair {
		return fmt.Sprintf("Plan de reparación — %s", rep.Domain)
	}
	return fmt.Sprintf("Veredicto completo — %s", rep.Domain)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt64Default(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
