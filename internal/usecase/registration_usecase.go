package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/pricing"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg/document"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg/pix"
)

const (
	RegistrationPageSize = 20
	QRCodeSize           = 300
	proofDir             = "comprovantes"
	dateLayout           = "2006-01-02"
	displayLayout        = "02/01/2006 15:04"
	dayLabelLayout       = "02/01"
)

const (
	msgAwaiting      = "Aguardando confirmação do pagamento."
	msgProofReceived = "Comprovante recebido. Aguardando conferência."
	msgConfirmed     = "Inscrição confirmada."
	msgRejected      = "Pagamento não confirmado. Envie um novo comprovante."
)

var (
	ErrRegistrationNotFound    = errors.New("registration not found")
	ErrRegistrationExists      = errors.New("user already has a registration")
	ErrCPFAlreadyRegistered    = errors.New("cpf already registered")
	ErrInvalidCPF              = errors.New("invalid cpf")
	ErrInvalidRegistration     = errors.New("invalid registration data")
	ErrInvalidInstallments     = errors.New("invalid number of installments")
	ErrUnsupportedProofType    = errors.New("unsupported proof file type")
	ErrProofTooLarge           = errors.New("proof file too large")
	ErrProofMissing            = errors.New("payment proof missing")
	ErrInvalidStatusTransition = errors.New("invalid registration status transition")
	ErrNotPixPayment           = errors.New("registration is not paid by pix")
	ErrPixKeyNotConfigured     = errors.New("pix key not configured")
)

var proofContentTypes = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// RegistrationInput is the attendee form.
type RegistrationInput struct {
	FullName     string
	CPF          string
	Phone        string
	IAPLocal     string
	Transport    entities.Transport
	PaymentType  entities.PaymentType
	Installments int
}

// ProofFile is an uploaded payment proof.
type ProofFile struct {
	Filename string
	Size     int64
	Body     io.Reader
}

type PixInstallment struct {
	Number   int             `json:"number"`
	Amount   decimal.Decimal `json:"amount"`
	AmountBR string          `json:"amount_br"`
	Payload  string          `json:"payload"`
}

type PaymentInstructions struct {
	RegistrationID string               `json:"registration_id"`
	PaymentType    entities.PaymentType `json:"payment_type"`
	Status         string               `json:"status"`
	LotName        string               `json:"lot_name"`
	Total          decimal.Decimal      `json:"total"`
	TotalBR        string               `json:"total_br"`
	PixKey         string               `json:"pix_key,omitempty"`
	PixNotice      string               `json:"pix_notice,omitempty"`
	Installments   []PixInstallment     `json:"installments"`
	ProofURL       string               `json:"proof_url,omitempty"`
}

type RegistrationPage struct {
	Items      []entities.Registration `json:"items"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	Total      int                     `json:"total"`
	TotalPages int                     `json:"total_pages"`
}

type DayCount struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Dashboard struct {
	Total               int            `json:"total"`
	Today               int            `json:"today"`
	Last7Days           int            `json:"last_7_days"`
	ThisMonth           int            `json:"this_month"`
	ByStatus            map[string]int `json:"by_status"`
	ByLot               map[string]int `json:"by_lot"`
	ByPaymentType       map[string]int `json:"by_payment_type"`
	LastDays            []DayCount     `json:"last_days"`
	ConfirmedValueCents int64          `json:"confirmed_value_cents"`
	CurrentLot          pricing.Lot    `json:"current_lot"`
}

// RegistrationSettings carries the configuration the registration flow reads.
type RegistrationSettings struct {
	Pix           config.PixConfig
	PixNotice     string
	MaxProofBytes int64
	Location      *time.Location
}

type IRegistrationUseCase interface {
	Create(ctx context.Context, userID string, in RegistrationInput) (entities.Registration, error)
	GetMine(ctx context.Context, userID string) (entities.Registration, error)
	GetByID(ctx context.Context, id string) (entities.Registration, error)
	CurrentLot(ctx context.Context) (pricing.Lot, error)
	PaymentInstructions(ctx context.Context, userID string) (PaymentInstructions, error)
	InstallmentQRCode(ctx context.Context, userID string, installment int) ([]byte, error)
	UploadProof(ctx context.Context, userID string, file ProofFile) (entities.Registration, error)
	ProofURL(path string) string
	List(ctx context.Context, filter entities.RegistrationFilter) (RegistrationPage, error)
	Approve(ctx context.Context, reviewerID, id, note string) (entities.Registration, error)
	Reject(ctx context.Context, reviewerID, id, note string) (entities.Registration, error)
	Dashboard(ctx context.Context) (Dashboard, error)
	Export(ctx context.Context, filter entities.RegistrationFilter) ([]byte, error)
}

type RegistrationUseCase struct {
	repo     interfaces.IRegistrationRepository
	audit    interfaces.IAuditLogRepository
	storage  interfaces.IProofStorage
	qr       interfaces.IQRCodeGenerator
	exporter interfaces.IRegistrationExporter
	pricing  *pricing.Calculator
	settings RegistrationSettings
	now      func() time.Time
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(
	repo interfaces.IRegistrationRepository,
	audit interfaces.IAuditLogRepository,
	storage interfaces.IProofStorage,
	qr interfaces.IQRCodeGenerator,
	exporter interfaces.IRegistrationExporter,
	calc *pricing.Calculator,
	settings RegistrationSettings,
) *RegistrationUseCase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &RegistrationUseCase{
		repo:     repo,
		audit:    audit,
		storage:  storage,
		qr:       qr,
		exporter: exporter,
		pricing:  calc,
		settings: settings,
		now:      time.Now,
	}
}

func (u *RegistrationUseCase) Create(ctx context.Context, userID string, in RegistrationInput) (entities.Registration, error) {
	userID = strings.TrimSpace(userID)
	log := logger.For("registration.usecase").WithField("user_id", userID)

	in.FullName = strings.TrimSpace(in.FullName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.IAPLocal = strings.TrimSpace(in.IAPLocal)
	if userID == "" || in.FullName == "" || in.Phone == "" || in.IAPLocal == "" {
		return entities.Registration{}, ErrInvalidRegistration
	}
	if !entities.ValidTransport(in.Transport) || !entities.ValidPaymentType(in.PaymentType) {
		return entities.Registration{}, ErrInvalidRegistration
	}
	cpf := document.OnlyDigits(in.CPF)
	if !document.IsValidCPF(cpf) {
		return entities.Registration{}, ErrInvalidCPF
	}
	if in.Installments == 0 {
		in.Installments = 1
	}
	if !u.pricing.ValidInstallments(in.Installments) {
		return entities.Registration{}, ErrInvalidInstallments
	}

	existing, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Registration{}, err
	}
	if existing.ID != "" {
		return entities.Registration{}, ErrRegistrationExists
	}
	taken, err := u.repo.CPFTaken(ctx, cpf)
	if err != nil {
		return entities.Registration{}, err
	}
	if taken {
		return entities.Registration{}, ErrCPFAlreadyRegistered
	}

	lot, err := u.CurrentLot(ctx)
	if err != nil {
		return entities.Registration{}, err
	}

	now := u.now().UTC()
	reg := entities.Registration{
		ID:            uuid.NewString(),
		UserID:        userID,
		FullName:      in.FullName,
		CPF:           cpf,
		Phone:         in.Phone,
		IAPLocal:      in.IAPLocal,
		Transport:     in.Transport,
		LotName:       lot.Name,
		LotValueCents: pricing.ToCents(lot.Price),
		PaymentType:   in.PaymentType,
		Installments:  in.Installments,
		Status:        entities.RegistrationStatusAguardando,
		StatusMessage: msgAwaiting,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, reg)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			if taken, cErr := u.repo.CPFTaken(ctx, cpf); cErr == nil && taken {
				return entities.Registration{}, ErrCPFAlreadyRegistered
			}
			return entities.Registration{}, ErrRegistrationExists
		}
		return entities.Registration{}, err
	}
	log.WithField("registration_id", created.ID).WithField("lot", created.LotName).Info("registration created")
	recordAudit(ctx, u.audit, userID, entities.AuditRegistrationCreate,
		fmt.Sprintf("registration=%s lot=%s payment=%s installments=%d", created.ID, created.LotName, created.PaymentType, created.Installments))
	return created, nil
}

func (u *RegistrationUseCase) GetMine(ctx context.Context, userID string) (entities.Registration, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Registration{}, ErrRegistrationNotFound
	}
	reg, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Registration{}, err
	}
	if reg.ID == "" {
		return entities.Registration{}, ErrRegistrationNotFound
	}
	return reg, nil
}

func (u *RegistrationUseCase) GetByID(ctx context.Context, id string) (entities.Registration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Registration{}, ErrRegistrationNotFound
	}
	reg, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Registration{}, err
	}
	if reg.ID == "" {
		return entities.Registration{}, ErrRegistrationNotFound
	}
	return reg, nil
}

// CurrentLot picks the lot from how many registrations exist.
func (u *RegistrationUseCase) CurrentLot(ctx context.Context) (pricing.Lot, error) {
	total, err := u.repo.Count(ctx)
	if err != nil {
		return pricing.Lot{}, err
	}
	return u.pricing.CurrentLot(total), nil
}

func (u *RegistrationUseCase) PaymentInstructions(ctx context.Context, userID string) (PaymentInstructions, error) {
	reg, err := u.GetMine(ctx, userID)
	if err != nil {
		return PaymentInstructions{}, err
	}

	total := pricing.FromCents(reg.LotValueCents)
	out := PaymentInstructions{
		RegistrationID: reg.ID,
		PaymentType:    reg.PaymentType,
		Status:         string(reg.Status),
		LotName:        reg.LotName,
		Total:          total,
		TotalBR:        pricing.MoneyBR(total),
		Installments:   []PixInstallment{},
		ProofURL:       u.ProofURL(reg.ProofFilePath),
	}
	if reg.PaymentType != entities.PaymentTypePix {
		return out, nil
	}

	out.PixKey = u.settings.Pix.Key
	out.PixNotice = u.settings.PixNotice
	installments, err := u.pixInstallments(reg)
	if err != nil {
		return PaymentInstructions{}, err
	}
	out.Installments = installments
	return out, nil
}

// InstallmentQRCode renders the payload of the given installment (1-based) as PNG.
func (u *RegistrationUseCase) InstallmentQRCode(ctx context.Context, userID string, installment int) ([]byte, error) {
	reg, err := u.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reg.PaymentType != entities.PaymentTypePix {
		return nil, ErrNotPixPayment
	}
	installments, err := u.pixInstallments(reg)
	if err != nil {
		return nil, err
	}
	if installment < 1 || installment > len(installments) {
		return nil, ErrInvalidInstallments
	}
	return u.qr.PNG(installments[installment-1].Payload, QRCodeSize)
}

// pixInstallments builds one payload per distinct installment amount.
func (u *RegistrationUseCase) pixInstallments(reg entities.Registration) ([]PixInstallment, error) {
	if strings.TrimSpace(u.settings.Pix.Key) == "" {
		return nil, ErrPixKeyNotConfigured
	}
	parts := u.pricing.SplitInstallments(pricing.FromCents(reg.LotValueCents), reg.Installments)

	payloads := map[string]string{}
	out := make([]PixInstallment, 0, len(parts))
	for i, amount := range parts {
		key := amount.StringFixed(2)
		payload, ok := payloads[key]
		if !ok {
			payload = pix.BuildPayload(pix.Request{
				Key:          u.settings.Pix.Key,
				MerchantName: u.settings.Pix.MerchantName,
				MerchantCity: u.settings.Pix.MerchantCity,
				Amount:       &amount,
				TxID:         reg.ID,
			})
			payloads[key] = payload
		}
		out = append(out, PixInstallment{
			Number:   i + 1,
			Amount:   amount,
			AmountBR: pricing.MoneyBR(amount),
			Payload:  payload,
		})
	}
	return out, nil
}

func (u *RegistrationUseCase) UploadProof(ctx context.Context, userID string, file ProofFile) (entities.Registration, error) {
	log := logger.For("registration.usecase").WithField("user_id", userID)

	reg, err := u.GetMine(ctx, userID)
	if err != nil {
		return entities.Registration{}, err
	}
	if reg.Status == entities.RegistrationStatusConfirmada {
		return entities.Registration{}, ErrInvalidStatusTransition
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	contentType, ok := proofContentTypes[ext]
	if !ok || file.Body == nil {
		return entities.Registration{}, ErrUnsupportedProofType
	}
	if file.Size <= 0 {
		return entities.Registration{}, ErrUnsupportedProofType
	}
	if u.settings.MaxProofBytes > 0 && file.Size > u.settings.MaxProofBytes {
		return entities.Registration{}, ErrProofTooLarge
	}

	now := u.now().UTC()
	path := fmt.Sprintf("%s/%s_%d.%s", proofDir, reg.ID, now.Unix(), ext)
	if err := u.storage.Put(ctx, path, contentType, file.Body, file.Size); err != nil {
		log.WithError(err).WithField("path", path).Error("proof upload failed")
		return entities.Registration{}, err
	}

	from := reg.Status
	reg.ProofFilePath = path
	reg.ProofUploadedAt = &now
	reg.Status = entities.RegistrationStatusAguardando
	reg.StatusMessage = msgProofReceived
	reg.UpdatedAt = now

	updated, err := u.repo.Update(ctx, reg, from)
	if err != nil {
		return entities.Registration{}, mapUpdateError(err)
	}
	log.WithField("registration_id", reg.ID).WithField("path", path).Info("proof uploaded")
	recordAudit(ctx, u.audit, userID, entities.AuditProofUpload, fmt.Sprintf("registration=%s path=%s", reg.ID, path))
	return updated, nil
}

func (u *RegistrationUseCase) ProofURL(path string) string {
	if path == "" || u.storage == nil {
		return ""
	}
	return u.storage.URL(path)
}

func (u *RegistrationUseCase) List(ctx context.Context, filter entities.RegistrationFilter) (RegistrationPage, error) {
	rows, err := u.filtered(ctx, filter)
	if err != nil {
		return RegistrationPage{}, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	totalPages := (len(rows) + RegistrationPageSize - 1) / RegistrationPageSize
	start := (page - 1) * RegistrationPageSize
	end := start + RegistrationPageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	return RegistrationPage{
		Items:      rows[start:end],
		Page:       page,
		PageSize:   RegistrationPageSize,
		Total:      len(rows),
		TotalPages: totalPages,
	}, nil
}

// filtered applies filter in memory and sorts newest first.
func (u *RegistrationUseCase) filtered(ctx context.Context, filter entities.RegistrationFilter) ([]entities.Registration, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	searchDigits := document.OnlyDigits(search)

	out := make([]entities.Registration, 0, len(all))
	for _, r := range all {
		if search != "" && !matchesSearch(r, search, searchDigits) {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.PaymentType != "" && r.PaymentType != filter.PaymentType {
			continue
		}
		if filter.From != nil && r.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && r.CreatedAt.After(*filter.To) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func matchesSearch(r entities.Registration, search, digits string) bool {
	if strings.Contains(strings.ToLower(r.FullName), search) ||
		strings.Contains(strings.ToLower(r.Phone), search) ||
		strings.Contains(r.CPF, search) {
		return true
	}
	if digits != "" {
		return strings.Contains(r.CPF, digits) || strings.Contains(document.OnlyDigits(r.Phone), digits)
	}
	return false
}

// ParseDateRange reads YYYY-MM-DD bounds in loc. Malformed values are ignored;
// the end bound covers the whole day.
func ParseDateRange(from, to string, loc *time.Location) (*time.Time, *time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	var start, end *time.Time
	if t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(from), loc); err == nil {
		start = &t
	}
	if t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(to), loc); err == nil {
		t = t.Add(24*time.Hour - time.Nanosecond)
		end = &t
	}
	return start, end
}

func (u *RegistrationUseCase) Approve(ctx context.Context, reviewerID, id, note string) (entities.Registration, error) {
	reg, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Registration{}, err
	}
	if !reg.IsAwaiting() {
		return entities.Registration{}, ErrInvalidStatusTransition
	}
	if reg.PaymentType == entities.PaymentTypePix && !reg.HasProof() {
		return entities.Registration{}, ErrProofMissing
	}
	return u.review(ctx, reg, reviewerID, note, entities.RegistrationStatusConfirmada, msgConfirmed, entities.AuditRegistrationApprove)
}

func (u *RegistrationUseCase) Reject(ctx context.Context, reviewerID, id, note string) (entities.Registration, error) {
	reg, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Registration{}, err
	}
	if !reg.IsAwaiting() {
		return entities.Registration{}, ErrInvalidStatusTransition
	}
	msg := msgRejected
	if n := strings.TrimSpace(note); n != "" {
		msg = msg + " " + n
	}
	return u.review(ctx, reg, reviewerID, note, entities.RegistrationStatusRecusada, msg, entities.AuditRegistrationReject)
}

func (u *RegistrationUseCase) review(ctx context.Context, reg entities.Registration, reviewerID, note string, status entities.RegistrationStatus, msg, action string) (entities.Registration, error) {
	now := u.now().UTC()
	reg.Status = status
	reg.StatusMessage = msg
	reg.ReviewedByUserID = strings.TrimSpace(reviewerID)
	reg.ReviewedAt = &now
	reg.ReviewNote = strings.TrimSpace(note)
	reg.UpdatedAt = now

	updated, err := u.repo.Update(ctx, reg, entities.RegistrationStatusAguardando)
	if err != nil {
		return entities.Registration{}, mapUpdateError(err)
	}
	logger.For("registration.usecase").
		WithField("registration_id", reg.ID).
		WithField("reviewer_id", reviewerID).
		WithField("status", status).
		Info("registration reviewed")
	recordAudit(ctx, u.audit, reviewerID, action, fmt.Sprintf("registration=%s note=%s", reg.ID, reg.ReviewNote))
	return updated, nil
}

// mapUpdateError turns a lost conditional write into a status transition error.
func mapUpdateError(err error) error {
	switch {
	case errors.Is(err, interfaces.ErrStatusChanged):
		return ErrInvalidStatusTransition
	case errors.Is(err, interfaces.ErrNotFound):
		return ErrRegistrationNotFound
	}
	return err
}

func (u *RegistrationUseCase) Dashboard(ctx context.Context) (Dashboard, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	loc := u.settings.Location
	now := u.now().In(loc)

	startToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	startWeek := startToday.AddDate(0, 0, -6)
	startMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	endToday := startToday.AddDate(0, 0, 1)

	d := Dashboard{
		Total:         len(all),
		ByStatus:      map[string]int{},
		ByLot:         map[string]int{},
		ByPaymentType: map[string]int{},
		CurrentLot:    u.pricing.CurrentLot(len(all)),
	}
	perDay := map[string]int{}
	for _, r := range all {
		created := r.CreatedAt.In(loc)
		inRange := created.Before(endToday)
		if inRange && !created.Before(startToday) {
			d.Today++
		}
		if inRange && !created.Before(startWeek) {
			d.Last7Days++
			perDay[created.Format(dateLayout)]++
		}
		if inRange && !created.Before(startMonth) {
			d.ThisMonth++
		}
		d.ByStatus[string(r.Status)]++
		d.ByLot[r.LotName]++
		d.ByPaymentType[string(r.PaymentType)]++
		if r.Status == entities.RegistrationStatusConfirmada {
			d.ConfirmedValueCents += r.LotValueCents
		}
	}

	d.LastDays = make([]DayCount, 0, 7)
	for i := 0; i < 7; i++ {
		day := startWeek.AddDate(0, 0, i)
		key := day.Format(dateLayout)
		d.LastDays = append(d.LastDays, DayCount{Date: key, Label: day.Format(dayLabelLayout), Count: perDay[key]})
	}
	return d, nil
}

func (u *RegistrationUseCase) Export(ctx context.Context, filter entities.RegistrationFilter) ([]byte, error) {
	rows, err := u.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}
	loc := u.settings.Location

	out := make([]entities.RegistrationExportRow, 0, len(rows))
	for _, r := range rows {
		row := entities.RegistrationExportRow{
			ID:           r.ID,
			CreatedAt:    r.CreatedAt.In(loc).Format(displayLayout),
			FullName:     r.FullName,
			CPF:          document.FormatCPF(r.CPF),
			Phone:        r.Phone,
			IAPLocal:     r.IAPLocal,
			Transport:    string(r.Transport),
			LotName:      r.LotName,
			Value:        pricing.MoneyBR(pricing.FromCents(r.LotValueCents)),
			PaymentType:  string(r.PaymentType),
			Installments: r.Installments,
			Status:       string(r.Status),
			ProofURL:     u.ProofURL(r.ProofFilePath),
			ReviewNote:   r.ReviewNote,
		}
		if r.ReviewedAt != nil {
			row.ReviewedAt = r.ReviewedAt.In(loc).Format(displayLayout)
		}
		out = append(out, row)
	}
	return u.exporter.Export(out)
}
