package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"practice-manager/internal/domain/entity"
	"practice-manager/internal/practice"
	"practice-manager/pkg/validator"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type sequenceIDs struct {
	prefix string
	next   int
}

func (s *sequenceIDs) NewID() string {
	s.next++
	return fmt.Sprintf("%s%d", s.prefix, s.next)
}

func newTimeline() *practice.Timeline {
	return practice.NewTimeline(practice.FixedClock(testNow), &sequenceIDs{prefix: "id-"}, validator.NewValidator())
}

// --- Mock PatientRepository ---
type MockPatientRepository struct {
	CreateFunc             func(db *gorm.DB, patient *entity.Patient) error
	FindByIDFunc           func(db *gorm.DB, id string) (*entity.Patient, error)
	FindByIDForUpdateFunc  func(db *gorm.DB, id string) (*entity.Patient, error)
	FindAllFunc            func(db *gorm.DB) ([]entity.Patient, error)
	UpdateDemographicsFunc func(db *gorm.DB, patient *entity.Patient) error
	AppendHistoryEntryFunc func(db *gorm.DB, entry *entity.HistoryEntry) error

	Patients    map[string]*entity.Patient
	Order       []string
	LockedReads int
}

func NewMockPatientRepository() *MockPatientRepository {
	return &MockPatientRepository{Patients: make(map[string]*entity.Patient)}
}

func (m *MockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, patient)
	}
	stored := *patient
	m.Patients[patient.ID] = &stored
	m.Order = append(m.Order, patient.ID)
	return nil
}

func (m *MockPatientRepository) FindByID(db *gorm.DB, id string) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	p, ok := m.Patients[id]
	if !ok {
		return nil, nil
	}
	found := *p
	found.History = append([]entity.HistoryEntry{}, p.History...)
	return &found, nil
}

func (m *MockPatientRepository) FindByIDForUpdate(db *gorm.DB, id string) (*entity.Patient, error) {
	m.LockedReads++
	if m.FindByIDForUpdateFunc != nil {
		return m.FindByIDForUpdateFunc(db, id)
	}
	return m.FindByID(db, id)
}

func (m *MockPatientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	patients := make([]entity.Patient, 0, len(m.Order))
	for _, id := range m.Order {
		patients = append(patients, *m.Patients[id])
	}
	return patients, nil
}

func (m *MockPatientRepository) UpdateDemographics(db *gorm.DB, patient *entity.Patient) error {
	if m.UpdateDemographicsFunc != nil {
		return m.UpdateDemographicsFunc(db, patient)
	}
	stored := m.Patients[patient.ID]
	stored.Phone, stored.BirthDate, stored.Email, stored.Notes = patient.Phone, patient.BirthDate, patient.Email, patient.Notes
	return nil
}

func (m *MockPatientRepository) AppendHistoryEntry(db *gorm.DB, entry *entity.HistoryEntry) error {
	if m.AppendHistoryEntryFunc != nil {
		return m.AppendHistoryEntryFunc(db, entry)
	}
	stored := m.Patients[entry.PatientID]
	stored.History = append([]entity.HistoryEntry{*entry}, stored.History...)
	return nil
}

// --- Mock AppointmentRepository ---
type MockAppointmentRepository struct {
	CreateFunc       func(db *gorm.DB, appointment *entity.Appointment) error
	FindAllFunc      func(db *gorm.DB) ([]entity.Appointment, error)
	UpdateStatusFunc func(db *gorm.DB, id string, status entity.AppointmentStatus) (int64, error)

	Appointments []entity.Appointment
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, appointment)
	}
	m.Appointments = append(m.Appointments, *appointment)
	return nil
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id string) (*entity.Appointment, error) {
	for i := range m.Appointments {
		if m.Appointments[i].ID == id {
			found := m.Appointments[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return append([]entity.Appointment{}, m.Appointments...), nil
}

func (m *MockAppointmentRepository) UpdateStatus(db *gorm.DB, id string, status entity.AppointmentStatus) (int64, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(db, id, status)
	}
	for i := range m.Appointments {
		if m.Appointments[i].ID == id {
			m.Appointments[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

// --- Mock FinancialRecordRepository ---
type MockFinancialRecordRepository struct {
	FindAllFunc func(db *gorm.DB) ([]entity.FinancialRecord, error)

	Records []entity.FinancialRecord
}

func (m *MockFinancialRecordRepository) Create(db *gorm.DB, record *entity.FinancialRecord) error {
	m.Records = append(m.Records, *record)
	return nil
}

func (m *MockFinancialRecordRepository) FindAll(db *gorm.DB) ([]entity.FinancialRecord, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return append([]entity.FinancialRecord{}, m.Records...), nil
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	GetFunc  func(db *gorm.DB) (*entity.AppSettings, error)
	SaveFunc func(db *gorm.DB, settings *entity.AppSettings) error

	Stored   *entity.AppSettings
	GetCalls int
}

func (m *MockSettingsRepository) Get(db *gorm.DB) (*entity.AppSettings, error) {
	m.GetCalls++
	if m.GetFunc != nil {
		return m.GetFunc(db)
	}
	if m.Stored == nil {
		return nil, nil
	}
	found := *m.Stored
	return &found, nil
}

func (m *MockSettingsRepository) Save(db *gorm.DB, settings *entity.AppSettings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(db, settings)
	}
	stored := *settings
	m.Stored = &stored
	return nil
}

// --- Mock SettingsCache ---
type MockSettingsCache struct {
	GetFunc func(ctx context.Context) (*entity.AppSettings, error)
	SetFunc func(ctx context.Context, settings *entity.AppSettings) error

	Cached      *entity.AppSettings
	Invalidated int
}

func (m *MockSettingsCache) Get(ctx context.Context) (*entity.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	if m.Cached == nil {
		return nil, nil
	}
	cached := *m.Cached
	return &cached, nil
}

func (m *MockSettingsCache) Set(ctx context.Context, settings *entity.AppSettings) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, settings)
	}
	cached := *settings
	m.Cached = &cached
	return nil
}

func (m *MockSettingsCache) Invalidate(ctx context.Context) error {
	m.Invalidated++
	m.Cached = nil
	return nil
}
